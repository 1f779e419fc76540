package elefren

import (
	"context"

	"github.com/pwoolcoc/elefren/entities"
)

// ProfileField is one name/value pair shown on the profile being updated.
type ProfileField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// UpdateCredentialsRequest is the body of an UpdateCredentials call. Zero
// fields are left out of the request and keep their current value.
type UpdateCredentialsRequest struct {
	DisplayName string `json:"display_name,omitempty"`
	Note        string `json:"note,omitempty"`
	// Avatar and Header are images encoded as data URLs.
	Avatar string         `json:"avatar,omitempty"`
	Header string         `json:"header,omitempty"`
	Locked *bool          `json:"locked,omitempty"`
	Bot    *bool          `json:"bot,omitempty"`
	Source *UpdateSource  `json:"source,omitempty"`
	Fields []ProfileField `json:"fields_attributes,omitempty"`
}

// UpdateSource adjusts the defaults applied to new statuses.
type UpdateSource struct {
	Privacy   *entities.Visibility `json:"privacy,omitempty"`
	Sensitive *bool                `json:"sensitive,omitempty"`
	Language  *string              `json:"language,omitempty"`
}

// UpdateCredentials changes the authenticated user's profile and returns the
// updated account.
func (m *Mastodon) UpdateCredentials(ctx context.Context, req UpdateCredentialsRequest) (entities.Account, error) {
	return patch[entities.Account](ctx, m, m.route("/api/v1/accounts/update_credentials"), req)
}
