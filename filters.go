package elefren

import (
	"context"
	"time"

	"github.com/pwoolcoc/elefren/entities"
)

// AddFilterRequest is the body of the add-filter and update-filter calls.
type AddFilterRequest struct {
	Phrase       string                   `json:"phrase"`
	Context      []entities.FilterContext `json:"context"`
	Irreversible bool                     `json:"irreversible,omitempty"`
	WholeWord    bool                     `json:"whole_word,omitempty"`
	ExpiresIn    *time.Duration           `json:"-"`
	// ExpiresInSeconds mirrors ExpiresIn on the wire.
	ExpiresInSeconds *int64 `json:"expires_in,omitempty"`
}

func (r AddFilterRequest) withExpiry() AddFilterRequest {
	if r.ExpiresIn != nil {
		secs := int64(r.ExpiresIn.Seconds())
		r.ExpiresInSeconds = &secs
	}
	return r
}

// GetFilters returns all filters of the authenticated user.
func (m *Mastodon) GetFilters(ctx context.Context) ([]entities.Filter, error) {
	return get[[]entities.Filter](ctx, m, m.route("/api/v1/filters"))
}

// GetFilter looks up one filter by id.
func (m *Mastodon) GetFilter(ctx context.Context, id string) (entities.Filter, error) {
	return get[entities.Filter](ctx, m, m.route("/api/v1/filters/"+id))
}

// AddFilter creates a new filter.
func (m *Mastodon) AddFilter(ctx context.Context, req AddFilterRequest) (entities.Filter, error) {
	return post[entities.Filter](ctx, m, m.route("/api/v1/filters"), req.withExpiry())
}

// UpdateFilter replaces the filter with the given id.
func (m *Mastodon) UpdateFilter(ctx context.Context, id string, req AddFilterRequest) (entities.Filter, error) {
	return put[entities.Filter](ctx, m, m.route("/api/v1/filters/"+id), req.withExpiry())
}

// DeleteFilter removes the filter with the given id.
func (m *Mastodon) DeleteFilter(ctx context.Context, id string) error {
	_, err := del[entities.Empty](ctx, m, m.route("/api/v1/filters/"+id))
	return err
}
