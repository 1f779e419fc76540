package elefren

import (
	"context"

	"github.com/pwoolcoc/elefren/entities"
)

type reportBody struct {
	AccountID string   `json:"account_id"`
	StatusIDs []string `json:"status_ids,omitempty"`
	Comment   string   `json:"comment,omitempty"`
}

// Report files a report against an account, optionally naming the offending
// statuses.
func (m *Mastodon) Report(ctx context.Context, accountID string, statusIDs []string, comment string) (entities.Report, error) {
	return post[entities.Report](ctx, m, m.route("/api/v1/reports"), reportBody{
		AccountID: accountID,
		StatusIDs: statusIDs,
		Comment:   comment,
	})
}

// Reports returns the reports filed by the authenticated user, paginated.
func (m *Mastodon) Reports(ctx context.Context) (*Page[entities.Report], error) {
	return getPage[entities.Report](ctx, m, m.route("/api/v1/reports"))
}
