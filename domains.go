package elefren

import (
	"context"
	"net/http"

	"github.com/pwoolcoc/elefren/entities"
)

type domainBody struct {
	Domain string `json:"domain"`
}

// DomainBlocks returns the domains blocked by the authenticated user,
// paginated.
func (m *Mastodon) DomainBlocks(ctx context.Context) (*Page[string], error) {
	return getPage[string](ctx, m, m.route("/api/v1/domain_blocks"))
}

// BlockDomain hides every account and status from the given domain.
func (m *Mastodon) BlockDomain(ctx context.Context, domain string) error {
	_, err := post[entities.Empty](ctx, m, m.route("/api/v1/domain_blocks"), domainBody{Domain: domain})
	return err
}

// UnblockDomain removes a domain block.
func (m *Mastodon) UnblockDomain(ctx context.Context, domain string) error {
	resp, err := m.request(ctx, http.MethodDelete, m.route("/api/v1/domain_blocks"), domainBody{Domain: domain}, nil)
	if err != nil {
		return err
	}
	_, err = decodeResponse[entities.Empty](m, resp)
	return err
}
