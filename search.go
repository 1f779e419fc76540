package elefren

import (
	"context"
	"net/url"

	"github.com/pwoolcoc/elefren/entities"
)

// Search queries the instance for accounts, statuses and hashtags matching
// q. With resolve set, the instance attempts a WebFinger lookup for q when
// it looks like an address on another instance.
func (m *Mastodon) Search(ctx context.Context, q string, resolve bool) (entities.SearchResult, error) {
	params := url.Values{"q": {q}}
	if resolve {
		params.Set("resolve", "true")
	}
	return get[entities.SearchResult](ctx, m, m.route("/api/v2/search?"+params.Encode()))
}
