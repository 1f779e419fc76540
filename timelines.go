package elefren

import (
	"context"
	"net/url"

	"github.com/pwoolcoc/elefren/entities"
)

// HomeTimeline returns the statuses of the accounts the authenticated user
// follows, paginated.
func (m *Mastodon) HomeTimeline(ctx context.Context) (*Page[entities.Status], error) {
	return getPage[entities.Status](ctx, m, m.route("/api/v1/timelines/home"))
}

// PublicTimeline returns public statuses, paginated. With local set, only
// statuses originating on this instance are included.
func (m *Mastodon) PublicTimeline(ctx context.Context, local bool) (*Page[entities.Status], error) {
	rawurl := m.route("/api/v1/timelines/public")
	if local {
		rawurl += "?local=true"
	}
	return getPage[entities.Status](ctx, m, rawurl)
}

// HashtagTimeline returns the public statuses carrying the hashtag,
// paginated.
func (m *Mastodon) HashtagTimeline(ctx context.Context, tag string, local bool) (*Page[entities.Status], error) {
	rawurl := m.route("/api/v1/timelines/tag/" + url.PathEscape(tag))
	if local {
		rawurl += "?local=true"
	}
	return getPage[entities.Status](ctx, m, rawurl)
}
