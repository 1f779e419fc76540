package elefren

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/pwoolcoc/elefren/entities"
)

// GetStatus looks up a status by id.
func (m *Mastodon) GetStatus(ctx context.Context, id string) (entities.Status, error) {
	return get[entities.Status](ctx, m, m.route("/api/v1/statuses/"+id))
}

// PostStatus publishes a new status. An Idempotency-Key header is sent so
// that a retried request cannot double-post.
func (m *Mastodon) PostStatus(ctx context.Context, status NewStatus) (entities.Status, error) {
	header := http.Header{"Idempotency-Key": {uuid.NewString()}}
	resp, err := m.request(ctx, http.MethodPost, m.route("/api/v1/statuses"), status, header)
	if err != nil {
		return entities.Status{}, err
	}
	return decodeResponse[entities.Status](m, resp)
}

// DeleteStatus removes a status posted by the authenticated user.
func (m *Mastodon) DeleteStatus(ctx context.Context, id string) error {
	_, err := del[entities.Empty](ctx, m, m.route("/api/v1/statuses/"+id))
	return err
}

// Reblog boosts a status.
func (m *Mastodon) Reblog(ctx context.Context, id string) (entities.Status, error) {
	return post[entities.Status](ctx, m, m.route("/api/v1/statuses/"+id+"/reblog"), nil)
}

// Unreblog removes a boost.
func (m *Mastodon) Unreblog(ctx context.Context, id string) (entities.Status, error) {
	return post[entities.Status](ctx, m, m.route("/api/v1/statuses/"+id+"/unreblog"), nil)
}

// Favourite marks a status as a favourite.
func (m *Mastodon) Favourite(ctx context.Context, id string) (entities.Status, error) {
	return post[entities.Status](ctx, m, m.route("/api/v1/statuses/"+id+"/favourite"), nil)
}

// Unfavourite removes a favourite.
func (m *Mastodon) Unfavourite(ctx context.Context, id string) (entities.Status, error) {
	return post[entities.Status](ctx, m, m.route("/api/v1/statuses/"+id+"/unfavourite"), nil)
}

// RebloggedBy returns the accounts that boosted a status, paginated.
func (m *Mastodon) RebloggedBy(ctx context.Context, id string) (*Page[entities.Account], error) {
	return getPage[entities.Account](ctx, m, m.route("/api/v1/statuses/"+id+"/reblogged_by"))
}

// FavouritedBy returns the accounts that favourited a status, paginated.
func (m *Mastodon) FavouritedBy(ctx context.Context, id string) (*Page[entities.Account], error) {
	return getPage[entities.Account](ctx, m, m.route("/api/v1/statuses/"+id+"/favourited_by"))
}

// GetContext returns the ancestors and descendants of a status.
func (m *Mastodon) GetContext(ctx context.Context, id string) (entities.Context, error) {
	return get[entities.Context](ctx, m, m.route("/api/v1/statuses/"+id+"/context"))
}

// GetCard returns the link preview card of a status.
func (m *Mastodon) GetCard(ctx context.Context, id string) (entities.Card, error) {
	return get[entities.Card](ctx, m, m.route("/api/v1/statuses/"+id+"/card"))
}

// Favourites returns the statuses favourited by the authenticated user,
// paginated.
func (m *Mastodon) Favourites(ctx context.Context) (*Page[entities.Status], error) {
	return getPage[entities.Status](ctx, m, m.route("/api/v1/favourites"))
}

// Bookmarks returns the statuses bookmarked by the authenticated user,
// paginated.
func (m *Mastodon) Bookmarks(ctx context.Context) (*Page[entities.Status], error) {
	return getPage[entities.Status](ctx, m, m.route("/api/v1/bookmarks"))
}
