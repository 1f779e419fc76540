package elefren

import (
	"context"
	"net/url"

	"github.com/pwoolcoc/elefren/entities"
)

// VerifyCredentials returns the account of the authenticated user.
func (m *Mastodon) VerifyCredentials(ctx context.Context) (entities.Account, error) {
	return get[entities.Account](ctx, m, m.route("/api/v1/accounts/verify_credentials"))
}

// GetAccount looks up an account by id.
func (m *Mastodon) GetAccount(ctx context.Context, id string) (entities.Account, error) {
	return get[entities.Account](ctx, m, m.route("/api/v1/accounts/"+id))
}

// Followers returns the accounts following the given account, paginated.
func (m *Mastodon) Followers(ctx context.Context, id string) (*Page[entities.Account], error) {
	return getPage[entities.Account](ctx, m, m.route("/api/v1/accounts/"+id+"/followers"))
}

// Following returns the accounts the given account follows, paginated.
func (m *Mastodon) Following(ctx context.Context, id string) (*Page[entities.Account], error) {
	return getPage[entities.Account](ctx, m, m.route("/api/v1/accounts/"+id+"/following"))
}

// Statuses returns the statuses posted by an account, paginated. A non-nil
// request narrows the result, e.g. to media-only or unreplied statuses.
func (m *Mastodon) Statuses(ctx context.Context, id string, req *StatusesRequest) (*Page[entities.Status], error) {
	rawurl := m.route("/api/v1/accounts/" + id + "/statuses")
	if q := req.toQuery(); q != "" {
		rawurl += "?" + q
	}
	return getPage[entities.Status](ctx, m, rawurl)
}

// Follow the account with the given id.
func (m *Mastodon) Follow(ctx context.Context, id string) (entities.Relationship, error) {
	return post[entities.Relationship](ctx, m, m.route("/api/v1/accounts/"+id+"/follow"), nil)
}

// Unfollow the account with the given id.
func (m *Mastodon) Unfollow(ctx context.Context, id string) (entities.Relationship, error) {
	return post[entities.Relationship](ctx, m, m.route("/api/v1/accounts/"+id+"/unfollow"), nil)
}

// Block the account with the given id.
func (m *Mastodon) Block(ctx context.Context, id string) (entities.Relationship, error) {
	return post[entities.Relationship](ctx, m, m.route("/api/v1/accounts/"+id+"/block"), nil)
}

// Unblock the account with the given id.
func (m *Mastodon) Unblock(ctx context.Context, id string) (entities.Relationship, error) {
	return post[entities.Relationship](ctx, m, m.route("/api/v1/accounts/"+id+"/unblock"), nil)
}

// Mute the account with the given id.
func (m *Mastodon) Mute(ctx context.Context, id string) (entities.Relationship, error) {
	return post[entities.Relationship](ctx, m, m.route("/api/v1/accounts/"+id+"/mute"), nil)
}

// Unmute the account with the given id.
func (m *Mastodon) Unmute(ctx context.Context, id string) (entities.Relationship, error) {
	return post[entities.Relationship](ctx, m, m.route("/api/v1/accounts/"+id+"/unmute"), nil)
}

// Relationships returns the authenticated user's relationship to each of the
// given accounts.
func (m *Mastodon) Relationships(ctx context.Context, ids []string) (*Page[entities.Relationship], error) {
	params := url.Values{}
	for _, id := range ids {
		params.Add("id[]", id)
	}
	return getPage[entities.Relationship](ctx, m, m.route("/api/v1/accounts/relationships?"+params.Encode()))
}

// Mutes returns the accounts muted by the authenticated user, paginated.
func (m *Mastodon) Mutes(ctx context.Context) (*Page[entities.Account], error) {
	return getPage[entities.Account](ctx, m, m.route("/api/v1/mutes"))
}

// Blocks returns the accounts blocked by the authenticated user, paginated.
func (m *Mastodon) Blocks(ctx context.Context) (*Page[entities.Account], error) {
	return getPage[entities.Account](ctx, m, m.route("/api/v1/blocks"))
}

// FollowRequests returns the pending follow requests for the authenticated
// user, paginated.
func (m *Mastodon) FollowRequests(ctx context.Context) (*Page[entities.Account], error) {
	return getPage[entities.Account](ctx, m, m.route("/api/v1/follow_requests"))
}

// AuthorizeFollowRequest accepts the follow request from the given account.
func (m *Mastodon) AuthorizeFollowRequest(ctx context.Context, id string) error {
	_, err := post[entities.Empty](ctx, m, m.route("/api/v1/follow_requests/"+id+"/authorize"), nil)
	return err
}

// RejectFollowRequest refuses the follow request from the given account.
func (m *Mastodon) RejectFollowRequest(ctx context.Context, id string) error {
	_, err := post[entities.Empty](ctx, m, m.route("/api/v1/follow_requests/"+id+"/reject"), nil)
	return err
}

// FollowsMe returns the accounts following the authenticated user,
// paginated. It looks the user's own id up first, so it costs one extra
// request over Followers.
func (m *Mastodon) FollowsMe(ctx context.Context) (*Page[entities.Account], error) {
	me, err := m.VerifyCredentials(ctx)
	if err != nil {
		return nil, err
	}
	return m.Followers(ctx, me.ID)
}

// FollowedByMe returns the accounts the authenticated user follows,
// paginated. Like FollowsMe it costs one extra request.
func (m *Mastodon) FollowedByMe(ctx context.Context) (*Page[entities.Account], error) {
	me, err := m.VerifyCredentials(ctx)
	if err != nil {
		return nil, err
	}
	return m.Following(ctx, me.ID)
}

// Endorse features the account on the authenticated user's profile.
func (m *Mastodon) Endorse(ctx context.Context, id string) (entities.Relationship, error) {
	return post[entities.Relationship](ctx, m, m.route("/api/v1/accounts/"+id+"/pin"), nil)
}

// Unendorse removes the account from the authenticated user's profile.
func (m *Mastodon) Unendorse(ctx context.Context, id string) (entities.Relationship, error) {
	return post[entities.Relationship](ctx, m, m.route("/api/v1/accounts/"+id+"/unpin"), nil)
}

// Endorsements returns the accounts featured on the authenticated user's
// profile, paginated.
func (m *Mastodon) Endorsements(ctx context.Context) (*Page[entities.Account], error) {
	return getPage[entities.Account](ctx, m, m.route("/api/v1/endorsements"))
}

// FollowSuggestions returns accounts the instance suggests following.
func (m *Mastodon) FollowSuggestions(ctx context.Context) ([]entities.Account, error) {
	return get[[]entities.Account](ctx, m, m.route("/api/v1/suggestions"))
}

// DismissFollowSuggestion removes an account from the follow suggestions.
func (m *Mastodon) DismissFollowSuggestion(ctx context.Context, id string) error {
	_, err := del[entities.Empty](ctx, m, m.route("/api/v1/suggestions/"+id))
	return err
}
