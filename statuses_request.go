package elefren

import (
	"net/url"
	"strconv"
)

// StatusesRequest narrows an account-statuses query. The zero value selects
// everything; setters return the receiver so they can be chained:
//
//	req := new(elefren.StatusesRequest).OnlyMedia().Limit(40)
//	page, err := client.Statuses(ctx, id, req)
type StatusesRequest struct {
	onlyMedia      bool
	excludeReplies bool
	excludeReblogs bool
	pinned         bool
	maxID          string
	sinceID        string
	minID          string
	limit          int
}

// OnlyMedia restricts the result to statuses with media attachments.
func (r *StatusesRequest) OnlyMedia() *StatusesRequest {
	r.onlyMedia = true
	return r
}

// ExcludeReplies drops statuses that reply to another status.
func (r *StatusesRequest) ExcludeReplies() *StatusesRequest {
	r.excludeReplies = true
	return r
}

// ExcludeReblogs drops boosts.
func (r *StatusesRequest) ExcludeReblogs() *StatusesRequest {
	r.excludeReblogs = true
	return r
}

// Pinned restricts the result to pinned statuses.
func (r *StatusesRequest) Pinned() *StatusesRequest {
	r.pinned = true
	return r
}

// MaxID returns results older than the given status id.
func (r *StatusesRequest) MaxID(id string) *StatusesRequest {
	r.maxID = id
	return r
}

// SinceID returns results newer than the given status id.
func (r *StatusesRequest) SinceID(id string) *StatusesRequest {
	r.sinceID = id
	return r
}

// MinID returns results immediately newer than the given status id.
func (r *StatusesRequest) MinID(id string) *StatusesRequest {
	r.minID = id
	return r
}

// Limit caps the number of results per page.
func (r *StatusesRequest) Limit(n int) *StatusesRequest {
	r.limit = n
	return r
}

// toQuery renders the request as a URL query string, empty for the zero
// value. A nil receiver is treated as the zero value.
func (r *StatusesRequest) toQuery() string {
	if r == nil {
		return ""
	}
	params := url.Values{}
	if r.onlyMedia {
		params.Set("only_media", "true")
	}
	if r.excludeReplies {
		params.Set("exclude_replies", "true")
	}
	if r.excludeReblogs {
		params.Set("exclude_reblogs", "true")
	}
	if r.pinned {
		params.Set("pinned", "true")
	}
	if r.maxID != "" {
		params.Set("max_id", r.maxID)
	}
	if r.sinceID != "" {
		params.Set("since_id", r.sinceID)
	}
	if r.minID != "" {
		params.Set("min_id", r.minID)
	}
	if r.limit > 0 {
		params.Set("limit", strconv.Itoa(r.limit))
	}
	return params.Encode()
}
