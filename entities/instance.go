package entities

// Instance holds metadata about a Mastodon server.
type Instance struct {
	URI            string         `json:"uri"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Email          string         `json:"email"`
	Version        string         `json:"version"`
	URLs           *InstanceURLs  `json:"urls"`
	Stats          *InstanceStats `json:"stats"`
	Thumbnail      *string        `json:"thumbnail"`
	Languages      []string       `json:"languages"`
	ContactAccount *Account       `json:"contact_account"`
}

// InstanceURLs carries the endpoints advertised by an instance, notably the
// base URL of the streaming API.
type InstanceURLs struct {
	StreamingAPI string `json:"streaming_api"`
}

// InstanceStats are the usage counters advertised by an instance.
type InstanceStats struct {
	UserCount   int64 `json:"user_count"`
	StatusCount int64 `json:"status_count"`
	DomainCount int64 `json:"domain_count"`
}
