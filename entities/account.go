package entities

import "time"

// Account represents a user of Mastodon and their associated profile.
type Account struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Acct           string    `json:"acct"`
	URL            string    `json:"url"`
	DisplayName    string    `json:"display_name"`
	Note           string    `json:"note"`
	Avatar         string    `json:"avatar"`
	AvatarStatic   string    `json:"avatar_static"`
	Header         string    `json:"header"`
	HeaderStatic   string    `json:"header_static"`
	Locked         bool      `json:"locked"`
	Bot            bool      `json:"bot"`
	Discoverable   bool      `json:"discoverable"`
	CreatedAt      time.Time `json:"created_at"`
	StatusesCount  int64     `json:"statuses_count"`
	FollowersCount int64     `json:"followers_count"`
	FollowingCount int64     `json:"following_count"`
	Emojis         []Emoji   `json:"emojis"`
	Fields         []Field   `json:"fields"`
	Moved          *Account  `json:"moved"`
	Source         *Source   `json:"source"`
}

// Field is a name/value pair displayed on an account's profile.
type Field struct {
	Name       string     `json:"name"`
	Value      string     `json:"value"`
	VerifiedAt *time.Time `json:"verified_at"`
}

// Source holds an account's profile in its raw, unrendered form. It is only
// returned by the verify-credentials and update-credentials endpoints.
type Source struct {
	Privacy   *Visibility `json:"privacy"`
	Sensitive *bool       `json:"sensitive"`
	Language  *string     `json:"language"`
	Note      string      `json:"note"`
	Fields    []Field     `json:"fields"`
}
