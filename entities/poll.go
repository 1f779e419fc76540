package entities

import "time"

// Poll attached to a status.
type Poll struct {
	ID         string       `json:"id"`
	ExpiresAt  *time.Time   `json:"expires_at"`
	Expired    bool         `json:"expired"`
	Multiple   bool         `json:"multiple"`
	VotesCount int64        `json:"votes_count"`
	Voted      *bool        `json:"voted"`
	Options    []PollOption `json:"options"`
	Emojis     []Emoji      `json:"emojis"`
}

// PollOption is one possible answer of a poll.
type PollOption struct {
	Title      string `json:"title"`
	VotesCount *int64 `json:"votes_count"`
}
