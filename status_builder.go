package elefren

import (
	"errors"

	"github.com/pwoolcoc/elefren/entities"
)

// NewStatus is the body of a PostStatus call.
type NewStatus struct {
	Status      string              `json:"status,omitempty"`
	InReplyToID string              `json:"in_reply_to_id,omitempty"`
	MediaIDs    []string            `json:"media_ids,omitempty"`
	Sensitive   bool                `json:"sensitive,omitempty"`
	SpoilerText string              `json:"spoiler_text,omitempty"`
	Visibility  entities.Visibility `json:"visibility,omitempty"`
	Language    string              `json:"language,omitempty"`
}

// StatusBuilder assembles a NewStatus. Build rejects a status with neither
// text nor media.
type StatusBuilder struct {
	status NewStatus
}

// Status sets the text of the status.
func (b *StatusBuilder) Status(text string) *StatusBuilder {
	b.status.Status = text
	return b
}

// InReplyTo makes the status a reply to the given status id.
func (b *StatusBuilder) InReplyTo(id string) *StatusBuilder {
	b.status.InReplyToID = id
	return b
}

// MediaIDs attaches previously uploaded media.
func (b *StatusBuilder) MediaIDs(ids ...string) *StatusBuilder {
	b.status.MediaIDs = ids
	return b
}

// Sensitive marks the media of the status as sensitive.
func (b *StatusBuilder) Sensitive() *StatusBuilder {
	b.status.Sensitive = true
	return b
}

// SpoilerText hides the status text behind a content warning.
func (b *StatusBuilder) SpoilerText(text string) *StatusBuilder {
	b.status.SpoilerText = text
	return b
}

// Visibility sets the visibility of the status.
func (b *StatusBuilder) Visibility(v entities.Visibility) *StatusBuilder {
	b.status.Visibility = v
	return b
}

// Language declares the language the status is written in, as an ISO 639
// code.
func (b *StatusBuilder) Language(code string) *StatusBuilder {
	b.status.Language = code
	return b
}

// Build returns the assembled status body.
func (b *StatusBuilder) Build() (NewStatus, error) {
	if b.status.Status == "" && len(b.status.MediaIDs) == 0 {
		return NewStatus{}, errors.New("status must have text or media")
	}
	return b.status, nil
}
