package entities

import "time"

// FilterContext is a timeline context a filter applies to.
type FilterContext string

const (
	FilterContextHome          FilterContext = "home"
	FilterContextNotifications FilterContext = "notifications"
	FilterContextPublic        FilterContext = "public"
	FilterContextThread        FilterContext = "thread"
)

// Filter suppresses statuses matching a phrase in the chosen contexts.
type Filter struct {
	ID           string          `json:"id"`
	Phrase       string          `json:"phrase"`
	Context      []FilterContext `json:"context"`
	ExpiresAt    *time.Time      `json:"expires_at"`
	Irreversible bool            `json:"irreversible"`
	WholeWord    bool            `json:"whole_word"`
}
