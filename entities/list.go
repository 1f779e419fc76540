package entities

// List is a user-curated collection of followed accounts.
type List struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
