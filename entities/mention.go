package entities

// Mention is a reference to another account inside a status.
type Mention struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Username string `json:"username"`
	Acct     string `json:"acct"`
}
