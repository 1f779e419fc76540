package entities

// Tag is a hashtag used within a status.
type Tag struct {
	Name    string       `json:"name"`
	URL     string       `json:"url"`
	History []TagHistory `json:"history"`
}

// TagHistory is usage of a hashtag over one day.
type TagHistory struct {
	Day      string `json:"day"`
	Uses     string `json:"uses"`
	Accounts string `json:"accounts"`
}
