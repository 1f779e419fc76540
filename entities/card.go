package entities

// Card is a link preview generated for a status.
type Card struct {
	URL          string  `json:"url"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Type         string  `json:"type"`
	Image        *string `json:"image"`
	AuthorName   *string `json:"author_name"`
	AuthorURL    *string `json:"author_url"`
	ProviderName *string `json:"provider_name"`
	ProviderURL  *string `json:"provider_url"`
	HTML         *string `json:"html"`
	EmbedURL     *string `json:"embed_url"`
	Blurhash     *string `json:"blurhash"`
	Width        *int64  `json:"width"`
	Height       *int64  `json:"height"`
}
