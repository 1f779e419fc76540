package entities

// MediaType is the kind of media held by an attachment.
type MediaType string

const (
	MediaTypeImage   MediaType = "image"
	MediaTypeVideo   MediaType = "video"
	MediaTypeGifv    MediaType = "gifv"
	MediaTypeAudio   MediaType = "audio"
	MediaTypeUnknown MediaType = "unknown"
)

// Attachment is a piece of media attached to a status.
type Attachment struct {
	ID          string          `json:"id"`
	Type        MediaType       `json:"type"`
	URL         string          `json:"url"`
	RemoteURL   *string         `json:"remote_url"`
	PreviewURL  string          `json:"preview_url"`
	TextURL     *string         `json:"text_url"`
	Description *string         `json:"description"`
	Blurhash    string          `json:"blurhash"`
	Meta        *AttachmentMeta `json:"meta"`
}

// AttachmentMeta holds dimension information about an attachment.
type AttachmentMeta struct {
	Original *ImageDetails `json:"original"`
	Small    *ImageDetails `json:"small"`
}

// ImageDetails describes one rendition of an attachment.
type ImageDetails struct {
	Width  int64    `json:"width"`
	Height int64    `json:"height"`
	Size   string   `json:"size"`
	Aspect *float64 `json:"aspect"`
}
