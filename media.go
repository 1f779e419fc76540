package elefren

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/pwoolcoc/elefren/entities"
)

// MediaBuilder assembles a media upload: the file contents plus an optional
// description and focal point.
type MediaBuilder struct {
	reader      io.Reader
	filename    string
	description string
	focus       string
}

// NewMediaBuilder prepares an upload of the media read from r. The filename
// is reported to the instance as the original file name.
func NewMediaBuilder(r io.Reader, filename string) *MediaBuilder {
	return &MediaBuilder{reader: r, filename: filename}
}

// Description sets the alt text of the media.
func (b *MediaBuilder) Description(text string) *MediaBuilder {
	b.description = text
	return b
}

// Focus sets the focal point used when the media is cropped, both
// coordinates in [-1, 1].
func (b *MediaBuilder) Focus(x, y float64) *MediaBuilder {
	b.focus = strconv.FormatFloat(x, 'f', -1, 64) + "," + strconv.FormatFloat(y, 'f', -1, 64)
	return b
}

// UploadMedia uploads media for use in a later status. The id of the
// returned attachment goes into NewStatus.MediaIDs.
func (m *Mastodon) UploadMedia(ctx context.Context, b *MediaBuilder) (entities.Attachment, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", b.filename)
	if err != nil {
		return entities.Attachment{}, newError(ErrIO, err)
	}
	if _, err := io.Copy(part, b.reader); err != nil {
		return entities.Attachment{}, newError(ErrIO, err)
	}
	if b.description != "" {
		if err := form.WriteField("description", b.description); err != nil {
			return entities.Attachment{}, newError(ErrIO, err)
		}
	}
	if b.focus != "" {
		if err := form.WriteField("focus", b.focus); err != nil {
			return entities.Attachment{}, newError(ErrIO, err)
		}
	}
	if err := form.Close(); err != nil {
		return entities.Attachment{}, newError(ErrIO, err)
	}
	header := http.Header{"Content-Type": {form.FormDataContentType()}}
	resp, err := m.do(ctx, http.MethodPost, m.route("/api/v1/media"), &buf, header)
	if err != nil {
		return entities.Attachment{}, err
	}
	return decodeResponse[entities.Attachment](m, resp)
}
