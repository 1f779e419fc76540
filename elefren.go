// Package elefren is a client for the Mastodon HTTP and streaming APIs.
//
// List endpoints return a *Page whose items can be walked one batch at a
// time with NextPage/PrevPage, or flattened across batches:
//
//	client := elefren.NewClient(data)
//	page, err := client.HomeTimeline(ctx)
//	if err != nil {
//		// ...
//	}
//	for it := page.ItemsIter(ctx); ; {
//		status, ok := it.Next()
//		if !ok {
//			break
//		}
//		fmt.Println(status.Content)
//	}
//
// Realtime timelines are consumed through an EventReader:
//
//	events, err := client.StreamUser(ctx)
//	if err != nil {
//		// ...
//	}
//	defer events.Close()
//	for {
//		ev, err := events.Next()
//		if err == io.EOF {
//			break
//		}
//		switch ev := ev.(type) {
//		case entities.UpdateEvent:
//			fmt.Println(ev.Status.Content)
//		case entities.DeleteEvent:
//			fmt.Println("deleted", ev.ID)
//		}
//	}
package elefren

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/pwoolcoc/elefren/internal/jsonutil"
)

// Mastodon issues authenticated requests against a single instance. It is
// safe for concurrent use as long as the http.Client it wraps is; the Page
// and EventReader values it hands out are not.
type Mastodon struct {
	// Data is the raw credential data for the instance.
	Data Data

	httpClient *http.Client
	log        zerolog.Logger
	userAgent  string
}

// Option customizes a client created by NewClient.
type Option func(*Mastodon)

// WithHTTPClient sets the http.Client used for every request, including the
// WebSocket handshake of the streaming endpoints.
func WithHTTPClient(c *http.Client) Option {
	return func(m *Mastodon) { m.httpClient = c }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Mastodon) { m.log = log }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(m *Mastodon) { m.userAgent = ua }
}

// NewClient creates a client for the instance described by data.
func NewClient(data Data, opts ...Option) *Mastodon {
	m := &Mastodon{
		Data:       data,
		httpClient: http.DefaultClient,
		log:        zerolog.Nop(),
		userAgent:  defaultUserAgent(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Mastodon) route(path string) string {
	return m.Data.Base + path
}

// request issues one HTTP request with bearer auth. A non-nil in is sent as
// a JSON body. Non-2xx responses are turned into errors keyed by status
// class; the returned response is always 2xx with an unread body.
func (m *Mastodon) request(ctx context.Context, method, rawurl string, in interface{}, header http.Header) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		p, err := jsonutil.Marshal(in)
		if err != nil {
			return nil, newError(ErrDecode, err)
		}
		body = bytes.NewReader(p)
		h := make(http.Header, len(header)+1)
		for k, vs := range header {
			h[k] = vs
		}
		h.Set("Content-Type", "application/json")
		header = h
	}
	return m.do(ctx, method, rawurl, body, header)
}

// do sends a raw request body, for the callers that are not JSON, such as
// the multipart media upload.
func (m *Mastodon) do(ctx context.Context, method, rawurl string, body io.Reader, header http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawurl, body)
	if err != nil {
		return nil, newError(ErrIO, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", m.userAgent)
	if m.Data.Token != "" {
		req.Header.Set("Authorization", "Bearer "+m.Data.Token)
	}
	for k, vs := range header {
		req.Header[k] = vs
	}
	resp, err := m.httpClient.Do(req)
	if err != nil {
		m.log.Debug().Str("method", method).Str("url", rawurl).Err(err).Msg("request failed")
		return nil, newError(ErrIO, err)
	}
	m.log.Debug().Str("method", method).Str("url", rawurl).Int("status", resp.StatusCode).Msg("request")
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// decodeBody decodes body as a T. When that fails, the body is retried as an
// APIError so that a well-formed remote error is reported as ErrAPI rather
// than ErrDecode. Used uniformly by every route and by page fetches.
func decodeBody[T any](m *Mastodon, body []byte) (T, error) {
	var v T
	if err := jsonutil.Unmarshal(body, &v); err != nil {
		m.log.Error().Err(err).Msg("failed to decode response body")
		apiErr := new(APIError)
		if jsonutil.Unmarshal(body, apiErr) == nil && apiErr.Text != "" {
			return v, newError(ErrAPI, apiErr)
		}
		return v, newError(ErrDecode, err)
	}
	return v, nil
}

func decodeResponse[T any](m *Mastodon, resp *http.Response) (T, error) {
	defer resp.Body.Close()
	var zero T
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, newError(ErrIO, err)
	}
	return decodeBody[T](m, body)
}

func get[T any](ctx context.Context, m *Mastodon, rawurl string) (T, error) {
	var zero T
	resp, err := m.request(ctx, http.MethodGet, rawurl, nil, nil)
	if err != nil {
		return zero, err
	}
	return decodeResponse[T](m, resp)
}

func post[T any](ctx context.Context, m *Mastodon, rawurl string, in interface{}) (T, error) {
	var zero T
	resp, err := m.request(ctx, http.MethodPost, rawurl, in, nil)
	if err != nil {
		return zero, err
	}
	return decodeResponse[T](m, resp)
}

func patch[T any](ctx context.Context, m *Mastodon, rawurl string, in interface{}) (T, error) {
	var zero T
	resp, err := m.request(ctx, http.MethodPatch, rawurl, in, nil)
	if err != nil {
		return zero, err
	}
	return decodeResponse[T](m, resp)
}

func put[T any](ctx context.Context, m *Mastodon, rawurl string, in interface{}) (T, error) {
	var zero T
	resp, err := m.request(ctx, http.MethodPut, rawurl, in, nil)
	if err != nil {
		return zero, err
	}
	return decodeResponse[T](m, resp)
}

func del[T any](ctx context.Context, m *Mastodon, rawurl string) (T, error) {
	var zero T
	resp, err := m.request(ctx, http.MethodDelete, rawurl, nil, nil)
	if err != nil {
		return zero, err
	}
	return decodeResponse[T](m, resp)
}

// getPage fetches rawurl and wraps the response batch in a Page.
func getPage[T any](ctx context.Context, m *Mastodon, rawurl string) (*Page[T], error) {
	resp, err := m.request(ctx, http.MethodGet, rawurl, nil, nil)
	if err != nil {
		return nil, err
	}
	return newPage[T](m, resp)
}
