package elefren

import (
	"fmt"
	"io"
	"net/http"

	"github.com/pwoolcoc/elefren/internal/jsonutil"
)

// ErrorKind classifies the failures returned by this library.
type ErrorKind int

const (
	// ErrIO is an underlying transport read/write failure. Fatal for page
	// fetches; stream pulls retry it internally.
	ErrIO ErrorKind = iota + 1
	// ErrDecode means a payload failed to parse as the expected entity.
	ErrDecode
	// ErrUnknownEvent is a streaming frame whose event name is not part of
	// the protocol.
	ErrUnknownEvent
	// ErrMissingPayload is a streaming frame that named an event requiring
	// a payload but carried none.
	ErrMissingPayload
	// ErrAPI is a well-formed error payload returned by the remote service
	// in place of the expected entity.
	ErrAPI
	// ErrClient is an HTTP 4xx response.
	ErrClient
	// ErrServer is an HTTP 5xx response.
	ErrServer
)

var errKindText = map[ErrorKind]string{
	ErrIO:             "io error",
	ErrDecode:         "decode error",
	ErrUnknownEvent:   "unknown event",
	ErrMissingPayload: "missing payload",
	ErrAPI:            "api error",
	ErrClient:         "client error",
	ErrServer:         "server error",
}

func (k ErrorKind) String() string {
	if s, ok := errKindText[k]; ok {
		return s
	}
	return fmt.Sprintf("error kind %d", int(k))
}

// Error describes a failure returned from the Mastodon API or encountered
// while decoding its responses. It always has a non-zero Kind and may carry
// the underlying error which caused the failure condition.
type Error struct {
	Kind       ErrorKind
	StatusCode int   // HTTP status code; zero when not applicable
	Err        error // underlying error responsible for the failure; may be nil
}

// Error implements the builtin error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return errKindText[e.Kind] + ": " + e.Err.Error()
	}
	return errKindText[e.Kind]
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, err error) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{Kind: kind, Err: err}
}

func newErrorf(kind ErrorKind, format string, v ...interface{}) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, v...)}
}

// APIError is the error payload returned by the remote service.
type APIError struct {
	Text        string `json:"error"`
	Description string `json:"error_description"`
}

// Error implements the builtin error interface.
func (e *APIError) Error() string {
	if e.Description != "" {
		return e.Text + ": " + e.Description
	}
	return e.Text
}

// checkResponse turns a non-2xx HTTP response into an *Error keyed by status
// class, decoding the remote error payload when one is present. The response
// body is consumed on failure.
func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	kind := ErrClient
	if resp.StatusCode >= 500 {
		kind = ErrServer
	}
	err := &Error{Kind: kind, StatusCode: resp.StatusCode}
	defer resp.Body.Close()
	body, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if readErr != nil {
		err.Err = readErr
		return err
	}
	apiErr := new(APIError)
	if jsonutil.Unmarshal(body, apiErr) == nil && apiErr.Text != "" {
		err.Err = apiErr
		return err
	}
	err.Err = fmt.Errorf("%s: %q", resp.Status, body)
	return err
}
