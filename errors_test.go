package elefren

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	t.Parallel()
	err := newErrorf(ErrUnknownEvent, "unknown event %q", "bogus")
	assert.Equal(t, `unknown event: unknown event "bogus"`, err.Error())
	assert.Equal(t, "unknown event", ErrUnknownEvent.String())

	bare := &Error{Kind: ErrIO}
	assert.Equal(t, "io error", bare.Error())
}

func TestErrorUnwrap(t *testing.T) {
	t.Parallel()
	cause := errors.New("connection reset")
	err := newError(ErrIO, cause)
	assert.ErrorIs(t, err, cause)

	// Wrapping an *Error again keeps the original kind.
	again := newError(ErrDecode, err)
	assert.Equal(t, ErrIO, again.Kind)
}

func TestAPIErrorMessage(t *testing.T) {
	t.Parallel()
	apiErr := &APIError{Text: "invalid_grant", Description: "authorization code is invalid"}
	assert.Equal(t, "invalid_grant: authorization code is invalid", apiErr.Error())

	short := &APIError{Text: "Record not found"}
	assert.Equal(t, "Record not found", short.Error())
}
