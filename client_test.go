package elefren_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	elefren "github.com/pwoolcoc/elefren"
)

func TestVerifyCredentials(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/accounts/verify_credentials", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Contains(t, r.Header.Get("User-Agent"), "elefren-go/")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"1","username":"alice","acct":"alice"}`)
	}))
	t.Cleanup(srv.Close)

	client := elefren.NewClient(elefren.Data{Base: srv.URL, Token: "secret"})
	account, err := client.VerifyCredentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", account.Username)
}

func TestPostStatusSendsIdempotencyKey(t *testing.T) {
	t.Parallel()
	var keys []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		keys = append(keys, r.Header.Get("Idempotency-Key"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var status map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &status))
		assert.Equal(t, "hello fediverse", status["status"])
		assert.Equal(t, "unlisted", status["visibility"])

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"100","content":"hello fediverse"}`)
	}))
	t.Cleanup(srv.Close)

	client := elefren.NewClient(elefren.Data{Base: srv.URL, Token: "secret"})
	newStatus, err := new(elefren.StatusBuilder).
		Status("hello fediverse").
		Visibility("unlisted").
		Build()
	require.NoError(t, err)

	posted, err := client.PostStatus(context.Background(), newStatus)
	require.NoError(t, err)
	assert.Equal(t, "100", posted.ID)

	_, err = client.PostStatus(context.Background(), newStatus)
	require.NoError(t, err)

	require.Len(t, keys, 2)
	assert.NotEmpty(t, keys[0])
	assert.NotEqual(t, keys[0], keys[1], "each post must carry a fresh idempotency key")
}

func TestClientErrorCarriesAPIPayload(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		http.Error(w, `{"error":"Record not found"}`, http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	client := elefren.NewClient(elefren.Data{Base: srv.URL, Token: "secret"})
	_, err := client.GetStatus(context.Background(), "missing")
	require.Error(t, err)

	var e *elefren.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, elefren.ErrClient, e.Kind)
	assert.Equal(t, http.StatusNotFound, e.StatusCode)

	var apiErr *elefren.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Record not found", apiErr.Text)
}

func TestServerErrorKind(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway exploded", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	client := elefren.NewClient(elefren.Data{Base: srv.URL, Token: "secret"})
	_, err := client.HomeTimeline(context.Background())
	require.Error(t, err)

	var e *elefren.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, elefren.ErrServer, e.Kind)
	assert.Equal(t, http.StatusBadGateway, e.StatusCode)
}

func TestListDecodeFallsBackToAPIError(t *testing.T) {
	t.Parallel()
	// A 2xx response whose body is an error object instead of the expected
	// list must surface as an API error, not a bare decode failure.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"error":"This API requires an authenticated user"}`)
	}))
	t.Cleanup(srv.Close)

	client := elefren.NewClient(elefren.Data{Base: srv.URL})
	_, err := client.HomeTimeline(context.Background())
	require.Error(t, err)

	var e *elefren.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, elefren.ErrAPI, e.Kind)

	var apiErr *elefren.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "This API requires an authenticated user", apiErr.Text)
}

func TestIOErrorKind(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := elefren.NewClient(elefren.Data{Base: srv.URL, Token: "secret"})
	_, err := client.HomeTimeline(context.Background())
	require.Error(t, err)

	var e *elefren.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, elefren.ErrIO, e.Kind)
}
