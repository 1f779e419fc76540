package elefren_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	elefren "github.com/pwoolcoc/elefren"
)

func TestStatusesRequestQuery(t *testing.T) {
	t.Parallel()
	var query url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/accounts/77/statuses", r.URL.Path)
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	}))
	t.Cleanup(srv.Close)

	client := elefren.NewClient(elefren.Data{Base: srv.URL, Token: "secret"})
	req := new(elefren.StatusesRequest).
		OnlyMedia().
		ExcludeReplies().
		MaxID("500").
		Limit(40)
	_, err := client.Statuses(context.Background(), "77", req)
	require.NoError(t, err)

	assert.Equal(t, "true", query.Get("only_media"))
	assert.Equal(t, "true", query.Get("exclude_replies"))
	assert.Equal(t, "500", query.Get("max_id"))
	assert.Equal(t, "40", query.Get("limit"))
	assert.False(t, query.Has("pinned"))
	assert.False(t, query.Has("since_id"))
}

func TestStatusesNilRequest(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	}))
	t.Cleanup(srv.Close)

	client := elefren.NewClient(elefren.Data{Base: srv.URL, Token: "secret"})
	_, err := client.Statuses(context.Background(), "77", nil)
	require.NoError(t, err)
}
