package elefren_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	elefren "github.com/pwoolcoc/elefren"
	"github.com/pwoolcoc/elefren/entities"
)

// pagedServer serves a chain of status pages at /api/v1/timelines/home,
// /page/1, /page/2, ... and counts the requests per path.
type pagedServer struct {
	*httptest.Server
	pages [][]string // status ids per page
	hits  map[string]*int64
}

func newPagedServer(t *testing.T, pages [][]string) *pagedServer {
	t.Helper()
	s := &pagedServer{pages: pages, hits: map[string]*int64{}}
	for i := range pages {
		s.hits[s.pathFor(i)] = new(int64)
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

func (s *pagedServer) pathFor(i int) string {
	if i == 0 {
		return "/api/v1/timelines/home"
	}
	return fmt.Sprintf("/page/%d", i)
}

func (s *pagedServer) pageIndex(path string) (int, bool) {
	for i := range s.pages {
		if s.pathFor(i) == path {
			return i, true
		}
	}
	return 0, false
}

func (s *pagedServer) serve(w http.ResponseWriter, r *http.Request) {
	i, ok := s.pageIndex(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	atomic.AddInt64(s.hits[r.URL.Path], 1)
	var links []string
	if i+1 < len(s.pages) {
		links = append(links, fmt.Sprintf(`<%s%s>; rel="next"`, s.URL, s.pathFor(i+1)))
	}
	if i > 0 {
		links = append(links, fmt.Sprintf(`<%s%s>; rel="prev"`, s.URL, s.pathFor(i-1)))
	}
	if len(links) > 0 {
		w.Header().Set("Link", strings.Join(links, ", "))
	}
	w.Header().Set("Content-Type", "application/json")
	body := "["
	for j, id := range s.pages[i] {
		if j > 0 {
			body += ","
		}
		body += fmt.Sprintf(`{"id":%q,"content":"status %s"}`, id, id)
	}
	body += "]"
	fmt.Fprint(w, body)
}

func (s *pagedServer) hitCount(i int) int64 {
	return atomic.LoadInt64(s.hits[s.pathFor(i)])
}

func (s *pagedServer) client() *elefren.Mastodon {
	return elefren.NewClient(elefren.Data{Base: s.URL, Token: "token"})
}

func ids(statuses []entities.Status) []string {
	out := make([]string, len(statuses))
	for i, st := range statuses {
		out[i] = st.ID
	}
	return out
}

func TestPageNavigation(t *testing.T) {
	t.Parallel()
	srv := newPagedServer(t, [][]string{{"1", "2"}, {"3", "4"}, {"5"}})

	page, err := srv.client().HomeTimeline(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids(page.Items()))

	next, err := page.NextPage(context.Background())
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, []string{"3", "4"}, ids(next.Items()))

	// Navigating forward does not mutate the original page.
	assert.Equal(t, []string{"1", "2"}, ids(page.Items()))

	prev, err := next.PrevPage(context.Background())
	require.NoError(t, err)
	require.NotNil(t, prev)
	assert.Equal(t, []string{"1", "2"}, ids(prev.Items()))
}

func TestPageTerminationWithoutLinks(t *testing.T) {
	t.Parallel()
	srv := newPagedServer(t, [][]string{{"1"}})

	page, err := srv.client().HomeTimeline(context.Background())
	require.NoError(t, err)

	next, err := page.NextPage(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, next)

	prev, err := page.PrevPage(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, prev)

	// A terminal page must not trigger any request.
	assert.EqualValues(t, 1, srv.hitCount(0))
}

func TestItemsIterCount(t *testing.T) {
	t.Parallel()
	srv := newPagedServer(t, [][]string{{"1", "2"}, {"3", "4"}, {"5"}})

	page, err := srv.client().HomeTimeline(context.Background())
	require.NoError(t, err)

	var got []string
	it := page.ItemsIter(context.Background())
	for {
		status, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, status.ID)
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, got)

	// Exhausted iterator stays exhausted.
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestItemsIterFetchesLazily(t *testing.T) {
	t.Parallel()
	srv := newPagedServer(t, [][]string{{"1", "2"}, {"3", "4"}, {"5"}})

	page, err := srv.client().HomeTimeline(context.Background())
	require.NoError(t, err)

	it := page.ItemsIter(context.Background())
	for i := 0; i < 3; i++ {
		_, ok := it.Next()
		require.True(t, ok)
	}
	// Three items need exactly one follow-up fetch and never the third page.
	assert.EqualValues(t, 1, srv.hitCount(1))
	assert.EqualValues(t, 0, srv.hitCount(2))
}

func TestItemsIterStopsSilentlyOnFetchError(t *testing.T) {
	t.Parallel()
	var srvURL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/timelines/home" {
			http.Error(w, `{"error":"whoops"}`, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Link", fmt.Sprintf(`<%s/broken>; rel="next"`, srvURL))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"id":"1"},{"id":"2"}]`)
	}))
	t.Cleanup(srv.Close)
	srvURL = srv.URL

	client := elefren.NewClient(elefren.Data{Base: srv.URL, Token: "token"})
	page, err := client.HomeTimeline(context.Background())
	require.NoError(t, err)

	var count int
	it := page.ItemsIter(context.Background())
	for {
		if _, ok := it.Next(); !ok {
			break
		}
		count++
	}
	// The failed fetch ends the sequence after the first batch, silently.
	assert.Equal(t, 2, count)
}

func TestEmptyPageWithNextKeepsPaginating(t *testing.T) {
	t.Parallel()
	srv := newPagedServer(t, [][]string{{}, {"1"}})

	page, err := srv.client().HomeTimeline(context.Background())
	require.NoError(t, err)
	assert.Empty(t, page.Items())

	next, err := page.NextPage(context.Background())
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, []string{"1"}, ids(next.Items()))

	// The flattening iterator skips the empty batch transparently.
	it := page.ItemsIter(context.Background())
	status, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, "1", status.ID)
}
