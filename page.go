package elefren

import (
	"context"
	"io"
	"net/http"
)

// Page is a single batch of results from a list endpoint, together with the
// links to the adjacent batches. Fetching an adjacent batch always produces
// a new Page; an existing Page is never mutated.
//
// A Page is meant to be used from a single goroutine. It holds a reference
// to the client that fetched it for follow-up requests.
type Page[T any] struct {
	client *Mastodon
	items  []T
	rels   linkRelations
}

// newPage builds a Page from a list response: the body is decoded as a batch
// of T and the Link headers are parsed for the next/prev relations.
func newPage[T any](m *Mastodon, resp *http.Response) (*Page[T], error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newError(ErrIO, err)
	}
	items, err := decodeBody[[]T](m, body)
	if err != nil {
		return nil, err
	}
	return &Page[T]{
		client: m,
		items:  items,
		rels:   parseLinkHeader(resp.Header.Values("Link")),
	}, nil
}

// Items is the current batch, in server order. The returned slice must not
// be modified.
func (p *Page[T]) Items() []T {
	return p.items
}

// NextPage fetches the batch after this one. It returns (nil, nil) when the
// server advertised no next link; no request is made in that case.
func (p *Page[T]) NextPage(ctx context.Context) (*Page[T], error) {
	return p.fetch(ctx, p.rels.next)
}

// PrevPage fetches the batch before this one. It returns (nil, nil) when the
// server advertised no prev link; no request is made in that case.
func (p *Page[T]) PrevPage(ctx context.Context) (*Page[T], error) {
	return p.fetch(ctx, p.rels.prev)
}

func (p *Page[T]) fetch(ctx context.Context, rawurl string) (*Page[T], error) {
	if rawurl == "" {
		return nil, nil
	}
	return getPage[T](ctx, p.client, rawurl)
}

// ItemsIter returns a forward-only iterator over the items of this page and
// every following page. The next batch is fetched synchronously once the
// current one is exhausted, so a call to Next may block for the duration of
// one request.
//
// The iterator ends as soon as a page has no next link, or a fetch fails.
// Fetch errors are not reported; callers that need them must page manually
// with NextPage.
func (p *Page[T]) ItemsIter(ctx context.Context) *ItemsIterator[T] {
	return &ItemsIterator[T]{ctx: ctx, page: p}
}

// ItemsIterator flattens a chain of pages into a single sequence of items.
// It is not restartable and must not be shared between goroutines.
type ItemsIterator[T any] struct {
	ctx  context.Context
	page *Page[T]
	pos  int
	done bool
}

// Next returns the next item, fetching the next page when the current batch
// is exhausted. ok is false once the sequence is over.
func (it *ItemsIterator[T]) Next() (item T, ok bool) {
	for !it.done {
		if it.pos < len(it.page.items) {
			item = it.page.items[it.pos]
			it.pos++
			return item, true
		}
		next, err := it.page.NextPage(it.ctx)
		if err != nil || next == nil {
			it.done = true
			break
		}
		it.page = next
		it.pos = 0
	}
	return item, false
}
