//go:build go1.23

package elefren

import (
	"context"
	"iter"
)

// All returns the items of this page and every following page as an iterator
// usable with Go 1.23+ range syntax:
//
//	for status := range page.All(ctx) {
//		process(status)
//	}
//
// It has the same contract as ItemsIter: each step may block for one request
// and the sequence ends silently when a fetch fails.
func (p *Page[T]) All(ctx context.Context) iter.Seq[T] {
	return func(yield func(T) bool) {
		it := p.ItemsIter(ctx)
		for {
			item, ok := it.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}
