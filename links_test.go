package elefren

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLinkHeader(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		headers []string
		next    string
		prev    string
	}{
		{
			name:    "next and prev",
			headers: []string{`<https://example.com/api/v1/timelines/home?max_id=100>; rel="next", <https://example.com/api/v1/timelines/home?min_id=200>; rel="prev"`},
			next:    "https://example.com/api/v1/timelines/home?max_id=100",
			prev:    "https://example.com/api/v1/timelines/home?min_id=200",
		},
		{
			name:    "next only",
			headers: []string{`<https://example.com/next>; rel="next"`},
			next:    "https://example.com/next",
		},
		{
			name:    "prev only",
			headers: []string{`<https://example.com/prev>; rel="prev"`},
			prev:    "https://example.com/prev",
		},
		{
			name:    "unknown relations ignored",
			headers: []string{`<https://example.com/a>; rel="first", <https://example.com/b>; rel="last"`},
		},
		{
			name:    "unquoted rel",
			headers: []string{`<https://example.com/next>; rel=next`},
			next:    "https://example.com/next",
		},
		{
			name:    "extra params before rel",
			headers: []string{`<https://example.com/next>; type="application/json"; rel="next"`},
			next:    "https://example.com/next",
		},
		{
			name:    "malformed segment skipped",
			headers: []string{`no-url-here; rel="next", <https://example.com/prev>; rel="prev"`},
			prev:    "https://example.com/prev",
		},
		{
			name:    "segment without rel skipped",
			headers: []string{`<https://example.com/a>, <https://example.com/next>; rel="next"`},
			next:    "https://example.com/next",
		},
		{
			name:    "relations split across header values",
			headers: []string{`<https://example.com/next>; rel="next"`, `<https://example.com/prev>; rel="prev"`},
			next:    "https://example.com/next",
			prev:    "https://example.com/prev",
		},
		{
			name: "no header",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rels := parseLinkHeader(tt.headers)
			assert.Equal(t, tt.next, rels.next)
			assert.Equal(t, tt.prev, rels.prev)
		})
	}
}
