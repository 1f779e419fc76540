package elefren

import (
	"context"
	"net/url"
)

// StreamUser opens the stream of events relevant to the authenticated user:
// the home timeline and notifications.
func (m *Mastodon) StreamUser(ctx context.Context) (*EventReader, error) {
	return m.stream(ctx, url.Values{"stream": {"user"}})
}

// StreamPublic opens the firehose of public statuses. With local set, only
// statuses originating on this instance are delivered.
func (m *Mastodon) StreamPublic(ctx context.Context, local bool) (*EventReader, error) {
	stream := "public"
	if local {
		stream = "public:local"
	}
	return m.stream(ctx, url.Values{"stream": {stream}})
}

// StreamDirect opens the stream of direct messages.
func (m *Mastodon) StreamDirect(ctx context.Context) (*EventReader, error) {
	return m.stream(ctx, url.Values{"stream": {"direct"}})
}

// StreamHashtag opens the stream of public statuses carrying the hashtag.
func (m *Mastodon) StreamHashtag(ctx context.Context, tag string, local bool) (*EventReader, error) {
	stream := "hashtag"
	if local {
		stream = "hashtag:local"
	}
	return m.stream(ctx, url.Values{"stream": {stream}, "tag": {tag}})
}

// StreamList opens the stream of statuses for a list.
func (m *Mastodon) StreamList(ctx context.Context, listID string) (*EventReader, error) {
	return m.stream(ctx, url.Values{"stream": {"list"}, "list": {listID}})
}

// stream dials the streaming endpoint over WebSocket and hands the
// connection to an EventReader. The caller owns the reader and must Close
// it; cancelling ctx also ends the stream.
func (m *Mastodon) stream(ctx context.Context, params url.Values) (*EventReader, error) {
	u, err := url.Parse(m.route("/api/v1/streaming"))
	if err != nil {
		return nil, newError(ErrIO, err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return nil, newErrorf(ErrIO, "bad URL scheme %q", u.Scheme)
	}
	params.Set("access_token", m.Data.Token)
	u.RawQuery = params.Encode()
	src, err := dialLineSource(ctx, u.String(), m.httpClient)
	if err != nil {
		return nil, err
	}
	m.log.Debug().Str("stream", params.Get("stream")).Msg("streaming connection opened")
	return newEventReader(src, m.log), nil
}
