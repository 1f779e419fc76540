package elefren

import (
	"context"
	"io"
	"net/http"

	"nhooyr.io/websocket"
)

// wsLineSource adapts a WebSocket connection to the LineSource contract:
// every text message carries exactly one line of the event stream.
type wsLineSource struct {
	ctx  context.Context
	conn *websocket.Conn
}

func dialLineSource(ctx context.Context, rawurl string, httpClient *http.Client) (LineSource, error) {
	conn, _, err := websocket.Dial(ctx, rawurl, &websocket.DialOptions{
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, newError(ErrIO, err)
	}
	// Status payloads can be large; the default 32KiB limit truncates them.
	conn.SetReadLimit(1 << 22)
	return &wsLineSource{ctx: ctx, conn: conn}, nil
}

func (ws *wsLineSource) ReadLine() (string, error) {
	_, data, err := ws.conn.Read(ws.ctx)
	if err != nil {
		// A WebSocket read never fails transiently: any error means the
		// connection is gone, so report end-of-input.
		return "", io.EOF
	}
	return string(data), nil
}

func (ws *wsLineSource) Close() error {
	return ws.conn.Close(websocket.StatusNormalClosure, "")
}
