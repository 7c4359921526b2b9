// Package upload provides transports for multiplayer progress reports.
package upload

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/verte-zerg/cats/internal/model"
)

const writeTimeout = 5 * time.Second

// MessageTypeProgress is the message type used for progress frames.
const MessageTypeProgress = "progress"

// Message is the frame sent over the WebSocket connection.
type Message struct {
	Type string         `json:"type"`
	Data model.Progress `json:"data"`
}

// WebSocket sends progress reports over a WebSocket connection.
type WebSocket struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

// Dial connects to the multiplayer server at url.
func Dial(ctx context.Context, url string) (*WebSocket, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", url, err)
	}
	return &WebSocket{conn: conn}, nil
}

// Upload sends p as a progress frame.
func (ws *WebSocket) Upload(ctx context.Context, p model.Progress) error {
	ws.writeMu.Lock()
	defer ws.writeMu.Unlock()

	deadline := time.Now().Add(writeTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := ws.conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}
	if err := ws.conn.WriteJSON(Message{Type: MessageTypeProgress, Data: p}); err != nil {
		return fmt.Errorf("failed to send progress: %w", err)
	}
	return nil
}

// Close sends a close frame and closes the connection.
func (ws *WebSocket) Close() error {
	ws.writeMu.Lock()
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := ws.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second)); err != nil {
		// Best-effort close frame.
		_ = err
	}
	ws.writeMu.Unlock()
	return ws.conn.Close()
}
