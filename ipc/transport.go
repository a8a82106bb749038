package ipc

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Transport moves envelopes between the sidecar and one bridge process.
type Transport interface {
	ReadEnvelope() (Envelope, error)
	WriteEnvelope(env Envelope) error
	Close() error
	RemoteAddr() string
}

// StreamTransport frames envelopes over a byte stream (unix or tcp socket).
type StreamTransport struct {
	conn net.Conn
	wmu  sync.Mutex
}

func NewStreamTransport(conn net.Conn) *StreamTransport {
	return &StreamTransport{conn: conn}
}

func (t *StreamTransport) ReadEnvelope() (Envelope, error) { return ReadEnvelope(t.conn) }

func (t *StreamTransport) WriteEnvelope(env Envelope) error {
	t.wmu.Lock()
	defer t.wmu.Unlock()
	return WriteEnvelope(t.conn, env)
}

func (t *StreamTransport) Close() error { return t.conn.Close() }

func (t *StreamTransport) RemoteAddr() string {
	if addr := t.conn.RemoteAddr(); addr != nil && addr.String() != "" {
		return addr.String()
	}
	return "local"
}

// WebSocketTransport carries one envelope per text frame.
type WebSocketTransport struct {
	conn         *websocket.Conn
	wmu          sync.Mutex
	writeTimeout time.Duration
}

func NewWebSocketTransport(conn *websocket.Conn) *WebSocketTransport {
	conn.SetReadLimit(MaxFrameSize)
	return &WebSocketTransport{conn: conn, writeTimeout: 5 * time.Second}
}

func (t *WebSocketTransport) ReadEnvelope() (Envelope, error) {
	kind, msg, err := t.conn.ReadMessage()
	if err != nil {
		return Envelope{}, fmt.Errorf("read message: %w", err)
	}
	if kind != websocket.TextMessage && kind != websocket.BinaryMessage {
		return Envelope{}, fmt.Errorf("unexpected frame type %d", kind)
	}
	return decodeEnvelope(msg)
}

func (t *WebSocketTransport) WriteEnvelope(env Envelope) error {
	b, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	t.wmu.Lock()
	defer t.wmu.Unlock()
	_ = t.conn.SetWriteDeadline(time.Now().Add(t.writeTimeout))
	if err := t.conn.WriteMessage(websocket.TextMessage, b); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

func (t *WebSocketTransport) Close() error {
	t.wmu.Lock()
	_ = t.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
	t.wmu.Unlock()
	return t.conn.Close()
}

func (t *WebSocketTransport) RemoteAddr() string { return t.conn.RemoteAddr().String() }

// WebSocketHandler upgrades each request and hands the transport to serve,
// which owns it until it returns.
func WebSocketHandler(serve func(Transport)) http.Handler {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  64 * 1024,
		WriteBufferSize: 64 * 1024,
		CheckOrigin:     func(r *http.Request) bool { return true }, // bridges are local processes
	}
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		serve(NewWebSocketTransport(conn))
	})
}
