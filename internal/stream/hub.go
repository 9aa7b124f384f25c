// Package stream fans live measurement frames out to websocket clients.
// One Hub serves any number of viewers; each broadcast carries the full
// spectrum and measurement set of one engine run, so late joiners are
// current after a single frame.
package stream

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/analogdevicesinc/precision-converters-library/measure/spectral"
)

// Frame is one broadcast payload: the dB spectrum and measurement set of a
// single engine run.
type Frame struct {
	// Sequence increases by one per broadcast, so clients can detect
	// dropped frames.
	Sequence   uint64    `json:"sequence"`
	Time       time.Time `json:"time"`
	BinWidth   float64   `json:"bin_width_hz"`
	SpectrumDB []float64 `json:"spectrum_db"`

	Measurements spectral.Measurements `json:"measurements"`
}

// A slow client that cannot take a frame within this window is dropped
// rather than backing up the broadcaster.
const writeWait = 5 * time.Second

// Hub accepts websocket upgrades and broadcasts frames to every connected
// client. Safe for concurrent use; Broadcast may run while clients connect
// and disconnect.
type Hub struct {
	log      *zap.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	seq     uint64
	closed  bool
}

// NewHub returns a hub ready to serve upgrades. A nil logger disables
// logging.
func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The monitor serves local dashboards; any origin may view.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]bool),
	}
}

// ServeHTTP upgrades the request and registers the client. The hub is an
// http.Handler so it mounts directly on any mux.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		http.Error(w, "stream closed", http.StatusServiceUnavailable)
		return
	}
	h.mu.Unlock()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	n := len(h.clients)
	h.mu.Unlock()

	h.log.Info("client connected", zap.String("remote", conn.RemoteAddr().String()), zap.Int("clients", n))

	// Clients send nothing meaningful, but the connection must be read to
	// process control frames and notice closure.
	go h.readUntilClose(conn)
}

func (h *Hub) readUntilClose(conn *websocket.Conn) {
	conn.SetReadLimit(512)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.drop(conn, "client disconnected")
			return
		}
	}
}

func (h *Hub) drop(conn *websocket.Conn, reason string) {
	h.mu.Lock()
	_, known := h.clients[conn]
	if known {
		delete(h.clients, conn)
	}
	n := len(h.clients)
	h.mu.Unlock()

	conn.Close()
	if known {
		h.log.Info(reason, zap.String("remote", conn.RemoteAddr().String()), zap.Int("clients", n))
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast stamps the frame's sequence number and sends it to every
// client as one JSON text message. Clients that fail or stall past the
// write deadline are dropped.
func (h *Hub) Broadcast(f Frame) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.seq++
	f.Sequence = h.seq

	payload, err := json.Marshal(f)
	if err != nil {
		h.mu.Unlock()
		h.log.Error("frame marshal failed", zap.Error(err))
		return
	}

	var stale []*websocket.Conn
	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			stale = append(stale, conn)
		}
	}
	for _, conn := range stale {
		delete(h.clients, conn)
	}
	n := len(h.clients)
	h.mu.Unlock()

	for _, conn := range stale {
		conn.Close()
		h.log.Warn("dropped slow client", zap.String("remote", conn.RemoteAddr().String()), zap.Int("clients", n))
	}
}

// Close disconnects every client and rejects later upgrade attempts.
// Idempotent.
func (h *Hub) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.clients = make(map[*websocket.Conn]bool)
	h.mu.Unlock()

	for _, conn := range conns {
		conn.Close()
	}
	h.log.Info("stream hub closed", zap.Int("dropped", len(conns)))
	return nil
}
