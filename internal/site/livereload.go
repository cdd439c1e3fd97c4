package site

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  256,
	WriteBufferSize: 256,
	// Local preview only; the page is served from the same host.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ReloadHub tracks live-reload WebSocket connections and broadcasts a
// reload message to all of them after a rebuild.
type ReloadHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

// NewReloadHub returns an empty hub.
func NewReloadHub() *ReloadHub {
	return &ReloadHub{clients: make(map[*websocket.Conn]bool)}
}

// Handler upgrades the request to a WebSocket connection and keeps it
// registered until the peer goes away. Incoming messages are discarded; the
// channel is one-way.
func (h *ReloadHub) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("livereload upgrade: %v", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("livereload read: %v", err)
			}
			return
		}
	}
}

// Broadcast sends a reload message to every connected client. Clients that
// fail the write are dropped.
func (h *ReloadHub) Broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// Count returns the number of connected clients.
func (h *ReloadHub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
