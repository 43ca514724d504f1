package events

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Event types pushed to connected map views.
const (
	LocationCreated = "location_created"
	LocationUpdated = "location_updated"
	LocationDeleted = "location_deleted"
	ImageUploaded   = "image_uploaded"
)

type Event struct {
	Type string `json:"type"`
	ID   int64  `json:"id"`
}

// Hub fans location-change events out to every connected client. Delivery is
// best effort: a failed write closes and drops the connection.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.conns[conn] = struct{}{}
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.conns[conn]; exists {
		_ = conn.Close()
		delete(h.conns, conn)
	}
}

func (h *Hub) Broadcast(eventType string, id int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	event := Event{Type: eventType, ID: id}
	for conn := range h.conns {
		if err := conn.WriteJSON(event); err != nil {
			_ = conn.Close()
			delete(h.conns, conn)
		}
	}
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.conns)
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		_ = conn.Close()
		delete(h.conns, conn)
	}
}
