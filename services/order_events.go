package services

import (
	"encoding/json"
	"sync"

	"github.com/BakhatBug/Keto-Slim/models"

	"github.com/gorilla/websocket"
)

// OrderHub fans order lifecycle events out to connected admin dashboard
// clients. All connected clients see every event; there is no per-user
// routing because the feed is admin-only.
type OrderHub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]struct{}
}

func NewOrderHub() *OrderHub {
	return &OrderHub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *OrderHub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *OrderHub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	_ = conn.Close()
}

// Broadcast sends {kind, order} to every connected client. Write failures
// are ignored here; the read loop on the connection notices the dead peer
// and unregisters it.
func (h *OrderHub) Broadcast(kind string, order *models.Order) {
	msg, _ := json.Marshal(map[string]any{
		"kind":  kind,
		"order": order,
	})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for conn := range h.clients {
		_ = conn.WriteMessage(websocket.TextMessage, msg)
	}
}
