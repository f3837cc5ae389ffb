package notify

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks open notification sockets per user. Push is best-effort: a dead
// connection is dropped, never retried.
type Hub struct {
	mu    sync.RWMutex
	conns map[uint]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{conns: make(map[uint]map[*websocket.Conn]bool)}
}

func (h *Hub) Register(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[userID] == nil {
		h.conns[userID] = make(map[*websocket.Conn]bool)
	}
	h.conns[userID][conn] = true
}

func (h *Hub) Unregister(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns[userID], conn)
	if len(h.conns[userID]) == 0 {
		delete(h.conns, userID)
	}
}

func (h *Hub) Push(userID uint, frame []byte) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.conns[userID]))
	for conn := range h.conns[userID] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			log.Printf("websocket push to user %d failed: %v", userID, err)
			conn.Close()
			h.Unregister(userID, conn)
		}
	}
}
