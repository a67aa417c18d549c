package notification

import (
	"sync"

	"github.com/gorilla/websocket"
)

// client wraps one live connection. gorilla/websocket allows a single
// concurrent writer, so every WriteJSON goes through writeMu.
type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (c *client) write(message interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(message)
}

// Hub tracks one live connection per username. A new connection replaces the
// old one.
type Hub struct {
	clients map[string]*client
	mutex   sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*client),
	}
}

func (h *Hub) Register(username string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.clients[username]; exists && old != nil {
		_ = old.conn.Close()
	}

	h.clients[username] = &client{conn: conn}
}

// Unregister drops the entry only while conn is still the registered
// connection. On reconnect the replaced connection's reader dies late and
// must not tear down its replacement.
func (h *Hub) Unregister(username string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if cl, exists := h.clients[username]; exists && cl.conn == conn {
		_ = cl.conn.Close()
		delete(h.clients, username)
	}
}

func (h *Hub) SendToUser(username string, message interface{}) bool {
	h.mutex.RLock()
	cl, exists := h.clients[username]
	h.mutex.RUnlock()

	if !exists || cl == nil {
		return false
	}

	if err := cl.write(message); err != nil {
		h.Unregister(username, cl.conn)
		return false
	}

	return true
}

func (h *Hub) IsOnline(username string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.clients[username]
	return exists
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for username, cl := range h.clients {
		if cl != nil {
			_ = cl.conn.Close()
		}
		delete(h.clients, username)
	}
}
