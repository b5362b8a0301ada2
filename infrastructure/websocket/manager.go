package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"

	"search-funnel/domain/services"
	"search-funnel/pkg/logger"
)

const (
	sendBuffer   = 32
	writeTimeout = 10 * time.Second
)

// Message is the envelope pushed to console listeners.
type Message struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

type client struct {
	conn     *websocket.Conn
	username string
	send     chan []byte
}

// Hub fans tracked rows out to connected admin dashboards. A slow client
// loses messages instead of slowing the tracking workers down.
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]*client
}

var _ services.EventBroadcaster = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]*client)}
}

// RegisterClient starts the writer for conn and returns when it is attached.
func (h *Hub) RegisterClient(conn *websocket.Conn, username string) {
	c := &client{conn: conn, username: username, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	h.clients[conn] = c
	total := len(h.clients)
	h.mu.Unlock()

	go c.writeLoop()

	logger.Info(logger.CategoryWebSocket, "client_registered", "Dashboard connected", map[string]interface{}{
		"username": username,
		"clients":  total,
	})
}

func (h *Hub) UnregisterClient(conn *websocket.Conn) {
	h.mu.Lock()
	c, ok := h.clients[conn]
	if ok {
		delete(h.clients, conn)
		close(c.send)
	}
	total := len(h.clients)
	h.mu.Unlock()

	if ok {
		logger.Info(logger.CategoryWebSocket, "client_unregistered", "Dashboard disconnected", map[string]interface{}{
			"username": c.username,
			"clients":  total,
		})
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) Broadcast(kind string, payload interface{}) {
	raw, err := json.Marshal(Message{Type: kind, Data: payload, Timestamp: time.Now().UTC()})
	if err != nil {
		logger.Error(logger.CategoryWebSocket, "marshal_failed", "Failed to encode broadcast", err, map[string]interface{}{"type": kind})
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		select {
		case c.send <- raw:
		default:
			logger.Warn(logger.CategoryWebSocket, "client_slow", "Dropped message for slow dashboard", map[string]interface{}{
				"username": c.username,
			})
		}
	}
}

func (c *client) writeLoop() {
	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logger.Warn(logger.CategoryWebSocket, "write_failed", "WebSocket write failed", map[string]interface{}{
				"username": c.username,
				"error":    err.Error(),
			})
			// drain so Broadcast never blocks on this client before unregister
			for range c.send {
			}
			return
		}
	}
}
