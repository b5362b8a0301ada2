package websocket

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	wshub "search-funnel/infrastructure/websocket"
	"search-funnel/pkg/logger"
	"search-funnel/pkg/utils"
)

// WebSocketHandler serves the live analytics feed of the admin console.
type WebSocketHandler struct {
	hub *wshub.Hub
}

func NewWebSocketHandler(hub *wshub.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

func (h *WebSocketHandler) WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

func (h *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	username := "unknown"
	if admin, ok := c.Locals("admin").(*utils.AdminContext); ok {
		username = admin.Username
	}

	h.hub.RegisterClient(c, username)
	defer h.hub.UnregisterClient(c)

	// The feed is push only; reads just detect the close.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn(logger.CategoryWebSocket, "read_message", "WebSocket read error", map[string]interface{}{
					"username": username,
					"error":    err.Error(),
				})
			}
			return
		}
	}
}
