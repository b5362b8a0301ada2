package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"search-funnel/interfaces/api/middleware"
	websocketHandler "search-funnel/interfaces/api/websocket"
	"search-funnel/pkg/config"
)

func SetupWebSocketRoutes(app *fiber.App, wsHandler *websocketHandler.WebSocketHandler, cfg *config.Config) {
	// Browsers cannot set headers on the upgrade, so the token rides in ?token=
	app.Use("/ws/analytics", middleware.ProtectedWithQueryToken(cfg.JWT.Secret), wsHandler.WebSocketUpgrade)
	app.Get("/ws/analytics", websocket.New(wsHandler.HandleWebSocket))
}
