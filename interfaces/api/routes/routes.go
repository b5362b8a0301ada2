package routes

import (
	"github.com/gofiber/fiber/v2"

	"search-funnel/interfaces/api/handlers"
	"search-funnel/interfaces/api/middleware"
	websocketHandler "search-funnel/interfaces/api/websocket"
	"search-funnel/pkg/config"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, ws *websocketHandler.WebSocketHandler, cfg *config.Config) {
	// Setup health, metrics and docs
	SetupHealthRoutes(app, h)
	SetupDocsRoutes(app, cfg)

	// API version group
	api := app.Group("/api/v1")

	SetupAuthRoutes(api, h, cfg)
	SetupTrackingRoutes(api, h, cfg)

	admin := api.Group("/admin", middleware.RateLimiter(&cfg.RateLimit), middleware.Protected(cfg.JWT.Secret), middleware.AdminOnly())
	SetupContentRoutes(admin, h)
	SetupAnalyticsRoutes(admin, h)
	SetupWizardRoutes(admin, h)
	SetupLogRoutes(admin, h)

	// Setup WebSocket routes (needs app, not api group)
	SetupWebSocketRoutes(app, ws, cfg)

	// Reader-facing pages
	SetupSiteRoutes(app, h, cfg)
}
