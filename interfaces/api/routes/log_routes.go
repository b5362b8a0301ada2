package routes

import (
	"github.com/gofiber/fiber/v2"

	"search-funnel/interfaces/api/handlers"
)

// SetupLogRoutes sets up log-related routes
func SetupLogRoutes(router fiber.Router, h *handlers.Handlers) {
	router.Get("/logs", h.Log.GetLogs)
	router.Get("/logs/files", h.Log.GetLogFiles)
	router.Get("/logs/stats", h.Log.GetLogStats)
}
