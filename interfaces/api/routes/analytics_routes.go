package routes

import (
	"github.com/gofiber/fiber/v2"

	"search-funnel/interfaces/api/handlers"
)

func SetupAnalyticsRoutes(router fiber.Router, h *handlers.Handlers) {
	analytics := router.Group("/analytics")
	analytics.Get("/events", h.Analytics.ListEvents)
	analytics.Get("/summary", h.Analytics.Summary)
	analytics.Get("/submissions", h.Analytics.ListSubmissions)

	// CSV downloads for every entity
	router.Get("/exports/:entity", h.Analytics.Export)

	router.Get("/audit", h.Analytics.Audit)
}
