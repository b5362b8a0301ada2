package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"search-funnel/interfaces/api/handlers"
)

func SetupHealthRoutes(app *fiber.App, h *handlers.Handlers) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Server is running",
			"service": "Search Funnel",
		})
	})

	// Detailed health check (checks all components)
	if h.Health != nil {
		app.Get("/health/detailed", h.Health.DetailedHealth)
	}

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
