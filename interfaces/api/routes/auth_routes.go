package routes

import (
	"github.com/gofiber/fiber/v2"

	"search-funnel/interfaces/api/handlers"
	"search-funnel/interfaces/api/middleware"
	"search-funnel/pkg/config"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers, cfg *config.Config) {
	auth := api.Group("/auth", middleware.AuthRateLimiter(&cfg.RateLimit))

	// Operator password
	auth.Post("/login", h.Auth.Login)

	// Google OAuth
	auth.Get("/google", h.Auth.GoogleLogin)
	auth.Get("/google/callback", h.Auth.GoogleCallback)

	// Protected routes
	auth.Get("/me", middleware.Protected(cfg.JWT.Secret), h.Auth.Me)
}
