package routes

import (
	"github.com/gofiber/fiber/v2"

	"search-funnel/interfaces/api/handlers"
	"search-funnel/interfaces/api/middleware"
	"search-funnel/pkg/config"
)

// SetupSiteRoutes registers the reader-facing funnel. Every page runs the
// session middleware so events carry the anonymous session id.
func SetupSiteRoutes(app *fiber.App, h *handlers.Handlers, cfg *config.Config) {
	session := middleware.Session(&cfg.Tracking)

	app.Get("/", session, h.Site.Home)
	app.Get("/c/:category", session, h.Site.Category)
	app.Get("/blog/:category/:slug", session, h.Site.Blog)
	app.Get("/results/:id", session, h.Site.Results)

	// Click-through redirects
	app.Get("/go/blog/:id", session, h.Site.BlogClick)
	app.Get("/go/search/:id", session, h.Site.SearchClick)
	app.Get("/go/visit/:webResultId", session, h.Site.Visit)

	// Email capture
	app.Get("/p/:searchId", session, h.Site.PreLanding)
	app.Post("/p/:searchId", middleware.TrackRateLimiter(&cfg.RateLimit), session, h.Site.SubmitEmail)
}

func SetupTrackingRoutes(api fiber.Router, h *handlers.Handlers, cfg *config.Config) {
	api.Post("/events", middleware.TrackRateLimiter(&cfg.RateLimit), middleware.Session(&cfg.Tracking), h.Site.TrackBeacon)
}
