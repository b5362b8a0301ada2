package routes

import (
	"github.com/gofiber/fiber/v2"

	"search-funnel/interfaces/api/handlers"
)

// SetupContentRoutes registers the CRUD surface of the console.
// router is the protected /admin group.
func SetupContentRoutes(router fiber.Router, h *handlers.Handlers) {
	categories := router.Group("/categories")
	categories.Get("/", h.Category.List)
	categories.Post("/", h.Category.Create)
	categories.Get("/:id", h.Category.Get)
	categories.Put("/:id", h.Category.Update)
	categories.Delete("/:id", h.Category.Delete)

	blogs := router.Group("/blogs")
	blogs.Get("/", h.Blog.List)
	blogs.Post("/", h.Blog.Create)
	blogs.Post("/bulk-delete", h.Blog.BulkDelete)
	blogs.Get("/:id", h.Blog.Get)
	blogs.Put("/:id", h.Blog.Update)
	blogs.Delete("/:id", h.Blog.Delete)

	searches := router.Group("/related-searches")
	searches.Get("/", h.RelatedSearch.List)
	searches.Post("/", h.RelatedSearch.Create)
	searches.Post("/bulk-delete", h.RelatedSearch.BulkDelete)
	searches.Get("/:searchId/pre-landing", h.PreLanding.GetBySearch)
	searches.Put("/:searchId/pre-landing", h.PreLanding.Upsert)
	searches.Get("/:id", h.RelatedSearch.Get)
	searches.Put("/:id", h.RelatedSearch.Update)
	searches.Delete("/:id", h.RelatedSearch.Delete)

	results := router.Group("/web-results")
	results.Get("/", h.WebResult.List)
	results.Post("/", h.WebResult.Create)
	results.Get("/:id", h.WebResult.Get)
	results.Put("/:id", h.WebResult.Update)
	results.Delete("/:id", h.WebResult.Delete)

	preLandings := router.Group("/pre-landings")
	preLandings.Get("/", h.PreLanding.List)
	preLandings.Delete("/:id", h.PreLanding.Delete)
}
