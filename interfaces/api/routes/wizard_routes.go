package routes

import (
	"github.com/gofiber/fiber/v2"

	"search-funnel/interfaces/api/handlers"
)

func SetupWizardRoutes(router fiber.Router, h *handlers.Handlers) {
	wizard := router.Group("/wizard")

	wizard.Post("/", h.Wizard.Start)
	wizard.Get("/:id", h.Wizard.Get)
	wizard.Delete("/:id", h.Wizard.Discard)

	// Step 1: blog content
	wizard.Post("/:id/generate-content", h.Wizard.GenerateContent)
	wizard.Post("/:id/generate-image", h.Wizard.GenerateImage)
	wizard.Put("/:id/content", h.Wizard.UpdateContent)

	// Step 2: related searches
	wizard.Post("/:id/searches/toggle", h.Wizard.ToggleSearch)
	wizard.Put("/:id/searches", h.Wizard.SetSearchOrder)

	// Step 3: web results and pre-landing per WR slot
	wizard.Post("/:id/searches/:wr/web-results", h.Wizard.GenerateWebResults)
	wizard.Post("/:id/searches/:wr/web-results/toggle", h.Wizard.ToggleWebResult)
	wizard.Post("/:id/searches/:wr/pre-landing", h.Wizard.GeneratePreLanding)

	wizard.Post("/:id/save", h.Wizard.Save)

	// Stateless generation endpoint
	router.Post("/generate", h.Wizard.Generate)
}
