package routes

import (
	"github.com/gofiber/fiber/v2"
	swagger "github.com/swaggo/fiber-swagger"

	"search-funnel/docs"
	"search-funnel/pkg/config"
	"search-funnel/pkg/scalar"
)

func SetupDocsRoutes(app *fiber.App, cfg *config.Config) {
	// Empty host lets the OpenAPI doc work on any domain
	docs.SwaggerInfo.Host = ""
	app.Get("/swagger/*", swagger.WrapHandler)

	scalar.SetupRoutes(app, scalar.Config{
		Title: cfg.App.Name + " Reference",
		Theme: "purple",
	})
}
