package scalar

import (
	"bytes"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"
)

// Config for Scalar API Reference
type Config struct {
	Title string
	Theme string // default, moon, purple, solarized, bluePlanet, deepSpace, saturn, kepler, mars, none
	// SpecURL is where the page fetches the OpenAPI document.
	SpecURL string
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Title:   "API Reference",
		Theme:   "purple",
		SpecURL: "/docs/openapi.json",
	}
}

const scalarTemplate = `<!DOCTYPE html>
<html>
<head>
    <title>{{.Title}}</title>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
</head>
<body>
    <script id="api-reference" data-url="{{.SpecURL}}"></script>
    <script>
        document.getElementById('api-reference').dataset.configuration = JSON.stringify({
            theme: '{{.Theme}}'
        });
    </script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`

// Page renders the reference page for cfg, filling unset fields from
// DefaultConfig.
func Page(cfg Config) ([]byte, error) {
	def := DefaultConfig()
	if cfg.Title == "" {
		cfg.Title = def.Title
	}
	if cfg.Theme == "" {
		cfg.Theme = def.Theme
	}
	if cfg.SpecURL == "" {
		cfg.SpecURL = def.SpecURL
	}

	tmpl, err := template.New("scalar").Parse(scalarTemplate)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SetupRoutes adds both the docs UI and OpenAPI JSON routes
func SetupRoutes(app *fiber.App, cfg Config) {
	page, err := Page(cfg)
	if err != nil {
		panic(err)
	}

	app.Get("/docs/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(doc)
	})

	serve := func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(page)
	}
	app.Get("/docs", serve)
	app.Get("/docs/", serve)
}
