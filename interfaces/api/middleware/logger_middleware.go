package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"search-funnel/pkg/config"
	"search-funnel/pkg/logger"
)

const requestIDKey = "requestid"

func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{ContextKey: requestIDKey})
}

func RequestIDFrom(c *fiber.Ctx) string {
	id, _ := c.Locals(requestIDKey).(string)
	return id
}

// LoggerMiddleware prints an access line and records slow or failed API calls
// in the api category file.
func LoggerMiddleware() fiber.Handler {
	access := fiberlogger.New(fiberlogger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} ${path}\n",
		TimeFormat: "15:04:05",
	})

	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := access(c)
		elapsed := time.Since(start)

		status := c.Response().StatusCode()
		if status >= fiber.StatusInternalServerError || elapsed > 2*time.Second {
			logger.Default().Log(logger.LogEntry{
				Timestamp: start,
				Level:     logger.LevelWarn,
				Category:  logger.CategoryAPI,
				Action:    "request",
				Message:   c.Method() + " " + c.Path(),
				RequestID: RequestIDFrom(c),
				Duration:  elapsed.String(),
				Data:      map[string]interface{}{"status": status},
			})
		}
		return err
	}
}

func CorsMiddleware(cfg *config.AppConfig) fiber.Handler {
	origins := "*"
	if cfg.BaseURL != "" && cfg.Env == "production" {
		origins = strings.TrimRight(cfg.BaseURL, "/")
	}
	return cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	})
}
