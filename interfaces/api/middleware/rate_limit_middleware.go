package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"search-funnel/pkg/config"
)

func passthrough(c *fiber.Ctx) error {
	return c.Next()
}

func newLimiter(max, windowSeconds int, code, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: time.Duration(windowSeconds) * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error": fiber.Map{
					"code":    code,
					"message": message,
				},
			})
		},
	})
}

// RateLimiter returns a general rate limiting middleware
func RateLimiter(cfg *config.RateLimitConfig) fiber.Handler {
	if !cfg.Enabled {
		return passthrough
	}
	return newLimiter(cfg.MaxRequests, cfg.WindowSeconds,
		"RATE_LIMIT_EXCEEDED", "Too many requests. Please try again later.")
}

// AuthRateLimiter returns a stricter rate limiting middleware for auth endpoints
func AuthRateLimiter(cfg *config.RateLimitConfig) fiber.Handler {
	if !cfg.Enabled {
		return passthrough
	}
	return newLimiter(cfg.AuthMaxRequests, cfg.AuthWindowSeconds,
		"AUTH_RATE_LIMIT_EXCEEDED", "Too many authentication attempts. Please try again later.")
}

// TrackRateLimiter guards the public event beacon.
func TrackRateLimiter(cfg *config.RateLimitConfig) fiber.Handler {
	if !cfg.Enabled {
		return passthrough
	}
	return newLimiter(cfg.TrackMaxRequests, cfg.WindowSeconds,
		"TRACK_RATE_LIMIT_EXCEEDED", "Too many events. Please slow down.")
}
