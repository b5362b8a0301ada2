package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"search-funnel/domain/services"
	"search-funnel/pkg/config"
)

const sessionKey = "session"

// Session assigns every browser session an anonymous id (a session cookie,
// no Expires) and exposes the tracking identity of the request to handlers.
func Session(cfg *config.TrackingConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(cfg.SessionCookie)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     cfg.SessionCookie,
				Value:    id,
				Path:     "/",
				HTTPOnly: true,
				Secure:   cfg.SecureCookie,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		c.Locals(sessionKey, services.SessionContext{
			SessionID: id,
			IP:        c.IP(),
			UserAgent: c.Get(fiber.HeaderUserAgent),
			Referer:   c.Get(fiber.HeaderReferer),
			UTMSource: c.Query("utm_source"),
			Host:      c.Hostname(),
		})
		return c.Next()
	}
}

// SessionFrom returns the tracking identity set by Session. Requests that
// skipped the middleware get an identity without a session id.
func SessionFrom(c *fiber.Ctx) services.SessionContext {
	if s, ok := c.Locals(sessionKey).(services.SessionContext); ok {
		return s
	}
	return services.SessionContext{
		IP:        c.IP(),
		UserAgent: c.Get(fiber.HeaderUserAgent),
		Referer:   c.Get(fiber.HeaderReferer),
		Host:      c.Hostname(),
	}
}
