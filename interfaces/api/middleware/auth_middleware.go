package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"search-funnel/pkg/logger"
	"search-funnel/pkg/utils"
)

// Protected validates the admin bearer token and stores the admin in locals.
func Protected(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "Missing authorization header")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Invalid authorization header format")
		}

		return authorize(c, token, secret)
	}
}

// ProtectedWithQueryToken accepts the token from the header or ?token=.
// Browsers cannot set headers on WebSocket upgrades.
func ProtectedWithQueryToken(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var token string
		if authHeader := c.Get("Authorization"); authHeader != "" {
			token = utils.ExtractTokenFromHeader(authHeader)
		}
		if token == "" {
			token = c.Query("token")
		}
		if token == "" {
			return utils.UnauthorizedResponse(c, "Missing authorization")
		}

		return authorize(c, token, secret)
	}
}

func authorize(c *fiber.Ctx, token, secret string) error {
	admin, err := utils.ValidateToken(token, secret)
	if err != nil {
		logger.Warn(logger.CategoryAuth, "token_rejected", "Token validation failed", map[string]interface{}{
			"path":  c.Path(),
			"ip":    c.IP(),
			"error": err.Error(),
		})
		switch {
		case errors.Is(err, utils.ErrExpiredToken):
			return utils.UnauthorizedResponse(c, "Token has expired")
		case errors.Is(err, utils.ErrMissingToken):
			return utils.UnauthorizedResponse(c, "Missing token")
		default:
			return utils.UnauthorizedResponse(c, "Invalid token")
		}
	}

	c.Locals("admin", admin)
	return c.Next()
}

// RequireRole checks the role claim of an already authenticated admin.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin, err := utils.GetAdminFromContext(c)
		if err != nil {
			return utils.UnauthorizedResponse(c, "User not authenticated")
		}

		if admin.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Insufficient permissions",
				"error":   "Access denied",
			})
		}

		return c.Next()
	}
}

func AdminOnly() fiber.Handler {
	return RequireRole(utils.RoleAdmin)
}
