package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"search-funnel/pkg/logger"
	"search-funnel/pkg/utils"
)

func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error(logger.CategoryAPI, "error_handler", "Request error occurred", err, map[string]interface{}{
				"status_code": code,
				"path":        c.Path(),
				"method":      c.Method(),
				"request_id":  RequestIDFrom(c),
			})
			return utils.ErrorResponse(c, code, "An error occurred", nil)
		}

		return utils.ErrorResponse(c, code, err.Error(), nil)
	}
}
