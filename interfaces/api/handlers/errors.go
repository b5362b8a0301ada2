package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"search-funnel/domain/dto"
	"search-funnel/domain/funnel"
	"search-funnel/domain/repositories"
	"search-funnel/domain/services"
	"search-funnel/pkg/logger"
	"search-funnel/pkg/utils"
)

// statusFor maps a service error to the HTTP status the admin console expects.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrDraftNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrSlugTaken), errors.Is(err, services.ErrCategoryInUse):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrSelectionIncomplete),
		errors.Is(err, services.ErrSelectionFull),
		errors.Is(err, services.ErrInvalidCandidate),
		errors.Is(err, services.ErrNoWebResultSelected),
		errors.Is(err, funnel.ErrDuplicateSelection),
		errors.Is(err, funnel.ErrNegativeCandidate):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, services.ErrGeneratorDisabled):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, services.ErrGenerationFailed):
		return fiber.StatusBadGateway
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrEmailNotAllowed):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// serviceError writes the error envelope for err. Unexpected errors are
// logged and only a SaveError's text reaches the client. A phrase shortfall
// carries the phrases that were produced.
func serviceError(c *fiber.Ctx, message string, err error) error {
	status := statusFor(err)
	var shortfall *services.PhraseShortfallError
	if errors.As(err, &shortfall) {
		// Partial output is returned so the editor can top it up by hand.
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": message,
			"error":   shortfall.Error(),
			"phrases": shortfall.Got,
			"wanted":  shortfall.Wanted,
		})
	}
	if status != fiber.StatusInternalServerError {
		return utils.ErrorResponse(c, status, message, err)
	}

	logger.Error(logger.CategoryAPI, "request_failed", message, err, map[string]interface{}{
		"path":   c.Path(),
		"method": c.Method(),
	})
	var saveErr *repositories.SaveError
	if errors.As(err, &saveErr) {
		return utils.ErrorResponse(c, status, message, saveErr)
	}
	return utils.ErrorResponse(c, status, message, nil)
}

func optionalUUIDQuery(c *fiber.Ctx, name string) (*uuid.UUID, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func bulkResponse(result *services.BulkResult) *dto.BulkDeleteResponse {
	failed := make(map[string]string, len(result.Failed))
	for id, msg := range result.Failed {
		failed[id.String()] = msg
	}
	return &dto.BulkDeleteResponse{Deleted: result.Deleted, Failed: failed}
}
