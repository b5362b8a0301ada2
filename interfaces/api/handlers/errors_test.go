package handlers

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"search-funnel/domain/funnel"
	"search-funnel/domain/repositories"
	"search-funnel/domain/services"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{services.ErrNotFound, fiber.StatusNotFound},
		{fmt.Errorf("blog: %w", services.ErrNotFound), fiber.StatusNotFound},
		{services.ErrDraftNotFound, fiber.StatusNotFound},
		{services.ErrSlugTaken, fiber.StatusConflict},
		{services.ErrCategoryInUse, fiber.StatusConflict},
		{services.ErrSelectionIncomplete, fiber.StatusUnprocessableEntity},
		{funnel.ErrDuplicateSelection, fiber.StatusUnprocessableEntity},
		{services.ErrGeneratorDisabled, fiber.StatusServiceUnavailable},
		{services.ErrGenerationFailed, fiber.StatusBadGateway},
		{services.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{services.ErrEmailNotAllowed, fiber.StatusForbidden},
		{errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}

func TestServiceError_HidesUnexpectedErrors(t *testing.T) {
	app := fiber.New()
	app.Get("/internal", func(c *fiber.Ctx) error {
		return serviceError(c, "Failed", errors.New("pq: password authentication failed"))
	})
	app.Get("/save", func(c *fiber.Ctx) error {
		return serviceError(c, "Failed to save", fmt.Errorf("tx: %w", &repositories.SaveError{Step: "web_result", WR: 2, Position: 3, Err: errors.New("too long")}))
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/internal", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.NotContains(t, body, "error")

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/save", nil))
	require.NoError(t, err)
	body = decodeBody(t, resp)
	assert.Equal(t, "save web result 3 of WR-2: too long", body["error"])
}

func TestServiceError_ShortfallReturnsProducedPhrases(t *testing.T) {
	app := fiber.New()
	app.Post("/generate", func(c *fiber.Ctx) error {
		return serviceError(c, "Failed to generate content", fmt.Errorf("draft: %w",
			&services.PhraseShortfallError{Got: []string{"cheap flights to rome", "last minute deals"}, Wanted: 6}))
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/generate", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, []interface{}{"cheap flights to rome", "last minute deals"}, body["phrases"])
	assert.EqualValues(t, 6, body["wanted"])
}
