package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"search-funnel/domain/dto"
	"search-funnel/domain/services"
	"search-funnel/pkg/utils"
)

type PreLandingHandler struct {
	preLandingService services.PreLandingService
}

func NewPreLandingHandler(preLandingService services.PreLandingService) *PreLandingHandler {
	return &PreLandingHandler{preLandingService: preLandingService}
}

// List godoc
// @Summary List pre-landing configs
// @Tags PreLanding
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/admin/pre-landings [get]
func (h *PreLandingHandler) List(c *fiber.Ctx) error {
	page, limit := utils.Pagination(c)

	configs, total, err := h.preLandingService.List(c.UserContext(), page, limit)
	if err != nil {
		return serviceError(c, "Failed to list pre-landing configs", err)
	}
	return utils.PaginatedResponse(c, dto.PreLandingsToResponse(configs), dto.NewPaginationMeta(total, page, limit))
}

// GetBySearch godoc
// @Summary Get the pre-landing config of a related search
// @Tags PreLanding
// @Security BearerAuth
// @Param searchId path string true "Related search ID"
// @Success 200 {object} dto.PreLandingResponse
// @Router /api/v1/admin/related-searches/{searchId}/pre-landing [get]
func (h *PreLandingHandler) GetBySearch(c *fiber.Ctx) error {
	searchID, err := uuid.Parse(c.Params("searchId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid related search ID", err)
	}

	cfg, err := h.preLandingService.GetBySearch(c.UserContext(), searchID)
	if err != nil {
		return serviceError(c, "Pre-landing config not found", err)
	}
	return utils.SuccessResponse(c, "Pre-landing config retrieved", dto.PreLandingToResponse(cfg))
}

// Upsert godoc
// @Summary Create or replace the pre-landing config of a related search
// @Tags PreLanding
// @Security BearerAuth
// @Accept json
// @Param searchId path string true "Related search ID"
// @Param request body dto.PreLandingRequest true "Config"
// @Success 200 {object} dto.PreLandingResponse
// @Router /api/v1/admin/related-searches/{searchId}/pre-landing [put]
func (h *PreLandingHandler) Upsert(c *fiber.Ctx) error {
	searchID, err := uuid.Parse(c.Params("searchId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid related search ID", err)
	}

	var req dto.PreLandingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := utils.ValidateStruct(&req); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}

	cfg, err := h.preLandingService.Upsert(c.UserContext(), searchID, &req)
	if err != nil {
		return serviceError(c, "Failed to save pre-landing config", err)
	}
	return utils.SuccessResponse(c, "Pre-landing config saved", dto.PreLandingToResponse(cfg))
}

// Delete godoc
// @Summary Delete a pre-landing config
// @Tags PreLanding
// @Security BearerAuth
// @Param id path string true "Config ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/admin/pre-landings/{id} [delete]
func (h *PreLandingHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid config ID", err)
	}

	if err := h.preLandingService.Delete(c.UserContext(), id); err != nil {
		return serviceError(c, "Failed to delete pre-landing config", err)
	}
	return utils.SuccessResponse(c, "Pre-landing config deleted", nil)
}
