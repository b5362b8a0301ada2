package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"search-funnel/domain/dto"
	"search-funnel/domain/services"
	"search-funnel/pkg/utils"
)

type WebResultHandler struct {
	resultService services.WebResultService
}

func NewWebResultHandler(resultService services.WebResultService) *WebResultHandler {
	return &WebResultHandler{resultService: resultService}
}

// List godoc
// @Summary List web results
// @Description With searchId the results come back in display order (sponsored first)
// @Tags WebResults
// @Security BearerAuth
// @Param searchId query string false "Related search ID"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/admin/web-results [get]
func (h *WebResultHandler) List(c *fiber.Ctx) error {
	searchID, err := optionalUUIDQuery(c, "searchId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid searchId", err)
	}

	if searchID != nil && c.Query("page") == "" {
		results, err := h.resultService.ListBySearch(c.UserContext(), *searchID)
		if err != nil {
			return serviceError(c, "Failed to list web results", err)
		}
		return utils.SuccessResponse(c, "Web results retrieved", dto.WebResultsToResponse(results))
	}

	page, limit := utils.Pagination(c)
	results, total, err := h.resultService.List(c.UserContext(), searchID, page, limit)
	if err != nil {
		return serviceError(c, "Failed to list web results", err)
	}
	return utils.PaginatedResponse(c, dto.WebResultsToResponse(results), dto.NewPaginationMeta(total, page, limit))
}

// Get godoc
// @Summary Get a web result
// @Tags WebResults
// @Security BearerAuth
// @Param id path string true "Web result ID"
// @Success 200 {object} dto.WebResultResponse
// @Router /api/v1/admin/web-results/{id} [get]
func (h *WebResultHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid web result ID", err)
	}

	result, err := h.resultService.Get(c.UserContext(), id)
	if err != nil {
		return serviceError(c, "Web result not found", err)
	}
	return utils.SuccessResponse(c, "Web result retrieved", dto.WebResultToResponse(result))
}

// Create godoc
// @Summary Create a web result
// @Tags WebResults
// @Security BearerAuth
// @Accept json
// @Param request body dto.WebResultRequest true "Web result"
// @Success 201 {object} dto.WebResultResponse
// @Router /api/v1/admin/web-results [post]
func (h *WebResultHandler) Create(c *fiber.Ctx) error {
	var req dto.WebResultRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := utils.ValidateStruct(&req); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}

	result, err := h.resultService.Create(c.UserContext(), &req)
	if err != nil {
		return serviceError(c, "Failed to create web result", err)
	}
	return utils.CreatedResponse(c, "Web result created", dto.WebResultToResponse(result))
}

// Update godoc
// @Summary Update a web result
// @Tags WebResults
// @Security BearerAuth
// @Accept json
// @Param id path string true "Web result ID"
// @Param request body dto.WebResultRequest true "Web result"
// @Success 200 {object} dto.WebResultResponse
// @Router /api/v1/admin/web-results/{id} [put]
func (h *WebResultHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid web result ID", err)
	}

	var req dto.WebResultRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := utils.ValidateStruct(&req); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}

	result, err := h.resultService.Update(c.UserContext(), id, &req)
	if err != nil {
		return serviceError(c, "Failed to update web result", err)
	}
	return utils.SuccessResponse(c, "Web result updated", dto.WebResultToResponse(result))
}

// Delete godoc
// @Summary Delete a web result
// @Tags WebResults
// @Security BearerAuth
// @Param id path string true "Web result ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/admin/web-results/{id} [delete]
func (h *WebResultHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid web result ID", err)
	}

	if err := h.resultService.Delete(c.UserContext(), id); err != nil {
		return serviceError(c, "Failed to delete web result", err)
	}
	return utils.SuccessResponse(c, "Web result deleted", nil)
}
