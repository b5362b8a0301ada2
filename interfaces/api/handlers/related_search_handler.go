package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"search-funnel/domain/dto"
	"search-funnel/domain/services"
	"search-funnel/pkg/utils"
)

type RelatedSearchHandler struct {
	searchService services.RelatedSearchService
}

func NewRelatedSearchHandler(searchService services.RelatedSearchService) *RelatedSearchHandler {
	return &RelatedSearchHandler{searchService: searchService}
}

// List godoc
// @Summary List related searches
// @Tags RelatedSearches
// @Security BearerAuth
// @Param blogId query string false "Blog ID"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/admin/related-searches [get]
func (h *RelatedSearchHandler) List(c *fiber.Ctx) error {
	blogID, err := optionalUUIDQuery(c, "blogId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid blogId", err)
	}
	page, limit := utils.Pagination(c)

	searches, total, err := h.searchService.List(c.UserContext(), blogID, page, limit)
	if err != nil {
		return serviceError(c, "Failed to list related searches", err)
	}
	return utils.PaginatedResponse(c, dto.RelatedSearchesToResponse(searches), dto.NewPaginationMeta(total, page, limit))
}

// Get godoc
// @Summary Get a related search
// @Tags RelatedSearches
// @Security BearerAuth
// @Param id path string true "Related search ID"
// @Success 200 {object} dto.RelatedSearchResponse
// @Router /api/v1/admin/related-searches/{id} [get]
func (h *RelatedSearchHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid related search ID", err)
	}

	search, err := h.searchService.Get(c.UserContext(), id)
	if err != nil {
		return serviceError(c, "Related search not found", err)
	}
	return utils.SuccessResponse(c, "Related search retrieved", dto.RelatedSearchToResponse(search))
}

// Create godoc
// @Summary Create a related search
// @Tags RelatedSearches
// @Security BearerAuth
// @Accept json
// @Param request body dto.RelatedSearchRequest true "Related search"
// @Success 201 {object} dto.RelatedSearchResponse
// @Router /api/v1/admin/related-searches [post]
func (h *RelatedSearchHandler) Create(c *fiber.Ctx) error {
	var req dto.RelatedSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := utils.ValidateStruct(&req); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}

	search, err := h.searchService.Create(c.UserContext(), &req)
	if err != nil {
		return serviceError(c, "Failed to create related search", err)
	}
	return utils.CreatedResponse(c, "Related search created", dto.RelatedSearchToResponse(search))
}

// Update godoc
// @Summary Update a related search
// @Tags RelatedSearches
// @Security BearerAuth
// @Accept json
// @Param id path string true "Related search ID"
// @Param request body dto.RelatedSearchRequest true "Related search"
// @Success 200 {object} dto.RelatedSearchResponse
// @Router /api/v1/admin/related-searches/{id} [put]
func (h *RelatedSearchHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid related search ID", err)
	}

	var req dto.RelatedSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := utils.ValidateStruct(&req); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}

	search, err := h.searchService.Update(c.UserContext(), id, &req)
	if err != nil {
		return serviceError(c, "Failed to update related search", err)
	}
	return utils.SuccessResponse(c, "Related search updated", dto.RelatedSearchToResponse(search))
}

// Delete godoc
// @Summary Delete a related search with its results, page and tracked rows
// @Tags RelatedSearches
// @Security BearerAuth
// @Param id path string true "Related search ID"
// @Success 200 {object} repositories.CascadeReport
// @Router /api/v1/admin/related-searches/{id} [delete]
func (h *RelatedSearchHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid related search ID", err)
	}

	report, err := h.searchService.Delete(c.UserContext(), id)
	if err != nil {
		return serviceError(c, "Failed to delete related search", err)
	}
	return utils.SuccessResponse(c, "Related search deleted", report)
}

// BulkDelete godoc
// @Summary Delete several related searches
// @Tags RelatedSearches
// @Security BearerAuth
// @Accept json
// @Param request body dto.BulkDeleteRequest true "IDs"
// @Success 200 {object} dto.BulkDeleteResponse
// @Router /api/v1/admin/related-searches/bulk-delete [post]
func (h *RelatedSearchHandler) BulkDelete(c *fiber.Ctx) error {
	var req dto.BulkDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := utils.ValidateStruct(&req); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}

	result := h.searchService.BulkDelete(c.UserContext(), req.IDs)
	return utils.SuccessResponse(c, "Bulk delete finished", bulkResponse(result))
}
