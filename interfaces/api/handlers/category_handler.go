package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"search-funnel/domain/dto"
	"search-funnel/domain/services"
	"search-funnel/pkg/utils"
)

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func categoryID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}

// List godoc
// @Summary List categories
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/admin/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.categoryService.List(c.UserContext())
	if err != nil {
		return serviceError(c, "Failed to list categories", err)
	}
	return utils.SuccessResponse(c, "Categories retrieved", dto.CategoriesToResponse(categories))
}

// Get godoc
// @Summary Get a category
// @Tags Categories
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Router /api/v1/admin/categories/{id} [get]
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, err := categoryID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid category ID", err)
	}

	category, err := h.categoryService.Get(c.UserContext(), id)
	if err != nil {
		return serviceError(c, "Category not found", err)
	}
	return utils.SuccessResponse(c, "Category retrieved", dto.CategoryToResponse(category))
}

// Create godoc
// @Summary Create a category
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Param request body dto.CategoryRequest true "Category"
// @Success 201 {object} dto.CategoryResponse
// @Failure 409 {object} map[string]interface{}
// @Router /api/v1/admin/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := utils.ValidateStruct(&req); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}

	category, err := h.categoryService.Create(c.UserContext(), &req)
	if err != nil {
		return serviceError(c, "Failed to create category", err)
	}
	return utils.CreatedResponse(c, "Category created", dto.CategoryToResponse(category))
}

// Update godoc
// @Summary Update a category
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Param id path int true "Category ID"
// @Param request body dto.CategoryRequest true "Category"
// @Success 200 {object} dto.CategoryResponse
// @Router /api/v1/admin/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := categoryID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid category ID", err)
	}

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := utils.ValidateStruct(&req); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}

	category, err := h.categoryService.Update(c.UserContext(), id, &req)
	if err != nil {
		return serviceError(c, "Failed to update category", err)
	}
	return utils.SuccessResponse(c, "Category updated", dto.CategoryToResponse(category))
}

// Delete godoc
// @Summary Delete a category
// @Description Refused with 409 while blogs still reference the category
// @Tags Categories
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/v1/admin/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := categoryID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid category ID", err)
	}

	if err := h.categoryService.Delete(c.UserContext(), id); err != nil {
		return serviceError(c, "Failed to delete category", err)
	}
	return utils.SuccessResponse(c, "Category deleted", nil)
}
