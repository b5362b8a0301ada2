package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"search-funnel/domain/dto"
	"search-funnel/domain/models"
	"search-funnel/domain/repositories"
	"search-funnel/domain/services"
	"search-funnel/pkg/utils"
)

type BlogHandler struct {
	blogService services.BlogService
}

func NewBlogHandler(blogService services.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// List godoc
// @Summary List blogs
// @Tags Blogs
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Param status query string false "published or draft"
// @Param categoryId query int false "Category ID"
// @Param q query string false "Title search"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/admin/blogs [get]
func (h *BlogHandler) List(c *fiber.Ctx) error {
	page, limit := utils.Pagination(c)

	filter := repositories.BlogFilter{
		Status: models.BlogStatus(c.Query("status")),
		Query:  c.Query("q"),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid status", nil)
	}
	if cid := c.QueryInt("categoryId", 0); cid > 0 {
		id := uint(cid)
		filter.CategoryID = &id
	}

	blogs, total, err := h.blogService.List(c.UserContext(), filter, page, limit)
	if err != nil {
		return serviceError(c, "Failed to list blogs", err)
	}
	return utils.PaginatedResponse(c, dto.BlogsToResponse(blogs), dto.NewPaginationMeta(total, page, limit))
}

// Get godoc
// @Summary Get a blog with its related searches
// @Tags Blogs
// @Security BearerAuth
// @Param id path string true "Blog ID"
// @Success 200 {object} dto.BlogResponse
// @Router /api/v1/admin/blogs/{id} [get]
func (h *BlogHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid blog ID", err)
	}

	blog, err := h.blogService.Get(c.UserContext(), id)
	if err != nil {
		return serviceError(c, "Blog not found", err)
	}
	return utils.SuccessResponse(c, "Blog retrieved", dto.BlogToResponse(blog))
}

// Create godoc
// @Summary Create a blog
// @Tags Blogs
// @Security BearerAuth
// @Accept json
// @Param request body dto.CreateBlogRequest true "Blog"
// @Success 201 {object} dto.BlogResponse
// @Router /api/v1/admin/blogs [post]
func (h *BlogHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := utils.ValidateStruct(&req); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}

	blog, err := h.blogService.Create(c.UserContext(), &req)
	if err != nil {
		return serviceError(c, "Failed to create blog", err)
	}
	return utils.CreatedResponse(c, "Blog created", dto.BlogToResponse(blog))
}

// Update godoc
// @Summary Update a blog
// @Tags Blogs
// @Security BearerAuth
// @Accept json
// @Param id path string true "Blog ID"
// @Param request body dto.UpdateBlogRequest true "Changed fields"
// @Success 200 {object} dto.BlogResponse
// @Router /api/v1/admin/blogs/{id} [put]
func (h *BlogHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid blog ID", err)
	}

	var req dto.UpdateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := utils.ValidateStruct(&req); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}

	blog, err := h.blogService.Update(c.UserContext(), id, &req)
	if err != nil {
		return serviceError(c, "Failed to update blog", err)
	}
	return utils.SuccessResponse(c, "Blog updated", dto.BlogToResponse(blog))
}

// Delete godoc
// @Summary Delete a blog and everything under it
// @Tags Blogs
// @Security BearerAuth
// @Param id path string true "Blog ID"
// @Success 200 {object} repositories.CascadeReport
// @Router /api/v1/admin/blogs/{id} [delete]
func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid blog ID", err)
	}

	report, err := h.blogService.Delete(c.UserContext(), id)
	if err != nil {
		return serviceError(c, "Failed to delete blog", err)
	}
	return utils.SuccessResponse(c, "Blog deleted", report)
}

// BulkDelete godoc
// @Summary Delete several blogs
// @Description Each id is deleted on its own; failures are reported per id
// @Tags Blogs
// @Security BearerAuth
// @Accept json
// @Param request body dto.BulkDeleteRequest true "IDs"
// @Success 200 {object} dto.BulkDeleteResponse
// @Router /api/v1/admin/blogs/bulk-delete [post]
func (h *BlogHandler) BulkDelete(c *fiber.Ctx) error {
	var req dto.BulkDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := utils.ValidateStruct(&req); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}

	result := h.blogService.BulkDelete(c.UserContext(), req.IDs)
	return utils.SuccessResponse(c, "Bulk delete finished", bulkResponse(result))
}
