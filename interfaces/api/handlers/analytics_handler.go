package handlers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"search-funnel/domain/dto"
	"search-funnel/domain/models"
	"search-funnel/domain/repositories"
	"search-funnel/domain/services"
	"search-funnel/pkg/utils"
)

type AnalyticsHandler struct {
	analyticsService services.AnalyticsService
	exportService    services.ExportService
	auditService     services.AuditService
}

func NewAnalyticsHandler(
	analyticsService services.AnalyticsService,
	exportService services.ExportService,
	auditService services.AuditService,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		exportService:    exportService,
		auditService:     auditService,
	}
}

// parseDate accepts YYYY-MM-DD or RFC3339. A bare date used as an upper
// bound covers the whole day.
func parseDate(raw string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", raw)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func eventFilter(c *fiber.Ctx) (repositories.EventFilter, error) {
	var filter repositories.EventFilter
	var err error

	if t := c.Query("type"); t != "" {
		filter.EventType = models.EventType(t)
		if !filter.EventType.Valid() {
			return filter, fmt.Errorf("unknown event type %q", t)
		}
	}
	if filter.BlogID, err = optionalUUIDQuery(c, "blogId"); err != nil {
		return filter, err
	}
	if filter.RelatedSearchID, err = optionalUUIDQuery(c, "searchId"); err != nil {
		return filter, err
	}
	if filter.From, err = parseDate(c.Query("from"), false); err != nil {
		return filter, err
	}
	if filter.To, err = parseDate(c.Query("to"), true); err != nil {
		return filter, err
	}
	return filter, nil
}

// ListEvents godoc
// @Summary List analytics events
// @Tags Analytics
// @Security BearerAuth
// @Param type query string false "page_view, blog_click, related_search_click, visit_now_click"
// @Param blogId query string false "Blog ID"
// @Param searchId query string false "Related search ID"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/admin/analytics/events [get]
func (h *AnalyticsHandler) ListEvents(c *fiber.Ctx) error {
	filter, err := eventFilter(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filter", err)
	}
	page, limit := utils.Pagination(c)

	events, total, err := h.analyticsService.ListEvents(c.UserContext(), filter, page, limit)
	if err != nil {
		return serviceError(c, "Failed to list events", err)
	}
	return utils.PaginatedResponse(c, dto.AnalyticsEventsToResponse(events), dto.NewPaginationMeta(total, page, limit))
}

// Summary godoc
// @Summary Analytics totals
// @Tags Analytics
// @Security BearerAuth
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} services.AnalyticsSummary
// @Router /api/v1/admin/analytics/summary [get]
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	filter, err := eventFilter(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filter", err)
	}

	summary, err := h.analyticsService.Summary(c.UserContext(), filter)
	if err != nil {
		return serviceError(c, "Failed to build summary", err)
	}
	return utils.SuccessResponse(c, "Summary retrieved", summary)
}

// ListSubmissions godoc
// @Summary List captured emails
// @Tags Analytics
// @Security BearerAuth
// @Param searchId query string false "Related search ID"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/admin/analytics/submissions [get]
func (h *AnalyticsHandler) ListSubmissions(c *fiber.Ctx) error {
	var filter repositories.SubmissionFilter
	var err error
	if filter.RelatedSearchID, err = optionalUUIDQuery(c, "searchId"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid searchId", err)
	}
	if filter.From, err = parseDate(c.Query("from"), false); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid from", err)
	}
	if filter.To, err = parseDate(c.Query("to"), true); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid to", err)
	}
	page, limit := utils.Pagination(c)

	submissions, total, err := h.analyticsService.ListSubmissions(c.UserContext(), filter, page, limit)
	if err != nil {
		return serviceError(c, "Failed to list submissions", err)
	}
	return utils.PaginatedResponse(c, dto.EmailSubmissionsToResponse(submissions), dto.NewPaginationMeta(total, page, limit))
}

// Export godoc
// @Summary Export an entity as CSV
// @Description Analytics events honor the same filters as the event list
// @Tags Exports
// @Security BearerAuth
// @Produce text/csv
// @Param entity path string true "blogs, categories, related-searches, web-results, pre-landings, analytics-events, email-submissions"
// @Success 200 {file} file
// @Router /api/v1/admin/exports/{entity} [get]
func (h *AnalyticsHandler) Export(c *fiber.Ctx) error {
	entity := services.ExportEntity(c.Params("entity"))

	var buf bytes.Buffer
	var err error
	if entity == services.ExportEvents {
		filter, ferr := eventFilter(c)
		if ferr != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filter", ferr)
		}
		_, err = h.exportService.ExportEvents(c.UserContext(), filter, &buf)
	} else {
		_, err = h.exportService.Export(c.UserContext(), entity, &buf)
	}
	if err != nil {
		return serviceError(c, "Failed to export "+string(entity), err)
	}

	filename := fmt.Sprintf("%s-%s.csv", entity, time.Now().UTC().Format("20060102-150405"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Send(buf.Bytes())
}

// Audit godoc
// @Summary Report content units that are not four searches with distinct WR 1-4
// @Tags Analytics
// @Security BearerAuth
// @Success 200 {object} services.AuditReport
// @Router /api/v1/admin/audit [get]
func (h *AnalyticsHandler) Audit(c *fiber.Ctx) error {
	report, err := h.auditService.Run(c.UserContext())
	if err != nil {
		return serviceError(c, "Audit failed", err)
	}
	return utils.SuccessResponse(c, "Audit finished", report)
}
