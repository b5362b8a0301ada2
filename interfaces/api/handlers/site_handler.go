package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"search-funnel/domain/dto"
	"search-funnel/domain/funnel"
	"search-funnel/domain/models"
	"search-funnel/domain/services"
	"search-funnel/interfaces/api/middleware"
	"search-funnel/interfaces/web"
	"search-funnel/pkg/logger"
	"search-funnel/pkg/utils"
)

const feedPageSize = 12

// SiteHandler serves the reader-facing pages: feed, blog, results and the
// email-capture page, tracking every step of the funnel.
type SiteHandler struct {
	funnelService   services.FunnelService
	trackingService services.TrackingService
	views           *web.Renderer
}

func NewSiteHandler(funnelService services.FunnelService, trackingService services.TrackingService, views *web.Renderer) *SiteHandler {
	return &SiteHandler{
		funnelService:   funnelService,
		trackingService: trackingService,
		views:           views,
	}
}

type feedView struct {
	Feed       *services.FeedPage
	Categories []models.Category
	PrevPage   int
	NextPage   int
}

type preLandingView struct {
	Page        *services.PreLandingPage
	WebResultID string
	Email       string
	Error       string
}

func (h *SiteHandler) track(c *fiber.Ctx, input services.EventInput) {
	h.trackingService.TrackEvent(middleware.SessionFrom(c), input)
}

func (h *SiteHandler) notFound(c *fiber.Ctx) error {
	return h.views.Render(c, fiber.StatusNotFound, web.PageStatus, "Page not found", "The page you are looking for does not exist.")
}

func (h *SiteHandler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrNotFound) {
		return h.notFound(c)
	}
	logger.Error(logger.CategoryFunnel, "page_failed", "Failed to render page", err, map[string]interface{}{
		"path":       c.Path(),
		"request_id": middleware.RequestIDFrom(c),
	})
	return h.views.Render(c, fiber.StatusInternalServerError, web.PageStatus, "Something went wrong", "Please try again in a moment.")
}

func (h *SiteHandler) feed(c *fiber.Ctx, categorySlug string) error {
	feed, err := h.funnelService.Feed(c.UserContext(), categorySlug, c.QueryInt("page", 1), feedPageSize)
	if err != nil {
		return h.fail(c, err)
	}
	categories, err := h.funnelService.Categories(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}

	view := feedView{Feed: feed, Categories: categories}
	if feed.Page > 1 {
		view.PrevPage = feed.Page - 1
	}
	if int64(feed.Page*feed.Limit) < feed.Total {
		view.NextPage = feed.Page + 1
	}

	title := ""
	if feed.Category != nil {
		title = feed.Category.Name
	}
	return h.views.Render(c, fiber.StatusOK, web.PageHome, title, view)
}

// Home renders the newest published blogs.
func (h *SiteHandler) Home(c *fiber.Ctx) error {
	return h.feed(c, "")
}

func (h *SiteHandler) Category(c *fiber.Ctx) error {
	return h.feed(c, c.Params("category"))
}

func (h *SiteHandler) Blog(c *fiber.Ctx) error {
	blog, err := h.funnelService.Blog(c.UserContext(), c.Params("category"), c.Params("slug"))
	if err != nil {
		return h.fail(c, err)
	}

	h.track(c, services.EventInput{Type: models.EventPageView, BlogID: &blog.ID})
	return h.views.Render(c, fiber.StatusOK, web.PageBlog, blog.Title, blog)
}

// BlogClick records a click on a feed card and forwards to the blog.
func (h *SiteHandler) BlogClick(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return h.notFound(c)
	}
	blog, err := h.funnelService.BlogByID(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}

	h.track(c, services.EventInput{Type: models.EventBlogClick, BlogID: &blog.ID})
	return c.Redirect("/blog/" + blog.Category.Slug + "/" + blog.Slug)
}

// SearchClick records a related-search click and forwards to its results.
func (h *SiteHandler) SearchClick(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return h.notFound(c)
	}
	search, err := h.funnelService.SearchWithBlog(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}

	h.track(c, services.EventInput{
		Type:            models.EventRelatedSearchClick,
		BlogID:          &search.BlogID,
		RelatedSearchID: &search.ID,
	})
	return c.Redirect("/results/" + search.ID.String())
}

func (h *SiteHandler) Results(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return h.notFound(c)
	}
	page, err := h.funnelService.Results(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}

	h.track(c, services.EventInput{
		Type:            models.EventPageView,
		BlogID:          &page.Search.BlogID,
		RelatedSearchID: &page.Search.ID,
	})
	return h.views.Render(c, fiber.StatusOK, web.PageResults, page.Search.SearchText, page)
}

// Visit sends a "visit now" click through the pre-landing page when the
// search has one, otherwise straight to the result.
func (h *SiteHandler) Visit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("webResultId"))
	if err != nil {
		return h.notFound(c)
	}
	decision, err := h.funnelService.Visit(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}

	h.track(c, services.EventInput{
		Type:            models.EventVisitNowClick,
		RelatedSearchID: &decision.RelatedSearchID,
		WebResultID:     &decision.WebResultID,
		Metadata: map[string]interface{}{
			"web_result_id": decision.WebResultID.String(),
			"destination":   string(decision.Kind),
		},
	})

	if decision.Kind == funnel.VisitPreLanding {
		return c.Redirect("/p/" + decision.RelatedSearchID.String() + "?wr=" + decision.WebResultID.String())
	}
	return c.Redirect(decision.URL)
}

func (h *SiteHandler) preLandingPage(c *fiber.Ctx, wr string) (*services.PreLandingPage, error) {
	searchID, err := uuid.Parse(c.Params("searchId"))
	if err != nil {
		return nil, services.ErrNotFound
	}

	var override *uuid.UUID
	if id, err := uuid.Parse(wr); err == nil {
		override = &id
	}
	return h.funnelService.PreLanding(c.UserContext(), searchID, override)
}

func (h *SiteHandler) PreLanding(c *fiber.Ctx) error {
	wr := c.Query("wr")
	page, err := h.preLandingPage(c, wr)
	if err != nil {
		return h.fail(c, err)
	}

	h.track(c, services.EventInput{
		Type:            models.EventPageView,
		BlogID:          &page.Search.BlogID,
		RelatedSearchID: &page.Search.ID,
	})
	return h.views.Render(c, fiber.StatusOK, web.PagePreLanding, page.Config.Headline, preLandingView{Page: page, WebResultID: wr})
}

// SubmitEmail captures the reader's email and redirects to the clicked
// result, the configured destination, or a thank-you page.
func (h *SiteHandler) SubmitEmail(c *fiber.Ctx) error {
	wr := c.FormValue("wr")
	page, err := h.preLandingPage(c, wr)
	if err != nil {
		return h.fail(c, err)
	}

	email := strings.TrimSpace(c.FormValue("email"))
	if !utils.ValidEmail(email) {
		return h.views.Render(c, fiber.StatusUnprocessableEntity, web.PagePreLanding, page.Config.Headline, preLandingView{
			Page:        page,
			WebResultID: wr,
			Email:       email,
			Error:       "Please enter a valid email address.",
		})
	}

	input := services.EmailInput{Email: email, RelatedSearchID: &page.Search.ID}
	if id, err := uuid.Parse(wr); err == nil && page.Override != "" {
		input.WebResultID = &id
	}
	h.trackingService.TrackEmail(middleware.SessionFrom(c), input)

	if dest, ok := funnel.ResolveSubmissionRedirect(page.Override, page.Config); ok {
		return c.Redirect(dest, fiber.StatusSeeOther)
	}
	return h.views.Render(c, fiber.StatusOK, web.PageThankYou, "Thank you", nil)
}

// TrackBeacon godoc
// @Summary Record a client-side funnel event
// @Description Always answers 202; malformed events are dropped
// @Tags Tracking
// @Accept json
// @Param request body dto.TrackEventRequest true "Event"
// @Success 202
// @Router /api/v1/events [post]
func (h *SiteHandler) TrackBeacon(c *fiber.Ctx) error {
	var req dto.TrackEventRequest
	if err := c.BodyParser(&req); err == nil && utils.ValidateStruct(&req) == nil {
		h.track(c, services.EventInput{
			Type:            models.EventType(req.EventType),
			BlogID:          req.BlogID,
			RelatedSearchID: req.RelatedSearchID,
			WebResultID:     req.WebResultID,
		})
	}
	return c.SendStatus(fiber.StatusAccepted)
}
