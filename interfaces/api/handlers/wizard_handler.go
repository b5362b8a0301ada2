package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"search-funnel/domain/dto"
	"search-funnel/domain/funnel"
	"search-funnel/domain/models"
	"search-funnel/domain/services"
	"search-funnel/pkg/utils"
)

type WizardHandler struct {
	wizardService     services.WizardService
	generationService services.GenerationService
}

func NewWizardHandler(wizardService services.WizardService, generationService services.GenerationService) *WizardHandler {
	return &WizardHandler{
		wizardService:     wizardService,
		generationService: generationService,
	}
}

func wizardDraftToResponse(d *services.WizardDraft) *dto.WizardDraftResponse {
	resp := &dto.WizardDraftResponse{
		ID:               d.ID,
		Title:            d.Title,
		CategoryID:       d.CategoryID,
		CategoryName:     d.CategoryName,
		Author:           d.Author,
		Content:          d.Content,
		WordCount:        funnel.WordCount(d.Content),
		ImageURL:         d.ImageURL,
		Candidates:       make([]dto.WizardCandidateResponse, len(d.Candidates)),
		Searches:         []dto.WizardSearchResponse{},
		SearchesComplete: d.Searches.Complete(),
		UpdatedAt:        d.UpdatedAt,
	}

	for i, p := range d.Candidates {
		resp.Candidates[i] = dto.WizardCandidateResponse{
			Index:       i,
			Text:        p.Text,
			Placeholder: p.Placeholder,
			WR:          d.Searches.Rank(i),
		}
	}

	for pos, candidate := range d.Searches.Items {
		if candidate >= len(d.Candidates) {
			continue
		}
		search := dto.WizardSearchResponse{
			WR:         pos + 1,
			Index:      candidate,
			Text:       d.Candidates[candidate].Text,
			WebResults: []dto.WizardWebResultResponse{},
		}
		if slot, ok := d.Slots[candidate]; ok && slot != nil {
			for i, r := range slot.WebResults {
				search.WebResults = append(search.WebResults, dto.WizardWebResultResponse{
					Index:       i,
					Title:       r.Title,
					Description: r.Description,
					URL:         r.URL,
					DisplayURL:  r.DisplayURL,
					LogoURL:     r.LogoURL,
					IsSponsored: r.IsSponsored,
					Position:    slot.Selected.Rank(i),
				})
			}
			if p := slot.PreLanding; p != nil {
				search.PreLanding = &dto.WizardPreLandingResponse{
					Headline:        p.Headline,
					Description:     p.Description,
					ButtonText:      p.ButtonText,
					BackgroundColor: p.BackgroundColor,
					ImageURL:        p.ImageURL,
				}
			}
		}
		resp.Searches = append(resp.Searches, search)
	}
	return resp
}

func draftID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

func (h *WizardHandler) respond(c *fiber.Ctx, message string, draft *services.WizardDraft, err error) error {
	if err != nil {
		return serviceError(c, message+" failed", err)
	}
	return utils.SuccessResponse(c, message, wizardDraftToResponse(draft))
}

// Start godoc
// @Summary Start a content unit draft
// @Tags Wizard
// @Security BearerAuth
// @Accept json
// @Param request body dto.StartWizardRequest true "Title and category"
// @Success 201 {object} dto.WizardDraftResponse
// @Router /api/v1/admin/wizard [post]
func (h *WizardHandler) Start(c *fiber.Ctx) error {
	var req dto.StartWizardRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := utils.ValidateStruct(&req); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}

	draft, err := h.wizardService.Start(c.UserContext(), services.StartDraftInput{
		Title:      req.Title,
		CategoryID: req.CategoryID,
		Author:     req.Author,
	})
	if err != nil {
		return serviceError(c, "Failed to start draft", err)
	}
	return utils.CreatedResponse(c, "Draft started", wizardDraftToResponse(draft))
}

// Get godoc
// @Summary Get a draft
// @Tags Wizard
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 200 {object} dto.WizardDraftResponse
// @Router /api/v1/admin/wizard/{id} [get]
func (h *WizardHandler) Get(c *fiber.Ctx) error {
	id, err := draftID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid draft ID", err)
	}
	draft, err := h.wizardService.Get(c.UserContext(), id)
	return h.respond(c, "Draft retrieved", draft, err)
}

// Discard godoc
// @Summary Throw a draft away
// @Tags Wizard
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/admin/wizard/{id} [delete]
func (h *WizardHandler) Discard(c *fiber.Ctx) error {
	id, err := draftID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid draft ID", err)
	}
	if err := h.wizardService.Discard(c.UserContext(), id); err != nil {
		return serviceError(c, "Failed to discard draft", err)
	}
	return utils.SuccessResponse(c, "Draft discarded", nil)
}

// GenerateContent godoc
// @Summary Generate body, featured image and six candidate searches
// @Tags Wizard
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 200 {object} dto.WizardDraftResponse
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/admin/wizard/{id}/generate-content [post]
func (h *WizardHandler) GenerateContent(c *fiber.Ctx) error {
	id, err := draftID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid draft ID", err)
	}
	draft, err := h.wizardService.GenerateContent(c.UserContext(), id)
	return h.respond(c, "Content generated", draft, err)
}

// GenerateImage godoc
// @Summary Regenerate the featured image
// @Tags Wizard
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 200 {object} dto.WizardDraftResponse
// @Router /api/v1/admin/wizard/{id}/generate-image [post]
func (h *WizardHandler) GenerateImage(c *fiber.Ctx) error {
	id, err := draftID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid draft ID", err)
	}
	draft, err := h.wizardService.GenerateImage(c.UserContext(), id)
	return h.respond(c, "Image generated", draft, err)
}

// UpdateContent godoc
// @Summary Edit body, image or candidate searches
// @Description Replacing the phrases clears the current selection
// @Tags Wizard
// @Security BearerAuth
// @Accept json
// @Param id path string true "Draft ID"
// @Param request body dto.UpdateDraftContentRequest true "Changed fields"
// @Success 200 {object} dto.WizardDraftResponse
// @Router /api/v1/admin/wizard/{id}/content [put]
func (h *WizardHandler) UpdateContent(c *fiber.Ctx) error {
	id, err := draftID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid draft ID", err)
	}

	var req dto.UpdateDraftContentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := utils.ValidateStruct(&req); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}

	draft, err := h.wizardService.UpdateContent(c.UserContext(), id, services.DraftContentInput{
		Content:  req.Content,
		ImageURL: req.ImageURL,
		Phrases:  req.Phrases,
	})
	return h.respond(c, "Content updated", draft, err)
}

// ToggleSearch godoc
// @Summary Select or deselect a candidate search
// @Description Selection order assigns WR-1..WR-4
// @Tags Wizard
// @Security BearerAuth
// @Accept json
// @Param id path string true "Draft ID"
// @Param request body dto.ToggleRequest true "Candidate index"
// @Success 200 {object} dto.WizardDraftResponse
// @Failure 422 {object} map[string]interface{}
// @Router /api/v1/admin/wizard/{id}/searches/toggle [post]
func (h *WizardHandler) ToggleSearch(c *fiber.Ctx) error {
	id, err := draftID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid draft ID", err)
	}

	var req dto.ToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := utils.ValidateStruct(&req); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}

	draft, err := h.wizardService.ToggleSearch(c.UserContext(), id, req.Index)
	return h.respond(c, "Selection updated", draft, err)
}

// SetSearchOrder godoc
// @Summary Replace the ranked search selection
// @Tags Wizard
// @Security BearerAuth
// @Accept json
// @Param id path string true "Draft ID"
// @Param request body dto.SearchOrderRequest true "Candidate indexes in WR order"
// @Success 200 {object} dto.WizardDraftResponse
// @Router /api/v1/admin/wizard/{id}/searches [put]
func (h *WizardHandler) SetSearchOrder(c *fiber.Ctx) error {
	id, err := draftID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid draft ID", err)
	}

	var req dto.SearchOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := utils.ValidateStruct(&req); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}

	draft, err := h.wizardService.SetSearchOrder(c.UserContext(), id, req.Order)
	return h.respond(c, "Selection updated", draft, err)
}

func wrParam(c *fiber.Ctx) (int, error) {
	wr, err := c.ParamsInt("wr")
	if err != nil || wr < 1 || wr > funnel.SearchSlots {
		return 0, fiber.NewError(fiber.StatusBadRequest, "wr must be 1-4")
	}
	return wr, nil
}

// GenerateWebResults godoc
// @Summary Generate six web results for the search holding WR
// @Tags Wizard
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param wr path int true "WR 1-4"
// @Success 200 {object} dto.WizardDraftResponse
// @Failure 422 {object} map[string]interface{}
// @Router /api/v1/admin/wizard/{id}/searches/{wr}/web-results [post]
func (h *WizardHandler) GenerateWebResults(c *fiber.Ctx) error {
	id, err := draftID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid draft ID", err)
	}
	wr, err := wrParam(c)
	if err != nil {
		return err
	}
	draft, err := h.wizardService.GenerateWebResults(c.UserContext(), id, wr)
	return h.respond(c, "Web results generated", draft, err)
}

// ToggleWebResult godoc
// @Summary Select or deselect a generated web result
// @Tags Wizard
// @Security BearerAuth
// @Accept json
// @Param id path string true "Draft ID"
// @Param wr path int true "WR 1-4"
// @Param request body dto.ToggleRequest true "Web result index"
// @Success 200 {object} dto.WizardDraftResponse
// @Router /api/v1/admin/wizard/{id}/searches/{wr}/web-results/toggle [post]
func (h *WizardHandler) ToggleWebResult(c *fiber.Ctx) error {
	id, err := draftID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid draft ID", err)
	}
	wr, err := wrParam(c)
	if err != nil {
		return err
	}

	var req dto.ToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := utils.ValidateStruct(&req); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}

	draft, err := h.wizardService.ToggleWebResult(c.UserContext(), id, wr, req.Index)
	return h.respond(c, "Web result selection updated", draft, err)
}

// GeneratePreLanding godoc
// @Summary Generate the pre-landing page for the search holding WR
// @Tags Wizard
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param wr path int true "WR 1-4"
// @Success 200 {object} dto.WizardDraftResponse
// @Router /api/v1/admin/wizard/{id}/searches/{wr}/pre-landing [post]
func (h *WizardHandler) GeneratePreLanding(c *fiber.Ctx) error {
	id, err := draftID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid draft ID", err)
	}
	wr, err := wrParam(c)
	if err != nil {
		return err
	}
	draft, err := h.wizardService.GeneratePreLanding(c.UserContext(), id, wr)
	return h.respond(c, "Pre-landing generated", draft, err)
}

// Save godoc
// @Summary Persist the draft as a content unit
// @Tags Wizard
// @Security BearerAuth
// @Accept json
// @Param id path string true "Draft ID"
// @Param request body dto.SaveDraftRequest true "Status"
// @Success 201 {object} dto.BlogResponse
// @Failure 422 {object} map[string]interface{}
// @Router /api/v1/admin/wizard/{id}/save [post]
func (h *WizardHandler) Save(c *fiber.Ctx) error {
	id, err := draftID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid draft ID", err)
	}

	var req dto.SaveDraftRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
		}
	}
	if errs := utils.ValidateStruct(&req); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}

	blog, err := h.wizardService.Save(c.UserContext(), id, models.BlogStatus(req.Status))
	if err != nil {
		return serviceError(c, "Failed to save content unit", err)
	}
	return utils.CreatedResponse(c, "Content unit saved", dto.BlogToResponse(blog))
}

// Generate godoc
// @Summary Run one generation call without a draft
// @Tags Wizard
// @Security BearerAuth
// @Accept json
// @Param request body dto.GenerateRequest true "Mode and inputs"
// @Success 200 {object} services.GenerationResult
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/admin/generate [post]
func (h *WizardHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := utils.ValidateStruct(&req); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}

	result, err := h.generationService.Generate(c.UserContext(), services.GenerationRequest{
		Mode:        services.GenerationMode(req.Mode),
		Title:       req.Title,
		Category:    req.Category,
		SearchText:  req.SearchText,
		ResultTitle: req.ResultTitle,
	})
	if err != nil {
		return serviceError(c, "Generation failed", err)
	}
	return utils.SuccessResponse(c, "Generated", result)
}
