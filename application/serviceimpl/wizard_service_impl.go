package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"search-funnel/domain/funnel"
	"search-funnel/domain/models"
	"search-funnel/domain/repositories"
	"search-funnel/domain/services"
	"search-funnel/pkg/logger"
)

type WizardServiceImpl struct {
	drafts       services.DraftStore
	generation   services.GenerationService
	categoryRepo repositories.CategoryRepository
	blogRepo     repositories.BlogRepository
	funnelRepo   repositories.FunnelRepository
}

func NewWizardService(
	drafts services.DraftStore,
	generation services.GenerationService,
	categoryRepo repositories.CategoryRepository,
	blogRepo repositories.BlogRepository,
	funnelRepo repositories.FunnelRepository,
) services.WizardService {
	return &WizardServiceImpl{
		drafts:       drafts,
		generation:   generation,
		categoryRepo: categoryRepo,
		blogRepo:     blogRepo,
		funnelRepo:   funnelRepo,
	}
}

func (s *WizardServiceImpl) Start(ctx context.Context, input services.StartDraftInput) (*services.WizardDraft, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.New("title is required")
	}

	category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, notFound(err, "category")
	}

	now := time.Now().UTC()
	draft := &services.WizardDraft{
		ID:           uuid.New(),
		Title:        title,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		Author:       strings.TrimSpace(input.Author),
		Candidates:   []funnel.Phrase{},
		Searches:     funnel.NewSelection(funnel.SearchSlots),
		Slots:        map[int]*services.PhraseSlot{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.drafts.Put(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to store draft: %w", err)
	}

	logger.Info(logger.CategoryWizard, "draft_started", "Wizard draft started", map[string]interface{}{
		"draft_id": draft.ID.String(),
		"title":    title,
	})
	return draft, nil
}

func (s *WizardServiceImpl) Get(ctx context.Context, id uuid.UUID) (*services.WizardDraft, error) {
	return s.drafts.Get(ctx, id)
}

func (s *WizardServiceImpl) Discard(ctx context.Context, id uuid.UUID) error {
	if _, err := s.drafts.Get(ctx, id); err != nil {
		return err
	}
	return s.drafts.Delete(ctx, id)
}

// update loads the draft, applies fn and stores the result. When fn fails
// nothing is written, so the stored draft keeps its previous state.
func (s *WizardServiceImpl) update(ctx context.Context, id uuid.UUID, fn func(d *services.WizardDraft) error) (*services.WizardDraft, error) {
	draft, err := s.drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(draft); err != nil {
		return nil, err
	}

	draft.UpdatedAt = time.Now().UTC()
	if err := s.drafts.Put(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to store draft: %w", err)
	}
	return draft, nil
}

func resetSelection(d *services.WizardDraft) {
	d.Searches = funnel.NewSelection(funnel.SearchSlots)
	d.Slots = map[int]*services.PhraseSlot{}
}

func (s *WizardServiceImpl) GenerateContent(ctx context.Context, id uuid.UUID) (*services.WizardDraft, error) {
	return s.update(ctx, id, func(d *services.WizardDraft) error {
		content, err := s.generation.GenerateContent(ctx, d.Title, d.CategoryName)
		if err != nil {
			return err
		}
		d.Content = content.Body
		if content.ImageURL != "" {
			d.ImageURL = content.ImageURL
		}
		d.Candidates = content.Phrases
		resetSelection(d)
		return nil
	})
}

func (s *WizardServiceImpl) GenerateImage(ctx context.Context, id uuid.UUID) (*services.WizardDraft, error) {
	return s.update(ctx, id, func(d *services.WizardDraft) error {
		imageURL, err := s.generation.GenerateImage(ctx, d.Title, d.CategoryName)
		if err != nil {
			return err
		}
		d.ImageURL = imageURL
		return nil
	})
}

func (s *WizardServiceImpl) UpdateContent(ctx context.Context, id uuid.UUID, input services.DraftContentInput) (*services.WizardDraft, error) {
	return s.update(ctx, id, func(d *services.WizardDraft) error {
		if input.Content != nil {
			d.Content = *input.Content
		}
		if input.ImageURL != nil {
			d.ImageURL = strings.TrimSpace(*input.ImageURL)
		}
		if input.Phrases != nil {
			phrases := funnel.NormalizePhrases(input.Phrases, funnel.PhraseWords, funnel.CandidatePhrases)
			d.Candidates = make([]funnel.Phrase, len(phrases))
			for i, p := range phrases {
				d.Candidates[i] = funnel.Phrase{Text: p}
			}
			resetSelection(d)
		}
		return nil
	})
}

func checkCandidate(d *services.WizardDraft, candidate int) error {
	if candidate < 0 || candidate >= len(d.Candidates) {
		return fmt.Errorf("%w: %d of %d", services.ErrInvalidCandidate, candidate, len(d.Candidates))
	}
	return nil
}

func (s *WizardServiceImpl) ToggleSearch(ctx context.Context, id uuid.UUID, candidate int) (*services.WizardDraft, error) {
	return s.update(ctx, id, func(d *services.WizardDraft) error {
		if err := checkCandidate(d, candidate); err != nil {
			return err
		}
		_, err := d.Searches.Toggle(candidate)
		return err
	})
}

func (s *WizardServiceImpl) SetSearchOrder(ctx context.Context, id uuid.UUID, order []int) (*services.WizardDraft, error) {
	return s.update(ctx, id, func(d *services.WizardDraft) error {
		for _, c := range order {
			if err := checkCandidate(d, c); err != nil {
				return err
			}
		}
		return d.Searches.Set(order)
	})
}

// slotFor enforces the complete-selection gate before any per-phrase step.
func slotFor(d *services.WizardDraft, wr int) (int, *services.PhraseSlot, error) {
	if !d.Searches.Complete() {
		return 0, nil, fmt.Errorf("%w: %d of %d selected", services.ErrSelectionIncomplete, d.Searches.Len(), funnel.SearchSlots)
	}
	candidate, slot, ok := d.SlotForWR(wr)
	if !ok {
		return 0, nil, fmt.Errorf("%w: WR-%d", services.ErrInvalidCandidate, wr)
	}
	return candidate, slot, nil
}

func (s *WizardServiceImpl) GenerateWebResults(ctx context.Context, id uuid.UUID, wr int) (*services.WizardDraft, error) {
	return s.update(ctx, id, func(d *services.WizardDraft) error {
		candidate, slot, err := slotFor(d, wr)
		if err != nil {
			return err
		}

		results, err := s.generation.GenerateWebResults(ctx, d.Candidates[candidate].Text)
		if err != nil {
			return err
		}
		slot.WebResults = results
		slot.Selected = funnel.NewSelection(funnel.WebResultSlots)
		slot.PreLanding = nil
		return nil
	})
}

func (s *WizardServiceImpl) ToggleWebResult(ctx context.Context, id uuid.UUID, wr, index int) (*services.WizardDraft, error) {
	return s.update(ctx, id, func(d *services.WizardDraft) error {
		_, slot, err := slotFor(d, wr)
		if err != nil {
			return err
		}
		if index < 0 || index >= len(slot.WebResults) {
			return fmt.Errorf("%w: web result %d of %d", services.ErrInvalidCandidate, index, len(slot.WebResults))
		}
		_, err = slot.Selected.Toggle(index)
		return err
	})
}

func (s *WizardServiceImpl) GeneratePreLanding(ctx context.Context, id uuid.UUID, wr int) (*services.WizardDraft, error) {
	return s.update(ctx, id, func(d *services.WizardDraft) error {
		_, slot, err := slotFor(d, wr)
		if err != nil {
			return err
		}
		first, ok := slot.Selected.At(1)
		if !ok {
			return services.ErrNoWebResultSelected
		}

		page, err := s.generation.GeneratePreLanding(ctx, slot.WebResults[first].Title)
		if err != nil {
			return err
		}
		slot.PreLanding = page
		return nil
	})
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// buildBundle lays the draft out in insert order: searches by WR, web
// results by selection order, positions starting at 1.
func buildBundle(d *services.WizardDraft, blog *models.Blog) *repositories.FunnelBundle {
	bundle := &repositories.FunnelBundle{Blog: blog}

	for wr := 1; wr <= funnel.SearchSlots; wr++ {
		candidate, _ := d.Searches.At(wr)
		wrValue := wr
		sb := repositories.SearchBundle{
			Search: &models.RelatedSearch{
				SearchText: d.Candidates[candidate].Text,
				OrderIndex: wr,
				WR:         &wrValue,
			},
		}

		if slot, ok := d.Slots[candidate]; ok && slot != nil {
			for pos, idx := range slot.Selected.Items {
				gr := slot.WebResults[idx]
				sb.WebResults = append(sb.WebResults, &models.WebResult{
					Title:       gr.Title,
					URL:         gr.URL,
					Description: optional(gr.Description),
					LogoURL:     optional(gr.LogoURL),
					OrderIndex:  pos + 1,
					IsSponsored: gr.IsSponsored,
				})
			}

			if slot.PreLanding != nil && len(sb.WebResults) > 0 {
				destination := sb.WebResults[0].URL
				sb.PreLanding = &models.PreLandingConfig{
					LogoPosition:       models.LogoPositionTop,
					BackgroundColor:    slot.PreLanding.BackgroundColor,
					BackgroundImageURL: optional(slot.PreLanding.ImageURL),
					Headline:           slot.PreLanding.Headline,
					Description:        slot.PreLanding.Description,
					ButtonText:         slot.PreLanding.ButtonText,
					EmailPlaceholder:   "Enter your email",
					DestinationURL:     &destination,
				}
				if sb.PreLanding.BackgroundColor == "" {
					sb.PreLanding.BackgroundColor = "#ffffff"
				}
				if sb.PreLanding.ButtonText == "" {
					sb.PreLanding.ButtonText = "Continue"
				}
			}
		}

		bundle.Searches = append(bundle.Searches, sb)
	}
	return bundle
}

func (s *WizardServiceImpl) Save(ctx context.Context, id uuid.UUID, status models.BlogStatus) (*models.Blog, error) {
	if status == "" {
		status = models.BlogStatusDraft
	}
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	draft, err := s.drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !draft.Searches.Complete() {
		return nil, fmt.Errorf("%w: %d of %d selected", services.ErrSelectionIncomplete, draft.Searches.Len(), funnel.SearchSlots)
	}

	slug, err := uniqueSlug(ctx, s.blogRepo, draft.Title)
	if err != nil {
		return nil, err
	}

	blog := &models.Blog{
		Title:            draft.Title,
		Slug:             slug,
		CategoryID:       draft.CategoryID,
		Author:           draft.Author,
		Content:          draft.Content,
		FeaturedImageURL: optional(draft.ImageURL),
		Status:           models.BlogStatusDraft,
	}
	applyStatus(blog, status, time.Now())

	bundle := buildBundle(draft, blog)
	if err := s.funnelRepo.SaveBundle(ctx, bundle); err != nil {
		logger.Error(logger.CategoryWizard, "save_failed", "Failed to save content unit", err, map[string]interface{}{
			"draft_id": id.String(),
		})
		return nil, fmt.Errorf("failed to save content unit: %w", err)
	}

	if err := s.drafts.Delete(ctx, id); err != nil {
		logger.Warn(logger.CategoryWizard, "draft_cleanup_failed", "Saved draft could not be removed", map[string]interface{}{
			"draft_id": id.String(),
			"error":    err.Error(),
		})
	}

	blog.RelatedSearches = make([]models.RelatedSearch, 0, len(bundle.Searches))
	for _, sb := range bundle.Searches {
		blog.RelatedSearches = append(blog.RelatedSearches, *sb.Search)
	}

	logger.Info(logger.CategoryWizard, "content_unit_saved", "Content unit saved", map[string]interface{}{
		"draft_id": id.String(),
		"blog_id":  blog.ID.String(),
		"slug":     blog.Slug,
		"status":   string(blog.Status),
	})
	return blog, nil
}
