package serviceimpl

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"search-funnel/domain/dto"
	"search-funnel/domain/models"
	"search-funnel/domain/repositories"
	"search-funnel/domain/services"
	"search-funnel/pkg/utils"
)

type PreLandingServiceImpl struct {
	preLandingRepo repositories.PreLandingRepository
	searchRepo     repositories.RelatedSearchRepository
}

func NewPreLandingService(
	preLandingRepo repositories.PreLandingRepository,
	searchRepo repositories.RelatedSearchRepository,
) services.PreLandingService {
	return &PreLandingServiceImpl{
		preLandingRepo: preLandingRepo,
		searchRepo:     searchRepo,
	}
}

func (s *PreLandingServiceImpl) GetBySearch(ctx context.Context, searchID uuid.UUID) (*models.PreLandingConfig, error) {
	cfg, err := s.preLandingRepo.GetBySearch(ctx, searchID)
	if err != nil {
		return nil, notFound(err, "pre-landing config")
	}
	return cfg, nil
}

func applyPreLanding(cfg *models.PreLandingConfig, req *dto.PreLandingRequest) {
	cfg.LogoURL = req.LogoURL
	cfg.LogoPosition = models.LogoPosition(req.LogoPosition)
	if cfg.LogoPosition == "" {
		cfg.LogoPosition = models.LogoPositionTop
	}
	cfg.BackgroundColor = req.BackgroundColor
	if cfg.BackgroundColor == "" {
		cfg.BackgroundColor = "#ffffff"
	}
	cfg.BackgroundImageURL = req.BackgroundImageURL
	cfg.Headline = req.Headline
	cfg.Description = req.Description
	cfg.ButtonText = req.ButtonText
	if cfg.ButtonText == "" {
		cfg.ButtonText = "Continue"
	}
	cfg.EmailPlaceholder = req.EmailPlaceholder
	if cfg.EmailPlaceholder == "" {
		cfg.EmailPlaceholder = "Enter your email"
	}
	cfg.DestinationURL = req.DestinationURL
	if cfg.DestinationURL != nil && *cfg.DestinationURL == "" {
		cfg.DestinationURL = nil
	}
}

func (s *PreLandingServiceImpl) Upsert(ctx context.Context, searchID uuid.UUID, req *dto.PreLandingRequest) (*models.PreLandingConfig, error) {
	if _, err := s.searchRepo.GetByID(ctx, searchID); err != nil {
		return nil, notFound(err, "related search")
	}

	cfg, err := s.preLandingRepo.GetBySearch(ctx, searchID)
	switch {
	case err == nil:
		applyPreLanding(cfg, req)
		if err := s.preLandingRepo.Update(ctx, cfg); err != nil {
			return nil, fmt.Errorf("failed to update pre-landing config: %w", err)
		}
	case isNotFound(err):
		cfg = &models.PreLandingConfig{RelatedSearchID: searchID}
		applyPreLanding(cfg, req)
		if err := s.preLandingRepo.Create(ctx, cfg); err != nil {
			return nil, fmt.Errorf("failed to create pre-landing config: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to load pre-landing config: %w", err)
	}
	return cfg, nil
}

func (s *PreLandingServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.preLandingRepo.GetByID(ctx, id); err != nil {
		return notFound(err, "pre-landing config")
	}
	return s.preLandingRepo.Delete(ctx, id)
}

func (s *PreLandingServiceImpl) List(ctx context.Context, page, limit int) ([]models.PreLandingConfig, int64, error) {
	page, limit = utils.NormalizePage(page, limit)
	return s.preLandingRepo.List(ctx, utils.Offset(page, limit), limit)
}
