package serviceimpl

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"search-funnel/domain/dto"
	"search-funnel/domain/funnel"
	"search-funnel/domain/models"
	"search-funnel/domain/repositories"
	"search-funnel/domain/services"
	"search-funnel/pkg/utils"
)

type WebResultServiceImpl struct {
	resultRepo repositories.WebResultRepository
	searchRepo repositories.RelatedSearchRepository
}

func NewWebResultService(
	resultRepo repositories.WebResultRepository,
	searchRepo repositories.RelatedSearchRepository,
) services.WebResultService {
	return &WebResultServiceImpl{
		resultRepo: resultRepo,
		searchRepo: searchRepo,
	}
}

func (s *WebResultServiceImpl) Create(ctx context.Context, req *dto.WebResultRequest) (*models.WebResult, error) {
	if _, err := s.searchRepo.GetByID(ctx, req.RelatedSearchID); err != nil {
		return nil, notFound(err, "related search")
	}

	result := &models.WebResult{
		RelatedSearchID: req.RelatedSearchID,
		Title:           req.Title,
		URL:             req.URL,
		Description:     req.Description,
		LogoURL:         req.LogoURL,
		OrderIndex:      req.OrderIndex,
		IsSponsored:     req.IsSponsored,
	}
	if err := s.resultRepo.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to create web result: %w", err)
	}
	return result, nil
}

func (s *WebResultServiceImpl) Get(ctx context.Context, id uuid.UUID) (*models.WebResult, error) {
	result, err := s.resultRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "web result")
	}
	return result, nil
}

func (s *WebResultServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.WebResultRequest) (*models.WebResult, error) {
	result, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RelatedSearchID != result.RelatedSearchID {
		if _, err := s.searchRepo.GetByID(ctx, req.RelatedSearchID); err != nil {
			return nil, notFound(err, "related search")
		}
		result.RelatedSearchID = req.RelatedSearchID
	}
	result.Title = req.Title
	result.URL = req.URL
	result.Description = req.Description
	result.LogoURL = req.LogoURL
	result.OrderIndex = req.OrderIndex
	result.IsSponsored = req.IsSponsored

	if err := s.resultRepo.Update(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to update web result: %w", err)
	}
	return result, nil
}

func (s *WebResultServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.resultRepo.Delete(ctx, id)
}

func (s *WebResultServiceImpl) ListBySearch(ctx context.Context, searchID uuid.UUID) ([]models.WebResult, error) {
	results, err := s.resultRepo.ListBySearch(ctx, searchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list web results: %w", err)
	}
	return funnel.SortWebResults(results), nil
}

func (s *WebResultServiceImpl) List(ctx context.Context, searchID *uuid.UUID, page, limit int) ([]models.WebResult, int64, error) {
	page, limit = utils.NormalizePage(page, limit)
	return s.resultRepo.List(ctx, searchID, utils.Offset(page, limit), limit)
}
