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

type RelatedSearchServiceImpl struct {
	searchRepo  repositories.RelatedSearchRepository
	blogRepo    repositories.BlogRepository
	cascadeRepo repositories.CascadeRepository
}

func NewRelatedSearchService(
	searchRepo repositories.RelatedSearchRepository,
	blogRepo repositories.BlogRepository,
	cascadeRepo repositories.CascadeRepository,
) services.RelatedSearchService {
	return &RelatedSearchServiceImpl{
		searchRepo:  searchRepo,
		blogRepo:    blogRepo,
		cascadeRepo: cascadeRepo,
	}
}

// Create does not enforce the four-searches-per-blog shape; the wizard does,
// and the scheduled audit reports drift.
func (s *RelatedSearchServiceImpl) Create(ctx context.Context, req *dto.RelatedSearchRequest) (*models.RelatedSearch, error) {
	if _, err := s.blogRepo.GetByID(ctx, req.BlogID); err != nil {
		return nil, notFound(err, "blog")
	}

	search := &models.RelatedSearch{
		BlogID:     req.BlogID,
		SearchText: req.SearchText,
		OrderIndex: req.OrderIndex,
		WR:         req.WR,
	}
	if err := s.searchRepo.Create(ctx, search); err != nil {
		return nil, fmt.Errorf("failed to create related search: %w", err)
	}
	return search, nil
}

func (s *RelatedSearchServiceImpl) Get(ctx context.Context, id uuid.UUID) (*models.RelatedSearch, error) {
	search, err := s.searchRepo.GetWithBlog(ctx, id)
	if err != nil {
		return nil, notFound(err, "related search")
	}
	return search, nil
}

func (s *RelatedSearchServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.RelatedSearchRequest) (*models.RelatedSearch, error) {
	search, err := s.searchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "related search")
	}

	if req.BlogID != search.BlogID {
		if _, err := s.blogRepo.GetByID(ctx, req.BlogID); err != nil {
			return nil, notFound(err, "blog")
		}
		search.BlogID = req.BlogID
	}
	search.SearchText = req.SearchText
	search.OrderIndex = req.OrderIndex
	search.WR = req.WR

	if err := s.searchRepo.Update(ctx, search); err != nil {
		return nil, fmt.Errorf("failed to update related search: %w", err)
	}
	return search, nil
}

func (s *RelatedSearchServiceImpl) List(ctx context.Context, blogID *uuid.UUID, page, limit int) ([]models.RelatedSearch, int64, error) {
	page, limit = utils.NormalizePage(page, limit)
	return s.searchRepo.List(ctx, blogID, utils.Offset(page, limit), limit)
}

func (s *RelatedSearchServiceImpl) Delete(ctx context.Context, id uuid.UUID) (*repositories.CascadeReport, error) {
	return cascadeDelete(ctx, "related_search", id, s.cascadeRepo.DeleteRelatedSearch)
}

func (s *RelatedSearchServiceImpl) BulkDelete(ctx context.Context, ids []uuid.UUID) *services.BulkResult {
	return bulkDelete(ctx, "related_search", ids, s.cascadeRepo.DeleteRelatedSearch)
}
