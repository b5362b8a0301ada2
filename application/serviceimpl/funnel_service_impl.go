package serviceimpl

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"search-funnel/domain/funnel"
	"search-funnel/domain/models"
	"search-funnel/domain/repositories"
	"search-funnel/domain/services"
	"search-funnel/pkg/utils"
)

type FunnelServiceImpl struct {
	categoryRepo   repositories.CategoryRepository
	blogRepo       repositories.BlogRepository
	searchRepo     repositories.RelatedSearchRepository
	resultRepo     repositories.WebResultRepository
	preLandingRepo repositories.PreLandingRepository
}

func NewFunnelService(
	categoryRepo repositories.CategoryRepository,
	blogRepo repositories.BlogRepository,
	searchRepo repositories.RelatedSearchRepository,
	resultRepo repositories.WebResultRepository,
	preLandingRepo repositories.PreLandingRepository,
) services.FunnelService {
	return &FunnelServiceImpl{
		categoryRepo:   categoryRepo,
		blogRepo:       blogRepo,
		searchRepo:     searchRepo,
		resultRepo:     resultRepo,
		preLandingRepo: preLandingRepo,
	}
}

func (s *FunnelServiceImpl) Feed(ctx context.Context, categorySlug string, page, limit int) (*services.FeedPage, error) {
	page, limit = utils.NormalizePage(page, limit)
	feed := &services.FeedPage{Page: page, Limit: limit}

	var categoryID *uint
	if categorySlug != "" {
		category, err := s.categoryRepo.GetBySlug(ctx, categorySlug)
		if err != nil {
			return nil, notFound(err, "category")
		}
		feed.Category = category
		categoryID = &category.ID
	}

	blogs, total, err := s.blogRepo.ListPublished(ctx, categoryID, utils.Offset(page, limit), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	feed.Blogs = blogs
	feed.Total = total
	return feed, nil
}

func (s *FunnelServiceImpl) Categories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *FunnelServiceImpl) Blog(ctx context.Context, categorySlug, slug string) (*models.Blog, error) {
	blog, err := s.blogRepo.GetPublishedBySlug(ctx, categorySlug, slug)
	if err != nil {
		return nil, notFound(err, "blog")
	}
	return blog, nil
}

// BlogByID only resolves published blogs; drafts are not reachable by readers.
func (s *FunnelServiceImpl) BlogByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "blog")
	}
	if !blog.IsPublished() || blog.Category == nil {
		return nil, fmt.Errorf("blog: %w", services.ErrNotFound)
	}
	return blog, nil
}

func (s *FunnelServiceImpl) SearchWithBlog(ctx context.Context, searchID uuid.UUID) (*models.RelatedSearch, error) {
	search, err := s.searchRepo.GetWithBlog(ctx, searchID)
	if err != nil {
		return nil, notFound(err, "related search")
	}
	if search.Blog == nil || !search.Blog.IsPublished() {
		return nil, fmt.Errorf("related search: %w", services.ErrNotFound)
	}
	return search, nil
}

func (s *FunnelServiceImpl) preLandingFor(ctx context.Context, searchID uuid.UUID) (*models.PreLandingConfig, error) {
	cfg, err := s.preLandingRepo.GetBySearch(ctx, searchID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load pre-landing config: %w", err)
	}
	return cfg, nil
}

func (s *FunnelServiceImpl) Results(ctx context.Context, searchID uuid.UUID) (*services.ResultsPage, error) {
	search, err := s.SearchWithBlog(ctx, searchID)
	if err != nil {
		return nil, err
	}

	results, err := s.resultRepo.ListBySearch(ctx, searchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list web results: %w", err)
	}

	cfg, err := s.preLandingFor(ctx, searchID)
	if err != nil {
		return nil, err
	}

	return &services.ResultsPage{
		Search:     search,
		Results:    funnel.SortWebResults(results),
		PreLanding: cfg != nil,
	}, nil
}

func (s *FunnelServiceImpl) Visit(ctx context.Context, webResultID uuid.UUID) (*funnel.VisitDecision, error) {
	result, err := s.resultRepo.GetByID(ctx, webResultID)
	if err != nil {
		return nil, notFound(err, "web result")
	}

	cfg, err := s.preLandingFor(ctx, result.RelatedSearchID)
	if err != nil {
		return nil, err
	}

	decision := funnel.ResolveVisit(*result, cfg)
	return &decision, nil
}

func (s *FunnelServiceImpl) PreLanding(ctx context.Context, searchID uuid.UUID, overrideID *uuid.UUID) (*services.PreLandingPage, error) {
	search, err := s.SearchWithBlog(ctx, searchID)
	if err != nil {
		return nil, err
	}

	cfg, err := s.preLandingRepo.GetBySearch(ctx, searchID)
	if err != nil {
		return nil, notFound(err, "pre-landing config")
	}

	page := &services.PreLandingPage{Search: search, Config: cfg}
	if overrideID != nil {
		// only results of this search can become the redirect target
		if result, err := s.resultRepo.GetByID(ctx, *overrideID); err == nil && result.RelatedSearchID == searchID {
			page.Override = result.URL
		}
	}
	return page, nil
}
