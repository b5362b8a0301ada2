package serviceimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"search-funnel/domain/dto"
	"search-funnel/domain/models"
	"search-funnel/domain/repositories"
	"search-funnel/domain/services"
	"search-funnel/pkg/utils"
)

type BlogServiceImpl struct {
	blogRepo     repositories.BlogRepository
	categoryRepo repositories.CategoryRepository
	cascadeRepo  repositories.CascadeRepository
}

func NewBlogService(
	blogRepo repositories.BlogRepository,
	categoryRepo repositories.CategoryRepository,
	cascadeRepo repositories.CascadeRepository,
) services.BlogService {
	return &BlogServiceImpl{
		blogRepo:     blogRepo,
		categoryRepo: categoryRepo,
		cascadeRepo:  cascadeRepo,
	}
}

// applyStatus sets the publish timestamp on the way to published and clears
// it on the way back to draft.
func applyStatus(blog *models.Blog, status models.BlogStatus, now time.Time) {
	if status == models.BlogStatusPublished && (blog.Status != models.BlogStatusPublished || blog.PublishedAt == nil) {
		blog.PublishedAt = &now
	}
	if status == models.BlogStatusDraft {
		blog.PublishedAt = nil
	}
	blog.Status = status
}

func (s *BlogServiceImpl) Create(ctx context.Context, req *dto.CreateBlogRequest) (*models.Blog, error) {
	category, err := s.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		return nil, notFound(err, "category")
	}

	var slug string
	if req.Slug != "" {
		slug = utils.Slugify(req.Slug)
		exists, err := s.blogRepo.SlugExists(ctx, slug)
		if err != nil {
			return nil, fmt.Errorf("failed to check slug: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("blog %q: %w", slug, services.ErrSlugTaken)
		}
	} else {
		if slug, err = uniqueSlug(ctx, s.blogRepo, req.Title); err != nil {
			return nil, err
		}
	}

	blog := &models.Blog{
		Title:            req.Title,
		Slug:             slug,
		CategoryID:       category.ID,
		Author:           req.Author,
		Content:          req.Content,
		FeaturedImageURL: req.FeaturedImageURL,
		Status:           models.BlogStatusDraft,
	}
	status := models.BlogStatus(req.Status)
	if status == "" {
		status = models.BlogStatusDraft
	}
	applyStatus(blog, status, time.Now())

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}
	blog.Category = category
	return blog, nil
}

func (s *BlogServiceImpl) Get(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	blog, err := s.blogRepo.GetWithSearches(ctx, id)
	if err != nil {
		return nil, notFound(err, "blog")
	}
	return blog, nil
}

func (s *BlogServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateBlogRequest) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "blog")
	}

	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Slug != nil {
		slug := utils.Slugify(*req.Slug)
		if slug != blog.Slug {
			exists, err := s.blogRepo.SlugExists(ctx, slug)
			if err != nil {
				return nil, fmt.Errorf("failed to check slug: %w", err)
			}
			if exists {
				return nil, fmt.Errorf("blog %q: %w", slug, services.ErrSlugTaken)
			}
			blog.Slug = slug
		}
	}
	if req.CategoryID != nil && *req.CategoryID != blog.CategoryID {
		category, err := s.categoryRepo.GetByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, notFound(err, "category")
		}
		blog.CategoryID = category.ID
		blog.Category = category
	}
	if req.Author != nil {
		blog.Author = *req.Author
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}
	if req.FeaturedImageURL != nil {
		if *req.FeaturedImageURL == "" {
			blog.FeaturedImageURL = nil
		} else {
			blog.FeaturedImageURL = req.FeaturedImageURL
		}
	}
	if req.Status != nil {
		applyStatus(blog, models.BlogStatus(*req.Status), time.Now())
	}

	if err := s.blogRepo.Update(ctx, blog); err != nil {
		return nil, fmt.Errorf("failed to update blog: %w", err)
	}
	return blog, nil
}

func (s *BlogServiceImpl) List(ctx context.Context, filter repositories.BlogFilter, page, limit int) ([]models.Blog, int64, error) {
	page, limit = utils.NormalizePage(page, limit)
	return s.blogRepo.List(ctx, filter, utils.Offset(page, limit), limit)
}

func (s *BlogServiceImpl) Delete(ctx context.Context, id uuid.UUID) (*repositories.CascadeReport, error) {
	return cascadeDelete(ctx, "blog", id, s.cascadeRepo.DeleteBlog)
}

func (s *BlogServiceImpl) BulkDelete(ctx context.Context, ids []uuid.UUID) *services.BulkResult {
	return bulkDelete(ctx, "blog", ids, s.cascadeRepo.DeleteBlog)
}
