package serviceimpl

import (
	"context"
	"fmt"

	"search-funnel/domain/dto"
	"search-funnel/domain/models"
	"search-funnel/domain/repositories"
	"search-funnel/domain/services"
	"search-funnel/pkg/utils"
)

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) services.CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

func categorySlug(req *dto.CategoryRequest) string {
	if req.Slug != "" {
		return utils.Slugify(req.Slug)
	}
	return utils.Slugify(req.Name)
}

func (s *CategoryServiceImpl) Create(ctx context.Context, req *dto.CategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Name:      req.Name,
		Slug:      categorySlug(req),
		CodeRange: req.CodeRange,
	}
	if category.Slug == "" {
		return nil, fmt.Errorf("category name must contain letters or digits")
	}

	if _, err := s.categoryRepo.GetBySlug(ctx, category.Slug); err == nil {
		return nil, fmt.Errorf("category %q: %w", category.Slug, services.ErrSlugTaken)
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) Get(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "category")
	}
	return category, nil
}

func (s *CategoryServiceImpl) Update(ctx context.Context, id uint, req *dto.CategoryRequest) (*models.Category, error) {
	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	slug := categorySlug(req)
	if slug != category.Slug {
		if existing, err := s.categoryRepo.GetBySlug(ctx, slug); err == nil && existing.ID != id {
			return nil, fmt.Errorf("category %q: %w", slug, services.ErrSlugTaken)
		}
	}

	category.Name = req.Name
	category.Slug = slug
	category.CodeRange = req.CodeRange

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	count, err := s.categoryRepo.CountBlogs(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count blogs: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%d blogs: %w", count, services.ErrCategoryInUse)
	}

	return s.categoryRepo.Delete(ctx, id)
}

func (s *CategoryServiceImpl) List(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}
