package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"search-funnel/domain/models"
	"search-funnel/domain/repositories"
)

type BlogRepositoryImpl struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) repositories.BlogRepository {
	return &BlogRepositoryImpl{db: db}
}

func (r *BlogRepositoryImpl) Create(ctx context.Context, blog *models.Blog) error {
	return r.db.WithContext(ctx).Omit("Category", "RelatedSearches").Create(blog).Error
}

func (r *BlogRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&blog).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepositoryImpl) GetWithSearches(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("RelatedSearches", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		Where("id = ?", id).
		First(&blog).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepositoryImpl) GetPublishedBySlug(ctx context.Context, categorySlug, slug string) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.WithContext(ctx).
		Joins("Category").
		Preload("RelatedSearches", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		Where("blogs.slug = ? AND blogs.status = ?", slug, models.BlogStatusPublished).
		Where("\"Category\".slug = ?", categorySlug).
		First(&blog).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepositoryImpl) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Blog{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *BlogRepositoryImpl) Update(ctx context.Context, blog *models.Blog) error {
	return r.db.WithContext(ctx).Omit("Category", "RelatedSearches").Save(blog).Error
}

func (r *BlogRepositoryImpl) List(ctx context.Context, filter repositories.BlogFilter, offset, limit int) ([]models.Blog, int64, error) {
	var blogs []models.Blog
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Blog{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Query != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Query+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Category").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&blogs).Error

	return blogs, total, err
}

func (r *BlogRepositoryImpl) ListPublished(ctx context.Context, categoryID *uint, offset, limit int) ([]models.Blog, int64, error) {
	var blogs []models.Blog
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Blog{}).Where("status = ?", models.BlogStatusPublished)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Category").
		Order("published_at DESC NULLS LAST").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&blogs).Error

	return blogs, total, err
}

func (r *BlogRepositoryImpl) ListAll(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.WithContext(ctx).Preload("Category").Order("created_at DESC").Find(&blogs).Error
	return blogs, err
}
