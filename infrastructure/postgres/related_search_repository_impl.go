package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"search-funnel/domain/models"
	"search-funnel/domain/repositories"
)

type RelatedSearchRepositoryImpl struct {
	db *gorm.DB
}

func NewRelatedSearchRepository(db *gorm.DB) repositories.RelatedSearchRepository {
	return &RelatedSearchRepositoryImpl{db: db}
}

func (r *RelatedSearchRepositoryImpl) Create(ctx context.Context, search *models.RelatedSearch) error {
	return r.db.WithContext(ctx).Omit("Blog", "WebResults", "PreLanding").Create(search).Error
}

func (r *RelatedSearchRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.RelatedSearch, error) {
	var search models.RelatedSearch
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&search).Error; err != nil {
		return nil, err
	}
	return &search, nil
}

func (r *RelatedSearchRepositoryImpl) GetWithBlog(ctx context.Context, id uuid.UUID) (*models.RelatedSearch, error) {
	var search models.RelatedSearch
	err := r.db.WithContext(ctx).
		Preload("Blog").
		Preload("Blog.Category").
		Where("id = ?", id).
		First(&search).Error
	if err != nil {
		return nil, err
	}
	return &search, nil
}

func (r *RelatedSearchRepositoryImpl) Update(ctx context.Context, search *models.RelatedSearch) error {
	return r.db.WithContext(ctx).Omit("Blog", "WebResults", "PreLanding").Save(search).Error
}

func (r *RelatedSearchRepositoryImpl) ListByBlog(ctx context.Context, blogID uuid.UUID) ([]models.RelatedSearch, error) {
	var searches []models.RelatedSearch
	err := r.db.WithContext(ctx).
		Where("blog_id = ?", blogID).
		Order("order_index ASC").
		Find(&searches).Error
	return searches, err
}

func (r *RelatedSearchRepositoryImpl) List(ctx context.Context, blogID *uuid.UUID, offset, limit int) ([]models.RelatedSearch, int64, error) {
	var searches []models.RelatedSearch
	var total int64

	query := r.db.WithContext(ctx).Model(&models.RelatedSearch{})
	if blogID != nil {
		query = query.Where("blog_id = ?", *blogID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Blog").
		Order("created_at DESC").
		Order("order_index ASC").
		Offset(offset).
		Limit(limit).
		Find(&searches).Error

	return searches, total, err
}

func (r *RelatedSearchRepositoryImpl) ListAll(ctx context.Context) ([]models.RelatedSearch, error) {
	var searches []models.RelatedSearch
	err := r.db.WithContext(ctx).
		Preload("Blog").
		Order("blog_id ASC").
		Order("order_index ASC").
		Find(&searches).Error
	return searches, err
}
