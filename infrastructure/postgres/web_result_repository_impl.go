package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"search-funnel/domain/models"
	"search-funnel/domain/repositories"
)

type WebResultRepositoryImpl struct {
	db *gorm.DB
}

func NewWebResultRepository(db *gorm.DB) repositories.WebResultRepository {
	return &WebResultRepositoryImpl{db: db}
}

func (r *WebResultRepositoryImpl) Create(ctx context.Context, result *models.WebResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *WebResultRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.WebResult, error) {
	var result models.WebResult
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *WebResultRepositoryImpl) Update(ctx context.Context, result *models.WebResult) error {
	return r.db.WithContext(ctx).Save(result).Error
}

func (r *WebResultRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.WebResult{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *WebResultRepositoryImpl) ListBySearch(ctx context.Context, searchID uuid.UUID) ([]models.WebResult, error) {
	var results []models.WebResult
	err := r.db.WithContext(ctx).
		Where("related_search_id = ?", searchID).
		Order("order_index ASC").
		Order("created_at ASC").
		Find(&results).Error
	return results, err
}

func (r *WebResultRepositoryImpl) List(ctx context.Context, searchID *uuid.UUID, offset, limit int) ([]models.WebResult, int64, error) {
	var results []models.WebResult
	var total int64

	query := r.db.WithContext(ctx).Model(&models.WebResult{})
	if searchID != nil {
		query = query.Where("related_search_id = ?", *searchID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("related_search_id ASC").
		Order("is_sponsored DESC").
		Order("order_index ASC").
		Offset(offset).
		Limit(limit).
		Find(&results).Error

	return results, total, err
}

func (r *WebResultRepositoryImpl) ListAll(ctx context.Context) ([]models.WebResult, error) {
	var results []models.WebResult
	err := r.db.WithContext(ctx).
		Order("related_search_id ASC").
		Order("order_index ASC").
		Find(&results).Error
	return results, err
}
