package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"search-funnel/domain/models"
	"search-funnel/domain/repositories"
)

type PreLandingRepositoryImpl struct {
	db *gorm.DB
}

func NewPreLandingRepository(db *gorm.DB) repositories.PreLandingRepository {
	return &PreLandingRepositoryImpl{db: db}
}

func (r *PreLandingRepositoryImpl) Create(ctx context.Context, cfg *models.PreLandingConfig) error {
	return r.db.WithContext(ctx).Create(cfg).Error
}

func (r *PreLandingRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.PreLandingConfig, error) {
	var cfg models.PreLandingConfig
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&cfg).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *PreLandingRepositoryImpl) GetBySearch(ctx context.Context, searchID uuid.UUID) (*models.PreLandingConfig, error) {
	var cfg models.PreLandingConfig
	if err := r.db.WithContext(ctx).Where("related_search_id = ?", searchID).First(&cfg).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *PreLandingRepositoryImpl) Update(ctx context.Context, cfg *models.PreLandingConfig) error {
	return r.db.WithContext(ctx).Save(cfg).Error
}

func (r *PreLandingRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.PreLandingConfig{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PreLandingRepositoryImpl) List(ctx context.Context, offset, limit int) ([]models.PreLandingConfig, int64, error) {
	var configs []models.PreLandingConfig
	var total int64

	query := r.db.WithContext(ctx).Model(&models.PreLandingConfig{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&configs).Error
	return configs, total, err
}

func (r *PreLandingRepositoryImpl) ListAll(ctx context.Context) ([]models.PreLandingConfig, error) {
	var configs []models.PreLandingConfig
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&configs).Error
	return configs, err
}
