package repositories

import (
	"context"

	"github.com/google/uuid"
	"search-funnel/domain/models"
)

type PreLandingRepository interface {
	Create(ctx context.Context, cfg *models.PreLandingConfig) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.PreLandingConfig, error)

	// GetBySearch returns gorm.ErrRecordNotFound when the search has no pre-landing page
	GetBySearch(ctx context.Context, searchID uuid.UUID) (*models.PreLandingConfig, error)

	Update(ctx context.Context, cfg *models.PreLandingConfig) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, offset, limit int) ([]models.PreLandingConfig, int64, error)
	ListAll(ctx context.Context) ([]models.PreLandingConfig, error)
}
