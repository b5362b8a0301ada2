package repositories

import (
	"context"

	"github.com/google/uuid"
	"search-funnel/domain/models"
)

type WebResultRepository interface {
	Create(ctx context.Context, result *models.WebResult) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.WebResult, error)
	Update(ctx context.Context, result *models.WebResult) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ListBySearch returns rows ordered by order_index; display order is applied by the caller
	ListBySearch(ctx context.Context, searchID uuid.UUID) ([]models.WebResult, error)

	List(ctx context.Context, searchID *uuid.UUID, offset, limit int) ([]models.WebResult, int64, error)
	ListAll(ctx context.Context) ([]models.WebResult, error)
}
