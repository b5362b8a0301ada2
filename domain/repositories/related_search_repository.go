package repositories

import (
	"context"

	"github.com/google/uuid"
	"search-funnel/domain/models"
)

type RelatedSearchRepository interface {
	Create(ctx context.Context, search *models.RelatedSearch) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.RelatedSearch, error)

	// GetWithBlog loads the search together with its blog and the blog's category
	GetWithBlog(ctx context.Context, id uuid.UUID) (*models.RelatedSearch, error)

	Update(ctx context.Context, search *models.RelatedSearch) error
	ListByBlog(ctx context.Context, blogID uuid.UUID) ([]models.RelatedSearch, error)
	List(ctx context.Context, blogID *uuid.UUID, offset, limit int) ([]models.RelatedSearch, int64, error)
	ListAll(ctx context.Context) ([]models.RelatedSearch, error)
}
