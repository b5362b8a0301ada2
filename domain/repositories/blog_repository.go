package repositories

import (
	"context"

	"github.com/google/uuid"
	"search-funnel/domain/models"
)

type BlogFilter struct {
	Status     models.BlogStatus
	CategoryID *uint
	Query      string // case-insensitive title match
}

type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error

	// GetByID loads the blog with its category
	GetByID(ctx context.Context, id uuid.UUID) (*models.Blog, error)

	// GetWithSearches also loads related searches ordered by order_index
	GetWithSearches(ctx context.Context, id uuid.UUID) (*models.Blog, error)

	// GetPublishedBySlug resolves the reader-facing blog detail route
	GetPublishedBySlug(ctx context.Context, categorySlug, slug string) (*models.Blog, error)

	SlugExists(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, blog *models.Blog) error
	List(ctx context.Context, filter BlogFilter, offset, limit int) ([]models.Blog, int64, error)

	// ListPublished is the home/category feed, newest first
	ListPublished(ctx context.Context, categoryID *uint, offset, limit int) ([]models.Blog, int64, error)

	ListAll(ctx context.Context) ([]models.Blog, error)
}
