package repositories

import (
	"context"

	"search-funnel/domain/models"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.Category, error)

	// CountBlogs returns how many blogs still reference the category
	CountBlogs(ctx context.Context, id uint) (int64, error)
}
