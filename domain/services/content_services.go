package services

import (
	"context"

	"github.com/google/uuid"

	"search-funnel/domain/dto"
	"search-funnel/domain/models"
	"search-funnel/domain/repositories"
)

type CategoryService interface {
	Create(ctx context.Context, req *dto.CategoryRequest) (*models.Category, error)
	Get(ctx context.Context, id uint) (*models.Category, error)
	Update(ctx context.Context, id uint, req *dto.CategoryRequest) (*models.Category, error)

	// Delete refuses while blogs still reference the category
	Delete(ctx context.Context, id uint) error

	List(ctx context.Context) ([]models.Category, error)
}

// BulkResult reports a best-effort bulk delete.
type BulkResult struct {
	Deleted []uuid.UUID          `json:"deleted"`
	Failed  map[uuid.UUID]string `json:"failed"`
}

type BlogService interface {
	Create(ctx context.Context, req *dto.CreateBlogRequest) (*models.Blog, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Blog, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateBlogRequest) (*models.Blog, error)
	List(ctx context.Context, filter repositories.BlogFilter, page, limit int) ([]models.Blog, int64, error)

	// Delete removes the blog and every dependent row in one transaction
	Delete(ctx context.Context, id uuid.UUID) (*repositories.CascadeReport, error)

	// BulkDelete keeps going after a failed id
	BulkDelete(ctx context.Context, ids []uuid.UUID) *BulkResult
}

type RelatedSearchService interface {
	Create(ctx context.Context, req *dto.RelatedSearchRequest) (*models.RelatedSearch, error)
	Get(ctx context.Context, id uuid.UUID) (*models.RelatedSearch, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.RelatedSearchRequest) (*models.RelatedSearch, error)
	List(ctx context.Context, blogID *uuid.UUID, page, limit int) ([]models.RelatedSearch, int64, error)
	Delete(ctx context.Context, id uuid.UUID) (*repositories.CascadeReport, error)
	BulkDelete(ctx context.Context, ids []uuid.UUID) *BulkResult
}

type WebResultService interface {
	Create(ctx context.Context, req *dto.WebResultRequest) (*models.WebResult, error)
	Get(ctx context.Context, id uuid.UUID) (*models.WebResult, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.WebResultRequest) (*models.WebResult, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ListBySearch returns results in display order
	ListBySearch(ctx context.Context, searchID uuid.UUID) ([]models.WebResult, error)

	List(ctx context.Context, searchID *uuid.UUID, page, limit int) ([]models.WebResult, int64, error)
}

type PreLandingService interface {
	GetBySearch(ctx context.Context, searchID uuid.UUID) (*models.PreLandingConfig, error)

	// Upsert creates or replaces the config of a related search
	Upsert(ctx context.Context, searchID uuid.UUID, req *dto.PreLandingRequest) (*models.PreLandingConfig, error)

	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, page, limit int) ([]models.PreLandingConfig, int64, error)
}
