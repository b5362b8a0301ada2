package services

import (
	"context"

	"github.com/google/uuid"

	"search-funnel/domain/funnel"
	"search-funnel/domain/models"
)

// ResultsPage is everything the results listing renders for one search.
type ResultsPage struct {
	Search     *models.RelatedSearch
	Results    []models.WebResult // display order
	PreLanding bool
}

// PreLandingPage is the capture page plus the override carried by the click.
type PreLandingPage struct {
	Search   *models.RelatedSearch
	Config   *models.PreLandingConfig
	Override string
}

type FeedPage struct {
	Category *models.Category
	Blogs    []models.Blog
	Total    int64
	Page     int
	Limit    int
}

// FunnelService serves the reader-facing path blog -> search -> results -> pre-landing.
type FunnelService interface {
	Feed(ctx context.Context, categorySlug string, page, limit int) (*FeedPage, error)
	Categories(ctx context.Context) ([]models.Category, error)
	Blog(ctx context.Context, categorySlug, slug string) (*models.Blog, error)
	BlogByID(ctx context.Context, id uuid.UUID) (*models.Blog, error)
	SearchWithBlog(ctx context.Context, searchID uuid.UUID) (*models.RelatedSearch, error)
	Results(ctx context.Context, searchID uuid.UUID) (*ResultsPage, error)

	// Visit decides where a click on a web result goes
	Visit(ctx context.Context, webResultID uuid.UUID) (*funnel.VisitDecision, error)

	// PreLanding resolves the page; overrideID is ignored unless it names a
	// web result of the same search
	PreLanding(ctx context.Context, searchID uuid.UUID, overrideID *uuid.UUID) (*PreLandingPage, error)
}
