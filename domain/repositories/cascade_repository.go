package repositories

import (
	"context"

	"github.com/google/uuid"
)

// CascadeReport counts the rows removed per table by one cascade delete.
type CascadeReport struct {
	Blogs            int64 `json:"blogs"`
	RelatedSearches  int64 `json:"related_searches"`
	WebResults       int64 `json:"web_results"`
	PreLandings      int64 `json:"pre_landings"`
	AnalyticsEvents  int64 `json:"analytics_events"`
	EmailSubmissions int64 `json:"email_submissions"`
}

// CascadeRepository deletes a parent and all of its dependents, leaves first,
// in a single transaction.
type CascadeRepository interface {
	DeleteBlog(ctx context.Context, id uuid.UUID) (*CascadeReport, error)
	DeleteRelatedSearch(ctx context.Context, id uuid.UUID) (*CascadeReport, error)
}
