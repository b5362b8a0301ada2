package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"search-funnel/domain/models"
)

// FunnelBundle is one content unit as assembled by the authoring wizard.
type FunnelBundle struct {
	Blog     *models.Blog
	Searches []SearchBundle // in wr order
}

type SearchBundle struct {
	Search     *models.RelatedSearch
	WebResults []*models.WebResult // in selection order
	PreLanding *models.PreLandingConfig
}

// SaveError names the insert that failed while saving a bundle.
type SaveError struct {
	Step     string // blog, related_search, web_result, pre_landing
	WR       int
	Position int
	Err      error
}

func (e *SaveError) Error() string {
	switch e.Step {
	case "blog":
		return fmt.Sprintf("save blog: %v", e.Err)
	case "web_result":
		return fmt.Sprintf("save web result %d of WR-%d: %v", e.Position, e.WR, e.Err)
	default:
		return fmt.Sprintf("save %s of WR-%d: %v", e.Step, e.WR, e.Err)
	}
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// UnitIssue describes a content unit that does not carry exactly four
// related searches with distinct WR values 1..4.
type UnitIssue struct {
	BlogID      uuid.UUID `json:"blog_id"`
	Title       string    `json:"title"`
	SearchCount int64     `json:"search_count"`
	DistinctWR  int64     `json:"distinct_wr"`
	OutOfRange  int64     `json:"out_of_range"`
}

// OrphanReport counts rows whose parent no longer exists.
type OrphanReport struct {
	RelatedSearches int64 `json:"related_searches"`
	WebResults      int64 `json:"web_results"`
	PreLandings     int64 `json:"pre_landings"`
}

func (o OrphanReport) Total() int64 {
	return o.RelatedSearches + o.WebResults + o.PreLandings
}

type FunnelRepository interface {
	// SaveBundle inserts blog, searches, web results and pre-landing configs
	// in order inside one transaction. Failures are *SaveError.
	SaveBundle(ctx context.Context, bundle *FunnelBundle) error

	FindIncompleteUnits(ctx context.Context) ([]UnitIssue, error)
	CountOrphans(ctx context.Context) (*OrphanReport, error)
}
