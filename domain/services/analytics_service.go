package services

import (
	"context"
	"time"

	"search-funnel/domain/models"
	"search-funnel/domain/repositories"
)

type AnalyticsSummary struct {
	From             *time.Time                    `json:"from,omitempty"`
	To               *time.Time                    `json:"to,omitempty"`
	ByType           []repositories.CountRow       `json:"byType"`
	ByDevice         []repositories.CountRow       `json:"byDevice"`
	ByCountry        []repositories.CountRow       `json:"byCountry"`
	TopSearches      []repositories.SearchClickRow `json:"topSearches"`
	Daily            []repositories.DailyCount     `json:"daily"`
	EmailSubmissions int64                         `json:"emailSubmissions"`
}

type AnalyticsService interface {
	ListEvents(ctx context.Context, filter repositories.EventFilter, page, limit int) ([]models.AnalyticsEvent, int64, error)
	ListSubmissions(ctx context.Context, filter repositories.SubmissionFilter, page, limit int) ([]models.EmailSubmission, int64, error)
	Summary(ctx context.Context, filter repositories.EventFilter) (*AnalyticsSummary, error)

	// Cleanup deletes events older than days
	Cleanup(ctx context.Context, days int) (int64, error)
}

type AuditReport struct {
	Incomplete []repositories.UnitIssue  `json:"incomplete"`
	Orphans    repositories.OrphanReport `json:"orphans"`
}

// AuditService reports content units that drifted from the wizard's shape.
// It never repairs anything.
type AuditService interface {
	Run(ctx context.Context) (*AuditReport, error)
}
