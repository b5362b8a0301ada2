package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"search-funnel/domain/models"
)

type EventFilter struct {
	EventType       models.EventType
	BlogID          *uuid.UUID
	RelatedSearchID *uuid.UUID
	From            *time.Time
	To              *time.Time
}

type CountRow struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

type SearchClickRow struct {
	RelatedSearchID uuid.UUID `json:"related_search_id"`
	SearchText      string    `json:"search_text"`
	Clicks          int64     `json:"clicks"`
}

type DailyCount struct {
	Day   time.Time `json:"day"`
	Count int64     `json:"count"`
}

type AnalyticsRepository interface {
	Create(ctx context.Context, event *models.AnalyticsEvent) error
	List(ctx context.Context, filter EventFilter, offset, limit int) ([]models.AnalyticsEvent, int64, error)
	ListAll(ctx context.Context, filter EventFilter) ([]models.AnalyticsEvent, error)

	CountByType(ctx context.Context, filter EventFilter) ([]CountRow, error)
	CountByDevice(ctx context.Context, filter EventFilter) ([]CountRow, error)
	CountByCountry(ctx context.Context, filter EventFilter, limit int) ([]CountRow, error)
	TopRelatedSearches(ctx context.Context, filter EventFilter, limit int) ([]SearchClickRow, error)
	DailyCounts(ctx context.Context, since time.Time) ([]DailyCount, error)

	// DeleteOlderThan removes events past the retention window
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}
