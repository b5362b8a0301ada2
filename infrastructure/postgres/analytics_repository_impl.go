package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"search-funnel/domain/models"
	"search-funnel/domain/repositories"
)

type AnalyticsRepositoryImpl struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) repositories.AnalyticsRepository {
	return &AnalyticsRepositoryImpl{db: db}
}

// applyEventFilter adds filter conditions; col qualifies column names when
// the query joins other tables.
func applyEventFilter(query *gorm.DB, filter repositories.EventFilter, col func(string) string) *gorm.DB {
	if filter.EventType != "" {
		query = query.Where(col("event_type")+" = ?", filter.EventType)
	}
	if filter.BlogID != nil {
		query = query.Where(col("blog_id")+" = ?", *filter.BlogID)
	}
	if filter.RelatedSearchID != nil {
		query = query.Where(col("related_search_id")+" = ?", *filter.RelatedSearchID)
	}
	if filter.From != nil {
		query = query.Where(col("created_at")+" >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where(col("created_at")+" < ?", *filter.To)
	}
	return query
}

func bare(c string) string { return c }

func (r *AnalyticsRepositoryImpl) Create(ctx context.Context, event *models.AnalyticsEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *AnalyticsRepositoryImpl) List(ctx context.Context, filter repositories.EventFilter, offset, limit int) ([]models.AnalyticsEvent, int64, error) {
	var events []models.AnalyticsEvent
	var total int64

	query := applyEventFilter(r.db.WithContext(ctx).Model(&models.AnalyticsEvent{}), filter, bare)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&events).Error

	return events, total, err
}

func (r *AnalyticsRepositoryImpl) ListAll(ctx context.Context, filter repositories.EventFilter) ([]models.AnalyticsEvent, error) {
	var events []models.AnalyticsEvent
	err := applyEventFilter(r.db.WithContext(ctx).Model(&models.AnalyticsEvent{}), filter, bare).
		Order("created_at DESC").
		Find(&events).Error
	return events, err
}

func (r *AnalyticsRepositoryImpl) countBy(ctx context.Context, column string, filter repositories.EventFilter, limit int) ([]repositories.CountRow, error) {
	var rows []repositories.CountRow
	query := applyEventFilter(r.db.WithContext(ctx).Model(&models.AnalyticsEvent{}), filter, bare).
		Select("COALESCE(NULLIF(" + column + ", ''), 'unknown') AS key, COUNT(*) AS count").
		Group("key").
		Order("count DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Scan(&rows).Error
	return rows, err
}

func (r *AnalyticsRepositoryImpl) CountByType(ctx context.Context, filter repositories.EventFilter) ([]repositories.CountRow, error) {
	return r.countBy(ctx, "event_type", filter, 0)
}

func (r *AnalyticsRepositoryImpl) CountByDevice(ctx context.Context, filter repositories.EventFilter) ([]repositories.CountRow, error) {
	return r.countBy(ctx, "device_type", filter, 0)
}

func (r *AnalyticsRepositoryImpl) CountByCountry(ctx context.Context, filter repositories.EventFilter, limit int) ([]repositories.CountRow, error) {
	return r.countBy(ctx, "country", filter, limit)
}

func (r *AnalyticsRepositoryImpl) TopRelatedSearches(ctx context.Context, filter repositories.EventFilter, limit int) ([]repositories.SearchClickRow, error) {
	var rows []repositories.SearchClickRow

	filter.EventType = models.EventRelatedSearchClick
	query := r.db.WithContext(ctx).
		Table("analytics_events AS e").
		Joins("JOIN related_searches rs ON rs.id = e.related_search_id")
	query = applyEventFilter(query, filter, func(c string) string { return "e." + c })

	err := query.
		Select("e.related_search_id AS related_search_id, rs.search_text AS search_text, COUNT(*) AS clicks").
		Group("e.related_search_id, rs.search_text").
		Order("clicks DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *AnalyticsRepositoryImpl) DailyCounts(ctx context.Context, since time.Time) ([]repositories.DailyCount, error) {
	var rows []repositories.DailyCount
	err := r.db.WithContext(ctx).
		Model(&models.AnalyticsEvent{}).
		Select("date_trunc('day', created_at) AS day, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("day").
		Order("day ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *AnalyticsRepositoryImpl) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	threshold := time.Now().AddDate(0, 0, -days)
	result := r.db.WithContext(ctx).
		Where("created_at < ?", threshold).
		Delete(&models.AnalyticsEvent{})

	return result.RowsAffected, result.Error
}
