package serviceimpl

import (
	"context"
	"fmt"
	"time"

	"search-funnel/domain/models"
	"search-funnel/domain/repositories"
	"search-funnel/domain/services"
	"search-funnel/pkg/logger"
	"search-funnel/pkg/utils"
)

const (
	summaryTopN       = 10
	summaryDefaultDay = 30
)

type AnalyticsServiceImpl struct {
	eventRepo      repositories.AnalyticsRepository
	submissionRepo repositories.EmailSubmissionRepository
}

func NewAnalyticsService(
	eventRepo repositories.AnalyticsRepository,
	submissionRepo repositories.EmailSubmissionRepository,
) services.AnalyticsService {
	return &AnalyticsServiceImpl{
		eventRepo:      eventRepo,
		submissionRepo: submissionRepo,
	}
}

func (s *AnalyticsServiceImpl) ListEvents(ctx context.Context, filter repositories.EventFilter, page, limit int) ([]models.AnalyticsEvent, int64, error) {
	page, limit = utils.NormalizePage(page, limit)
	return s.eventRepo.List(ctx, filter, utils.Offset(page, limit), limit)
}

func (s *AnalyticsServiceImpl) ListSubmissions(ctx context.Context, filter repositories.SubmissionFilter, page, limit int) ([]models.EmailSubmission, int64, error) {
	page, limit = utils.NormalizePage(page, limit)
	return s.submissionRepo.List(ctx, filter, utils.Offset(page, limit), limit)
}

func (s *AnalyticsServiceImpl) Summary(ctx context.Context, filter repositories.EventFilter) (*services.AnalyticsSummary, error) {
	summary := &services.AnalyticsSummary{From: filter.From, To: filter.To}
	var err error

	if summary.ByType, err = s.eventRepo.CountByType(ctx, filter); err != nil {
		return nil, fmt.Errorf("failed to count events by type: %w", err)
	}
	if summary.ByDevice, err = s.eventRepo.CountByDevice(ctx, filter); err != nil {
		return nil, fmt.Errorf("failed to count events by device: %w", err)
	}
	if summary.ByCountry, err = s.eventRepo.CountByCountry(ctx, filter, summaryTopN); err != nil {
		return nil, fmt.Errorf("failed to count events by country: %w", err)
	}
	if summary.TopSearches, err = s.eventRepo.TopRelatedSearches(ctx, filter, summaryTopN); err != nil {
		return nil, fmt.Errorf("failed to rank related searches: %w", err)
	}

	since := time.Now().AddDate(0, 0, -summaryDefaultDay)
	if filter.From != nil {
		since = *filter.From
	}
	if summary.Daily, err = s.eventRepo.DailyCounts(ctx, since); err != nil {
		return nil, fmt.Errorf("failed to count daily events: %w", err)
	}

	summary.EmailSubmissions, err = s.submissionRepo.Count(ctx, repositories.SubmissionFilter{
		RelatedSearchID: filter.RelatedSearchID,
		From:            filter.From,
		To:              filter.To,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count email submissions: %w", err)
	}

	return summary, nil
}

// Cleanup is a no-op for days <= 0, which means keep forever.
func (s *AnalyticsServiceImpl) Cleanup(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, nil
	}

	deleted, err := s.eventRepo.DeleteOlderThan(ctx, days)
	if err != nil {
		return 0, fmt.Errorf("failed to purge analytics events: %w", err)
	}

	logger.Info(logger.CategoryTracking, "retention_purge", "Old analytics events deleted", map[string]interface{}{
		"days":    days,
		"deleted": deleted,
	})
	return deleted, nil
}

type AuditServiceImpl struct {
	funnelRepo repositories.FunnelRepository
}

func NewAuditService(funnelRepo repositories.FunnelRepository) services.AuditService {
	return &AuditServiceImpl{funnelRepo: funnelRepo}
}

func (s *AuditServiceImpl) Run(ctx context.Context) (*services.AuditReport, error) {
	incomplete, err := s.funnelRepo.FindIncompleteUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find incomplete units: %w", err)
	}

	orphans, err := s.funnelRepo.CountOrphans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orphans: %w", err)
	}

	report := &services.AuditReport{Incomplete: incomplete, Orphans: *orphans}
	if report.Incomplete == nil {
		report.Incomplete = []repositories.UnitIssue{}
	}

	if len(incomplete) > 0 || orphans.Total() > 0 {
		logger.Warn(logger.CategoryFunnel, "integrity_audit", "Content units drifted from the four-search shape", map[string]interface{}{
			"incomplete_units": len(incomplete),
			"orphans":          orphans.Total(),
		})
	} else {
		logger.Info(logger.CategoryFunnel, "integrity_audit", "All content units are complete", nil)
	}
	return report, nil
}
