package scheduler

import (
	"context"
	"time"

	"search-funnel/domain/services"
	"search-funnel/pkg/config"
	"search-funnel/pkg/logger"
)

const (
	JobIntegrityAudit     = "funnel_integrity_audit"
	JobAnalyticsRetention = "analytics_retention"
)

const jobTimeout = 5 * time.Minute

// RegisterFunnelJobs adds the maintenance jobs. Retention is only scheduled
// when a retention window is configured.
func RegisterFunnelJobs(s EventScheduler, cfg config.SchedulerConfig, audit services.AuditService, analytics services.AnalyticsService) error {
	if err := s.AddJob(JobIntegrityAudit, cfg.AuditCron, func() { RunIntegrityAudit(audit) }); err != nil {
		return err
	}

	if cfg.RetentionDays > 0 {
		days := cfg.RetentionDays
		if err := s.AddJob(JobAnalyticsRetention, cfg.RetentionCron, func() { RunRetention(analytics, days) }); err != nil {
			return err
		}
	}
	return nil
}

// RunIntegrityAudit logs content units that drifted from the four-search
// shape and rows whose parent is gone. It never repairs anything.
func RunIntegrityAudit(audit services.AuditService) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	report, err := audit.Run(ctx)
	if err != nil {
		logger.SchedulerError("audit_failed", "Integrity audit failed", err, nil)
		return
	}

	for _, issue := range report.Incomplete {
		logger.SchedulerWarn("incomplete_unit", "Content unit does not have four distinct WR slots", map[string]interface{}{
			"blog_id":     issue.BlogID.String(),
			"title":       issue.Title,
			"searches":    issue.SearchCount,
			"distinct_wr": issue.DistinctWR,
			"wr_invalid":  issue.OutOfRange,
		})
	}

	orphans := report.Orphans
	data := map[string]interface{}{
		"incomplete":              len(report.Incomplete),
		"orphan_related_searches": orphans.RelatedSearches,
		"orphan_web_results":      orphans.WebResults,
		"orphan_pre_landings":     orphans.PreLandings,
	}
	if len(report.Incomplete) > 0 || orphans.Total() > 0 {
		logger.SchedulerWarn("audit_findings", "Integrity audit found problems", data)
		return
	}
	logger.Scheduler("audit_clean", "Integrity audit found no problems", data)
}

func RunRetention(analytics services.AnalyticsService, days int) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	deleted, err := analytics.Cleanup(ctx, days)
	if err != nil {
		logger.SchedulerError("retention_failed", "Analytics retention failed", err, map[string]interface{}{"days": days})
		return
	}
	logger.Scheduler("retention_done", "Old analytics events deleted", map[string]interface{}{
		"days":    days,
		"deleted": deleted,
	})
}
