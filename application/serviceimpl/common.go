package serviceimpl

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"search-funnel/domain/repositories"
	"search-funnel/domain/services"
	"search-funnel/infrastructure/metrics"
	"search-funnel/pkg/logger"
	"search-funnel/pkg/utils"
)

// notFound maps a missing row to services.ErrNotFound and wraps anything else.
func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, services.ErrNotFound)
	}
	return fmt.Errorf("failed to load %s: %w", what, err)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// uniqueSlug returns base, or base-2, base-3... when base is taken.
func uniqueSlug(ctx context.Context, blogs repositories.BlogRepository, title string) (string, error) {
	base := utils.Slugify(title)
	if base == "" {
		base = "post"
	}

	candidate := base
	for i := 2; ; i++ {
		exists, err := blogs.SlugExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

type cascadeFunc func(ctx context.Context, id uuid.UUID) (*repositories.CascadeReport, error)

// cascadeDelete runs one cascade and records its outcome.
func cascadeDelete(ctx context.Context, entity string, id uuid.UUID, fn cascadeFunc) (*repositories.CascadeReport, error) {
	report, err := fn(ctx, id)
	metrics.CascadeDeletesTotal.WithLabelValues(entity, metrics.Status(err)).Inc()
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%s %s: %w", entity, id, services.ErrNotFound)
		}
		logger.Error(logger.CategoryCascade, "delete_"+entity+"_failed", "Cascade delete failed", err, map[string]interface{}{
			"id": id.String(),
		})
		return nil, fmt.Errorf("failed to delete %s: %w", entity, err)
	}

	logger.Info(logger.CategoryCascade, "delete_"+entity, "Cascade delete completed", map[string]interface{}{
		"id":                id.String(),
		"blogs":             report.Blogs,
		"related_searches":  report.RelatedSearches,
		"web_results":       report.WebResults,
		"pre_landings":      report.PreLandings,
		"analytics_events":  report.AnalyticsEvents,
		"email_submissions": report.EmailSubmissions,
	})
	return report, nil
}

// bulkDelete applies the cascade per id and keeps going after failures.
func bulkDelete(ctx context.Context, entity string, ids []uuid.UUID, fn cascadeFunc) *services.BulkResult {
	result := &services.BulkResult{
		Deleted: []uuid.UUID{},
		Failed:  map[uuid.UUID]string{},
	}
	for _, id := range ids {
		if _, err := cascadeDelete(ctx, entity, id, fn); err != nil {
			result.Failed[id] = err.Error()
			continue
		}
		result.Deleted = append(result.Deleted, id)
	}

	if len(result.Failed) > 0 {
		logger.Warn(logger.CategoryCascade, "bulk_delete_partial", "Bulk delete finished with failures", map[string]interface{}{
			"entity":  entity,
			"deleted": len(result.Deleted),
			"failed":  len(result.Failed),
		})
	}
	return result
}
