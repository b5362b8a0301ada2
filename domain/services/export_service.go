package services

import (
	"context"
	"io"

	"search-funnel/domain/repositories"
)

type ExportEntity string

const (
	ExportBlogs       ExportEntity = "blogs"
	ExportCategories  ExportEntity = "categories"
	ExportSearches    ExportEntity = "related-searches"
	ExportWebResults  ExportEntity = "web-results"
	ExportPreLandings ExportEntity = "pre-landings"
	ExportEvents      ExportEntity = "analytics-events"
	ExportSubmissions ExportEntity = "email-submissions"
)

var ExportEntities = []ExportEntity{
	ExportBlogs, ExportCategories, ExportSearches, ExportWebResults,
	ExportPreLandings, ExportEvents, ExportSubmissions,
}

type ExportService interface {
	// Export writes entity as CSV to w and returns the number of data rows
	Export(ctx context.Context, entity ExportEntity, w io.Writer) (int, error)
	ExportEvents(ctx context.Context, filter repositories.EventFilter, w io.Writer) (int, error)
}
