package serviceimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"search-funnel/domain/repositories"
	"search-funnel/domain/services"
	"search-funnel/pkg/utils"
)

type ExportServiceImpl struct {
	categoryRepo   repositories.CategoryRepository
	blogRepo       repositories.BlogRepository
	searchRepo     repositories.RelatedSearchRepository
	resultRepo     repositories.WebResultRepository
	preLandingRepo repositories.PreLandingRepository
	eventRepo      repositories.AnalyticsRepository
	submissionRepo repositories.EmailSubmissionRepository
}

func NewExportService(
	categoryRepo repositories.CategoryRepository,
	blogRepo repositories.BlogRepository,
	searchRepo repositories.RelatedSearchRepository,
	resultRepo repositories.WebResultRepository,
	preLandingRepo repositories.PreLandingRepository,
	eventRepo repositories.AnalyticsRepository,
	submissionRepo repositories.EmailSubmissionRepository,
) services.ExportService {
	return &ExportServiceImpl{
		categoryRepo:   categoryRepo,
		blogRepo:       blogRepo,
		searchRepo:     searchRepo,
		resultRepo:     resultRepo,
		preLandingRepo: preLandingRepo,
		eventRepo:      eventRepo,
		submissionRepo: submissionRepo,
	}
}

func idField(id *uuid.UUID) utils.Field {
	if id == nil {
		return utils.Raw("")
	}
	return utils.Raw(id.String())
}

func intPtrField(n *int) utils.Field {
	if n == nil {
		return utils.Raw("")
	}
	return utils.Int(int64(*n))
}

func (s *ExportServiceImpl) Export(ctx context.Context, entity services.ExportEntity, w io.Writer) (int, error) {
	cw := utils.NewCSVWriter(w)

	var err error
	switch entity {
	case services.ExportCategories:
		err = s.writeCategories(ctx, cw)
	case services.ExportBlogs:
		err = s.writeBlogs(ctx, cw)
	case services.ExportSearches:
		err = s.writeSearches(ctx, cw)
	case services.ExportWebResults:
		err = s.writeWebResults(ctx, cw)
	case services.ExportPreLandings:
		err = s.writePreLandings(ctx, cw)
	case services.ExportEvents:
		return s.ExportEvents(ctx, repositories.EventFilter{}, w)
	case services.ExportSubmissions:
		err = s.writeSubmissions(ctx, cw)
	default:
		return 0, fmt.Errorf("unknown export %q: %w", entity, services.ErrNotFound)
	}
	if err != nil {
		return cw.Rows(), err
	}
	return cw.Rows(), cw.Flush()
}

func (s *ExportServiceImpl) writeCategories(ctx context.Context, cw *utils.CSVWriter) error {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	if err := cw.Header("id", "name", "slug", "code_range", "created_at"); err != nil {
		return err
	}
	for _, c := range categories {
		if err := cw.Row(utils.Int(int64(c.ID)), utils.Text(c.Name), utils.Text(c.Slug),
			utils.Text(c.CodeRange), utils.Time(c.CreatedAt)); err != nil {
			return err
		}
	}
	return nil
}

func (s *ExportServiceImpl) writeBlogs(ctx context.Context, cw *utils.CSVWriter) error {
	blogs, err := s.blogRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load blogs: %w", err)
	}
	if err := cw.Header("id", "title", "slug", "category", "author", "status", "featured_image_url",
		"published_at", "content", "created_at"); err != nil {
		return err
	}
	for _, b := range blogs {
		category := ""
		if b.Category != nil {
			category = b.Category.Name
		}
		if err := cw.Row(utils.Raw(b.ID.String()), utils.Text(b.Title), utils.Text(b.Slug), utils.Text(category),
			utils.Text(b.Author), utils.Raw(string(b.Status)), utils.TextPtr(b.FeaturedImageURL),
			utils.TimePtr(b.PublishedAt), utils.Text(b.Content), utils.Time(b.CreatedAt)); err != nil {
			return err
		}
	}
	return nil
}

func (s *ExportServiceImpl) writeSearches(ctx context.Context, cw *utils.CSVWriter) error {
	searches, err := s.searchRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load related searches: %w", err)
	}
	if err := cw.Header("id", "blog_id", "blog_title", "search_text", "order_index", "wr", "created_at"); err != nil {
		return err
	}
	for _, rs := range searches {
		blogTitle := ""
		if rs.Blog != nil {
			blogTitle = rs.Blog.Title
		}
		if err := cw.Row(utils.Raw(rs.ID.String()), utils.Raw(rs.BlogID.String()), utils.Text(blogTitle),
			utils.Text(rs.SearchText), utils.Int(int64(rs.OrderIndex)), intPtrField(rs.WR),
			utils.Time(rs.CreatedAt)); err != nil {
			return err
		}
	}
	return nil
}

func (s *ExportServiceImpl) writeWebResults(ctx context.Context, cw *utils.CSVWriter) error {
	results, err := s.resultRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load web results: %w", err)
	}
	if err := cw.Header("id", "related_search_id", "title", "url", "description", "logo_url",
		"order_index", "is_sponsored", "created_at"); err != nil {
		return err
	}
	for _, r := range results {
		if err := cw.Row(utils.Raw(r.ID.String()), utils.Raw(r.RelatedSearchID.String()), utils.Text(r.Title),
			utils.Text(r.URL), utils.TextPtr(r.Description), utils.TextPtr(r.LogoURL),
			utils.Int(int64(r.OrderIndex)), utils.Bool(r.IsSponsored), utils.Time(r.CreatedAt)); err != nil {
			return err
		}
	}
	return nil
}

func (s *ExportServiceImpl) writePreLandings(ctx context.Context, cw *utils.CSVWriter) error {
	configs, err := s.preLandingRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load pre-landing configs: %w", err)
	}
	if err := cw.Header("id", "related_search_id", "headline", "description", "button_text", "email_placeholder",
		"logo_url", "logo_position", "background_color", "background_image_url", "destination_url",
		"updated_at"); err != nil {
		return err
	}
	for _, p := range configs {
		if err := cw.Row(utils.Raw(p.ID.String()), utils.Raw(p.RelatedSearchID.String()), utils.Text(p.Headline),
			utils.Text(p.Description), utils.Text(p.ButtonText), utils.Text(p.EmailPlaceholder),
			utils.TextPtr(p.LogoURL), utils.Raw(string(p.LogoPosition)), utils.Text(p.BackgroundColor),
			utils.TextPtr(p.BackgroundImageURL), utils.TextPtr(p.DestinationURL),
			utils.Time(p.UpdatedAt)); err != nil {
			return err
		}
	}
	return nil
}

func (s *ExportServiceImpl) ExportEvents(ctx context.Context, filter repositories.EventFilter, w io.Writer) (int, error) {
	events, err := s.eventRepo.ListAll(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to load analytics events: %w", err)
	}

	cw := utils.NewCSVWriter(w)
	if err := cw.Header("id", "event_type", "blog_id", "related_search_id", "web_result_id", "session_id",
		"ip_address", "user_agent", "device_type", "country", "referral_source", "metadata",
		"created_at"); err != nil {
		return 0, err
	}
	for _, e := range events {
		metadata := ""
		if len(e.Metadata) > 0 {
			raw, _ := json.Marshal(e.Metadata)
			metadata = string(raw)
		}
		if err := cw.Row(utils.Raw(e.ID.String()), utils.Raw(string(e.EventType)), idField(e.BlogID),
			idField(e.RelatedSearchID), idField(e.WebResultID), utils.Text(e.SessionID), utils.Text(e.IPAddress),
			utils.Text(e.UserAgent), utils.Raw(string(e.DeviceType)), utils.Text(e.Country),
			utils.Text(e.ReferralSource), utils.Text(metadata), utils.Time(e.CreatedAt)); err != nil {
			return cw.Rows(), err
		}
	}
	return cw.Rows(), cw.Flush()
}

func (s *ExportServiceImpl) writeSubmissions(ctx context.Context, cw *utils.CSVWriter) error {
	submissions, err := s.submissionRepo.ListAll(ctx, repositories.SubmissionFilter{})
	if err != nil {
		return fmt.Errorf("failed to load email submissions: %w", err)
	}
	if err := cw.Header("id", "email", "related_search_id", "web_result_id", "session_id", "ip_address",
		"created_at"); err != nil {
		return err
	}
	for _, sub := range submissions {
		if err := cw.Row(utils.Raw(sub.ID.String()), utils.Text(sub.Email), idField(sub.RelatedSearchID),
			idField(sub.WebResultID), utils.Text(sub.SessionID), utils.Text(sub.IPAddress),
			utils.Time(sub.CreatedAt)); err != nil {
			return err
		}
	}
	return nil
}
