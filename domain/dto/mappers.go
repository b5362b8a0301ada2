package dto

import (
	"search-funnel/domain/models"
)

func CategoryToResponse(c *models.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		CodeRange: c.CodeRange,
		CreatedAt: c.CreatedAt,
	}
}

func CategoriesToResponse(categories []models.Category) []*CategoryResponse {
	out := make([]*CategoryResponse, len(categories))
	for i := range categories {
		out[i] = CategoryToResponse(&categories[i])
	}
	return out
}

func BlogToResponse(b *models.Blog) *BlogResponse {
	if b == nil {
		return nil
	}
	resp := &BlogResponse{
		ID:               b.ID,
		Title:            b.Title,
		Slug:             b.Slug,
		CategoryID:       b.CategoryID,
		Author:           b.Author,
		Content:          b.Content,
		FeaturedImageURL: b.FeaturedImageURL,
		PublishedAt:      b.PublishedAt,
		Status:           string(b.Status),
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
	if b.Category != nil {
		resp.CategoryName = b.Category.Name
	}
	if len(b.RelatedSearches) > 0 {
		resp.RelatedSearches = RelatedSearchesToResponse(b.RelatedSearches)
	}
	return resp
}

func BlogsToResponse(blogs []models.Blog) []*BlogResponse {
	out := make([]*BlogResponse, len(blogs))
	for i := range blogs {
		out[i] = BlogToResponse(&blogs[i])
	}
	return out
}

func RelatedSearchToResponse(s *models.RelatedSearch) *RelatedSearchResponse {
	if s == nil {
		return nil
	}
	resp := &RelatedSearchResponse{
		ID:         s.ID,
		BlogID:     s.BlogID,
		SearchText: s.SearchText,
		OrderIndex: s.OrderIndex,
		WR:         s.WR,
		CreatedAt:  s.CreatedAt,
	}
	if s.Blog != nil {
		resp.BlogTitle = s.Blog.Title
	}
	return resp
}

func RelatedSearchesToResponse(searches []models.RelatedSearch) []*RelatedSearchResponse {
	out := make([]*RelatedSearchResponse, len(searches))
	for i := range searches {
		out[i] = RelatedSearchToResponse(&searches[i])
	}
	return out
}

func WebResultToResponse(w *models.WebResult) *WebResultResponse {
	if w == nil {
		return nil
	}
	return &WebResultResponse{
		ID:              w.ID,
		RelatedSearchID: w.RelatedSearchID,
		Title:           w.Title,
		URL:             w.URL,
		Description:     w.Description,
		LogoURL:         w.LogoURL,
		OrderIndex:      w.OrderIndex,
		IsSponsored:     w.IsSponsored,
		CreatedAt:       w.CreatedAt,
	}
}

func WebResultsToResponse(results []models.WebResult) []*WebResultResponse {
	out := make([]*WebResultResponse, len(results))
	for i := range results {
		out[i] = WebResultToResponse(&results[i])
	}
	return out
}

func PreLandingToResponse(p *models.PreLandingConfig) *PreLandingResponse {
	if p == nil {
		return nil
	}
	return &PreLandingResponse{
		ID:                 p.ID,
		RelatedSearchID:    p.RelatedSearchID,
		LogoURL:            p.LogoURL,
		LogoPosition:       string(p.LogoPosition),
		BackgroundColor:    p.BackgroundColor,
		BackgroundImageURL: p.BackgroundImageURL,
		Headline:           p.Headline,
		Description:        p.Description,
		ButtonText:         p.ButtonText,
		EmailPlaceholder:   p.EmailPlaceholder,
		DestinationURL:     p.DestinationURL,
		UpdatedAt:          p.UpdatedAt,
	}
}

func PreLandingsToResponse(configs []models.PreLandingConfig) []*PreLandingResponse {
	out := make([]*PreLandingResponse, len(configs))
	for i := range configs {
		out[i] = PreLandingToResponse(&configs[i])
	}
	return out
}

func AnalyticsEventToResponse(e *models.AnalyticsEvent) *AnalyticsEventResponse {
	return &AnalyticsEventResponse{
		ID:              e.ID,
		EventType:       string(e.EventType),
		BlogID:          e.BlogID,
		RelatedSearchID: e.RelatedSearchID,
		WebResultID:     e.WebResultID,
		SessionID:       e.SessionID,
		IPAddress:       e.IPAddress,
		UserAgent:       e.UserAgent,
		DeviceType:      string(e.DeviceType),
		Country:         e.Country,
		ReferralSource:  e.ReferralSource,
		Metadata:        e.Metadata,
		CreatedAt:       e.CreatedAt,
	}
}

func AnalyticsEventsToResponse(events []models.AnalyticsEvent) []*AnalyticsEventResponse {
	out := make([]*AnalyticsEventResponse, len(events))
	for i := range events {
		out[i] = AnalyticsEventToResponse(&events[i])
	}
	return out
}

func EmailSubmissionToResponse(s *models.EmailSubmission) *EmailSubmissionResponse {
	return &EmailSubmissionResponse{
		ID:              s.ID,
		Email:           s.Email,
		RelatedSearchID: s.RelatedSearchID,
		WebResultID:     s.WebResultID,
		SessionID:       s.SessionID,
		IPAddress:       s.IPAddress,
		CreatedAt:       s.CreatedAt,
	}
}

func EmailSubmissionsToResponse(submissions []models.EmailSubmission) []*EmailSubmissionResponse {
	out := make([]*EmailSubmissionResponse, len(submissions))
	for i := range submissions {
		out[i] = EmailSubmissionToResponse(&submissions[i])
	}
	return out
}
