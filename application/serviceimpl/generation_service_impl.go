package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"search-funnel/domain/funnel"
	"search-funnel/domain/services"
	"search-funnel/infrastructure/metrics"
	"search-funnel/pkg/config"
	"search-funnel/pkg/logger"
)

type GenerationServiceImpl struct {
	generator  services.Generator
	images     services.ImageStore
	timeout    time.Duration
	padPhrases bool
}

// NewGenerationService returns a service that answers ErrGeneratorDisabled
// for every call when generator is nil.
func NewGenerationService(generator services.Generator, images services.ImageStore, cfg config.GeminiConfig) services.GenerationService {
	return &GenerationServiceImpl{
		generator:  generator,
		images:     images,
		timeout:    cfg.Timeout,
		padPhrases: cfg.PadPhrases,
	}
}

func (s *GenerationServiceImpl) Generate(ctx context.Context, req services.GenerationRequest) (*services.GenerationResult, error) {
	if req.Mode == "" {
		req.Mode = services.ModeContent
	}
	result := &services.GenerationResult{Mode: req.Mode}

	var err error
	switch req.Mode {
	case services.ModeContent:
		result.Content, err = s.GenerateContent(ctx, req.Title, req.Category)
	case services.ModeImageOnly:
		result.ImageURL, err = s.GenerateImage(ctx, req.Title, req.Category)
	case services.ModeGenerateWebResults:
		result.WebResults, err = s.GenerateWebResults(ctx, req.SearchText)
	case services.ModeGeneratePreLanding:
		result.PreLanding, err = s.GeneratePreLanding(ctx, req.ResultTitle)
	default:
		return nil, fmt.Errorf("unknown generation mode %q", req.Mode)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *GenerationServiceImpl) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// record counts the call and wraps failures in ErrGenerationFailed.
func (s *GenerationServiceImpl) record(mode services.GenerationMode, started time.Time, err error) error {
	metrics.GenerationRequestsTotal.WithLabelValues(string(mode), metrics.Status(err)).Inc()
	if err == nil {
		logger.Info(logger.CategoryGeneration, string(mode), "Generation completed", map[string]interface{}{
			"duration_ms": time.Since(started).Milliseconds(),
		})
		return nil
	}

	logger.Error(logger.CategoryGeneration, string(mode), "Generation failed", err, map[string]interface{}{
		"duration_ms": time.Since(started).Milliseconds(),
	})
	if errors.Is(err, services.ErrGenerationFailed) || errors.Is(err, services.ErrGeneratorDisabled) {
		return err
	}
	return fmt.Errorf("%w: %v", services.ErrGenerationFailed, err)
}

func (s *GenerationServiceImpl) GenerateContent(ctx context.Context, title, category string) (content *services.GeneratedContent, err error) {
	if s.generator == nil {
		return nil, services.ErrGeneratorDisabled
	}
	if strings.TrimSpace(title) == "" {
		return nil, errors.New("title is required")
	}

	started := time.Now()
	defer func() { err = s.record(services.ModeContent, started, err) }()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	raw, err := s.generator.GenerateBlogContent(ctx, title, category)
	if err != nil {
		return nil, err
	}

	body := funnel.LimitWords(raw.Body, funnel.ContentWords)
	if words := funnel.WordCount(body); words < funnel.ContentWords {
		logger.Warn(logger.CategoryGeneration, "content_short", "Generated body is shorter than requested", map[string]interface{}{
			"words":  words,
			"wanted": funnel.ContentWords,
		})
	}

	phrases := funnel.NormalizePhrases(raw.Phrases, funnel.PhraseWords, funnel.CandidatePhrases)
	if len(phrases) == 0 {
		return nil, fmt.Errorf("%w: no related search phrases returned", services.ErrGenerationFailed)
	}
	if len(phrases) < funnel.CandidatePhrases {
		if !s.padPhrases {
			return nil, &services.PhraseShortfallError{Got: phrases, Wanted: funnel.CandidatePhrases}
		}
		logger.Warn(logger.CategoryGeneration, "phrases_padded", "Padded related searches with placeholders", map[string]interface{}{
			"got":    len(phrases),
			"wanted": funnel.CandidatePhrases,
		})
	}

	content = &services.GeneratedContent{
		Body:    body,
		Phrases: funnel.PadPhrases(phrases, title, funnel.CandidatePhrases),
	}

	// the image is optional; a failure leaves the content usable
	if imageURL, imgErr := s.GenerateImage(ctx, title, category); imgErr == nil {
		content.ImageURL = imageURL
	} else {
		logger.Warn(logger.CategoryGeneration, "content_image_skipped", "Featured image generation failed", map[string]interface{}{
			"error": imgErr.Error(),
		})
	}
	return content, nil
}

func (s *GenerationServiceImpl) GenerateImage(ctx context.Context, title, category string) (imageURL string, err error) {
	if s.generator == nil || s.images == nil {
		return "", services.ErrGeneratorDisabled
	}

	started := time.Now()
	defer func() { err = s.record(services.ModeImageOnly, started, err) }()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	prompt := fmt.Sprintf("A clean, editorial featured photo for a blog article titled %q in the %s category. No text in the image.", title, category)
	return s.generateAndStore(ctx, "blogs", prompt)
}

func (s *GenerationServiceImpl) generateAndStore(ctx context.Context, folder, prompt string) (string, error) {
	data, contentType, err := s.generator.GenerateImage(ctx, prompt)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), imageExt(contentType))
	return s.images.Upload(ctx, key, data, contentType)
}

func imageExt(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}

func validResultURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

func (s *GenerationServiceImpl) GenerateWebResults(ctx context.Context, searchText string) (results []services.GeneratedWebResult, err error) {
	if s.generator == nil {
		return nil, services.ErrGeneratorDisabled
	}
	if strings.TrimSpace(searchText) == "" {
		return nil, errors.New("search text is required")
	}

	started := time.Now()
	defer func() { err = s.record(services.ModeGenerateWebResults, started, err) }()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	raw, err := s.generator.GenerateWebResults(ctx, searchText)
	if err != nil {
		return nil, err
	}

	results = make([]services.GeneratedWebResult, 0, funnel.CandidateWebResults)
	for _, r := range raw {
		r.Title = strings.TrimSpace(r.Title)
		r.URL = strings.TrimSpace(r.URL)
		if r.Title == "" || !validResultURL(r.URL) {
			continue
		}
		results = append(results, r)
		if len(results) == funnel.CandidateWebResults {
			break
		}
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: no usable web results returned", services.ErrGenerationFailed)
	}
	return results, nil
}

func (s *GenerationServiceImpl) GeneratePreLanding(ctx context.Context, resultTitle string) (page *services.GeneratedPreLanding, err error) {
	if s.generator == nil {
		return nil, services.ErrGeneratorDisabled
	}
	if strings.TrimSpace(resultTitle) == "" {
		return nil, errors.New("result title is required")
	}

	started := time.Now()
	defer func() { err = s.record(services.ModeGeneratePreLanding, started, err) }()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	page, err = s.generator.GeneratePreLanding(ctx, resultTitle)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(page.Headline) == "" {
		return nil, fmt.Errorf("%w: pre-landing headline is empty", services.ErrGenerationFailed)
	}

	if s.images != nil {
		prompt := fmt.Sprintf("A soft, abstract background image that suits %q. No text.", resultTitle)
		if imageURL, imgErr := s.generateAndStore(ctx, "pre-landing", prompt); imgErr == nil {
			page.ImageURL = imageURL
		} else {
			logger.Warn(logger.CategoryGeneration, "prelanding_image_skipped", "Background image generation failed", map[string]interface{}{
				"error": imgErr.Error(),
			})
		}
	}
	return page, nil
}
