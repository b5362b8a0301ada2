package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"search-funnel/domain/funnel"
	"search-funnel/domain/services"
	"search-funnel/pkg/config"
)

// GeminiClient wraps the Google Gemini API client
type GeminiClient struct {
	client     *genai.Client
	textModel  string
	imageModel string
}

var _ services.Generator = (*GeminiClient)(nil)

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(cfg config.GeminiConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client:     client,
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
	}, nil
}

func jsonConfig(schema *genai.Schema) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}
}

func (c *GeminiClient) generateText(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	result, err := c.client.Models.GenerateContent(ctx, c.textModel, genai.Text(prompt), jsonConfig(schema))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", errors.New("no content generated")
	}

	text := result.Text()
	if text == "" {
		return "", errors.New("empty response from Gemini")
	}
	return text, nil
}

var blogSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"body": {
			Type:        genai.TypeString,
			Description: "Blog article body, plain text paragraphs",
		},
		"related_searches": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "Short search phrases a reader of the article would type next",
		},
	},
	Required: []string{"body", "related_searches"},
}

func (c *GeminiClient) GenerateBlogContent(ctx context.Context, title, category string) (*services.RawContent, error) {
	prompt := fmt.Sprintf(`You write short, helpful blog articles.

Title: %s
Category: %s

Write the article body in at most %d words. Then suggest exactly %d related search phrases
of at most %d words each that a reader would search for next. Do not number the phrases.

Respond with JSON using the given schema.`, title, category,
		funnel.ContentWords, funnel.CandidatePhrases, funnel.PhraseWords)

	text, err := c.generateText(ctx, prompt, blogSchema)
	if err != nil {
		return nil, err
	}
	return ParseStructured[services.RawContent](text)
}

var webResultsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"web_results": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"title":        {Type: genai.TypeString},
					"description":  {Type: genai.TypeString},
					"url":          {Type: genai.TypeString, Description: "Absolute https URL"},
					"display_url":  {Type: genai.TypeString},
					"logo_url":     {Type: genai.TypeString},
					"is_sponsored": {Type: genai.TypeBoolean},
				},
				Required: []string{"title", "description", "url", "is_sponsored"},
			},
		},
	},
	Required: []string{"web_results"},
}

type webResultsPayload struct {
	WebResults []services.GeneratedWebResult `json:"web_results"`
}

func (c *GeminiClient) GenerateWebResults(ctx context.Context, searchText string) ([]services.GeneratedWebResult, error) {
	prompt := fmt.Sprintf(`Act as a search engine results page.

Query: %s

Return %d plausible web results for this query. Mark the first two as sponsored.
Each needs a title, a one sentence description and a real-looking https URL.

Respond with JSON using the given schema.`, searchText, funnel.CandidateWebResults)

	text, err := c.generateText(ctx, prompt, webResultsSchema)
	if err != nil {
		return nil, err
	}
	payload, err := ParseStructured[webResultsPayload](text)
	if err != nil {
		return nil, err
	}
	return payload.WebResults, nil
}

var preLandingSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"headline":         {Type: genai.TypeString},
		"description":      {Type: genai.TypeString},
		"button_text":      {Type: genai.TypeString},
		"background_color": {Type: genai.TypeString, Description: "CSS hex color such as #1a73e8"},
	},
	Required: []string{"headline", "description", "button_text", "background_color"},
}

func (c *GeminiClient) GeneratePreLanding(ctx context.Context, resultTitle string) (*services.GeneratedPreLanding, error) {
	prompt := fmt.Sprintf(`Write copy for an email capture page shown before the reader visits:

%s

Give a headline of at most 8 words, a two sentence description, a short call to action
for the button and a background color that suits the topic.

Respond with JSON using the given schema.`, resultTitle)

	text, err := c.generateText(ctx, prompt, preLandingSchema)
	if err != nil {
		return nil, err
	}
	return ParseStructured[services.GeneratedPreLanding](text)
}

// GenerateImage returns the first inline image part of the response.
func (c *GeminiClient) GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	result, err := c.client.Models.GenerateContent(ctx, c.imageModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate image: %w", err)
	}
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return nil, "", errors.New("no image generated")
	}

	for _, part := range result.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			mimeType := part.InlineData.MIMEType
			if mimeType == "" {
				mimeType = "image/png"
			}
			return part.InlineData.Data, mimeType, nil
		}
	}
	return nil, "", errors.New("response contained no image data")
}

// Close closes the Gemini client
func (c *GeminiClient) Close() error {
	// The genai client doesn't have a Close method in the current SDK
	return nil
}
