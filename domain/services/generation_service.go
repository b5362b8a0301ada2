package services

import (
	"context"

	"search-funnel/domain/funnel"
)

type GenerationMode string

const (
	ModeContent            GenerationMode = "content"
	ModeImageOnly          GenerationMode = "imageOnly"
	ModeGenerateWebResults GenerationMode = "generateWebResults"
	ModeGeneratePreLanding GenerationMode = "generatePreLanding"
)

type GenerationRequest struct {
	Mode        GenerationMode `json:"mode"`
	Title       string         `json:"title"`
	Category    string         `json:"category"`
	SearchText  string         `json:"searchText"`
	ResultTitle string         `json:"resultTitle"`
}

type GeneratedContent struct {
	Body     string          `json:"body"`
	ImageURL string          `json:"imageUrl,omitempty"`
	Phrases  []funnel.Phrase `json:"phrases"`
}

type GeneratedWebResult struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	DisplayURL  string `json:"display_url"`
	LogoURL     string `json:"logo_url"`
	IsSponsored bool   `json:"is_sponsored"`
}

type GeneratedPreLanding struct {
	Headline        string `json:"headline"`
	Description     string `json:"description"`
	ButtonText      string `json:"button_text"`
	BackgroundColor string `json:"background_color"`
	ImageURL        string `json:"image_url,omitempty"`
}

type GenerationResult struct {
	Mode       GenerationMode       `json:"mode"`
	Content    *GeneratedContent    `json:"content,omitempty"`
	ImageURL   string               `json:"imageUrl,omitempty"`
	WebResults []GeneratedWebResult `json:"webResults,omitempty"`
	PreLanding *GeneratedPreLanding `json:"preLanding,omitempty"`
}

// RawContent is the unvalidated blog payload from the generator.
type RawContent struct {
	Body    string   `json:"body"`
	Phrases []string `json:"related_searches"`
}

// Generator is the external generation backend.
type Generator interface {
	GenerateBlogContent(ctx context.Context, title, category string) (*RawContent, error)
	GenerateWebResults(ctx context.Context, searchText string) ([]GeneratedWebResult, error)
	GeneratePreLanding(ctx context.Context, resultTitle string) (*GeneratedPreLanding, error)
	GenerateImage(ctx context.Context, prompt string) ([]byte, string, error)
}

// ImageStore persists generated images and returns their public URL.
type ImageStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type GenerationService interface {
	Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error)
	GenerateContent(ctx context.Context, title, category string) (*GeneratedContent, error)
	GenerateImage(ctx context.Context, title, category string) (string, error)
	GenerateWebResults(ctx context.Context, searchText string) ([]GeneratedWebResult, error)
	GeneratePreLanding(ctx context.Context, resultTitle string) (*GeneratedPreLanding, error)
}
