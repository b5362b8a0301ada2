package dto

import (
	"time"

	"github.com/google/uuid"
)

type StartWizardRequest struct {
	Title      string `json:"title" validate:"required,max=255"`
	CategoryID uint   `json:"categoryId" validate:"required"`
	Author     string `json:"author" validate:"max=120"`
}

type UpdateDraftContentRequest struct {
	Content  *string  `json:"content"`
	ImageURL *string  `json:"imageUrl" validate:"omitempty,url"`
	Phrases  []string `json:"phrases" validate:"omitempty,max=6,dive,required,max=255"`
}

type ToggleRequest struct {
	Index int `json:"index" validate:"min=0"`
}

type SearchOrderRequest struct {
	Order []int `json:"order" validate:"max=4,dive,min=0"`
}

type SaveDraftRequest struct {
	Status string `json:"status" validate:"omitempty,oneof=published draft"`
}

type WizardCandidateResponse struct {
	Index       int    `json:"index"`
	Text        string `json:"text"`
	Placeholder bool   `json:"placeholder"`
	WR          int    `json:"wr"` // 0 when not selected
}

type WizardWebResultResponse struct {
	Index       int    `json:"index"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	DisplayURL  string `json:"displayUrl"`
	LogoURL     string `json:"logoUrl"`
	IsSponsored bool   `json:"isSponsored"`
	Position    int    `json:"position"` // 0 when not selected
}

type WizardPreLandingResponse struct {
	Headline        string `json:"headline"`
	Description     string `json:"description"`
	ButtonText      string `json:"buttonText"`
	BackgroundColor string `json:"backgroundColor"`
	ImageURL        string `json:"imageUrl,omitempty"`
}

type WizardSearchResponse struct {
	WR         int                       `json:"wr"`
	Index      int                       `json:"index"`
	Text       string                    `json:"text"`
	WebResults []WizardWebResultResponse `json:"webResults"`
	PreLanding *WizardPreLandingResponse `json:"preLanding,omitempty"`
}

type WizardDraftResponse struct {
	ID               uuid.UUID                 `json:"id"`
	Title            string                    `json:"title"`
	CategoryID       uint                      `json:"categoryId"`
	CategoryName     string                    `json:"categoryName"`
	Author           string                    `json:"author"`
	Content          string                    `json:"content"`
	WordCount        int                       `json:"wordCount"`
	ImageURL         string                    `json:"imageUrl,omitempty"`
	Candidates       []WizardCandidateResponse `json:"candidates"`
	Searches         []WizardSearchResponse    `json:"searches"`
	SearchesComplete bool                      `json:"searchesComplete"`
	UpdatedAt        time.Time                 `json:"updatedAt"`
}
