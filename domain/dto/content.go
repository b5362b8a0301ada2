package dto

import (
	"time"

	"github.com/google/uuid"
)

type CategoryRequest struct {
	Name      string `json:"name" validate:"required,max=120"`
	Slug      string `json:"slug" validate:"omitempty,max=140"`
	CodeRange string `json:"codeRange" validate:"max=50"`
}

type CategoryResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CodeRange string    `json:"codeRange"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateBlogRequest struct {
	Title            string  `json:"title" validate:"required,max=255"`
	Slug             string  `json:"slug" validate:"omitempty,max=255"`
	CategoryID       uint    `json:"categoryId" validate:"required"`
	Author           string  `json:"author" validate:"max=120"`
	Content          string  `json:"content"`
	FeaturedImageURL *string `json:"featuredImageUrl" validate:"omitempty,url"`
	Status           string  `json:"status" validate:"omitempty,oneof=published draft"`
}

type UpdateBlogRequest struct {
	Title            *string `json:"title" validate:"omitempty,min=1,max=255"`
	Slug             *string `json:"slug" validate:"omitempty,min=1,max=255"`
	CategoryID       *uint   `json:"categoryId"`
	Author           *string `json:"author" validate:"omitempty,max=120"`
	Content          *string `json:"content"`
	FeaturedImageURL *string `json:"featuredImageUrl" validate:"omitempty,url"`
	Status           *string `json:"status" validate:"omitempty,oneof=published draft"`
}

type BlogResponse struct {
	ID               uuid.UUID                `json:"id"`
	Title            string                   `json:"title"`
	Slug             string                   `json:"slug"`
	CategoryID       uint                     `json:"categoryId"`
	CategoryName     string                   `json:"categoryName,omitempty"`
	Author           string                   `json:"author"`
	Content          string                   `json:"content"`
	FeaturedImageURL *string                  `json:"featuredImageUrl"`
	PublishedAt      *time.Time               `json:"publishedAt"`
	Status           string                   `json:"status"`
	RelatedSearches  []*RelatedSearchResponse `json:"relatedSearches,omitempty"`
	CreatedAt        time.Time                `json:"createdAt"`
	UpdatedAt        time.Time                `json:"updatedAt"`
}

type RelatedSearchRequest struct {
	BlogID     uuid.UUID `json:"blogId" validate:"required"`
	SearchText string    `json:"searchText" validate:"required,max=255"`
	OrderIndex int       `json:"orderIndex" validate:"min=0"`
	WR         *int      `json:"wr" validate:"omitempty,min=1,max=4"`
}

type RelatedSearchResponse struct {
	ID         uuid.UUID `json:"id"`
	BlogID     uuid.UUID `json:"blogId"`
	BlogTitle  string    `json:"blogTitle,omitempty"`
	SearchText string    `json:"searchText"`
	OrderIndex int       `json:"orderIndex"`
	WR         *int      `json:"wr"`
	CreatedAt  time.Time `json:"createdAt"`
}

type WebResultRequest struct {
	RelatedSearchID uuid.UUID `json:"relatedSearchId" validate:"required"`
	Title           string    `json:"title" validate:"required,max=255"`
	URL             string    `json:"url" validate:"required,url"`
	Description     *string   `json:"description"`
	LogoURL         *string   `json:"logoUrl" validate:"omitempty,url"`
	OrderIndex      int       `json:"orderIndex" validate:"min=0"`
	IsSponsored     bool      `json:"isSponsored"`
}

type WebResultResponse struct {
	ID              uuid.UUID `json:"id"`
	RelatedSearchID uuid.UUID `json:"relatedSearchId"`
	Title           string    `json:"title"`
	URL             string    `json:"url"`
	Description     *string   `json:"description"`
	LogoURL         *string   `json:"logoUrl"`
	OrderIndex      int       `json:"orderIndex"`
	IsSponsored     bool      `json:"isSponsored"`
	CreatedAt       time.Time `json:"createdAt"`
}

type PreLandingRequest struct {
	LogoURL            *string `json:"logoUrl" validate:"omitempty,url"`
	LogoPosition       string  `json:"logoPosition" validate:"omitempty,oneof=top center left"`
	BackgroundColor    string  `json:"backgroundColor" validate:"omitempty,max=20"`
	BackgroundImageURL *string `json:"backgroundImageUrl" validate:"omitempty,url"`
	Headline           string  `json:"headline" validate:"max=255"`
	Description        string  `json:"description"`
	ButtonText         string  `json:"buttonText" validate:"max=80"`
	EmailPlaceholder   string  `json:"emailPlaceholder" validate:"max=120"`
	DestinationURL     *string `json:"destinationUrl" validate:"omitempty,url"`
}

type PreLandingResponse struct {
	ID                 uuid.UUID `json:"id"`
	RelatedSearchID    uuid.UUID `json:"relatedSearchId"`
	LogoURL            *string   `json:"logoUrl"`
	LogoPosition       string    `json:"logoPosition"`
	BackgroundColor    string    `json:"backgroundColor"`
	BackgroundImageURL *string   `json:"backgroundImageUrl"`
	Headline           string    `json:"headline"`
	Description        string    `json:"description"`
	ButtonText         string    `json:"buttonText"`
	EmailPlaceholder   string    `json:"emailPlaceholder"`
	DestinationURL     *string   `json:"destinationUrl"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
