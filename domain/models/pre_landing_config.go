package models

import (
	"time"

	"github.com/google/uuid"
)

type LogoPosition string

const (
	LogoPositionTop    LogoPosition = "top"
	LogoPositionCenter LogoPosition = "center"
	LogoPositionLeft   LogoPosition = "left"
)

// PreLandingConfig styles the email-capture page of one related search.
// DestinationURL is the fallback redirect when no per-click override is carried.
type PreLandingConfig struct {
	ID                 uuid.UUID    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	RelatedSearchID    uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex"`
	LogoURL            *string      `gorm:"column:logo_url;type:text"`
	LogoPosition       LogoPosition `gorm:"type:varchar(20);default:'top'"`
	BackgroundColor    string       `gorm:"type:varchar(20);default:'#ffffff'"`
	BackgroundImageURL *string      `gorm:"column:background_image_url;type:text"`
	Headline           string       `gorm:"type:varchar(255)"`
	Description        string       `gorm:"type:text"`
	ButtonText         string       `gorm:"type:varchar(80);default:'Continue'"`
	EmailPlaceholder   string       `gorm:"type:varchar(120);default:'Enter your email'"`
	DestinationURL     *string      `gorm:"column:destination_url;type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (PreLandingConfig) TableName() string {
	return "pre_landing_config"
}
