package models

import (
	"time"

	"github.com/google/uuid"
)

type WebResult struct {
	ID              uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	RelatedSearchID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title           string    `gorm:"type:varchar(255);not null"`
	URL             string    `gorm:"column:url;type:text;not null"`
	Description     *string   `gorm:"type:text"`
	LogoURL         *string   `gorm:"column:logo_url;type:text"`
	OrderIndex      int       `gorm:"not null;default:0"`
	IsSponsored     bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (WebResult) TableName() string {
	return "web_results"
}
