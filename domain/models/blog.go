package models

import (
	"time"

	"github.com/google/uuid"
)

type BlogStatus string

const (
	BlogStatusPublished BlogStatus = "published"
	BlogStatusDraft     BlogStatus = "draft"
)

func (s BlogStatus) Valid() bool {
	return s == BlogStatusPublished || s == BlogStatusDraft
}

// Blog is the root of a content unit. It owns its related searches and,
// through them, every web result, pre-landing config and tracked row.
type Blog struct {
	ID               uuid.UUID  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title            string     `gorm:"type:varchar(255);not null"`
	Slug             string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	CategoryID       uint       `gorm:"not null;index"`
	Author           string     `gorm:"type:varchar(120)"`
	Content          string     `gorm:"type:text"`
	FeaturedImageURL *string    `gorm:"type:text"`
	PublishedAt      *time.Time `gorm:"index"`
	Status           BlogStatus `gorm:"type:varchar(20);not null;default:'draft';index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Relations
	Category        *Category       `gorm:"foreignKey:CategoryID"`
	RelatedSearches []RelatedSearch `gorm:"foreignKey:BlogID"`
}

func (Blog) TableName() string {
	return "blogs"
}

func (b *Blog) IsPublished() bool {
	return b.Status == BlogStatusPublished
}
