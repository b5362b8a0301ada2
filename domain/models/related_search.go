package models

import (
	"time"

	"github.com/google/uuid"
)

// RelatedSearch is a search phrase shown under a blog. WR (1-4) picks the
// web-result set the phrase activates; nothing below the wizard enforces it.
type RelatedSearch struct {
	ID         uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	BlogID     uuid.UUID `gorm:"type:uuid;not null;index"`
	SearchText string    `gorm:"type:varchar(255);not null"`
	OrderIndex int       `gorm:"not null;default:0"`
	WR         *int      `gorm:"column:wr"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Relations
	Blog       *Blog             `gorm:"foreignKey:BlogID"`
	WebResults []WebResult       `gorm:"foreignKey:RelatedSearchID"`
	PreLanding *PreLandingConfig `gorm:"foreignKey:RelatedSearchID"`
}

func (RelatedSearch) TableName() string {
	return "related_searches"
}
