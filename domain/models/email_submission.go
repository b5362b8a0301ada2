package models

import (
	"time"

	"github.com/google/uuid"
)

// EmailSubmission is append-only, like AnalyticsEvent.
type EmailSubmission struct {
	ID              uuid.UUID  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email           string     `gorm:"type:varchar(320);not null;index"`
	RelatedSearchID *uuid.UUID `gorm:"type:uuid;index"`
	WebResultID     *uuid.UUID `gorm:"type:uuid"`
	SessionID       string     `gorm:"type:varchar(64)"`
	IPAddress       string     `gorm:"column:ip_address;type:varchar(64)"`
	CreatedAt       time.Time  `gorm:"index"`
}

func (EmailSubmission) TableName() string {
	return "email_submissions"
}
