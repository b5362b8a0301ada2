package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type EventType string

const (
	EventPageView           EventType = "page_view"
	EventBlogClick          EventType = "blog_click"
	EventRelatedSearchClick EventType = "related_search_click"
	EventVisitNowClick      EventType = "visit_now_click"
)

var EventTypes = []EventType{EventPageView, EventBlogClick, EventRelatedSearchClick, EventVisitNowClick}

func (t EventType) Valid() bool {
	for _, et := range EventTypes {
		if et == t {
			return true
		}
	}
	return false
}

type DeviceType string

const (
	DeviceMobile  DeviceType = "mobile"
	DeviceTablet  DeviceType = "tablet"
	DeviceDesktop DeviceType = "desktop"
)

// Unknown is stored when an IP or country cannot be resolved.
const Unknown = "unknown"

// AnalyticsEvent is append-only. Rows are only ever inserted, or removed by
// the cascade and retention routines.
type AnalyticsEvent struct {
	ID              uuid.UUID         `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EventType       EventType         `gorm:"type:varchar(40);not null;index"`
	BlogID          *uuid.UUID        `gorm:"type:uuid;index"`
	RelatedSearchID *uuid.UUID        `gorm:"type:uuid;index"`
	WebResultID     *uuid.UUID        `gorm:"type:uuid"`
	SessionID       string            `gorm:"type:varchar(64);index"`
	IPAddress       string            `gorm:"column:ip_address;type:varchar(64)"`
	UserAgent       string            `gorm:"type:text"`
	DeviceType      DeviceType        `gorm:"type:varchar(20)"`
	Country         string            `gorm:"type:varchar(64)"`
	ReferralSource  string            `gorm:"type:varchar(255)"`
	Metadata        datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt       time.Time         `gorm:"index"`
}

func (AnalyticsEvent) TableName() string {
	return "analytics_events"
}
