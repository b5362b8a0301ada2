package dto

import (
	"time"

	"github.com/google/uuid"
)

type TrackEventRequest struct {
	EventType       string     `json:"eventType" validate:"required,oneof=page_view blog_click related_search_click visit_now_click"`
	BlogID          *uuid.UUID `json:"blogId"`
	RelatedSearchID *uuid.UUID `json:"relatedSearchId"`
	WebResultID     *uuid.UUID `json:"webResultId"`
}

type AnalyticsEventResponse struct {
	ID              uuid.UUID              `json:"id"`
	EventType       string                 `json:"eventType"`
	BlogID          *uuid.UUID             `json:"blogId"`
	RelatedSearchID *uuid.UUID             `json:"relatedSearchId"`
	WebResultID     *uuid.UUID             `json:"webResultId"`
	SessionID       string                 `json:"sessionId"`
	IPAddress       string                 `json:"ipAddress"`
	UserAgent       string                 `json:"userAgent"`
	DeviceType      string                 `json:"deviceType"`
	Country         string                 `json:"country"`
	ReferralSource  string                 `json:"referralSource"`
	Metadata        map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
}

type EmailSubmissionResponse struct {
	ID              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	RelatedSearchID *uuid.UUID `json:"relatedSearchId"`
	WebResultID     *uuid.UUID `json:"webResultId"`
	SessionID       string     `json:"sessionId"`
	IPAddress       string     `json:"ipAddress"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type GenerateRequest struct {
	Mode        string `json:"mode" validate:"omitempty,oneof=content imageOnly generateWebResults generatePreLanding"`
	Title       string `json:"title" validate:"max=255"`
	Category    string `json:"category" validate:"max=120"`
	SearchText  string `json:"searchText" validate:"max=255"`
	ResultTitle string `json:"resultTitle" validate:"max=255"`
}
