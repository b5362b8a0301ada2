package services

import (
	"context"

	"github.com/google/uuid"

	"search-funnel/domain/models"
)

type EventInput struct {
	Type            models.EventType
	BlogID          *uuid.UUID
	RelatedSearchID *uuid.UUID
	WebResultID     *uuid.UUID
	Metadata        map[string]interface{}
}

type EmailInput struct {
	Email           string
	RelatedSearchID *uuid.UUID
	WebResultID     *uuid.UUID
}

// TrackingService records events without blocking the caller. Errors never
// reach the reader; they go to the tracking log.
type TrackingService interface {
	TrackEvent(session SessionContext, input EventInput)
	TrackEmail(session SessionContext, input EmailInput)
}

// Tracker is the async sink behind TrackingService.
type Tracker interface {
	EnqueueEvent(event *models.AnalyticsEvent) bool
	EnqueueEmail(submission *models.EmailSubmission) bool
}

// EventBroadcaster pushes tracked rows to live admin listeners.
type EventBroadcaster interface {
	Broadcast(kind string, payload interface{})
}

// CountryResolver maps an IP to a country code, or models.Unknown.
type CountryResolver interface {
	Country(ctx context.Context, ip string) string
}
