package serviceimpl

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"search-funnel/domain/models"
	"search-funnel/domain/services"
)

func TestTrackingService_TrackEventBuildsRow(t *testing.T) {
	tracker := &recordingTracker{}
	svc := NewTrackingService(tracker)
	searchID := uuid.New()

	svc.TrackEvent(services.SessionContext{
		SessionID: "s-1",
		UserAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) Mobile/15E148",
		Referer:   "https://www.google.com/search?q=x",
		Host:      "funnel.example.com",
	}, services.EventInput{
		Type:            models.EventRelatedSearchClick,
		RelatedSearchID: &searchID,
		Metadata:        map[string]interface{}{"wr": 2},
	})

	require.Len(t, tracker.events, 1)
	event := tracker.events[0]
	assert.Equal(t, models.EventRelatedSearchClick, event.EventType)
	assert.Equal(t, &searchID, event.RelatedSearchID)
	assert.Equal(t, "s-1", event.SessionID)
	assert.Equal(t, models.Unknown, event.IPAddress)
	assert.Equal(t, models.DeviceMobile, event.DeviceType)
	assert.Equal(t, "google.com", event.ReferralSource)
	assert.Equal(t, 2, event.Metadata["wr"])
}

func TestTrackingService_DropsUnknownEventType(t *testing.T) {
	tracker := &recordingTracker{}
	NewTrackingService(tracker).TrackEvent(services.SessionContext{}, services.EventInput{Type: "scroll"})
	assert.Empty(t, tracker.events)
}

func TestTrackingService_TrackEmail(t *testing.T) {
	tracker := &recordingTracker{}
	svc := NewTrackingService(tracker)

	svc.TrackEmail(services.SessionContext{SessionID: "s-2", IP: "203.0.113.7"}, services.EmailInput{Email: "  Reader@Example.COM "})
	svc.TrackEmail(services.SessionContext{SessionID: "s-2"}, services.EmailInput{Email: "not-an-email"})

	require.Len(t, tracker.submissions, 1)
	assert.Equal(t, "reader@example.com", tracker.submissions[0].Email)
	assert.Equal(t, "203.0.113.7", tracker.submissions[0].IPAddress)
}
