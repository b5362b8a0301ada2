package serviceimpl

import (
	"strings"

	"gorm.io/datatypes"

	"search-funnel/domain/funnel"
	"search-funnel/domain/models"
	"search-funnel/domain/services"
	"search-funnel/pkg/logger"
	"search-funnel/pkg/utils"
)

type TrackingServiceImpl struct {
	tracker services.Tracker
}

func NewTrackingService(tracker services.Tracker) services.TrackingService {
	return &TrackingServiceImpl{tracker: tracker}
}

func ipOrUnknown(ip string) string {
	if ip == "" {
		return models.Unknown
	}
	return ip
}

// TrackEvent never fails from the caller's point of view.
func (s *TrackingServiceImpl) TrackEvent(session services.SessionContext, input services.EventInput) {
	if !input.Type.Valid() {
		logger.Warn(logger.CategoryTracking, "invalid_event", "Ignored event with unknown type", map[string]interface{}{
			"event_type": string(input.Type),
			"session_id": session.SessionID,
		})
		return
	}

	event := &models.AnalyticsEvent{
		EventType:       input.Type,
		BlogID:          input.BlogID,
		RelatedSearchID: input.RelatedSearchID,
		WebResultID:     input.WebResultID,
		SessionID:       session.SessionID,
		IPAddress:       ipOrUnknown(session.IP),
		UserAgent:       session.UserAgent,
		DeviceType:      funnel.DeviceClass(session.UserAgent),
		ReferralSource:  funnel.ReferralSource(session.Referer, session.UTMSource, session.Host),
	}
	if len(input.Metadata) > 0 {
		event.Metadata = datatypes.JSONMap(input.Metadata)
	}

	s.tracker.EnqueueEvent(event)
}

func (s *TrackingServiceImpl) TrackEmail(session services.SessionContext, input services.EmailInput) {
	email := strings.TrimSpace(input.Email)
	if !utils.ValidEmail(email) {
		logger.Warn(logger.CategoryTracking, "invalid_email", "Ignored malformed email submission", map[string]interface{}{
			"session_id": session.SessionID,
		})
		return
	}

	s.tracker.EnqueueEmail(&models.EmailSubmission{
		Email:           strings.ToLower(email),
		RelatedSearchID: input.RelatedSearchID,
		WebResultID:     input.WebResultID,
		SessionID:       session.SessionID,
		IPAddress:       ipOrUnknown(session.IP),
	})
}
