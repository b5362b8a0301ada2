package funnel

import (
	"github.com/google/uuid"

	"search-funnel/domain/models"
)

type VisitKind string

const (
	VisitPreLanding VisitKind = "prelanding"
	VisitDirect     VisitKind = "direct"
)

// VisitDecision is where a "visit" click on a web result goes next.
type VisitDecision struct {
	Kind            VisitKind
	URL             string // set for VisitDirect
	Override        string // clicked result URL, carried to the pre-landing page
	RelatedSearchID uuid.UUID
	WebResultID     uuid.UUID
}

// ResolveVisit routes through the pre-landing page when the owning search
// has one, carrying the result's own URL as the override. Otherwise the
// result URL is opened directly.
func ResolveVisit(result models.WebResult, preLanding *models.PreLandingConfig) VisitDecision {
	if preLanding != nil {
		return VisitDecision{
			Kind:            VisitPreLanding,
			Override:        result.URL,
			RelatedSearchID: result.RelatedSearchID,
			WebResultID:     result.ID,
		}
	}
	return VisitDecision{
		Kind:            VisitDirect,
		URL:             result.URL,
		RelatedSearchID: result.RelatedSearchID,
		WebResultID:     result.ID,
	}
}

// ResolveSubmissionRedirect picks the redirect after an email capture:
// per-click override, then the config's stored destination, then nothing.
func ResolveSubmissionRedirect(override string, cfg *models.PreLandingConfig) (string, bool) {
	if override != "" {
		return override, true
	}
	if cfg != nil && cfg.DestinationURL != nil && *cfg.DestinationURL != "" {
		return *cfg.DestinationURL, true
	}
	return "", false
}
