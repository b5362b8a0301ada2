package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	EventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "funnel_events_total",
			Help: "Analytics events persisted, by event type",
		},
		[]string{"type"},
	)

	EmailSubmissionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "funnel_email_submissions_total",
			Help: "Email submissions persisted from pre-landing pages",
		},
	)

	TrackingDroppedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "funnel_tracking_dropped_total",
			Help: "Tracking rows dropped because the queue was full or the insert failed",
		},
		[]string{"reason"},
	)

	GenerationRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "funnel_generation_requests_total",
			Help: "Generation calls by mode and outcome",
		},
		[]string{"mode", "status"},
	)

	CascadeDeletesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "funnel_cascade_deletes_total",
			Help: "Cascade deletes by root entity and outcome",
		},
		[]string{"entity", "status"},
	)
)

func init() {
	prometheus.MustRegister(
		EventsTotal,
		EmailSubmissionsTotal,
		TrackingDroppedTotal,
		GenerationRequestsTotal,
		CascadeDeletesTotal,
	)
}

func Status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
