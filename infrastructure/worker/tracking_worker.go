package worker

import (
	"context"
	"sync"
	"time"

	"search-funnel/domain/dto"
	"search-funnel/domain/models"
	"search-funnel/domain/repositories"
	"search-funnel/domain/services"
	"search-funnel/infrastructure/metrics"
	"search-funnel/pkg/logger"
)

const insertTimeout = 5 * time.Second

type trackingJob struct {
	event      *models.AnalyticsEvent
	submission *models.EmailSubmission
}

// TrackingWorker persists analytics events and email submissions off the
// request path. Enqueue never blocks: a full queue drops the row.
type TrackingWorker struct {
	eventRepo      repositories.AnalyticsRepository
	submissionRepo repositories.EmailSubmissionRepository
	broadcaster    services.EventBroadcaster
	geo            services.CountryResolver

	queue   chan trackingJob
	workers int

	// Worker control
	wg        sync.WaitGroup
	isRunning bool
	closed    bool
	mu        sync.RWMutex
}

var _ services.Tracker = (*TrackingWorker)(nil)

func NewTrackingWorker(
	eventRepo repositories.AnalyticsRepository,
	submissionRepo repositories.EmailSubmissionRepository,
	broadcaster services.EventBroadcaster,
	geo services.CountryResolver,
	queueSize, workers int,
) *TrackingWorker {
	if workers < 1 {
		workers = 1
	}
	return &TrackingWorker{
		eventRepo:      eventRepo,
		submissionRepo: submissionRepo,
		broadcaster:    broadcaster,
		geo:            geo,
		queue:          make(chan trackingJob, queueSize),
		workers:        workers,
	}
}

// Start starts the tracking workers
func (w *TrackingWorker) Start() {
	w.mu.Lock()
	if w.isRunning || w.closed {
		w.mu.Unlock()
		return
	}
	w.isRunning = true
	w.mu.Unlock()

	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go w.run()
	}

	logger.Info(logger.CategoryTracking, "worker_started", "Tracking worker started", map[string]interface{}{
		"workers":    w.workers,
		"queue_size": cap(w.queue),
	})
}

// Stop closes the queue and waits until every queued row is written.
func (w *TrackingWorker) Stop() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	wasRunning := w.isRunning
	w.isRunning = false
	close(w.queue)
	w.mu.Unlock()

	if !wasRunning {
		// drain anything queued before Start was ever called
		w.wg.Add(1)
		go w.run()
	}
	w.wg.Wait()
	logger.Info(logger.CategoryTracking, "worker_stopped", "Tracking worker stopped", nil)
}

// IsRunning returns whether the worker is running
func (w *TrackingWorker) IsRunning() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.isRunning
}

// QueueDepth is the number of rows waiting to be written.
func (w *TrackingWorker) QueueDepth() int {
	return len(w.queue)
}

func (w *TrackingWorker) EnqueueEvent(event *models.AnalyticsEvent) bool {
	return w.enqueue(trackingJob{event: event})
}

func (w *TrackingWorker) EnqueueEmail(submission *models.EmailSubmission) bool {
	return w.enqueue(trackingJob{submission: submission})
}

func (w *TrackingWorker) enqueue(job trackingJob) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		metrics.TrackingDroppedTotal.WithLabelValues("stopped").Inc()
		return false
	}

	select {
	case w.queue <- job:
		return true
	default:
		metrics.TrackingDroppedTotal.WithLabelValues("queue_full").Inc()
		logger.Warn(logger.CategoryTracking, "queue_full", "Tracking queue full, row dropped", map[string]interface{}{
			"queue_size": cap(w.queue),
		})
		return false
	}
}

func (w *TrackingWorker) run() {
	defer w.wg.Done()

	for job := range w.queue {
		switch {
		case job.event != nil:
			w.writeEvent(job.event)
		case job.submission != nil:
			w.writeSubmission(job.submission)
		}
	}
}

func (w *TrackingWorker) writeEvent(event *models.AnalyticsEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), insertTimeout)
	defer cancel()

	if event.Country == "" {
		event.Country = models.Unknown
		if w.geo != nil {
			event.Country = w.geo.Country(ctx, event.IPAddress)
		}
	}

	if err := w.eventRepo.Create(ctx, event); err != nil {
		metrics.TrackingDroppedTotal.WithLabelValues("insert_failed").Inc()
		logger.Error(logger.CategoryTracking, "event_insert_failed", "Failed to store analytics event", err, map[string]interface{}{
			"event_type": event.EventType,
			"session_id": event.SessionID,
		})
		return
	}

	metrics.EventsTotal.WithLabelValues(string(event.EventType)).Inc()
	if w.broadcaster != nil {
		w.broadcaster.Broadcast("analytics_event", dto.AnalyticsEventToResponse(event))
	}
}

func (w *TrackingWorker) writeSubmission(submission *models.EmailSubmission) {
	ctx, cancel := context.WithTimeout(context.Background(), insertTimeout)
	defer cancel()

	if err := w.submissionRepo.Create(ctx, submission); err != nil {
		metrics.TrackingDroppedTotal.WithLabelValues("insert_failed").Inc()
		logger.Error(logger.CategoryTracking, "email_insert_failed", "Failed to store email submission", err, map[string]interface{}{
			"session_id": submission.SessionID,
		})
		return
	}

	metrics.EmailSubmissionsTotal.Inc()
	if w.broadcaster != nil {
		w.broadcaster.Broadcast("email_submission", dto.EmailSubmissionToResponse(submission))
	}
}
