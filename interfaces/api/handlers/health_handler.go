package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"search-funnel/infrastructure/redis"
)

// TrackingQueue is the part of the tracking worker the health check reads.
type TrackingQueue interface {
	IsRunning() bool
	QueueDepth() int
}

// LiveClients reports how many admin dashboards are connected.
type LiveClients interface {
	ClientCount() int
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db          *gorm.DB
	redisClient *redis.RedisClient
	tracking    TrackingQueue
	live        LiveClients
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, redisClient *redis.RedisClient, tracking TrackingQueue, live LiveClients) *HealthHandler {
	return &HealthHandler{
		db:          db,
		redisClient: redisClient,
		tracking:    tracking,
		live:        live,
	}
}

// ComponentHealth represents health status of a component
type ComponentHealth struct {
	Status  string `json:"status"` // "ok", "error", "unavailable"
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// DetailedHealthResponse represents detailed health check response
type DetailedHealthResponse struct {
	Status     string                     `json:"status"` // "healthy", "degraded", "unhealthy"
	Timestamp  time.Time                  `json:"timestamp"`
	Components map[string]ComponentHealth `json:"components"`
	Metrics    *HealthMetrics             `json:"metrics,omitempty"`
}

type HealthMetrics struct {
	TrackingQueueDepth int `json:"tracking_queue_depth"`
	LiveClients        int `json:"live_clients"`
}

// DetailedHealth godoc
// @Summary Get detailed system health
// @Description Database is critical; Redis and the tracking worker only degrade the service
// @Tags Health
// @Produce json
// @Success 200 {object} DetailedHealthResponse
// @Failure 503 {object} DetailedHealthResponse
// @Router /health/detailed [get]
func (h *HealthHandler) DetailedHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 10*time.Second)
	defer cancel()

	components := map[string]ComponentHealth{
		"database":        h.checkDatabase(ctx),
		"redis":           h.checkRedis(ctx),
		"tracking_worker": h.checkTracking(),
	}

	// Only the database is critical
	status := "healthy"
	for name, component := range components {
		if component.Status != "error" {
			continue
		}
		if name == "database" {
			status = "unhealthy"
			break
		}
		status = "degraded"
	}

	code := fiber.StatusOK
	if status == "unhealthy" {
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(DetailedHealthResponse{
		Status:     status,
		Timestamp:  time.Now(),
		Components: components,
		Metrics:    h.getMetrics(),
	})
}

func healthy(message string, start time.Time) ComponentHealth {
	return ComponentHealth{Status: "ok", Message: message, Latency: time.Since(start).String()}
}

func failed(message string) ComponentHealth {
	return ComponentHealth{Status: "error", Message: message}
}

func (h *HealthHandler) checkDatabase(ctx context.Context) ComponentHealth {
	start := time.Now()
	if h.db == nil {
		return failed("Database not configured")
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		return failed("Failed to get database connection: " + err.Error())
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return failed("Database ping failed: " + err.Error())
	}
	return healthy("Connected", start)
}

// checkRedis reports "unavailable" rather than "error" when Redis was never
// configured; wizard drafts and the geo cache are the only users.
func (h *HealthHandler) checkRedis(ctx context.Context) ComponentHealth {
	start := time.Now()
	if h.redisClient == nil {
		return ComponentHealth{Status: "unavailable", Message: "Redis not configured"}
	}
	if err := h.redisClient.Ping(ctx); err != nil {
		return failed("Redis ping failed: " + err.Error())
	}
	return healthy("Connected", start)
}

func (h *HealthHandler) checkTracking() ComponentHealth {
	switch {
	case h.tracking == nil:
		return ComponentHealth{Status: "unavailable", Message: "Tracking worker not configured"}
	case !h.tracking.IsRunning():
		return failed("Tracking worker stopped")
	default:
		return ComponentHealth{Status: "ok", Message: "Queue depth " + strconv.Itoa(h.tracking.QueueDepth())}
	}
}

func (h *HealthHandler) getMetrics() *HealthMetrics {
	metrics := &HealthMetrics{}
	if h.tracking != nil {
		metrics.TrackingQueueDepth = h.tracking.QueueDepth()
	}
	if h.live != nil {
		metrics.LiveClients = h.live.ClientCount()
	}
	return metrics
}
