package handler

import (
	"context"
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// healthCheckTimeout bounds the store ping on each health check
const healthCheckTimeout = 2 * time.Second

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// poolReporter is implemented by stores that sample their connection pool
type poolReporter interface {
	PoolSaturation() float64
}

// HealthHandler answers liveness checks
type HealthHandler struct {
	database     Pinger
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewHealthHandler creates a health handler. A nil database skips the ping.
func NewHealthHandler(database Pinger, timeProvider coreport.TimeProvider, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		database:     database,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	status := http.StatusOK
	body := gin.H{
		"status":    "ok",
		"timestamp": h.timeProvider.Now().UTC(),
	}

	if h.database != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		if err := h.database.Ping(ctx); err != nil {
			h.logger.Warn("Health check failed", map[string]any{"error": err.Error()})
			status = http.StatusServiceUnavailable
			body["status"] = "degraded"
			body["database"] = "unreachable"
		} else {
			body["database"] = "ok"
		}
		if pool, ok := h.database.(poolReporter); ok {
			body["poolSaturation"] = pool.PoolSaturation()
		}
	}

	c.JSON(status, body)
}
