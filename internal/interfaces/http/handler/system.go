package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/stockdesk/backend/internal/infrastructure/persistence"
)

// SystemHandler exposes health and readiness endpoints
type SystemHandler struct {
	BaseHandler
	db      *persistence.Database
	redis   *redis.Client
	appName string
	version string
}

// NewSystemHandler creates a new SystemHandler. The redis client may be
// nil when the deployment runs without Redis.
func NewSystemHandler(db *persistence.Database, redisClient *redis.Client, appName, version string) *SystemHandler {
	return &SystemHandler{
		db:      db,
		redis:   redisClient,
		appName: appName,
		version: version,
	}
}

// Health reports the liveness of the service and its dependencies
func (h *SystemHandler) Health(c *gin.Context) {
	components := gin.H{}
	healthy := true

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			components["database"] = "down"
			healthy = false
		} else {
			components["database"] = "up"
		}
	}

	if h.redis != nil {
		if err := h.redis.Ping(c.Request.Context()).Err(); err != nil {
			components["redis"] = "down"
			healthy = false
		} else {
			components["redis"] = "up"
		}
	}

	status := http.StatusOK
	state := "ok"
	if !healthy {
		status = http.StatusServiceUnavailable
		state = "degraded"
	}

	c.JSON(status, gin.H{
		"status":     state,
		"app":        h.appName,
		"version":    h.version,
		"components": components,
	})
}
