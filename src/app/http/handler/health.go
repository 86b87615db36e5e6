// Package handler contains the gin handlers of the forum API. Handlers turn
// requests into use case calls and results into response envelopes.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"forumapi/src/core/usecase"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	healthService *usecase.HealthService
}

func NewHealthHandler(healthService *usecase.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// Health reports liveness only.
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DetailedHealth checks every repository. A degraded result is served as 503.
// GET /health/detailed
func (h *HealthHandler) DetailedHealth(c *gin.Context) {
	status := h.healthService.Check(c.Request.Context())
	code := http.StatusOK
	if status.Status != "ok" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
