package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports process liveness
type HealthHandler struct {
	startedAt time.Time
	app       string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(app string) *HealthHandler {
	return &HealthHandler{startedAt: time.Now(), app: app}
}

// RegisterRoutes registers health routes
func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Check)
}

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"app":    h.app,
		"uptime": time.Since(h.startedAt).Round(time.Second).String(),
	})
}
