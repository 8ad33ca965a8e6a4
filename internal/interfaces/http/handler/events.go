package handler

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bizflow/backend/internal/infrastructure/event"
)

// EventStreamer provides a live event feed scoped to one owner account
type EventStreamer interface {
	Stream(ctx context.Context, ownerID uuid.UUID) (<-chan event.Envelope, func(), error)
}

// EventHandler streams domain events to clients over server-sent events
type EventHandler struct {
	BaseHandler
	streamer EventStreamer
}

// NewEventHandler creates a new event stream handler
func NewEventHandler(streamer EventStreamer) *EventHandler {
	return &EventHandler{streamer: streamer}
}

// RegisterRoutes registers event stream routes
func (h *EventHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/events/stream", h.Stream)
}

// Stream handles GET /events/stream. The connection stays open and
// delivers each domain event as an SSE message named by its event type.
func (h *EventHandler) Stream(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		h.Unauthorized(c, "Owner identification required")
		return
	}

	ch, cancel, err := h.streamer.Stream(c.Request.Context(), owner)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case env, open := <-ch:
			if !open {
				return false
			}
			c.SSEvent(env.EventType, env)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
