package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bizflow/backend/internal/infrastructure/event"
	"github.com/bizflow/backend/internal/interfaces/http/middleware"
)

// fakeStreamer replays a fixed set of envelopes then closes the stream
type fakeStreamer struct {
	envelopes []event.Envelope
	err       error
	cancelled bool
}

func (f *fakeStreamer) Stream(_ context.Context, _ uuid.UUID) (<-chan event.Envelope, func(), error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	ch := make(chan event.Envelope, len(f.envelopes))
	for _, env := range f.envelopes {
		ch <- env
	}
	close(ch)
	return ch, func() { f.cancelled = true }, nil
}

// closeNotifyRecorder adds the http.CloseNotifier method gin's c.Stream
// requires, which httptest.ResponseRecorder does not implement.
type closeNotifyRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func newCloseNotifyRecorder() *closeNotifyRecorder {
	return &closeNotifyRecorder{httptest.NewRecorder(), make(chan bool, 1)}
}

func (r *closeNotifyRecorder) CloseNotify() <-chan bool {
	return r.closed
}

func setupEventRouter(streamer EventStreamer, owner uuid.UUID) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.OwnerIDKey, owner.String())
	})
	NewEventHandler(streamer).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestEventHandlerStream(t *testing.T) {
	owner := uuid.New()
	payload, _ := json.Marshal(map[string]string{"order_code": "ORD-20250115-0001"})
	streamer := &fakeStreamer{
		envelopes: []event.Envelope{
			{
				EventID:       uuid.NewString(),
				EventType:     "order.created",
				AggregateType: "order",
				AggregateID:   uuid.NewString(),
				OwnerID:       owner.String(),
				OccurredAt:    time.Now(),
				Payload:       payload,
			},
			{
				EventID:   uuid.NewString(),
				EventType: "debt.created",
				OwnerID:   owner.String(),
				Payload:   json.RawMessage(`{}`),
			},
		},
	}
	router := setupEventRouter(streamer, owner)

	w := newCloseNotifyRecorder()
	req := httptest.NewRequest("GET", "/api/v1/events/stream", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")

	body := w.Body.String()
	assert.Contains(t, body, "event:order.created")
	assert.Contains(t, body, "ORD-20250115-0001")
	assert.Contains(t, body, "event:debt.created")
	assert.True(t, streamer.cancelled)
}

func TestEventHandlerStreamSubscribeError(t *testing.T) {
	owner := uuid.New()
	router := setupEventRouter(&fakeStreamer{err: errors.New("redis unavailable")}, owner)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/events/stream", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, strings.Contains(w.Body.String(), "redis unavailable"))
}

func TestEventHandlerStreamMissingOwner(t *testing.T) {
	r := gin.New()
	NewEventHandler(&fakeStreamer{}).RegisterRoutes(r.Group("/api/v1"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/events/stream", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
