package draft

import (
	"github.com/google/uuid"

	"github.com/bizflow/backend/internal/domain/shared"
)

// Event types for the draft context
const (
	EventDraftCreated   = "draft.created"
	EventDraftConfirmed = "draft.confirmed"
)

// DraftCreatedEvent is raised when an order message is staged
type DraftCreatedEvent struct {
	shared.BaseDomainEvent
	DraftCode     string     `json:"draft_code"`
	Confidence    float64    `json:"confidence"`
	MissingFields StringList `json:"missing_fields"`
}

// NewDraftCreatedEvent creates a new draft created event
func NewDraftCreatedEvent(d *DraftOrder) *DraftCreatedEvent {
	return &DraftCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventDraftCreated, "DraftOrder", d.ID, d.OwnerID),
		DraftCode:       d.DraftCode,
		Confidence:      d.Confidence,
		MissingFields:   d.MissingFields,
	}
}

// DraftConfirmedEvent is raised when a draft becomes an order
type DraftConfirmedEvent struct {
	shared.BaseDomainEvent
	DraftCode string    `json:"draft_code"`
	OrderID   uuid.UUID `json:"order_id"`
}

// NewDraftConfirmedEvent creates a new draft confirmed event
func NewDraftConfirmedEvent(d *DraftOrder, orderID uuid.UUID) *DraftConfirmedEvent {
	return &DraftConfirmedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventDraftConfirmed, "DraftOrder", d.ID, d.OwnerID),
		DraftCode:       d.DraftCode,
		OrderID:         orderID,
	}
}
