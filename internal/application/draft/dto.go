package draft

import (
	"time"

	"github.com/google/uuid"

	order "github.com/bizflow/backend/internal/application/order"
	"github.com/bizflow/backend/internal/domain/draft"
)

// CreateDraftInput stages a free-form order message. Source defaults to
// AI_TEXT when unset.
type CreateDraftInput struct {
	OwnerID uuid.UUID
	Text    string
	Source  draft.Source
	ActorID *uuid.UUID
}

// ConfirmDraftInput confirms a staged draft, optionally with corrections
type ConfirmDraftInput struct {
	OwnerID   uuid.UUID
	DraftID   uuid.UUID
	Overrides draft.Overrides
	ActorID   *uuid.UUID
}

// DraftResult is the read model for a staged draft
type DraftResult struct {
	ID               uuid.UUID         `json:"id"`
	DraftCode        string            `json:"draft_code"`
	RawText          string            `json:"raw_text"`
	Parsed           draft.ParsedOrder `json:"parsed"`
	Confidence       float64           `json:"confidence"`
	MissingFields    []string          `json:"missing_fields"`
	Questions        []string          `json:"questions"`
	Status           string            `json:"status"`
	Source           string            `json:"source"`
	ExpiresAt        time.Time         `json:"expires_at"`
	ConfirmedOrderID *uuid.UUID        `json:"confirmed_order_id,omitempty"`
	ConfirmedBy      *uuid.UUID        `json:"confirmed_by,omitempty"`
	ConfirmedAt      *time.Time        `json:"confirmed_at,omitempty"`
	RejectedBy       *uuid.UUID        `json:"rejected_by,omitempty"`
	RejectReason     string            `json:"reject_reason,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

// NewDraftResult builds the read model from the draft aggregate
func NewDraftResult(d *draft.DraftOrder) *DraftResult {
	return &DraftResult{
		ID:               d.ID,
		DraftCode:        d.DraftCode,
		RawText:          d.RawText,
		Parsed:           d.Parsed,
		Confidence:       d.Confidence,
		MissingFields:    d.MissingFields,
		Questions:        d.Questions,
		Status:           string(d.Status),
		Source:           string(d.Source),
		ExpiresAt:        d.ExpiresAt,
		ConfirmedOrderID: d.ConfirmedOrderID,
		ConfirmedBy:      d.ConfirmedBy,
		ConfirmedAt:      d.ConfirmedAt,
		RejectedBy:       d.RejectedBy,
		RejectReason:     d.RejectReason,
		CreatedAt:        d.CreatedAt,
	}
}

// ConfirmDraftResult pairs the confirmed draft with the order it produced
type ConfirmDraftResult struct {
	Draft *DraftResult       `json:"draft"`
	Order *order.OrderResult `json:"order"`
}
