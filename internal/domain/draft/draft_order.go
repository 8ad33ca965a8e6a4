package draft

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bizflow/backend/internal/domain/shared"
)

// Status of a draft order
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusRejected  Status = "REJECTED"
	StatusExpired   Status = "EXPIRED"
)

// DefaultTTL is how long a pending draft stays confirmable
const DefaultTTL = 24 * time.Hour

// Source records how the draft entered the system
type Source string

const (
	SourceAIText  Source = "AI_TEXT"
	SourceAIVoice Source = "AI_VOICE"
	SourceManual  Source = "MANUAL"
)

// IsValid checks if the source is valid
func (s Source) IsValid() bool {
	switch s {
	case SourceAIText, SourceAIVoice, SourceManual:
		return true
	}
	return false
}

// DraftOrder stages an AI-parsed order message until a human confirms or
// rejects it. Expiry is lazy: nothing sweeps drafts in the background, the
// state flips when an expired draft is next read or confirmed.
type DraftOrder struct {
	shared.OwnedAggregateRoot
	DraftCode        string      `gorm:"size:32;not null;index"`
	RawText          string      `gorm:"type:text;not null"`
	Parsed           ParsedOrder `gorm:"type:jsonb"`
	Confidence       float64     `gorm:"not null;default:0"`
	MissingFields    StringList  `gorm:"type:jsonb"`
	Questions        StringList  `gorm:"type:jsonb"`
	Status           Status      `gorm:"size:16;not null;default:'PENDING';index"`
	Source           Source      `gorm:"size:16;not null;default:'AI_TEXT'"`
	ExpiresAt        time.Time   `gorm:"not null;index"`
	ConfirmedOrderID *uuid.UUID  `gorm:"type:uuid"`
	ConfirmedBy      *uuid.UUID  `gorm:"type:uuid"`
	ConfirmedAt      *time.Time
	RejectedBy       *uuid.UUID `gorm:"type:uuid"`
	RejectReason     string     `gorm:"size:500"`
}

// TableName returns the database table name
func (DraftOrder) TableName() string {
	return "draft_orders"
}

// NewDraftOrder stages a parsed order message
func NewDraftOrder(ownerID uuid.UUID, draftCode, rawText string, source Source, parsed ParsedOrder, confidence float64) (*DraftOrder, error) {
	draftCode = strings.TrimSpace(draftCode)
	if draftCode == "" {
		return nil, shared.NewValidationError("Draft code is required")
	}
	if strings.TrimSpace(rawText) == "" {
		return nil, shared.NewValidationError("Draft text is required")
	}
	if source == "" {
		source = SourceAIText
	}
	if !source.IsValid() {
		return nil, shared.NewValidationError("Invalid draft source: " + string(source))
	}
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	d := &DraftOrder{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		DraftCode:          draftCode,
		RawText:            rawText,
		Parsed:             parsed,
		Confidence:         confidence,
		MissingFields:      StringList{},
		Questions:          StringList{},
		Status:             StatusPending,
		Source:             source,
		ExpiresAt:          time.Now().Add(DefaultTTL),
	}
	d.refreshMissingFields()
	d.AddDomainEvent(NewDraftCreatedEvent(d))
	return d, nil
}

// IsExpired reports whether the draft's confirmation window has passed
func (d *DraftOrder) IsExpired() bool {
	return time.Now().After(d.ExpiresAt)
}

// MarkExpiredIfDue flips a pending draft past its deadline to EXPIRED.
// Returns true when the state changed.
func (d *DraftOrder) MarkExpiredIfDue() bool {
	if d.Status == StatusPending && d.IsExpired() {
		d.Status = StatusExpired
		d.Touch()
		return true
	}
	return false
}

// CanBeConfirmed checks the confirmation guard: only a pending,
// unexpired draft may become an order.
func (d *DraftOrder) CanBeConfirmed() error {
	if d.MarkExpiredIfDue() || d.Status == StatusExpired {
		return shared.NewDomainError("INVALID_STATE", "Draft order has expired")
	}
	if d.Status != StatusPending {
		return shared.NewDomainError("INVALID_STATE", "Draft order is already "+strings.ToLower(string(d.Status)))
	}
	return nil
}

// ApplyOverrides merges user-provided corrections over the parsed data.
// Overrides win field by field; untouched fields keep their parsed values.
func (d *DraftOrder) ApplyOverrides(o Overrides) {
	if o.CustomerName != nil {
		d.Parsed.CustomerName = strings.TrimSpace(*o.CustomerName)
		d.Parsed.CustomerID = nil
	}
	if o.CustomerID != nil {
		d.Parsed.CustomerID = o.CustomerID
	}
	if o.CustomerPhone != nil {
		d.Parsed.CustomerPhone = strings.TrimSpace(*o.CustomerPhone)
	}
	if o.Items != nil {
		d.Parsed.Items = o.Items
	}
	if o.PaymentMethod != nil {
		d.Parsed.PaymentMethod = *o.PaymentMethod
	}
	if o.IsDebt != nil {
		d.Parsed.IsDebt = *o.IsDebt
	}
	if o.PaidAmount != nil {
		d.Parsed.PaidAmount = *o.PaidAmount
	}
	if o.DiscountAmount != nil {
		d.Parsed.DiscountAmount = *o.DiscountAmount
	}
	if o.TaxRate != nil {
		d.Parsed.TaxRate = *o.TaxRate
	}
	if o.Notes != nil {
		d.Parsed.Notes = strings.TrimSpace(*o.Notes)
	}
	d.refreshMissingFields()
	d.Touch()
}

// Confirm links the draft to the order created from it and stamps who
// confirmed it and when
func (d *DraftOrder) Confirm(orderID uuid.UUID, confirmedBy *uuid.UUID) error {
	if err := d.CanBeConfirmed(); err != nil {
		return err
	}
	now := time.Now()
	d.Status = StatusConfirmed
	d.ConfirmedOrderID = &orderID
	d.ConfirmedBy = confirmedBy
	d.ConfirmedAt = &now
	d.Touch()
	d.AddDomainEvent(NewDraftConfirmedEvent(d, orderID))
	return nil
}

// Reject discards a pending draft, stamping the rejecting user
func (d *DraftOrder) Reject(reason string, rejectedBy *uuid.UUID) error {
	if d.MarkExpiredIfDue() || d.Status != StatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending drafts can be rejected")
	}
	d.Status = StatusRejected
	d.RejectedBy = rejectedBy
	d.RejectReason = strings.TrimSpace(reason)
	d.Touch()
	return nil
}

// refreshMissingFields recomputes what a human still has to supply before
// the draft can become an order, and the questions to ask for it.
func (d *DraftOrder) refreshMissingFields() {
	missing := StringList{}
	questions := StringList{}

	if !d.Parsed.HasCustomer() {
		missing = append(missing, "customer")
		questions = append(questions, "Đơn này bán cho khách nào?")
	}
	if !d.Parsed.HasItems() {
		missing = append(missing, "items")
		questions = append(questions, "Đơn gồm những sản phẩm nào, số lượng bao nhiêu?")
	} else {
		for _, it := range d.Parsed.Items {
			if !it.Quantity.IsPositive() {
				missing = append(missing, "quantity:"+it.ProductName)
				questions = append(questions, "Số lượng của \""+it.ProductName+"\" là bao nhiêu?")
			}
		}
	}

	d.MissingFields = missing
	d.Questions = questions
}
