package debt

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizflow/backend/internal/domain/shared"
)

// Status of a debt, derived from payments and due date.
// Derivation order is PAID, PARTIAL, OVERDUE, PENDING: a debt with any
// partial payment reports PARTIAL even past its due date.
type Status string

const (
	StatusPending Status = "PENDING"
	StatusPartial Status = "PARTIAL"
	StatusPaid    Status = "PAID"
	StatusOverdue Status = "OVERDUE"
)

// Payment is one repayment against a debt. Payments are embedded in the
// debt row so a repayment and its status change commit atomically.
type Payment struct {
	ID     uuid.UUID       `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
	Note   string          `json:"note,omitempty"`
	PaidAt time.Time       `json:"paid_at"`
}

// Payments is stored as a JSONB column
type Payments []Payment

// Value implements driver.Valuer for JSONB storage
func (p Payments) Value() (driver.Value, error) {
	if p == nil {
		p = Payments{}
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner for JSONB retrieval
func (p *Payments) Scan(value interface{}) error {
	if value == nil {
		*p = Payments{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("unsupported type for Payments scan")
	}
	return json.Unmarshal(bytes, p)
}

// Debt is a customer receivable, usually created by a credit sale.
// PaidAmount and Status are derived through ApplyPayment only.
type Debt struct {
	shared.OwnedAggregateRoot
	CustomerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderID        *uuid.UUID      `gorm:"type:uuid;index"`
	OriginalAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaidAmount     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	PaymentLog     Payments        `gorm:"type:jsonb"`
	DueDate        *time.Time      `gorm:"index"`
	Status         Status          `gorm:"size:16;not null;default:'PENDING';index"`
	Notes          string          `gorm:"type:text"`
}

// TableName returns the database table name
func (Debt) TableName() string {
	return "debts"
}

// NewDebt creates a receivable for a customer
func NewDebt(ownerID, customerID uuid.UUID, amount decimal.Decimal, orderID *uuid.UUID, dueDate *time.Time, notes string) (*Debt, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewValidationError("Debt customer is required")
	}
	if !amount.IsPositive() {
		return nil, shared.NewValidationError("Debt amount must be positive")
	}

	d := &Debt{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		CustomerID:         customerID,
		OrderID:            orderID,
		OriginalAmount:     amount,
		PaidAmount:         decimal.Zero,
		PaymentLog:         Payments{},
		DueDate:            dueDate,
		Notes:              strings.TrimSpace(notes),
	}
	d.Status = d.deriveStatus()
	d.AddDomainEvent(NewDebtCreatedEvent(d))
	return d, nil
}

// RemainingAmount is the outstanding part of the debt
func (d *Debt) RemainingAmount() decimal.Decimal {
	return d.OriginalAmount.Sub(d.PaidAmount)
}

// IsSettled reports whether the debt is fully repaid
func (d *Debt) IsSettled() bool {
	return !d.RemainingAmount().IsPositive()
}

// ApplyPayment records a repayment. Overpaying the remaining amount is
// rejected; the payment record, paid amount and status change together.
func (d *Debt) ApplyPayment(amount decimal.Decimal, method, note string) error {
	if d.IsSettled() {
		return shared.ErrAlreadySettled
	}
	if !amount.IsPositive() {
		return shared.NewValidationError("Payment amount must be positive")
	}
	if remaining := d.RemainingAmount(); amount.GreaterThan(remaining) {
		return shared.NewValidationError(
			fmt.Sprintf("Payment amount exceeds remaining debt. Remaining: %s, Payment: %s", remaining.String(), amount.String()))
	}
	if method = strings.TrimSpace(method); method == "" {
		method = "CASH"
	}

	payment := Payment{
		ID:     uuid.New(),
		Amount: amount,
		Method: method,
		Note:   strings.TrimSpace(note),
		PaidAt: time.Now(),
	}
	d.PaymentLog = append(d.PaymentLog, payment)
	d.PaidAmount = d.PaidAmount.Add(amount)
	d.Status = d.deriveStatus()
	d.Touch()
	d.AddDomainEvent(NewDebtRepaidEvent(d, payment))
	return nil
}

// RefreshStatus re-derives the status, picking up due-date transitions
func (d *Debt) RefreshStatus() {
	if next := d.deriveStatus(); next != d.Status {
		d.Status = next
		d.Touch()
	}
}

func (d *Debt) deriveStatus() Status {
	switch {
	case d.IsSettled():
		return StatusPaid
	case d.PaidAmount.IsPositive():
		return StatusPartial
	case d.DueDate != nil && d.DueDate.Before(time.Now()):
		return StatusOverdue
	default:
		return StatusPending
	}
}
