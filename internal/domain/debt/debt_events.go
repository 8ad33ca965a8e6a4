package debt

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizflow/backend/internal/domain/shared"
)

// Event types for the debt context
const (
	EventDebtCreated = "debt.created"
	EventDebtRepaid  = "debt.repaid"
)

// DebtCreatedEvent is raised when a receivable is booked
type DebtCreatedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID       `json:"customer_id"`
	OrderID    *uuid.UUID      `json:"order_id,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
}

// NewDebtCreatedEvent creates a new debt created event
func NewDebtCreatedEvent(d *Debt) *DebtCreatedEvent {
	return &DebtCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventDebtCreated, "Debt", d.ID, d.OwnerID),
		CustomerID:      d.CustomerID,
		OrderID:         d.OrderID,
		Amount:          d.OriginalAmount,
	}
}

// DebtRepaidEvent is raised when a payment is applied to a debt
type DebtRepaidEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID       `json:"customer_id"`
	PaymentID  uuid.UUID       `json:"payment_id"`
	Amount     decimal.Decimal `json:"amount"`
	Remaining  decimal.Decimal `json:"remaining"`
	Status     Status          `json:"status"`
}

// NewDebtRepaidEvent creates a new debt repaid event
func NewDebtRepaidEvent(d *Debt, p Payment) *DebtRepaidEvent {
	return &DebtRepaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventDebtRepaid, "Debt", d.ID, d.OwnerID),
		CustomerID:      d.CustomerID,
		PaymentID:       p.ID,
		Amount:          p.Amount,
		Remaining:       d.RemainingAmount(),
		Status:          d.Status,
	}
}
