package order

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizflow/backend/internal/domain/shared"
)

// Event types for the order context
const (
	EventOrderCreated = "order.created"
)

// OrderCreatedEvent is raised after an order is persisted
type OrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderCode    string          `json:"order_code"`
	CustomerID   uuid.UUID       `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	DebtAmount   decimal.Decimal `json:"debt_amount"`
}

// NewOrderCreatedEvent creates a new order created event
func NewOrderCreatedEvent(o *Order) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventOrderCreated, "Order", o.ID, o.OwnerID),
		OrderCode:       o.OrderCode,
		CustomerID:      o.CustomerID,
		CustomerName:    o.CustomerName,
		TotalAmount:     o.TotalAmount,
		DebtAmount:      o.DebtAmount,
	}
}
