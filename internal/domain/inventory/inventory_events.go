package inventory

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizflow/backend/internal/domain/shared"
)

// Event types for the inventory context
const (
	EventStockMoved      = "inventory.stock.moved"
	EventLowStockReached = "inventory.stock.low"
)

// StockMovedEvent is raised after a movement is folded into on-hand stock
type StockMovedEvent struct {
	shared.BaseDomainEvent
	ProductID    uuid.UUID       `json:"product_id"`
	MovementType MovementType    `json:"movement_type"`
	Change       decimal.Decimal `json:"change"`
	NewQuantity  decimal.Decimal `json:"new_quantity"`
}

// NewStockMovedEvent creates a new stock moved event
func NewStockMovedEvent(inv *Inventory, m *StockMovement) *StockMovedEvent {
	return &StockMovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventStockMoved, "Inventory", inv.ID, inv.OwnerID),
		ProductID:       inv.ProductID,
		MovementType:    m.Type,
		Change:          m.QuantityChange(),
		NewQuantity:     inv.Quantity,
	}
}

// LowStockReachedEvent is raised when available stock crosses the threshold
type LowStockReachedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID       `json:"product_id"`
	Available decimal.Decimal `json:"available"`
	Threshold decimal.Decimal `json:"threshold"`
}

// NewLowStockReachedEvent creates a new low stock event
func NewLowStockReachedEvent(inv *Inventory) *LowStockReachedEvent {
	return &LowStockReachedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventLowStockReached, "Inventory", inv.ID, inv.OwnerID),
		ProductID:       inv.ProductID,
		Available:       inv.AvailableQuantity(),
		Threshold:       inv.LowStockThreshold,
	}
}
