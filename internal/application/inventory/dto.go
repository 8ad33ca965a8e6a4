package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizflow/backend/internal/domain/inventory"
)

// StockInfo is the read model for one product's stock position.
// Available is derived, never stored.
type StockInfo struct {
	ProductID         uuid.UUID       `json:"product_id"`
	ProductName       string          `json:"product_name"`
	Quantity          decimal.Decimal `json:"quantity"`
	ReservedQuantity  decimal.Decimal `json:"reserved_quantity"`
	AvailableQuantity decimal.Decimal `json:"available_quantity"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
	IsLowStock        bool            `json:"is_low_stock"`
}

// NewStockInfo builds the read model from an inventory row
func NewStockInfo(inv *inventory.Inventory, productName string) StockInfo {
	return StockInfo{
		ProductID:         inv.ProductID,
		ProductName:       productName,
		Quantity:          inv.Quantity,
		ReservedQuantity:  inv.ReservedQuantity,
		AvailableQuantity: inv.AvailableQuantity(),
		LowStockThreshold: inv.LowStockThreshold,
		IsLowStock:        inv.IsLowStock(),
	}
}

// MovementInfo is the read model for one ledger entry
type MovementInfo struct {
	ID            uuid.UUID       `json:"id"`
	ProductID     uuid.UUID       `json:"product_id"`
	Type          string          `json:"type"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit,omitempty"`
	Change        decimal.Decimal `json:"change"`
	ReferenceType string          `json:"reference_type"`
	ReferenceID   *uuid.UUID      `json:"reference_id,omitempty"`
	Note          string          `json:"note,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// NewMovementInfo builds the read model from a ledger entry
func NewMovementInfo(m *inventory.StockMovement) MovementInfo {
	return MovementInfo{
		ID:            m.ID,
		ProductID:     m.ProductID,
		Type:          string(m.Type),
		Quantity:      m.Quantity,
		Unit:          m.Unit,
		Change:        m.QuantityChange(),
		ReferenceType: string(m.ReferenceType),
		ReferenceID:   m.ReferenceID,
		Note:          m.Note,
		CreatedAt:     m.CreatedAt,
	}
}

// AdjustStockInput is a manual stock correction. Quantity is signed.
// An empty Unit falls back to the product's base unit.
type AdjustStockInput struct {
	OwnerID   uuid.UUID
	ProductID uuid.UUID
	Quantity  decimal.Decimal
	Unit      string
	Note      string
	ActorID   *uuid.UUID
}

// ReceiveStockInput books goods received from a purchase.
// An empty Unit falls back to the product's base unit.
type ReceiveStockInput struct {
	OwnerID     uuid.UUID
	ProductID   uuid.UUID
	Quantity    decimal.Decimal
	Unit        string
	ReferenceID *uuid.UUID
	Note        string
	ActorID     *uuid.UUID
}

// ReserveStockInput holds or frees stock for an order in progress
type ReserveStockInput struct {
	OwnerID   uuid.UUID
	ProductID uuid.UUID
	Quantity  decimal.Decimal
}
