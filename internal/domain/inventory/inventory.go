package inventory

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizflow/backend/internal/domain/shared"
)

// DefaultLowStockThreshold is applied to lazily created inventory rows
var DefaultLowStockThreshold = decimal.NewFromInt(10)

// Inventory tracks on-hand stock of one product for one owner.
// Quantity is a fold over the product's stock movements; it is never set
// directly. ReservedQuantity is held for unconfirmed orders and does not
// appear in the movement ledger.
type Inventory struct {
	shared.OwnedAggregateRoot
	ProductID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity          decimal.Decimal `gorm:"type:decimal(15,3);not null;default:0"`
	ReservedQuantity  decimal.Decimal `gorm:"type:decimal(15,3);not null;default:0"`
	LowStockThreshold decimal.Decimal `gorm:"type:decimal(15,3);not null;default:10"`
}

// TableName returns the database table name
func (Inventory) TableName() string {
	return "inventories"
}

// NewInventory creates a zero-stock inventory row for a product
func NewInventory(ownerID, productID uuid.UUID) *Inventory {
	return &Inventory{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		ProductID:          productID,
		Quantity:           decimal.Zero,
		ReservedQuantity:   decimal.Zero,
		LowStockThreshold:  DefaultLowStockThreshold,
	}
}

// AvailableQuantity is on-hand stock minus reservations
func (i *Inventory) AvailableQuantity() decimal.Decimal {
	return i.Quantity.Sub(i.ReservedQuantity)
}

// IsLowStock reports whether available stock has fallen to the threshold
func (i *Inventory) IsLowStock() bool {
	return i.AvailableQuantity().LessThanOrEqual(i.LowStockThreshold)
}

// Apply folds one movement's signed delta into on-hand stock.
// Decreases are rejected when they would take available stock below zero,
// so reservations can never be stranded by a sale.
func (i *Inventory) Apply(m *StockMovement, productName string) error {
	if m.ProductID != i.ProductID {
		return shared.NewValidationError("Movement does not belong to this product")
	}
	change := m.QuantityChange()
	if change.IsNegative() {
		if i.AvailableQuantity().LessThan(change.Abs()) {
			return shared.NewInsufficientStockError(productName, i.AvailableQuantity(), change.Abs())
		}
	}
	wasLow := i.IsLowStock()
	i.Quantity = i.Quantity.Add(change)
	i.Touch()

	if !wasLow && i.IsLowStock() {
		i.AddDomainEvent(NewLowStockReachedEvent(i))
	}
	return nil
}

// Reserve holds stock for an order without moving it
func (i *Inventory) Reserve(quantity decimal.Decimal, productName string) error {
	if !quantity.IsPositive() {
		return shared.NewValidationError("Reserve quantity must be positive")
	}
	if i.AvailableQuantity().LessThan(quantity) {
		return shared.NewInsufficientStockError(productName, i.AvailableQuantity(), quantity)
	}
	i.ReservedQuantity = i.ReservedQuantity.Add(quantity)
	i.Touch()
	return nil
}

// Release frees previously reserved stock. Releasing more than is reserved
// clamps to zero.
func (i *Inventory) Release(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return shared.NewValidationError("Release quantity must be positive")
	}
	i.ReservedQuantity = i.ReservedQuantity.Sub(quantity)
	if i.ReservedQuantity.IsNegative() {
		i.ReservedQuantity = decimal.Zero
	}
	i.Touch()
	return nil
}

// SetLowStockThreshold changes the alert threshold
func (i *Inventory) SetLowStockThreshold(threshold decimal.Decimal) error {
	if threshold.IsNegative() {
		return shared.NewValidationError("Low stock threshold cannot be negative")
	}
	i.LowStockThreshold = threshold
	i.Touch()
	return nil
}
