package inventory

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizflow/backend/internal/domain/shared"
)

// MovementType classifies a stock movement
type MovementType string

const (
	MovementImport     MovementType = "IMPORT"     // goods received (purchase, initial stock)
	MovementExport     MovementType = "EXPORT"     // goods sold or issued
	MovementAdjustment MovementType = "ADJUSTMENT" // manual correction, signed quantity
	MovementReturn     MovementType = "RETURN"     // goods returned by customer
)

// IsValid checks if the movement type is valid
func (t MovementType) IsValid() bool {
	switch t {
	case MovementImport, MovementExport, MovementAdjustment, MovementReturn:
		return true
	}
	return false
}

// ReferenceType identifies what caused a movement
type ReferenceType string

const (
	ReferenceOrder      ReferenceType = "ORDER"
	ReferencePurchase   ReferenceType = "PURCHASE"
	ReferenceAdjustment ReferenceType = "ADJUSTMENT"
	ReferenceOther      ReferenceType = "OTHER"
)

// IsValid checks if the reference type is valid
func (t ReferenceType) IsValid() bool {
	switch t {
	case ReferenceOrder, ReferencePurchase, ReferenceAdjustment, ReferenceOther:
		return true
	}
	return false
}

// StockMovement is an immutable ledger entry. Every change to on-hand stock
// is appended here first; the Inventory row is a fold over these entries.
// Quantity is positive for all types except ADJUSTMENT, which carries its sign.
type StockMovement struct {
	shared.BaseEntity
	OwnerID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_movements_owner_product"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_movements_owner_product"`
	Type          MovementType    `gorm:"size:20;not null;index"`
	Quantity      decimal.Decimal `gorm:"type:decimal(15,3);not null"`
	Unit          string          `gorm:"size:32;not null;default:''"`
	ReferenceType ReferenceType   `gorm:"size:20;not null;default:'OTHER'"`
	ReferenceID   *uuid.UUID      `gorm:"type:uuid;index"`
	Note          string          `gorm:"size:500"`
	CreatedBy     *uuid.UUID      `gorm:"type:uuid"`
}

// TableName returns the database table name
func (StockMovement) TableName() string {
	return "stock_movements"
}

// NewStockMovement creates a validated ledger entry. Unit is the measure
// the quantity is counted in, snapshotted from the product's base unit.
func NewStockMovement(ownerID, productID uuid.UUID, movType MovementType, quantity decimal.Decimal, unit string, refType ReferenceType, refID *uuid.UUID, note string) (*StockMovement, error) {
	if !movType.IsValid() {
		return nil, shared.NewValidationError("Invalid movement type: " + string(movType))
	}
	if !refType.IsValid() {
		refType = ReferenceOther
	}
	if quantity.IsZero() {
		return nil, shared.NewValidationError("Movement quantity cannot be zero")
	}
	if movType != MovementAdjustment && quantity.IsNegative() {
		return nil, shared.NewValidationError("Movement quantity must be positive")
	}

	return &StockMovement{
		BaseEntity:    shared.NewBaseEntity(),
		OwnerID:       ownerID,
		ProductID:     productID,
		Type:          movType,
		Quantity:      quantity,
		Unit:          strings.TrimSpace(unit),
		ReferenceType: refType,
		ReferenceID:   refID,
		Note:          note,
	}, nil
}

// QuantityChange returns the signed effect of this movement on on-hand stock
func (m *StockMovement) QuantityChange() decimal.Decimal {
	switch m.Type {
	case MovementImport, MovementReturn:
		return m.Quantity
	case MovementExport:
		return m.Quantity.Neg()
	default: // ADJUSTMENT carries its own sign
		return m.Quantity
	}
}

// IsIncrease reports whether the movement adds to on-hand stock
func (m *StockMovement) IsIncrease() bool {
	return m.QuantityChange().IsPositive()
}
