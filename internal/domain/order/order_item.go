package order

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizflow/backend/internal/domain/shared"
)

var oneHundred = decimal.NewFromInt(100)

// OrderItem is one line of an order. Product name, unit and unit price are
// snapshots taken at order time; later catalog changes do not affect
// existing orders.
type OrderItem struct {
	shared.BaseEntity
	OrderID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName     string          `gorm:"size:255;not null"`
	Unit            string          `gorm:"size:32;not null;default:''"`
	Quantity        decimal.Decimal `gorm:"type:decimal(15,3);not null"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DiscountPercent decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	DiscountAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
}

// TableName returns the database table name
func (OrderItem) TableName() string {
	return "order_items"
}

// ItemParams carries everything snapshotted onto one order line.
// DiscountAmount wins when both discounts are given; otherwise a positive
// DiscountPercent derives the amount from the gross line value.
type ItemParams struct {
	ProductID       uuid.UUID
	ProductName     string
	Unit            string
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal
}

// NewOrderItem creates a validated order line
func NewOrderItem(p ItemParams) (*OrderItem, error) {
	productName := strings.TrimSpace(p.ProductName)
	if productName == "" {
		return nil, shared.NewValidationError("Order item product name is required")
	}
	if !p.Quantity.IsPositive() {
		return nil, shared.NewValidationError("Order item quantity must be positive")
	}
	if p.UnitPrice.IsNegative() {
		return nil, shared.NewValidationError("Order item unit price cannot be negative")
	}
	if p.DiscountPercent.IsNegative() || p.DiscountPercent.GreaterThan(oneHundred) {
		return nil, shared.NewValidationError("Order item discount percent must be between 0 and 100")
	}
	if p.DiscountAmount.IsNegative() {
		return nil, shared.NewValidationError("Order item discount cannot be negative")
	}

	gross := p.Quantity.Mul(p.UnitPrice)
	discount := p.DiscountAmount
	if discount.IsZero() && p.DiscountPercent.IsPositive() {
		discount = gross.Mul(p.DiscountPercent).Div(oneHundred).Round(2)
	}
	if discount.GreaterThan(gross) {
		return nil, shared.NewValidationError("Order item discount cannot exceed line amount")
	}

	return &OrderItem{
		BaseEntity:      shared.NewBaseEntity(),
		ProductID:       p.ProductID,
		ProductName:     productName,
		Unit:            strings.TrimSpace(p.Unit),
		Quantity:        p.Quantity,
		UnitPrice:       p.UnitPrice,
		DiscountPercent: p.DiscountPercent,
		DiscountAmount:  discount,
	}, nil
}

// LineTotal is quantity times unit price minus the line discount
func (it *OrderItem) LineTotal() decimal.Decimal {
	return it.Quantity.Mul(it.UnitPrice).Sub(it.DiscountAmount)
}
