package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizflow/backend/internal/domain/shared"
)

// Product is a sellable catalog entry. Stock levels live in the inventory
// context; the catalog only carries identity, pricing, and the unit of sale.
type Product struct {
	shared.OwnedAggregateRoot
	SKU         string          `gorm:"size:64;index"`
	Name        string          `gorm:"size:255;not null;index"`
	Unit        string          `gorm:"size:32;not null;default:'cái'"`
	BasePrice   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CostPrice   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Description string          `gorm:"type:text"`
	IsActive    bool            `gorm:"not null;default:true;index"`
}

// TableName returns the database table name
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product for an owner account
func NewProduct(ownerID uuid.UUID, name, unit string, basePrice decimal.Decimal) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("Product name is required")
	}
	if basePrice.IsNegative() {
		return nil, shared.NewValidationError("Product price cannot be negative")
	}
	if unit = strings.TrimSpace(unit); unit == "" {
		unit = "cái"
	}

	p := &Product{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		Name:               name,
		Unit:               unit,
		BasePrice:          basePrice,
		IsActive:           true,
	}
	p.AddDomainEvent(NewProductCreatedEvent(p))
	return p, nil
}

// UpdatePricing changes base and cost price
func (p *Product) UpdatePricing(basePrice, costPrice decimal.Decimal) error {
	if basePrice.IsNegative() || costPrice.IsNegative() {
		return shared.NewValidationError("Product price cannot be negative")
	}
	p.BasePrice = basePrice
	p.CostPrice = costPrice
	p.Touch()
	return nil
}

// Rename changes the product name
func (p *Product) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("Product name is required")
	}
	p.Name = name
	p.Touch()
	return nil
}

// Deactivate soft-disables the product. Inactive products cannot be sold.
func (p *Product) Deactivate() {
	p.IsActive = false
	p.Touch()
}

// Activate re-enables the product
func (p *Product) Activate() {
	p.IsActive = true
	p.Touch()
}
