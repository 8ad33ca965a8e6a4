package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/bizflow/backend/internal/domain/shared"
)

// Event types for the catalog context
const (
	EventProductCreated = "catalog.product.created"
)

// ProductCreatedEvent is raised when a product is added to the catalog
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	BasePrice decimal.Decimal `json:"base_price"`
}

// NewProductCreatedEvent creates a new product created event
func NewProductCreatedEvent(p *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventProductCreated, "Product", p.ID, p.OwnerID),
		Name:            p.Name,
		Unit:            p.Unit,
		BasePrice:       p.BasePrice,
	}
}
