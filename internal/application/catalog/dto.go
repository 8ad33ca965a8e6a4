package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizflow/backend/internal/domain/catalog"
)

// CreateProductInput is the request to register a catalog product
type CreateProductInput struct {
	OwnerID     uuid.UUID
	SKU         string
	Name        string
	Unit        string
	BasePrice   decimal.Decimal
	CostPrice   decimal.Decimal
	Description string
}

// UpdateProductInput carries partial changes; nil fields stay untouched
type UpdateProductInput struct {
	OwnerID     uuid.UUID
	ProductID   uuid.UUID
	Name        *string
	Unit        *string
	BasePrice   *decimal.Decimal
	CostPrice   *decimal.Decimal
	Description *string
}

// ProductResult is the read model for a catalog product
type ProductResult struct {
	ID          uuid.UUID       `json:"id"`
	SKU         string          `json:"sku,omitempty"`
	Name        string          `json:"name"`
	Unit        string          `json:"unit"`
	BasePrice   decimal.Decimal `json:"base_price"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	Description string          `json:"description,omitempty"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewProductResult builds the read model from the product aggregate
func NewProductResult(p *catalog.Product) *ProductResult {
	return &ProductResult{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Unit:        p.Unit,
		BasePrice:   p.BasePrice,
		CostPrice:   p.CostPrice,
		Description: p.Description,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
