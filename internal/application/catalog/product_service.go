package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/bizflow/backend/internal/domain/catalog"
	"github.com/bizflow/backend/internal/domain/shared"
)

// ProductService manages the sellable catalog of an owner account
type ProductService struct {
	products       catalog.ProductRepository
	eventPublisher shared.EventPublisher
}

// NewProductService creates a new product service
func NewProductService(products catalog.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// SetEventPublisher sets the publisher for domain events
func (s *ProductService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create registers a new product in the catalog
func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*ProductResult, error) {
	p, err := catalog.NewProduct(input.OwnerID, input.Name, input.Unit, input.BasePrice)
	if err != nil {
		return nil, err
	}
	if input.SKU != "" {
		p.SKU = input.SKU
	}
	if input.Description != "" {
		p.Description = input.Description
	}
	if !input.CostPrice.IsZero() {
		if err := p.UpdatePricing(input.BasePrice, input.CostPrice); err != nil {
			return nil, err
		}
	}

	if err := s.products.Save(ctx, p); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, p.GetDomainEvents())
	p.ClearDomainEvents()
	return NewProductResult(p), nil
}

// Update changes name, pricing, and description of an existing product
func (s *ProductService) Update(ctx context.Context, input UpdateProductInput) (*ProductResult, error) {
	p, err := s.products.FindByID(ctx, input.OwnerID, input.ProductID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := p.Rename(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.BasePrice != nil || input.CostPrice != nil {
		basePrice := p.BasePrice
		costPrice := p.CostPrice
		if input.BasePrice != nil {
			basePrice = *input.BasePrice
		}
		if input.CostPrice != nil {
			costPrice = *input.CostPrice
		}
		if err := p.UpdatePricing(basePrice, costPrice); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		p.Description = *input.Description
		p.Touch()
	}
	if input.Unit != nil && *input.Unit != "" {
		p.Unit = *input.Unit
		p.Touch()
	}

	if err := s.products.Save(ctx, p); err != nil {
		return nil, err
	}
	return NewProductResult(p), nil
}

// Get returns one product by id
func (s *ProductService) Get(ctx context.Context, ownerID, productID uuid.UUID) (*ProductResult, error) {
	p, err := s.products.FindByID(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}
	return NewProductResult(p), nil
}

// List returns a page of products
func (s *ProductService) List(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (*shared.Paginated[ProductResult], error) {
	products, total, err := s.products.FindAll(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	results := make([]ProductResult, 0, len(products))
	for i := range products {
		results = append(results, *NewProductResult(&products[i]))
	}
	page := shared.NewPaginated(results, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Deactivate soft-disables a product so it can no longer be sold
func (s *ProductService) Deactivate(ctx context.Context, ownerID, productID uuid.UUID) error {
	p, err := s.products.FindByID(ctx, ownerID, productID)
	if err != nil {
		return err
	}
	p.Deactivate()
	return s.products.Save(ctx, p)
}

// Activate re-enables a product
func (s *ProductService) Activate(ctx context.Context, ownerID, productID uuid.UUID) error {
	p, err := s.products.FindByID(ctx, ownerID, productID)
	if err != nil {
		return err
	}
	p.Activate()
	return s.products.Save(ctx, p)
}

func (s *ProductService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
}
