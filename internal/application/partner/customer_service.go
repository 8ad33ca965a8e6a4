package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizflow/backend/internal/domain/partner"
	"github.com/bizflow/backend/internal/domain/shared"
)

// CustomerService manages the buyer accounts of an owner
type CustomerService struct {
	customers      partner.CustomerRepository
	eventPublisher shared.EventPublisher
}

// NewCustomerService creates a new customer service
func NewCustomerService(customers partner.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

// SetEventPublisher sets the publisher for domain events
func (s *CustomerService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create registers a new customer
func (s *CustomerService) Create(ctx context.Context, input CreateCustomerInput) (*CustomerResult, error) {
	c, err := partner.NewCustomer(input.OwnerID, input.Name, input.Phone)
	if err != nil {
		return nil, err
	}
	c.UpdateContact(input.Phone, input.Email, input.Address)
	if input.Notes != "" {
		c.Notes = input.Notes
	}
	if !input.CreditLimit.IsZero() {
		if err := c.SetCreditLimit(input.CreditLimit); err != nil {
			return nil, err
		}
	}

	if err := s.customers.Save(ctx, c); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, c.GetDomainEvents())
	c.ClearDomainEvents()
	return NewCustomerResult(c), nil
}

// Update changes contact details and notes; nil fields stay untouched
func (s *CustomerService) Update(ctx context.Context, input UpdateCustomerInput) (*CustomerResult, error) {
	c, err := s.customers.FindByID(ctx, input.OwnerID, input.CustomerID)
	if err != nil {
		return nil, err
	}

	phone := c.Phone
	email := c.Email
	address := c.Address
	if input.Phone != nil {
		phone = *input.Phone
	}
	if input.Email != nil {
		email = *input.Email
	}
	if input.Address != nil {
		address = *input.Address
	}
	c.UpdateContact(phone, email, address)

	if input.Notes != nil {
		c.Notes = *input.Notes
		c.Touch()
	}

	if err := s.customers.Save(ctx, c); err != nil {
		return nil, err
	}
	return NewCustomerResult(c), nil
}

// SetCreditLimit changes how much the customer may owe.
// The walk-in customer never gets credit.
func (s *CustomerService) SetCreditLimit(ctx context.Context, ownerID, customerID uuid.UUID, limit decimal.Decimal) (*CustomerResult, error) {
	c, err := s.customers.FindByID(ctx, ownerID, customerID)
	if err != nil {
		return nil, err
	}
	if c.IsWalkIn() {
		return nil, shared.NewValidationError("Walk-in customer cannot have a credit limit")
	}
	if err := c.SetCreditLimit(limit); err != nil {
		return nil, err
	}
	if err := s.customers.Save(ctx, c); err != nil {
		return nil, err
	}
	return NewCustomerResult(c), nil
}

// Get returns one customer by id
func (s *CustomerService) Get(ctx context.Context, ownerID, customerID uuid.UUID) (*CustomerResult, error) {
	c, err := s.customers.FindByID(ctx, ownerID, customerID)
	if err != nil {
		return nil, err
	}
	return NewCustomerResult(c), nil
}

// List returns a page of customers
func (s *CustomerService) List(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (*shared.Paginated[CustomerResult], error) {
	customers, total, err := s.customers.FindAll(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	results := make([]CustomerResult, 0, len(customers))
	for i := range customers {
		results = append(results, *NewCustomerResult(&customers[i]))
	}
	page := shared.NewPaginated(results, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Deactivate soft-disables a customer
func (s *CustomerService) Deactivate(ctx context.Context, ownerID, customerID uuid.UUID) error {
	c, err := s.customers.FindByID(ctx, ownerID, customerID)
	if err != nil {
		return err
	}
	c.Deactivate()
	return s.customers.Save(ctx, c)
}

func (s *CustomerService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
}
