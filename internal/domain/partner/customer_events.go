package partner

import (
	"github.com/bizflow/backend/internal/domain/shared"
)

// Event types for the partner context
const (
	EventCustomerCreated = "partner.customer.created"
)

// CustomerCreatedEvent is raised when a customer record is created
type CustomerCreatedEvent struct {
	shared.BaseDomainEvent
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// NewCustomerCreatedEvent creates a new customer created event
func NewCustomerCreatedEvent(c *Customer) *CustomerCreatedEvent {
	return &CustomerCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventCustomerCreated, "Customer", c.ID, c.OwnerID),
		Name:            c.Name,
		Phone:           c.Phone,
	}
}
