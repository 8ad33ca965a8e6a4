package partner

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizflow/backend/internal/domain/shared"
)

// WalkInCustomerName is the canonical name of the anonymous cash customer.
// Sales without an identified customer are booked against this record.
const WalkInCustomerName = "Khách lẻ"

// Customer represents a buyer account of an owner.
// CreditLimit zero means the customer may not buy on credit at all.
type Customer struct {
	shared.OwnedAggregateRoot
	Name        string          `gorm:"size:255;not null;index"`
	Phone       string          `gorm:"size:32;index"`
	Email       string          `gorm:"size:255"`
	Address     string          `gorm:"size:500"`
	CreditLimit decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Notes       string          `gorm:"type:text"`
	IsActive    bool            `gorm:"not null;default:true;index"`
}

// TableName returns the database table name
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer for an owner account
func NewCustomer(ownerID uuid.UUID, name, phone string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("Customer name is required")
	}

	c := &Customer{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		Name:               name,
		Phone:              strings.TrimSpace(phone),
		CreditLimit:        decimal.Zero,
		IsActive:           true,
	}
	c.AddDomainEvent(NewCustomerCreatedEvent(c))
	return c, nil
}

// NewWalkInCustomer creates the anonymous cash customer for an owner
func NewWalkInCustomer(ownerID uuid.UUID) *Customer {
	c := &Customer{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		Name:               WalkInCustomerName,
		CreditLimit:        decimal.Zero,
		IsActive:           true,
	}
	c.AddDomainEvent(NewCustomerCreatedEvent(c))
	return c
}

// IsWalkIn reports whether this is the anonymous cash customer
func (c *Customer) IsWalkIn() bool {
	return c.Name == WalkInCustomerName
}

// SetCreditLimit changes the allowed outstanding debt ceiling
func (c *Customer) SetCreditLimit(limit decimal.Decimal) error {
	if limit.IsNegative() {
		return shared.NewValidationError("Credit limit cannot be negative")
	}
	c.CreditLimit = limit
	c.Touch()
	return nil
}

// CheckCredit verifies that taking on newDebt in addition to currentDebt
// stays within the customer's credit limit. A zero limit rejects any debt.
func (c *Customer) CheckCredit(currentDebt, newDebt decimal.Decimal) error {
	if !newDebt.IsPositive() {
		return nil
	}
	if c.CreditLimit.IsZero() || currentDebt.Add(newDebt).GreaterThan(c.CreditLimit) {
		return shared.NewCreditLimitError(c.CreditLimit, currentDebt, newDebt)
	}
	return nil
}

// UpdateContact changes contact details
func (c *Customer) UpdateContact(phone, email, address string) {
	c.Phone = strings.TrimSpace(phone)
	c.Email = strings.TrimSpace(email)
	c.Address = strings.TrimSpace(address)
	c.Touch()
}

// Deactivate soft-disables the customer. Inactive customers cannot place orders.
func (c *Customer) Deactivate() {
	c.IsActive = false
	c.Touch()
}

// Activate re-enables the customer
func (c *Customer) Activate() {
	c.IsActive = true
	c.Touch()
}
