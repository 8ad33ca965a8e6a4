package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizflow/backend/internal/domain/partner"
)

// CreateCustomerInput is the request to register a customer
type CreateCustomerInput struct {
	OwnerID     uuid.UUID
	Name        string
	Phone       string
	Email       string
	Address     string
	CreditLimit decimal.Decimal
	Notes       string
}

// UpdateCustomerInput carries partial changes; nil fields stay untouched
type UpdateCustomerInput struct {
	OwnerID    uuid.UUID
	CustomerID uuid.UUID
	Phone      *string
	Email      *string
	Address    *string
	Notes      *string
}

// CustomerResult is the read model for a customer
type CustomerResult struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Phone       string          `json:"phone,omitempty"`
	Email       string          `json:"email,omitempty"`
	Address     string          `json:"address,omitempty"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	Notes       string          `json:"notes,omitempty"`
	IsWalkIn    bool            `json:"is_walk_in"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewCustomerResult builds the read model from the customer aggregate
func NewCustomerResult(c *partner.Customer) *CustomerResult {
	return &CustomerResult{
		ID:          c.ID,
		Name:        c.Name,
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     c.Address,
		CreditLimit: c.CreditLimit,
		Notes:       c.Notes,
		IsWalkIn:    c.IsWalkIn(),
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
