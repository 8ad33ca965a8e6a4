package shared

import "fmt"

// DomainError represents a business-rule violation with a stable code.
// Application and interface layers map codes to transport-level statuses.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrInactiveEntity      = NewDomainError("INACTIVE_ENTITY", "Entity is inactive")
	ErrInsufficientStock   = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	ErrCreditLimitExceeded = NewDomainError("CREDIT_LIMIT_EXCEEDED", "Customer credit limit exceeded")
	ErrAlreadySettled      = NewDomainError("ALREADY_SETTLED", "Debt has already been settled")
)

// NewInsufficientStockError reports a failed availability check for a product
func NewInsufficientStockError(productName string, available, requested fmt.Stringer) *DomainError {
	return NewDomainError("INSUFFICIENT_STOCK",
		fmt.Sprintf("Insufficient stock for %s. Available: %s, Requested: %s", productName, available.String(), requested.String()))
}

// NewCreditLimitError reports a rejected credit sale
func NewCreditLimitError(limit, currentDebt, newDebt fmt.Stringer) *DomainError {
	return NewDomainError("CREDIT_LIMIT_EXCEEDED",
		fmt.Sprintf("Customer credit limit exceeded. Limit: %s, Current debt: %s, New debt: %s", limit.String(), currentDebt.String(), newDebt.String()))
}

// NewValidationError creates an INVALID_INPUT error with a specific message
func NewValidationError(message string) *DomainError {
	return NewDomainError("INVALID_INPUT", message)
}
