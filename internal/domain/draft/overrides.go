package draft

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Overrides carries user corrections applied at confirmation time.
// Nil pointers mean "keep the parsed value".
type Overrides struct {
	CustomerID     *uuid.UUID
	CustomerName   *string
	CustomerPhone  *string
	Items          []ParsedItem
	PaymentMethod  *string
	IsDebt         *bool
	PaidAmount     *decimal.Decimal
	DiscountAmount *decimal.Decimal
	TaxRate        *decimal.Decimal
	Notes          *string
}
