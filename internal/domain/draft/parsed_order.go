package draft

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParsedItem is one order line as understood from free-form text.
// ProductID is filled in once the name has been resolved against the catalog.
type ParsedItem struct {
	ProductName string          `json:"product_name"`
	ProductID   *uuid.UUID      `json:"product_id,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// ParsedOrder is the structured interpretation of a free-form order message.
// It is a value object stored as JSONB on the draft; nothing here is
// validated against business rules until confirmation.
type ParsedOrder struct {
	CustomerName   string          `json:"customer_name"`
	CustomerPhone  string          `json:"customer_phone,omitempty"`
	CustomerID     *uuid.UUID      `json:"customer_id,omitempty"`
	Items          []ParsedItem    `json:"items"`
	PaymentMethod  string          `json:"payment_method,omitempty"`
	IsDebt         bool            `json:"is_debt"`
	// PaidAmount zero means the message did not state a payment; what that
	// defaults to is decided at confirmation, not here.
	PaidAmount decimal.Decimal `json:"paid_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	Notes          string          `json:"notes,omitempty"`
}

// Value implements driver.Valuer for JSONB storage
func (p ParsedOrder) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner for JSONB retrieval
func (p *ParsedOrder) Scan(value interface{}) error {
	if value == nil {
		*p = ParsedOrder{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("unsupported type for ParsedOrder scan")
	}
	return json.Unmarshal(bytes, p)
}

// HasCustomer reports whether a real customer was identified.
// The walk-in fallback name does not count.
func (p *ParsedOrder) HasCustomer() bool {
	name := strings.TrimSpace(p.CustomerName)
	return p.CustomerID != nil || (name != "" && name != "Khách lẻ")
}

// HasItems reports whether any order lines were extracted
func (p *ParsedOrder) HasItems() bool {
	return len(p.Items) > 0
}

// StringList is a JSONB-stored list of strings
type StringList []string

// Value implements driver.Valuer for JSONB storage
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for JSONB retrieval
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("unsupported type for StringList scan")
	}
	return json.Unmarshal(bytes, l)
}
