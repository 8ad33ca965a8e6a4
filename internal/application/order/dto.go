package order

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizflow/backend/internal/domain/order"
)

// OrderItemInput is one requested order line. UnitPrice nil or zero falls
// back to the product's catalog base price, an empty Unit to the product's
// base unit. DiscountAmount wins over DiscountPercent when both are given.
type OrderItemInput struct {
	ProductID       uuid.UUID
	Quantity        decimal.Decimal
	Unit            string
	UnitPrice       *decimal.Decimal
	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal
}

// CreateOrderInput is the request to create a confirmed order.
// PayInFull settles the whole total regardless of PaidAmount; it is
// ignored for credit sales.
type CreateOrderInput struct {
	OwnerID        uuid.UUID
	CustomerID     uuid.UUID
	Items          []OrderItemInput
	PaymentMethod  order.PaymentMethod
	PaidAmount     decimal.Decimal
	PayInFull      bool
	IsDebt         bool
	TaxRate        decimal.Decimal
	DiscountAmount decimal.Decimal
	DueDate        *time.Time
	Notes          string
	ActorID        *uuid.UUID
}

// PaymentMethodFromString normalizes a free-text payment method.
// Unknown or empty values fall back to cash.
func PaymentMethodFromString(s string) order.PaymentMethod {
	switch order.PaymentMethod(strings.ToUpper(strings.TrimSpace(s))) {
	case order.MethodTransfer:
		return order.MethodTransfer
	case order.MethodCard:
		return order.MethodCard
	case order.MethodCredit:
		return order.MethodCredit
	default:
		return order.MethodCash
	}
}

// OrderItemResult is the read model for a created order line
type OrderItemResult struct {
	ProductID       uuid.UUID       `json:"product_id"`
	ProductName     string          `json:"product_name"`
	Unit            string          `json:"unit,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	LineTotal       decimal.Decimal `json:"line_total"`
}

// OrderResult is the read model returned after creation
type OrderResult struct {
	ID             uuid.UUID         `json:"id"`
	OrderCode      string            `json:"order_code"`
	CustomerID     uuid.UUID         `json:"customer_id"`
	CustomerName   string            `json:"customer_name"`
	Items          []OrderItemResult `json:"items"`
	SubtotalAmount decimal.Decimal   `json:"subtotal_amount"`
	TaxAmount      decimal.Decimal   `json:"tax_amount"`
	DiscountAmount decimal.Decimal   `json:"discount_amount"`
	TotalAmount    decimal.Decimal   `json:"total_amount"`
	PaidAmount     decimal.Decimal   `json:"paid_amount"`
	DebtAmount     decimal.Decimal   `json:"debt_amount"`
	PaymentMethod  string            `json:"payment_method"`
	PaymentStatus  string            `json:"payment_status"`
	DebtID         *uuid.UUID        `json:"debt_id,omitempty"`
	OrderDate      time.Time         `json:"order_date"`
	Notes          string            `json:"notes,omitempty"`
}

// NewOrderResult builds the read model from the order aggregate
func NewOrderResult(o *order.Order, debtID *uuid.UUID) *OrderResult {
	items := make([]OrderItemResult, 0, len(o.Items))
	for i := range o.Items {
		it := &o.Items[i]
		items = append(items, OrderItemResult{
			ProductID:       it.ProductID,
			ProductName:     it.ProductName,
			Unit:            it.Unit,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			DiscountPercent: it.DiscountPercent,
			DiscountAmount:  it.DiscountAmount,
			LineTotal:       it.LineTotal(),
		})
	}
	return &OrderResult{
		ID:             o.ID,
		OrderCode:      o.OrderCode,
		CustomerID:     o.CustomerID,
		CustomerName:   o.CustomerName,
		Items:          items,
		SubtotalAmount: o.SubtotalAmount,
		TaxAmount:      o.TaxAmount,
		DiscountAmount: o.DiscountAmount,
		TotalAmount:    o.TotalAmount,
		PaidAmount:     o.PaidAmount,
		DebtAmount:     o.DebtAmount,
		PaymentMethod:  string(o.PaymentMethod),
		PaymentStatus:  string(o.PaymentStatus),
		DebtID:         debtID,
		OrderDate:      o.OrderDate,
		Notes:          o.Notes,
	}
}
