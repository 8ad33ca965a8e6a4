package order

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizflow/backend/internal/domain/shared"
)

// OrderType distinguishes sales from customer returns
type OrderType string

const (
	TypeSale   OrderType = "SALE"
	TypeReturn OrderType = "RETURN"
)

// IsValid checks if the order type is valid
func (t OrderType) IsValid() bool {
	return t == TypeSale || t == TypeReturn
}

// PaymentStatus is derived from paid amount versus total, never set directly
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "UNPAID"
	PaymentPartial PaymentStatus = "PARTIAL"
	PaymentPaid    PaymentStatus = "PAID"
)

// PaymentMethod is how the customer settles the order
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "CASH"
	MethodTransfer PaymentMethod = "TRANSFER"
	MethodCard     PaymentMethod = "CARD"
	MethodCredit   PaymentMethod = "CREDIT" // buy now pay later, books a debt
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCash, MethodTransfer, MethodCard, MethodCredit:
		return true
	}
	return false
}

// Order is a confirmed sale or return. Monetary fields SubtotalAmount,
// TaxAmount, TotalAmount, DebtAmount and PaymentStatus are recomputed by
// recalculate() on every mutation and must never be assigned elsewhere.
type Order struct {
	shared.OwnedAggregateRoot
	OrderCode      string          `gorm:"size:32;not null;index"`
	Type           OrderType       `gorm:"size:16;not null;default:'SALE'"`
	CustomerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerName   string          `gorm:"size:255;not null"`
	Items          []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	TaxRate        decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	SubtotalAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	PaidAmount     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	DebtAmount     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	PaymentMethod  PaymentMethod   `gorm:"size:16;not null;default:'CASH'"`
	PaymentStatus  PaymentStatus   `gorm:"size:16;not null;default:'UNPAID';index"`
	OrderDate      time.Time       `gorm:"not null;index"`
	Notes          string          `gorm:"type:text"`
}

// TableName returns the database table name
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates an empty order for a customer. Items are added with
// AddItem and payment recorded with SetPayment before saving.
func NewOrder(ownerID uuid.UUID, orderCode string, orderType OrderType, customerID uuid.UUID, customerName string) (*Order, error) {
	orderCode = strings.TrimSpace(orderCode)
	if orderCode == "" {
		return nil, shared.NewValidationError("Order code is required")
	}
	if !orderType.IsValid() {
		return nil, shared.NewValidationError("Invalid order type: " + string(orderType))
	}
	if customerID == uuid.Nil {
		return nil, shared.NewValidationError("Order customer is required")
	}

	return &Order{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		OrderCode:          orderCode,
		Type:               orderType,
		CustomerID:         customerID,
		CustomerName:       strings.TrimSpace(customerName),
		DiscountAmount:     decimal.Zero,
		TaxRate:            decimal.Zero,
		PaymentMethod:      MethodCash,
		PaymentStatus:      PaymentUnpaid,
		OrderDate:          time.Now(),
	}, nil
}

// AddItem appends a line and recomputes totals
func (o *Order) AddItem(p ItemParams) error {
	item, err := NewOrderItem(p)
	if err != nil {
		return err
	}
	item.OrderID = o.ID
	o.Items = append(o.Items, *item)
	o.recalculate()
	return nil
}

// SetDiscount sets the order-level discount and recomputes totals
func (o *Order) SetDiscount(discount decimal.Decimal) error {
	if discount.IsNegative() {
		return shared.NewValidationError("Order discount cannot be negative")
	}
	subtotal := o.computeSubtotal()
	tax := subtotal.Mul(o.TaxRate).Div(decimal.NewFromInt(100))
	if discount.GreaterThan(subtotal.Add(tax)) {
		return shared.NewValidationError("Order discount cannot exceed order amount")
	}
	o.DiscountAmount = discount
	o.recalculate()
	return nil
}

// SetTaxRate sets the tax percentage and recomputes totals
func (o *Order) SetTaxRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewValidationError("Tax rate must be between 0 and 100")
	}
	o.TaxRate = rate
	o.recalculate()
	return nil
}

// SetPayment records the initial settlement of the order. CREDIT forces the
// paid amount to zero; for other methods the paid amount is clamped at the
// order total so an order can never be overpaid.
func (o *Order) SetPayment(method PaymentMethod, paidAmount decimal.Decimal) error {
	if !method.IsValid() {
		return shared.NewValidationError("Invalid payment method: " + string(method))
	}
	if paidAmount.IsNegative() {
		return shared.NewValidationError("Paid amount cannot be negative")
	}
	o.PaymentMethod = method
	if method == MethodCredit {
		paidAmount = decimal.Zero
	}
	o.PaidAmount = paidAmount
	o.recalculate()
	return nil
}

// RecordPayment adds a later payment against the order's outstanding debt,
// clamped at the total. Used when a linked debt is repaid.
func (o *Order) RecordPayment(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.NewValidationError("Payment amount must be positive")
	}
	o.PaidAmount = o.PaidAmount.Add(amount)
	o.recalculate()
	return nil
}

// HasItems reports whether the order has at least one line
func (o *Order) HasItems() bool {
	return len(o.Items) > 0
}

func (o *Order) computeSubtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for i := range o.Items {
		subtotal = subtotal.Add(o.Items[i].LineTotal())
	}
	return subtotal
}

// recalculate is the single place derived monetary state changes
func (o *Order) recalculate() {
	o.SubtotalAmount = o.computeSubtotal()
	o.TaxAmount = o.SubtotalAmount.Mul(o.TaxRate).Div(decimal.NewFromInt(100))
	o.TotalAmount = o.SubtotalAmount.Add(o.TaxAmount).Sub(o.DiscountAmount)
	if o.TotalAmount.IsNegative() {
		o.TotalAmount = decimal.Zero
	}
	if o.PaidAmount.GreaterThan(o.TotalAmount) {
		o.PaidAmount = o.TotalAmount
	}
	o.DebtAmount = o.TotalAmount.Sub(o.PaidAmount)
	if o.DebtAmount.IsNegative() {
		o.DebtAmount = decimal.Zero
	}

	switch {
	case o.TotalAmount.IsPositive() && o.PaidAmount.GreaterThanOrEqual(o.TotalAmount):
		o.PaymentStatus = PaymentPaid
	case o.PaidAmount.IsPositive():
		o.PaymentStatus = PaymentPartial
	default:
		o.PaymentStatus = PaymentUnpaid
	}
	o.Touch()
}

// AppendNote adds a line to the order notes
func (o *Order) AppendNote(note string) {
	note = strings.TrimSpace(note)
	if note == "" {
		return
	}
	if o.Notes != "" {
		o.Notes += "\n"
	}
	o.Notes += note
	o.Touch()
}
