package order

import (
	"context"
	"time"

	"github.com/google/uuid"

	invapp "github.com/bizflow/backend/internal/application/inventory"
	"github.com/bizflow/backend/internal/domain/debt"
	"github.com/bizflow/backend/internal/domain/order"
	"github.com/bizflow/backend/internal/domain/shared"
)

// DefaultDebtTerm is the due date applied to credit sales without an
// explicit due date.
const DefaultDebtTerm = 30 * 24 * time.Hour

// CreateOrderUseCase turns a validated request into a confirmed order:
// stock is deducted through the movement ledger, a debt is booked for any
// unpaid remainder, and everything commits in one transaction.
type CreateOrderUseCase struct {
	scope          TransactionScope
	eventPublisher shared.EventPublisher
}

// NewCreateOrderUseCase creates a new CreateOrderUseCase
func NewCreateOrderUseCase(scope TransactionScope) *CreateOrderUseCase {
	return &CreateOrderUseCase{scope: scope}
}

// SetEventPublisher sets the publisher for domain events
func (uc *CreateOrderUseCase) SetEventPublisher(publisher shared.EventPublisher) {
	uc.eventPublisher = publisher
}

// Execute creates the order in its own transaction
func (uc *CreateOrderUseCase) Execute(ctx context.Context, input CreateOrderInput) (*OrderResult, error) {
	var (
		result *OrderResult
		events []shared.DomainEvent
	)
	err := uc.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		result, events, err = uc.CreateInScope(ctx, repos, input)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.publishEvents(ctx, events)
	return result, nil
}

// CreateInScope creates the order using repositories an enclosing
// transaction already owns. Draft confirmation uses this so the draft
// status change and the order commit atomically. Returned events must be
// published by the caller after its transaction commits.
func (uc *CreateOrderUseCase) CreateInScope(ctx context.Context, repos TransactionalRepositories, input CreateOrderInput) (*OrderResult, []shared.DomainEvent, error) {
	if len(input.Items) == 0 {
		return nil, nil, shared.NewValidationError("Order must have at least one item")
	}
	for _, it := range input.Items {
		if !it.Quantity.IsPositive() {
			return nil, nil, shared.NewValidationError("Order item quantity must be positive")
		}
	}

	method := input.PaymentMethod
	if method == "" {
		method = order.MethodCash
	}
	if input.IsDebt {
		method = order.MethodCredit
	}
	if !method.IsValid() {
		return nil, nil, shared.NewValidationError("Invalid payment method: " + string(method))
	}

	customer, err := repos.Customers().FindByID(ctx, input.OwnerID, input.CustomerID)
	if err != nil {
		return nil, nil, err
	}
	if !customer.IsActive {
		return nil, nil, shared.ErrInactiveEntity
	}

	code, err := repos.Orders().GenerateOrderCode(ctx, input.OwnerID, time.Now())
	if err != nil {
		return nil, nil, err
	}

	o, err := order.NewOrder(input.OwnerID, code, order.TypeSale, customer.ID, customer.Name)
	if err != nil {
		return nil, nil, err
	}
	o.CreatedBy = input.ActorID

	// Resolve products and build lines; zero or missing prices fall back
	// to the catalog base price, the unit to the product's base unit.
	for _, it := range input.Items {
		product, err := repos.Products().FindByID(ctx, input.OwnerID, it.ProductID)
		if err != nil {
			return nil, nil, err
		}
		if !product.IsActive {
			return nil, nil, shared.ErrInactiveEntity
		}
		unitPrice := product.BasePrice
		if it.UnitPrice != nil && it.UnitPrice.IsPositive() {
			unitPrice = *it.UnitPrice
		}
		unit := it.Unit
		if unit == "" {
			unit = product.Unit
		}
		if err := o.AddItem(order.ItemParams{
			ProductID:       product.ID,
			ProductName:     product.Name,
			Unit:            unit,
			Quantity:        it.Quantity,
			UnitPrice:       unitPrice,
			DiscountPercent: it.DiscountPercent,
			DiscountAmount:  it.DiscountAmount,
		}); err != nil {
			return nil, nil, err
		}
	}

	if err := o.SetTaxRate(input.TaxRate); err != nil {
		return nil, nil, err
	}
	if err := o.SetDiscount(input.DiscountAmount); err != nil {
		return nil, nil, err
	}
	paidAmount := input.PaidAmount
	if input.PayInFull && method != order.MethodCredit {
		paidAmount = o.TotalAmount
	}
	if err := o.SetPayment(method, paidAmount); err != nil {
		return nil, nil, err
	}
	if input.Notes != "" {
		o.AppendNote(input.Notes)
	}

	if o.DebtAmount.IsPositive() {
		outstanding, err := repos.Debts().TotalOutstanding(ctx, input.OwnerID, customer.ID)
		if err != nil {
			return nil, nil, err
		}
		if err := customer.CheckCredit(outstanding, o.DebtAmount); err != nil {
			return nil, nil, err
		}
	}

	// Deduct stock line by line through the shared inventory write path.
	// It locks each row before the availability check, so concurrent sales
	// of the same product serialize and cannot oversell.
	var events []shared.DomainEvent
	for i := range o.Items {
		item := &o.Items[i]
		_, movementEvents, err := invapp.DeductForOrder(ctx, repos, invapp.OrderDeduction{
			OwnerID:     input.OwnerID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Unit:        item.Unit,
			Quantity:    item.Quantity,
			OrderID:     o.ID,
			OrderCode:   code,
			ActorID:     input.ActorID,
		})
		if err != nil {
			return nil, nil, err
		}
		events = append(events, movementEvents...)
	}

	if err := repos.Orders().Save(ctx, o); err != nil {
		return nil, nil, err
	}

	var debtID *uuid.UUID
	if o.DebtAmount.IsPositive() {
		dueDate := input.DueDate
		if dueDate == nil {
			due := o.OrderDate.Add(DefaultDebtTerm)
			dueDate = &due
		}
		d, err := debt.NewDebt(input.OwnerID, customer.ID, o.DebtAmount, &o.ID, dueDate, "Từ đơn hàng "+code)
		if err != nil {
			return nil, nil, err
		}
		d.CreatedBy = input.ActorID
		if err := repos.Debts().Save(ctx, d); err != nil {
			return nil, nil, err
		}
		events = append(events, d.GetDomainEvents()...)
		d.ClearDomainEvents()
		debtID = &d.ID
	}

	o.AddDomainEvent(order.NewOrderCreatedEvent(o))
	events = append(events, o.GetDomainEvents()...)
	o.ClearDomainEvents()

	return NewOrderResult(o, debtID), events, nil
}

// publishEvents publishes after commit, best effort
func (uc *CreateOrderUseCase) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if uc.eventPublisher == nil || len(events) == 0 {
		return
	}
	_ = uc.eventPublisher.Publish(ctx, events...)
}
