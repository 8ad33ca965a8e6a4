package draft

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	order "github.com/bizflow/backend/internal/application/order"
	"github.com/bizflow/backend/internal/domain/draft"
	"github.com/bizflow/backend/internal/domain/partner"
	"github.com/bizflow/backend/internal/domain/shared"
)

// OrderCreator creates an order inside an enclosing transaction.
// Satisfied by order.CreateOrderUseCase.
type OrderCreator interface {
	CreateInScope(ctx context.Context, repos order.TransactionalRepositories, input order.CreateOrderInput) (*order.OrderResult, []shared.DomainEvent, error)
}

// ConfirmDraftOrderUseCase turns a pending draft into a confirmed order.
// Overrides are merged over the parsed data, the customer is resolved or
// created, and the order is created through the normal creation path so
// stock, credit and debt rules all apply. Draft flip and order commit
// atomically; any failure leaves the draft pending.
type ConfirmDraftOrderUseCase struct {
	scope          TransactionScope
	orderCreator   OrderCreator
	eventPublisher shared.EventPublisher
}

// NewConfirmDraftOrderUseCase creates a new ConfirmDraftOrderUseCase
func NewConfirmDraftOrderUseCase(scope TransactionScope, orderCreator OrderCreator) *ConfirmDraftOrderUseCase {
	return &ConfirmDraftOrderUseCase{scope: scope, orderCreator: orderCreator}
}

// SetEventPublisher sets the publisher for domain events
func (uc *ConfirmDraftOrderUseCase) SetEventPublisher(publisher shared.EventPublisher) {
	uc.eventPublisher = publisher
}

// Execute confirms the draft
func (uc *ConfirmDraftOrderUseCase) Execute(ctx context.Context, input ConfirmDraftInput) (*ConfirmDraftResult, error) {
	var (
		result     *ConfirmDraftResult
		events     []shared.DomainEvent
		expiredErr error
	)
	err := uc.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		d, err := repos.Drafts().FindByIDForUpdate(ctx, input.OwnerID, input.DraftID)
		if err != nil {
			return err
		}

		// Lazy expiry: persist the EXPIRED flip by committing, then fail
		// the confirmation outside the transaction.
		if d.MarkExpiredIfDue() {
			if err := repos.Drafts().Save(ctx, d); err != nil {
				return err
			}
			expiredErr = shared.NewDomainError("INVALID_STATE", "Draft order has expired")
			return nil
		}
		if err := d.CanBeConfirmed(); err != nil {
			return err
		}

		d.ApplyOverrides(input.Overrides)

		items, err := uc.resolveItems(ctx, repos, input.OwnerID, d.Parsed)
		if err != nil {
			return err
		}

		customer, err := uc.resolveCustomer(ctx, repos, input.OwnerID, &d.Parsed)
		if err != nil {
			return err
		}

		// A counter sale with no stated payment settles in full; a stated
		// partial payment leaves the remainder as a debt on the order.
		method := order.PaymentMethodFromString(d.Parsed.PaymentMethod)
		orderInput := order.CreateOrderInput{
			OwnerID:        input.OwnerID,
			CustomerID:     customer.ID,
			Items:          items,
			PaymentMethod:  method,
			IsDebt:         d.Parsed.IsDebt,
			PaidAmount:     d.Parsed.PaidAmount,
			PayInFull:      !d.Parsed.IsDebt && d.Parsed.PaidAmount.IsZero(),
			TaxRate:        d.Parsed.TaxRate,
			DiscountAmount: d.Parsed.DiscountAmount,
			Notes:          uc.provenanceNote(d),
			ActorID:        input.ActorID,
		}

		orderResult, orderEvents, err := uc.orderCreator.CreateInScope(ctx, repos, orderInput)
		if err != nil {
			return err
		}

		if err := d.Confirm(orderResult.ID, input.ActorID); err != nil {
			return err
		}
		if err := repos.Drafts().Save(ctx, d); err != nil {
			return err
		}

		events = append(events, orderEvents...)
		events = append(events, d.GetDomainEvents()...)
		d.ClearDomainEvents()
		result = &ConfirmDraftResult{Draft: NewDraftResult(d), Order: orderResult}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if expiredErr != nil {
		return nil, expiredErr
	}

	uc.publishEvents(ctx, events)
	return result, nil
}

// resolveItems maps the parsed lines to order lines. Every line must have
// been resolved to a catalog product, either during staging or through an
// override; an unresolved name fails the confirmation.
func (uc *ConfirmDraftOrderUseCase) resolveItems(ctx context.Context, repos TransactionalRepositories, ownerID uuid.UUID, p draft.ParsedOrder) ([]order.OrderItemInput, error) {
	if len(p.Items) == 0 {
		return nil, shared.NewValidationError("Draft has no items to confirm")
	}

	items := make([]order.OrderItemInput, 0, len(p.Items))
	for _, it := range p.Items {
		productID := it.ProductID
		unitPrice := it.UnitPrice
		if productID == nil {
			product, err := repos.Products().FindBestByName(ctx, ownerID, it.ProductName)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					return nil, shared.NewValidationError("Không tìm thấy sản phẩm \"" + it.ProductName + "\"")
				}
				return nil, err
			}
			productID = &product.ID
			if !unitPrice.IsPositive() {
				unitPrice = product.BasePrice
			}
		}
		if !it.Quantity.IsPositive() {
			return nil, shared.NewValidationError("Thiếu số lượng cho sản phẩm \"" + it.ProductName + "\"")
		}
		var pricePtr *decimal.Decimal
		if unitPrice.IsPositive() {
			price := unitPrice
			pricePtr = &price
		}
		items = append(items, order.OrderItemInput{
			ProductID: *productID,
			Quantity:  it.Quantity,
			UnitPrice: pricePtr,
		})
	}
	return items, nil
}

// resolveCustomer picks the order's customer: the resolved record if
// staging matched one, a best name match otherwise, a newly created
// customer for an unknown real name, or the owner's walk-in customer
// when no customer was given at all.
func (uc *ConfirmDraftOrderUseCase) resolveCustomer(ctx context.Context, repos TransactionalRepositories, ownerID uuid.UUID, p *draft.ParsedOrder) (*partner.Customer, error) {
	if p.CustomerID != nil {
		return repos.Customers().FindByID(ctx, ownerID, *p.CustomerID)
	}
	if !p.HasCustomer() {
		return repos.Customers().GetOrCreateWalkIn(ctx, ownerID)
	}
	c, err := repos.Customers().FindBestByName(ctx, ownerID, p.CustomerName)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	c, err = partner.NewCustomer(ownerID, p.CustomerName, p.CustomerPhone)
	if err != nil {
		return nil, err
	}
	if err := repos.Customers().Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *ConfirmDraftOrderUseCase) provenanceNote(d *draft.DraftOrder) string {
	note := "Từ đơn nháp " + d.DraftCode + ". Nội dung gốc: " + d.RawText
	if extra := strings.TrimSpace(d.Parsed.Notes); extra != "" {
		note += "\n" + extra
	}
	return note
}

func (uc *ConfirmDraftOrderUseCase) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if uc.eventPublisher == nil || len(events) == 0 {
		return
	}
	_ = uc.eventPublisher.Publish(ctx, events...)
}
