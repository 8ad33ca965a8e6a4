package debt

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizflow/backend/internal/domain/debt"
	"github.com/bizflow/backend/internal/domain/shared"
)

// RepayDebtInput is a repayment request
type RepayDebtInput struct {
	OwnerID uuid.UUID
	DebtID  uuid.UUID
	Amount  decimal.Decimal
	Method  string
	Note    string
}

// PaymentResult is the read model for one recorded payment
type PaymentResult struct {
	PaymentID uuid.UUID       `json:"payment_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	PaidAt    time.Time       `json:"paid_at"`
}

// DebtResult is the read model for a debt after repayment
type DebtResult struct {
	ID              uuid.UUID       `json:"id"`
	CustomerID      uuid.UUID       `json:"customer_id"`
	OrderID         *uuid.UUID      `json:"order_id,omitempty"`
	OriginalAmount  decimal.Decimal `json:"original_amount"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	Status          string          `json:"status"`
	DueDate         *time.Time      `json:"due_date,omitempty"`
	Payments        []PaymentResult `json:"payments"`
}

// NewDebtResult builds the read model from the debt aggregate
func NewDebtResult(d *debt.Debt) *DebtResult {
	payments := make([]PaymentResult, 0, len(d.PaymentLog))
	for _, p := range d.PaymentLog {
		payments = append(payments, PaymentResult{
			PaymentID: p.ID,
			Amount:    p.Amount,
			Method:    p.Method,
			PaidAt:    p.PaidAt,
		})
	}
	return &DebtResult{
		ID:              d.ID,
		CustomerID:      d.CustomerID,
		OrderID:         d.OrderID,
		OriginalAmount:  d.OriginalAmount,
		PaidAmount:      d.PaidAmount,
		RemainingAmount: d.RemainingAmount(),
		Status:          string(d.Status),
		DueDate:         d.DueDate,
		Payments:        payments,
	}
}

// RepayDebtUseCase applies a payment to a debt and keeps the linked order's
// paid amount in sync. The debt row is locked so concurrent repayments of
// the same debt serialize and cannot overpay together.
type RepayDebtUseCase struct {
	scope          TransactionScope
	eventPublisher shared.EventPublisher
}

// NewRepayDebtUseCase creates a new RepayDebtUseCase
func NewRepayDebtUseCase(scope TransactionScope) *RepayDebtUseCase {
	return &RepayDebtUseCase{scope: scope}
}

// SetEventPublisher sets the publisher for domain events
func (uc *RepayDebtUseCase) SetEventPublisher(publisher shared.EventPublisher) {
	uc.eventPublisher = publisher
}

// Execute applies the payment
func (uc *RepayDebtUseCase) Execute(ctx context.Context, input RepayDebtInput) (*DebtResult, error) {
	var (
		result *DebtResult
		events []shared.DomainEvent
	)
	err := uc.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		d, err := repos.Debts().FindByIDForUpdate(ctx, input.OwnerID, input.DebtID)
		if err != nil {
			return err
		}

		if err := d.ApplyPayment(input.Amount, input.Method, input.Note); err != nil {
			return err
		}
		if err := repos.Debts().Save(ctx, d); err != nil {
			return err
		}

		if d.OrderID != nil {
			o, err := repos.Orders().FindByID(ctx, input.OwnerID, *d.OrderID)
			if err == nil {
				if err := o.RecordPayment(input.Amount); err != nil {
					return err
				}
				if err := repos.Orders().Save(ctx, o); err != nil {
					return err
				}
			} else if !errors.Is(err, shared.ErrNotFound) {
				return err
			}
		}

		events = d.GetDomainEvents()
		d.ClearDomainEvents()
		result = NewDebtResult(d)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publishEvents(ctx, events)
	return result, nil
}

// publishEvents publishes after commit, best effort
func (uc *RepayDebtUseCase) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if uc.eventPublisher == nil || len(events) == 0 {
		return
	}
	_ = uc.eventPublisher.Publish(ctx, events...)
}
