package order

import (
	"context"

	"github.com/google/uuid"

	"github.com/bizflow/backend/internal/domain/shared"
)

// OrderQueries serves order read models
type OrderQueries struct {
	scope TransactionScope
}

// NewOrderQueries creates a new OrderQueries
func NewOrderQueries(scope TransactionScope) *OrderQueries {
	return &OrderQueries{scope: scope}
}

// GetByID returns one order
func (q *OrderQueries) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*OrderResult, error) {
	var result *OrderResult
	err := q.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		o, err := repos.Orders().FindByID(ctx, ownerID, id)
		if err != nil {
			return err
		}
		var debtID *uuid.UUID
		if o.DebtAmount.IsPositive() {
			if d, err := repos.Debts().FindByOrder(ctx, ownerID, o.ID); err == nil {
				debtID = &d.ID
			}
		}
		result = NewOrderResult(o, debtID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// List returns orders newest first
func (q *OrderQueries) List(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (*shared.Paginated[OrderResult], error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}

	var result shared.Paginated[OrderResult]
	err := q.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		orders, total, err := repos.Orders().FindAll(ctx, ownerID, filter)
		if err != nil {
			return err
		}
		items := make([]OrderResult, 0, len(orders))
		for i := range orders {
			items = append(items, *NewOrderResult(&orders[i], nil))
		}
		result = shared.NewPaginated(items, total, filter.Page, filter.PageSize)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
