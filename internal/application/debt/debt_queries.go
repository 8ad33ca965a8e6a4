package debt

import (
	"context"

	"github.com/google/uuid"

	"github.com/bizflow/backend/internal/domain/shared"
)

// DebtQueries serves debt read models
type DebtQueries struct {
	scope TransactionScope
}

// NewDebtQueries creates a new DebtQueries
func NewDebtQueries(scope TransactionScope) *DebtQueries {
	return &DebtQueries{scope: scope}
}

// GetByID returns one debt
func (q *DebtQueries) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*DebtResult, error) {
	var result *DebtResult
	err := q.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		d, err := repos.Debts().FindByID(ctx, ownerID, id)
		if err != nil {
			return err
		}
		d.RefreshStatus()
		result = NewDebtResult(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListByCustomer returns a customer's debts newest first
func (q *DebtQueries) ListByCustomer(ctx context.Context, ownerID, customerID uuid.UUID, filter shared.Filter) (*shared.Paginated[DebtResult], error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}

	var result shared.Paginated[DebtResult]
	err := q.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		debts, total, err := repos.Debts().FindByCustomer(ctx, ownerID, customerID, filter)
		if err != nil {
			return err
		}
		items := make([]DebtResult, 0, len(debts))
		for i := range debts {
			debts[i].RefreshStatus()
			items = append(items, *NewDebtResult(&debts[i]))
		}
		result = shared.NewPaginated(items, total, filter.Page, filter.PageSize)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
