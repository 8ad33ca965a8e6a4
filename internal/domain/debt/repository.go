package debt

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizflow/backend/internal/domain/shared"
)

// DebtRepository defines the persistence port for receivables
type DebtRepository interface {
	Save(ctx context.Context, debt *Debt) error
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Debt, error)
	// FindByIDForUpdate loads the debt with a write lock so concurrent
	// repayments serialize. Only meaningful inside a transaction.
	FindByIDForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*Debt, error)
	FindByCustomer(ctx context.Context, ownerID, customerID uuid.UUID, filter shared.Filter) ([]Debt, int64, error)
	FindByOrder(ctx context.Context, ownerID, orderID uuid.UUID) (*Debt, error)
	// TotalOutstanding sums remaining amounts over the customer's unsettled
	// debts, used for credit-limit checks.
	TotalOutstanding(ctx context.Context, ownerID, customerID uuid.UUID) (decimal.Decimal, error)
	FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Debt, int64, error)
}
