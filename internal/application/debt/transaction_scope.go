package debt

import (
	"context"

	"github.com/bizflow/backend/internal/domain/debt"
	"github.com/bizflow/backend/internal/domain/order"
)

// TransactionScope provides transactional access to debt repayment.
// A repayment changes the debt and its linked order together.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories bound to the current transaction
type TransactionalRepositories interface {
	Debts() debt.DebtRepository
	Orders() order.OrderRepository
}

// NoOpTransactionScope runs the function without a real transaction, for tests
type NoOpTransactionScope struct {
	debtRepo  debt.DebtRepository
	orderRepo order.OrderRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(debtRepo debt.DebtRepository, orderRepo order.OrderRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{debtRepo: debtRepo, orderRepo: orderRepo}
}

// Execute runs the function directly
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) Debts() debt.DebtRepository   { return s.debtRepo }
func (s *NoOpTransactionScope) Orders() order.OrderRepository { return s.orderRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
