package draft

import (
	"context"

	order "github.com/bizflow/backend/internal/application/order"
	"github.com/bizflow/backend/internal/domain/draft"
)

// TransactionScope provides transactional access for draft staging and
// confirmation. Confirmation creates an order, so the scope extends the
// order scope with the draft repository: the draft status flip and the
// order it produced commit together.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories bound to the current transaction
type TransactionalRepositories interface {
	order.TransactionalRepositories
	Drafts() draft.DraftOrderRepository
}

// NoOpTransactionScope runs the function without a real transaction, for tests
type NoOpTransactionScope struct {
	order.TransactionalRepositories
	draftRepo draft.DraftOrderRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(orderRepos order.TransactionalRepositories, draftRepo draft.DraftOrderRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{TransactionalRepositories: orderRepos, draftRepo: draftRepo}
}

// Execute runs the function directly
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) Drafts() draft.DraftOrderRepository { return s.draftRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
