package inventory

import (
	"context"

	"github.com/bizflow/backend/internal/domain/catalog"
	"github.com/bizflow/backend/internal/domain/inventory"
)

// TransactionScope provides transactional access to the inventory repositories.
// All repository operations inside Execute share one database transaction and
// commit or roll back atomically.
type TransactionScope interface {
	// Execute runs fn within a database transaction. A returned error rolls
	// the transaction back; nil commits it.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories bound to the current
// transaction. The movement ledger and the inventory row must always change
// together, which is why they share a scope.
type TransactionalRepositories interface {
	Inventory() inventory.InventoryRepository
	Movements() inventory.StockMovementRepository
	Products() catalog.ProductRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Used in tests where repositories are mocked.
type NoOpTransactionScope struct {
	inventoryRepo inventory.InventoryRepository
	movementRepo  inventory.StockMovementRepository
	productRepo   catalog.ProductRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(
	inventoryRepo inventory.InventoryRepository,
	movementRepo inventory.StockMovementRepository,
	productRepo catalog.ProductRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		inventoryRepo: inventoryRepo,
		movementRepo:  movementRepo,
		productRepo:   productRepo,
	}
}

// Execute runs the function directly
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) Inventory() inventory.InventoryRepository    { return s.inventoryRepo }
func (s *NoOpTransactionScope) Movements() inventory.StockMovementRepository { return s.movementRepo }
func (s *NoOpTransactionScope) Products() catalog.ProductRepository          { return s.productRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
