package order

import (
	"context"

	"github.com/bizflow/backend/internal/domain/catalog"
	"github.com/bizflow/backend/internal/domain/debt"
	"github.com/bizflow/backend/internal/domain/inventory"
	"github.com/bizflow/backend/internal/domain/order"
	"github.com/bizflow/backend/internal/domain/partner"
)

// TransactionScope provides transactional access to everything order
// creation touches. Stock deduction, the order row, and the booked debt
// must commit or roll back as one unit.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories bound to the current transaction
type TransactionalRepositories interface {
	Orders() order.OrderRepository
	Customers() partner.CustomerRepository
	Products() catalog.ProductRepository
	Inventory() inventory.InventoryRepository
	Movements() inventory.StockMovementRepository
	Debts() debt.DebtRepository
}

// NoOpTransactionScope runs the function without a real transaction, for tests
type NoOpTransactionScope struct {
	orderRepo     order.OrderRepository
	customerRepo  partner.CustomerRepository
	productRepo   catalog.ProductRepository
	inventoryRepo inventory.InventoryRepository
	movementRepo  inventory.StockMovementRepository
	debtRepo      debt.DebtRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(
	orderRepo order.OrderRepository,
	customerRepo partner.CustomerRepository,
	productRepo catalog.ProductRepository,
	inventoryRepo inventory.InventoryRepository,
	movementRepo inventory.StockMovementRepository,
	debtRepo debt.DebtRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		orderRepo:     orderRepo,
		customerRepo:  customerRepo,
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		movementRepo:  movementRepo,
		debtRepo:      debtRepo,
	}
}

// Execute runs the function directly
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) Orders() order.OrderRepository               { return s.orderRepo }
func (s *NoOpTransactionScope) Customers() partner.CustomerRepository       { return s.customerRepo }
func (s *NoOpTransactionScope) Products() catalog.ProductRepository         { return s.productRepo }
func (s *NoOpTransactionScope) Inventory() inventory.InventoryRepository    { return s.inventoryRepo }
func (s *NoOpTransactionScope) Movements() inventory.StockMovementRepository { return s.movementRepo }
func (s *NoOpTransactionScope) Debts() debt.DebtRepository                  { return s.debtRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
