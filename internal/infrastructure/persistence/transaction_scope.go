package persistence

import (
	"context"

	"gorm.io/gorm"

	appdebt "github.com/bizflow/backend/internal/application/debt"
	appdraft "github.com/bizflow/backend/internal/application/draft"
	appinv "github.com/bizflow/backend/internal/application/inventory"
	apporder "github.com/bizflow/backend/internal/application/order"
	"github.com/bizflow/backend/internal/domain/catalog"
	"github.com/bizflow/backend/internal/domain/debt"
	"github.com/bizflow/backend/internal/domain/draft"
	"github.com/bizflow/backend/internal/domain/inventory"
	"github.com/bizflow/backend/internal/domain/order"
	"github.com/bizflow/backend/internal/domain/partner"
)

// GormInventoryTransactionScope implements the inventory TransactionScope
// using GORM transactions. The movement ledger and the inventory row always
// change inside the same transaction.
type GormInventoryTransactionScope struct {
	db *gorm.DB
}

// NewGormInventoryTransactionScope creates a new GormInventoryTransactionScope
func NewGormInventoryTransactionScope(db *gorm.DB) *GormInventoryTransactionScope {
	return &GormInventoryTransactionScope{db: db}
}

// Execute runs the given function within a database transaction. A returned
// error rolls the transaction back; nil commits it.
func (s *GormInventoryTransactionScope) Execute(ctx context.Context, fn func(repos appinv.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormInventoryRepositories{tx: tx})
	})
}

// gormInventoryRepositories hands out repositories bound to the transaction
type gormInventoryRepositories struct {
	tx *gorm.DB
}

func (r *gormInventoryRepositories) Inventory() inventory.InventoryRepository {
	return NewGormInventoryRepository(r.tx)
}

func (r *gormInventoryRepositories) Movements() inventory.StockMovementRepository {
	return NewGormStockMovementRepository(r.tx)
}

func (r *gormInventoryRepositories) Products() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// GormOrderTransactionScope implements the order TransactionScope using GORM
// transactions. Order creation touches orders, inventory, the movement ledger
// and debts atomically.
type GormOrderTransactionScope struct {
	db *gorm.DB
}

// NewGormOrderTransactionScope creates a new GormOrderTransactionScope
func NewGormOrderTransactionScope(db *gorm.DB) *GormOrderTransactionScope {
	return &GormOrderTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormOrderTransactionScope) Execute(ctx context.Context, fn func(repos apporder.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormOrderRepositories{tx: tx})
	})
}

// gormOrderRepositories hands out repositories bound to the transaction
type gormOrderRepositories struct {
	tx *gorm.DB
}

func (r *gormOrderRepositories) Orders() order.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

func (r *gormOrderRepositories) Customers() partner.CustomerRepository {
	return NewGormCustomerRepository(r.tx)
}

func (r *gormOrderRepositories) Products() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormOrderRepositories) Inventory() inventory.InventoryRepository {
	return NewGormInventoryRepository(r.tx)
}

func (r *gormOrderRepositories) Movements() inventory.StockMovementRepository {
	return NewGormStockMovementRepository(r.tx)
}

func (r *gormOrderRepositories) Debts() debt.DebtRepository {
	return NewGormDebtRepository(r.tx)
}

// GormDebtTransactionScope implements the debt TransactionScope using GORM
// transactions. A repayment and the linked order's paid amount commit together.
type GormDebtTransactionScope struct {
	db *gorm.DB
}

// NewGormDebtTransactionScope creates a new GormDebtTransactionScope
func NewGormDebtTransactionScope(db *gorm.DB) *GormDebtTransactionScope {
	return &GormDebtTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormDebtTransactionScope) Execute(ctx context.Context, fn func(repos appdebt.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormDebtRepositories{tx: tx})
	})
}

// gormDebtRepositories hands out repositories bound to the transaction
type gormDebtRepositories struct {
	tx *gorm.DB
}

func (r *gormDebtRepositories) Debts() debt.DebtRepository {
	return NewGormDebtRepository(r.tx)
}

func (r *gormDebtRepositories) Orders() order.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

// GormDraftTransactionScope implements the draft TransactionScope using GORM
// transactions. Confirming a draft creates the order and flips the draft
// status in one transaction.
type GormDraftTransactionScope struct {
	db *gorm.DB
}

// NewGormDraftTransactionScope creates a new GormDraftTransactionScope
func NewGormDraftTransactionScope(db *gorm.DB) *GormDraftTransactionScope {
	return &GormDraftTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormDraftTransactionScope) Execute(ctx context.Context, fn func(repos appdraft.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormDraftRepositories{gormOrderRepositories{tx: tx}})
	})
}

// gormDraftRepositories extends the order repositories with the draft
// repository bound to the same transaction
type gormDraftRepositories struct {
	gormOrderRepositories
}

func (r *gormDraftRepositories) Drafts() draft.DraftOrderRepository {
	return NewGormDraftOrderRepository(r.tx)
}

// Ensure the scopes implement their application ports
var (
	_ appinv.TransactionScope   = (*GormInventoryTransactionScope)(nil)
	_ apporder.TransactionScope = (*GormOrderTransactionScope)(nil)
	_ appdebt.TransactionScope  = (*GormDebtTransactionScope)(nil)
	_ appdraft.TransactionScope = (*GormDraftTransactionScope)(nil)

	_ appinv.TransactionalRepositories   = (*gormInventoryRepositories)(nil)
	_ apporder.TransactionalRepositories = (*gormOrderRepositories)(nil)
	_ appdebt.TransactionalRepositories  = (*gormDebtRepositories)(nil)
	_ appdraft.TransactionalRepositories = (*gormDraftRepositories)(nil)
)
