package draft

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/bizflow/backend/internal/domain/catalog"
	"github.com/bizflow/backend/internal/domain/debt"
	"github.com/bizflow/backend/internal/domain/draft"
	"github.com/bizflow/backend/internal/domain/inventory"
	"github.com/bizflow/backend/internal/domain/order"
	"github.com/bizflow/backend/internal/domain/partner"
	"github.com/bizflow/backend/internal/domain/shared"
)

// stubParser returns a canned parse result
type stubParser struct {
	result *ParseResult
	err    error
}

func (p *stubParser) ParseOrderText(_ context.Context, _ string) (*ParseResult, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.result, nil
}

// MockDraftRepository is a mock implementation of draft.DraftOrderRepository
type MockDraftRepository struct {
	mock.Mock
}

func (m *MockDraftRepository) Save(ctx context.Context, d *draft.DraftOrder) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDraftRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*draft.DraftOrder, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*draft.DraftOrder), args.Error(1)
}

func (m *MockDraftRepository) FindByIDForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*draft.DraftOrder, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*draft.DraftOrder), args.Error(1)
}

func (m *MockDraftRepository) FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]draft.DraftOrder, int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]draft.DraftOrder), args.Get(1).(int64), args.Error(2)
}

func (m *MockDraftRepository) GenerateDraftCode(ctx context.Context, ownerID uuid.UUID, day time.Time) (string, error) {
	args := m.Called(ctx, ownerID, day)
	return args.String(0), args.Error(1)
}

// MockOrderRepository is a mock implementation of order.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByCode(ctx context.Context, ownerID uuid.UUID, code string) (*order.Order, error) {
	args := m.Called(ctx, ownerID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]order.Order, int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]order.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) GenerateOrderCode(ctx context.Context, ownerID uuid.UUID, day time.Time) (string, error) {
	args := m.Called(ctx, ownerID, day)
	return args.String(0), args.Error(1)
}

// MockCustomerRepository is a mock implementation of partner.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Save(ctx context.Context, c *partner.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByPhone(ctx context.Context, ownerID uuid.UUID, phone string) (*partner.Customer, error) {
	args := m.Called(ctx, ownerID, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindBestByName(ctx context.Context, ownerID uuid.UUID, name string) (*partner.Customer, error) {
	args := m.Called(ctx, ownerID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetOrCreateWalkIn(ctx context.Context, ownerID uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]partner.Customer, int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]partner.Customer), args.Get(1).(int64), args.Error(2)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Save(ctx context.Context, p *catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBestByName(ctx context.Context, ownerID uuid.UUID, name string) (*catalog.Product, error) {
	args := m.Called(ctx, ownerID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]catalog.Product, int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]catalog.Product), args.Get(1).(int64), args.Error(2)
}

// MockInventoryRepository is a mock implementation of inventory.InventoryRepository
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) Save(ctx context.Context, inv *inventory.Inventory) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInventoryRepository) FindByProduct(ctx context.Context, ownerID, productID uuid.UUID) (*inventory.Inventory, error) {
	args := m.Called(ctx, ownerID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) FindByProductForUpdate(ctx context.Context, ownerID, productID uuid.UUID) (*inventory.Inventory, error) {
	args := m.Called(ctx, ownerID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) GetOrCreate(ctx context.Context, ownerID, productID uuid.UUID) (*inventory.Inventory, error) {
	args := m.Called(ctx, ownerID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) FindLowStock(ctx context.Context, ownerID uuid.UUID) ([]inventory.Inventory, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]inventory.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]inventory.Inventory, int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]inventory.Inventory), args.Get(1).(int64), args.Error(2)
}

// MockMovementRepository is a mock implementation of inventory.StockMovementRepository
type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) Append(ctx context.Context, movement *inventory.StockMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) FindByProduct(ctx context.Context, ownerID, productID uuid.UUID, filter shared.Filter) ([]inventory.StockMovement, int64, error) {
	args := m.Called(ctx, ownerID, productID, filter)
	return args.Get(0).([]inventory.StockMovement), args.Get(1).(int64), args.Error(2)
}

func (m *MockMovementRepository) FindByReference(ctx context.Context, ownerID uuid.UUID, refType inventory.ReferenceType, refID uuid.UUID) ([]inventory.StockMovement, error) {
	args := m.Called(ctx, ownerID, refType, refID)
	return args.Get(0).([]inventory.StockMovement), args.Error(1)
}

// MockDebtRepository is a mock implementation of debt.DebtRepository
type MockDebtRepository struct {
	mock.Mock
}

func (m *MockDebtRepository) Save(ctx context.Context, d *debt.Debt) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDebtRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*debt.Debt, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*debt.Debt), args.Error(1)
}

func (m *MockDebtRepository) FindByIDForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*debt.Debt, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*debt.Debt), args.Error(1)
}

func (m *MockDebtRepository) FindByCustomer(ctx context.Context, ownerID, customerID uuid.UUID, filter shared.Filter) ([]debt.Debt, int64, error) {
	args := m.Called(ctx, ownerID, customerID, filter)
	return args.Get(0).([]debt.Debt), args.Get(1).(int64), args.Error(2)
}

func (m *MockDebtRepository) FindByOrder(ctx context.Context, ownerID, orderID uuid.UUID) (*debt.Debt, error) {
	args := m.Called(ctx, ownerID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*debt.Debt), args.Error(1)
}

func (m *MockDebtRepository) TotalOutstanding(ctx context.Context, ownerID, customerID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, ownerID, customerID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockDebtRepository) FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]debt.Debt, int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]debt.Debt), args.Get(1).(int64), args.Error(2)
}
