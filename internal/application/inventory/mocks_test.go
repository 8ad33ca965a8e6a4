package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/bizflow/backend/internal/domain/catalog"
	"github.com/bizflow/backend/internal/domain/inventory"
	"github.com/bizflow/backend/internal/domain/shared"
)

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
