package debt

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/bizflow/backend/internal/domain/debt"
	"github.com/bizflow/backend/internal/domain/order"
	"github.com/bizflow/backend/internal/domain/shared"
)

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
