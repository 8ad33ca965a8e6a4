package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizflow/backend/internal/domain/debt"
	"github.com/bizflow/backend/internal/domain/shared"
)

func newTestDebt(t *testing.T, ownerID, customerID uuid.UUID, amount int64, orderID *uuid.UUID) *debt.Debt {
	t.Helper()
	d, err := debt.NewDebt(ownerID, customerID, decimal.NewFromInt(amount), orderID, nil, "")
	require.NoError(t, err)
	return d
}

func TestGormDebtRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormDebtRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()
	customerID := uuid.New()

	t.Run("round-trips a debt with its payment log", func(t *testing.T) {
		d := newTestDebt(t, ownerID, customerID, 500000, nil)
		require.NoError(t, d.ApplyPayment(decimal.NewFromInt(200000), "CASH", "trả trước"))
		require.NoError(t, repo.Save(ctx, d))

		found, err := repo.FindByID(ctx, ownerID, d.ID)
		require.NoError(t, err)
		assert.Equal(t, debt.StatusPartial, found.Status)
		assert.True(t, found.RemainingAmount().Equal(decimal.NewFromInt(300000)))
		require.Len(t, found.PaymentLog, 1)
		assert.Equal(t, "trả trước", found.PaymentLog[0].Note)
	})

	t.Run("finds the debt booked for an order", func(t *testing.T) {
		orderID := uuid.New()
		d := newTestDebt(t, ownerID, customerID, 120000, &orderID)
		require.NoError(t, repo.Save(ctx, d))

		found, err := repo.FindByOrder(ctx, ownerID, orderID)
		require.NoError(t, err)
		assert.Equal(t, d.ID, found.ID)
	})

	t.Run("returns not found for an order without debt", func(t *testing.T) {
		_, err := repo.FindByOrder(ctx, ownerID, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormDebtRepository_TotalOutstanding(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormDebtRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()
	customerID := uuid.New()

	t.Run("returns zero for a customer without debts", func(t *testing.T) {
		total, err := repo.TotalOutstanding(ctx, ownerID, customerID)
		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})

	t.Run("sums remaining amounts of unsettled debts only", func(t *testing.T) {
		open := newTestDebt(t, ownerID, customerID, 500000, nil)
		require.NoError(t, repo.Save(ctx, open))

		partial := newTestDebt(t, ownerID, customerID, 300000, nil)
		require.NoError(t, partial.ApplyPayment(decimal.NewFromInt(100000), "CASH", ""))
		require.NoError(t, repo.Save(ctx, partial))

		settled := newTestDebt(t, ownerID, customerID, 999000, nil)
		require.NoError(t, settled.ApplyPayment(decimal.NewFromInt(999000), "CASH", ""))
		require.NoError(t, repo.Save(ctx, settled))

		otherCustomer := newTestDebt(t, ownerID, uuid.New(), 777000, nil)
		require.NoError(t, repo.Save(ctx, otherCustomer))

		total, err := repo.TotalOutstanding(ctx, ownerID, customerID)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(700000)), "got %s", total)
	})
}

func TestGormDebtRepository_FindByCustomer(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormDebtRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()
	customerID := uuid.New()

	mine := newTestDebt(t, ownerID, customerID, 100000, nil)
	require.NoError(t, repo.Save(ctx, mine))
	require.NoError(t, repo.Save(ctx, newTestDebt(t, ownerID, uuid.New(), 200000, nil)))

	debts, total, err := repo.FindByCustomer(ctx, ownerID, customerID, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, debts, 1)
	assert.Equal(t, mine.ID, debts[0].ID)
}

func TestGormDebtRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormDebtRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()
	customerID := uuid.New()

	dueDate := time.Now().Add(-48 * time.Hour)
	overdue, err := debt.NewDebt(ownerID, customerID, decimal.NewFromInt(400000), nil, &dueDate, "quá hạn")
	require.NoError(t, err)
	overdue.RefreshStatus()
	require.NoError(t, repo.Save(ctx, overdue))

	settled := newTestDebt(t, ownerID, customerID, 150000, nil)
	require.NoError(t, settled.ApplyPayment(decimal.NewFromInt(150000), "CASH", ""))
	require.NoError(t, repo.Save(ctx, settled))

	t.Run("filters unsettled debts", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters["unsettled"] = true

		debts, total, err := repo.FindAll(ctx, ownerID, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, debts, 1)
		assert.Equal(t, overdue.ID, debts[0].ID)
	})

	t.Run("filters by status", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters["status"] = debt.StatusOverdue

		debts, total, err := repo.FindAll(ctx, ownerID, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, debts, 1)
		assert.Equal(t, debt.StatusOverdue, debts[0].Status)
	})
}
