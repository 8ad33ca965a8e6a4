package partner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizflow/backend/internal/domain/shared"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates active customer with zero credit", func(t *testing.T) {
		c, err := NewCustomer(uuid.New(), "Anh Tuấn", "0901234567")
		require.NoError(t, err)

		assert.True(t, c.IsActive)
		assert.True(t, c.CreditLimit.IsZero())
		assert.False(t, c.IsWalkIn())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewCustomer(uuid.New(), "  ", "")
		assert.Error(t, err)
	})

	t.Run("walk-in customer", func(t *testing.T) {
		c := NewWalkInCustomer(uuid.New())
		assert.Equal(t, WalkInCustomerName, c.Name)
		assert.True(t, c.IsWalkIn())
	})
}

func TestCustomer_CheckCredit(t *testing.T) {
	newCustomer := func(t *testing.T, limit int64) *Customer {
		c, err := NewCustomer(uuid.New(), "Chị Hoa", "")
		require.NoError(t, err)
		require.NoError(t, c.SetCreditLimit(decimal.NewFromInt(limit)))
		return c
	}

	t.Run("zero limit rejects any debt", func(t *testing.T) {
		c := newCustomer(t, 0)

		err := c.CheckCredit(decimal.Zero, decimal.NewFromInt(1))
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CREDIT_LIMIT_EXCEEDED", domainErr.Code)
	})

	t.Run("zero new debt always passes", func(t *testing.T) {
		c := newCustomer(t, 0)
		assert.NoError(t, c.CheckCredit(decimal.Zero, decimal.Zero))
	})

	t.Run("within limit passes", func(t *testing.T) {
		c := newCustomer(t, 1000000)
		assert.NoError(t, c.CheckCredit(decimal.NewFromInt(400000), decimal.NewFromInt(600000)))
	})

	t.Run("beyond limit fails with amounts in message", func(t *testing.T) {
		c := newCustomer(t, 1000000)

		err := c.CheckCredit(decimal.NewFromInt(400000), decimal.NewFromInt(600001))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1000000")
		assert.Contains(t, err.Error(), "400000")
		assert.Contains(t, err.Error(), "600001")
	})

	t.Run("negative limit is rejected", func(t *testing.T) {
		c := newCustomer(t, 0)
		assert.Error(t, c.SetCreditLimit(decimal.NewFromInt(-1)))
	})
}
