package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bizflow/backend/internal/domain/catalog"
	"github.com/bizflow/backend/internal/domain/debt"
	"github.com/bizflow/backend/internal/domain/draft"
	"github.com/bizflow/backend/internal/domain/inventory"
	"github.com/bizflow/backend/internal/domain/order"
	"github.com/bizflow/backend/internal/domain/partner"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
// Row-lock paths (FOR UPDATE) are not exercised here; SQLite has no
// row-level locking.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&catalog.Product{},
		&partner.Customer{},
		&inventory.Inventory{},
		&inventory.StockMovement{},
		&order.Order{},
		&order.OrderItem{},
		&debt.Debt{},
		&draft.DraftOrder{},
	)
	require.NoError(t, err)
	require.NoError(t, createCompositeIndexes(db))

	return db
}
