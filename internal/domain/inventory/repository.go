package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/bizflow/backend/internal/domain/shared"
)

// InventoryRepository defines the persistence port for inventory rows
type InventoryRepository interface {
	Save(ctx context.Context, inv *Inventory) error
	FindByProduct(ctx context.Context, ownerID, productID uuid.UUID) (*Inventory, error)
	// FindByProductForUpdate loads the row with a write lock so concurrent
	// availability checks serialize. Only meaningful inside a transaction.
	FindByProductForUpdate(ctx context.Context, ownerID, productID uuid.UUID) (*Inventory, error)
	// GetOrCreate returns the product's inventory row, lazily creating a
	// zero-stock row on first touch.
	GetOrCreate(ctx context.Context, ownerID, productID uuid.UUID) (*Inventory, error)
	FindLowStock(ctx context.Context, ownerID uuid.UUID) ([]Inventory, error)
	FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Inventory, int64, error)
}

// StockMovementRepository defines the persistence port for the movement ledger.
// Movements are append-only; there is no update or delete.
type StockMovementRepository interface {
	Append(ctx context.Context, movement *StockMovement) error
	FindByProduct(ctx context.Context, ownerID, productID uuid.UUID, filter shared.Filter) ([]StockMovement, int64, error)
	FindByReference(ctx context.Context, ownerID uuid.UUID, refType ReferenceType, refID uuid.UUID) ([]StockMovement, error)
}
