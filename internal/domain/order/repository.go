package order

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bizflow/backend/internal/domain/shared"
)

// OrderRepository defines the persistence port for orders
type OrderRepository interface {
	Save(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Order, error)
	FindByCode(ctx context.Context, ownerID uuid.UUID, code string) (*Order, error)
	FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Order, int64, error)
	// GenerateOrderCode produces the next ORD-YYYYMMDD-NNNN code for the
	// owner's given day. Must be called inside the creating transaction;
	// the unique (owner_id, order_code) index backstops races.
	GenerateOrderCode(ctx context.Context, ownerID uuid.UUID, day time.Time) (string, error)
}
