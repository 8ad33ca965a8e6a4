package draft

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bizflow/backend/internal/domain/shared"
)

// DraftOrderRepository defines the persistence port for draft orders
type DraftOrderRepository interface {
	Save(ctx context.Context, d *DraftOrder) error
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*DraftOrder, error)
	// FindByIDForUpdate loads the draft with a write lock so concurrent
	// confirmations serialize. Only meaningful inside a transaction.
	FindByIDForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*DraftOrder, error)
	FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]DraftOrder, int64, error)
	// GenerateDraftCode produces the next DRF-YYYYMMDD-NNNN code for the
	// owner's given day.
	GenerateDraftCode(ctx context.Context, ownerID uuid.UUID, day time.Time) (string, error)
}
