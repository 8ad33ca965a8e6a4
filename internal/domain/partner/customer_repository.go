package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/bizflow/backend/internal/domain/shared"
)

// CustomerRepository defines the persistence port for customers.
// All lookups are owner-scoped and exclude inactive customers unless
// the caller asks for them explicitly.
type CustomerRepository interface {
	Save(ctx context.Context, customer *Customer) error
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Customer, error)
	FindByPhone(ctx context.Context, ownerID uuid.UUID, phone string) (*Customer, error)
	// FindBestByName resolves a free-text name to the best matching active
	// customer: prefix matches first, then newest. Returns shared.ErrNotFound
	// when nothing matches.
	FindBestByName(ctx context.Context, ownerID uuid.UUID, name string) (*Customer, error)
	// GetOrCreateWalkIn returns the owner's anonymous cash customer,
	// creating it on first use.
	GetOrCreateWalkIn(ctx context.Context, ownerID uuid.UUID) (*Customer, error)
	FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Customer, int64, error)
}
