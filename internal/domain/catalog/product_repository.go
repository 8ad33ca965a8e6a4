package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/bizflow/backend/internal/domain/shared"
)

// ProductRepository defines the persistence port for products.
// All lookups are owner-scoped; list operations return active products only
// unless the filter explicitly includes inactive ones.
type ProductRepository interface {
	Save(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Product, error)
	// FindBestByName resolves a free-text product name to the best matching
	// active product. Candidates are ordered deterministically (prefix match
	// first, then newest); the first row wins. Returns shared.ErrNotFound
	// when nothing matches.
	FindBestByName(ctx context.Context, ownerID uuid.UUID, name string) (*Product, error)
	FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Product, int64, error)
}
