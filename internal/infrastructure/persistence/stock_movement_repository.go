package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bizflow/backend/internal/domain/inventory"
	"github.com/bizflow/backend/internal/domain/shared"
)

// GormStockMovementRepository implements StockMovementRepository using GORM.
// The ledger is append-only; this repository never updates or deletes rows.
type GormStockMovementRepository struct {
	db *gorm.DB
}

// NewGormStockMovementRepository creates a new GormStockMovementRepository
func NewGormStockMovementRepository(db *gorm.DB) *GormStockMovementRepository {
	return &GormStockMovementRepository{db: db}
}

// Append inserts a new ledger entry
func (r *GormStockMovementRepository) Append(ctx context.Context, movement *inventory.StockMovement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

// FindByProduct finds a product's movements matching the filter, newest first
// by default, and returns the total count
func (r *GormStockMovementRepository) FindByProduct(ctx context.Context, ownerID, productID uuid.UUID, filter shared.Filter) ([]inventory.StockMovement, int64, error) {
	base := r.db.WithContext(ctx).Model(&inventory.StockMovement{}).
		Where("owner_id = ? AND product_id = ?", ownerID, productID)

	for key, value := range filter.Filters {
		switch key {
		case "type":
			base = base.Where("type = ?", value)
		case "reference_type":
			base = base.Where("reference_type = ?", value)
		case "date_from":
			base = base.Where("created_at >= ?", value)
		case "date_to":
			base = base.Where("created_at <= ?", value)
		}
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := ValidateSortField(filter.OrderBy, StockMovementSortFields, "created_at")
	query := base.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var movements []inventory.StockMovement
	if err := query.Find(&movements).Error; err != nil {
		return nil, 0, err
	}
	return movements, total, nil
}

// FindByReference finds the movements caused by one source document
func (r *GormStockMovementRepository) FindByReference(ctx context.Context, ownerID uuid.UUID, refType inventory.ReferenceType, refID uuid.UUID) ([]inventory.StockMovement, error) {
	var movements []inventory.StockMovement
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND reference_type = ? AND reference_id = ?", ownerID, refType, refID).
		Order("created_at ASC").
		Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// Ensure GormStockMovementRepository implements StockMovementRepository
var _ inventory.StockMovementRepository = (*GormStockMovementRepository)(nil)
