package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bizflow/backend/internal/domain/inventory"
	"github.com/bizflow/backend/internal/domain/shared"
)

// GormInventoryRepository implements InventoryRepository using GORM
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GormInventoryRepository
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// Save creates or updates an inventory row
func (r *GormInventoryRepository) Save(ctx context.Context, inv *inventory.Inventory) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

// FindByProduct finds the inventory row for a product
func (r *GormInventoryRepository) FindByProduct(ctx context.Context, ownerID, productID uuid.UUID) (*inventory.Inventory, error) {
	var inv inventory.Inventory
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND product_id = ?", ownerID, productID).
		First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// FindByProductForUpdate loads the row with SELECT ... FOR UPDATE so concurrent
// availability checks serialize. Only meaningful inside a transaction.
func (r *GormInventoryRepository) FindByProductForUpdate(ctx context.Context, ownerID, productID uuid.UUID) (*inventory.Inventory, error) {
	var inv inventory.Inventory
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("owner_id = ? AND product_id = ?", ownerID, productID).
		First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// GetOrCreate returns the product's inventory row, lazily creating a zero-stock
// row on first touch. The unique (owner_id, product_id) index resolves creation
// races; losers re-read the winner's row.
func (r *GormInventoryRepository) GetOrCreate(ctx context.Context, ownerID, productID uuid.UUID) (*inventory.Inventory, error) {
	inv, err := r.FindByProduct(ctx, ownerID, productID)
	if err == nil {
		return inv, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	fresh := inventory.NewInventory(ownerID, productID)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}, {Name: "product_id"}},
			DoNothing: true,
		}).
		Create(fresh).Error; err != nil {
		return nil, err
	}
	return r.FindByProduct(ctx, ownerID, productID)
}

// FindLowStock finds all inventory rows at or below their low-stock threshold
func (r *GormInventoryRepository) FindLowStock(ctx context.Context, ownerID uuid.UUID) ([]inventory.Inventory, error) {
	var rows []inventory.Inventory
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND quantity - reserved_quantity <= low_stock_threshold", ownerID).
		Order("quantity - reserved_quantity ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindAll finds inventory rows matching the filter and returns the total count
func (r *GormInventoryRepository) FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]inventory.Inventory, int64, error) {
	base := r.db.WithContext(ctx).Model(&inventory.Inventory{}).Where("owner_id = ?", ownerID)

	for key, value := range filter.Filters {
		switch key {
		case "product_id":
			base = base.Where("product_id = ?", value)
		case "low_stock":
			if value == true {
				base = base.Where("quantity - reserved_quantity <= low_stock_threshold")
			}
		}
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := ValidateSortField(filter.OrderBy, InventorySortFields, "updated_at")
	query := base.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var rows []inventory.Inventory
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Ensure GormInventoryRepository implements InventoryRepository
var _ inventory.InventoryRepository = (*GormInventoryRepository)(nil)
