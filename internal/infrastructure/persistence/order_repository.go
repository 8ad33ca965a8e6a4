package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bizflow/backend/internal/domain/order"
	"github.com/bizflow/backend/internal/domain/shared"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Save creates or updates an order together with its items
func (r *GormOrderRepository) Save(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(o).Error
}

// FindByID finds an order with its items by ID
func (r *GormOrderRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*order.Order, error) {
	var o order.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindByCode finds an order with its items by its human-readable code
func (r *GormOrderRepository) FindByCode(ctx context.Context, ownerID uuid.UUID, code string) (*order.Order, error) {
	var o order.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("owner_id = ? AND order_code = ?", ownerID, code).
		First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindAll finds orders matching the filter and returns the total count
func (r *GormOrderRepository) FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]order.Order, int64, error) {
	base := r.db.WithContext(ctx).Model(&order.Order{}).Where("owner_id = ?", ownerID)
	base = r.applyFilterWithoutPagination(base, filter)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := ValidateSortField(filter.OrderBy, OrderSortFields, "order_date")
	query := base.Preload("Items").Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var orders []order.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// GenerateOrderCode produces the next ORD-YYYYMMDD-NNNN code for the owner's
// given day. Must run inside the creating transaction; the unique
// (owner_id, order_code) index backstops races.
func (r *GormOrderRepository) GenerateOrderCode(ctx context.Context, ownerID uuid.UUID, day time.Time) (string, error) {
	prefix := "ORD-" + day.Format("20060102") + "-"

	var count int64
	if err := r.db.WithContext(ctx).Model(&order.Order{}).
		Where("owner_id = ? AND order_code LIKE ?", ownerID, prefix+"%").
		Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%04d", prefix, count+1), nil
}

func (r *GormOrderRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(order_code) LIKE LOWER(?) OR LOWER(customer_name) LIKE LOWER(?)", pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "customer_id":
			query = query.Where("customer_id = ?", value)
		case "payment_status":
			query = query.Where("payment_status = ?", value)
		case "payment_method":
			query = query.Where("payment_method = ?", value)
		case "type":
			query = query.Where("type = ?", value)
		case "date_from":
			query = query.Where("order_date >= ?", value)
		case "date_to":
			query = query.Where("order_date <= ?", value)
		}
	}
	return query
}

// Ensure GormOrderRepository implements OrderRepository
var _ order.OrderRepository = (*GormOrderRepository)(nil)
