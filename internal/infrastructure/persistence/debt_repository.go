package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bizflow/backend/internal/domain/debt"
	"github.com/bizflow/backend/internal/domain/shared"
)

// GormDebtRepository implements DebtRepository using GORM
type GormDebtRepository struct {
	db *gorm.DB
}

// NewGormDebtRepository creates a new GormDebtRepository
func NewGormDebtRepository(db *gorm.DB) *GormDebtRepository {
	return &GormDebtRepository{db: db}
}

// Save creates or updates a debt
func (r *GormDebtRepository) Save(ctx context.Context, d *debt.Debt) error {
	return r.db.WithContext(ctx).Save(d).Error
}

// FindByID finds a debt by its ID within an owner account
func (r *GormDebtRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*debt.Debt, error) {
	var d debt.Debt
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// FindByIDForUpdate loads the debt with SELECT ... FOR UPDATE so concurrent
// repayments serialize. Only meaningful inside a transaction.
func (r *GormDebtRepository) FindByIDForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*debt.Debt, error) {
	var d debt.Debt
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// FindByCustomer finds a customer's debts matching the filter
func (r *GormDebtRepository) FindByCustomer(ctx context.Context, ownerID, customerID uuid.UUID, filter shared.Filter) ([]debt.Debt, int64, error) {
	filtered := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  map[string]interface{}{"customer_id": customerID},
	}
	for k, v := range filter.Filters {
		filtered.Filters[k] = v
	}
	return r.FindAll(ctx, ownerID, filtered)
}

// FindByOrder finds the debt booked for an order
func (r *GormDebtRepository) FindByOrder(ctx context.Context, ownerID, orderID uuid.UUID) (*debt.Debt, error) {
	var d debt.Debt
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND order_id = ?", ownerID, orderID).
		First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// TotalOutstanding sums remaining amounts over the customer's unsettled debts
func (r *GormDebtRepository) TotalOutstanding(ctx context.Context, ownerID, customerID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := r.db.WithContext(ctx).Model(&debt.Debt{}).
		Where("owner_id = ? AND customer_id = ? AND status <> ?", ownerID, customerID, debt.StatusPaid).
		Select("COALESCE(SUM(original_amount - paid_amount), 0)").
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// FindAll finds debts matching the filter and returns the total count
func (r *GormDebtRepository) FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]debt.Debt, int64, error) {
	base := r.db.WithContext(ctx).Model(&debt.Debt{}).Where("owner_id = ?", ownerID)
	base = r.applyFilterWithoutPagination(base, filter)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := ValidateSortField(filter.OrderBy, DebtSortFields, "created_at")
	query := base.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var debts []debt.Debt
	if err := query.Find(&debts).Error; err != nil {
		return nil, 0, err
	}
	return debts, total, nil
}

func (r *GormDebtRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(notes) LIKE LOWER(?)", pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "customer_id":
			query = query.Where("customer_id = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "unsettled":
			if value == true {
				query = query.Where("status <> ?", debt.StatusPaid)
			}
		case "due_before":
			query = query.Where("due_date IS NOT NULL AND due_date <= ?", value)
		}
	}
	return query
}

// Ensure GormDebtRepository implements DebtRepository
var _ debt.DebtRepository = (*GormDebtRepository)(nil)
