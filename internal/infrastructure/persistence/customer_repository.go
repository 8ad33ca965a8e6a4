package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bizflow/backend/internal/domain/partner"
	"github.com/bizflow/backend/internal/domain/shared"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Save creates or updates a customer
func (r *GormCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

// FindByID finds a customer by its ID within an owner account
func (r *GormCustomerRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*partner.Customer, error) {
	var customer partner.Customer
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// FindByPhone finds an active customer by exact phone number
func (r *GormCustomerRepository) FindByPhone(ctx context.Context, ownerID uuid.UUID, phone string) (*partner.Customer, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, shared.ErrNotFound
	}
	var customer partner.Customer
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND phone = ? AND is_active = ?", ownerID, phone, true).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// FindBestByName resolves a free-text name to the best matching active customer.
// Prefix matches sort before substring matches, newer rows before older ones,
// and the first row wins. The walk-in customer is never matched by name search.
func (r *GormCustomerRepository) FindBestByName(ctx context.Context, ownerID uuid.UUID, name string) (*partner.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.ErrNotFound
	}

	var customer partner.Customer
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND is_active = ? AND name <> ? AND LOWER(name) LIKE LOWER(?)",
			ownerID, true, partner.WalkInCustomerName, "%"+name+"%").
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN LOWER(name) LIKE LOWER(?) THEN 0 ELSE 1 END, created_at DESC",
			Vars:               []interface{}{name + "%"},
			WithoutParentheses: true,
		}}).
		First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// GetOrCreateWalkIn returns the owner's anonymous cash customer, creating it on
// first use
func (r *GormCustomerRepository) GetOrCreateWalkIn(ctx context.Context, ownerID uuid.UUID) (*partner.Customer, error) {
	var customer partner.Customer
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND name = ?", ownerID, partner.WalkInCustomerName).
		First(&customer).Error
	if err == nil {
		return &customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	walkIn := partner.NewWalkInCustomer(ownerID)
	if err := r.db.WithContext(ctx).Create(walkIn).Error; err != nil {
		return nil, err
	}
	return walkIn, nil
}

// FindAll finds customers matching the filter and returns the total count
func (r *GormCustomerRepository) FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]partner.Customer, int64, error) {
	base := r.db.WithContext(ctx).Model(&partner.Customer{}).Where("owner_id = ?", ownerID)
	base = r.applyFilterWithoutPagination(base, filter)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customers []partner.Customer
	if err := r.applyPagination(base, filter).Find(&customers).Error; err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

func (r *GormCustomerRepository) applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	orderBy := ValidateSortField(filter.OrderBy, CustomerSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query
}

func (r *GormCustomerRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR phone LIKE ?", pattern, pattern)
	}

	if _, ok := filter.Filters["include_inactive"]; !ok {
		query = query.Where("is_active = ?", true)
	}

	for key, value := range filter.Filters {
		switch key {
		case "is_active":
			query = query.Where("is_active = ?", value)
		case "has_credit_limit":
			if value == true {
				query = query.Where("credit_limit > 0")
			} else {
				query = query.Where("credit_limit = 0")
			}
		}
	}
	return query
}

// Ensure GormCustomerRepository implements CustomerRepository
var _ partner.CustomerRepository = (*GormCustomerRepository)(nil)
