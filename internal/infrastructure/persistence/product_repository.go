package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bizflow/backend/internal/domain/catalog"
	"github.com/bizflow/backend/internal/domain/shared"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// FindByID finds a product by its ID within an owner account
func (r *GormProductRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindBestByName resolves a free-text name to the best matching active product.
// Prefix matches sort before substring matches, newer rows before older ones,
// and the first row wins.
func (r *GormProductRepository) FindBestByName(ctx context.Context, ownerID uuid.UUID, name string) (*catalog.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.ErrNotFound
	}

	var product catalog.Product
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND is_active = ? AND LOWER(name) LIKE LOWER(?)", ownerID, true, "%"+name+"%").
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN LOWER(name) LIKE LOWER(?) THEN 0 ELSE 1 END, created_at DESC",
			Vars:               []interface{}{name + "%"},
			WithoutParentheses: true,
		}}).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindAll finds products matching the filter and returns the total count
func (r *GormProductRepository) FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]catalog.Product, int64, error) {
	base := r.db.WithContext(ctx).Model(&catalog.Product{}).Where("owner_id = ?", ownerID)
	base = r.applyFilterWithoutPagination(base, filter)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []catalog.Product
	if err := r.applyPagination(base, filter).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *GormProductRepository) applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	orderBy := ValidateSortField(filter.OrderBy, ProductSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query
}

func (r *GormProductRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(sku) LIKE LOWER(?)", pattern, pattern)
	}

	// Listings hide inactive products unless the filter asks for them
	if _, ok := filter.Filters["include_inactive"]; !ok {
		query = query.Where("is_active = ?", true)
	}

	for key, value := range filter.Filters {
		switch key {
		case "is_active":
			query = query.Where("is_active = ?", value)
		case "unit":
			query = query.Where("unit = ?", value)
		}
	}
	return query
}

// Ensure GormProductRepository implements ProductRepository
var _ catalog.ProductRepository = (*GormProductRepository)(nil)
