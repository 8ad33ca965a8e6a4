package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bizflow/backend/internal/domain/draft"
	"github.com/bizflow/backend/internal/domain/shared"
)

// GormDraftOrderRepository implements DraftOrderRepository using GORM
type GormDraftOrderRepository struct {
	db *gorm.DB
}

// NewGormDraftOrderRepository creates a new GormDraftOrderRepository
func NewGormDraftOrderRepository(db *gorm.DB) *GormDraftOrderRepository {
	return &GormDraftOrderRepository{db: db}
}

// Save creates or updates a draft order
func (r *GormDraftOrderRepository) Save(ctx context.Context, d *draft.DraftOrder) error {
	return r.db.WithContext(ctx).Save(d).Error
}

// FindByID finds a draft order by its ID within an owner account
func (r *GormDraftOrderRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*draft.DraftOrder, error) {
	var d draft.DraftOrder
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

// FindByIDForUpdate loads the draft with SELECT ... FOR UPDATE so concurrent
// confirmations serialize. Only meaningful inside a transaction.
func (r *GormDraftOrderRepository) FindByIDForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*draft.DraftOrder, error) {
	var d draft.DraftOrder
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

// FindAll finds draft orders matching the filter and returns the total count
func (r *GormDraftOrderRepository) FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]draft.DraftOrder, int64, error) {
	base := r.db.WithContext(ctx).Model(&draft.DraftOrder{}).Where("owner_id = ?", ownerID)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where("LOWER(raw_text) LIKE LOWER(?) OR LOWER(draft_code) LIKE LOWER(?)", pattern, pattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "status":
			base = base.Where("status = ?", value)
		case "expired":
			if value == true {
				base = base.Where("expires_at <= ?", time.Now())
			}
		}
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := ValidateSortField(filter.OrderBy, DraftOrderSortFields, "created_at")
	query := base.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var drafts []draft.DraftOrder
	if err := query.Find(&drafts).Error; err != nil {
		return nil, 0, err
	}
	return drafts, total, nil
}

// GenerateDraftCode produces the next DRF-YYYYMMDD-NNNN code for the owner's
// given day. The unique (owner_id, draft_code) index backstops races.
func (r *GormDraftOrderRepository) GenerateDraftCode(ctx context.Context, ownerID uuid.UUID, day time.Time) (string, error) {
	prefix := "DRF-" + day.Format("20060102") + "-"

	var count int64
	if err := r.db.WithContext(ctx).Model(&draft.DraftOrder{}).
		Where("owner_id = ? AND draft_code LIKE ?", ownerID, prefix+"%").
		Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%04d", prefix, count+1), nil
}

// Ensure GormDraftOrderRepository implements DraftOrderRepository
var _ draft.DraftOrderRepository = (*GormDraftOrderRepository)(nil)
