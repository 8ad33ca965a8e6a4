package draft

import (
	"context"

	"github.com/google/uuid"

	"github.com/bizflow/backend/internal/domain/shared"
)

// DraftQueries serves draft read models. Reads persist lazy expiry: a
// pending draft past its deadline comes back EXPIRED and stays that way.
type DraftQueries struct {
	scope TransactionScope
}

// NewDraftQueries creates a new DraftQueries
func NewDraftQueries(scope TransactionScope) *DraftQueries {
	return &DraftQueries{scope: scope}
}

// GetByID returns one draft
func (q *DraftQueries) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*DraftResult, error) {
	var result *DraftResult
	err := q.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		d, err := repos.Drafts().FindByID(ctx, ownerID, id)
		if err != nil {
			return err
		}
		if d.MarkExpiredIfDue() {
			if err := repos.Drafts().Save(ctx, d); err != nil {
				return err
			}
		}
		result = NewDraftResult(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// List returns drafts newest first
func (q *DraftQueries) List(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (*shared.Paginated[DraftResult], error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}

	var result shared.Paginated[DraftResult]
	err := q.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		drafts, total, err := repos.Drafts().FindAll(ctx, ownerID, filter)
		if err != nil {
			return err
		}
		items := make([]DraftResult, 0, len(drafts))
		for i := range drafts {
			if drafts[i].MarkExpiredIfDue() {
				if err := repos.Drafts().Save(ctx, &drafts[i]); err != nil {
					return err
				}
			}
			items = append(items, *NewDraftResult(&drafts[i]))
		}
		result = shared.NewPaginated(items, total, filter.Page, filter.PageSize)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RejectDraft discards a pending draft, stamping the rejecting user
func (q *DraftQueries) RejectDraft(ctx context.Context, ownerID, id uuid.UUID, reason string, rejectedBy *uuid.UUID) (*DraftResult, error) {
	var result *DraftResult
	err := q.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		d, err := repos.Drafts().FindByIDForUpdate(ctx, ownerID, id)
		if err != nil {
			return err
		}
		if err := d.Reject(reason, rejectedBy); err != nil {
			return err
		}
		if err := repos.Drafts().Save(ctx, d); err != nil {
			return err
		}
		result = NewDraftResult(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
