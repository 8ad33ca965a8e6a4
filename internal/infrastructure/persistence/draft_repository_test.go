package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizflow/backend/internal/domain/draft"
	"github.com/bizflow/backend/internal/domain/shared"
)

func newTestDraft(t *testing.T, ownerID uuid.UUID, code string) *draft.DraftOrder {
	t.Helper()
	parsed := draft.ParsedOrder{
		CustomerName: "Anh Nam",
		Items: []draft.ParsedItem{
			{ProductName: "Xi Măng", Quantity: decimal.NewFromInt(10)},
		},
	}
	d, err := draft.NewDraftOrder(ownerID, code, "anh Nam lấy 10 bao xi măng", draft.SourceAIText, parsed, 0.9)
	require.NoError(t, err)
	return d
}

func TestGormDraftOrderRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormDraftOrderRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("round-trips a draft with its parsed payload", func(t *testing.T) {
		d := newTestDraft(t, ownerID, "DRF-20260829-0001")
		require.NoError(t, repo.Save(ctx, d))

		found, err := repo.FindByID(ctx, ownerID, d.ID)
		require.NoError(t, err)
		assert.Equal(t, "DRF-20260829-0001", found.DraftCode)
		assert.Equal(t, draft.StatusPending, found.Status)
		assert.Equal(t, "Anh Nam", found.Parsed.CustomerName)
		require.Len(t, found.Parsed.Items, 1)
		assert.True(t, found.Parsed.Items[0].Quantity.Equal(decimal.NewFromInt(10)))
	})

	t.Run("returns not found across owner boundaries", func(t *testing.T) {
		d := newTestDraft(t, ownerID, "DRF-20260829-0002")
		require.NoError(t, repo.Save(ctx, d))

		_, err := repo.FindByID(ctx, uuid.New(), d.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormDraftOrderRepository_GenerateDraftCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormDraftOrderRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()
	day := time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC)

	t.Run("starts at one for an empty day", func(t *testing.T) {
		code, err := repo.GenerateDraftCode(ctx, ownerID, day)
		require.NoError(t, err)
		assert.Equal(t, "DRF-20260829-0001", code)
	})

	t.Run("increments per existing draft of the day", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, newTestDraft(t, ownerID, "DRF-20260829-0001")))

		code, err := repo.GenerateDraftCode(ctx, ownerID, day)
		require.NoError(t, err)
		assert.Equal(t, "DRF-20260829-0002", code)
	})

	t.Run("counts per owner", func(t *testing.T) {
		code, err := repo.GenerateDraftCode(ctx, uuid.New(), day)
		require.NoError(t, err)
		assert.Equal(t, "DRF-20260829-0001", code)
	})
}

func TestGormDraftOrderRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormDraftOrderRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()

	pending := newTestDraft(t, ownerID, "DRF-20260829-0001")
	require.NoError(t, repo.Save(ctx, pending))

	rejected := newTestDraft(t, ownerID, "DRF-20260829-0002")
	require.NoError(t, rejected.Reject("khách đổi ý", nil))
	require.NoError(t, repo.Save(ctx, rejected))

	t.Run("filters by status", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters["status"] = draft.StatusPending

		drafts, total, err := repo.FindAll(ctx, ownerID, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, drafts, 1)
		assert.Equal(t, pending.ID, drafts[0].ID)
	})

	t.Run("searches the raw text", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Search = "xi măng"

		_, total, err := repo.FindAll(ctx, ownerID, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})
}
