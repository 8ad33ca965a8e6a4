package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizflow/backend/internal/domain/inventory"
	"github.com/bizflow/backend/internal/domain/shared"
)

// InventoryService is the single entry point for stock changes. Every
// mutation appends a ledger entry and folds it into the inventory row inside
// one transaction, with the row locked before the availability check.
type InventoryService struct {
	scope          TransactionScope
	eventPublisher shared.EventPublisher
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(scope TransactionScope) *InventoryService {
	return &InventoryService{scope: scope}
}

// SetEventPublisher sets the publisher for domain events
func (s *InventoryService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// GetStock returns the stock position for a product, lazily creating a
// zero-stock row on first read.
func (s *InventoryService) GetStock(ctx context.Context, ownerID, productID uuid.UUID) (*StockInfo, error) {
	var info StockInfo
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.Products().FindByID(ctx, ownerID, productID)
		if err != nil {
			return err
		}
		inv, err := repos.Inventory().GetOrCreate(ctx, ownerID, productID)
		if err != nil {
			return err
		}
		info = NewStockInfo(inv, product.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// AdjustStock books a signed manual correction
func (s *InventoryService) AdjustStock(ctx context.Context, input AdjustStockInput) (*StockInfo, error) {
	return s.applyMovement(ctx, movementRequest{
		ownerID:   input.OwnerID,
		productID: input.ProductID,
		movType:   inventory.MovementAdjustment,
		quantity:  input.Quantity,
		unit:      input.Unit,
		refType:   inventory.ReferenceAdjustment,
		note:      input.Note,
		actorID:   input.ActorID,
	})
}

// ReceiveStock books goods received from a purchase as an IMPORT movement
func (s *InventoryService) ReceiveStock(ctx context.Context, input ReceiveStockInput) (*StockInfo, error) {
	return s.applyMovement(ctx, movementRequest{
		ownerID:   input.OwnerID,
		productID: input.ProductID,
		movType:   inventory.MovementImport,
		quantity:  input.Quantity,
		unit:      input.Unit,
		refType:   inventory.ReferencePurchase,
		refID:     input.ReferenceID,
		note:      input.Note,
		actorID:   input.ActorID,
	})
}

// ReturnStock books a customer return as a RETURN movement
func (s *InventoryService) ReturnStock(ctx context.Context, ownerID, productID uuid.UUID, quantity decimal.Decimal, orderID *uuid.UUID, note string) (*StockInfo, error) {
	return s.applyMovement(ctx, movementRequest{
		ownerID:   ownerID,
		productID: productID,
		movType:   inventory.MovementReturn,
		quantity:  quantity,
		refType:   inventory.ReferenceOrder,
		refID:     orderID,
		note:      note,
	})
}

// ReserveStock holds stock for an order without moving it
func (s *InventoryService) ReserveStock(ctx context.Context, input ReserveStockInput) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.Products().FindByID(ctx, input.OwnerID, input.ProductID)
		if err != nil {
			return err
		}
		if _, err := repos.Inventory().GetOrCreate(ctx, input.OwnerID, input.ProductID); err != nil {
			return err
		}
		inv, err := repos.Inventory().FindByProductForUpdate(ctx, input.OwnerID, input.ProductID)
		if err != nil {
			return err
		}
		if err := inv.Reserve(input.Quantity, product.Name); err != nil {
			return err
		}
		return repos.Inventory().Save(ctx, inv)
	})
}

// ReleaseStock frees a previous reservation
func (s *InventoryService) ReleaseStock(ctx context.Context, input ReserveStockInput) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		inv, err := repos.Inventory().FindByProductForUpdate(ctx, input.OwnerID, input.ProductID)
		if err != nil {
			return err
		}
		if err := inv.Release(input.Quantity); err != nil {
			return err
		}
		return repos.Inventory().Save(ctx, inv)
	})
}

// ListMovements returns the ledger for a product, newest first
func (s *InventoryService) ListMovements(ctx context.Context, ownerID, productID uuid.UUID, filter shared.Filter) (*shared.Paginated[MovementInfo], error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}

	var result shared.Paginated[MovementInfo]
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		movements, total, err := repos.Movements().FindByProduct(ctx, ownerID, productID, filter)
		if err != nil {
			return err
		}
		infos := make([]MovementInfo, 0, len(movements))
		for i := range movements {
			infos = append(infos, NewMovementInfo(&movements[i]))
		}
		result = shared.NewPaginated(infos, total, filter.Page, filter.PageSize)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListLowStock returns stock positions at or below their threshold
func (s *InventoryService) ListLowStock(ctx context.Context, ownerID uuid.UUID) ([]StockInfo, error) {
	var infos []StockInfo
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		rows, err := repos.Inventory().FindLowStock(ctx, ownerID)
		if err != nil {
			return err
		}
		infos = make([]StockInfo, 0, len(rows))
		for i := range rows {
			name := ""
			if product, err := repos.Products().FindByID(ctx, ownerID, rows[i].ProductID); err == nil {
				name = product.Name
			}
			infos = append(infos, NewStockInfo(&rows[i], name))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return infos, nil
}

type movementRequest struct {
	ownerID   uuid.UUID
	productID uuid.UUID
	movType   inventory.MovementType
	quantity  decimal.Decimal
	unit      string
	refType   inventory.ReferenceType
	refID     *uuid.UUID
	note      string
	actorID   *uuid.UUID
}

// applyMovement resolves the product, fills the unit default and books the
// movement through ApplyMovement inside one transaction.
func (s *InventoryService) applyMovement(ctx context.Context, req movementRequest) (*StockInfo, error) {
	var (
		info   StockInfo
		events []shared.DomainEvent
	)
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.Products().FindByID(ctx, req.ownerID, req.productID)
		if err != nil {
			return err
		}
		if !product.IsActive {
			return shared.ErrInactiveEntity
		}

		// Unspecified unit falls back to the product's base unit
		unit := req.unit
		if unit == "" {
			unit = product.Unit
		}

		inv, movementEvents, err := ApplyMovement(ctx, repos, MovementParams{
			OwnerID:     req.ownerID,
			ProductID:   req.productID,
			ProductName: product.Name,
			Unit:        unit,
			Type:        req.movType,
			Quantity:    req.quantity,
			RefType:     req.refType,
			RefID:       req.refID,
			Note:        req.note,
			ActorID:     req.actorID,
		})
		if err != nil {
			return err
		}

		events = movementEvents
		info = NewStockInfo(inv, product.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, events)
	return &info, nil
}

// publishEvents publishes after commit, best effort
func (s *InventoryService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
}
