package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizflow/backend/internal/domain/inventory"
	"github.com/bizflow/backend/internal/domain/shared"
)

// MovementStore is the slice of a transaction's repositories that stock
// writes need. Both the inventory scope and the order scope satisfy it, so
// order creation and manual stock operations share one write path.
type MovementStore interface {
	Inventory() inventory.InventoryRepository
	Movements() inventory.StockMovementRepository
}

// MovementParams describes one stock movement to book. ProductName and Unit
// are snapshots carried onto the ledger entry and into error messages.
type MovementParams struct {
	OwnerID     uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Unit        string
	Type        inventory.MovementType
	Quantity    decimal.Decimal
	RefType     inventory.ReferenceType
	RefID       *uuid.UUID
	Note        string
	ActorID     *uuid.UUID
}

// ApplyMovement is the single write path for on-hand stock: lock the row,
// validate against it, append the ledger entry, fold it in, save. It must
// run inside the caller's transaction; returned events are published by the
// caller after that transaction commits.
func ApplyMovement(ctx context.Context, store MovementStore, p MovementParams) (*inventory.Inventory, []shared.DomainEvent, error) {
	if _, err := store.Inventory().GetOrCreate(ctx, p.OwnerID, p.ProductID); err != nil {
		return nil, nil, err
	}
	inv, err := store.Inventory().FindByProductForUpdate(ctx, p.OwnerID, p.ProductID)
	if err != nil {
		return nil, nil, err
	}

	movement, err := inventory.NewStockMovement(p.OwnerID, p.ProductID, p.Type, p.Quantity, p.Unit, p.RefType, p.RefID, p.Note)
	if err != nil {
		return nil, nil, err
	}
	movement.CreatedBy = p.ActorID

	if err := inv.Apply(movement, p.ProductName); err != nil {
		return nil, nil, err
	}
	if err := store.Movements().Append(ctx, movement); err != nil {
		return nil, nil, err
	}
	if err := store.Inventory().Save(ctx, inv); err != nil {
		return nil, nil, err
	}

	inv.AddDomainEvent(inventory.NewStockMovedEvent(inv, movement))
	events := inv.GetDomainEvents()
	inv.ClearDomainEvents()
	return inv, events, nil
}

// OrderDeduction is one order line to deduct from stock
type OrderDeduction struct {
	OwnerID     uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Unit        string
	Quantity    decimal.Decimal
	OrderID     uuid.UUID
	OrderCode   string
	ActorID     *uuid.UUID
}

// DeductForOrder books the sale of one order line as an EXPORT movement
// referencing the order. It is the only path that reduces stock for a
// completed sale; the row lock inside ApplyMovement keeps concurrent sales
// of the same product from overselling.
func DeductForOrder(ctx context.Context, store MovementStore, d OrderDeduction) (*inventory.Inventory, []shared.DomainEvent, error) {
	orderID := d.OrderID
	return ApplyMovement(ctx, store, MovementParams{
		OwnerID:     d.OwnerID,
		ProductID:   d.ProductID,
		ProductName: d.ProductName,
		Unit:        d.Unit,
		Type:        inventory.MovementExport,
		Quantity:    d.Quantity,
		RefType:     inventory.ReferenceOrder,
		RefID:       &orderID,
		Note:        "Bán hàng " + d.OrderCode,
		ActorID:     d.ActorID,
	})
}
