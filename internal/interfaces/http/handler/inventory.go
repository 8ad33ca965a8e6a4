package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	inventoryapp "github.com/bizflow/backend/internal/application/inventory"
)

// InventoryHandler exposes stock position and movement endpoints
type InventoryHandler struct {
	BaseHandler
	inventory *inventoryapp.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventory *inventoryapp.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

// RegisterRoutes registers inventory routes
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	inv := rg.Group("/inventory")
	{
		inv.GET("/low-stock", h.ListLowStock)
		inv.GET("/:product_id", h.GetStock)
		inv.GET("/:product_id/movements", h.ListMovements)
		inv.POST("/:product_id/adjust", h.Adjust)
		inv.POST("/:product_id/receive", h.Receive)
		inv.POST("/:product_id/return", h.Return)
	}
}

// AdjustStockRequest is a manual stock correction. Quantity is signed.
// An empty unit falls back to the product's base unit.
type AdjustStockRequest struct {
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	Unit     string          `json:"unit"`
	Note     string          `json:"note"`
}

// ReceiveStockRequest books goods received from a purchase
type ReceiveStockRequest struct {
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	Unit        string          `json:"unit"`
	ReferenceID *uuid.UUID      `json:"reference_id"`
	Note        string          `json:"note"`
}

// GetStock handles GET /inventory/:product_id
func (h *InventoryHandler) GetStock(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		h.Unauthorized(c, "Owner identification required")
		return
	}
	productID, ok := pathUUID(c, "product_id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	result, err := h.inventory.GetStock(c.Request.Context(), owner, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Adjust handles POST /inventory/:product_id/adjust
func (h *InventoryHandler) Adjust(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		h.Unauthorized(c, "Owner identification required")
		return
	}
	productID, ok := pathUUID(c, "product_id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.inventory.AdjustStock(c.Request.Context(), inventoryapp.AdjustStockInput{
		OwnerID:   owner,
		ProductID: productID,
		Quantity:  req.Quantity,
		Unit:      req.Unit,
		Note:      req.Note,
		ActorID:   actorID(c),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Receive handles POST /inventory/:product_id/receive
func (h *InventoryHandler) Receive(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		h.Unauthorized(c, "Owner identification required")
		return
	}
	productID, ok := pathUUID(c, "product_id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req ReceiveStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.inventory.ReceiveStock(c.Request.Context(), inventoryapp.ReceiveStockInput{
		OwnerID:     owner,
		ProductID:   productID,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		ReferenceID: req.ReferenceID,
		Note:        req.Note,
		ActorID:     actorID(c),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ReturnStockRequest books a customer return back into stock
type ReturnStockRequest struct {
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	OrderID  *uuid.UUID      `json:"order_id"`
	Note     string          `json:"note"`
}

// Return handles POST /inventory/:product_id/return
func (h *InventoryHandler) Return(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		h.Unauthorized(c, "Owner identification required")
		return
	}
	productID, ok := pathUUID(c, "product_id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req ReturnStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.inventory.ReturnStock(c.Request.Context(), owner, productID, req.Quantity, req.OrderID, req.Note)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ListMovements handles GET /inventory/:product_id/movements
func (h *InventoryHandler) ListMovements(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		h.Unauthorized(c, "Owner identification required")
		return
	}
	productID, ok := pathUUID(c, "product_id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	filter, err := listFilter(c)
	if err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	page, err := h.inventory.ListMovements(c.Request.Context(), owner, productID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// ListLowStock handles GET /inventory/low-stock
func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		h.Unauthorized(c, "Owner identification required")
		return
	}

	items, err := h.inventory.ListLowStock(c.Request.Context(), owner)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}
