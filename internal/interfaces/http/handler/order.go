package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	orderapp "github.com/bizflow/backend/internal/application/order"
)

// OrderHandler exposes order creation and lookup endpoints
type OrderHandler struct {
	BaseHandler
	createUC *orderapp.CreateOrderUseCase
	queries  *orderapp.OrderQueries
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(createUC *orderapp.CreateOrderUseCase, queries *orderapp.OrderQueries) *OrderHandler {
	return &OrderHandler{createUC: createUC, queries: queries}
}

// RegisterRoutes registers order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.GET("/:id", h.Get)
	}
}

// OrderItemRequest is one requested order line. Omitted unit and unit
// price fall back to the product's catalog values; discount_percent is
// only used when discount_amount is absent.
type OrderItemRequest struct {
	ProductID       uuid.UUID        `json:"product_id" binding:"required"`
	Quantity        decimal.Decimal  `json:"quantity" binding:"required"`
	Unit            string           `json:"unit"`
	UnitPrice       *decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal  `json:"discount_percent"`
	DiscountAmount  decimal.Decimal  `json:"discount_amount"`
}

// CreateOrderRequest is the payload for creating a confirmed order
type CreateOrderRequest struct {
	CustomerID     uuid.UUID          `json:"customer_id" binding:"required"`
	Items          []OrderItemRequest `json:"items" binding:"required,min=1"`
	PaymentMethod  string             `json:"payment_method"`
	PaidAmount     decimal.Decimal    `json:"paid_amount"`
	PayInFull      bool               `json:"pay_in_full"`
	IsDebt         bool               `json:"is_debt"`
	TaxRate        decimal.Decimal    `json:"tax_rate"`
	DiscountAmount decimal.Decimal    `json:"discount_amount"`
	DueDate        *time.Time         `json:"due_date"`
	Notes          string             `json:"notes"`
}

// Create handles POST /orders
func (h *OrderHandler) Create(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		h.Unauthorized(c, "Owner identification required")
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items := make([]orderapp.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, orderapp.OrderItemInput{
			ProductID:       it.ProductID,
			Quantity:        it.Quantity,
			Unit:            it.Unit,
			UnitPrice:       it.UnitPrice,
			DiscountPercent: it.DiscountPercent,
			DiscountAmount:  it.DiscountAmount,
		})
	}

	result, err := h.createUC.Execute(c.Request.Context(), orderapp.CreateOrderInput{
		OwnerID:        owner,
		CustomerID:     req.CustomerID,
		Items:          items,
		PaymentMethod:  orderapp.PaymentMethodFromString(req.PaymentMethod),
		PaidAmount:     req.PaidAmount,
		PayInFull:      req.PayInFull,
		IsDebt:         req.IsDebt,
		TaxRate:        req.TaxRate,
		DiscountAmount: req.DiscountAmount,
		DueDate:        req.DueDate,
		Notes:          req.Notes,
		ActorID:        actorID(c),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// Get handles GET /orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		h.Unauthorized(c, "Owner identification required")
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	result, err := h.queries.GetByID(c.Request.Context(), owner, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// List handles GET /orders
func (h *OrderHandler) List(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		h.Unauthorized(c, "Owner identification required")
		return
	}
	filter, err := listFilter(c)
	if err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}
	if v := c.Query("customer_id"); v != "" {
		if id, perr := uuid.Parse(v); perr == nil {
			filter.Filters["customer_id"] = id
		}
	}
	if v := c.Query("payment_status"); v != "" {
		filter.Filters["payment_status"] = v
	}

	page, err := h.queries.List(c.Request.Context(), owner, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}
