package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	draftapp "github.com/bizflow/backend/internal/application/draft"
	"github.com/bizflow/backend/internal/domain/draft"
)

// DraftHandler exposes the AI order intake endpoints
type DraftHandler struct {
	BaseHandler
	createUC  *draftapp.CreateDraftOrderUseCase
	confirmUC *draftapp.ConfirmDraftOrderUseCase
	queries   *draftapp.DraftQueries
}

// NewDraftHandler creates a new draft order handler
func NewDraftHandler(
	createUC *draftapp.CreateDraftOrderUseCase,
	confirmUC *draftapp.ConfirmDraftOrderUseCase,
	queries *draftapp.DraftQueries,
) *DraftHandler {
	return &DraftHandler{createUC: createUC, confirmUC: confirmUC, queries: queries}
}

// RegisterRoutes registers draft order routes
func (h *DraftHandler) RegisterRoutes(rg *gin.RouterGroup) {
	drafts := rg.Group("/draft-orders")
	{
		drafts.POST("", h.Create)
		drafts.GET("", h.List)
		drafts.GET("/:id", h.Get)
		drafts.POST("/:id/confirm", h.Confirm)
		drafts.POST("/:id/reject", h.Reject)
	}
}

// CreateDraftRequest submits raw order text for AI parsing. Source
// distinguishes typed text, transcribed voice and manual entry; it
// defaults to AI_TEXT.
type CreateDraftRequest struct {
	Text   string `json:"text" binding:"required"`
	Source string `json:"source" binding:"omitempty,oneof=AI_TEXT AI_VOICE MANUAL"`
}

// DraftItemOverride replaces one parsed order line at confirmation
type DraftItemOverride struct {
	ProductName string          `json:"product_name"`
	ProductID   *uuid.UUID      `json:"product_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// ConfirmDraftRequest carries optional corrections applied before the
// draft becomes a real order. Omitted fields keep the parsed values.
type ConfirmDraftRequest struct {
	CustomerID     *uuid.UUID          `json:"customer_id"`
	CustomerName   *string             `json:"customer_name"`
	CustomerPhone  *string             `json:"customer_phone"`
	Items          []DraftItemOverride `json:"items"`
	PaymentMethod  *string             `json:"payment_method"`
	IsDebt         *bool               `json:"is_debt"`
	PaidAmount     *decimal.Decimal    `json:"paid_amount"`
	DiscountAmount *decimal.Decimal    `json:"discount_amount"`
	TaxRate        *decimal.Decimal    `json:"tax_rate"`
	Notes          *string             `json:"notes"`
}

// RejectDraftRequest discards a staged draft
type RejectDraftRequest struct {
	Reason string `json:"reason"`
}

func (r *ConfirmDraftRequest) toOverrides() draft.Overrides {
	o := draft.Overrides{
		CustomerID:     r.CustomerID,
		CustomerName:   r.CustomerName,
		CustomerPhone:  r.CustomerPhone,
		PaymentMethod:  r.PaymentMethod,
		IsDebt:         r.IsDebt,
		PaidAmount:     r.PaidAmount,
		DiscountAmount: r.DiscountAmount,
		TaxRate:        r.TaxRate,
		Notes:          r.Notes,
	}
	for _, it := range r.Items {
		o.Items = append(o.Items, draft.ParsedItem{
			ProductName: it.ProductName,
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return o
}

// Create handles POST /draft-orders
func (h *DraftHandler) Create(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		h.Unauthorized(c, "Owner identification required")
		return
	}

	var req CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), draftapp.CreateDraftInput{
		OwnerID: owner,
		Text:    req.Text,
		Source:  draft.Source(req.Source),
		ActorID: actorID(c),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// Get handles GET /draft-orders/:id
func (h *DraftHandler) Get(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		h.Unauthorized(c, "Owner identification required")
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid draft ID")
		return
	}

	result, err := h.queries.GetByID(c.Request.Context(), owner, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// List handles GET /draft-orders
func (h *DraftHandler) List(c *gin.Context) {
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
	if v := c.Query("status"); v != "" {
		filter.Filters["status"] = v
	}

	page, err := h.queries.List(c.Request.Context(), owner, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Confirm handles POST /draft-orders/:id/confirm
func (h *DraftHandler) Confirm(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		h.Unauthorized(c, "Owner identification required")
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid draft ID")
		return
	}

	var req ConfirmDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.confirmUC.Execute(c.Request.Context(), draftapp.ConfirmDraftInput{
		OwnerID:   owner,
		DraftID:   id,
		Overrides: req.toOverrides(),
		ActorID:   actorID(c),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Reject handles POST /draft-orders/:id/reject
func (h *DraftHandler) Reject(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		h.Unauthorized(c, "Owner identification required")
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid draft ID")
		return
	}

	var req RejectDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.queries.RejectDraft(c.Request.Context(), owner, id, req.Reason, actorID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
