package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	debtapp "github.com/bizflow/backend/internal/application/debt"
)

// DebtHandler exposes receivable lookup and repayment endpoints
type DebtHandler struct {
	BaseHandler
	repayUC *debtapp.RepayDebtUseCase
	queries *debtapp.DebtQueries
}

// NewDebtHandler creates a new debt handler
func NewDebtHandler(repayUC *debtapp.RepayDebtUseCase, queries *debtapp.DebtQueries) *DebtHandler {
	return &DebtHandler{repayUC: repayUC, queries: queries}
}

// RegisterRoutes registers debt routes
func (h *DebtHandler) RegisterRoutes(rg *gin.RouterGroup) {
	debts := rg.Group("/debts")
	{
		debts.GET("/:id", h.Get)
		debts.POST("/:id/payments", h.Repay)
	}
	rg.GET("/customers/:id/debts", h.ListByCustomer)
}

// RepayDebtRequest records a payment against a receivable
type RepayDebtRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Method string          `json:"method"`
	Note   string          `json:"note"`
}

// Get handles GET /debts/:id
func (h *DebtHandler) Get(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		h.Unauthorized(c, "Owner identification required")
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid debt ID")
		return
	}

	result, err := h.queries.GetByID(c.Request.Context(), owner, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Repay handles POST /debts/:id/payments
func (h *DebtHandler) Repay(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		h.Unauthorized(c, "Owner identification required")
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid debt ID")
		return
	}

	var req RepayDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.repayUC.Execute(c.Request.Context(), debtapp.RepayDebtInput{
		OwnerID: owner,
		DebtID:  id,
		Amount:  req.Amount,
		Method:  req.Method,
		Note:    req.Note,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ListByCustomer handles GET /customers/:id/debts
func (h *DebtHandler) ListByCustomer(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		h.Unauthorized(c, "Owner identification required")
		return
	}
	customerID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid customer ID")
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

	page, err := h.queries.ListByCustomer(c.Request.Context(), owner, customerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}
