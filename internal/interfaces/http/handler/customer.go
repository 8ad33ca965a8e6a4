package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	partnerapp "github.com/bizflow/backend/internal/application/partner"
)

// CustomerHandler exposes customer management endpoints
type CustomerHandler struct {
	BaseHandler
	customers *partnerapp.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customers *partnerapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// RegisterRoutes registers customer routes
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.POST("", h.Create)
		customers.GET("", h.List)
		customers.GET("/:id", h.Get)
		customers.PUT("/:id", h.Update)
		customers.PUT("/:id/credit-limit", h.SetCreditLimit)
		customers.DELETE("/:id", h.Deactivate)
	}
}

// CreateCustomerRequest is the payload for registering a customer
type CreateCustomerRequest struct {
	Name        string          `json:"name" binding:"required"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Address     string          `json:"address"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	Notes       string          `json:"notes"`
}

// UpdateCustomerRequest carries partial customer changes
type UpdateCustomerRequest struct {
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

// SetCreditLimitRequest sets the customer's credit ceiling
type SetCreditLimitRequest struct {
	CreditLimit decimal.Decimal `json:"credit_limit" binding:"required"`
}

// Create handles POST /customers
func (h *CustomerHandler) Create(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		h.Unauthorized(c, "Owner identification required")
		return
	}

	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.customers.Create(c.Request.Context(), partnerapp.CreateCustomerInput{
		OwnerID:     owner,
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		CreditLimit: req.CreditLimit,
		Notes:       req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// Get handles GET /customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		h.Unauthorized(c, "Owner identification required")
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	result, err := h.customers.Get(c.Request.Context(), owner, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// List handles GET /customers
func (h *CustomerHandler) List(c *gin.Context) {
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

	page, err := h.customers.List(c.Request.Context(), owner, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update handles PUT /customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		h.Unauthorized(c, "Owner identification required")
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.customers.Update(c.Request.Context(), partnerapp.UpdateCustomerInput{
		OwnerID:    owner,
		CustomerID: id,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		Notes:      req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// SetCreditLimit handles PUT /customers/:id/credit-limit
func (h *CustomerHandler) SetCreditLimit(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		h.Unauthorized(c, "Owner identification required")
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	var req SetCreditLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.customers.SetCreditLimit(c.Request.Context(), owner, id, req.CreditLimit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Deactivate handles DELETE /customers/:id
func (h *CustomerHandler) Deactivate(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		h.Unauthorized(c, "Owner identification required")
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customers.Deactivate(c.Request.Context(), owner, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
