package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	catalogapp "github.com/bizflow/backend/internal/application/catalog"
)

// ProductHandler exposes catalog management endpoints
type ProductHandler struct {
	BaseHandler
	products *catalogapp.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(products *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// RegisterRoutes registers product routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.POST("", h.Create)
		products.GET("", h.List)
		products.GET("/:id", h.Get)
		products.PUT("/:id", h.Update)
		products.POST("/:id/activate", h.Activate)
		products.DELETE("/:id", h.Deactivate)
	}
}

// CreateProductRequest is the payload for registering a product
type CreateProductRequest struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name" binding:"required"`
	Unit        string          `json:"unit"`
	BasePrice   decimal.Decimal `json:"base_price" binding:"required"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	Description string          `json:"description"`
}

// UpdateProductRequest carries partial product changes
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Unit        *string          `json:"unit"`
	BasePrice   *decimal.Decimal `json:"base_price"`
	CostPrice   *decimal.Decimal `json:"cost_price"`
	Description *string          `json:"description"`
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		h.Unauthorized(c, "Owner identification required")
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.products.Create(c.Request.Context(), catalogapp.CreateProductInput{
		OwnerID:     owner,
		SKU:         req.SKU,
		Name:        req.Name,
		Unit:        req.Unit,
		BasePrice:   req.BasePrice,
		CostPrice:   req.CostPrice,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		h.Unauthorized(c, "Owner identification required")
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	result, err := h.products.Get(c.Request.Context(), owner, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
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
	if c.Query("include_inactive") == "true" {
		filter.Filters["include_inactive"] = true
	}

	page, err := h.products.List(c.Request.Context(), owner, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update handles PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		h.Unauthorized(c, "Owner identification required")
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.products.Update(c.Request.Context(), catalogapp.UpdateProductInput{
		OwnerID:     owner,
		ProductID:   id,
		Name:        req.Name,
		Unit:        req.Unit,
		BasePrice:   req.BasePrice,
		CostPrice:   req.CostPrice,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Activate handles POST /products/:id/activate
func (h *ProductHandler) Activate(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		h.Unauthorized(c, "Owner identification required")
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.products.Activate(c.Request.Context(), owner, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Deactivate handles DELETE /products/:id
func (h *ProductHandler) Deactivate(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		h.Unauthorized(c, "Owner identification required")
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.products.Deactivate(c.Request.Context(), owner, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
