package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// ProductSortFields contains allowed sort fields for products
var ProductSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"sku":        true,
	"name":       true,
	"unit":       true,
	"base_price": true,
	"cost_price": true,
	"is_active":  true,
}

// CustomerSortFields contains allowed sort fields for customers
var CustomerSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"name":         true,
	"phone":        true,
	"credit_limit": true,
	"is_active":    true,
}

// InventorySortFields contains allowed sort fields for inventory rows
var InventorySortFields = map[string]bool{
	"id":                  true,
	"created_at":          true,
	"updated_at":          true,
	"product_id":          true,
	"quantity":            true,
	"reserved_quantity":   true,
	"low_stock_threshold": true,
}

// StockMovementSortFields contains allowed sort fields for stock movements
var StockMovementSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"type":           true,
	"quantity":       true,
	"reference_type": true,
}

// OrderSortFields contains allowed sort fields for orders
var OrderSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"order_code":     true,
	"customer_name":  true,
	"total_amount":   true,
	"paid_amount":    true,
	"debt_amount":    true,
	"payment_status": true,
	"order_date":     true,
}

// DebtSortFields contains allowed sort fields for debts
var DebtSortFields = map[string]bool{
	"id":              true,
	"created_at":      true,
	"updated_at":      true,
	"customer_id":     true,
	"original_amount": true,
	"paid_amount":     true,
	"due_date":        true,
	"status":          true,
}

// DraftOrderSortFields contains allowed sort fields for draft orders
var DraftOrderSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"draft_code": true,
	"confidence": true,
	"status":     true,
	"expires_at": true,
}
