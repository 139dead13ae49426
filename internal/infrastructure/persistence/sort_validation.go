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

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// CountrySortFields contains allowed sort fields for countries
var CountrySortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"name":         true,
	"abbreviation": true,
}

// StateSortFields contains allowed sort fields for states
var StateSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"uf":         true,
	"country_id": true,
}

// CitySortFields contains allowed sort fields for cities
var CitySortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"ibge_code":  true,
	"state_id":   true,
}

// ClientSortFields contains allowed sort fields for clients
var ClientSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"code":         true,
	"name":         true,
	"trade_name":   true,
	"document":     true,
	"status":       true,
	"credit_limit": true,
}

// SupplierSortFields contains allowed sort fields for suppliers
var SupplierSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"code":       true,
	"name":       true,
	"trade_name": true,
	"cnpj":       true,
	"status":     true,
}

// CarrierSortFields contains allowed sort fields for carriers
var CarrierSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"code":       true,
	"name":       true,
	"cnpj":       true,
	"status":     true,
}

// VehicleSortFields contains allowed sort fields for vehicles
var VehicleSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"plate":       true,
	"description": true,
	"carrier_id":  true,
	"status":      true,
}

// ProductSortFields contains allowed sort fields for products
var ProductSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"code":          true,
	"name":          true,
	"unit":          true,
	"category":      true,
	"cost_price":    true,
	"sale_price":    true,
	"stock":         true,
	"minimum_stock": true,
	"status":        true,
}

// PaymentMethodSortFields contains allowed sort fields for payment methods
var PaymentMethodSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"code":        true,
	"description": true,
	"active":      true,
}

// PaymentConditionSortFields contains allowed sort fields for payment conditions
var PaymentConditionSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"active":     true,
}

// AccountPayableSortFields contains allowed sort fields for accounts payable
var AccountPayableSortFields = map[string]bool{
	"id":              true,
	"created_at":      true,
	"updated_at":      true,
	"document_number": true,
	"supplier_id":     true,
	"supplier_name":   true,
	"total_amount":    true,
	"paid_amount":     true,
	"status":          true,
	"issue_date":      true,
	"due_date":        true,
	"payment_date":    true,
}

// AccountReceivableSortFields contains allowed sort fields for accounts receivable
var AccountReceivableSortFields = map[string]bool{
	"id":              true,
	"created_at":      true,
	"updated_at":      true,
	"document_number": true,
	"client_id":       true,
	"client_name":     true,
	"total_amount":    true,
	"received_amount": true,
	"status":          true,
	"issue_date":      true,
	"due_date":        true,
	"receipt_date":    true,
}

// InvoiceSortFields contains allowed sort fields for entry and exit invoices
var InvoiceSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"number":        true,
	"model":         true,
	"series":        true,
	"emission_date": true,
	"invoice_total": true,
}
