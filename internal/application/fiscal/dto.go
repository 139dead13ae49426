package fiscal

import (
	"time"

	"github.com/pizzaria/backend/internal/domain/fiscal"
	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceKeyRequest identifies a fiscal document by its composite key
type InvoiceKeyRequest struct {
	Number    string    `json:"number" binding:"required,min=1,max=20"`
	Model     string    `json:"model" binding:"required,min=1,max=5"`
	Series    string    `json:"series" binding:"required,min=1,max=5"`
	PartnerID uuid.UUID `json:"partner_id" binding:"required"`
}

// InvoiceItemRequest is one product line of an invoice create or update
type InvoiceItemRequest struct {
	ProductID uuid.UUID        `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal  `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal  `json:"unit_price" binding:"required"`
	Discount  *decimal.Decimal `json:"discount"`
}

// CreateEntryInvoiceRequest represents an entry invoice creation request
type CreateEntryInvoiceRequest struct {
	Number             string               `json:"number" binding:"required,min=1,max=20"`
	Model              string               `json:"model" binding:"required,min=1,max=5"`
	Series             string               `json:"series" binding:"required,min=1,max=5"`
	SupplierID         uuid.UUID            `json:"supplier_id" binding:"required"`
	EmissionDate       time.Time            `json:"emission_date" binding:"required"`
	ArrivalDate        time.Time            `json:"arrival_date" binding:"required"`
	Items              []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
	ProductTotal       decimal.Decimal      `json:"product_total" binding:"required"`
	Freight            decimal.Decimal      `json:"freight"`
	Insurance          decimal.Decimal      `json:"insurance"`
	OtherExpenses      decimal.Decimal      `json:"other_expenses"`
	Discount           decimal.Decimal      `json:"discount"`
	PaymentConditionID *uuid.UUID           `json:"payment_condition_id"`
	Notes              string               `json:"notes"`
}

// UpdateEntryInvoiceRequest updates the mutable fields of an entry invoice.
// The composite key cannot be changed.
type UpdateEntryInvoiceRequest struct {
	EmissionDate       *time.Time           `json:"emission_date"`
	ArrivalDate        *time.Time           `json:"arrival_date"`
	Items              []InvoiceItemRequest `json:"items" binding:"omitempty,min=1,dive"`
	ProductTotal       *decimal.Decimal     `json:"product_total"`
	Freight            *decimal.Decimal     `json:"freight"`
	Insurance          *decimal.Decimal     `json:"insurance"`
	OtherExpenses      *decimal.Decimal     `json:"other_expenses"`
	Discount           *decimal.Decimal     `json:"discount"`
	PaymentConditionID *uuid.UUID           `json:"payment_condition_id"`
	Notes              *string              `json:"notes"`
}

// CreateExitInvoiceRequest represents an exit invoice creation request
type CreateExitInvoiceRequest struct {
	Number             string               `json:"number" binding:"required,min=1,max=20"`
	Model              string               `json:"model" binding:"required,min=1,max=5"`
	Series             string               `json:"series" binding:"required,min=1,max=5"`
	ClientID           uuid.UUID            `json:"client_id" binding:"required"`
	EmissionDate       time.Time            `json:"emission_date" binding:"required"`
	DepartureDate      time.Time            `json:"departure_date" binding:"required"`
	Items              []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
	ProductTotal       decimal.Decimal      `json:"product_total" binding:"required"`
	Freight            decimal.Decimal      `json:"freight"`
	Insurance          decimal.Decimal      `json:"insurance"`
	OtherExpenses      decimal.Decimal      `json:"other_expenses"`
	Discount           decimal.Decimal      `json:"discount"`
	PaymentConditionID *uuid.UUID           `json:"payment_condition_id"`
	CarrierID          *uuid.UUID           `json:"carrier_id"`
	VehicleID          *uuid.UUID           `json:"vehicle_id"`
	Notes              string               `json:"notes"`
}

// UpdateExitInvoiceRequest updates the mutable fields of an exit invoice
type UpdateExitInvoiceRequest struct {
	EmissionDate       *time.Time           `json:"emission_date"`
	DepartureDate      *time.Time           `json:"departure_date"`
	Items              []InvoiceItemRequest `json:"items" binding:"omitempty,min=1,dive"`
	ProductTotal       *decimal.Decimal     `json:"product_total"`
	Freight            *decimal.Decimal     `json:"freight"`
	Insurance          *decimal.Decimal     `json:"insurance"`
	OtherExpenses      *decimal.Decimal     `json:"other_expenses"`
	Discount           *decimal.Decimal     `json:"discount"`
	PaymentConditionID *uuid.UUID           `json:"payment_condition_id"`
	CarrierID          *uuid.UUID           `json:"carrier_id"`
	VehicleID          *uuid.UUID           `json:"vehicle_id"`
	Notes              *string              `json:"notes"`
}

// InvoiceItemResponse is one product line in an invoice response
type InvoiceItemResponse struct {
	LineNumber     int             `json:"line_number"`
	ProductID      uuid.UUID       `json:"product_id"`
	ProductName    string          `json:"product_name"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Discount       decimal.Decimal `json:"discount"`
	GrossTotal     decimal.Decimal `json:"gross_total"`
	FreightShare   decimal.Decimal `json:"freight_share"`
	InsuranceShare decimal.Decimal `json:"insurance_share"`
	ExpenseShare   decimal.Decimal `json:"expense_share"`
	FinalCost      decimal.Decimal `json:"final_cost"`
}

// EntryInvoiceResponse represents an entry invoice in API responses
type EntryInvoiceResponse struct {
	Number             string                `json:"number"`
	Model              string                `json:"model"`
	Series             string                `json:"series"`
	SupplierID         uuid.UUID             `json:"supplier_id"`
	SupplierName       string                `json:"supplier_name"`
	EmissionDate       time.Time             `json:"emission_date"`
	ArrivalDate        time.Time             `json:"arrival_date"`
	Items              []InvoiceItemResponse `json:"items"`
	ProductTotal       decimal.Decimal       `json:"product_total"`
	Freight            decimal.Decimal       `json:"freight"`
	Insurance          decimal.Decimal       `json:"insurance"`
	OtherExpenses      decimal.Decimal       `json:"other_expenses"`
	Discount           decimal.Decimal       `json:"discount"`
	InvoiceTotal       decimal.Decimal       `json:"invoice_total"`
	PaymentConditionID *uuid.UUID            `json:"payment_condition_id,omitempty"`
	Notes              string                `json:"notes"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

// ExitInvoiceResponse represents an exit invoice in API responses
type ExitInvoiceResponse struct {
	Number             string                `json:"number"`
	Model              string                `json:"model"`
	Series             string                `json:"series"`
	ClientID           uuid.UUID             `json:"client_id"`
	ClientName         string                `json:"client_name"`
	EmissionDate       time.Time             `json:"emission_date"`
	DepartureDate      time.Time             `json:"departure_date"`
	Items              []InvoiceItemResponse `json:"items"`
	ProductTotal       decimal.Decimal       `json:"product_total"`
	Freight            decimal.Decimal       `json:"freight"`
	Insurance          decimal.Decimal       `json:"insurance"`
	OtherExpenses      decimal.Decimal       `json:"other_expenses"`
	Discount           decimal.Decimal       `json:"discount"`
	InvoiceTotal       decimal.Decimal       `json:"invoice_total"`
	PaymentConditionID *uuid.UUID            `json:"payment_condition_id,omitempty"`
	CarrierID          *uuid.UUID            `json:"carrier_id,omitempty"`
	VehicleID          *uuid.UUID            `json:"vehicle_id,omitempty"`
	Notes              string                `json:"notes"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

// ListFilter carries pagination and search parameters for invoice listings
type ListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
}

func buildFilter(filter ListFilter) shared.Filter {
	f := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > 100 {
		f.PageSize = 20
	}
	if f.OrderBy == "" {
		f.OrderBy = "emission_date"
	}
	if f.OrderDir != "asc" && f.OrderDir != "desc" {
		f.OrderDir = "desc"
	}
	return f
}

func toItemResponses(items []fiscal.InvoiceItem) []InvoiceItemResponse {
	responses := make([]InvoiceItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, InvoiceItemResponse{
			LineNumber:     item.LineNumber,
			ProductID:      item.ProductID,
			ProductName:    item.ProductName,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			Discount:       item.Discount,
			GrossTotal:     item.GrossTotal,
			FreightShare:   item.FreightShare,
			InsuranceShare: item.InsuranceShare,
			ExpenseShare:   item.ExpenseShare,
			FinalCost:      item.FinalCost,
		})
	}
	return responses
}

// ToEntryInvoiceResponse converts an EntryInvoice to an EntryInvoiceResponse
func ToEntryInvoiceResponse(inv *fiscal.EntryInvoice) EntryInvoiceResponse {
	return EntryInvoiceResponse{
		Number:             inv.Key.Number,
		Model:              inv.Key.Model,
		Series:             inv.Key.Series,
		SupplierID:         inv.Key.PartnerID,
		SupplierName:       inv.SupplierName,
		EmissionDate:       inv.EmissionDate,
		ArrivalDate:        inv.ArrivalDate,
		Items:              toItemResponses(inv.Items),
		ProductTotal:       inv.ProductTotal,
		Freight:            inv.Freight,
		Insurance:          inv.Insurance,
		OtherExpenses:      inv.OtherExpenses,
		Discount:           inv.Discount,
		InvoiceTotal:       inv.InvoiceTotal,
		PaymentConditionID: inv.PaymentConditionID,
		Notes:              inv.Notes,
		CreatedAt:          inv.CreatedAt,
		UpdatedAt:          inv.UpdatedAt,
	}
}

// ToExitInvoiceResponse converts an ExitInvoice to an ExitInvoiceResponse
func ToExitInvoiceResponse(inv *fiscal.ExitInvoice) ExitInvoiceResponse {
	return ExitInvoiceResponse{
		Number:             inv.Key.Number,
		Model:              inv.Key.Model,
		Series:             inv.Key.Series,
		ClientID:           inv.Key.PartnerID,
		ClientName:         inv.ClientName,
		EmissionDate:       inv.EmissionDate,
		DepartureDate:      inv.DepartureDate,
		Items:              toItemResponses(inv.Items),
		ProductTotal:       inv.ProductTotal,
		Freight:            inv.Freight,
		Insurance:          inv.Insurance,
		OtherExpenses:      inv.OtherExpenses,
		Discount:           inv.Discount,
		InvoiceTotal:       inv.InvoiceTotal,
		PaymentConditionID: inv.PaymentConditionID,
		CarrierID:          inv.CarrierID,
		VehicleID:          inv.VehicleID,
		Notes:              inv.Notes,
		CreatedAt:          inv.CreatedAt,
		UpdatedAt:          inv.UpdatedAt,
	}
}
