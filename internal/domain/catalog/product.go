package catalog

import (
	"strings"

	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/pizzaria/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the status of a product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// IsValid checks if the status is a valid ProductStatus
func (s ProductStatus) IsValid() bool {
	return s == ProductStatusActive || s == ProductStatusInactive
}

// Product represents a sellable/purchasable item.
// CostPrice tracks the last landed cost computed from entry invoices;
// SalePrice is the list price used on exit invoices.
type Product struct {
	shared.BaseAggregateRoot
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"` // UN, KG, CX...
	Category     string          `json:"category"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	Stock        decimal.Decimal `json:"stock"`
	MinimumStock decimal.Decimal `json:"minimum_stock"`
	Status       ProductStatus   `json:"status"`
}

// NewProduct creates a new active product. Monetary fields default to zero.
func NewProduct(code, name, unit string) (*Product, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if len(code) > 50 {
		return nil, shared.NewDomainError("INVALID_CODE", "Product code cannot exceed 50 characters")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	if unit == "" {
		unit = "UN"
	}
	if len(unit) > 10 {
		return nil, shared.NewDomainError("INVALID_UNIT", "Product unit cannot exceed 10 characters")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Name:              name,
		Unit:              strings.ToUpper(unit),
		CostPrice:         decimal.Zero,
		SalePrice:         decimal.Zero,
		Stock:             decimal.Zero,
		MinimumStock:      decimal.Zero,
		Status:            ProductStatusActive,
	}, nil
}

// Update changes name, unit and category
func (p *Product) Update(name, unit, category string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	if unit == "" {
		unit = p.Unit
	}
	if len(unit) > 10 {
		return shared.NewDomainError("INVALID_UNIT", "Product unit cannot exceed 10 characters")
	}
	if len(category) > 100 {
		return shared.NewDomainError("INVALID_CATEGORY", "Category cannot exceed 100 characters")
	}

	p.Name = name
	p.Unit = strings.ToUpper(unit)
	p.Category = category
	p.touch()
	return nil
}

// SetPrices sets cost and sale prices
func (p *Product) SetPrices(cost, sale valueobject.Money) error {
	if cost.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Cost price cannot be negative")
	}
	if sale.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Sale price cannot be negative")
	}
	p.CostPrice = cost.Amount()
	p.SalePrice = sale.Amount()
	p.touch()
	return nil
}

// SetMinimumStock sets the low-stock threshold
func (p *Product) SetMinimumStock(minimum decimal.Decimal) error {
	if minimum.IsNegative() {
		return shared.NewDomainError("INVALID_STOCK", "Minimum stock cannot be negative")
	}
	p.MinimumStock = minimum
	p.touch()
	return nil
}

// AdjustStock applies a stock delta (positive on entry, negative on exit)
func (p *Product) AdjustStock(delta decimal.Decimal) error {
	next := p.Stock.Add(delta)
	if next.IsNegative() {
		return shared.NewDomainError("INSUFFICIENT_STOCK", "Stock cannot become negative")
	}
	p.Stock = next
	p.touch()
	return nil
}

// Activate sets the product to active
func (p *Product) Activate() error {
	if p.Status == ProductStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Product is already active")
	}
	p.Status = ProductStatusActive
	p.touch()
	return nil
}

// Deactivate sets the product to inactive
func (p *Product) Deactivate() error {
	if p.Status == ProductStatusInactive {
		return shared.NewDomainError("INVALID_STATE", "Product is already inactive")
	}
	p.Status = ProductStatusInactive
	p.touch()
	return nil
}

// IsActive returns true if the product is active
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// IsBelowMinimum returns true if stock is below the minimum threshold
func (p *Product) IsBelowMinimum() bool {
	return p.Stock.LessThan(p.MinimumStock)
}

func (p *Product) touch() {
	p.Touch()
	p.IncrementVersion()
}
