package models

import (
	"github.com/pizzaria/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for the Product aggregate root.
type ProductModel struct {
	AggregateModel
	Code         string                `gorm:"type:varchar(20);not null;uniqueIndex"`
	Name         string                `gorm:"type:varchar(200);not null"`
	Unit         string                `gorm:"type:varchar(10);not null"`
	Category     string                `gorm:"type:varchar(100);index"`
	CostPrice    decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	SalePrice    decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	Stock        decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	MinimumStock decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	Status       catalog.ProductStatus `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Code:              m.Code,
		Name:              m.Name,
		Unit:              m.Unit,
		Category:          m.Category,
		CostPrice:         m.CostPrice,
		SalePrice:         m.SalePrice,
		Stock:             m.Stock,
		MinimumStock:      m.MinimumStock,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Code = p.Code
	m.Name = p.Name
	m.Unit = p.Unit
	m.Category = p.Category
	m.CostPrice = p.CostPrice
	m.SalePrice = p.SalePrice
	m.Stock = p.Stock
	m.MinimumStock = p.MinimumStock
	m.Status = p.Status
}

// ProductModelFromDomain creates a new persistence model from a domain Product.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
