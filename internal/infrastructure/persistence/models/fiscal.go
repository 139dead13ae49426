package models

import (
	"sort"
	"time"

	"github.com/pizzaria/backend/internal/domain/fiscal"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryInvoiceModel is the persistence model for the EntryInvoice aggregate root.
// The composite document key (number, model, series, supplier) is unique; the
// surrogate uuid ID exists only to anchor the item child rows.
type EntryInvoiceModel struct {
	AggregateModel
	Number             string                  `gorm:"type:varchar(20);not null;uniqueIndex:idx_entry_invoice_key,priority:1"`
	Model              string                  `gorm:"type:varchar(5);not null;uniqueIndex:idx_entry_invoice_key,priority:2"`
	Series             string                  `gorm:"type:varchar(5);not null;uniqueIndex:idx_entry_invoice_key,priority:3"`
	SupplierID         uuid.UUID               `gorm:"type:uuid;not null;index;uniqueIndex:idx_entry_invoice_key,priority:4"`
	SupplierName       string                  `gorm:"type:varchar(200);not null"`
	EmissionDate       time.Time               `gorm:"not null;index"`
	ArrivalDate        time.Time               `gorm:"not null"`
	ProductTotal       decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	Freight            decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	Insurance          decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	OtherExpenses      decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	Discount           decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	InvoiceTotal       decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	PaymentConditionID *uuid.UUID              `gorm:"type:uuid;index"`
	Notes              string                  `gorm:"type:text"`
	Items              []EntryInvoiceItemModel `gorm:"foreignKey:InvoiceID;references:ID"`
}

// TableName returns the table name for GORM
func (EntryInvoiceModel) TableName() string {
	return "entry_invoices"
}

// ToDomain converts the persistence model to a domain EntryInvoice entity.
// Items are returned ordered by line number.
func (m *EntryInvoiceModel) ToDomain() *fiscal.EntryInvoice {
	items := make([]fiscal.InvoiceItem, len(m.Items))
	for i, im := range m.Items {
		items[i] = im.toDomainItem()
	}
	sort.Slice(items, func(i, j int) bool { return items[i].LineNumber < items[j].LineNumber })

	return &fiscal.EntryInvoice{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Key: fiscal.InvoiceKey{
			Number:    m.Number,
			Model:     m.Model,
			Series:    m.Series,
			PartnerID: m.SupplierID,
		},
		SupplierName:       m.SupplierName,
		EmissionDate:       m.EmissionDate,
		ArrivalDate:        m.ArrivalDate,
		Items:              items,
		ProductTotal:       m.ProductTotal,
		Freight:            m.Freight,
		Insurance:          m.Insurance,
		OtherExpenses:      m.OtherExpenses,
		Discount:           m.Discount,
		InvoiceTotal:       m.InvoiceTotal,
		PaymentConditionID: m.PaymentConditionID,
		Notes:              m.Notes,
	}
}

// FromDomain populates the persistence model from a domain EntryInvoice entity.
func (m *EntryInvoiceModel) FromDomain(inv *fiscal.EntryInvoice) {
	m.FromDomainAggregateRoot(inv.BaseAggregateRoot)
	m.Number = inv.Key.Number
	m.Model = inv.Key.Model
	m.Series = inv.Key.Series
	m.SupplierID = inv.Key.PartnerID
	m.SupplierName = inv.SupplierName
	m.EmissionDate = inv.EmissionDate
	m.ArrivalDate = inv.ArrivalDate
	m.ProductTotal = inv.ProductTotal
	m.Freight = inv.Freight
	m.Insurance = inv.Insurance
	m.OtherExpenses = inv.OtherExpenses
	m.Discount = inv.Discount
	m.InvoiceTotal = inv.InvoiceTotal
	m.PaymentConditionID = inv.PaymentConditionID
	m.Notes = inv.Notes
	m.Items = make([]EntryInvoiceItemModel, len(inv.Items))
	for i, item := range inv.Items {
		m.Items[i] = EntryInvoiceItemModel{
			ID:               uuid.New(),
			InvoiceID:        inv.ID,
			InvoiceItemColumns: invoiceItemColumnsFromDomain(item),
		}
	}
}

// EntryInvoiceModelFromDomain creates a new persistence model from a domain EntryInvoice.
func EntryInvoiceModelFromDomain(inv *fiscal.EntryInvoice) *EntryInvoiceModel {
	m := &EntryInvoiceModel{}
	m.FromDomain(inv)
	return m
}

// ExitInvoiceModel is the persistence model for the ExitInvoice aggregate root.
type ExitInvoiceModel struct {
	AggregateModel
	Number             string                 `gorm:"type:varchar(20);not null;uniqueIndex:idx_exit_invoice_key,priority:1"`
	Model              string                 `gorm:"type:varchar(5);not null;uniqueIndex:idx_exit_invoice_key,priority:2"`
	Series             string                 `gorm:"type:varchar(5);not null;uniqueIndex:idx_exit_invoice_key,priority:3"`
	ClientID           uuid.UUID              `gorm:"type:uuid;not null;index;uniqueIndex:idx_exit_invoice_key,priority:4"`
	ClientName         string                 `gorm:"type:varchar(200);not null"`
	EmissionDate       time.Time              `gorm:"not null;index"`
	DepartureDate      time.Time              `gorm:"not null"`
	ProductTotal       decimal.Decimal        `gorm:"type:decimal(18,4);not null"`
	Freight            decimal.Decimal        `gorm:"type:decimal(18,4);not null"`
	Insurance          decimal.Decimal        `gorm:"type:decimal(18,4);not null"`
	OtherExpenses      decimal.Decimal        `gorm:"type:decimal(18,4);not null"`
	Discount           decimal.Decimal        `gorm:"type:decimal(18,4);not null"`
	InvoiceTotal       decimal.Decimal        `gorm:"type:decimal(18,4);not null"`
	PaymentConditionID *uuid.UUID             `gorm:"type:uuid;index"`
	CarrierID          *uuid.UUID             `gorm:"type:uuid;index"`
	VehicleID          *uuid.UUID             `gorm:"type:uuid;index"`
	Notes              string                 `gorm:"type:text"`
	Items              []ExitInvoiceItemModel `gorm:"foreignKey:InvoiceID;references:ID"`
}

// TableName returns the table name for GORM
func (ExitInvoiceModel) TableName() string {
	return "exit_invoices"
}

// ToDomain converts the persistence model to a domain ExitInvoice entity.
func (m *ExitInvoiceModel) ToDomain() *fiscal.ExitInvoice {
	items := make([]fiscal.InvoiceItem, len(m.Items))
	for i, im := range m.Items {
		items[i] = im.toDomainItem()
	}
	sort.Slice(items, func(i, j int) bool { return items[i].LineNumber < items[j].LineNumber })

	return &fiscal.ExitInvoice{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Key: fiscal.InvoiceKey{
			Number:    m.Number,
			Model:     m.Model,
			Series:    m.Series,
			PartnerID: m.ClientID,
		},
		ClientName:         m.ClientName,
		EmissionDate:       m.EmissionDate,
		DepartureDate:      m.DepartureDate,
		Items:              items,
		ProductTotal:       m.ProductTotal,
		Freight:            m.Freight,
		Insurance:          m.Insurance,
		OtherExpenses:      m.OtherExpenses,
		Discount:           m.Discount,
		InvoiceTotal:       m.InvoiceTotal,
		PaymentConditionID: m.PaymentConditionID,
		CarrierID:          m.CarrierID,
		VehicleID:          m.VehicleID,
		Notes:              m.Notes,
	}
}

// FromDomain populates the persistence model from a domain ExitInvoice entity.
func (m *ExitInvoiceModel) FromDomain(inv *fiscal.ExitInvoice) {
	m.FromDomainAggregateRoot(inv.BaseAggregateRoot)
	m.Number = inv.Key.Number
	m.Model = inv.Key.Model
	m.Series = inv.Key.Series
	m.ClientID = inv.Key.PartnerID
	m.ClientName = inv.ClientName
	m.EmissionDate = inv.EmissionDate
	m.DepartureDate = inv.DepartureDate
	m.ProductTotal = inv.ProductTotal
	m.Freight = inv.Freight
	m.Insurance = inv.Insurance
	m.OtherExpenses = inv.OtherExpenses
	m.Discount = inv.Discount
	m.InvoiceTotal = inv.InvoiceTotal
	m.PaymentConditionID = inv.PaymentConditionID
	m.CarrierID = inv.CarrierID
	m.VehicleID = inv.VehicleID
	m.Notes = inv.Notes
	m.Items = make([]ExitInvoiceItemModel, len(inv.Items))
	for i, item := range inv.Items {
		m.Items[i] = ExitInvoiceItemModel{
			ID:               uuid.New(),
			InvoiceID:        inv.ID,
			InvoiceItemColumns: invoiceItemColumnsFromDomain(item),
		}
	}
}

// ExitInvoiceModelFromDomain creates a new persistence model from a domain ExitInvoice.
func ExitInvoiceModelFromDomain(inv *fiscal.ExitInvoice) *ExitInvoiceModel {
	m := &ExitInvoiceModel{}
	m.FromDomain(inv)
	return m
}

// InvoiceItemColumns holds the columns shared by entry and exit item tables.
// It must stay exported so GORM maps the embedded fields.
type InvoiceItemColumns struct {
	LineNumber     int             `gorm:"not null"`
	ProductID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName    string          `gorm:"type:varchar(200);not null"`
	Quantity       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Discount       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	GrossTotal     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	FreightShare   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	InsuranceShare decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ExpenseShare   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	FinalCost      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

func invoiceItemColumnsFromDomain(item fiscal.InvoiceItem) InvoiceItemColumns {
	return InvoiceItemColumns{
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
	}
}

func (m InvoiceItemColumns) toDomainItem() fiscal.InvoiceItem {
	return fiscal.InvoiceItem{
		LineNumber:     m.LineNumber,
		ProductID:      m.ProductID,
		ProductName:    m.ProductName,
		Quantity:       m.Quantity,
		UnitPrice:      m.UnitPrice,
		Discount:       m.Discount,
		GrossTotal:     m.GrossTotal,
		FreightShare:   m.FreightShare,
		InsuranceShare: m.InsuranceShare,
		ExpenseShare:   m.ExpenseShare,
		FinalCost:      m.FinalCost,
	}
}

// EntryInvoiceItemModel is the persistence model for an entry invoice line.
type EntryInvoiceItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	InvoiceID uuid.UUID `gorm:"type:uuid;not null;index"`
	InvoiceItemColumns
}

// TableName returns the table name for GORM
func (EntryInvoiceItemModel) TableName() string {
	return "entry_invoice_items"
}

// ExitInvoiceItemModel is the persistence model for an exit invoice line.
type ExitInvoiceItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	InvoiceID uuid.UUID `gorm:"type:uuid;not null;index"`
	InvoiceItemColumns
}

// TableName returns the table name for GORM
func (ExitInvoiceItemModel) TableName() string {
	return "exit_invoice_items"
}
