package models

import (
	"github.com/pizzaria/backend/internal/domain/partner"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClientModel is the persistence model for the Client aggregate root.
type ClientModel struct {
	AggregateModel
	Code        string          `gorm:"type:varchar(20);not null;uniqueIndex"`
	Name        string          `gorm:"type:varchar(200);not null"`
	TradeName   string          `gorm:"type:varchar(200)"`
	Document    string          `gorm:"type:varchar(14);not null;uniqueIndex"`
	ContactName string          `gorm:"type:varchar(100)"`
	Phone       string          `gorm:"type:varchar(20)"`
	Email       string          `gorm:"type:varchar(100)"`
	Address     string          `gorm:"type:varchar(300)"`
	CityID      *uuid.UUID      `gorm:"type:uuid;index"`
	CreditLimit decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Status      partner.Status  `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	Notes       string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the persistence model to a domain Client entity.
func (m *ClientModel) ToDomain() *partner.Client {
	return &partner.Client{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Code:              m.Code,
		Name:              m.Name,
		TradeName:         m.TradeName,
		Document:          m.Document,
		ContactName:       m.ContactName,
		Phone:             m.Phone,
		Email:             m.Email,
		Address:           m.Address,
		CityID:            m.CityID,
		CreditLimit:       m.CreditLimit,
		Status:            m.Status,
		Notes:             m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Client entity.
func (m *ClientModel) FromDomain(c *partner.Client) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Code = c.Code
	m.Name = c.Name
	m.TradeName = c.TradeName
	m.Document = c.Document
	m.ContactName = c.ContactName
	m.Phone = c.Phone
	m.Email = c.Email
	m.Address = c.Address
	m.CityID = c.CityID
	m.CreditLimit = c.CreditLimit
	m.Status = c.Status
	m.Notes = c.Notes
}

// ClientModelFromDomain creates a new persistence model from a domain Client.
func ClientModelFromDomain(c *partner.Client) *ClientModel {
	m := &ClientModel{}
	m.FromDomain(c)
	return m
}

// SupplierModel is the persistence model for the Supplier aggregate root.
type SupplierModel struct {
	AggregateModel
	Code              string         `gorm:"type:varchar(20);not null;uniqueIndex"`
	Name              string         `gorm:"type:varchar(200);not null"`
	TradeName         string         `gorm:"type:varchar(200)"`
	CNPJ              string         `gorm:"type:varchar(14);not null;uniqueIndex"`
	StateRegistration string         `gorm:"type:varchar(20)"`
	ContactName       string         `gorm:"type:varchar(100)"`
	Phone             string         `gorm:"type:varchar(20)"`
	Email             string         `gorm:"type:varchar(100)"`
	Address           string         `gorm:"type:varchar(300)"`
	CityID            *uuid.UUID     `gorm:"type:uuid;index"`
	Status            partner.Status `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	Notes             string         `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts the persistence model to a domain Supplier entity.
func (m *SupplierModel) ToDomain() *partner.Supplier {
	return &partner.Supplier{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Code:              m.Code,
		Name:              m.Name,
		TradeName:         m.TradeName,
		CNPJ:              m.CNPJ,
		StateRegistration: m.StateRegistration,
		ContactName:       m.ContactName,
		Phone:             m.Phone,
		Email:             m.Email,
		Address:           m.Address,
		CityID:            m.CityID,
		Status:            m.Status,
		Notes:             m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Supplier entity.
func (m *SupplierModel) FromDomain(s *partner.Supplier) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.Code = s.Code
	m.Name = s.Name
	m.TradeName = s.TradeName
	m.CNPJ = s.CNPJ
	m.StateRegistration = s.StateRegistration
	m.ContactName = s.ContactName
	m.Phone = s.Phone
	m.Email = s.Email
	m.Address = s.Address
	m.CityID = s.CityID
	m.Status = s.Status
	m.Notes = s.Notes
}

// SupplierModelFromDomain creates a new persistence model from a domain Supplier.
func SupplierModelFromDomain(s *partner.Supplier) *SupplierModel {
	m := &SupplierModel{}
	m.FromDomain(s)
	return m
}

// CarrierModel is the persistence model for the Carrier aggregate root.
type CarrierModel struct {
	AggregateModel
	Code    string         `gorm:"type:varchar(20);not null;uniqueIndex"`
	Name    string         `gorm:"type:varchar(200);not null"`
	CNPJ    string         `gorm:"type:varchar(14);not null"`
	Phone   string         `gorm:"type:varchar(20)"`
	Email   string         `gorm:"type:varchar(100)"`
	Address string         `gorm:"type:varchar(300)"`
	CityID  *uuid.UUID     `gorm:"type:uuid;index"`
	Status  partner.Status `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
}

// TableName returns the table name for GORM
func (CarrierModel) TableName() string {
	return "carriers"
}

// ToDomain converts the persistence model to a domain Carrier entity.
func (m *CarrierModel) ToDomain() *partner.Carrier {
	return &partner.Carrier{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Code:              m.Code,
		Name:              m.Name,
		CNPJ:              m.CNPJ,
		Phone:             m.Phone,
		Email:             m.Email,
		Address:           m.Address,
		CityID:            m.CityID,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain Carrier entity.
func (m *CarrierModel) FromDomain(c *partner.Carrier) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Code = c.Code
	m.Name = c.Name
	m.CNPJ = c.CNPJ
	m.Phone = c.Phone
	m.Email = c.Email
	m.Address = c.Address
	m.CityID = c.CityID
	m.Status = c.Status
}

// CarrierModelFromDomain creates a new persistence model from a domain Carrier.
func CarrierModelFromDomain(c *partner.Carrier) *CarrierModel {
	m := &CarrierModel{}
	m.FromDomain(c)
	return m
}

// VehicleModel is the persistence model for the Vehicle aggregate root.
type VehicleModel struct {
	AggregateModel
	Plate       string         `gorm:"type:varchar(10);not null;uniqueIndex"`
	Description string         `gorm:"type:varchar(200)"`
	CarrierID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status      partner.Status `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
}

// TableName returns the table name for GORM
func (VehicleModel) TableName() string {
	return "vehicles"
}

// ToDomain converts the persistence model to a domain Vehicle entity.
func (m *VehicleModel) ToDomain() *partner.Vehicle {
	return &partner.Vehicle{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Plate:             m.Plate,
		Description:       m.Description,
		CarrierID:         m.CarrierID,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain Vehicle entity.
func (m *VehicleModel) FromDomain(v *partner.Vehicle) {
	m.FromDomainAggregateRoot(v.BaseAggregateRoot)
	m.Plate = v.Plate
	m.Description = v.Description
	m.CarrierID = v.CarrierID
	m.Status = v.Status
}

// VehicleModelFromDomain creates a new persistence model from a domain Vehicle.
func VehicleModelFromDomain(v *partner.Vehicle) *VehicleModel {
	m := &VehicleModel{}
	m.FromDomain(v)
	return m
}
