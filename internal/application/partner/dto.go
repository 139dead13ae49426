package partner

import (
	"time"

	"github.com/pizzaria/backend/internal/domain/partner"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Client DTOs
// =============================================================================

// CreateClientRequest represents a request to create a new client
type CreateClientRequest struct {
	Code        string           `json:"code" binding:"required,min=1,max=50"`
	Name        string           `json:"name" binding:"required,min=1,max=200"`
	TradeName   string           `json:"trade_name" binding:"max=200"`
	Document    string           `json:"document" binding:"max=20"`
	ContactName string           `json:"contact_name" binding:"max=100"`
	Phone       string           `json:"phone" binding:"max=50"`
	Email       string           `json:"email" binding:"omitempty,email,max=200"`
	Address     string           `json:"address" binding:"max=500"`
	CityID      *uuid.UUID       `json:"city_id"`
	CreditLimit *decimal.Decimal `json:"credit_limit"`
	Notes       string           `json:"notes"`
}

// UpdateClientRequest represents a request to update a client
type UpdateClientRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=200"`
	TradeName   *string          `json:"trade_name" binding:"omitempty,max=200"`
	Document    *string          `json:"document" binding:"omitempty,max=20"`
	ContactName *string          `json:"contact_name" binding:"omitempty,max=100"`
	Phone       *string          `json:"phone" binding:"omitempty,max=50"`
	Email       *string          `json:"email" binding:"omitempty,email,max=200"`
	Address     *string          `json:"address" binding:"omitempty,max=500"`
	CityID      *uuid.UUID       `json:"city_id"`
	CreditLimit *decimal.Decimal `json:"credit_limit"`
	Notes       *string          `json:"notes"`
}

// ClientResponse represents a client in API responses. CityName is derived
// from the referenced city and only populated on the outbound path.
type ClientResponse struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	TradeName   string          `json:"trade_name"`
	Document    string          `json:"document"`
	ContactName string          `json:"contact_name"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Address     string          `json:"address"`
	CityID      *uuid.UUID      `json:"city_id"`
	CityName    string          `json:"city_name,omitempty"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	Status      string          `json:"status"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Version     int             `json:"version"`
}

// ToClientResponse converts a domain Client to ClientResponse
func ToClientResponse(c *partner.Client, cityName string) ClientResponse {
	return ClientResponse{
		ID:          c.ID,
		Code:        c.Code,
		Name:        c.Name,
		TradeName:   c.TradeName,
		Document:    c.Document,
		ContactName: c.ContactName,
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     c.Address,
		CityID:      c.CityID,
		CityName:    cityName,
		CreditLimit: c.CreditLimit,
		Status:      string(c.Status),
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		Version:     c.Version,
	}
}

// =============================================================================
// Supplier DTOs
// =============================================================================

// CreateSupplierRequest represents a request to create a new supplier
type CreateSupplierRequest struct {
	Code              string     `json:"code" binding:"required,min=1,max=50"`
	Name              string     `json:"name" binding:"required,min=1,max=200"`
	TradeName         string     `json:"trade_name" binding:"max=200"`
	CNPJ              string     `json:"cnpj" binding:"max=20"`
	StateRegistration string     `json:"state_registration" binding:"max=50"`
	ContactName       string     `json:"contact_name" binding:"max=100"`
	Phone             string     `json:"phone" binding:"max=50"`
	Email             string     `json:"email" binding:"omitempty,email,max=200"`
	Address           string     `json:"address" binding:"max=500"`
	CityID            *uuid.UUID `json:"city_id"`
	Notes             string     `json:"notes"`
}

// UpdateSupplierRequest represents a request to update a supplier
type UpdateSupplierRequest struct {
	Name              *string    `json:"name" binding:"omitempty,min=1,max=200"`
	TradeName         *string    `json:"trade_name" binding:"omitempty,max=200"`
	CNPJ              *string    `json:"cnpj" binding:"omitempty,max=20"`
	StateRegistration *string    `json:"state_registration" binding:"omitempty,max=50"`
	ContactName       *string    `json:"contact_name" binding:"omitempty,max=100"`
	Phone             *string    `json:"phone" binding:"omitempty,max=50"`
	Email             *string    `json:"email" binding:"omitempty,email,max=200"`
	Address           *string    `json:"address" binding:"omitempty,max=500"`
	CityID            *uuid.UUID `json:"city_id"`
	Notes             *string    `json:"notes"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID                uuid.UUID  `json:"id"`
	Code              string     `json:"code"`
	Name              string     `json:"name"`
	TradeName         string     `json:"trade_name"`
	CNPJ              string     `json:"cnpj"`
	StateRegistration string     `json:"state_registration"`
	ContactName       string     `json:"contact_name"`
	Phone             string     `json:"phone"`
	Email             string     `json:"email"`
	Address           string     `json:"address"`
	CityID            *uuid.UUID `json:"city_id"`
	CityName          string     `json:"city_name,omitempty"`
	Status            string     `json:"status"`
	Notes             string     `json:"notes"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	Version           int        `json:"version"`
}

// ToSupplierResponse converts a domain Supplier to SupplierResponse
func ToSupplierResponse(s *partner.Supplier, cityName string) SupplierResponse {
	return SupplierResponse{
		ID:                s.ID,
		Code:              s.Code,
		Name:              s.Name,
		TradeName:         s.TradeName,
		CNPJ:              s.CNPJ,
		StateRegistration: s.StateRegistration,
		ContactName:       s.ContactName,
		Phone:             s.Phone,
		Email:             s.Email,
		Address:           s.Address,
		CityID:            s.CityID,
		CityName:          cityName,
		Status:            string(s.Status),
		Notes:             s.Notes,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
		Version:           s.Version,
	}
}

// =============================================================================
// Carrier DTOs
// =============================================================================

// CreateCarrierRequest represents a request to create a new carrier
type CreateCarrierRequest struct {
	Code    string     `json:"code" binding:"required,min=1,max=50"`
	Name    string     `json:"name" binding:"required,min=1,max=200"`
	CNPJ    string     `json:"cnpj" binding:"max=20"`
	Phone   string     `json:"phone" binding:"max=50"`
	Email   string     `json:"email" binding:"omitempty,email,max=200"`
	Address string     `json:"address" binding:"max=500"`
	CityID  *uuid.UUID `json:"city_id"`
}

// UpdateCarrierRequest represents a request to update a carrier
type UpdateCarrierRequest struct {
	Name    *string    `json:"name" binding:"omitempty,min=1,max=200"`
	Phone   *string    `json:"phone" binding:"omitempty,max=50"`
	Email   *string    `json:"email" binding:"omitempty,email,max=200"`
	Address *string    `json:"address" binding:"omitempty,max=500"`
	CityID  *uuid.UUID `json:"city_id"`
}

// CarrierResponse represents a carrier in API responses
type CarrierResponse struct {
	ID        uuid.UUID  `json:"id"`
	Code      string     `json:"code"`
	Name      string     `json:"name"`
	CNPJ      string     `json:"cnpj"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email"`
	Address   string     `json:"address"`
	CityID    *uuid.UUID `json:"city_id"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Version   int        `json:"version"`
}

// ToCarrierResponse converts a domain Carrier to CarrierResponse
func ToCarrierResponse(c *partner.Carrier) CarrierResponse {
	return CarrierResponse{
		ID:        c.ID,
		Code:      c.Code,
		Name:      c.Name,
		CNPJ:      c.CNPJ,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		CityID:    c.CityID,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Version:   c.Version,
	}
}

// =============================================================================
// Vehicle DTOs
// =============================================================================

// CreateVehicleRequest represents a request to create a new vehicle
type CreateVehicleRequest struct {
	Plate       string    `json:"plate" binding:"required,min=1,max=10"`
	Description string    `json:"description" binding:"max=200"`
	CarrierID   uuid.UUID `json:"carrier_id" binding:"required"`
}

// UpdateVehicleRequest represents a request to update a vehicle
type UpdateVehicleRequest struct {
	Description string    `json:"description" binding:"max=200"`
	CarrierID   uuid.UUID `json:"carrier_id" binding:"required"`
}

// VehicleResponse represents a vehicle in API responses. CarrierName is
// derived from the referenced carrier.
type VehicleResponse struct {
	ID          uuid.UUID `json:"id"`
	Plate       string    `json:"plate"`
	Description string    `json:"description"`
	CarrierID   uuid.UUID `json:"carrier_id"`
	CarrierName string    `json:"carrier_name,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Version     int       `json:"version"`
}

// ToVehicleResponse converts a domain Vehicle to VehicleResponse
func ToVehicleResponse(v *partner.Vehicle, carrierName string) VehicleResponse {
	return VehicleResponse{
		ID:          v.ID,
		Plate:       v.Plate,
		Description: v.Description,
		CarrierID:   v.CarrierID,
		CarrierName: carrierName,
		Status:      string(v.Status),
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
		Version:     v.Version,
	}
}

// ListFilter represents common filter options for partner listings
type ListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}
