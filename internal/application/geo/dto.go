package geo

import (
	"time"

	"github.com/pizzaria/backend/internal/domain/geo"
	"github.com/google/uuid"
)

// =============================================================================
// Country DTOs
// =============================================================================

// CreateCountryRequest represents a request to create a new country
type CreateCountryRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	Abbreviation string `json:"abbreviation" binding:"required,min=1,max=5"`
}

// UpdateCountryRequest represents a request to update a country
type UpdateCountryRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	Abbreviation string `json:"abbreviation" binding:"required,min=1,max=5"`
}

// CountryResponse represents a country in API responses
type CountryResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Version      int       `json:"version"`
}

// ToCountryResponse converts a domain Country to CountryResponse
func ToCountryResponse(c *geo.Country) CountryResponse {
	return CountryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Abbreviation: c.Abbreviation,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
		Version:      c.Version,
	}
}

// =============================================================================
// State DTOs
// =============================================================================

// CreateStateRequest represents a request to create a new state
type CreateStateRequest struct {
	Name      string    `json:"name" binding:"required,min=1,max=100"`
	UF        string    `json:"uf" binding:"required,len=2"`
	CountryID uuid.UUID `json:"country_id" binding:"required"`
}

// UpdateStateRequest represents a request to update a state
type UpdateStateRequest struct {
	Name      string    `json:"name" binding:"required,min=1,max=100"`
	UF        string    `json:"uf" binding:"required,len=2"`
	CountryID uuid.UUID `json:"country_id" binding:"required"`
}

// StateResponse represents a state in API responses. CountryName is derived
// from the referenced country and only populated on the outbound path.
type StateResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	UF          string    `json:"uf"`
	CountryID   uuid.UUID `json:"country_id"`
	CountryName string    `json:"country_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Version     int       `json:"version"`
}

// ToStateResponse converts a domain State to StateResponse
func ToStateResponse(s *geo.State, country *geo.Country) StateResponse {
	resp := StateResponse{
		ID:        s.ID,
		Name:      s.Name,
		UF:        s.UF,
		CountryID: s.CountryID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		Version:   s.Version,
	}
	if country != nil {
		resp.CountryName = country.Name
	}
	return resp
}

// =============================================================================
// City DTOs
// =============================================================================

// CreateCityRequest represents a request to create a new city
type CreateCityRequest struct {
	Name     string    `json:"name" binding:"required,min=1,max=100"`
	IBGECode string    `json:"ibge_code" binding:"max=10"`
	StateID  uuid.UUID `json:"state_id" binding:"required"`
}

// UpdateCityRequest represents a request to update a city
type UpdateCityRequest struct {
	Name     string    `json:"name" binding:"required,min=1,max=100"`
	IBGECode string    `json:"ibge_code" binding:"max=10"`
	StateID  uuid.UUID `json:"state_id" binding:"required"`
}

// CityResponse represents a city in API responses. The country fields are
// derived transitively through the city's state.
type CityResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	IBGECode    string    `json:"ibge_code"`
	StateID     uuid.UUID `json:"state_id"`
	StateName   string    `json:"state_name,omitempty"`
	UF          string    `json:"uf,omitempty"`
	CountryID   uuid.UUID `json:"country_id,omitempty"`
	CountryName string    `json:"country_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Version     int       `json:"version"`
}

// ToCityResponse converts a domain City to CityResponse; state and country
// are optional and only fill the derived display fields when present.
func ToCityResponse(c *geo.City, state *geo.State, country *geo.Country) CityResponse {
	resp := CityResponse{
		ID:        c.ID,
		Name:      c.Name,
		IBGECode:  c.IBGECode,
		StateID:   c.StateID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Version:   c.Version,
	}
	if state != nil {
		resp.StateName = state.Name
		resp.UF = state.UF
		resp.CountryID = state.CountryID
	}
	if country != nil {
		resp.CountryName = country.Name
	}
	return resp
}

// ListFilter represents common filter options for geo listings
type ListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}
