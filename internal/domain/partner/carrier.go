package partner

import (
	"strings"
	"time"

	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Carrier represents a freight carrier referenced by fiscal invoices.
type Carrier struct {
	shared.BaseAggregateRoot
	Code    string     `json:"code"`
	Name    string     `json:"name"`
	CNPJ    string     `json:"cnpj"`
	Phone   string     `json:"phone"`
	Email   string     `json:"email"`
	Address string     `json:"address"`
	CityID  *uuid.UUID `json:"city_id"`
	Status  Status     `json:"status"`
}

// NewCarrier creates a new active carrier
func NewCarrier(code, name, cnpj string) (*Carrier, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Carrier code cannot be empty")
	}
	if len(code) > 50 {
		return nil, shared.NewDomainError("INVALID_CODE", "Carrier code cannot exceed 50 characters")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Carrier name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Carrier name cannot exceed 200 characters")
	}
	cnpj = normalizeDocument(cnpj)
	if cnpj != "" && len(cnpj) != 14 {
		return nil, shared.NewDomainError("INVALID_CNPJ", "CNPJ must have 14 digits")
	}

	return &Carrier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Name:              name,
		CNPJ:              cnpj,
		Status:            StatusActive,
	}, nil
}

// Update changes the carrier's mutable fields
func (c *Carrier) Update(name, phone, email, address string, cityID *uuid.UUID) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Carrier name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Carrier name cannot exceed 200 characters")
	}
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}

	c.Name = name
	c.Phone = phone
	c.Email = strings.ToLower(email)
	c.Address = address
	c.CityID = cityID
	c.touch()
	return nil
}

// Activate sets the carrier to active
func (c *Carrier) Activate() error {
	if c.Status == StatusActive {
		return shared.NewDomainError("INVALID_STATE", "Carrier is already active")
	}
	c.Status = StatusActive
	c.touch()
	return nil
}

// Deactivate sets the carrier to inactive
func (c *Carrier) Deactivate() error {
	if c.Status == StatusInactive {
		return shared.NewDomainError("INVALID_STATE", "Carrier is already inactive")
	}
	c.Status = StatusInactive
	c.touch()
	return nil
}

// IsActive returns true if the carrier is active
func (c *Carrier) IsActive() bool {
	return c.Status == StatusActive
}

func (c *Carrier) touch() {
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}
