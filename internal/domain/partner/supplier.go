package partner

import (
	"strings"
	"time"

	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Supplier represents a goods supplier.
// It is the payable counterparty for entry invoices.
type Supplier struct {
	shared.BaseAggregateRoot
	Code              string     `json:"code"`
	Name              string     `json:"name"`
	TradeName         string     `json:"trade_name"`
	CNPJ              string     `json:"cnpj"` // digits only
	StateRegistration string     `json:"state_registration"`
	ContactName       string     `json:"contact_name"`
	Phone             string     `json:"phone"`
	Email             string     `json:"email"`
	Address           string     `json:"address"`
	CityID            *uuid.UUID `json:"city_id"`
	Status            Status     `json:"status"`
	Notes             string     `json:"notes"`
}

// NewSupplier creates a new active supplier
func NewSupplier(code, name, cnpj string) (*Supplier, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Supplier code cannot be empty")
	}
	if len(code) > 50 {
		return nil, shared.NewDomainError("INVALID_CODE", "Supplier code cannot exceed 50 characters")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Supplier name cannot exceed 200 characters")
	}
	cnpj = normalizeDocument(cnpj)
	if cnpj != "" && len(cnpj) != 14 {
		return nil, shared.NewDomainError("INVALID_CNPJ", "CNPJ must have 14 digits")
	}

	return &Supplier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Name:              name,
		CNPJ:              cnpj,
		Status:            StatusActive,
	}, nil
}

// Update changes the supplier's name and trade name
func (s *Supplier) Update(name, tradeName string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot exceed 200 characters")
	}
	if len(tradeName) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Trade name cannot exceed 200 characters")
	}

	s.Name = name
	s.TradeName = tradeName
	s.touch()
	return nil
}

// SetCNPJ replaces the supplier's CNPJ
func (s *Supplier) SetCNPJ(cnpj string) error {
	cnpj = normalizeDocument(cnpj)
	if cnpj != "" && len(cnpj) != 14 {
		return shared.NewDomainError("INVALID_CNPJ", "CNPJ must have 14 digits")
	}
	s.CNPJ = cnpj
	s.touch()
	return nil
}

// SetStateRegistration sets the state tax registration number
func (s *Supplier) SetStateRegistration(inscricao string) error {
	if len(inscricao) > 50 {
		return shared.NewDomainError("INVALID_STATE_REGISTRATION", "State registration cannot exceed 50 characters")
	}
	s.StateRegistration = inscricao
	s.touch()
	return nil
}

// SetContact sets contact information
func (s *Supplier) SetContact(contactName, phone, email string) error {
	if len(contactName) > 100 {
		return shared.NewDomainError("INVALID_CONTACT", "Contact name cannot exceed 100 characters")
	}
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}

	s.ContactName = contactName
	s.Phone = phone
	s.Email = strings.ToLower(email)
	s.touch()
	return nil
}

// SetAddress sets the street address and city reference
func (s *Supplier) SetAddress(address string, cityID *uuid.UUID) error {
	if len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}
	s.Address = address
	s.CityID = cityID
	s.touch()
	return nil
}

// SetNotes sets free-form notes
func (s *Supplier) SetNotes(notes string) {
	s.Notes = notes
	s.touch()
}

// Activate sets the supplier to active
func (s *Supplier) Activate() error {
	if s.Status == StatusActive {
		return shared.NewDomainError("INVALID_STATE", "Supplier is already active")
	}
	s.Status = StatusActive
	s.touch()
	return nil
}

// Deactivate sets the supplier to inactive
func (s *Supplier) Deactivate() error {
	if s.Status == StatusInactive {
		return shared.NewDomainError("INVALID_STATE", "Supplier is already inactive")
	}
	s.Status = StatusInactive
	s.touch()
	return nil
}

// IsActive returns true if the supplier is active
func (s *Supplier) IsActive() bool {
	return s.Status == StatusActive
}

func (s *Supplier) touch() {
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}
