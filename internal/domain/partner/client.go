package partner

import (
	"strings"
	"time"

	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/pizzaria/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Client represents a customer of the distribution business.
// It is the receivable counterparty for exit invoices.
type Client struct {
	shared.BaseAggregateRoot
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	TradeName   string          `json:"trade_name"`
	Document    string          `json:"document"` // CPF or CNPJ, digits only
	ContactName string          `json:"contact_name"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Address     string          `json:"address"`
	CityID      *uuid.UUID      `json:"city_id"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	Status      Status          `json:"status"`
	Notes       string          `json:"notes"`
}

// NewClient creates a new active client
func NewClient(code, name, document string) (*Client, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Client code cannot be empty")
	}
	if len(code) > 50 {
		return nil, shared.NewDomainError("INVALID_CODE", "Client code cannot exceed 50 characters")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Client name cannot exceed 200 characters")
	}
	document = normalizeDocument(document)
	if document != "" && len(document) != 11 && len(document) != 14 {
		return nil, shared.NewDomainError("INVALID_DOCUMENT", "Document must be a CPF (11 digits) or CNPJ (14 digits)")
	}

	return &Client{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Name:              name,
		Document:          document,
		CreditLimit:       decimal.Zero,
		Status:            StatusActive,
	}, nil
}

// Update changes the client's name and trade name
func (c *Client) Update(name, tradeName string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot exceed 200 characters")
	}
	if len(tradeName) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Trade name cannot exceed 200 characters")
	}

	c.Name = name
	c.TradeName = tradeName
	c.touch()
	return nil
}

// SetDocument replaces the client's CPF/CNPJ
func (c *Client) SetDocument(document string) error {
	document = normalizeDocument(document)
	if document != "" && len(document) != 11 && len(document) != 14 {
		return shared.NewDomainError("INVALID_DOCUMENT", "Document must be a CPF (11 digits) or CNPJ (14 digits)")
	}
	c.Document = document
	c.touch()
	return nil
}

// SetContact sets contact information
func (c *Client) SetContact(contactName, phone, email string) error {
	if len(contactName) > 100 {
		return shared.NewDomainError("INVALID_CONTACT", "Contact name cannot exceed 100 characters")
	}
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}

	c.ContactName = contactName
	c.Phone = phone
	c.Email = strings.ToLower(email)
	c.touch()
	return nil
}

// SetAddress sets the street address and city reference
func (c *Client) SetAddress(address string, cityID *uuid.UUID) error {
	if len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}
	c.Address = address
	c.CityID = cityID
	c.touch()
	return nil
}

// SetCreditLimit sets the credit limit
func (c *Client) SetCreditLimit(limit valueobject.Money) error {
	if limit.IsNegative() {
		return shared.NewDomainError("INVALID_CREDIT_LIMIT", "Credit limit cannot be negative")
	}
	c.CreditLimit = limit.Amount()
	c.touch()
	return nil
}

// SetNotes sets free-form notes
func (c *Client) SetNotes(notes string) {
	c.Notes = notes
	c.touch()
}

// Activate sets the client to active
func (c *Client) Activate() error {
	if c.Status == StatusActive {
		return shared.NewDomainError("INVALID_STATE", "Client is already active")
	}
	c.Status = StatusActive
	c.touch()
	return nil
}

// Deactivate sets the client to inactive
func (c *Client) Deactivate() error {
	if c.Status == StatusInactive {
		return shared.NewDomainError("INVALID_STATE", "Client is already inactive")
	}
	c.Status = StatusInactive
	c.touch()
	return nil
}

// IsActive returns true if the client is active
func (c *Client) IsActive() bool {
	return c.Status == StatusActive
}

func (c *Client) touch() {
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// normalizeDocument strips formatting characters from a CPF/CNPJ
func normalizeDocument(document string) string {
	var b strings.Builder
	for _, r := range document {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
