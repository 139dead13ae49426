package finance

import (
	"strings"

	"github.com/pizzaria/backend/internal/domain/shared"
)

// PaymentMethod is a means of settlement (cash, card, bank slip, PIX...)
// referenced by payment conditions and by pay/receive operations.
type PaymentMethod struct {
	shared.BaseAggregateRoot
	Code        string `json:"code"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// NewPaymentMethod creates a new active payment method
func NewPaymentMethod(code, description string) (*PaymentMethod, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Payment method code cannot be empty")
	}
	if len(code) > 50 {
		return nil, shared.NewDomainError("INVALID_CODE", "Payment method code cannot exceed 50 characters")
	}
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Payment method description cannot be empty")
	}
	if len(description) > 200 {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Payment method description cannot exceed 200 characters")
	}

	return &PaymentMethod{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Description:       description,
		Active:            true,
	}, nil
}

// Update changes the description
func (m *PaymentMethod) Update(description string) error {
	if description == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Payment method description cannot be empty")
	}
	if len(description) > 200 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Payment method description cannot exceed 200 characters")
	}
	m.Description = description
	m.touch()
	return nil
}

// Activate marks the method usable
func (m *PaymentMethod) Activate() {
	m.Active = true
	m.touch()
}

// Deactivate marks the method unusable for new documents
func (m *PaymentMethod) Deactivate() {
	m.Active = false
	m.touch()
}

func (m *PaymentMethod) touch() {
	m.Touch()
	m.IncrementVersion()
}
