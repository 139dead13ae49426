package fiscal

import (
	"fmt"

	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceKey is the natural identity of a fiscal document: the 4-tuple of
// document number, model, series and counterparty. It is a comparable value
// type so it can be used directly as a map key; two keys are equal iff all
// four components are equal.
type InvoiceKey struct {
	Number    string
	Model     string
	Series    string
	PartnerID uuid.UUID
}

// NewInvoiceKey validates and builds an invoice key. All four components
// are required; number, model and series are compared case-sensitively.
func NewInvoiceKey(number, model, series string, partnerID uuid.UUID) (InvoiceKey, error) {
	if number == "" {
		return InvoiceKey{}, shared.NewDomainError("INVALID_INVOICE_KEY", "Invoice number cannot be empty")
	}
	if model == "" {
		return InvoiceKey{}, shared.NewDomainError("INVALID_INVOICE_KEY", "Invoice model cannot be empty")
	}
	if series == "" {
		return InvoiceKey{}, shared.NewDomainError("INVALID_INVOICE_KEY", "Invoice series cannot be empty")
	}
	if partnerID == uuid.Nil {
		return InvoiceKey{}, shared.NewDomainError("INVALID_INVOICE_KEY", "Invoice counterparty ID cannot be empty")
	}
	return InvoiceKey{Number: number, Model: model, Series: series, PartnerID: partnerID}, nil
}

// Equals reports whether both keys identify the same document
func (k InvoiceKey) Equals(other InvoiceKey) bool {
	return k == other
}

// String renders the key in route form, number/model/series/partner
func (k InvoiceKey) String() string {
	return fmt.Sprintf("%s/%s/%s/%s", k.Number, k.Model, k.Series, k.PartnerID)
}
