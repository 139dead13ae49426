package fiscal

import (
	"time"

	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryInvoice is an inbound fiscal document received from a supplier.
// Its natural identity is the composite Key; the surrogate row ID exists
// only for persistence. The key is immutable after creation: changing any
// key component means a different document.
type EntryInvoice struct {
	shared.BaseAggregateRoot
	Key                InvoiceKey      `json:"key"`
	SupplierName       string          `json:"supplier_name"`
	EmissionDate       time.Time       `json:"emission_date"`
	ArrivalDate        time.Time       `json:"arrival_date"`
	Items              []InvoiceItem   `json:"items"`
	ProductTotal       decimal.Decimal `json:"product_total"`
	Freight            decimal.Decimal `json:"freight"`
	Insurance          decimal.Decimal `json:"insurance"`
	OtherExpenses      decimal.Decimal `json:"other_expenses"`
	Discount           decimal.Decimal `json:"discount"`
	InvoiceTotal       decimal.Decimal `json:"invoice_total"`
	PaymentConditionID *uuid.UUID      `json:"payment_condition_id"`
	Notes              string          `json:"notes"`
}

// NewEntryInvoice builds an entry invoice, allocates document charges across
// the items pro rata and reconciles the declared product total against the
// sum of item totals. The invoice total is computed, never accepted.
func NewEntryInvoice(
	key InvoiceKey,
	supplierName string,
	emissionDate, arrivalDate time.Time,
	items []InvoiceItem,
	productTotal, freight, insurance, otherExpenses, discount decimal.Decimal,
	paymentConditionID *uuid.UUID,
) (*EntryInvoice, error) {
	if supplierName == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot be empty")
	}
	if arrivalDate.Before(emissionDate) {
		return nil, shared.NewDomainError("INVALID_DATES", "Arrival date cannot precede emission date")
	}

	inv := &EntryInvoice{
		BaseAggregateRoot:  shared.NewBaseAggregateRoot(),
		Key:                key,
		SupplierName:       supplierName,
		EmissionDate:       emissionDate,
		ArrivalDate:        arrivalDate,
		Items:              items,
		ProductTotal:       productTotal,
		Freight:            freight,
		Insurance:          insurance,
		OtherExpenses:      otherExpenses,
		Discount:           discount,
		PaymentConditionID: paymentConditionID,
	}
	if err := inv.recompute(); err != nil {
		return nil, err
	}
	return inv, nil
}

// ReplaceItems swaps the item list and recomputes charge allocation and
// totals. The composite key stays untouched.
func (inv *EntryInvoice) ReplaceItems(items []InvoiceItem, productTotal, freight, insurance, otherExpenses, discount decimal.Decimal) error {
	prevItems := inv.Items
	prev := [5]decimal.Decimal{inv.ProductTotal, inv.Freight, inv.Insurance, inv.OtherExpenses, inv.Discount}

	inv.Items = items
	inv.ProductTotal = productTotal
	inv.Freight = freight
	inv.Insurance = insurance
	inv.OtherExpenses = otherExpenses
	inv.Discount = discount
	if err := inv.recompute(); err != nil {
		inv.Items = prevItems
		inv.ProductTotal, inv.Freight, inv.Insurance, inv.OtherExpenses, inv.Discount = prev[0], prev[1], prev[2], prev[3], prev[4]
		return err
	}
	inv.touch()
	return nil
}

// SetDates moves the document dates keeping arrival on or after emission
func (inv *EntryInvoice) SetDates(emissionDate, arrivalDate time.Time) error {
	if arrivalDate.Before(emissionDate) {
		return shared.NewDomainError("INVALID_DATES", "Arrival date cannot precede emission date")
	}
	inv.EmissionDate = emissionDate
	inv.ArrivalDate = arrivalDate
	inv.touch()
	return nil
}

// SetPaymentCondition updates the payment condition reference
func (inv *EntryInvoice) SetPaymentCondition(conditionID *uuid.UUID) {
	inv.PaymentConditionID = conditionID
	inv.touch()
}

// SetNotes sets free-form notes
func (inv *EntryInvoice) SetNotes(notes string) {
	inv.Notes = notes
	inv.touch()
}

// TotalCost returns the invoice total, the base value for payable generation
func (inv *EntryInvoice) TotalCost() decimal.Decimal {
	return inv.InvoiceTotal
}

func (inv *EntryInvoice) recompute() error {
	if inv.Freight.IsNegative() || inv.Insurance.IsNegative() || inv.OtherExpenses.IsNegative() || inv.Discount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Freight, insurance, expenses and discount cannot be negative")
	}
	if err := reconcile(inv.ProductTotal, sumGross(inv.Items)); err != nil {
		return err
	}
	if err := allocateCharges(inv.Items, inv.Freight, inv.Insurance, inv.OtherExpenses); err != nil {
		return err
	}
	total := inv.ProductTotal.Add(inv.Freight).Add(inv.Insurance).Add(inv.OtherExpenses).Sub(inv.Discount)
	if !total.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Invoice total must be positive")
	}
	inv.InvoiceTotal = total
	return nil
}

func (inv *EntryInvoice) touch() {
	inv.Touch()
	inv.IncrementVersion()
}
