package fiscal

import (
	"time"

	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExitInvoice is an outbound fiscal document issued to a client. Shipment
// fields reference the carrier and vehicle that move the goods.
type ExitInvoice struct {
	shared.BaseAggregateRoot
	Key                InvoiceKey      `json:"key"`
	ClientName         string          `json:"client_name"`
	EmissionDate       time.Time       `json:"emission_date"`
	DepartureDate      time.Time       `json:"departure_date"`
	Items              []InvoiceItem   `json:"items"`
	ProductTotal       decimal.Decimal `json:"product_total"`
	Freight            decimal.Decimal `json:"freight"`
	Insurance          decimal.Decimal `json:"insurance"`
	OtherExpenses      decimal.Decimal `json:"other_expenses"`
	Discount           decimal.Decimal `json:"discount"`
	InvoiceTotal       decimal.Decimal `json:"invoice_total"`
	PaymentConditionID *uuid.UUID      `json:"payment_condition_id"`
	CarrierID          *uuid.UUID      `json:"carrier_id"`
	VehicleID          *uuid.UUID      `json:"vehicle_id"`
	Notes              string          `json:"notes"`
}

// NewExitInvoice builds an exit invoice with the same allocation and
// reconciliation rules as entry invoices.
func NewExitInvoice(
	key InvoiceKey,
	clientName string,
	emissionDate, departureDate time.Time,
	items []InvoiceItem,
	productTotal, freight, insurance, otherExpenses, discount decimal.Decimal,
	paymentConditionID, carrierID, vehicleID *uuid.UUID,
) (*ExitInvoice, error) {
	if clientName == "" {
		return nil, shared.NewDomainError("INVALID_CLIENT_NAME", "Client name cannot be empty")
	}
	if departureDate.Before(emissionDate) {
		return nil, shared.NewDomainError("INVALID_DATES", "Departure date cannot precede emission date")
	}
	if vehicleID != nil && carrierID == nil {
		return nil, shared.NewDomainError("INVALID_SHIPMENT", "Vehicle requires a carrier")
	}

	inv := &ExitInvoice{
		BaseAggregateRoot:  shared.NewBaseAggregateRoot(),
		Key:                key,
		ClientName:         clientName,
		EmissionDate:       emissionDate,
		DepartureDate:      departureDate,
		Items:              items,
		ProductTotal:       productTotal,
		Freight:            freight,
		Insurance:          insurance,
		OtherExpenses:      otherExpenses,
		Discount:           discount,
		PaymentConditionID: paymentConditionID,
		CarrierID:          carrierID,
		VehicleID:          vehicleID,
	}
	if err := inv.recompute(); err != nil {
		return nil, err
	}
	return inv, nil
}

// ReplaceItems swaps the item list and recomputes allocation and totals
func (inv *ExitInvoice) ReplaceItems(items []InvoiceItem, productTotal, freight, insurance, otherExpenses, discount decimal.Decimal) error {
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

// SetDates moves the document dates keeping departure on or after emission
func (inv *ExitInvoice) SetDates(emissionDate, departureDate time.Time) error {
	if departureDate.Before(emissionDate) {
		return shared.NewDomainError("INVALID_DATES", "Departure date cannot precede emission date")
	}
	inv.EmissionDate = emissionDate
	inv.DepartureDate = departureDate
	inv.touch()
	return nil
}

// SetShipment updates the carrier and vehicle references
func (inv *ExitInvoice) SetShipment(carrierID, vehicleID *uuid.UUID) error {
	if vehicleID != nil && carrierID == nil {
		return shared.NewDomainError("INVALID_SHIPMENT", "Vehicle requires a carrier")
	}
	inv.CarrierID = carrierID
	inv.VehicleID = vehicleID
	inv.touch()
	return nil
}

// SetPaymentCondition updates the payment condition reference
func (inv *ExitInvoice) SetPaymentCondition(conditionID *uuid.UUID) {
	inv.PaymentConditionID = conditionID
	inv.touch()
}

// SetNotes sets free-form notes
func (inv *ExitInvoice) SetNotes(notes string) {
	inv.Notes = notes
	inv.touch()
}

// TotalCost returns the invoice total, the base value for receivable generation
func (inv *ExitInvoice) TotalCost() decimal.Decimal {
	return inv.InvoiceTotal
}

func (inv *ExitInvoice) recompute() error {
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

func (inv *ExitInvoice) touch() {
	inv.Touch()
	inv.IncrementVersion()
}
