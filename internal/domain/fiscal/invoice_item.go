package fiscal

import (
	"fmt"

	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// reconcileTolerance is the maximum accepted difference between the declared
// document totals and the sum of item totals.
var reconcileTolerance = decimal.NewFromFloat(0.01)

// InvoiceItem is one product line of a fiscal document. FreightShare,
// InsuranceShare and ExpenseShare are the pro-rata portions of the document
// level charges allocated to the line; FinalCost is the landed cost of the
// line after discount and allocated charges.
type InvoiceItem struct {
	LineNumber     int             `json:"line_number"`
	ProductID      uuid.UUID       `json:"product_id"`
	ProductName    string          `json:"product_name"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Discount       decimal.Decimal `json:"discount"`
	GrossTotal     decimal.Decimal `json:"gross_total"`
	FreightShare   decimal.Decimal `json:"freight_share"`
	InsuranceShare decimal.Decimal `json:"insurance_share"`
	ExpenseShare   decimal.Decimal `json:"expense_share"`
	FinalCost      decimal.Decimal `json:"final_cost"`
}

// NewInvoiceItem builds a line item; the gross total is quantity times unit
// price minus discount, rounded to 2 decimal places. The charge shares are
// assigned later by allocateCharges.
func NewInvoiceItem(lineNumber int, productID uuid.UUID, productName string, quantity, unitPrice, discount decimal.Decimal) (InvoiceItem, error) {
	if lineNumber < 1 {
		return InvoiceItem{}, shared.NewDomainError("INVALID_ITEM", "Item line number must be at least 1")
	}
	if productID == uuid.Nil {
		return InvoiceItem{}, shared.NewDomainError("INVALID_ITEM", fmt.Sprintf("Item %d: product ID cannot be empty", lineNumber))
	}
	if !quantity.IsPositive() {
		return InvoiceItem{}, shared.NewDomainError("INVALID_ITEM", fmt.Sprintf("Item %d: quantity must be positive", lineNumber))
	}
	if unitPrice.IsNegative() {
		return InvoiceItem{}, shared.NewDomainError("INVALID_ITEM", fmt.Sprintf("Item %d: unit price cannot be negative", lineNumber))
	}
	if discount.IsNegative() {
		return InvoiceItem{}, shared.NewDomainError("INVALID_ITEM", fmt.Sprintf("Item %d: discount cannot be negative", lineNumber))
	}

	gross := quantity.Mul(unitPrice).Sub(discount).Round(2)
	if gross.IsNegative() {
		return InvoiceItem{}, shared.NewDomainError("INVALID_ITEM", fmt.Sprintf("Item %d: discount exceeds line total", lineNumber))
	}

	return InvoiceItem{
		LineNumber:  lineNumber,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Discount:    discount,
		GrossTotal:  gross,
	}, nil
}

// sumGross returns the sum of item gross totals
func sumGross(items []InvoiceItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.GrossTotal)
	}
	return sum
}

// allocateCharges distributes freight, insurance and other expenses across
// the items proportionally to their gross totals. Each share is rounded to
// 2 decimal places and the last item absorbs the rounding remainder so the
// shares sum exactly to the declared charge.
func allocateCharges(items []InvoiceItem, freight, insurance, expenses decimal.Decimal) error {
	if len(items) == 0 {
		return shared.NewDomainError("INVALID_ITEMS", "Invoice must have at least one item")
	}
	productTotal := sumGross(items)
	if !productTotal.IsPositive() {
		return shared.NewDomainError("INVALID_ITEMS", "Sum of item totals must be positive")
	}

	freightLeft := freight
	insuranceLeft := insurance
	expensesLeft := expenses
	for i := range items {
		if i == len(items)-1 {
			items[i].FreightShare = freightLeft
			items[i].InsuranceShare = insuranceLeft
			items[i].ExpenseShare = expensesLeft
		} else {
			ratio := items[i].GrossTotal.Div(productTotal)
			items[i].FreightShare = freight.Mul(ratio).Round(2)
			items[i].InsuranceShare = insurance.Mul(ratio).Round(2)
			items[i].ExpenseShare = expenses.Mul(ratio).Round(2)
			freightLeft = freightLeft.Sub(items[i].FreightShare)
			insuranceLeft = insuranceLeft.Sub(items[i].InsuranceShare)
			expensesLeft = expensesLeft.Sub(items[i].ExpenseShare)
		}
		items[i].FinalCost = items[i].GrossTotal.
			Add(items[i].FreightShare).
			Add(items[i].InsuranceShare).
			Add(items[i].ExpenseShare)
	}
	return nil
}

// reconcile checks that the declared product total matches the sum of item
// gross totals within the accepted tolerance.
func reconcile(declared, computed decimal.Decimal) error {
	diff := declared.Sub(computed).Abs()
	if diff.GreaterThan(reconcileTolerance) {
		return shared.NewDomainError("TOTALS_MISMATCH",
			fmt.Sprintf("Declared product total %s does not match sum of items %s", declared.StringFixed(2), computed.StringFixed(2)))
	}
	return nil
}
