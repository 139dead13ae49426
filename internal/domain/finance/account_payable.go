package finance

import (
	"fmt"
	"time"

	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/pizzaria/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayableStatus represents the status of an account payable
type PayableStatus string

const (
	PayableStatusPending   PayableStatus = "PENDING"
	PayableStatusPaid      PayableStatus = "PAID"
	PayableStatusCancelled PayableStatus = "CANCELLED"
)

// IsValid checks if the status is a valid PayableStatus
func (s PayableStatus) IsValid() bool {
	switch s {
	case PayableStatusPending, PayableStatusPaid, PayableStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of PayableStatus
func (s PayableStatus) String() string {
	return string(s)
}

// IsTerminal returns true if the payable is in a terminal state.
// PAID and CANCELLED are terminal; no transition leaves them.
func (s PayableStatus) IsTerminal() bool {
	return s == PayableStatusPaid || s == PayableStatusCancelled
}

// AccountPayable is one installment owed to a supplier.
// TotalAmount always satisfies
// total = original - discount + interest + penalty.
type AccountPayable struct {
	shared.BaseAggregateRoot
	DocumentNumber    string          `json:"document_number"`
	SupplierID        uuid.UUID       `json:"supplier_id"`
	SupplierName      string          `json:"supplier_name"`
	InstallmentNumber int             `json:"installment_number"`
	InstallmentCount  int             `json:"installment_count"`
	OriginalAmount    decimal.Decimal `json:"original_amount"`
	Discount          decimal.Decimal `json:"discount"`
	Interest          decimal.Decimal `json:"interest"`
	Penalty           decimal.Decimal `json:"penalty"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	Status            PayableStatus   `json:"status"`
	PaymentMethodID   *uuid.UUID      `json:"payment_method_id"`
	IssueDate         time.Time       `json:"issue_date"`
	DueDate           time.Time       `json:"due_date"`
	PaymentDate       *time.Time      `json:"payment_date"`
	CancelReason      string          `json:"cancel_reason"`
	Notes             string          `json:"notes"`
}

// NewAccountPayable creates a pending payable. Discount, interest and penalty
// default to zero when nil; the total is computed, never accepted from input.
func NewAccountPayable(
	documentNumber string,
	supplierID uuid.UUID,
	supplierName string,
	installmentNumber, installmentCount int,
	original valueobject.Money,
	discount, interest, penalty *decimal.Decimal,
	issueDate, dueDate time.Time,
) (*AccountPayable, error) {
	if documentNumber == "" {
		return nil, shared.NewDomainError("INVALID_DOCUMENT_NUMBER", "Document number cannot be empty")
	}
	if len(documentNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_DOCUMENT_NUMBER", "Document number cannot exceed 50 characters")
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be empty")
	}
	if supplierName == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot be empty")
	}
	if installmentCount < 1 {
		return nil, shared.NewDomainError("INVALID_INSTALLMENT", "Installment count must be at least 1")
	}
	if installmentNumber < 1 || installmentNumber > installmentCount {
		return nil, shared.NewDomainError("INVALID_INSTALLMENT",
			fmt.Sprintf("Installment number must be between 1 and %d", installmentCount))
	}
	if !original.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Original amount must be positive")
	}
	if dueDate.Before(issueDate) {
		return nil, shared.NewDomainError("INVALID_DUE_DATE", "Due date cannot precede issue date")
	}

	ap := &AccountPayable{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		DocumentNumber:    documentNumber,
		SupplierID:        supplierID,
		SupplierName:      supplierName,
		InstallmentNumber: installmentNumber,
		InstallmentCount:  installmentCount,
		OriginalAmount:    original.Amount(),
		Discount:          valueOrZero(discount),
		Interest:          valueOrZero(interest),
		Penalty:           valueOrZero(penalty),
		PaidAmount:        decimal.Zero,
		Status:            PayableStatusPending,
		IssueDate:         issueDate,
		DueDate:           dueDate,
	}
	if err := ap.recomputeTotal(); err != nil {
		return nil, err
	}
	return ap, nil
}

// UpdateAmounts replaces the monetary adjustments and recomputes the total.
// Only pending payables can be changed.
func (ap *AccountPayable) UpdateAmounts(original valueobject.Money, discount, interest, penalty *decimal.Decimal) error {
	if ap.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot modify payable in %s status", ap.Status))
	}
	if !original.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Original amount must be positive")
	}

	ap.OriginalAmount = original.Amount()
	ap.Discount = valueOrZero(discount)
	ap.Interest = valueOrZero(interest)
	ap.Penalty = valueOrZero(penalty)
	if err := ap.recomputeTotal(); err != nil {
		return err
	}
	ap.touch()
	return nil
}

// SetDueDate updates the due date of a pending payable
func (ap *AccountPayable) SetDueDate(dueDate time.Time) error {
	if ap.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", "Cannot modify due date for payable in terminal state")
	}
	if dueDate.Before(ap.IssueDate) {
		return shared.NewDomainError("INVALID_DUE_DATE", "Due date cannot precede issue date")
	}
	ap.DueDate = dueDate
	ap.touch()
	return nil
}

// SetNotes sets free-form notes
func (ap *AccountPayable) SetNotes(notes string) {
	ap.Notes = notes
	ap.touch()
}

// Pay settles the payable. The amount must be positive and must not exceed
// the total; the payment date defaults to now when nil. PAID is terminal.
func (ap *AccountPayable) Pay(amount valueobject.Money, paymentDate *time.Time, methodID uuid.UUID) error {
	if ap.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot pay payable in %s status", ap.Status))
	}
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if amount.Amount().GreaterThan(ap.TotalAmount) {
		return shared.NewDomainError("EXCEEDS_TOTAL",
			fmt.Sprintf("Payment amount %s exceeds total amount %s", amount.Amount().StringFixed(2), ap.TotalAmount.StringFixed(2)))
	}
	if methodID == uuid.Nil {
		return shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method ID cannot be empty")
	}

	when := time.Now()
	if paymentDate != nil {
		when = *paymentDate
	}

	ap.PaidAmount = amount.Amount()
	ap.PaymentMethodID = &methodID
	ap.PaymentDate = &when
	ap.Status = PayableStatusPaid
	ap.touch()
	return nil
}

// Cancel moves a pending payable to the terminal CANCELLED state
func (ap *AccountPayable) Cancel(reason string) error {
	if ap.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot cancel payable in %s status", ap.Status))
	}
	if reason == "" {
		return shared.NewDomainError("INVALID_REASON", "Cancel reason is required")
	}

	ap.Status = PayableStatusCancelled
	ap.CancelReason = reason
	ap.touch()
	return nil
}

// CanDelete reports whether hard deletion is allowed. Paid records are kept
// for accounting history; pending and cancelled records may be removed.
func (ap *AccountPayable) CanDelete() bool {
	return ap.Status != PayableStatusPaid
}

// IsPending returns true if the payable is pending
func (ap *AccountPayable) IsPending() bool {
	return ap.Status == PayableStatusPending
}

// IsPaid returns true if the payable is paid
func (ap *AccountPayable) IsPaid() bool {
	return ap.Status == PayableStatusPaid
}

// IsOverdue returns true if the payable is pending past its due date
func (ap *AccountPayable) IsOverdue() bool {
	return ap.Status == PayableStatusPending && time.Now().After(ap.DueDate)
}

// recomputeTotal maintains total = original - discount + interest + penalty
func (ap *AccountPayable) recomputeTotal() error {
	if ap.Discount.IsNegative() || ap.Interest.IsNegative() || ap.Penalty.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Discount, interest and penalty cannot be negative")
	}
	total := ap.OriginalAmount.Sub(ap.Discount).Add(ap.Interest).Add(ap.Penalty)
	if !total.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Total amount must remain positive")
	}
	ap.TotalAmount = total
	return nil
}

func (ap *AccountPayable) touch() {
	ap.Touch()
	ap.IncrementVersion()
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
