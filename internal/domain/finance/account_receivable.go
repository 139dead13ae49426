package finance

import (
	"fmt"
	"time"

	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/pizzaria/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceivableStatus represents the status of an account receivable
type ReceivableStatus string

const (
	ReceivableStatusPending   ReceivableStatus = "PENDING"
	ReceivableStatusReceived  ReceivableStatus = "RECEIVED"
	ReceivableStatusCancelled ReceivableStatus = "CANCELLED"
)

// IsValid checks if the status is a valid ReceivableStatus
func (s ReceivableStatus) IsValid() bool {
	switch s {
	case ReceivableStatusPending, ReceivableStatusReceived, ReceivableStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of ReceivableStatus
func (s ReceivableStatus) String() string {
	return string(s)
}

// IsTerminal returns true if the receivable is in a terminal state
func (s ReceivableStatus) IsTerminal() bool {
	return s == ReceivableStatusReceived || s == ReceivableStatusCancelled
}

// AccountReceivable is one installment owed by a client. It mirrors the
// payable lifecycle with RECEIVED taking the place of PAID.
type AccountReceivable struct {
	shared.BaseAggregateRoot
	DocumentNumber    string           `json:"document_number"`
	ClientID          uuid.UUID        `json:"client_id"`
	ClientName        string           `json:"client_name"`
	InstallmentNumber int              `json:"installment_number"`
	InstallmentCount  int              `json:"installment_count"`
	OriginalAmount    decimal.Decimal  `json:"original_amount"`
	Discount          decimal.Decimal  `json:"discount"`
	Interest          decimal.Decimal  `json:"interest"`
	Penalty           decimal.Decimal  `json:"penalty"`
	TotalAmount       decimal.Decimal  `json:"total_amount"`
	ReceivedAmount    decimal.Decimal  `json:"received_amount"`
	Status            ReceivableStatus `json:"status"`
	PaymentMethodID   *uuid.UUID       `json:"payment_method_id"`
	IssueDate         time.Time        `json:"issue_date"`
	DueDate           time.Time        `json:"due_date"`
	ReceiptDate       *time.Time       `json:"receipt_date"`
	CancelReason      string           `json:"cancel_reason"`
	Notes             string           `json:"notes"`
}

// NewAccountReceivable creates a pending receivable
func NewAccountReceivable(
	documentNumber string,
	clientID uuid.UUID,
	clientName string,
	installmentNumber, installmentCount int,
	original valueobject.Money,
	discount, interest, penalty *decimal.Decimal,
	issueDate, dueDate time.Time,
) (*AccountReceivable, error) {
	if documentNumber == "" {
		return nil, shared.NewDomainError("INVALID_DOCUMENT_NUMBER", "Document number cannot be empty")
	}
	if len(documentNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_DOCUMENT_NUMBER", "Document number cannot exceed 50 characters")
	}
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Client ID cannot be empty")
	}
	if clientName == "" {
		return nil, shared.NewDomainError("INVALID_CLIENT_NAME", "Client name cannot be empty")
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

	ar := &AccountReceivable{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		DocumentNumber:    documentNumber,
		ClientID:          clientID,
		ClientName:        clientName,
		InstallmentNumber: installmentNumber,
		InstallmentCount:  installmentCount,
		OriginalAmount:    original.Amount(),
		Discount:          valueOrZero(discount),
		Interest:          valueOrZero(interest),
		Penalty:           valueOrZero(penalty),
		ReceivedAmount:    decimal.Zero,
		Status:            ReceivableStatusPending,
		IssueDate:         issueDate,
		DueDate:           dueDate,
	}
	if err := ar.recomputeTotal(); err != nil {
		return nil, err
	}
	return ar, nil
}

// UpdateAmounts replaces the monetary adjustments and recomputes the total
func (ar *AccountReceivable) UpdateAmounts(original valueobject.Money, discount, interest, penalty *decimal.Decimal) error {
	if ar.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot modify receivable in %s status", ar.Status))
	}
	if !original.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Original amount must be positive")
	}

	ar.OriginalAmount = original.Amount()
	ar.Discount = valueOrZero(discount)
	ar.Interest = valueOrZero(interest)
	ar.Penalty = valueOrZero(penalty)
	if err := ar.recomputeTotal(); err != nil {
		return err
	}
	ar.touch()
	return nil
}

// SetDueDate updates the due date of a pending receivable
func (ar *AccountReceivable) SetDueDate(dueDate time.Time) error {
	if ar.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", "Cannot modify due date for receivable in terminal state")
	}
	if dueDate.Before(ar.IssueDate) {
		return shared.NewDomainError("INVALID_DUE_DATE", "Due date cannot precede issue date")
	}
	ar.DueDate = dueDate
	ar.touch()
	return nil
}

// SetNotes sets free-form notes
func (ar *AccountReceivable) SetNotes(notes string) {
	ar.Notes = notes
	ar.touch()
}

// Receive settles the receivable. The amount must be positive and must not
// exceed the total; the receipt date defaults to now when nil.
func (ar *AccountReceivable) Receive(amount valueobject.Money, receiptDate *time.Time, methodID uuid.UUID) error {
	if ar.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot receive receivable in %s status", ar.Status))
	}
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Receipt amount must be positive")
	}
	if amount.Amount().GreaterThan(ar.TotalAmount) {
		return shared.NewDomainError("EXCEEDS_TOTAL",
			fmt.Sprintf("Receipt amount %s exceeds total amount %s", amount.Amount().StringFixed(2), ar.TotalAmount.StringFixed(2)))
	}
	if methodID == uuid.Nil {
		return shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method ID cannot be empty")
	}

	when := time.Now()
	if receiptDate != nil {
		when = *receiptDate
	}

	ar.ReceivedAmount = amount.Amount()
	ar.PaymentMethodID = &methodID
	ar.ReceiptDate = &when
	ar.Status = ReceivableStatusReceived
	ar.touch()
	return nil
}

// Cancel moves a pending receivable to the terminal CANCELLED state
func (ar *AccountReceivable) Cancel(reason string) error {
	if ar.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot cancel receivable in %s status", ar.Status))
	}
	if reason == "" {
		return shared.NewDomainError("INVALID_REASON", "Cancel reason is required")
	}

	ar.Status = ReceivableStatusCancelled
	ar.CancelReason = reason
	ar.touch()
	return nil
}

// CanDelete reports whether hard deletion is allowed
func (ar *AccountReceivable) CanDelete() bool {
	return ar.Status != ReceivableStatusReceived
}

// IsPending returns true if the receivable is pending
func (ar *AccountReceivable) IsPending() bool {
	return ar.Status == ReceivableStatusPending
}

// IsReceived returns true if the receivable is received
func (ar *AccountReceivable) IsReceived() bool {
	return ar.Status == ReceivableStatusReceived
}

// IsOverdue returns true if the receivable is pending past its due date
func (ar *AccountReceivable) IsOverdue() bool {
	return ar.Status == ReceivableStatusPending && time.Now().After(ar.DueDate)
}

func (ar *AccountReceivable) recomputeTotal() error {
	if ar.Discount.IsNegative() || ar.Interest.IsNegative() || ar.Penalty.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Discount, interest and penalty cannot be negative")
	}
	total := ar.OriginalAmount.Sub(ar.Discount).Add(ar.Interest).Add(ar.Penalty)
	if !total.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Total amount must remain positive")
	}
	ar.TotalAmount = total
	return nil
}

func (ar *AccountReceivable) touch() {
	ar.Touch()
	ar.IncrementVersion()
}
