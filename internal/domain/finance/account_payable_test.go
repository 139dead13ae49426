package finance

import (
	"strings"
	"testing"
	"time"

	"github.com/pizzaria/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test PayableStatus enum

func TestPayableStatus_String(t *testing.T) {
	tests := []struct {
		status   PayableStatus
		expected string
	}{
		{PayableStatusPending, "PENDING"},
		{PayableStatusPaid, "PAID"},
		{PayableStatusCancelled, "CANCELLED"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestPayableStatus_IsValid(t *testing.T) {
	tests := []struct {
		status   PayableStatus
		expected bool
	}{
		{PayableStatusPending, true},
		{PayableStatusPaid, true},
		{PayableStatusCancelled, true},
		{PayableStatus("INVALID"), false},
		{PayableStatus(""), false},
	}

	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.IsValid())
		})
	}
}

func TestPayableStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status   PayableStatus
		expected bool
	}{
		{PayableStatusPending, false},
		{PayableStatusPaid, true},
		{PayableStatusCancelled, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.IsTerminal())
		})
	}
}

// Test AccountPayable creation

func newTestPayable(t *testing.T) *AccountPayable {
	t.Helper()
	issue := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	due := issue.AddDate(0, 0, 30)
	ap, err := NewAccountPayable(
		"NF-22232",
		uuid.New(),
		"Distribuidora Alimentos Ltda",
		1, 1,
		valueobject.NewMoneyBRLFromFloat(1000.00),
		nil, nil, nil,
		issue, due,
	)
	require.NoError(t, err)
	return ap
}

func TestNewAccountPayable_ValidData(t *testing.T) {
	supplierID := uuid.New()
	issue := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	due := issue.AddDate(0, 0, 30)

	ap, err := NewAccountPayable(
		"NF-22232",
		supplierID,
		"Distribuidora Alimentos Ltda",
		2, 3,
		valueobject.NewMoneyBRLFromFloat(1000.00),
		nil, nil, nil,
		issue, due,
	)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, ap.ID)
	assert.Equal(t, "NF-22232", ap.DocumentNumber)
	assert.Equal(t, supplierID, ap.SupplierID)
	assert.Equal(t, 2, ap.InstallmentNumber)
	assert.Equal(t, 3, ap.InstallmentCount)
	assert.True(t, ap.OriginalAmount.Equal(decimal.NewFromFloat(1000.00)))
	assert.True(t, ap.Discount.IsZero())
	assert.True(t, ap.TotalAmount.Equal(decimal.NewFromFloat(1000.00)))
	assert.True(t, ap.PaidAmount.IsZero())
	assert.Equal(t, PayableStatusPending, ap.Status)
	assert.Nil(t, ap.PaymentDate)
	assert.Equal(t, 1, ap.GetVersion())
}

func TestNewAccountPayable_TotalIdentity(t *testing.T) {
	issue := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	discount := decimal.NewFromFloat(50.00)
	interest := decimal.NewFromFloat(10.00)
	penalty := decimal.NewFromFloat(25.00)

	ap, err := NewAccountPayable(
		"NF-100", uuid.New(), "Fornecedor", 1, 1,
		valueobject.NewMoneyBRLFromFloat(1000.00),
		&discount, &interest, &penalty,
		issue, issue.AddDate(0, 0, 15),
	)

	require.NoError(t, err)
	// total = original - discount + interest + penalty
	assert.True(t, ap.TotalAmount.Equal(decimal.NewFromFloat(985.00)))
}

func TestNewAccountPayable_InvalidData(t *testing.T) {
	issue := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	due := issue.AddDate(0, 0, 30)
	validAmount := valueobject.NewMoneyBRLFromFloat(100.00)

	tests := []struct {
		name    string
		build   func() (*AccountPayable, error)
		wantMsg string
	}{
		{
			name: "empty document number",
			build: func() (*AccountPayable, error) {
				return NewAccountPayable("", uuid.New(), "F", 1, 1, validAmount, nil, nil, nil, issue, due)
			},
			wantMsg: "Document number cannot be empty",
		},
		{
			name: "document number too long",
			build: func() (*AccountPayable, error) {
				return NewAccountPayable(strings.Repeat("9", 51), uuid.New(), "F", 1, 1, validAmount, nil, nil, nil, issue, due)
			},
			wantMsg: "cannot exceed 50 characters",
		},
		{
			name: "nil supplier",
			build: func() (*AccountPayable, error) {
				return NewAccountPayable("NF-1", uuid.Nil, "F", 1, 1, validAmount, nil, nil, nil, issue, due)
			},
			wantMsg: "Supplier ID cannot be empty",
		},
		{
			name: "installment number above count",
			build: func() (*AccountPayable, error) {
				return NewAccountPayable("NF-1", uuid.New(), "F", 4, 3, validAmount, nil, nil, nil, issue, due)
			},
			wantMsg: "between 1 and 3",
		},
		{
			name: "zero amount",
			build: func() (*AccountPayable, error) {
				return NewAccountPayable("NF-1", uuid.New(), "F", 1, 1, valueobject.ZeroBRL(), nil, nil, nil, issue, due)
			},
			wantMsg: "Original amount must be positive",
		},
		{
			name: "due date before issue date",
			build: func() (*AccountPayable, error) {
				return NewAccountPayable("NF-1", uuid.New(), "F", 1, 1, validAmount, nil, nil, nil, issue, issue.AddDate(0, 0, -1))
			},
			wantMsg: "Due date cannot precede issue date",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ap, err := tc.build()
			assert.Error(t, err)
			assert.Nil(t, ap)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

// Test Pay lifecycle

func TestAccountPayable_Pay(t *testing.T) {
	ap := newTestPayable(t)
	methodID := uuid.New()
	payDate := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)

	err := ap.Pay(valueobject.NewMoneyBRLFromFloat(1000.00), &payDate, methodID)

	require.NoError(t, err)
	assert.Equal(t, PayableStatusPaid, ap.Status)
	assert.True(t, ap.PaidAmount.Equal(decimal.NewFromFloat(1000.00)))
	require.NotNil(t, ap.PaymentDate)
	assert.Equal(t, payDate, *ap.PaymentDate)
	require.NotNil(t, ap.PaymentMethodID)
	assert.Equal(t, methodID, *ap.PaymentMethodID)
	assert.Equal(t, 2, ap.GetVersion())
}

func TestAccountPayable_Pay_DefaultsPaymentDateToNow(t *testing.T) {
	ap := newTestPayable(t)
	before := time.Now()

	err := ap.Pay(valueobject.NewMoneyBRLFromFloat(1000.00), nil, uuid.New())

	require.NoError(t, err)
	require.NotNil(t, ap.PaymentDate)
	assert.False(t, ap.PaymentDate.Before(before))
	assert.False(t, ap.PaymentDate.After(time.Now()))
}

func TestAccountPayable_Pay_ExceedsTotal(t *testing.T) {
	ap := newTestPayable(t)

	err := ap.Pay(valueobject.NewMoneyBRLFromFloat(1000.01), nil, uuid.New())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds total amount")
	assert.Equal(t, PayableStatusPending, ap.Status)
}

func TestAccountPayable_Pay_AlreadyPaid(t *testing.T) {
	ap := newTestPayable(t)
	require.NoError(t, ap.Pay(valueobject.NewMoneyBRLFromFloat(1000.00), nil, uuid.New()))

	err := ap.Pay(valueobject.NewMoneyBRLFromFloat(1000.00), nil, uuid.New())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot pay payable in PAID status")
}

func TestAccountPayable_Pay_AfterCancel(t *testing.T) {
	ap := newTestPayable(t)
	require.NoError(t, ap.Cancel("duplicate entry"))

	err := ap.Pay(valueobject.NewMoneyBRLFromFloat(1000.00), nil, uuid.New())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot pay payable in CANCELLED status")
}

func TestAccountPayable_Pay_NilMethod(t *testing.T) {
	ap := newTestPayable(t)

	err := ap.Pay(valueobject.NewMoneyBRLFromFloat(1000.00), nil, uuid.Nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Payment method ID cannot be empty")
}

// Test Cancel lifecycle

func TestAccountPayable_Cancel(t *testing.T) {
	ap := newTestPayable(t)

	err := ap.Cancel("invoice returned")

	require.NoError(t, err)
	assert.Equal(t, PayableStatusCancelled, ap.Status)
	assert.Equal(t, "invoice returned", ap.CancelReason)
}

func TestAccountPayable_Cancel_AlreadyTerminal(t *testing.T) {
	ap := newTestPayable(t)
	require.NoError(t, ap.Cancel("first"))

	err := ap.Cancel("second")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot cancel payable in CANCELLED status")
}

func TestAccountPayable_Cancel_EmptyReason(t *testing.T) {
	ap := newTestPayable(t)

	err := ap.Cancel("")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Cancel reason is required")
}

// Test amount updates and deletion gate

func TestAccountPayable_UpdateAmounts(t *testing.T) {
	ap := newTestPayable(t)
	discount := decimal.NewFromFloat(100.00)

	err := ap.UpdateAmounts(valueobject.NewMoneyBRLFromFloat(1200.00), &discount, nil, nil)

	require.NoError(t, err)
	assert.True(t, ap.TotalAmount.Equal(decimal.NewFromFloat(1100.00)))
}

func TestAccountPayable_UpdateAmounts_Terminal(t *testing.T) {
	ap := newTestPayable(t)
	require.NoError(t, ap.Pay(valueobject.NewMoneyBRLFromFloat(500.00), nil, uuid.New()))

	err := ap.UpdateAmounts(valueobject.NewMoneyBRLFromFloat(2000.00), nil, nil, nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot modify payable in PAID status")
}

func TestAccountPayable_UpdateAmounts_NegativeAdjustment(t *testing.T) {
	ap := newTestPayable(t)
	negative := decimal.NewFromFloat(-1.00)

	err := ap.UpdateAmounts(valueobject.NewMoneyBRLFromFloat(1000.00), &negative, nil, nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be negative")
}

func TestAccountPayable_CanDelete(t *testing.T) {
	ap := newTestPayable(t)
	assert.True(t, ap.CanDelete())

	cancelled := newTestPayable(t)
	require.NoError(t, cancelled.Cancel("wrong supplier"))
	assert.True(t, cancelled.CanDelete())

	paid := newTestPayable(t)
	require.NoError(t, paid.Pay(valueobject.NewMoneyBRLFromFloat(1000.00), nil, uuid.New()))
	assert.False(t, paid.CanDelete())
}

func TestAccountPayable_IsOverdue(t *testing.T) {
	ap := newTestPayable(t)
	assert.True(t, ap.IsOverdue())

	require.NoError(t, ap.SetDueDate(time.Now().AddDate(0, 0, 30)))
	assert.False(t, ap.IsOverdue())
}
