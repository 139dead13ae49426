package finance

import (
	"testing"
	"time"

	"github.com/pizzaria/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceivableStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status   ReceivableStatus
		expected bool
	}{
		{ReceivableStatusPending, false},
		{ReceivableStatusReceived, true},
		{ReceivableStatusCancelled, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.IsTerminal())
		})
	}
}

func newTestReceivable(t *testing.T) *AccountReceivable {
	t.Helper()
	issue := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	ar, err := NewAccountReceivable(
		"VENDA-0042",
		uuid.New(),
		"Pizzaria Bella Napoli",
		1, 2,
		valueobject.NewMoneyBRLFromFloat(450.00),
		nil, nil, nil,
		issue, issue.AddDate(0, 0, 30),
	)
	require.NoError(t, err)
	return ar
}

func TestNewAccountReceivable_ValidData(t *testing.T) {
	ar := newTestReceivable(t)

	assert.NotEqual(t, uuid.Nil, ar.ID)
	assert.Equal(t, "VENDA-0042", ar.DocumentNumber)
	assert.Equal(t, ReceivableStatusPending, ar.Status)
	assert.True(t, ar.TotalAmount.Equal(decimal.NewFromFloat(450.00)))
	assert.True(t, ar.ReceivedAmount.IsZero())
	assert.Nil(t, ar.ReceiptDate)
}

func TestNewAccountReceivable_TotalIdentity(t *testing.T) {
	issue := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	discount := decimal.NewFromFloat(20.00)
	interest := decimal.NewFromFloat(5.50)
	penalty := decimal.NewFromFloat(2.00)

	ar, err := NewAccountReceivable(
		"VENDA-0001", uuid.New(), "Cliente", 1, 1,
		valueobject.NewMoneyBRLFromFloat(300.00),
		&discount, &interest, &penalty,
		issue, issue.AddDate(0, 0, 15),
	)

	require.NoError(t, err)
	assert.True(t, ar.TotalAmount.Equal(decimal.NewFromFloat(287.50)))
}

func TestNewAccountReceivable_NilClient(t *testing.T) {
	issue := time.Now()

	ar, err := NewAccountReceivable(
		"VENDA-0001", uuid.Nil, "Cliente", 1, 1,
		valueobject.NewMoneyBRLFromFloat(300.00),
		nil, nil, nil,
		issue, issue.AddDate(0, 0, 15),
	)

	assert.Error(t, err)
	assert.Nil(t, ar)
	assert.Contains(t, err.Error(), "Client ID cannot be empty")
}

func TestAccountReceivable_Receive(t *testing.T) {
	ar := newTestReceivable(t)
	methodID := uuid.New()
	receiptDate := time.Date(2026, 3, 28, 0, 0, 0, 0, time.UTC)

	err := ar.Receive(valueobject.NewMoneyBRLFromFloat(450.00), &receiptDate, methodID)

	require.NoError(t, err)
	assert.Equal(t, ReceivableStatusReceived, ar.Status)
	assert.True(t, ar.ReceivedAmount.Equal(decimal.NewFromFloat(450.00)))
	require.NotNil(t, ar.ReceiptDate)
	assert.Equal(t, receiptDate, *ar.ReceiptDate)
	require.NotNil(t, ar.PaymentMethodID)
	assert.Equal(t, methodID, *ar.PaymentMethodID)
}

func TestAccountReceivable_Receive_DefaultsReceiptDateToNow(t *testing.T) {
	ar := newTestReceivable(t)
	before := time.Now()

	err := ar.Receive(valueobject.NewMoneyBRLFromFloat(450.00), nil, uuid.New())

	require.NoError(t, err)
	require.NotNil(t, ar.ReceiptDate)
	assert.False(t, ar.ReceiptDate.Before(before))
}

func TestAccountReceivable_Receive_ExceedsTotal(t *testing.T) {
	ar := newTestReceivable(t)

	err := ar.Receive(valueobject.NewMoneyBRLFromFloat(450.01), nil, uuid.New())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds total amount")
	assert.Equal(t, ReceivableStatusPending, ar.Status)
}

func TestAccountReceivable_Receive_AlreadyTerminal(t *testing.T) {
	ar := newTestReceivable(t)
	require.NoError(t, ar.Receive(valueobject.NewMoneyBRLFromFloat(450.00), nil, uuid.New()))

	err := ar.Receive(valueobject.NewMoneyBRLFromFloat(450.00), nil, uuid.New())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot receive receivable in RECEIVED status")
}

func TestAccountReceivable_Cancel(t *testing.T) {
	ar := newTestReceivable(t)

	err := ar.Cancel("order returned")

	require.NoError(t, err)
	assert.Equal(t, ReceivableStatusCancelled, ar.Status)

	err = ar.Cancel("again")
	assert.Error(t, err)
}

func TestAccountReceivable_CanDelete(t *testing.T) {
	ar := newTestReceivable(t)
	assert.True(t, ar.CanDelete())

	received := newTestReceivable(t)
	require.NoError(t, received.Receive(valueobject.NewMoneyBRLFromFloat(450.00), nil, uuid.New()))
	assert.False(t, received.CanDelete())
}
