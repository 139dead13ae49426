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

func pct(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func threeEqualRules(methodID uuid.UUID) []InstallmentRule {
	return []InstallmentRule{
		{Number: 1, DaysOffset: 0, Percentage: pct(33.33), PaymentMethodID: methodID},
		{Number: 2, DaysOffset: 30, Percentage: pct(33.33), PaymentMethodID: methodID},
		{Number: 3, DaysOffset: 60, Percentage: pct(33.34), PaymentMethodID: methodID},
	}
}

func TestNewPaymentCondition_ValidRules(t *testing.T) {
	methodID := uuid.New()

	pc, err := NewPaymentCondition("30/60/90", "three equal parts", threeEqualRules(methodID))

	require.NoError(t, err)
	assert.Equal(t, "30/60/90", pc.Name)
	assert.True(t, pc.Active)
	assert.Equal(t, 3, pc.InstallmentCount())
}

func TestNewPaymentCondition_InvalidRules(t *testing.T) {
	methodID := uuid.New()

	tests := []struct {
		name    string
		rules   []InstallmentRule
		wantMsg string
	}{
		{
			name:    "no rules",
			rules:   nil,
			wantMsg: "at least one installment rule",
		},
		{
			name: "percentages sum below 100",
			rules: []InstallmentRule{
				{Number: 1, DaysOffset: 0, Percentage: pct(50), PaymentMethodID: methodID},
				{Number: 2, DaysOffset: 30, Percentage: pct(49.98), PaymentMethodID: methodID},
			},
			wantMsg: "must sum to 100",
		},
		{
			name: "percentages sum above 100",
			rules: []InstallmentRule{
				{Number: 1, DaysOffset: 0, Percentage: pct(60), PaymentMethodID: methodID},
				{Number: 2, DaysOffset: 30, Percentage: pct(41), PaymentMethodID: methodID},
			},
			wantMsg: "must sum to 100",
		},
		{
			name: "non contiguous numbering",
			rules: []InstallmentRule{
				{Number: 1, DaysOffset: 0, Percentage: pct(50), PaymentMethodID: methodID},
				{Number: 3, DaysOffset: 30, Percentage: pct(50), PaymentMethodID: methodID},
			},
			wantMsg: "numbered",
		},
		{
			name: "decreasing day offsets",
			rules: []InstallmentRule{
				{Number: 1, DaysOffset: 30, Percentage: pct(50), PaymentMethodID: methodID},
				{Number: 2, DaysOffset: 10, Percentage: pct(50), PaymentMethodID: methodID},
			},
			wantMsg: "due before",
		},
		{
			name: "missing payment method",
			rules: []InstallmentRule{
				{Number: 1, DaysOffset: 0, Percentage: pct(100), PaymentMethodID: uuid.Nil},
			},
			wantMsg: "payment method",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pc, err := NewPaymentCondition("cond", "", tc.rules)
			assert.Error(t, err)
			assert.Nil(t, pc)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestNewPaymentCondition_SumWithinTolerance(t *testing.T) {
	methodID := uuid.New()
	rules := []InstallmentRule{
		{Number: 1, DaysOffset: 0, Percentage: pct(33.33), PaymentMethodID: methodID},
		{Number: 2, DaysOffset: 30, Percentage: pct(33.33), PaymentMethodID: methodID},
		{Number: 3, DaysOffset: 60, Percentage: pct(33.33), PaymentMethodID: methodID},
	}

	// 99.99 is within the 0.01 tolerance
	pc, err := NewPaymentCondition("thirds", "", rules)

	require.NoError(t, err)
	assert.NotNil(t, pc)
}

func TestPaymentCondition_ExpandSchedule(t *testing.T) {
	methodID := uuid.New()
	pc, err := NewPaymentCondition("30/60/90", "", threeEqualRules(methodID))
	require.NoError(t, err)

	ref := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	installments, err := pc.ExpandSchedule(valueobject.NewMoneyBRLFromFloat(1000.00), ref)

	require.NoError(t, err)
	require.Len(t, installments, 3)

	assert.True(t, installments[0].Amount.Equal(decimal.NewFromFloat(333.30)))
	assert.True(t, installments[1].Amount.Equal(decimal.NewFromFloat(333.30)))
	// last installment absorbs the rounding remainder
	assert.True(t, installments[2].Amount.Equal(decimal.NewFromFloat(333.40)))

	sum := decimal.Zero
	for _, inst := range installments {
		sum = sum.Add(inst.Amount)
	}
	assert.True(t, sum.Equal(decimal.NewFromFloat(1000.00)))

	assert.Equal(t, ref, installments[0].DueDate)
	assert.Equal(t, ref.AddDate(0, 0, 30), installments[1].DueDate)
	assert.Equal(t, ref.AddDate(0, 0, 60), installments[2].DueDate)
	assert.Equal(t, methodID, installments[0].PaymentMethodID)
}

func TestPaymentCondition_ExpandSchedule_SingleInstallment(t *testing.T) {
	methodID := uuid.New()
	pc, err := NewPaymentCondition("a vista", "", []InstallmentRule{
		{Number: 1, DaysOffset: 0, Percentage: pct(100), PaymentMethodID: methodID},
	})
	require.NoError(t, err)

	ref := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	installments, err := pc.ExpandSchedule(valueobject.NewMoneyBRLFromFloat(199.99), ref)

	require.NoError(t, err)
	require.Len(t, installments, 1)
	assert.True(t, installments[0].Amount.Equal(decimal.NewFromFloat(199.99)))
	assert.Equal(t, ref, installments[0].DueDate)
}

func TestPaymentCondition_ExpandSchedule_ZeroTotal(t *testing.T) {
	methodID := uuid.New()
	pc, err := NewPaymentCondition("30/60/90", "", threeEqualRules(methodID))
	require.NoError(t, err)

	installments, err := pc.ExpandSchedule(valueobject.ZeroBRL(), time.Now())

	assert.Error(t, err)
	assert.Nil(t, installments)
}

func TestPaymentCondition_Update_RevalidatesRules(t *testing.T) {
	methodID := uuid.New()
	pc, err := NewPaymentCondition("30/60/90", "", threeEqualRules(methodID))
	require.NoError(t, err)

	err = pc.Update("broken", "", []InstallmentRule{
		{Number: 1, DaysOffset: 0, Percentage: pct(50), PaymentMethodID: methodID},
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must sum to 100")
	// original rules untouched on failed update
	assert.Equal(t, 3, pc.InstallmentCount())
	assert.Equal(t, "30/60/90", pc.Name)
}

func TestPaymentCondition_ActivateDeactivate(t *testing.T) {
	pc, err := NewPaymentCondition("30/60/90", "", threeEqualRules(uuid.New()))
	require.NoError(t, err)

	pc.Deactivate()
	assert.False(t, pc.Active)
	pc.Activate()
	assert.True(t, pc.Active)
}
