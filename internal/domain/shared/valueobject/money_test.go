package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyBRLFromFloat(t *testing.T) {
	m := NewMoneyBRLFromFloat(123.45)

	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(123.45)))
	assert.Equal(t, BRL, m.Currency())
}

func TestNewMoneyBRLFromString(t *testing.T) {
	m, err := NewMoneyBRLFromString("99.90")
	require.NoError(t, err)
	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(99.90)))

	_, err = NewMoneyBRLFromString("not a number")
	assert.Error(t, err)
}

func TestMoney_Arithmetic(t *testing.T) {
	a := NewMoneyBRLFromFloat(100.50)
	b := NewMoneyBRLFromFloat(20.25)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Amount().Equal(decimal.NewFromFloat(120.75)))

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.True(t, diff.Amount().Equal(decimal.NewFromFloat(80.25)))

	doubled := a.Mul(decimal.NewFromInt(2))
	assert.True(t, doubled.Amount().Equal(decimal.NewFromFloat(201.00)))
}

func TestMoney_Round2(t *testing.T) {
	m := NewMoneyBRL(decimal.NewFromFloat(10.0).Div(decimal.NewFromInt(3)))

	rounded := m.Round2()

	assert.True(t, rounded.Amount().Equal(decimal.NewFromFloat(3.33)))
}

func TestMoney_Predicates(t *testing.T) {
	assert.True(t, ZeroBRL().IsZero())
	assert.True(t, NewMoneyBRLFromFloat(1).IsPositive())
	assert.True(t, NewMoneyBRLFromFloat(-1).IsNegative())
	assert.True(t, NewMoneyBRLFromFloat(5.50).Equals(NewMoneyBRLFromFloat(5.50)))
	assert.False(t, NewMoneyBRLFromFloat(5.50).Equals(NewMoneyBRLFromFloat(5.51)))
}
