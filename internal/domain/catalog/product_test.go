package catalog

import (
	"testing"

	"github.com/pizzaria/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	product, err := NewProduct("far-001", "Farinha tipo 00", "kg")

	require.NoError(t, err)
	assert.Equal(t, "FAR-001", product.Code)
	assert.Equal(t, "Farinha tipo 00", product.Name)
	assert.Equal(t, "KG", product.Unit)
	assert.Equal(t, ProductStatusActive, product.Status)
	assert.True(t, product.CostPrice.IsZero())
	assert.True(t, product.Stock.IsZero())
}

func TestNewProduct_DefaultsUnit(t *testing.T) {
	product, err := NewProduct("MUS-001", "Mussarela", "")

	require.NoError(t, err)
	assert.Equal(t, "UN", product.Unit)
}

func TestNewProduct_Invalid(t *testing.T) {
	product, err := NewProduct("", "Farinha", "KG")
	assert.Error(t, err)
	assert.Nil(t, product)

	product, err = NewProduct("FAR-001", "", "KG")
	assert.Error(t, err)
	assert.Nil(t, product)
}

func TestProduct_SetPrices(t *testing.T) {
	product, err := NewProduct("FAR-001", "Farinha", "KG")
	require.NoError(t, err)

	err = product.SetPrices(valueobject.NewMoneyBRLFromFloat(4.20), valueobject.NewMoneyBRLFromFloat(6.90))

	require.NoError(t, err)
	assert.True(t, product.CostPrice.Equal(decimal.NewFromFloat(4.20)))
	assert.True(t, product.SalePrice.Equal(decimal.NewFromFloat(6.90)))
}

func TestProduct_AdjustStock(t *testing.T) {
	product, err := NewProduct("FAR-001", "Farinha", "KG")
	require.NoError(t, err)

	require.NoError(t, product.AdjustStock(decimal.NewFromInt(50)))
	assert.True(t, product.Stock.Equal(decimal.NewFromInt(50)))

	require.NoError(t, product.AdjustStock(decimal.NewFromInt(-20)))
	assert.True(t, product.Stock.Equal(decimal.NewFromInt(30)))

	err = product.AdjustStock(decimal.NewFromInt(-31))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Stock cannot become negative")
	assert.True(t, product.Stock.Equal(decimal.NewFromInt(30)))
}

func TestProduct_IsBelowMinimum(t *testing.T) {
	product, err := NewProduct("FAR-001", "Farinha", "KG")
	require.NoError(t, err)
	require.NoError(t, product.SetMinimumStock(decimal.NewFromInt(10)))

	assert.True(t, product.IsBelowMinimum())

	require.NoError(t, product.AdjustStock(decimal.NewFromInt(10)))
	assert.False(t, product.IsBelowMinimum())
}
