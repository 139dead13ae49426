package catalog

import (
	"testing"

	"github.com/pizzaria/backend/internal/domain/catalog"
	"github.com/pizzaria/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToProductResponse_ReproducesRequestFields(t *testing.T) {
	cost := decimal.NewFromFloat(18.5)
	sale := decimal.NewFromFloat(32.9)
	minimum := decimal.NewFromInt(20)
	req := CreateProductRequest{
		Code:         "MUS-1KG",
		Name:         "Mozzarella 1kg",
		Unit:         "KG",
		Category:     "Dairy",
		CostPrice:    &cost,
		SalePrice:    &sale,
		MinimumStock: &minimum,
	}

	product, err := catalog.NewProduct(req.Code, req.Name, req.Unit)
	require.NoError(t, err)
	require.NoError(t, product.Update(req.Name, req.Unit, req.Category))
	require.NoError(t, product.SetPrices(valueobject.NewMoneyBRL(*req.CostPrice), valueobject.NewMoneyBRL(*req.SalePrice)))
	require.NoError(t, product.SetMinimumStock(*req.MinimumStock))

	resp := ToProductResponse(product)

	assert.Equal(t, product.ID, resp.ID)
	assert.Equal(t, req.Code, resp.Code)
	assert.Equal(t, req.Name, resp.Name)
	assert.Equal(t, req.Unit, resp.Unit)
	assert.Equal(t, req.Category, resp.Category)
	assert.True(t, resp.CostPrice.Equal(cost))
	assert.True(t, resp.SalePrice.Equal(sale))
	assert.True(t, resp.MinimumStock.Equal(minimum))
	assert.True(t, resp.Stock.IsZero())
	assert.True(t, resp.BelowMinimum)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, product.Version, resp.Version)
}
