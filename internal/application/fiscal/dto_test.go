package fiscal

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pizzaria/backend/internal/domain/fiscal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToEntryInvoiceResponse_ReproducesRequestFields(t *testing.T) {
	conditionID := uuid.New()
	req := CreateEntryInvoiceRequest{
		Number:       "1042",
		Model:        "55",
		Series:       "1",
		SupplierID:   uuid.New(),
		EmissionDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		ArrivalDate:  time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		Items: []InvoiceItemRequest{
			{ProductID: uuid.New(), Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(5)},
			{ProductID: uuid.New(), Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(10)},
		},
		ProductTotal:       decimal.NewFromInt(80),
		Freight:            decimal.NewFromInt(8),
		PaymentConditionID: &conditionID,
		Notes:              "Weekly restock",
	}

	key, err := fiscal.NewInvoiceKey(req.Number, req.Model, req.Series, req.SupplierID)
	require.NoError(t, err)

	items := make([]fiscal.InvoiceItem, len(req.Items))
	for i, ir := range req.Items {
		items[i], err = fiscal.NewInvoiceItem(i+1, ir.ProductID, "Product", ir.Quantity, ir.UnitPrice, decimal.Zero)
		require.NoError(t, err)
	}

	invoice, err := fiscal.NewEntryInvoice(
		key, "Laticínios Boa Vista",
		req.EmissionDate, req.ArrivalDate,
		items,
		req.ProductTotal, req.Freight,
		req.Insurance, req.OtherExpenses, req.Discount,
		req.PaymentConditionID,
	)
	require.NoError(t, err)
	invoice.SetNotes(req.Notes)

	resp := ToEntryInvoiceResponse(invoice)

	assert.Equal(t, req.Number, resp.Number)
	assert.Equal(t, req.Model, resp.Model)
	assert.Equal(t, req.Series, resp.Series)
	assert.Equal(t, req.SupplierID, resp.SupplierID)
	assert.Equal(t, "Laticínios Boa Vista", resp.SupplierName)
	assert.Equal(t, req.EmissionDate, resp.EmissionDate)
	assert.Equal(t, req.ArrivalDate, resp.ArrivalDate)
	assert.Equal(t, req.PaymentConditionID, resp.PaymentConditionID)
	assert.Equal(t, req.Notes, resp.Notes)
	assert.True(t, resp.ProductTotal.Equal(req.ProductTotal))
	assert.True(t, resp.Freight.Equal(req.Freight))
	assert.True(t, resp.InvoiceTotal.Equal(decimal.NewFromInt(88)))

	require.Len(t, resp.Items, 2)
	for i, ir := range req.Items {
		assert.Equal(t, i+1, resp.Items[i].LineNumber)
		assert.Equal(t, ir.ProductID, resp.Items[i].ProductID)
		assert.True(t, resp.Items[i].Quantity.Equal(ir.Quantity))
		assert.True(t, resp.Items[i].UnitPrice.Equal(ir.UnitPrice))
	}
	assert.True(t, resp.Items[0].FreightShare.Equal(decimal.NewFromInt(5)))
	assert.True(t, resp.Items[1].FreightShare.Equal(decimal.NewFromInt(3)))
}
