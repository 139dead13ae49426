package partner

import (
	"testing"

	"github.com/pizzaria/backend/internal/domain/partner"
	"github.com/pizzaria/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToClientResponse_ReproducesRequestFields(t *testing.T) {
	cityID := uuid.New()
	limit := decimal.NewFromInt(5000)
	req := CreateClientRequest{
		Code:        "CL-001",
		Name:        "Pizzaria Bela Napoli Ltda",
		TradeName:   "Bela Napoli",
		Document:    "12345678000190",
		ContactName: "Giovanna Rossi",
		Phone:       "41 99999-0000",
		Email:       "contato@belanapoli.com.br",
		Address:     "Rua XV de Novembro 1500",
		CityID:      &cityID,
		CreditLimit: &limit,
		Notes:       "Weekly orders",
	}

	client, err := partner.NewClient(req.Code, req.Name, req.Document)
	require.NoError(t, err)
	require.NoError(t, client.Update(req.Name, req.TradeName))
	require.NoError(t, client.SetContact(req.ContactName, req.Phone, req.Email))
	require.NoError(t, client.SetAddress(req.Address, req.CityID))
	require.NoError(t, client.SetCreditLimit(valueobject.NewMoneyBRL(*req.CreditLimit)))
	client.SetNotes(req.Notes)

	resp := ToClientResponse(client, "Curitiba")

	assert.Equal(t, client.ID, resp.ID)
	assert.Equal(t, req.Code, resp.Code)
	assert.Equal(t, req.Name, resp.Name)
	assert.Equal(t, req.TradeName, resp.TradeName)
	assert.Equal(t, req.Document, resp.Document)
	assert.Equal(t, req.ContactName, resp.ContactName)
	assert.Equal(t, req.Phone, resp.Phone)
	assert.Equal(t, req.Email, resp.Email)
	assert.Equal(t, req.Address, resp.Address)
	assert.Equal(t, req.CityID, resp.CityID)
	assert.Equal(t, "Curitiba", resp.CityName)
	assert.True(t, resp.CreditLimit.Equal(limit))
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, req.Notes, resp.Notes)
	assert.Equal(t, client.Version, resp.Version)
}
