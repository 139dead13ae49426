package partner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVehicle_NormalizesPlate(t *testing.T) {
	carrierID := uuid.New()

	vehicle, err := NewVehicle(" abc-1d23 ", "Fiorino baú", carrierID)

	require.NoError(t, err)
	assert.Equal(t, "ABC1D23", vehicle.Plate)
	assert.Equal(t, carrierID, vehicle.CarrierID)
	assert.Equal(t, StatusActive, vehicle.Status)
}

func TestNewVehicle_Invalid(t *testing.T) {
	carrierID := uuid.New()

	tests := []struct {
		name      string
		plate     string
		carrierID uuid.UUID
	}{
		{"empty plate", "", carrierID},
		{"plate too long", "ABCDE1234567", carrierID},
		{"nil carrier", "ABC1D23", uuid.Nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vehicle, err := NewVehicle(tc.plate, "", tc.carrierID)
			assert.Error(t, err)
			assert.Nil(t, vehicle)
		})
	}
}

func TestVehicle_Update_ReassignsCarrier(t *testing.T) {
	vehicle, err := NewVehicle("ABC1D23", "Fiorino", uuid.New())
	require.NoError(t, err)
	newCarrier := uuid.New()

	require.NoError(t, vehicle.Update("Fiorino baú refrigerado", newCarrier))

	assert.Equal(t, newCarrier, vehicle.CarrierID)
	assert.Equal(t, "Fiorino baú refrigerado", vehicle.Description)
}

func TestSupplier_CNPJRequired(t *testing.T) {
	supplier, err := NewSupplier("FOR-001", "Distribuidora Alimentos", "11.222.333/0001-81")
	require.NoError(t, err)
	assert.Equal(t, "11222333000181", supplier.CNPJ)

	err = supplier.SetCNPJ("123")
	assert.Error(t, err)
}

func TestCarrier_Lifecycle(t *testing.T) {
	carrier, err := NewCarrier("TRA-001", "Transportes Sul", "11.222.333/0001-81")
	require.NoError(t, err)
	assert.True(t, carrier.IsActive())

	require.NoError(t, carrier.Deactivate())
	assert.False(t, carrier.IsActive())
	assert.Error(t, carrier.Deactivate())
}
