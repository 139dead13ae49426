package fiscal

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoiceKey_ValidData(t *testing.T) {
	partnerID := uuid.New()

	key, err := NewInvoiceKey("22232", "55", "1", partnerID)

	require.NoError(t, err)
	assert.Equal(t, "22232", key.Number)
	assert.Equal(t, "55", key.Model)
	assert.Equal(t, "1", key.Series)
	assert.Equal(t, partnerID, key.PartnerID)
}

func TestNewInvoiceKey_MissingComponents(t *testing.T) {
	partnerID := uuid.New()

	tests := []struct {
		name      string
		number    string
		model     string
		series    string
		partnerID uuid.UUID
	}{
		{"empty number", "", "55", "1", partnerID},
		{"empty model", "22232", "", "1", partnerID},
		{"empty series", "22232", "55", "", partnerID},
		{"nil partner", "22232", "55", "1", uuid.Nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewInvoiceKey(tc.number, tc.model, tc.series, tc.partnerID)
			assert.Error(t, err)
		})
	}
}

func TestInvoiceKey_Equality(t *testing.T) {
	partnerID := uuid.New()
	key, err := NewInvoiceKey("22232", "55", "1", partnerID)
	require.NoError(t, err)

	same, err := NewInvoiceKey("22232", "55", "1", partnerID)
	require.NoError(t, err)
	assert.True(t, key.Equals(same))

	// any single component changed makes a different key
	diffNumber, _ := NewInvoiceKey("22233", "55", "1", partnerID)
	diffModel, _ := NewInvoiceKey("22232", "65", "1", partnerID)
	diffSeries, _ := NewInvoiceKey("22232", "55", "2", partnerID)
	diffPartner, _ := NewInvoiceKey("22232", "55", "1", uuid.New())

	assert.False(t, key.Equals(diffNumber))
	assert.False(t, key.Equals(diffModel))
	assert.False(t, key.Equals(diffSeries))
	assert.False(t, key.Equals(diffPartner))
}

func TestInvoiceKey_CaseSensitiveComparison(t *testing.T) {
	partnerID := uuid.New()
	upper, err := NewInvoiceKey("22232", "55A", "1", partnerID)
	require.NoError(t, err)
	lower, err := NewInvoiceKey("22232", "55a", "1", partnerID)
	require.NoError(t, err)

	assert.False(t, upper.Equals(lower))
}

func TestInvoiceKey_UsableAsMapKey(t *testing.T) {
	partnerID := uuid.New()
	key, err := NewInvoiceKey("22232", "55", "1", partnerID)
	require.NoError(t, err)

	index := map[InvoiceKey]string{key: "stored"}

	same, _ := NewInvoiceKey("22232", "55", "1", partnerID)
	got, ok := index[same]
	assert.True(t, ok)
	assert.Equal(t, "stored", got)

	other, _ := NewInvoiceKey("22232", "55", "2", partnerID)
	_, ok = index[other]
	assert.False(t, ok)
}
