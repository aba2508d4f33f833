package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fuelReceipt = "SHELL OIL\n123 MAIN ST\n2024-03-14\nUNLEADED 12.404 GAL\nTOTAL $38.72"

func TestExtractFuelReceipt(t *testing.T) {
	result := Extract(fuelReceipt)

	assert.Equal(t, "SHELL OIL", result.Vendor)
	assert.GreaterOrEqual(t, result.VendorConfidence, 0.7)
	assert.Equal(t, "2024-03-14", result.Date)
	assert.InDelta(t, 0.95, result.DateConfidence, 0.001)
	assert.InDelta(t, 38.72, result.Amount, 0.001)
	assert.GreaterOrEqual(t, result.AmountConfidence, 0.85)
	assert.Greater(t, result.ParseConfidence, 0.0)
	assert.NoError(t, result.Validate())
}

func TestExtractIsDeterministic(t *testing.T) {
	first := Extract(fuelReceipt)
	second := Extract(fuelReceipt)
	assert.Equal(t, first, second)
}

func TestExtractEmptyInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty string", text: ""},
		{name: "whitespace only", text: "   \n\t\n  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Extract(tt.text)

			assert.Empty(t, result.Vendor)
			assert.Zero(t, result.VendorConfidence)
			assert.Empty(t, result.Date)
			assert.Zero(t, result.DateConfidence)
			assert.Zero(t, result.Amount)
			assert.Zero(t, result.AmountConfidence)
			assert.Zero(t, result.ParseConfidence)
			assert.NoError(t, result.Validate())
		})
	}
}

func TestExtractConfidencesStayBounded(t *testing.T) {
	texts := []string{
		fuelReceipt,
		"HOME DEPOT\n2024-01-02\nLUMBER 2X4 8FT 45.00\nSUBTOTAL 45.00\nTAX 3.71\nTOTAL 48.71\nVISA 48.71",
		"@@@###\n!!%%^^\nTOTAL 12.00",
		"just some words with no receipt structure at all",
	}

	for _, text := range texts {
		result := Extract(text)
		require.NoError(t, result.Validate())
		for name, conf := range map[string]float64{
			"vendor": result.VendorConfidence,
			"date":   result.DateConfidence,
			"amount": result.AmountConfidence,
			"parse":  result.ParseConfidence,
		} {
			assert.GreaterOrEqual(t, conf, 0.0, "%s confidence below zero", name)
			assert.LessOrEqual(t, conf, 1.0, "%s confidence above one", name)
		}
	}
}
