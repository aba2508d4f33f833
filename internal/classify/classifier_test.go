package classify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitmore/ledgerlens/internal/memory"
	"github.com/mwhitmore/ledgerlens/internal/model"
)

const fuelReceipt = "SHELL OIL\n2024-03-14\nUNLEADED 12.404 GAL\nTOTAL $38.72"

func TestClassifyMemoryWinsOverRules(t *testing.T) {
	store := memory.NewMapStore()
	require.NoError(t, store.Put(context.Background(), &model.Vendor{
		Name:     "shell oil",
		Category: model.CategoryVehicle,
		UseCount: 3,
	}))

	// The vendor string would rule-match Fuel; the learned entry outranks it.
	c := New(store)
	result := c.Classify(context.Background(), "SHELL OIL", fuelReceipt)

	assert.Equal(t, model.CategoryVehicle, result.Category)
	assert.InDelta(t, 0.95, result.Confidence, 0.001)
	assert.True(t, result.FromMemory)
	require.NotEmpty(t, result.Reasons)
	assert.Contains(t, result.Reasons[0], "3 prior receipts")
}

func TestClassifyMalformedMemoryEntryFallsThrough(t *testing.T) {
	store := memory.NewMapStore()
	require.NoError(t, store.Put(context.Background(), &model.Vendor{
		Name:     "shell oil",
		UseCount: 2,
	}))

	c := New(store)
	result := c.Classify(context.Background(), "SHELL OIL", fuelReceipt)

	assert.Equal(t, model.CategoryFuel, result.Category)
	assert.InDelta(t, 0.90, result.Confidence, 0.001)
	assert.False(t, result.FromMemory)
}

func TestClassifyRuleTiers(t *testing.T) {
	tests := []struct {
		name         string
		vendor       string
		text         string
		wantCategory string
		wantConf     float64
		wantReason   string
	}{
		{
			name:         "vendor match",
			vendor:       "CHEVRON #44123",
			text:         "2024-03-14\nTOTAL 41.20",
			wantCategory: model.CategoryFuel,
			wantConf:     0.90,
			wantReason:   "Vendor matched",
		},
		{
			name:         "text match when vendor is unknown",
			vendor:       "",
			text:         "2024-03-14\nUNLEADED 12.404 GAL\nTOTAL $38.72",
			wantCategory: model.CategoryFuel,
			wantConf:     0.80,
			wantReason:   "Receipt text matched",
		},
		{
			name:         "permit text beats guarded fee rule",
			vendor:       "CITY OF SPRINGFIELD",
			text:         "BUILDING PERMIT\nFILING FEE 125.00\nTOTAL 125.00",
			wantCategory: model.CategoryPermits,
			wantConf:     0.80,
			wantReason:   "Receipt text matched",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(nil)
			result := c.Classify(context.Background(), tt.vendor, tt.text)

			assert.Equal(t, tt.wantCategory, result.Category)
			assert.InDelta(t, tt.wantConf, result.Confidence, 0.001)
			assert.False(t, result.FromMemory)
			require.NotEmpty(t, result.Reasons)
			assert.Contains(t, result.Reasons[0], tt.wantReason)
		})
	}
}

func TestClassifyVendorOnlyPatternsSkipFreeText(t *testing.T) {
	// "cafe" in free text is too ambiguous for a rule, so the keyword tier
	// picks it up at a lower confidence.
	c := New(nil)
	result := c.Classify(context.Background(), "", "visit our cafe again soon")

	assert.Equal(t, model.CategoryMeals, result.Category)
	assert.Less(t, result.Confidence, 0.80)
}

func TestClassifyFeeBoilerplateSuppressed(t *testing.T) {
	c := New(nil)
	result := c.Classify(context.Background(), "", "CARD PROCESSING FEE 0.50")

	assert.Equal(t, model.CategoryOther, result.Category)
	assert.InDelta(t, 0.35, result.Confidence, 0.001)
}

func TestClassifyKeywordScoring(t *testing.T) {
	c := New(nil)
	raw := "TONYS PLACE\n2024-03-14\nPIZZA SLICE 3.50\nLUNCH SPECIAL 7.99\nTOTAL 11.49"
	result := c.Classify(context.Background(), "TONYS PLACE", raw)

	assert.Equal(t, model.CategoryMeals, result.Category)
	// Floor 0.35, four quality signals, two keyword hits.
	assert.InDelta(t, 0.73, result.Confidence, 0.001)
	require.NotEmpty(t, result.Reasons)
	assert.Contains(t, result.Reasons[0], "Keyword match for Meals (2 hits)")
}

func TestClassifyEmptyInput(t *testing.T) {
	c := New(nil)
	result := c.Classify(context.Background(), "", "")

	assert.Equal(t, model.CategoryOther, result.Category)
	assert.InDelta(t, 0.35, result.Confidence, 0.001)
	assert.False(t, result.FromMemory)
	assert.NotEmpty(t, result.Reasons)
	assert.Contains(t, result.Reasons, "No category signal found in receipt text")
}

func TestClassifyReasonsCapped(t *testing.T) {
	c := New(nil)
	raw := "FUEL DEPOT\n2024-03-14\nDIESEL 20.1 GAL\nPUMP 4\nTOTAL $88.00"
	result := c.Classify(context.Background(), "FUEL DEPOT", raw)

	assert.LessOrEqual(t, len(result.Reasons), model.MaxReasons)
	assert.NoError(t, result.Validate())
}
