package engine

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitmore/ledgerlens/internal/memory"
	"github.com/mwhitmore/ledgerlens/internal/model"
	"github.com/mwhitmore/ledgerlens/internal/review"
)

const fuelReceipt = "SHELL OIL\n123 MAIN ST\n2024-03-14\nUNLEADED 12.404 GAL\nTOTAL $38.72"

func TestProcessFuelReceipt(t *testing.T) {
	e := New(memory.NewMapStore(), review.DefaultPolicy())
	record := e.Process(context.Background(), fuelReceipt, "")

	assert.Equal(t, "SHELL OIL", record.Extraction.Vendor)
	assert.Equal(t, "2024-03-14", record.Extraction.Date)
	assert.InDelta(t, 38.72, record.Extraction.Amount, 0.001)
	assert.Equal(t, model.CategoryFuel, record.Categorization.Category)
	assert.GreaterOrEqual(t, record.Categorization.Confidence, 0.78)
	require.NotEmpty(t, record.Categorization.Reasons)
	assert.Contains(t, record.Categorization.Reasons[0], "Fuel")
	assert.False(t, record.Categorization.FromMemory)
	assert.False(t, record.NeedsReview)
	assert.Empty(t, record.ReviewReasons)
	assert.NoError(t, record.Extraction.Validate())
	assert.NoError(t, record.Categorization.Validate())
}

func TestProcessUsesLearnedVendorMemory(t *testing.T) {
	ctx := context.Background()
	store := memory.NewMapStore()
	require.NoError(t, memory.Remember(ctx, store, "SHELL OIL", model.CategoryVehicle, "6300"))

	e := New(store, review.DefaultPolicy())
	record := e.Process(ctx, fuelReceipt, "")

	assert.Equal(t, model.CategoryVehicle, record.Categorization.Category)
	assert.True(t, record.Categorization.FromMemory)
	assert.False(t, record.NeedsReview)
}

func TestProcessVendorOverride(t *testing.T) {
	ctx := context.Background()
	store := memory.NewMapStore()
	require.NoError(t, memory.Remember(ctx, store, "Harbor Freight", model.CategoryTools, "6100"))

	e := New(store, review.DefaultPolicy())
	record := e.Process(ctx, fuelReceipt, "Harbor Freight")

	// The override drives categorization but never rewrites extraction.
	assert.Equal(t, "SHELL OIL", record.Extraction.Vendor)
	assert.Equal(t, model.CategoryTools, record.Categorization.Category)
	assert.True(t, record.Categorization.FromMemory)
}

func TestProcessGarbageInputNeedsReview(t *testing.T) {
	e := New(nil, review.DefaultPolicy())
	record := e.Process(context.Background(), "@@@###\n!!%%^^", "")

	assert.True(t, record.NeedsReview)
	assert.NotEmpty(t, record.ReviewReasons)
	assert.Equal(t, model.CategoryOther, record.Categorization.Category)
	assert.NoError(t, record.Extraction.Validate())
}

func TestRecordJSONShape(t *testing.T) {
	e := New(nil, review.DefaultPolicy())
	record := e.Process(context.Background(), fuelReceipt, "")

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "extraction")
	assert.Contains(t, decoded, "categorization")
	assert.Contains(t, decoded, "needs_review")

	// Empty reason lists are omitted rather than serialized as null.
	if record.NeedsReview {
		assert.Contains(t, decoded, "review_reasons")
	} else {
		assert.NotContains(t, decoded, "review_reasons")
	}
}
