package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDate(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantISO    string
		wantFormat DateFormat
		wantFound  bool
	}{
		{
			name:       "iso dashes",
			line:       "Date: 2024-03-14",
			wantISO:    "2024-03-14",
			wantFormat: FormatISO,
			wantFound:  true,
		},
		{
			name:       "iso slashes",
			line:       "2024/03/14 10:22",
			wantISO:    "2024-03-14",
			wantFormat: FormatISO,
			wantFound:  true,
		},
		{
			name:       "numeric slash",
			line:       "03/14/2024",
			wantISO:    "2024-03-14",
			wantFormat: FormatNumeric,
			wantFound:  true,
		},
		{
			name:       "numeric two digit year",
			line:       "03-14-24",
			wantISO:    "2024-03-14",
			wantFormat: FormatNumeric,
			wantFound:  true,
		},
		{
			name:       "dotted",
			line:       "03.14.2024",
			wantISO:    "2024-03-14",
			wantFormat: FormatDotted,
			wantFound:  true,
		},
		{
			name:       "month name",
			line:       "March 14, 2024",
			wantISO:    "2024-03-14",
			wantFormat: FormatMonthName,
			wantFound:  true,
		},
		{
			name:       "abbreviated month name",
			line:       "Mar 14 2024",
			wantISO:    "2024-03-14",
			wantFormat: FormatMonthName,
			wantFound:  true,
		},
		{
			name:      "invalid calendar day",
			line:      "02/30/2024",
			wantFound: false,
		},
		{
			name:      "year below sanity window",
			line:      "03/14/2009",
			wantFound: false,
		},
		{
			name:      "year above sanity window",
			line:      "2040-01-01",
			wantFound: false,
		},
		{
			name:      "no date",
			line:      "TOTAL $38.72",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FindDate(tt.line)
			require.Equal(t, tt.wantFound, found)
			if !found {
				return
			}
			assert.Equal(t, tt.wantISO, got.ISO())
			assert.Equal(t, tt.wantFormat, got.Format)
		})
	}
}

func TestFindDateSkipsInvalidCandidate(t *testing.T) {
	// The first numeric candidate is not a real calendar date; the scan must
	// drop it and keep the later one rather than abort.
	got, found := FindDate("13/45/2024 then 03/14/2024")
	require.True(t, found)
	assert.Equal(t, "2024-03-14", got.ISO())
}

func TestFormatConfidence(t *testing.T) {
	assert.InDelta(t, 0.95, FormatISO.Confidence(), 0.001)
	assert.InDelta(t, 0.85, FormatNumeric.Confidence(), 0.001)
	assert.InDelta(t, 0.80, FormatDotted.Confidence(), 0.001)
	assert.InDelta(t, 0.82, FormatMonthName.Confidence(), 0.001)

	for _, f := range DateFormats {
		conf := f.Confidence()
		assert.GreaterOrEqual(t, conf, 0.0)
		assert.LessOrEqual(t, conf, 1.0)
	}
}

func TestHasDateAndTime(t *testing.T) {
	assert.True(t, HasDate("03/14/2024"))
	assert.True(t, HasDate("visited June 3, 2024"))
	assert.False(t, HasDate("TOTAL $38.72"))

	assert.True(t, HasTime("10:22 AM"))
	assert.False(t, HasTime("SHELL OIL"))
}
