package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwhitmore/ledgerlens/internal/textnorm"
)

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantDate string
		wantConf float64
	}{
		{
			name:     "iso near the top",
			text:     "SHELL OIL\n2024-03-14\nTOTAL $38.72",
			wantDate: "2024-03-14",
			wantConf: 0.95,
		},
		{
			name:     "numeric form",
			text:     "SHELL OIL\n03/14/2024 10:22\nTOTAL $38.72",
			wantDate: "2024-03-14",
			wantConf: 0.85,
		},
		{
			name:     "dotted form",
			text:     "SHELL OIL\n03.14.2024\nTOTAL $38.72",
			wantDate: "2024-03-14",
			wantConf: 0.80,
		},
		{
			name:     "month name form",
			text:     "SHELL OIL\nMarch 14, 2024\nTOTAL $38.72",
			wantDate: "2024-03-14",
			wantConf: 0.82,
		},
		{
			name:     "no date",
			text:     "SHELL OIL\nTOTAL $38.72",
			wantDate: "",
			wantConf: 0.0,
		},
		{
			name:     "empty",
			text:     "",
			wantDate: "",
			wantConf: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, conf := ExtractDate(textnorm.Lines(tt.text))
			assert.Equal(t, tt.wantDate, date)
			assert.InDelta(t, tt.wantConf, conf, 0.001)
		})
	}
}

func TestExtractDatePrefersHigherPriorityFormat(t *testing.T) {
	// A numeric date sits in the head, an ISO date deep in the tail. The
	// fixed format priority means the ISO match still wins.
	var b strings.Builder
	b.WriteString("SHELL OIL\n03/15/2024\n")
	for i := 0; i < 30; i++ {
		b.WriteString("ITEM LINE\n")
	}
	b.WriteString("PRINTED 2024-03-14\n")

	date, conf := ExtractDate(textnorm.Lines(b.String()))
	assert.Equal(t, "2024-03-14", date)
	assert.InDelta(t, 0.95, conf, 0.001)
}

func TestExtractDatePrefersHeadWithinFormat(t *testing.T) {
	// Two numeric dates: the one in the first lines outranks the tail one.
	var b strings.Builder
	b.WriteString("SHELL OIL\n03/14/2024\n")
	for i := 0; i < 30; i++ {
		b.WriteString("ITEM LINE\n")
	}
	b.WriteString("REPRINTED 12/31/2024\n")

	date, _ := ExtractDate(textnorm.Lines(b.String()))
	assert.Equal(t, "2024-03-14", date)
}
