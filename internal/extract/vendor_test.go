package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitmore/ledgerlens/internal/textnorm"
)

func TestExtractVendor(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantVendor string
		minConf    float64
	}{
		{
			name:       "clean header",
			text:       "SHELL OIL\n123 MAIN ST\nTOTAL $38.72",
			wantVendor: "SHELL OIL",
			minConf:    0.70,
		},
		{
			name: "header after noise lines",
			text: "(215) 555-0182\n123 MAIN ST\n03/14/2024\nBARNES & NOBLE #2259\nBOOKS 14.99",
			wantVendor: "BARNES & NOBLE #2259",
			minConf:    0.60,
		},
		{
			name:       "spaced letters repaired",
			text:       "S H E L L\n456 ELM AVE\nTOTAL $20.00",
			wantVendor: "SHELL",
			minConf:    0.60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vendor, conf, _ := ExtractVendor(textnorm.Lines(tt.text))
			assert.Equal(t, tt.wantVendor, vendor)
			assert.GreaterOrEqual(t, conf, tt.minConf)
			assert.LessOrEqual(t, conf, 1.0)
		})
	}
}

func TestExtractVendorUnknown(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{
			name: "all noise",
			text: "(215) 555-0182\n123 MAIN ST\nPHILADELPHIA PA 19103\n03/14/2024 10:22\nVISA **** 4421\nTOTAL $38.72",
		},
		{
			name: "ocr fragment garbage",
			text: "a b c2 1x qq w\n#$%^\n12 34 56 78",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vendor, conf, candidates := ExtractVendor(textnorm.Lines(tt.text))
			assert.Empty(t, vendor)
			assert.Zero(t, conf)
			assert.Empty(t, candidates)
		})
	}
}

func TestExtractVendorCandidates(t *testing.T) {
	text := "JOES HARDWARE\nGARDEN CENTER\nLUMBER YARD\nPAINT DESK\nTOOL CORRAL"
	vendor, _, candidates := ExtractVendor(textnorm.Lines(text))

	require.NotEmpty(t, vendor)
	assert.LessOrEqual(t, len(candidates), 3)
	for _, c := range candidates {
		assert.NotEqual(t, vendor, c)
	}
}

func TestExtractVendorMergesSplitHeader(t *testing.T) {
	// OCR splits "WAWA FOOD MARKET" across two lines; the pair candidate
	// should recombine them.
	text := "WAWA\nFOOD MARKET\n789 PINE ST\nTOTAL $12.50"
	vendor, conf, _ := ExtractVendor(textnorm.Lines(text))

	assert.True(t, strings.HasPrefix(vendor, "WAWA"), "got vendor %q", vendor)
	assert.Greater(t, conf, 0.0)
}

func TestVendorNoise(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{line: "(215) 555-0182", want: true},
		{line: "PHILADELPHIA PA 19103", want: true},
		{line: "123 MAIN ST", want: true},
		{line: "03/14/2024", want: true},
		{line: "10:22 AM", want: true},
		{line: "TOTAL $38.72", want: true},
		{line: "VISA CREDIT **** 4421", want: true},
		{line: "CUSTOMER COPY", want: true},
		{line: "THANK YOU FOR SHOPPING", want: true},
		{line: "Items purchased may be returned within 30 days with original packaging", want: true},
		{line: "SHELL OIL", want: false},
		{line: "BARNES & NOBLE #2259", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, vendorNoise(tt.line))
		})
	}
}
