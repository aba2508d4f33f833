// Package extract turns unstructured OCR receipt text into candidate
// vendor, date, and amount values with calibrated confidence scores.
package extract

import (
	"log/slog"

	"github.com/mwhitmore/ledgerlens/internal/model"
	"github.com/mwhitmore/ledgerlens/internal/textnorm"
)

// Extract runs the three field selectors over raw OCR text and assembles the
// public extraction result. It is a pure function: identical text always
// yields an identical result, and it never fails. Unknown fields degrade to
// empty values at 0.0 confidence.
func Extract(raw string) model.ExtractionResult {
	lines := textnorm.Lines(raw)

	vendor, vendorConf, candidates := ExtractVendor(lines)
	date, dateConf := ExtractDate(lines)
	amount, amountConf := ExtractAmount(lines)

	result := model.ExtractionResult{
		Vendor:           vendor,
		VendorCandidates: candidates,
		VendorConfidence: clamp01(vendorConf),
		Date:             date,
		DateConfidence:   clamp01(dateConf),
		Amount:           amount,
		AmountConfidence: clamp01(amountConf),
	}
	result.ComputeParseConfidence()

	slog.Debug("extracted receipt fields",
		"vendor", result.Vendor,
		"date", result.Date,
		"amount", result.Amount,
		"parse_confidence", result.ParseConfidence,
	)
	return result
}
