// Package model defines the core domain records used throughout the engine.
package model

import "fmt"

// Parse confidence weights. Vendor errors are the most damaging downstream,
// dates are the easiest to fix by hand.
const (
	VendorWeight = 0.45
	AmountWeight = 0.35
	DateWeight   = 0.20
)

// ExtractionResult holds the structured fields recovered from raw OCR text.
// Every confidence is in [0, 1]; an empty field always carries 0.0.
type ExtractionResult struct {
	Vendor           string   `json:"vendor"`
	Date             string   `json:"date"`
	VendorCandidates []string `json:"vendor_candidates,omitempty"`
	Amount           float64  `json:"amount"`
	VendorConfidence float64  `json:"vendor_confidence"`
	DateConfidence   float64  `json:"date_confidence"`
	AmountConfidence float64  `json:"amount_confidence"`
	ParseConfidence  float64  `json:"parse_confidence"`
}

// ComputeParseConfidence derives the overall parse confidence from the
// per-field confidences and stores it on the result.
func (r *ExtractionResult) ComputeParseConfidence() {
	r.ParseConfidence = VendorWeight*r.VendorConfidence +
		AmountWeight*r.AmountConfidence +
		DateWeight*r.DateConfidence
}

// Validate ensures the result honors the engine's invariants.
func (r *ExtractionResult) Validate() error {
	for name, conf := range map[string]float64{
		"vendor": r.VendorConfidence,
		"date":   r.DateConfidence,
		"amount": r.AmountConfidence,
		"parse":  r.ParseConfidence,
	} {
		if conf < 0.0 || conf > 1.0 {
			return fmt.Errorf("%s confidence must be between 0.0 and 1.0, got %.2f", name, conf)
		}
	}
	if r.Vendor == "" && r.VendorConfidence != 0.0 {
		return fmt.Errorf("empty vendor must carry 0.0 confidence")
	}
	if r.Date == "" && r.DateConfidence != 0.0 {
		return fmt.Errorf("empty date must carry 0.0 confidence")
	}
	if r.Amount < 0 {
		return fmt.Errorf("amount must be non-negative, got %.2f", r.Amount)
	}
	if r.Amount == 0 && r.AmountConfidence != 0.0 {
		return fmt.Errorf("unknown amount must carry 0.0 confidence")
	}
	if len(r.VendorCandidates) > 3 {
		return fmt.Errorf("at most 3 vendor candidates, got %d", len(r.VendorCandidates))
	}
	return nil
}
