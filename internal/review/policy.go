// Package review decides whether a processed receipt needs human
// confirmation before its fields are trusted. The decision is a pure
// function of already-computed values against user-tunable thresholds.
package review

import (
	"github.com/mwhitmore/ledgerlens/internal/model"
)

// Default thresholds. Parse confidence below the review threshold, or any
// missing field, or a weak categorization, flags the record.
const (
	DefaultParseThreshold    = 0.25
	DefaultCategoryThreshold = 0.50
)

// Policy holds the configurable review thresholds.
type Policy struct {
	ParseThreshold    float64
	CategoryThreshold float64
}

// DefaultPolicy returns the built-in thresholds.
func DefaultPolicy() Policy {
	return Policy{
		ParseThreshold:    DefaultParseThreshold,
		CategoryThreshold: DefaultCategoryThreshold,
	}
}

// Needed reports whether a human must review the record. A 0.0-confidence
// field is treated as absent, never as a literal value.
func (p Policy) Needed(ex model.ExtractionResult, cat model.CategorizationResult) bool {
	return len(p.Reasons(ex, cat)) > 0
}

// Reasons lists why the record was flagged, empty when it was not. The same
// list must back every place a record's review state is displayed.
func (p Policy) Reasons(ex model.ExtractionResult, cat model.CategorizationResult) []string {
	var reasons []string
	if ex.ParseConfidence < p.ParseThreshold {
		reasons = append(reasons, "parse confidence below review threshold")
	}
	if ex.Vendor == "" {
		reasons = append(reasons, "no vendor found")
	}
	if ex.Date == "" {
		reasons = append(reasons, "no date found")
	}
	if ex.Amount <= 0 {
		reasons = append(reasons, "no total amount found")
	}
	if cat.Confidence < p.CategoryThreshold {
		reasons = append(reasons, "low category confidence")
	}
	return reasons
}
