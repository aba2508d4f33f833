// Package engine wires extraction, categorization, and the review policy
// into the single entry point workflow callers consume.
package engine

import (
	"context"

	"github.com/mwhitmore/ledgerlens/internal/classify"
	"github.com/mwhitmore/ledgerlens/internal/extract"
	"github.com/mwhitmore/ledgerlens/internal/memory"
	"github.com/mwhitmore/ledgerlens/internal/model"
	"github.com/mwhitmore/ledgerlens/internal/review"
)

// Record is the combined output contract handed to the UI/workflow
// collaborator: plain, JSON-serializable, no engine state leaked.
type Record struct {
	Extraction     model.ExtractionResult     `json:"extraction"`
	Categorization model.CategorizationResult `json:"categorization"`
	ReviewReasons  []string                   `json:"review_reasons,omitempty"`
	NeedsReview    bool                       `json:"needs_review"`
}

// Engine runs the receipt understanding pipeline. It is stateless per
// invocation apart from vendor memory reads, so distinct receipts may be
// processed in parallel.
type Engine struct {
	classifier *classify.Classifier
	policy     review.Policy
}

// New builds an engine. The store may be nil to disable vendor memory;
// classifier options pass through to the categorization tiers.
func New(store memory.Store, policy review.Policy, opts ...classify.Option) *Engine {
	return &Engine{
		classifier: classify.New(store, opts...),
		policy:     policy,
	}
}

// Process extracts fields from raw OCR text, categorizes the receipt, and
// evaluates the review policy. vendorOverride, when non-empty, replaces the
// extracted vendor for categorization only, matching the workflow contract.
func (e *Engine) Process(ctx context.Context, raw, vendorOverride string) Record {
	extraction := extract.Extract(raw)

	vendor := extraction.Vendor
	if vendorOverride != "" {
		vendor = vendorOverride
	}
	categorization := e.classifier.Classify(ctx, vendor, raw)

	reasons := e.policy.Reasons(extraction, categorization)
	return Record{
		Extraction:     extraction,
		Categorization: categorization,
		NeedsReview:    len(reasons) > 0,
		ReviewReasons:  reasons,
	}
}
