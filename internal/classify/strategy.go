// Package classify assigns a spending category to an extracted receipt
// using a layered decision process: learned vendor memory, deterministic
// rules, then keyword scoring. Earlier tiers short-circuit later ones.
package classify

import (
	"context"

	"github.com/mwhitmore/ledgerlens/internal/model"
)

// Input carries everything a strategy may consult. Vendor is the best-known
// merchant string: the workflow's override when present, otherwise the
// extractor's guess.
type Input struct {
	Vendor  string
	RawText string
	Lines   []string
	Blob    string
}

// Strategy is one tier of the categorization chain. The boolean reports
// whether the tier produced a decision; strategies never fail, a tier that
// cannot decide simply passes.
type Strategy interface {
	Name() string
	Classify(ctx context.Context, in Input) (model.CategorizationResult, bool)
}
