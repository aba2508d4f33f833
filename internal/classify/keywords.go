package classify

import (
	"context"
	"fmt"
	"strings"

	"github.com/mwhitmore/ledgerlens/internal/model"
	"github.com/mwhitmore/ledgerlens/internal/textnorm"
	"github.com/mwhitmore/ledgerlens/internal/token"
)

// Keyword-tier confidence band. The floor is what a signal-free receipt
// earns; the ceiling keeps this tier below the rule and memory tiers.
const (
	keywordFloor   = 0.35
	keywordCeiling = 0.90
	signalBonus    = 0.07 // per independent receipt-quality signal
	hitBonus       = 0.05 // per matched keyword, capped
	maxHitBonuses  = 4
)

var qualityTotalLabels = []string{"total", "amount due", "balance due"}

// KeywordStrategy is the terminal tier: it always produces a result, scoring
// keyword hits per category and falling back to Other when nothing matches.
type KeywordStrategy struct {
	tables []KeywordTable
}

// NewKeywordStrategy creates the keyword-scoring tier over its data tables.
func NewKeywordStrategy(tables []KeywordTable) *KeywordStrategy {
	return &KeywordStrategy{tables: tables}
}

// Name identifies the tier in logs and reasons.
func (s *KeywordStrategy) Name() string { return "keywords" }

// Classify counts keyword hits against the combined vendor+text blob; the
// category with the most distinct hits wins. Confidence builds from the
// floor with independent receipt-quality signals plus a per-hit bonus,
// clamped to the tier ceiling.
func (s *KeywordStrategy) Classify(_ context.Context, in Input) (model.CategorizationResult, bool) {
	bestCategory := ""
	bestHits := 0
	for _, t := range s.tables {
		hits := 0
		for _, kw := range t.Keywords {
			if strings.Contains(in.Blob, kw) {
				hits++
			}
		}
		if hits > bestHits {
			bestCategory, bestHits = t.Category, hits
		}
	}

	result := model.CategorizationResult{}
	confidence := keywordFloor
	signals, signalReasons := receiptQuality(in)
	confidence += signalBonus * float64(signals)

	if bestHits == 0 {
		result.Category = model.CategoryOther
		result.Confidence = keywordFloor
		result.AddReason("No category signal found in receipt text")
		result.AddReason("New vendor, needs one review to learn")
		return result, true
	}

	bonusHits := bestHits
	if bonusHits > maxHitBonuses {
		bonusHits = maxHitBonuses
	}
	confidence += hitBonus * float64(bonusHits)
	if confidence > keywordCeiling {
		confidence = keywordCeiling
	}

	result.Category = bestCategory
	result.Confidence = confidence
	result.AddReason(fmt.Sprintf("Keyword match for %s (%d hits)", bestCategory, bestHits))
	for _, r := range signalReasons {
		result.AddReason(r)
	}
	return result, true
}

// receiptQuality counts independent signals that the text really is a
// well-formed receipt, with a short reason for each.
func receiptQuality(in Input) (int, []string) {
	signals := 0
	var reasons []string

	foundLabel := false
	for _, ln := range in.Lines {
		low := textnorm.Norm(ln)
		for _, label := range qualityTotalLabels {
			if strings.Contains(low, label) {
				foundLabel = true
				break
			}
		}
		if foundLabel {
			break
		}
	}
	if foundLabel {
		signals++
		reasons = append(reasons, "Found TOTAL-like label")
	}

	foundDate := false
	foundMoney := false
	for _, ln := range in.Lines {
		if !foundDate && token.HasDate(ln) {
			foundDate = true
		}
		if !foundMoney && token.HasAmount(ln) {
			foundMoney = true
		}
		if foundDate && foundMoney {
			break
		}
	}
	if foundDate {
		signals++
	} else {
		reasons = append(reasons, "No clear date pattern")
	}
	if foundMoney {
		signals++
	}
	if strings.TrimSpace(in.Vendor) != "" {
		signals++
	}

	return signals, reasons
}
