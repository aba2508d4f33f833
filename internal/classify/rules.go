package classify

import (
	"context"
	"fmt"
	"strings"

	"github.com/mwhitmore/ledgerlens/internal/model"
	"github.com/mwhitmore/ledgerlens/internal/textnorm"
)

// Rule confidences: a vendor-string hit is stronger evidence than the same
// pattern buried in free text.
const (
	ruleVendorConfidence = 0.90
	ruleTextConfidence   = 0.80
)

// Rule is one deterministic (pattern, category) pair. Patterns are
// normalized substrings. VendorOnly patterns are too ambiguous to trust
// inside free text; Guarded patterns are suppressed when the matching line
// is payment or tax boilerplate.
type Rule struct {
	Pattern    string `yaml:"pattern"`
	Category   string `yaml:"category"`
	VendorOnly bool   `yaml:"vendor_only,omitempty"`
	Guarded    bool   `yaml:"guarded,omitempty"`
}

// feeBoilerplate marks lines where fee vocabulary is card-processing
// chatter rather than a permit or government charge.
var feeBoilerplate = []string{
	"card fee", "processing fee", "service fee", "convenience fee",
	"transaction fee", "surcharge", "card processing",
}

// RuleStrategy matches an ordered rule table against the vendor string
// first, then the raw text.
type RuleStrategy struct {
	rules []Rule
}

// NewRuleStrategy creates the deterministic-rule tier over an ordered table.
func NewRuleStrategy(rules []Rule) *RuleStrategy {
	return &RuleStrategy{rules: rules}
}

// Name identifies the tier in logs and reasons.
func (s *RuleStrategy) Name() string { return "rules" }

// Classify applies the table in order: any vendor hit wins before the first
// text hit is considered.
func (s *RuleStrategy) Classify(_ context.Context, in Input) (model.CategorizationResult, bool) {
	vendor := textnorm.Norm(in.Vendor)
	if vendor != "" {
		for _, r := range s.rules {
			if strings.Contains(vendor, r.Pattern) {
				result := model.CategorizationResult{
					Category:   r.Category,
					Confidence: ruleVendorConfidence,
				}
				result.AddReason(fmt.Sprintf("Vendor matched %s rule %q", r.Category, r.Pattern))
				return result, true
			}
		}
	}

	for _, r := range s.rules {
		if r.VendorOnly {
			continue
		}
		if s.matchText(in.Lines, r) {
			result := model.CategorizationResult{
				Category:   r.Category,
				Confidence: ruleTextConfidence,
			}
			result.AddReason(fmt.Sprintf("Receipt text matched %s rule %q", r.Category, r.Pattern))
			return result, true
		}
	}

	return model.CategorizationResult{}, false
}

// matchText scans normalized lines for the rule pattern, applying the
// payment-boilerplate guard to guarded rules.
func (s *RuleStrategy) matchText(lines []string, r Rule) bool {
	for _, ln := range lines {
		low := textnorm.Norm(ln)
		if !strings.Contains(low, r.Pattern) {
			continue
		}
		if r.Guarded && isFeeBoilerplate(low) {
			continue
		}
		return true
	}
	return false
}

func isFeeBoilerplate(low string) bool {
	for _, t := range feeBoilerplate {
		if strings.Contains(low, t) {
			return true
		}
	}
	return false
}
