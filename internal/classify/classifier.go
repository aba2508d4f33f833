package classify

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mwhitmore/ledgerlens/internal/memory"
	"github.com/mwhitmore/ledgerlens/internal/model"
	"github.com/mwhitmore/ledgerlens/internal/textnorm"
)

// Classifier runs the categorization tiers in precedence order:
// memory > rules > keywords.
type Classifier struct {
	strategies []Strategy
}

// Option customizes classifier construction.
type Option func(*options)

type options struct {
	rules    []Rule
	keywords []KeywordTable
}

// WithRules replaces the built-in deterministic rule table.
func WithRules(rules []Rule) Option {
	return func(o *options) { o.rules = rules }
}

// WithKeywordTables replaces the built-in keyword tables.
func WithKeywordTables(tables []KeywordTable) Option {
	return func(o *options) { o.keywords = tables }
}

// New assembles the layered classifier. The store may be nil, which simply
// disables the memory tier.
func New(store memory.Store, opts ...Option) *Classifier {
	cfg := options{
		rules:    DefaultRules(),
		keywords: DefaultKeywordTables(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Classifier{
		strategies: []Strategy{
			&MemoryStrategy{Store: store},
			NewRuleStrategy(cfg.rules),
			NewKeywordStrategy(cfg.keywords),
		},
	}
}

// Classify assigns a category to a receipt. vendor is the best-known
// merchant string (workflow override or the extractor's guess); raw is the
// OCR text. The result always has a category and a non-empty reason list.
func (c *Classifier) Classify(ctx context.Context, vendor, raw string) model.CategorizationResult {
	in := Input{
		Vendor:  vendor,
		RawText: raw,
		Lines:   textnorm.Lines(raw),
		Blob:    strings.TrimSpace(textnorm.Norm(vendor) + " " + textnorm.Blob(raw)),
	}

	for _, s := range c.strategies {
		result, ok := s.Classify(ctx, in)
		if !ok {
			continue
		}
		slog.Debug("categorized receipt",
			"strategy", s.Name(),
			"category", result.Category,
			"confidence", result.Confidence,
		)
		return result
	}

	// Unreachable while the keyword tier is terminal, kept as the documented
	// universal fallback.
	result := model.CategorizationResult{
		Category:   model.CategoryOther,
		Confidence: keywordFloor,
	}
	result.AddReason("No category signal found in receipt text")
	return result
}
