package classify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mwhitmore/ledgerlens/internal/memory"
	"github.com/mwhitmore/ledgerlens/internal/model"
)

// memoryConfidence is what a learned vendor hit earns. It must dominate
// every rule and keyword tier so that memory always wins.
const memoryConfidence = 0.95

// MemoryStrategy resolves a category from learned vendor memory. A hit is
// marked FromMemory, which the review workflow treats as auto-approvable.
type MemoryStrategy struct {
	Store memory.Store
}

// Name identifies the tier in logs and reasons.
func (s *MemoryStrategy) Name() string { return "memory" }

// Classify looks up the normalized vendor key. Store errors and malformed
// entries (missing category) are a miss, never an error.
func (s *MemoryStrategy) Classify(ctx context.Context, in Input) (model.CategorizationResult, bool) {
	if s.Store == nil {
		return model.CategorizationResult{}, false
	}
	key := memory.Normalize(in.Vendor)
	if key == "" {
		return model.CategorizationResult{}, false
	}

	entry, err := s.Store.Get(ctx, key)
	if err != nil || entry == nil {
		return model.CategorizationResult{}, false
	}
	if entry.Category == "" {
		slog.Debug("vendor memory entry missing category, treating as miss", "vendor", key)
		return model.CategorizationResult{}, false
	}

	count := entry.UseCount
	if count < 1 {
		count = 1
	}
	result := model.CategorizationResult{
		Category:   entry.Category,
		Confidence: memoryConfidence,
		FromMemory: true,
	}
	result.AddReason(fmt.Sprintf("Learned from %d prior receipts for this vendor", count))
	result.AddReason("Auto-approved based on past reviews")
	return result, true
}
