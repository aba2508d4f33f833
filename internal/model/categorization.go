package model

import "fmt"

// MaxReasons caps the reason list kept on a categorization result.
const MaxReasons = 4

// CategorizationResult describes how a receipt was assigned a category.
// FromMemory marks results sourced from learned vendor memory, which the
// review workflow treats as auto-approvable.
type CategorizationResult struct {
	Category   string   `json:"category"`
	Reasons    []string `json:"reasons"`
	Confidence float64  `json:"confidence"`
	FromMemory bool     `json:"from_memory"`
}

// AddReason appends a reason, dropping duplicates and enforcing the cap.
func (c *CategorizationResult) AddReason(reason string) {
	if reason == "" || len(c.Reasons) >= MaxReasons {
		return
	}
	for _, r := range c.Reasons {
		if r == reason {
			return
		}
	}
	c.Reasons = append(c.Reasons, reason)
}

// Validate ensures the result honors the engine's invariants.
func (c *CategorizationResult) Validate() error {
	if c.Category == "" {
		return fmt.Errorf("category is required")
	}
	if c.Confidence < 0.0 || c.Confidence > 1.0 {
		return fmt.Errorf("confidence must be between 0.0 and 1.0, got %.2f", c.Confidence)
	}
	if len(c.Reasons) == 0 {
		return fmt.Errorf("reasons must be non-empty")
	}
	if len(c.Reasons) > MaxReasons {
		return fmt.Errorf("at most %d reasons, got %d", MaxReasons, len(c.Reasons))
	}
	return nil
}
