package extract

// confidenceBand maps a raw heuristic score onto a fixed confidence value.
// Bands are evaluated top-down, so listing them highest-first yields a
// monotonic step function.
type confidenceBand struct {
	Min        float64
	Confidence float64
}

// bandedConfidence maps a score through its bands. Scores below every band
// yield 0.0, and the output is always clamped to [0, 1], which is what keeps
// the engine's confidence-bounds invariant airtight.
func bandedConfidence(score float64, bands []confidenceBand) float64 {
	for _, b := range bands {
		if score >= b.Min {
			return clamp01(b.Confidence)
		}
	}
	return 0.0
}

func clamp01(f float64) float64 {
	if f < 0.0 {
		return 0.0
	}
	if f > 1.0 {
		return 1.0
	}
	return f
}
