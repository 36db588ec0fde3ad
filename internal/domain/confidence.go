package domain

// ConfidenceLevel is the ordered strength rating attached to evidence and risk
// classifications. The order is total: low < medium < high.
type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "low"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceHigh   ConfidenceLevel = "high"
)

// Rank returns the position of the level in the total order. Unknown levels
// rank below low so they can never raise a propagated confidence.
func (c ConfidenceLevel) Rank() int {
	switch c {
	case ConfidenceLow:
		return 1
	case ConfidenceMedium:
		return 2
	case ConfidenceHigh:
		return 3
	default:
		return 0
	}
}

// Valid reports whether the level is one of the defined values.
func (c ConfidenceLevel) Valid() bool {
	return c.Rank() > 0
}

// MinConfidence returns the weaker of two levels.
func MinConfidence(a, b ConfidenceLevel) ConfidenceLevel {
	if b.Rank() < a.Rank() {
		return b
	}
	return a
}
