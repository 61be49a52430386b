package catch

import "math/rand"

// Source yields uniform samples in [0, 1).
// *rand.Rand satisfies it; tests substitute scripted sources.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded math/rand source.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// chance reports whether an event with probability p fires.
func chance(src Source, p float64) bool {
	return src.Float64() < p
}

// uniform samples from [lo, lo+span).
func uniform(src Source, lo, span float64) float64 {
	return lo + src.Float64()*span
}
