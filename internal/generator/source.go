package generator

import "math/rand/v2"

// Source is the random number source used by the generators.
// *rand.Rand from math/rand/v2 satisfies this interface.
type Source interface {
	// IntN returns a uniform integer in [0, n). It panics if n <= 0.
	IntN(n int) int

	// Float64 returns a uniform float in [0.0, 1.0).
	Float64() float64
}

// globalSource draws from the goroutine-safe top-level math/rand/v2 functions.
type globalSource struct{}

func (globalSource) IntN(n int) int    { return rand.IntN(n) }
func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultSource returns a Source backed by math/rand/v2's global generator.
// It is safe for concurrent use.
func DefaultSource() Source {
	return globalSource{}
}

// NewSeededSource returns a deterministic Source. It is not safe for concurrent use.
func NewSeededSource(seed1, seed2 uint64) Source {
	return rand.New(rand.NewPCG(seed1, seed2))
}

// orDefault returns src, or the default source when src is nil.
func orDefault(src Source) Source {
	if src == nil {
		return DefaultSource()
	}
	return src
}
