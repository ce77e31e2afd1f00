package patterngen

import "math/rand/v2"

// Source supplies uniformly distributed integers in [0, n).
// Implementations are not required to be cryptographically secure.
type Source interface {
	IntN(n int) int
}

// globalSource draws from the math/rand/v2 top-level generator,
// which is seeded randomly and safe for concurrent use.
type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// NewSeededSource returns a deterministic source. Two generators built with
// the same seed and configuration produce the same sequence of strings.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
