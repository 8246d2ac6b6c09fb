package celest

import "math/rand/v2"

// Rand is the random source used for ship motion. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a PCG-backed source seeded with seed, so runs and tests can
// replay the same ship motion.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
