package model

import "math/rand/v2"

// NewRNG returns a PCG-backed generator seeded with seed, a zero seed draws one from the runtime's entropy
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
