package model

import "math/rand/v2"

// NewRand returns a PCG backed source. A zero seed picks a random one, any
// other seed makes construction reproducible.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, 0))
}
