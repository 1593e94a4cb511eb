package roulette

import (
	"math/rand/v2"
	"time"
)

// RandomSource picks wedge indexes. Tests inject a seeded or stub source.
type RandomSource interface {
	IntN(n int) int // uniform in [0, n)
}

// NewRNG returns a PCG source for the given seed; 0 seeds from the clock.
func NewRNG(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
