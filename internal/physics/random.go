package physics

import (
	"math"
	"math/rand/v2"
	"time"
)

// Rand is the random source used by spawning and cosmetic effects.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a PCG-backed source. A zero seed picks one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomRange returns a uniform value in [min, max).
func RandomRange(r Rand, min, max float64) float64 {
	return r.Float64()*(max-min) + min
}

// RandomAngle returns a uniform angle in [0, 2π).
func RandomAngle(r Rand) float64 {
	return r.Float64() * 2 * math.Pi
}
