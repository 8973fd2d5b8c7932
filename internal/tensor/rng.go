package tensor

import (
	"math/rand"
	"sync"
)

// Package-level RNG shared by tensor creation and the distribution
// samplers. Guarded by a mutex so concurrent inference runs stay safe;
// sampling is never the hot path (the kernels are).
var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(1))
)

// SeedRNG reseeds the package RNG. Call once at program start for
// reproducible sampling.
func SeedRNG(seed int64) {
	rngMu.Lock()
	defer rngMu.Unlock()
	rng = rand.New(rand.NewSource(seed))
}

// RandNormal draws from the standard normal distribution N(0, 1).
func RandNormal() float64 {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.NormFloat64()
}

// RandUniform draws from the uniform distribution U(0, 1).
func RandUniform() float64 {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Float64()
}

// RandIntn draws a uniform integer in [0, n).
func RandIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
