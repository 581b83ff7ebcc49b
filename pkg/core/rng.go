package core

import "math/rand/v2"

// Source is the randomness every generator and simulation draws from. Passing
// it explicitly keeps runs reproducible and lets tests substitute a stub.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n). n <= 0 yields 0.
	IntN(n int) int
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a random value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Range returns a random float in [min, max).
func Range(src Source, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + src.Float64()*(max-min)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// FixedSource always returns the same draw. A Value of 0 makes every
// probability check with p > 0 succeed.
type FixedSource struct {
	Value float64
}

// Float64 returns the fixed value.
func (f FixedSource) Float64() float64 { return f.Value }

// IntN returns the fixed value scaled into [0, n).
func (f FixedSource) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(f.Value * float64(n))
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}
