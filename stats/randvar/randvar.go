// Package randvar draws observations from the random distributions used in
// link simulation: uniform, Bernoulli, normal and exponential. A Source
// wraps a seeded generator so simulations are reproducible.
package randvar

import (
	"fmt"
	"math"
	"math/rand"
)

// Source draws observations from a deterministic pseudo-random generator.
type Source struct {
	rng *rand.Rand

	// Box-Muller produces pairs; the spare half is cached.
	spare    float64
	hasSpare bool
}

// NewSource creates a source seeded for reproducible draws.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Uniform returns an observation uniformly distributed on [0, 1).
func (s *Source) Uniform() float64 {
	return s.rng.Float64()
}

// Bernoulli returns 1 with probability p and 0 with probability 1-p.
func (s *Source) Bernoulli(p float64) (int, error) {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return 0, fmt.Errorf("randvar: bernoulli probability out of range [0, 1]: %v", p)
	}

	if s.rng.Float64() < p {
		return 1, nil
	}

	return 0, nil
}

// Normal returns a standard normally distributed observation using the
// Box-Muller method.
func (s *Source) Normal() float64 {
	if s.hasSpare {
		s.hasSpare = false
		return s.spare
	}

	// Float64 can return zero; the log argument must not.
	u := 1 - s.rng.Float64()
	v := s.rng.Float64()

	r := math.Sqrt(-2 * math.Log(u))
	theta := 2 * math.Pi * v

	s.spare = r * math.Sin(theta)
	s.hasSpare = true

	return r * math.Cos(theta)
}

// Exponential returns an exponentially distributed observation with the
// given mean.
func (s *Source) Exponential(mean float64) (float64, error) {
	if mean <= 0 || math.IsNaN(mean) || math.IsInf(mean, 0) {
		return 0, fmt.Errorf("randvar: exponential mean must be positive and finite: %v", mean)
	}

	return -mean * math.Log(1-s.rng.Float64()), nil
}
