// Package rng provides the seeded random source shared by level generation.
package rng

import (
	"math/rand"
	"time"
)

// Source is a uniform random generator with half-open range semantics.
type Source interface {
	// RangeInt returns an int in [min, max). When max <= min it returns min.
	RangeInt(min, max int) int
	// RangeFloat returns a float64 in [min, max). When max <= min it returns min.
	RangeFloat(min, max float64) float64
}

// Rand is a Source backed by math/rand. It is not safe for concurrent use.
type Rand struct {
	seed int64
	r    *rand.Rand
}

// New creates a Rand with the given seed.
// A seed of 0 means a seed will be derived from the current time.
func New(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{
		seed: seed,
		r:    rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the generator was created with.
func (s *Rand) Seed() int64 {
	return s.seed
}

// RangeInt returns an int in [min, max).
func (s *Rand) RangeInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.r.Intn(max-min)
}

// RangeFloat returns a float64 in [min, max).
func (s *Rand) RangeFloat(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.r.Float64()*(max-min)
}

// NextSeed draws a non-zero seed for a follow-up generator, so a chain of
// runs stays reproducible from the first seed.
func (s *Rand) NextSeed() int64 {
	for {
		if v := s.r.Int63(); v != 0 {
			return v
		}
	}
}

// Pick returns a uniformly chosen element of items.
// It panics if items is empty.
func Pick[T any](src Source, items []T) T {
	return items[src.RangeInt(0, len(items))]
}
