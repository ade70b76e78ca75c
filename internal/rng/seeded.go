package rng

import "math/rand"

// Seeded is a reproducible Generator backed by math/rand
type Seeded struct {
	seed int64
	rng  *rand.Rand
}

// NewSeeded returns a Generator that always produces the same sequence for the same seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn returns a random number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}

// Seed returns the seed the generator was built with
func (s *Seeded) Seed() int64 {
	return s.seed
}
