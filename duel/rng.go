package duel

import "math/rand"

// NewRand returns a seeded source for boss decisions. A zero seed is
// replaced so runs stay reproducible.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}
