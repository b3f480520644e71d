package sim

import (
	"fmt"
	"math/rand"
)

// Rand is the uniform random integer source the simulation draws from.
// Bounds are inclusive on both ends.
type Rand interface {
	IntBetween(lo, hi int) int
}

type seededRand struct {
	r *rand.Rand
}

// NewRand returns a Rand backed by a seeded math/rand source.
// The same seed always yields the same sequence.
func NewRand(seed int64) Rand {
	return &seededRand{r: rand.New(rand.NewSource(seed))}
}

// IntBetween returns a uniformly distributed integer in [lo, hi].
func (s *seededRand) IntBetween(lo, hi int) int {
	if lo > hi {
		panic(fmt.Sprintf("sim: IntBetween(%d, %d): empty range", lo, hi))
	}
	return lo + s.r.Intn(hi-lo+1)
}
