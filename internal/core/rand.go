package core

import (
	"math/rand"
	"time"
)

// Rand is the random source games draw from.
// *rand.Rand satisfies it; tests plug in scripted sequences.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded source. A zero seed means "seed from the clock".
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// SequenceRand replays a fixed list of values in a loop.
type SequenceRand struct {
	Values []float64
	next   int
}

// Float64 returns the next scripted value, cycling when the list is exhausted.
// An empty list always yields 0.
func (s *SequenceRand) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}
