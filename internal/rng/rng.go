// Package rng provides the injectable randomness capability used by the
// engine. All probabilistic branching (the event shuffle at game start and
// the seal-penalty roll) goes through a Source so outcomes are reproducible
// under test with a deterministic substitute.
package rng

import (
	"math/rand"
	"time"
)

// Source supplies uniform random draws. Implementations need not be safe
// for concurrent use; callers serialize access.
type Source interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// Shuffle pseudo-randomizes the order of n elements via swap.
	Shuffle(n int, swap func(i, j int))
}

type mathSource struct {
	r *rand.Rand
}

// New returns a Source seeded from the wall clock.
func New() Source {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Source with a fixed seed, for reproducible runs.
func NewSeeded(seed int64) Source {
	return &mathSource{r: rand.New(rand.NewSource(seed))}
}

func (s *mathSource) Float64() float64 { return s.r.Float64() }

func (s *mathSource) Shuffle(n int, swap func(i, j int)) { s.r.Shuffle(n, swap) }

// Script is a deterministic Source for tests: Float64 replays the given
// values in order (cycling when exhausted) and Shuffle leaves order
// untouched.
type Script struct {
	Floats []float64
	next   int
}

func (s *Script) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.next%len(s.Floats)]
	s.next++
	return v
}

func (s *Script) Shuffle(n int, swap func(i, j int)) {}
