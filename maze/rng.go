// Package maze - random sources used for neighbour selection.
//
// Determinism:
//   - NewSource(seed) yields identical mazes for identical seeds and sizes.
//   - seed==0 maps to defaultSeed, so a zero-valued config stays reproducible.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Give every Generator its own Source.
package maze

import (
	"math/rand"
	"time"
)

// defaultSeed is the fixed seed used when callers pass seed==0.
const defaultSeed int64 = 1

// Source yields integers uniformly in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSource returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed verbatim.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// clockSeed returns a non-zero seed derived from the wall clock.
func clockSeed() int64 {
	s := time.Now().UnixNano()
	if s == 0 {
		return defaultSeed
	}
	return s
}

// Sequence replays a fixed list of choices, then keeps returning 0.
// It lets tests force the branch order of a generation run.
type Sequence struct {
	choices []int
	pos     int
}

// NewSequence returns a Sequence replaying choices in order.
func NewSequence(choices ...int) *Sequence {
	return &Sequence{choices: choices}
}

// Intn returns the next recorded choice; n is ignored.
func (s *Sequence) Intn(n int) int {
	if s.pos >= len(s.choices) {
		return 0
	}
	v := s.choices[s.pos]
	s.pos++
	return v
}
