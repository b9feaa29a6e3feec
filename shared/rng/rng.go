package rng

import (
	"math/rand/v2"
	"time"
)

// Source supplies uniform random values to the simulation.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n). Returns 0 when n <= 0.
	IntN(n int) int
}

// PCG is a thin wrapper around math/rand/v2 for deterministic seeding.
type PCG struct {
	r *rand.Rand
}

// New creates a deterministic Source using the provided seed.
func New(seed int64) *PCG {
	return &PCG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewEntropy creates a Source seeded from the wall clock.
func NewEntropy() *PCG {
	return New(time.Now().UnixNano())
}

// Float64 returns a random value in [0, 1).
func (p *PCG) Float64() float64 {
	return p.r.Float64()
}

// IntN returns a random int in [0, n).
func (p *PCG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return p.r.IntN(n)
}

// Range returns a value in [min, max) drawn from s.
func Range(s Source, min, max float64) float64 {
	return min + s.Float64()*(max-min)
}

// Centered returns a value in [-scale/2, scale/2) drawn from s.
func Centered(s Source, scale float64) float64 {
	return (s.Float64() - 0.5) * scale
}

// Chance reports whether a uniform draw falls below p.
func Chance(s Source, p float64) bool {
	if p <= 0 {
		return false
	}
	return s.Float64() < p
}

// Sequence replays a fixed list of values, cycling when exhausted.
// Useful for pinning geometry in tests.
type Sequence struct {
	Values []float64
	pos    int
}

// NewSequence returns a Sequence over values.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{Values: values}
}

// Float64 returns the next scripted value.
func (s *Sequence) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return v
}

// IntN maps the next scripted value onto [0, n).
func (s *Sequence) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(s.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
