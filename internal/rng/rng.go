// Package rng provides the seeded random source used for layout generation.
//
// Layouts must be reproducible from a seed across Go releases, so the
// generator does not rely on the standard library's default source. Source
// implements xorshift* (https://en.wikipedia.org/wiki/Xorshift) behind the
// math/rand Source64 interface.
package rng

import (
	"math/rand"
	"time"
)

const (
	multiplier = 6364136223846793005
	// zeroState replaces an all-zero state, which xorshift never leaves.
	zeroState = 1442695040888963407
)

var _ rand.Source64 = (*Source)(nil)

// Source is a xorshift* random number generator.
type Source struct {
	state uint64
}

// New returns a source seeded with seed.
func New(seed int64) *Source {
	s := &Source{}
	s.Seed(seed)
	return s
}

// NewRand returns a *rand.Rand backed by a Source seeded with seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(New(seed))
}

// Seed resets the generator state.
func (s *Source) Seed(seed int64) {
	s.state = uint64(seed) + 1
	if s.state == 0 {
		s.state = zeroState
	}
}

// Uint64 returns the next 64 random bits.
func (s *Source) Uint64() uint64 {
	state := s.state
	state ^= state >> 12
	state ^= state << 25
	state ^= state >> 27
	s.state = state
	return state * multiplier
}

// Int63 returns a non-negative random 63-bit integer.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Entropy supplies seeds when the caller asks for a randomized layout.
type Entropy interface {
	// Seed returns a seed. It must never return 0.
	Seed() int64
}

// EntropyFunc adapts a function to Entropy.
type EntropyFunc func() int64

// Seed calls f, mapping 0 to 1.
func (f EntropyFunc) Seed() int64 {
	if seed := f(); seed != 0 {
		return seed
	}
	return 1
}

// TimeEntropy derives seeds from the wall clock.
var TimeEntropy Entropy = EntropyFunc(func() int64 {
	return time.Now().UnixNano()
})
