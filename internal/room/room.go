// Package room classifies rooms by how far along the walk they were spawned.
package room

import "fmt"

// DefaultSpecialThreshold is the walk progress past which rooms become
// eligible for a special variant.
const DefaultSpecialThreshold = 0.8

// Kind classifies a room as the default room or one special variant.
// The zero value is Default.
type Kind struct {
	special bool
	variant int
}

// Default is the kind of ordinary rooms.
var Default = Kind{}

// Special returns the kind for special variant v.
func Special(v int) Kind {
	return Kind{special: true, variant: v}
}

// IsSpecial returns true for special kinds.
func (k Kind) IsSpecial() bool {
	return k.special
}

// Variant returns the special variant index, or false for Default.
func (k Kind) Variant() (int, bool) {
	return k.variant, k.special
}

// String returns "default" or "special[N]".
func (k Kind) String() string {
	if !k.special {
		return "default"
	}
	return fmt.Sprintf("special[%d]", k.variant)
}

// Intn is the slice of *rand.Rand the selector needs.
type Intn interface {
	Intn(n int) int
}

// Progress returns how far through a walk of totalCount steps the given
// index is, in [0,1]. Walks of one step or fewer count as complete.
func Progress(index, totalCount int) float64 {
	if totalCount <= 1 {
		return 1
	}
	return float64(index) / float64(totalCount-1)
}

// Selector picks a room kind from walk progress.
type Selector struct {
	// Threshold overrides DefaultSpecialThreshold when positive.
	Threshold float64
}

func (s Selector) threshold() float64 {
	if s.Threshold > 0 {
		return s.Threshold
	}
	return DefaultSpecialThreshold
}

// SelectKind returns a uniformly chosen special variant once progress passes
// the threshold and variants are available, and Default otherwise. The rng
// is drawn from only when a special room is chosen.
func (s Selector) SelectKind(index, totalCount, variants int, rng Intn) Kind {
	if variants <= 0 || Progress(index, totalCount) <= s.threshold() {
		return Default
	}
	return Special(rng.Intn(variants))
}
