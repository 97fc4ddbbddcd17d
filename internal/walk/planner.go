// Package walk implements the random-walk step used to lay out rooms.
package walk

import (
	"github.com/samdwyer/roomwalk/internal/world"
)

// DefaultGuard is the number of direction draws tried before the planner
// gives up looking for a free neighbour.
const DefaultGuard = 32

// Intn is the slice of *rand.Rand the planner needs.
type Intn interface {
	Intn(n int) int
}

// Occupied reports whether a coordinate already holds a room.
type Occupied interface {
	Contains(c world.Coord) bool
}

// Planner proposes the next walk position.
type Planner struct {
	// Guard overrides DefaultGuard when positive.
	Guard int
}

func (p Planner) guard() int {
	if p.Guard > 0 {
		return p.Guard
	}
	return DefaultGuard
}

// NextCoordinate steps from current in a random cardinal direction, clamped
// into bounds, retrying while the candidate is occupied. When every attempt
// lands on an occupied cell the last candidate is returned anyway; callers
// detect that case with occupied.Contains and treat it as a step that moves
// the walk without spawning a room.
func (p Planner) NextCoordinate(current world.Coord, bounds world.Bounds, occupied Occupied, rng Intn) world.Coord {
	var candidate world.Coord
	for attempt := 0; attempt < p.guard(); attempt++ {
		dir := world.Cardinals[rng.Intn(len(world.Cardinals))]
		candidate = bounds.Clamp(current.Add(dir))
		if !occupied.Contains(candidate) {
			return candidate
		}
	}
	return candidate
}
