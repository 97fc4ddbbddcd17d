package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/roomwalk/internal/rng"
	"github.com/samdwyer/roomwalk/internal/world"
)

// scripted returns draws from a fixed list, repeating the last one.
type scripted struct {
	draws []int
	calls int
}

func (s *scripted) Intn(n int) int {
	i := min(s.calls, len(s.draws)-1)
	s.calls++
	return s.draws[i] % n
}

func occupy(t *testing.T, coords ...world.Coord) *world.Occupancy[struct{}] {
	t.Helper()
	occ := world.NewOccupancy[struct{}](len(coords))
	for _, c := range coords {
		require.NoError(t, occ.Insert(c, struct{}{}))
	}
	return occ
}

func TestNextCoordinateFreeNeighbour(t *testing.T) {
	bounds := world.Bounds{Width: 8, Height: 8}
	occ := occupy(t, world.Origin)

	for i, want := range []world.Coord{{0, 1}, {0, -1}, {-1, 0}, {1, 0}} {
		r := &scripted{draws: []int{i}}
		got := Planner{}.NextCoordinate(world.Origin, bounds, occ, r)
		assert.Equal(t, want, got)
		assert.Equal(t, 1, r.calls)
	}
}

func TestNextCoordinateRetriesOccupied(t *testing.T) {
	bounds := world.Bounds{Width: 8, Height: 8}
	occ := occupy(t, world.Origin, world.Coord{0, 1}, world.Coord{0, -1})

	// up and down are taken, left is free.
	r := &scripted{draws: []int{0, 1, 2}}
	got := Planner{}.NextCoordinate(world.Origin, bounds, occ, r)
	assert.Equal(t, world.Coord{-1, 0}, got)
	assert.Equal(t, 3, r.calls)
}

func TestNextCoordinateClampsAtEdge(t *testing.T) {
	bounds := world.Bounds{Width: 4, Height: 4}
	edge := world.Coord{2, 0}
	occ := occupy(t, edge)

	// Stepping right from the edge clamps back onto edge, which is taken.
	r := &scripted{draws: []int{3, 3, 0}}
	got := Planner{}.NextCoordinate(edge, bounds, occ, r)
	assert.Equal(t, world.Coord{2, 1}, got)
	assert.Equal(t, 3, r.calls)
}

func TestNextCoordinateGuardExhaustion(t *testing.T) {
	bounds := world.Bounds{Width: 8, Height: 8}
	occ := occupy(t, world.Origin, world.Coord{0, 1}, world.Coord{0, -1}, world.Coord{-1, 0}, world.Coord{1, 0})

	r := &scripted{draws: []int{0, 1, 2, 3}}
	got := Planner{}.NextCoordinate(world.Origin, bounds, occ, r)
	assert.Equal(t, DefaultGuard, r.calls)
	assert.True(t, occ.Contains(got), "exhausted walk returns an occupied candidate")
	assert.Equal(t, world.Coord{1, 0}, got, "last candidate is returned")
}

func TestNextCoordinateCustomGuard(t *testing.T) {
	bounds := world.Bounds{Width: 2, Height: 2}
	occ := occupy(t, world.Origin, world.Coord{0, 1}, world.Coord{0, -1}, world.Coord{-1, 0}, world.Coord{1, 0})

	r := &scripted{draws: []int{0}}
	got := Planner{Guard: 5}.NextCoordinate(world.Origin, bounds, occ, r)
	assert.Equal(t, 5, r.calls)
	assert.Equal(t, world.Coord{0, 1}, got)
}

func TestNextCoordinateStaysInBounds(t *testing.T) {
	bounds := world.Bounds{Width: 3, Height: 2}
	occ := occupy(t)
	r := rng.NewRand(1)
	current := world.Origin
	for i := 0; i < 500; i++ {
		current = Planner{}.NextCoordinate(current, bounds, occ, r)
		require.True(t, bounds.Contains(current), "step %d left bounds: %v", i, current)
	}
}
