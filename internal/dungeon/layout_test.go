package dungeon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/samdwyer/roomwalk/internal/room"
	"github.com/samdwyer/roomwalk/internal/template"
	"github.com/samdwyer/roomwalk/internal/world"
)

func handBuilt(t *testing.T, bounds world.Bounds, budget int, coords ...world.Coord) *Layout {
	t.Helper()
	l := &Layout{
		rooms:    world.NewOccupancy[RoomRecord](len(coords)),
		bounds:   bounds,
		budget:   budget,
		cellSize: DefaultCellSize,
	}
	for _, c := range coords {
		require.NoError(t, l.rooms.Insert(c, RoomRecord{Coord: c, Kind: room.Default}))
	}
	return l
}

func TestCheckAcceptsValidLayout(t *testing.T) {
	l := handBuilt(t, world.Bounds{Width: 4, Height: 4}, 3, world.Origin, world.Coord{1, 0}, world.Coord{1, 1})
	assert.NoError(t, l.Check())
}

func TestCheckReportsViolations(t *testing.T) {
	l := handBuilt(t, world.Bounds{Width: 2, Height: 2}, 2, world.Coord{1, 0}, world.Origin, world.Coord{5, 0})
	err := l.Check()
	require.Error(t, err)

	// over budget, wrong start, out of bounds
	assert.Len(t, multierr.Errors(err), 3)
}

func TestCheckEmptyLayout(t *testing.T) {
	l := handBuilt(t, world.Bounds{Width: 2, Height: 2}, 1)
	assert.Error(t, l.Check())
}

func TestWorldPosition(t *testing.T) {
	assert.Equal(t, template.Vec3{X: 40, Z: -20}, WorldPosition(world.Coord{2, -1}, 20))
	l := handBuilt(t, world.Bounds{Width: 4, Height: 4}, 1, world.Origin)
	assert.Equal(t, template.Vec3{X: -20, Z: 60}, l.WorldPosition(world.Coord{-1, 3}))
}

func TestLayoutString(t *testing.T) {
	l := handBuilt(t, world.Bounds{Width: 4, Height: 6}, 5, world.Origin)
	l.seed = 9
	l.burned = 2
	assert.Equal(t, "1/5 rooms on 4x6 (seed 9, 2 burned)", l.String())
}
