// Package dungeon generates room layouts with a seeded random walk.
package dungeon

import (
	"fmt"
	"iter"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
	"go.uber.org/multierr"

	"github.com/samdwyer/roomwalk/internal/room"
	"github.com/samdwyer/roomwalk/internal/template"
	"github.com/samdwyer/roomwalk/internal/world"
)

// RoomRecord is the result of spawning one room.
type RoomRecord struct {
	Coord      world.Coord
	Kind       room.Kind
	TemplateID string
	// Handle is the reference the spawner returned for the room instance.
	Handle uuid.UUID
	// Tint marks rooms built from the synthesized fallback. Empty otherwise.
	Tint        string
	Synthesized bool
}

// Layout is a finished dungeon. It is read-only once returned.
type Layout struct {
	rooms    *world.Occupancy[RoomRecord]
	bounds   world.Bounds
	budget   int
	seed     int64
	cellSize float64
	burned   int
}

// Room returns the record at c.
func (l *Layout) Room(c world.Coord) (RoomRecord, bool) {
	return l.rooms.Get(c)
}

// Contains returns true if a room was spawned at c.
func (l *Layout) Contains(c world.Coord) bool {
	return l.rooms.Contains(c)
}

// Rooms yields every room in traversal order.
func (l *Layout) Rooms() iter.Seq2[world.Coord, RoomRecord] {
	return l.rooms.All()
}

// TraversalOrder returns the coordinates in the order rooms were spawned.
func (l *Layout) TraversalOrder() []world.Coord {
	return l.rooms.Order()
}

// Len returns the number of rooms spawned.
func (l *Layout) Len() int {
	return l.rooms.Count()
}

// Bounds returns the grid bounds the walk was confined to.
func (l *Layout) Bounds() world.Bounds { return l.bounds }

// RoomBudget returns the number of walk steps the layout was built with.
func (l *Layout) RoomBudget() int { return l.budget }

// Seed returns the seed actually used, including one drawn from entropy.
func (l *Layout) Seed() int64 { return l.seed }

// CellSize returns the world distance between grid cells.
func (l *Layout) CellSize() float64 { return l.cellSize }

// BurnedSteps returns how many walk steps landed on an occupied cell
// and spawned nothing.
func (l *Layout) BurnedSteps() int { return l.burned }

// SpecialCount returns the number of special rooms.
func (l *Layout) SpecialCount() int {
	n := 0
	for _, rec := range l.rooms.All() {
		if rec.Kind.IsSpecial() {
			n++
		}
	}
	return n
}

// WorldPosition returns the world position of room c.
func (l *Layout) WorldPosition(c world.Coord) template.Vec3 {
	return WorldPosition(c, l.cellSize)
}

// WorldPosition maps a grid coordinate onto the ground plane.
func WorldPosition(c world.Coord, cellSize float64) template.Vec3 {
	return template.Vec3{X: float64(c.X) * cellSize, Z: float64(c.Y) * cellSize}
}

// Check verifies the layout invariants and returns every violation found.
func (l *Layout) Check() error {
	var err error
	order := l.TraversalOrder()

	if len(order) != l.rooms.Count() {
		err = multierr.Append(err, fmt.Errorf("traversal has %d entries for %d rooms", len(order), l.rooms.Count()))
	}
	if len(order) > l.budget {
		err = multierr.Append(err, fmt.Errorf("%d rooms exceed budget %d", len(order), l.budget))
	}
	if len(order) == 0 || order[0] != world.Origin {
		err = multierr.Append(err, fmt.Errorf("traversal does not start at %s", world.Origin))
	}

	seen := mapset.New[world.Coord]()
	for i, c := range order {
		if seen.Has(c) {
			err = multierr.Append(err, fmt.Errorf("step %d revisits %s", i, c))
		}
		seen.Put(c)
		if !l.bounds.Contains(c) {
			err = multierr.Append(err, fmt.Errorf("step %d at %s is outside %dx%d", i, c, l.bounds.Width, l.bounds.Height))
		}
		if rec, ok := l.rooms.Get(c); !ok || rec.Coord != c {
			err = multierr.Append(err, fmt.Errorf("step %d at %s has no matching record", i, c))
		}
	}
	return err
}

// String summarises the layout.
func (l *Layout) String() string {
	return fmt.Sprintf("%d/%d rooms on %dx%d (seed %d, %d burned)",
		l.Len(), l.budget, l.bounds.Width, l.bounds.Height, l.seed, l.burned)
}
