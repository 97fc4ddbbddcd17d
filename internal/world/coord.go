// Package world provides the grid primitives dungeon layouts are built on.
package world

import "fmt"

// Coord is a cell position on the layout grid. The origin room sits at (0,0).
type Coord struct {
	X, Y int
}

// Origin is the coordinate every layout starts from.
var Origin = Coord{}

// Add returns the coordinate offset by the given direction.
func (c Coord) Add(d Direction) Coord {
	return Coord{X: c.X + d.DX, Y: c.Y + d.DY}
}

// String returns the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit step on the grid.
type Direction struct {
	DX, DY int
}

var (
	Up    = Direction{DX: 0, DY: 1}
	Down  = Direction{DX: 0, DY: -1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Cardinals lists the four walk directions. The order is part of the
// generator's reproducibility contract: a seed maps to the same walk only as
// long as this order is unchanged.
var Cardinals = [4]Direction{Up, Down, Left, Right}

// Bounds describes the extents a walk may explore. Coordinates are centred
// on the origin, so each axis spans [-extent/2, extent/2].
type Bounds struct {
	Width  int
	Height int
}

// HalfWidth returns the largest absolute x coordinate inside the bounds.
func (b Bounds) HalfWidth() int { return b.Width / 2 }

// HalfHeight returns the largest absolute y coordinate inside the bounds.
func (b Bounds) HalfHeight() int { return b.Height / 2 }

// Contains returns true if the coordinate lies within the bounds.
func (b Bounds) Contains(c Coord) bool {
	hw, hh := b.HalfWidth(), b.HalfHeight()
	return c.X >= -hw && c.X <= hw && c.Y >= -hh && c.Y <= hh
}

// Clamp pulls each axis of c independently into the bounds.
func (b Bounds) Clamp(c Coord) Coord {
	return Coord{
		X: clamp(c.X, -b.HalfWidth(), b.HalfWidth()),
		Y: clamp(c.Y, -b.HalfHeight(), b.HalfHeight()),
	}
}

// Cells returns the number of distinct coordinates inside the bounds.
func (b Bounds) Cells() int {
	return (2*b.HalfWidth() + 1) * (2*b.HalfHeight() + 1)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
