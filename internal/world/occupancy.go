package world

import (
	"errors"
	"fmt"
	"iter"
)

// ErrDuplicateCoordinate is matched by errors returned from Occupancy.Insert
// when the coordinate is already taken.
var ErrDuplicateCoordinate = errors.New("coordinate already occupied")

// DuplicateCoordinateError reports an insert onto an occupied coordinate.
type DuplicateCoordinateError struct {
	Coord Coord
}

func (e *DuplicateCoordinateError) Error() string {
	return fmt.Sprintf("insert %s: %v", e.Coord, ErrDuplicateCoordinate)
}

// Is reports whether target is ErrDuplicateCoordinate.
func (e *DuplicateCoordinateError) Is(target error) bool {
	return target == ErrDuplicateCoordinate
}

// Occupancy tracks which coordinates are taken and by what value,
// remembering the order they were taken in.
type Occupancy[V any] struct {
	index  map[Coord]int
	order  []Coord
	values []V
}

// NewOccupancy creates an empty occupancy map sized for capacity entries.
func NewOccupancy[V any](capacity int) *Occupancy[V] {
	return &Occupancy[V]{
		index:  make(map[Coord]int, capacity),
		order:  make([]Coord, 0, capacity),
		values: make([]V, 0, capacity),
	}
}

// Contains returns true if the coordinate is occupied.
func (o *Occupancy[V]) Contains(c Coord) bool {
	_, ok := o.index[c]
	return ok
}

// Get returns the value stored at c.
func (o *Occupancy[V]) Get(c Coord) (V, bool) {
	i, ok := o.index[c]
	if !ok {
		var zero V
		return zero, false
	}
	return o.values[i], true
}

// Insert occupies c with v. It fails if c is already occupied, leaving the
// existing entry untouched.
func (o *Occupancy[V]) Insert(c Coord, v V) error {
	if o.Contains(c) {
		return &DuplicateCoordinateError{Coord: c}
	}
	o.index[c] = len(o.order)
	o.order = append(o.order, c)
	o.values = append(o.values, v)
	return nil
}

// Count returns the number of occupied coordinates.
func (o *Occupancy[V]) Count() int {
	return len(o.order)
}

// All yields every (coordinate, value) pair in insertion order. The sequence
// can be ranged over any number of times.
func (o *Occupancy[V]) All() iter.Seq2[Coord, V] {
	return func(yield func(Coord, V) bool) {
		for i, c := range o.order {
			if !yield(c, o.values[i]) {
				return
			}
		}
	}
}

// Order returns a copy of the occupied coordinates in insertion order.
func (o *Occupancy[V]) Order() []Coord {
	out := make([]Coord, len(o.order))
	copy(out, o.order)
	return out
}
