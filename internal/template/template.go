// Package template resolves the room geometry each spawned room is built from.
//
// Authored templates come from the embedded templates.json catalog. When no
// authored default exists a canonical fallback is synthesized once per
// process and shared by every caller.
package template

import "sync"

// Vec3 is a position or size in world units. Y is up.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Shape identifies how a piece is built.
type Shape string

const (
	ShapeFloor  Shape = "floor"
	ShapeWall   Shape = "wall"
	ShapePillar Shape = "pillar"
	ShapeProp   Shape = "prop"
)

// Piece is one box of room geometry, centred on Position relative to the
// room origin.
type Piece struct {
	Name     string `json:"name"`
	Shape    Shape  `json:"shape"`
	Position Vec3   `json:"position"`
	Size     Vec3   `json:"size"`
}

// Template describes the geometry of one kind of room.
type Template struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Glyph       string  `json:"glyph"`
	Tint        string  `json:"tint,omitempty"`
	Pieces      []Piece `json:"pieces"`
	Synthesized bool    `json:"-"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (t *Template) GlyphRune() rune {
	if len(t.Glyph) == 0 {
		return '?'
	}
	return []rune(t.Glyph)[0]
}

// Fallback geometry.
const (
	FallbackID        = "fallback"
	FallbackTint      = "#FF00FF"
	FallbackFloorSize = 12.0
	FallbackWallHigh  = 3.0
	FallbackWallThick = 0.5
)

var (
	fallbackOnce sync.Once
	fallback     *Template
)

// Fallback returns the synthesized default room: a square floor plate with a
// wall flush against each edge. It is built on first use and the same
// pointer is returned on every call. Callers must not modify it.
func Fallback() *Template {
	fallbackOnce.Do(func() {
		fallback = synthesizeFallback()
	})
	return fallback
}

func synthesizeFallback() *Template {
	const (
		half   = FallbackFloorSize / 2
		inset  = half - FallbackWallThick/2
		wallY  = FallbackWallHigh / 2
		length = FallbackFloorSize
	)

	return &Template{
		ID:    FallbackID,
		Name:  "Fallback Room",
		Glyph: "+",
		Tint:  FallbackTint,
		Pieces: []Piece{
			{Name: "floor", Shape: ShapeFloor, Size: Vec3{X: length, Z: length}},
			{
				Name: "wall_north", Shape: ShapeWall,
				Position: Vec3{Y: wallY, Z: inset},
				Size:     Vec3{X: length, Y: FallbackWallHigh, Z: FallbackWallThick},
			},
			{
				Name: "wall_south", Shape: ShapeWall,
				Position: Vec3{Y: wallY, Z: -inset},
				Size:     Vec3{X: length, Y: FallbackWallHigh, Z: FallbackWallThick},
			},
			{
				Name: "wall_east", Shape: ShapeWall,
				Position: Vec3{X: inset, Y: wallY},
				Size:     Vec3{X: FallbackWallThick, Y: FallbackWallHigh, Z: length},
			},
			{
				Name: "wall_west", Shape: ShapeWall,
				Position: Vec3{X: -inset, Y: wallY},
				Size:     Vec3{X: FallbackWallThick, Y: FallbackWallHigh, Z: length},
			},
		},
		Synthesized: true,
	}
}
