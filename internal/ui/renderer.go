package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomwalk/internal/dungeon"
	"github.com/samdwyer/roomwalk/internal/template"
	"github.com/samdwyer/roomwalk/internal/world"
)

const (
	mapLeft = 1
	mapTop  = 1
	// cellWidth is the number of columns per grid cell, keeping the map
	// roughly square in a terminal.
	cellWidth = 2
)

// Renderer handles drawing layouts to the screen.
type Renderer struct {
	screen  *Screen
	catalog *template.Catalog
}

// NewRenderer creates a new renderer for the given screen. The catalog is
// used to find room glyphs and colours.
func NewRenderer(screen *Screen, catalog *template.Catalog) *Renderer {
	return &Renderer{screen: screen, catalog: catalog}
}

// CellPosition returns the screen position of a grid coordinate in the map
// view. North (positive y) is up.
func CellPosition(bounds world.Bounds, c world.Coord) (x, y int) {
	return mapLeft + (c.X+bounds.HalfWidth())*cellWidth, mapTop + (bounds.HalfHeight() - c.Y)
}

// RenderMap draws the layout grid with the cursor highlighted, followed by
// the status lines.
func (r *Renderer) RenderMap(layout *dungeon.Layout, cursor world.Coord, status []string) {
	r.screen.Clear()

	bounds := layout.Bounds()
	hw, hh := bounds.HalfWidth(), bounds.HalfHeight()
	emptyStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)

	for y := hh; y >= -hh; y-- {
		for x := -hw; x <= hw; x++ {
			c := world.Coord{X: x, Y: y}
			sx, sy := CellPosition(bounds, c)

			glyph, style := glyphEmpty, emptyStyle
			if rec, ok := layout.Room(c); ok {
				glyph = roomGlyph(r.catalog, rec)
				style = tcell.StyleDefault.Foreground(roomColor(r.catalog, rec))
				if c == world.Origin {
					style = style.Bold(true)
				}
			}
			if c == cursor {
				style = style.Reverse(true)
			}
			r.screen.SetContent(sx, sy, glyph, style)
		}
	}

	r.renderStatus(mapTop+2*hh+2, status)
	r.screen.Show()
}

// RenderList draws the rooms in traversal order with the selected entry
// highlighted, followed by the status lines.
func (r *Renderer) RenderList(layout *dungeon.Layout, selected int, status []string) {
	r.screen.Clear()

	_, height := r.screen.Size()
	visible := max(1, height-len(status)-3)
	first := max(0, selected-visible+1)

	row := mapTop
	for i, c := range layout.TraversalOrder() {
		if i < first {
			continue
		}
		if i >= first+visible {
			break
		}
		rec, _ := layout.Room(c)
		style := tcell.StyleDefault.Foreground(roomColor(r.catalog, rec))
		if i == selected {
			style = style.Reverse(true)
		}
		r.screen.DrawText(mapLeft, row, DescribeRoom(i, rec), style)
		row++
	}

	r.renderStatus(row+1, status)
	r.screen.Show()
}

func (r *Renderer) renderStatus(top int, lines []string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, line := range lines {
		r.screen.DrawText(mapLeft, top+i, line, style)
	}
}

// DescribeRoom returns a one-line description of a room record.
func DescribeRoom(index int, rec dungeon.RoomRecord) string {
	return fmt.Sprintf("%3d %-9s %-10s %-14s %s",
		index, rec.Coord, rec.Kind, rec.TemplateID, rec.Handle)
}
