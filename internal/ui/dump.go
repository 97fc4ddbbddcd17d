package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"github.com/samdwyer/roomwalk/internal/dungeon"
	"github.com/samdwyer/roomwalk/internal/template"
	"github.com/samdwyer/roomwalk/internal/world"
)

var (
	dumpHeader = color.Style{color.FgWhite, color.OpBold}
	dumpEmpty  = color.Style{color.FgGray}
	dumpAxis   = color.Style{color.FgCyan}
)

// Dump writes the layout as a coloured text map followed by the rooms in
// traversal order.
func Dump(w io.Writer, layout *dungeon.Layout, catalog *template.Catalog) error {
	var b strings.Builder

	fmt.Fprintln(&b, dumpHeader.Sprint(layout.String()))

	bounds := layout.Bounds()
	hw, hh := bounds.HalfWidth(), bounds.HalfHeight()
	for y := hh; y >= -hh; y-- {
		b.WriteString(dumpAxis.Sprintf("%3d ", y))
		for x := -hw; x <= hw; x++ {
			rec, ok := layout.Room(world.Coord{X: x, Y: y})
			if !ok {
				b.WriteString(dumpEmpty.Sprint(string(glyphEmpty)))
			} else {
				b.WriteString(roomHex(catalog, rec).Sprint(string(roomGlyph(catalog, rec))))
			}
			if x < hw {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	i := 0
	for _, rec := range layout.Rooms() {
		fmt.Fprintln(&b, DescribeRoom(i, rec))
		i++
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func roomHex(catalog *template.Catalog, rec dungeon.RoomRecord) color.RGBColor {
	c := roomColor(catalog, rec).TrueColor()
	return color.RGB(uint8(c.Hex()>>16), uint8(c.Hex()>>8), uint8(c.Hex()))
}
