package template

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// TintColor returns the template's tint as a tcell.Color, or
// tcell.ColorDefault if the template is untinted or the tint is malformed.
func (t *Template) TintColor() tcell.Color {
	if t.Tint == "" {
		return tcell.ColorDefault
	}
	color, err := ParseHexColor(t.Tint)
	if err != nil {
		return tcell.ColorDefault
	}
	return color
}
