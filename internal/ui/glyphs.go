package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomwalk/internal/dungeon"
	"github.com/samdwyer/roomwalk/internal/template"
)

const (
	glyphEmpty   = '.'
	glyphUnknown = '?'
)

// specialPalette colours special variants that have no tint of their own.
var specialPalette = []tcell.Color{
	tcell.ColorGold,
	tcell.ColorRed,
	tcell.ColorAqua,
	tcell.ColorFuchsia,
	tcell.ColorLime,
	tcell.ColorOrange,
}

// roomTemplate finds the template a record was built from.
func roomTemplate(catalog *template.Catalog, rec dungeon.RoomRecord) *template.Template {
	if rec.Synthesized {
		return template.Fallback()
	}
	return catalog.Lookup(rec.TemplateID)
}

func roomGlyph(catalog *template.Catalog, rec dungeon.RoomRecord) rune {
	if tmpl := roomTemplate(catalog, rec); tmpl != nil {
		return tmpl.GlyphRune()
	}
	return glyphUnknown
}

// roomColor returns the colour a room is drawn in: its fallback tint, then
// its template tint, then a palette colour for special variants.
func roomColor(catalog *template.Catalog, rec dungeon.RoomRecord) tcell.Color {
	if rec.Tint != "" {
		if c, err := template.ParseHexColor(rec.Tint); err == nil {
			return c
		}
	}
	if tmpl := roomTemplate(catalog, rec); tmpl != nil && tmpl.Tint != "" {
		return tmpl.TintColor()
	}
	if v, ok := rec.Kind.Variant(); ok {
		return specialPalette[v%len(specialPalette)]
	}
	return tcell.ColorSilver
}
