package template

import (
	"errors"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/roomwalk/internal/room"
)

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	assert.Equal(t, 4, catalog.Count())
	assert.Equal(t, []string{"boss_arena", "hall", "shrine", "treasure_vault"}, catalog.IDs())

	hall := catalog.Lookup("hall")
	require.NotNil(t, hall)
	assert.Equal(t, "Stone Hall", hall.Name)
	assert.Equal(t, '#', hall.GlyphRune())
	assert.False(t, hall.Synthesized)
	assert.Nil(t, catalog.Lookup("missing"))
}

func TestLoadCatalogFS(t *testing.T) {
	fsys := fstest.MapFS{
		"pack.json":  {Data: []byte(`{"templates":[{"id":"crypt","name":"Crypt","glyph":"C","tint":"#404040"}]}`)},
		"empty.json": {Data: []byte(`{"templates":[]}`)},
		"bad.json":   {Data: []byte(`{"templates":`)},
	}

	catalog, err := LoadCatalogFS(fsys, "pack.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"crypt"}, catalog.IDs())
	assert.Equal(t, 'C', catalog.Lookup("crypt").GlyphRune())

	_, err = LoadCatalogFS(fsys, "empty.json")
	assert.Error(t, err)
	_, err = LoadCatalogFS(fsys, "bad.json")
	assert.Error(t, err)
	_, err = LoadCatalogFS(fsys, "missing.json")
	assert.Error(t, err)
}

func TestNewCatalogRejectsBadIDs(t *testing.T) {
	_, err := NewCatalog([]Template{{ID: "a"}, {ID: "a"}})
	assert.Error(t, err)

	_, err = NewCatalog([]Template{{Name: "nameless"}})
	assert.Error(t, err)

	_, err = NewCatalog([]Template{{ID: FallbackID}})
	assert.Error(t, err)
}

func TestNilCatalog(t *testing.T) {
	var c *Catalog
	assert.Nil(t, c.Lookup("hall"))
	assert.Zero(t, c.Count())
	assert.Empty(t, c.IDs())
}

func TestFallbackGeometry(t *testing.T) {
	fb := Fallback()
	require.NotNil(t, fb)
	assert.True(t, fb.Synthesized)
	assert.Equal(t, FallbackTint, fb.Tint)
	require.Len(t, fb.Pieces, 5)

	floor := fb.Pieces[0]
	assert.Equal(t, ShapeFloor, floor.Shape)
	assert.Equal(t, 12.0, floor.Size.X)
	assert.Equal(t, 12.0, floor.Size.Z)

	for _, wall := range fb.Pieces[1:] {
		assert.Equal(t, ShapeWall, wall.Shape, wall.Name)
		assert.Equal(t, 3.0, wall.Size.Y, wall.Name)
		assert.Equal(t, 1.5, wall.Position.Y, wall.Name)

		// The outer face of every wall lies on the floor edge.
		switch {
		case wall.Size.X == FallbackWallThick:
			assert.Equal(t, 6.0, abs(wall.Position.X)+wall.Size.X/2, wall.Name)
			assert.Equal(t, 12.0, wall.Size.Z, wall.Name)
		case wall.Size.Z == FallbackWallThick:
			assert.Equal(t, 6.0, abs(wall.Position.Z)+wall.Size.Z/2, wall.Name)
			assert.Equal(t, 12.0, wall.Size.X, wall.Name)
		default:
			t.Errorf("%s has no side of thickness %v", wall.Name, FallbackWallThick)
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestFallbackIsMemoized(t *testing.T) {
	var wg sync.WaitGroup
	got := make([]*Template, 8)
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = Fallback()
		}()
	}
	wg.Wait()
	for _, fb := range got {
		assert.Same(t, Fallback(), fb)
	}
}

func TestProviderDefault(t *testing.T) {
	catalog := MustLoadCatalog()

	hall, err := NewProvider(catalog, "hall", nil).Resolve(room.Default)
	require.NoError(t, err)
	assert.Same(t, catalog.Lookup("hall"), hall)

	for _, id := range []string{"", "not_authored"} {
		fb, err := NewProvider(catalog, id, nil).Resolve(room.Default)
		require.NoError(t, err)
		assert.Same(t, Fallback(), fb, "default %q", id)
	}

	fb, err := NewProvider(nil, "", nil).Resolve(room.Default)
	require.NoError(t, err)
	assert.Same(t, Fallback(), fb)
}

func TestProviderSpecial(t *testing.T) {
	catalog := MustLoadCatalog()
	p := NewProvider(catalog, "", []string{"treasure_vault", "boss_arena", "nope"})
	assert.Equal(t, 3, p.Variants())

	vault, err := p.Resolve(room.Special(0))
	require.NoError(t, err)
	assert.Equal(t, "treasure_vault", vault.ID)

	boss, err := p.Resolve(room.Special(1))
	require.NoError(t, err)
	assert.Equal(t, "boss_arena", boss.ID)

	_, err = p.Resolve(room.Special(2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingTemplate))
	var missing *MissingTemplateError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "nope", missing.ID)
	assert.Equal(t, room.Special(2), missing.Kind)

	_, err = p.Resolve(room.Special(7))
	assert.ErrorIs(t, err, ErrMissingTemplate)
}

func TestProviderCopiesSpecialIDs(t *testing.T) {
	ids := []string{"shrine"}
	p := NewProvider(MustLoadCatalog(), "", ids)
	ids[0] = "nope"
	tmpl, err := p.Resolve(room.Special(0))
	require.NoError(t, err)
	assert.Equal(t, "shrine", tmpl.ID)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00ff00", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false},
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid {
			assert.NoError(t, err, tt.input)
		} else {
			assert.Error(t, err, tt.input)
		}
	}

	c, err := ParseHexColor("#FF00FF")
	require.NoError(t, err)
	assert.Equal(t, tcell.NewRGBColor(255, 0, 255), c)
}

func TestTintColor(t *testing.T) {
	assert.Equal(t, tcell.NewRGBColor(255, 0, 255), Fallback().TintColor())
	assert.Equal(t, tcell.ColorDefault, (&Template{}).TintColor())
	assert.Equal(t, tcell.ColorDefault, (&Template{Tint: "bad"}).TintColor())
}
