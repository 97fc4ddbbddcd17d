package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/roomwalk/internal/dungeon"
)

func TestParseFlags(t *testing.T) {
	cfg := dungeon.DefaultConfig()
	opts := parseFlags(&cfg, []string{"-rooms", "20", "-seed", "42", "-specials", "shrine,boss_arena", "-dump", "-templates", "packs/crypt.json"})

	assert.True(t, opts.dump)
	assert.Equal(t, "packs/crypt.json", opts.templates)
	assert.Equal(t, 20, cfg.RoomBudget)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, []string{"shrine", "boss_arena"}, cfg.SpecialTemplates)
	assert.Equal(t, dungeon.DefaultGridSize, cfg.GridWidth)
}

func TestParseFlagsKeepsEnvSpecials(t *testing.T) {
	cfg := dungeon.DefaultConfig()
	cfg.SpecialTemplates = []string{"shrine"}
	assert.False(t, parseFlags(&cfg, nil).dump)
	assert.Equal(t, []string{"shrine"}, cfg.SpecialTemplates)
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"templates":[{"id":"crypt","glyph":"C"}]}`), 0o644))

	catalog, err := loadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"crypt"}, catalog.IDs())

	builtin, err := loadCatalog("")
	require.NoError(t, err)
	assert.NotNil(t, builtin.Lookup("hall"))
}

func TestSetupOTelEnv(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")
	t.Setenv("HONEYCOMB_ROOMWALK_API_KEY", "")
	setupOTelEnv()
	assert.Empty(t, os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))

	t.Setenv("HONEYCOMB_ROOMWALK_API_KEY", "key")
	t.Setenv("HONEYCOMB_ROOMWALK_DATASET", "")
	setupOTelEnv()
	assert.Equal(t, "https://api.honeycomb.io", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	assert.Equal(t, "x-honeycomb-team=key,x-honeycomb-dataset=roomwalk", os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"))
}
