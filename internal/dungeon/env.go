package dungeon

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvRoomBudget       = "ROOMWALK_ROOM_BUDGET"
	EnvGridWidth        = "ROOMWALK_GRID_WIDTH"
	EnvGridHeight       = "ROOMWALK_GRID_HEIGHT"
	EnvSeed             = "ROOMWALK_SEED"
	EnvDefaultTemplate  = "ROOMWALK_DEFAULT_TEMPLATE"
	EnvSpecialTemplates = "ROOMWALK_SPECIAL_TEMPLATES"
	EnvCellSize         = "ROOMWALK_CELL_SIZE"
)

// ConfigFromEnv starts from DefaultConfig and applies any ROOMWALK_*
// variables found through lookup (usually os.LookupEnv). Every malformed
// value is reported in the returned error. The result is not validated.
func ConfigFromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()
	var err error

	parseInt := func(key string, dst *int) {
		if v, ok := lookup(key); ok && v != "" {
			n, perr := strconv.Atoi(strings.TrimSpace(v))
			if perr != nil {
				err = multierr.Append(err, fmt.Errorf("%s: %w", key, perr))
				return
			}
			*dst = n
		}
	}

	parseInt(EnvRoomBudget, &cfg.RoomBudget)
	parseInt(EnvGridWidth, &cfg.GridWidth)
	parseInt(EnvGridHeight, &cfg.GridHeight)

	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, perr := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", EnvSeed, perr))
		} else {
			cfg.Seed = seed
		}
	}

	if v, ok := lookup(EnvCellSize); ok && v != "" {
		size, perr := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", EnvCellSize, perr))
		} else {
			cfg.CellSize = size
		}
	}

	if v, ok := lookup(EnvDefaultTemplate); ok {
		cfg.DefaultTemplate = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvSpecialTemplates); ok {
		cfg.SpecialTemplates = SplitTemplateList(v)
	}

	return cfg, err
}

// SplitTemplateList splits a comma separated list of template IDs,
// dropping blanks.
func SplitTemplateList(s string) []string {
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
