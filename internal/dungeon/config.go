package dungeon

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/samdwyer/roomwalk/internal/world"
)

const (
	// DefaultRoomBudget is the number of walk steps taken, origin included.
	DefaultRoomBudget = 12
	// DefaultGridSize is the default extent of each grid axis.
	DefaultGridSize = 8
	// DefaultCellSize is the world-space distance between neighbouring rooms.
	DefaultCellSize = 20.0
)

// ErrInvalidConfig is matched by every ConfigurationError.
var ErrInvalidConfig = errors.New("invalid dungeon config")

// ConfigurationError reports every problem found while validating a Config.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInvalidConfig, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidConfig.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Problems returns each validation failure separately.
func (e *ConfigurationError) Problems() []error {
	return multierr.Errors(e.Err)
}

// Config holds the inputs for one layout.
type Config struct {
	// RoomBudget is the number of walk steps, including the origin room.
	// Burned steps count against it, so fewer rooms may be spawned.
	RoomBudget int

	GridWidth  int
	GridHeight int

	// Seed for random number generation. A seed of 0 means a random seed
	// will be drawn from the generator's entropy source.
	Seed int64

	// DefaultTemplate names the authored template for default rooms.
	// Empty, or an ID the catalog does not hold, uses the synthesized fallback.
	DefaultTemplate string

	// SpecialTemplates name the authored templates for special variants,
	// in variant order.
	SpecialTemplates []string

	// CellSize is the world distance between grid cells. 0 uses DefaultCellSize.
	CellSize float64

	// SpecialThreshold is the walk progress after which special rooms may
	// appear. 0 uses room.DefaultSpecialThreshold.
	SpecialThreshold float64
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		RoomBudget: DefaultRoomBudget,
		GridWidth:  DefaultGridSize,
		GridHeight: DefaultGridSize,
	}
}

// Bounds returns the grid extents as world bounds.
func (c Config) Bounds() world.Bounds {
	return world.Bounds{Width: c.GridWidth, Height: c.GridHeight}
}

func (c Config) cellSize() float64 {
	if c.CellSize > 0 {
		return c.CellSize
	}
	return DefaultCellSize
}

// Validate returns a *ConfigurationError listing every invalid field, or nil.
func (c Config) Validate() error {
	var err error
	if c.RoomBudget < 1 {
		err = multierr.Append(err, fmt.Errorf("room budget must be at least 1, got %d", c.RoomBudget))
	}
	if c.GridWidth < 2 {
		err = multierr.Append(err, fmt.Errorf("grid width must be at least 2, got %d", c.GridWidth))
	}
	if c.GridHeight < 2 {
		err = multierr.Append(err, fmt.Errorf("grid height must be at least 2, got %d", c.GridHeight))
	}
	if c.CellSize < 0 {
		err = multierr.Append(err, fmt.Errorf("cell size must not be negative, got %v", c.CellSize))
	}
	if c.SpecialThreshold < 0 || c.SpecialThreshold >= 1 {
		err = multierr.Append(err, fmt.Errorf("special threshold must be in [0,1), got %v", c.SpecialThreshold))
	}
	for i, id := range c.SpecialTemplates {
		if id == "" {
			err = multierr.Append(err, fmt.Errorf("special template %d has an empty id", i))
		}
	}
	if err != nil {
		return &ConfigurationError{Err: err}
	}
	return nil
}
