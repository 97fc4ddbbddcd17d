package dungeon

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/roomwalk/internal/rng"
	"github.com/samdwyer/roomwalk/internal/room"
	"github.com/samdwyer/roomwalk/internal/telemetry"
	"github.com/samdwyer/roomwalk/internal/template"
	"github.com/samdwyer/roomwalk/internal/walk"
	"github.com/samdwyer/roomwalk/internal/world"
)

// Generator builds layouts. A Generator is not safe for concurrent use;
// separate generators may run in parallel.
type Generator struct {
	catalog *template.Catalog
	entropy rng.Entropy
	spawner Spawner
	planner walk.Planner
	tracer  trace.Tracer

	layout *Layout
}

// Option configures a Generator.
type Option func(*Generator)

// WithCatalog sets the authored templates rooms are resolved against.
func WithCatalog(c *template.Catalog) Option {
	return func(g *Generator) { g.catalog = c }
}

// WithEntropy sets the seed source used when Config.Seed is 0.
func WithEntropy(e rng.Entropy) Option {
	return func(g *Generator) { g.entropy = e }
}

// WithSpawner sets the room instantiation collaborator.
func WithSpawner(s Spawner) Option {
	return func(g *Generator) { g.spawner = s }
}

// WithPlanner replaces the walk planner.
func WithPlanner(p walk.Planner) Option {
	return func(g *Generator) { g.planner = p }
}

// WithTracer sets the tracer generation spans are recorded on.
func WithTracer(t trace.Tracer) Option {
	return func(g *Generator) { g.tracer = t }
}

// New creates a generator. Without options it has an empty catalog, draws
// seeds from the clock and mints deterministic room handles.
func New(opts ...Option) *Generator {
	g := &Generator{
		entropy: rng.TimeEntropy,
		spawner: HandleSpawner,
		tracer:  telemetry.Tracer("dungeon"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Layout returns the most recently generated layout, or nil.
func (g *Generator) Layout() *Layout {
	return g.layout
}

// Dispose releases the current layout.
func (g *Generator) Dispose() {
	g.layout = nil
}

// GenerateLayout walks the grid and returns the resulting layout, which
// also becomes the generator's current layout. On error nothing is
// published and the previous layout is kept. The context is used for
// tracing only; generation always runs to completion.
func (g *Generator) GenerateLayout(ctx context.Context, cfg Config) (*Layout, error) {
	_, span := g.tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	if err := cfg.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid config")
		return nil, err
	}

	startTime := time.Now()

	seed := cfg.Seed
	if seed == 0 {
		seed = g.entropy.Seed()
	}

	b := &builder{
		cfg:      cfg,
		seed:     seed,
		rand:     rng.NewRand(seed),
		provider: template.NewProvider(g.catalog, cfg.DefaultTemplate, cfg.SpecialTemplates),
		selector: room.Selector{Threshold: cfg.SpecialThreshold},
		planner:  g.planner,
		spawner:  g.spawner,
		layout: &Layout{
			rooms:    world.NewOccupancy[RoomRecord](cfg.RoomBudget),
			bounds:   cfg.Bounds(),
			budget:   cfg.RoomBudget,
			seed:     seed,
			cellSize: cfg.cellSize(),
		},
	}

	layout, err := b.build()

	span.SetAttributes(
		attribute.Int64("dungeon.seed", seed),
		attribute.Int("dungeon.grid_width", cfg.GridWidth),
		attribute.Int("dungeon.grid_height", cfg.GridHeight),
		attribute.Int("dungeon.room_budget", cfg.RoomBudget),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation aborted")
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("dungeon.room_count", layout.Len()),
		attribute.Int("dungeon.burned_steps", layout.BurnedSteps()),
		attribute.Int("dungeon.special_rooms", layout.SpecialCount()),
	)

	g.layout = layout
	return layout, nil
}

// builder holds the state of one generation call.
type builder struct {
	cfg      Config
	seed     int64
	rand     walk.Intn
	provider *template.Provider
	selector room.Selector
	planner  walk.Planner
	spawner  Spawner
	layout   *Layout
}

func (b *builder) build() (*Layout, error) {
	current := world.Origin
	if err := b.spawn(current, 0); err != nil {
		return nil, err
	}

	bounds := b.layout.bounds
	for i := 1; i < b.cfg.RoomBudget; i++ {
		next := b.planner.NextCoordinate(current, bounds, b.layout.rooms, b.rand)
		if b.layout.rooms.Contains(next) {
			b.layout.burned++
			current = next
			continue
		}
		if err := b.spawn(next, i); err != nil {
			return nil, err
		}
		current = next
	}
	return b.layout, nil
}

func (b *builder) spawn(c world.Coord, index int) error {
	kind := b.selector.SelectKind(index, b.cfg.RoomBudget, b.provider.Variants(), b.rand)
	tmpl, err := b.provider.Resolve(kind)
	if err != nil {
		return fmt.Errorf("room %d at %s: %w", index, c, err)
	}

	handle, err := b.spawner.Spawn(Placement{
		Seed:     b.seed,
		Coord:    c,
		Kind:     kind,
		Template: tmpl,
		Position: WorldPosition(c, b.layout.cellSize),
	})
	if err != nil {
		return fmt.Errorf("spawn room %d at %s: %w", index, c, err)
	}

	rec := RoomRecord{
		Coord:       c,
		Kind:        kind,
		TemplateID:  tmpl.ID,
		Handle:      handle,
		Synthesized: tmpl.Synthesized,
	}
	if tmpl.Synthesized {
		rec.Tint = tmpl.Tint
	}
	return b.layout.rooms.Insert(c, rec)
}
