package viewer

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomwalk/internal/dungeon"
	"github.com/samdwyer/roomwalk/internal/telemetry"
	"github.com/samdwyer/roomwalk/internal/template"
	"github.com/samdwyer/roomwalk/internal/ui"
	"github.com/samdwyer/roomwalk/internal/world"
)

// Viewer holds the browser state.
type Viewer struct {
	screen    *ui.Screen
	renderer  *ui.Renderer
	generator *dungeon.Generator
	config    dungeon.Config

	layout   *dungeon.Layout
	cursor   world.Coord
	selected int
	mode     Mode
	message  string
	running  bool
}

// New creates a viewer that draws on screen and regenerates layouts from cfg.
func New(screen *ui.Screen, generator *dungeon.Generator, catalog *template.Catalog, cfg dungeon.Config) *Viewer {
	return &Viewer{
		screen:    screen,
		renderer:  ui.NewRenderer(screen, catalog),
		generator: generator,
		config:    cfg,
		mode:      ModeMap,
		running:   true,
	}
}

// Run generates the first layout and executes the input loop until quit.
func (v *Viewer) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("viewer")

	ctx, initSpan := tracer.Start(ctx, "viewer.init")
	err := v.regenerate(ctx, v.config.Seed)
	if err != nil {
		initSpan.RecordError(err)
	} else {
		initSpan.SetAttributes(attribute.Int64("dungeon.seed", v.layout.Seed()))
	}
	initSpan.End()
	if err != nil {
		return err
	}

	for v.running {
		v.render()
		v.handleInput(ctx)
	}

	v.screen.Close()
	return nil
}

// Layout returns the layout being viewed.
func (v *Viewer) Layout() *dungeon.Layout {
	return v.layout
}

// regenerate replaces the current layout. A failed generation keeps the
// old layout on screen and reports the error in the status line.
func (v *Viewer) regenerate(ctx context.Context, seed int64) error {
	cfg := v.config
	cfg.Seed = seed
	layout, err := v.generator.GenerateLayout(ctx, cfg)
	if err != nil {
		if v.layout != nil {
			v.message = err.Error()
			return nil
		}
		return err
	}
	v.layout = layout
	v.cursor = world.Origin
	v.selected = 0
	v.message = ""
	return nil
}

func (v *Viewer) status() []string {
	lines := []string{v.layout.String()}
	if rec, ok := v.currentRoom(); ok {
		lines = append(lines, ui.DescribeRoom(v.indexOf(rec.Coord), rec))
	} else {
		lines = append(lines, fmt.Sprintf("    %s empty", v.cursor))
	}
	lines = append(lines, "arrows move  tab "+v.mode.Next().String()+"  r random  n/p seed  q quit")
	if v.message != "" {
		lines = append(lines, v.message)
	}
	return lines
}

func (v *Viewer) currentRoom() (dungeon.RoomRecord, bool) {
	if v.mode == ModeList {
		order := v.layout.TraversalOrder()
		return v.layout.Room(order[v.selected])
	}
	return v.layout.Room(v.cursor)
}

func (v *Viewer) indexOf(c world.Coord) int {
	for i, o := range v.layout.TraversalOrder() {
		if o == c {
			return i
		}
	}
	return -1
}

func (v *Viewer) render() {
	switch v.mode {
	case ModeList:
		v.renderer.RenderList(v.layout, v.selected, v.status())
	default:
		v.renderer.RenderMap(v.layout, v.cursor, v.status())
	}
}

// handleInput processes a single input event.
func (v *Viewer) handleInput(ctx context.Context) {
	ev := v.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		v.screen.Sync()
	case nil:
		v.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (v *Viewer) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyTab:
		v.mode = v.mode.Next()
		if v.mode == ModeList {
			if i := v.indexOf(v.cursor); i >= 0 {
				v.selected = i
			}
		} else {
			v.cursor = v.layout.TraversalOrder()[v.selected]
		}

	case tcell.KeyUp:
		v.move(0, 1)
	case tcell.KeyDown:
		v.move(0, -1)
	case tcell.KeyLeft:
		v.move(-1, 0)
	case tcell.KeyRight:
		v.move(1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		case 'r':
			v.regenerate(ctx, 0)
		case 'n':
			v.regenerate(ctx, stepSeed(v.layout.Seed(), 1))
		case 'p':
			v.regenerate(ctx, stepSeed(v.layout.Seed(), -1))
		}
	}
}

// move shifts the map cursor within bounds, or the list selection
// through the traversal order.
func (v *Viewer) move(dx, dy int) {
	if v.mode == ModeList {
		// Up moves toward the start of the list.
		v.selected = max(0, min(v.selected-dy+dx, v.layout.Len()-1))
		return
	}
	next := world.Coord{X: v.cursor.X + dx, Y: v.cursor.Y + dy}
	v.cursor = v.layout.Bounds().Clamp(next)
}

// stepSeed moves to a neighbouring seed, skipping 0 which would randomize.
func stepSeed(seed, delta int64) int64 {
	if seed+delta == 0 {
		return seed + 2*delta
	}
	return seed + delta
}
