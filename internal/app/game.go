// Package app glues the window, input, simulation, and renderer into an
// ebiten game loop.
package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"pond-pet/widget/internal/config"
	"pond-pet/widget/internal/pond"
	"pond-pet/widget/internal/render"
	"pond-pet/widget/internal/sim"
	"pond-pet/widget/internal/uptime"
)

const helpText = "any key: splash | space: big splash | R: rain | ESC: quit"

// helpDuration is how long the key help stays up after launch.
const helpDuration = 3 * time.Second

// Game drives the widget: it translates raw input into simulation commands,
// advances the engine once per update, and paints the latest snapshot.
type Game struct {
	cfg      config.Config
	log      *zap.Logger
	engine   *sim.Engine
	renderer *render.Renderer
	layout   pond.Layout
	store    *uptime.Store

	snapshot sim.Snapshot
	helpLeft float64
	saveLeft float64

	dragging    bool
	dragStartX  int
	dragStartY  int
	justPressed []ebiten.Key
}

// New wires a game from its parts. store may be nil when persistence is
// disabled.
func New(cfg config.Config, log *zap.Logger, engine *sim.Engine, store *uptime.Store) *Game {
	return &Game{
		cfg:      cfg,
		log:      log,
		engine:   engine,
		renderer: render.New(cfg),
		layout:   pond.NewLayout(cfg.Window.Width, cfg.Window.Height),
		store:    store,
		helpLeft: helpDuration.Seconds(),
		saveLeft: cfg.Uptime.SaveInterval,
	}
}

// Update handles input, runs one simulation tick, and schedules the
// periodic uptime save.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.handleMouse()

	g.snapshot = g.engine.Advance()

	if g.helpLeft > 0 {
		g.helpLeft -= g.snapshot.Delta
	}
	g.tickSave(g.snapshot.Delta)
	return nil
}

func (g *Game) handleKeys() {
	g.justPressed = inpututil.AppendJustPressedKeys(g.justPressed[:0])
	for _, key := range g.justPressed {
		switch key {
		case ebiten.KeyEscape:
			// Handled before the command pass.
		case ebiten.KeySpace:
			g.engine.Enqueue(sim.Command{Type: sim.CommandBurst})
		case ebiten.KeyR:
			g.engine.Enqueue(sim.Command{Type: sim.CommandRainBurst})
		default:
			g.engine.Enqueue(sim.Command{Type: sim.CommandSplash})
		}
	}
}

func (g *Game) handleMouse() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		cx, cy := ebiten.CursorPosition()
		x, y := float64(cx), float64(cy)
		if g.layout.OnWater(x, y) {
			g.engine.Enqueue(sim.Command{Type: sim.CommandPoke, Pos: pond.Vec2{X: x, Y: y}})
		}
	}

	// Left drag moves the borderless window by the cursor delta. The cursor
	// is window-relative, so moving the window keeps the grab point fixed.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.dragStartX, g.dragStartY = ebiten.CursorPosition()
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}
	if g.dragging {
		cx, cy := ebiten.CursorPosition()
		dx, dy := cx-g.dragStartX, cy-g.dragStartY
		if dx != 0 || dy != 0 {
			wx, wy := ebiten.WindowPosition()
			ebiten.SetWindowPosition(wx+dx, wy+dy)
		}
	}
}

// tickSave persists the uptime counter at the configured interval.
func (g *Game) tickSave(dt float64) {
	if g.store == nil {
		return
	}
	g.saveLeft -= dt
	if g.saveLeft > 0 {
		return
	}
	g.saveLeft = g.cfg.Uptime.SaveInterval
	if err := g.store.Save(g.engine.UptimeState().ContinuousSeconds, time.Now()); err != nil {
		g.log.Warn("uptime save failed", zap.Error(err))
	}
}

// Flush writes the final uptime count. Called once when the loop exits.
func (g *Game) Flush() {
	if g.store == nil {
		return
	}
	if err := g.store.Save(g.engine.UptimeState().ContinuousSeconds, time.Now()); err != nil {
		g.log.Warn("final uptime save failed", zap.Error(err))
	}
}

// Draw paints the most recent snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.snapshot)
	if g.helpLeft > 0 {
		g.renderer.DrawTooltip(screen, helpText)
	}
}

// Layout reports the fixed logical size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
