//go:build ebiten

package app

import (
	"time"

	"hyperlife/internal/core"
	"hyperlife/internal/render"
	"hyperlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	stepper *core.FixedStep
	palette render.Palette

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. Generations advance at
// most perSecond times per second regardless of the frame rate.
func New(sim core.Sim, scale int, seed int64, perSecond int) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim),
		stepper: core.NewFixedStep(perSecond),
		palette: render.DefaultPalette(),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if nav, ok := g.sim.(core.SliceNavigator); ok {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
			nav.MoveSlice(1, 0)
		case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
			nav.MoveSlice(-1, 0)
		case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
			nav.MoveSlice(0, 1)
		case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
			nav.MoveSlice(0, -1)
		}
	}

	due := g.stepper.ShouldStep(time.Now())
	if (!g.paused && due) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current cross-section and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.hud.Draw(screen, g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
