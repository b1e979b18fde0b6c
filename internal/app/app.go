//go:build ebiten

package app

import (
	"image/color"
	"time"

	"terrain-ca/internal/core"
	"terrain-ca/internal/render"
	"terrain-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	pacer   *core.FixedStep

	scale    int
	hudWidth int
	paused   bool
	stepOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(sim, cfg.HUD),
		overlay:  ui.NewOverlay(sim),
		pacer:    core.NewFixedStep(cfg.PPS),
		scale:    cfg.Scale,
		hudWidth: cfg.HUD,
		seed:     cfg.Seed,
	}
}

// Reset refills the terrain with noise from seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.stepOnce = false
}

// Update handles input and runs a smoothing pass when the pacer allows.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	g.hud.Update(g.viewWidth())

	switch {
	case g.stepOnce:
		g.sim.Step()
		g.stepOnce = false
	case !g.paused && g.pacer.ShouldStep():
		g.sim.Step()
	}
	return nil
}

// Draw renders the terrain, the legend and the parameter panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Blit(screen, g.sim.Cells(), g.sim.Palette(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewWidth() + g.hudWidth, g.sim.Size().H * g.scale
}

func (g *Game) viewWidth() int { return g.sim.Size().W * g.scale }
