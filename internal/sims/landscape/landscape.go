package landscape

import (
	"fmt"
	"image/color"

	"terrain-ca/internal/core"
	"terrain-ca/pkg/terrain"

	rng "terrain-ca/pkg/core"
)

// maxValues keeps palette indices inside a uint8.
const maxValues = 256

// World drives the terrain pipeline one smoothing pass per Step so the
// viewer can show the noise settling into regions.
type World struct {
	cfg  Config
	seed int64

	gen     *terrain.Generator[string]
	index   map[string]uint8
	display *core.ByteGrid
	palette []color.RGBA
	err     error
}

// New returns a World configured from cfg. It fails on the same inputs
// terrain.Generate rejects.
func New(cfg Config) (*World, error) {
	if cfg.Smoothness < 0 {
		return nil, fmt.Errorf("%w: smoothness must not be negative (got %d)", terrain.ErrInvalidConfiguration, cfg.Smoothness)
	}
	if len(cfg.Values) > maxValues {
		return nil, fmt.Errorf("%w: at most %d values are supported (got %d)", terrain.ErrInvalidConfiguration, maxValues, len(cfg.Values))
	}
	w := &World{cfg: cfg, seed: cfg.Seed}
	if err := w.rebuild(); err != nil {
		return nil, err
	}
	return w, nil
}

// rebuild creates a fresh generator for the current config and seed and
// fills it with noise.
func (w *World) rebuild() error {
	gen, err := terrain.NewGenerator(rng.NewRNG(w.seed), w.cfg.Width, w.cfg.Height, w.cfg.Values, terrain.WithOrder(w.cfg.Order))
	if err != nil {
		return err
	}
	w.gen = gen
	w.err = nil
	w.index = make(map[string]uint8, len(w.cfg.Values))
	for i, v := range gen.Alphabet() {
		w.index[v] = uint8(i)
	}
	if w.display == nil || w.display.W != w.cfg.Width || w.display.H != w.cfg.Height {
		w.display = core.NewByteGrid(w.cfg.Width, w.cfg.Height)
	}
	w.palette = buildPalette(gen.Alphabet())
	gen.Noise()
	w.rebuildDisplay()
	return nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "terrain" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Seed returns the seed of the current run.
func (w *World) Seed() int64 { return w.seed }

// Cells exposes the palette index of every cell.
func (w *World) Cells() []uint8 { return w.display.Cells() }

// Palette returns one color per alphabet position.
func (w *World) Palette() []color.RGBA { return w.palette }

// Symbols returns the alphabet in palette order.
func (w *World) Symbols() []string { return w.gen.Alphabet() }

// Grid exposes the live terrain grid.
func (w *World) Grid() *terrain.Grid[string] { return w.gen.Grid() }

// Passes reports how many smoothing passes ran since the last Reset.
func (w *World) Passes() int { return w.gen.Passes() }

// Done reports whether every configured pass has run.
func (w *World) Done() bool { return w.gen.Passes() >= w.cfg.Smoothness || w.err != nil }

// Err returns the error that stopped smoothing, if any.
func (w *World) Err() error { return w.err }

// Reset refills the grid with noise. A zero seed reuses the configured seed.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.seed = seed
	if err := w.rebuild(); err != nil {
		w.err = err
	}
}

// Step runs one smoothing pass until the configured smoothness is reached.
func (w *World) Step() bool {
	if w.Done() {
		return false
	}
	if err := w.gen.Smooth(); err != nil {
		w.err = err
		return false
	}
	w.rebuildDisplay()
	return true
}

// Run performs every remaining pass and returns the finished grid.
func (w *World) Run() (*terrain.Grid[string], error) {
	for w.Step() {
	}
	if w.err != nil {
		return nil, w.err
	}
	return w.gen.Grid(), nil
}

func (w *World) rebuildDisplay() {
	g := w.gen.Grid()
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			w.display.Set(r, c, w.index[g.At(r, c)])
		}
	}
}

func init() {
	core.Register("terrain", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
