//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"terrain-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type symbolProvider interface {
	Symbols() []string
}

// Overlay draws a palette legend over the terrain, toggled with H.
type Overlay struct {
	sim   core.Sim
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{sim: sim, show: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the legend.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.show = !o.show
	}
}

// Draw paints one swatch and label per palette entry in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	palette := o.sim.Palette()
	var symbols []string
	if p, ok := o.sim.(symbolProvider); ok {
		symbols = p.Symbols()
	}
	const swatch, row, pad = 10, 14, 4

	bg := &ebiten.DrawImageOptions{}
	bg.GeoM.Scale(110, float64(len(palette)*row+2*pad))
	bg.ColorScale.ScaleWithColor(color.RGBA{A: 160})
	screen.DrawImage(o.pixel, bg)

	for i, c := range palette {
		y := pad + i*row
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(swatch, swatch)
		op.GeoM.Translate(pad, float64(y))
		op.ColorScale.ScaleWithColor(c)
		screen.DrawImage(o.pixel, op)

		label := strconv.Itoa(i)
		if i < len(symbols) {
			label = strconv.Quote(symbols[i])
		}
		text.Draw(screen, label, basicfont.Face7x13, pad+swatch+6, y+swatch, color.White)
	}
}
