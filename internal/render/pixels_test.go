package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 1, G: 2, B: 3, A: 255}, {R: 9, G: 8, B: 7, A: 128}}
	cells := []uint8{0, 1, 5}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)
	assert.Equal(t, []byte{
		1, 2, 3, 255,
		9, 8, 7, 128,
		9, 8, 7, 128, // out of range clamps to the last color
	}, buf)
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	buf := []byte{5, 5, 5, 5, 5, 5, 5, 5}
	fillPaletteRGBA(buf, []uint8{0, 3}, nil)
	assert.Equal(t, make([]byte, 8), buf)
}
