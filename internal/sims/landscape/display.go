package landscape

import "image/color"

var symbolColors = map[string]color.RGBA{
	"X": {R: 180, G: 180, B: 200, A: 255},
	"^": {R: 180, G: 180, B: 200, A: 255},
	"#": {R: 40, G: 100, B: 55, A: 255},
	"T": {R: 40, G: 100, B: 55, A: 255},
	",": {R: 70, G: 160, B: 80, A: 255},
	".": {R: 194, G: 178, B: 128, A: 255},
	" ": {R: 40, G: 80, B: 160, A: 255},
	"~": {R: 40, G: 80, B: 160, A: 255},
	"o": {R: 130, G: 130, B: 130, A: 255},
	"*": {R: 255, G: 90, B: 40, A: 255},
}

// fallbackColors are handed out in order to symbols without a known color.
var fallbackColors = []color.RGBA{
	{R: 70, G: 52, B: 32, A: 255},
	{R: 200, G: 120, B: 200, A: 255},
	{R: 230, G: 210, B: 80, A: 255},
	{R: 90, G: 200, B: 200, A: 255},
	{R: 220, G: 220, B: 230, A: 255},
	{R: 160, G: 60, B: 60, A: 255},
}

func buildPalette(alphabet []string) []color.RGBA {
	palette := make([]color.RGBA, len(alphabet))
	next := 0
	for i, v := range alphabet {
		if c, ok := symbolColors[v]; ok {
			palette[i] = c
			continue
		}
		base := fallbackColors[next%len(fallbackColors)]
		// Darken each lap through the fallback list so repeats stay distinguishable.
		palette[i] = shade(base, 1/float64(1+next/len(fallbackColors)))
		next++
	}
	return palette
}

func shade(c color.RGBA, f float64) color.RGBA {
	if f >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R)*f + 0.5),
		G: uint8(float64(c.G)*f + 0.5),
		B: uint8(float64(c.B)*f + 0.5),
		A: c.A,
	}
}
