package core

import (
	"fmt"
	"image/color"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is a grid pipeline the viewer and tools can drive one pass at a time.
type Sim interface {
	Name() string
	Size() Size
	// Reset rebuilds the starting state from seed.
	Reset(seed int64)
	// Step advances by one pass and reports whether anything ran.
	Step() bool
	// Cells exposes one palette index per cell, row-major.
	Cells() []uint8
	Palette() []color.RGBA
}

// Factory constructs a Sim from flag-style key/value pairs.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Lookup builds the named simulation.
func Lookup(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (available: %v)", name, Names())
	}
	return f(cfg)
}

// Names lists registered simulations alphabetically.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
