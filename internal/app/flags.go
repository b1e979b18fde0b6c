package app

import (
	"flag"
	"fmt"
	"strings"
)

// Config represents the viewer's command-line parameters.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	// PPS is smoothing passes per second.
	PPS  int
	Seed int64
	HUD  int

	// Set collects key=value overrides handed to the sim factory.
	Set map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "terrain", Scale: 8, TPS: 60, PPS: 10, Seed: 42, HUD: 240, Set: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.PPS, "pps", c.PPS, "smoothing passes per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUD, "hud", c.HUD, "parameter panel width in pixels (0 hides it)")
	fs.Func("set", "sim parameter override in key=value form (repeatable)", c.setOverride)
}

func (c *Config) setOverride(kv string) error {
	key, value, ok := strings.Cut(kv, "=")
	if !ok || key == "" {
		return fmt.Errorf("override %q is not key=value", kv)
	}
	if c.Set == nil {
		c.Set = map[string]string{}
	}
	c.Set[key] = value
	return nil
}
