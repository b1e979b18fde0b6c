//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"
	"strings"

	"terrain-ca/internal/app"
	"terrain-ca/internal/core"
	_ "terrain-ca/internal/sims/landscape"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if _, ok := cfg.Set["seed"]; !ok {
		cfg.Set["seed"] = strconv.FormatInt(cfg.Seed, 10)
	}
	sim, err := core.Lookup(cfg.Sim, cfg.Set)
	if err != nil {
		log.Fatalf("%v (available: %s)", err, strings.Join(core.Names(), ", "))
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("terrain-ca - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUD, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
