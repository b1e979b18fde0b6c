// Command terrain prints a generated terrain grid as text.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"terrain-ca/internal/sims/landscape"
	"terrain-ca/pkg/core"
	"terrain-ca/pkg/terrain"
)

func main() {
	def := landscape.DefaultConfig()
	width := flag.Int("w", def.Width, "terrain width (at least 3)")
	height := flag.Int("h", def.Height, "terrain height (at least 3)")
	smoothness := flag.Int("smoothness", def.Smoothness, "number of smoothing passes")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	values := flag.String("values", landscape.FormatValues(def.Values), "comma-separated symbol:weight list, in scan order")
	order := flag.String("order", def.Order.String(), "sweep order: shuffled or rowmajor")
	sep := flag.String("sep", terrain.DefaultSeparator, "separator printed between symbols")
	verbose := flag.Bool("v", false, "log the seed and region statistics to stderr")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("terrain: ")

	table, err := landscape.ParseValues(*values)
	if err != nil {
		log.Fatal(err)
	}
	sweep, err := terrain.ParseOrder(*order)
	if err != nil {
		log.Fatal(err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	grid, err := terrain.Generate(core.NewRNG(*seed), *width, *height, *smoothness, table, terrain.WithOrder(sweep))
	if err != nil {
		log.Fatal(err)
	}
	if err := terrain.Render(os.Stdout, grid, *sep); err != nil {
		log.Fatal(err)
	}

	if *verbose {
		counts := terrain.Histogram(grid, table.Alphabet())
		log.Printf("seed=%d size=%dx%d smoothness=%d order=%s regions=%d", *seed, *width, *height, *smoothness, sweep, len(terrain.Regions(grid)))
		for i, w := range table {
			log.Printf("  %q weight=%g cells=%d", w.Value, w.Weight, counts[i])
		}
	}
}
