package terrain_test

import (
	"fmt"
	"math/rand/v2"
	"os"

	"terrain-ca/pkg/terrain"
)

// A one-symbol table leaves nothing to chance, which keeps the output stable.
func ExampleGenerate() {
	src := rand.New(rand.NewPCG(1, 2))
	grid, err := terrain.Generate(src, 4, 3, 2, terrain.WeightTable[string]{{Value: "~", Weight: 1}})
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = terrain.Render(os.Stdout, grid, " ")
	// Output:
	// ~ ~ ~ ~
	// ~ ~ ~ ~
	// ~ ~ ~ ~
}

func ExampleGenerate_invalid() {
	src := rand.New(rand.NewPCG(1, 2))
	_, err := terrain.Generate(src, 2, 10, 1, terrain.WeightTable[string]{{Value: "X", Weight: 1}})
	fmt.Println(err)
	// Output:
	// terrain: invalid configuration: terrain must be at least 3x3 (attempted: 2x10)
}

func ExampleResolve() {
	// [A A A B B]: A holds a strict majority, so no coin is flipped.
	v, _ := terrain.Resolve(rand.New(rand.NewPCG(0, 0)), []string{"A", "A", "A", "B", "B"}, []string{"A", "B"})
	fmt.Println(v)
	// Output:
	// A
}
