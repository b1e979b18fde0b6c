package terrain

import "fmt"

// Order selects how a smoothing pass walks the grid.
type Order uint8

const (
	// OrderShuffled visits cells in a fresh uniform permutation every pass.
	OrderShuffled Order = iota
	// OrderRowMajor visits cells row by row, left to right, without shuffling.
	OrderRowMajor
)

// String returns the flag spelling of the order.
func (o Order) String() string {
	switch o {
	case OrderShuffled:
		return "shuffled"
	case OrderRowMajor:
		return "rowmajor"
	default:
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
}

// ParseOrder converts a flag spelling back into an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "shuffled", "random", "":
		return OrderShuffled, nil
	case "rowmajor", "index":
		return OrderRowMajor, nil
	default:
		return 0, fmt.Errorf("%w: unknown sweep order %q", ErrInvalidConfiguration, s)
	}
}

// Option customises a Generator.
type Option func(*options)

type options struct {
	order Order
}

// WithOrder sets the sweep order of smoothing passes.
func WithOrder(o Order) Option {
	return func(opts *options) { opts.order = o }
}

// Generator runs the noise-then-smooth pipeline one step at a time.
type Generator[V comparable] struct {
	src     Source
	weights WeightTable[V]
	total   float64
	order   Order

	grid     *Grid[V]
	resolver *resolver[V]
	visit    []Coord
	scratch  []V
	passes   int
}

// NewGenerator validates the configuration and allocates a blank grid.
// Nothing is allocated when validation fails.
func NewGenerator[V comparable](src Source, width, height int, weights WeightTable[V], opts ...Option) (*Generator[V], error) {
	if width < MinSize || height < MinSize {
		return nil, fmt.Errorf("%w: terrain must be at least %dx%d (attempted: %dx%d)",
			ErrInvalidConfiguration, MinSize, MinSize, width, height)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: random source is nil", ErrInvalidConfiguration)
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	o := options{order: OrderShuffled}
	for _, opt := range opts {
		opt(&o)
	}
	if o.order != OrderShuffled && o.order != OrderRowMajor {
		return nil, fmt.Errorf("%w: unknown sweep order %v", ErrInvalidConfiguration, o.order)
	}

	table := append(WeightTable[V](nil), weights...)
	return &Generator[V]{
		src:      src,
		weights:  table,
		total:    table.Total(),
		order:    o.order,
		grid:     newGrid[V](width, height),
		resolver: newResolver(table.Alphabet()),
		visit:    make([]Coord, width*height),
		scratch:  make([]V, 0, 8),
	}, nil
}

// Grid returns the live grid. It is mutated by Noise and Smooth.
func (g *Generator[V]) Grid() *Grid[V] { return g.grid }

// Alphabet returns the values the generator may place, in table order.
func (g *Generator[V]) Alphabet() []V { return g.weights.Alphabet() }

// Passes reports how many smoothing passes ran since the last Noise.
func (g *Generator[V]) Passes() int { return g.passes }

// Noise assigns every cell an independent weighted sample, row by row.
func (g *Generator[V]) Noise() {
	for i := range g.grid.cells {
		g.grid.cells[i] = sample(g.src, g.weights, g.total)
	}
	g.passes = 0
}

// Smooth runs one pass, replacing each cell with its neighbourhood majority.
//
// The pass reads and writes the same buffer, so a cell sees neighbours that
// were already rewritten earlier in this pass. Do not snapshot the grid
// first: simultaneous updates produce different terrain.
func (g *Generator[V]) Smooth() error {
	g.resetVisitOrder()
	if g.order == OrderShuffled {
		g.src.Shuffle(len(g.visit), func(i, j int) {
			g.visit[i], g.visit[j] = g.visit[j], g.visit[i]
		})
	}
	for _, c := range g.visit {
		g.scratch = appendNeighbors(g.scratch[:0], g.grid, c)
		v, err := g.resolver.resolve(g.src, g.scratch)
		if err != nil {
			return fmt.Errorf("smoothing (%d,%d): %w", c.Row, c.Col, err)
		}
		g.grid.Set(c.Row, c.Col, v)
	}
	g.passes++
	return nil
}

// resetVisitOrder lays the coordinates out row-major; shuffled passes start
// from this layout so a seed maps to one permutation per pass.
func (g *Generator[V]) resetVisitOrder() {
	w := g.grid.w
	for i := range g.visit {
		g.visit[i] = Coord{Row: i / w, Col: i % w}
	}
}

// Generate builds a width×height terrain: a noise fill followed by
// smoothness smoothing passes. It returns nil and an error wrapping
// ErrInvalidConfiguration when the inputs are unusable.
func Generate[V comparable](src Source, width, height, smoothness int, weights WeightTable[V], opts ...Option) (*Grid[V], error) {
	if smoothness < 0 {
		return nil, fmt.Errorf("%w: smoothness must not be negative (got %d)", ErrInvalidConfiguration, smoothness)
	}
	gen, err := NewGenerator(src, width, height, weights, opts...)
	if err != nil {
		return nil, err
	}
	gen.Noise()
	for i := 0; i < smoothness; i++ {
		if err := gen.Smooth(); err != nil {
			return nil, err
		}
	}
	return gen.Grid(), nil
}
