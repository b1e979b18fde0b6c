package terrain

import "fmt"

// MinSize is the smallest accepted width and height.
const MinSize = 3

// Coord addresses a cell by row and column, both 0-indexed.
type Coord struct {
	Row, Col int
}

// Grid stores terrain values in row-major order.
type Grid[V comparable] struct {
	w, h  int
	cells []V
}

func newGrid[V comparable](w, h int) *Grid[V] {
	return &Grid[V]{w: w, h: h, cells: make([]V, w*h)}
}

// FromRows copies a rectangular slice of rows into a Grid. Rows must all
// have the same length and the grid must be at least MinSize in each
// dimension.
func FromRows[V comparable](rows [][]V) (*Grid[V], error) {
	h := len(rows)
	if h == 0 {
		return nil, fmt.Errorf("%w: grid has no rows", ErrInvalidConfiguration)
	}
	w := len(rows[0])
	if w < MinSize || h < MinSize {
		return nil, fmt.Errorf("%w: terrain must be at least %dx%d (attempted: %dx%d)",
			ErrInvalidConfiguration, MinSize, MinSize, w, h)
	}
	g := newGrid[V](w, h)
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrInvalidConfiguration, r, len(row), w)
		}
		copy(g.cells[r*w:], row)
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid[V]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[V]) Height() int { return g.h }

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid[V]) InBounds(row, col int) bool {
	return row >= 0 && row < g.h && col >= 0 && col < g.w
}

// At returns the value stored at (row, col).
func (g *Grid[V]) At(row, col int) V { return g.cells[row*g.w+col] }

// Set overwrites the value stored at (row, col).
func (g *Grid[V]) Set(row, col int, v V) { g.cells[row*g.w+col] = v }

// Row returns a copy of row r.
func (g *Grid[V]) Row(r int) []V {
	out := make([]V, g.w)
	copy(out, g.cells[r*g.w:(r+1)*g.w])
	return out
}

// Rows returns a copy of the grid as a slice of rows.
func (g *Grid[V]) Rows() [][]V {
	rows := make([][]V, g.h)
	for r := range rows {
		rows[r] = g.Row(r)
	}
	return rows
}

// Cells returns a row-major copy of every value.
func (g *Grid[V]) Cells() []V {
	return append([]V(nil), g.cells...)
}

// Equal reports whether both grids have the same dimensions and values.
func (g *Grid[V]) Equal(o *Grid[V]) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i, v := range g.cells {
		if o.cells[i] != v {
			return false
		}
	}
	return true
}
