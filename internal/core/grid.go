package core

// ByteGrid stores one palette index per cell in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *ByteGrid) Index(row, col int) int { return row*g.W + col }

// Set writes v at (row, col).
func (g *ByteGrid) Set(row, col int, v uint8) { g.data[g.Index(row, col)] = v }

// At reads the value at (row, col).
func (g *ByteGrid) At(row, col int) uint8 { return g.data[g.Index(row, col)] }

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
