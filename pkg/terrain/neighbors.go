package terrain

// Offsets are (dRow, dCol). Lists are in the fixed order Neighbors returns.
var (
	offsetsTopLeft     = [][2]int{{0, 1}, {1, 1}, {1, 0}}
	offsetsTopRight    = [][2]int{{0, -1}, {1, -1}, {1, 0}}
	offsetsBottomLeft  = [][2]int{{0, 1}, {-1, 1}, {-1, 0}}
	offsetsBottomRight = [][2]int{{0, -1}, {-1, -1}, {-1, 0}}

	offsetsTop    = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}}
	offsetsBottom = [][2]int{{0, -1}, {-1, -1}, {-1, 0}, {-1, 1}, {0, 1}}
	offsetsLeft   = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}}
	offsetsRight  = [][2]int{{-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}}

	offsetsInterior = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// neighborOffsets picks the offset list for c on a w×h grid. The grid is
// bounded: edges and corners simply have fewer neighbours.
func neighborOffsets(w, h int, c Coord) [][2]int {
	lastRow, lastCol := h-1, w-1
	switch {
	case c.Row == 0:
		switch c.Col {
		case 0:
			return offsetsTopLeft
		case lastCol:
			return offsetsTopRight
		default:
			return offsetsTop
		}
	case c.Row == lastRow:
		switch c.Col {
		case 0:
			return offsetsBottomLeft
		case lastCol:
			return offsetsBottomRight
		default:
			return offsetsBottom
		}
	case c.Col == 0:
		return offsetsLeft
	case c.Col == lastCol:
		return offsetsRight
	default:
		return offsetsInterior
	}
}

// NeighborCoords lists the coordinates adjacent to c on a w×h grid.
func NeighborCoords(w, h int, c Coord) []Coord {
	offsets := neighborOffsets(w, h, c)
	out := make([]Coord, len(offsets))
	for i, d := range offsets {
		out[i] = Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
	}
	return out
}

// Neighbors returns the values adjacent to c: 3 in a corner, 5 on an edge
// and 8 in the interior.
func Neighbors[V comparable](g *Grid[V], c Coord) []V {
	return appendNeighbors(nil, g, c)
}

func appendNeighbors[V comparable](dst []V, g *Grid[V], c Coord) []V {
	for _, d := range neighborOffsets(g.w, g.h, c) {
		dst = append(dst, g.cells[(c.Row+d[0])*g.w+c.Col+d[1]])
	}
	return dst
}
