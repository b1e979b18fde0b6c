package terrain

// Region is a maximal 8-connected set of cells sharing one value.
type Region[V comparable] struct {
	Value V
	Cells []Coord
}

// Size returns the number of cells in the region.
func (r Region[V]) Size() int { return len(r.Cells) }

// Regions labels connected regions with a breadth-first flood fill, scanning
// seeds in row-major order. Cells inside a region are listed in visit order.
//
// Time: O(W·H·8), Memory: O(W·H).
func Regions[V comparable](g *Grid[V]) []Region[V] {
	seen := make([]bool, len(g.cells))
	var regions []Region[V]
	var queue []int
	for i0, v := range g.cells {
		if seen[i0] {
			continue
		}
		seen[i0] = true
		queue = append(queue[:0], i0)
		var cells []Coord
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			c := Coord{Row: u / g.w, Col: u % g.w}
			cells = append(cells, c)
			for _, d := range neighborOffsets(g.w, g.h, c) {
				vi := (c.Row+d[0])*g.w + c.Col + d[1]
				if seen[vi] || g.cells[vi] != v {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		regions = append(regions, Region[V]{Value: v, Cells: cells})
	}
	return regions
}

// Histogram counts how often each alphabet value occurs, in alphabet order.
// Values outside the alphabet are not counted.
func Histogram[V comparable](g *Grid[V], alphabet []V) []int {
	index := make(map[V]int, len(alphabet))
	for i, v := range alphabet {
		if _, ok := index[v]; !ok {
			index[v] = i
		}
	}
	counts := make([]int, len(alphabet))
	for _, v := range g.cells {
		if i, ok := index[v]; ok {
			counts[i]++
		}
	}
	return counts
}
