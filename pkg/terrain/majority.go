package terrain

import "fmt"

// resolver tallies neighbour values against a fixed alphabet. Counts live in
// a slice indexed by alphabet position so the scan order never depends on map
// iteration.
type resolver[V comparable] struct {
	alphabet []V
	index    map[V]int
	counts   []int
}

func newResolver[V comparable](alphabet []V) *resolver[V] {
	index := make(map[V]int, len(alphabet))
	for i, v := range alphabet {
		if _, ok := index[v]; !ok {
			index[v] = i
		}
	}
	return &resolver[V]{alphabet: alphabet, index: index, counts: make([]int, len(alphabet))}
}

func (r *resolver[V]) resolve(src Source, neighbors []V) (V, error) {
	for i := range r.counts {
		r.counts[i] = 0
	}
	for _, n := range neighbors {
		i, ok := r.index[n]
		if !ok {
			var zero V
			return zero, fmt.Errorf("%w: neighbour value %v is not in the alphabet", ErrInvalidState, n)
		}
		r.counts[i]++
	}

	// Every tie met while scanning gets its own coin flip, so later values
	// in a k-way tie are favoured. Callers rely on this exact distribution.
	majority := 0
	for i := 1; i < len(r.counts); i++ {
		switch {
		case r.counts[i] > r.counts[majority]:
			majority = i
		case r.counts[i] == r.counts[majority]:
			if src.Float64() < 0.5 {
				majority = i
			}
		}
	}
	return r.alphabet[majority], nil
}

// Resolve returns the plurality value among neighbors, scanning alphabet in
// order. Equal counts draw from src: a draw of 0.5 or more keeps the current
// holder, anything lower hands the majority to the later value.
func Resolve[V comparable](src Source, neighbors []V, alphabet []V) (V, error) {
	if len(alphabet) == 0 {
		var zero V
		return zero, fmt.Errorf("%w: alphabet is empty", ErrInvalidConfiguration)
	}
	return newResolver(alphabet).resolve(src, neighbors)
}
