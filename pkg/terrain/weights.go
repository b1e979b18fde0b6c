package terrain

import (
	"fmt"
	"math"
)

// Weight pairs a value with its relative likelihood in the noise fill.
type Weight[V comparable] struct {
	Value  V
	Weight float64
}

// WeightTable is an ordered list of weighted values. Order decides threshold
// accumulation in Sample and the scan order of tie-breaks in Resolve, so it
// is kept exactly as supplied.
type WeightTable[V comparable] []Weight[V]

// Total returns the sum of all weights, accumulated in table order.
func (t WeightTable[V]) Total() float64 {
	total := 0.0
	for _, w := range t {
		total += w.Weight
	}
	return total
}

// Alphabet returns the table's values in table order.
func (t WeightTable[V]) Alphabet() []V {
	out := make([]V, len(t))
	for i, w := range t {
		out[i] = w.Value
	}
	return out
}

// Validate reports ErrInvalidConfiguration for an empty table, duplicate
// values, negative or NaN weights, or a non-positive total.
func (t WeightTable[V]) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: weight table is empty", ErrInvalidConfiguration)
	}
	seen := make(map[V]struct{}, len(t))
	for i, w := range t {
		if _, dup := seen[w.Value]; dup {
			return fmt.Errorf("%w: duplicate value %v at position %d", ErrInvalidConfiguration, w.Value, i)
		}
		seen[w.Value] = struct{}{}
		if math.IsNaN(w.Weight) || w.Weight < 0 {
			return fmt.Errorf("%w: value %v has weight %v", ErrInvalidConfiguration, w.Value, w.Weight)
		}
	}
	if total := t.Total(); !(total > 0) || math.IsInf(total, 1) {
		return fmt.Errorf("%w: total weight must be positive and finite (got %v)", ErrInvalidConfiguration, total)
	}
	return nil
}

// Sample draws one value with probability weight/total. It draws exactly one
// number from src.
func Sample[V comparable](src Source, t WeightTable[V]) (V, error) {
	if err := t.Validate(); err != nil {
		var zero V
		return zero, err
	}
	return sample(src, t, t.Total()), nil
}

// sample assumes t is valid and total is t.Total().
func sample[V comparable](src Source, t WeightTable[V], total float64) V {
	choice := src.Float64() * total
	threshold := 0.0
	last := -1
	for i, w := range t {
		threshold += w.Weight
		if choice < threshold {
			return w.Value
		}
		if w.Weight > 0 {
			last = i
		}
	}
	// Rounding can leave choice equal to the final threshold.
	return t[last].Value
}
