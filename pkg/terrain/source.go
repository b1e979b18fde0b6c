package terrain

// Source supplies the randomness used by sampling, shuffling and tie-breaks.
// *math/rand/v2.Rand satisfies it.
type Source interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// Shuffle permutes n elements, each permutation equally likely.
	Shuffle(n int, swap func(i, j int))
}
