// Package terrain generates two-dimensional grids of discrete terrain symbols.
//
// Generation has two phases. A noise fill assigns every cell an independent
// weighted-random value from an ordered WeightTable. A number of smoothing
// passes then visit every cell in a freshly shuffled order and replace it with
// the plurality value among its bounded Moore neighbourhood (3 neighbours in
// corners, 5 on edges, 8 inside). Ties are broken by a coin flip at every tie
// met while scanning the alphabet in table order.
//
// Smoothing writes in place: a cell visited later in a pass sees neighbours
// already rewritten earlier in the same pass. This is what makes regions grow
// into blobs instead of oscillating, so passes must not be turned into a
// snapshot-then-apply update.
//
// All randomness comes from an injected Source, which keeps runs reproducible
// for a given seed.
package terrain
