package terrain

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveClearMajority(t *testing.T) {
	// No tie means no draw; the empty script fails the test on any draw.
	got, err := Resolve(script(t), []string{"A", "A", "A", "B", "B"}, []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, "A", got)

	got, err = Resolve(script(t), []string{"B", "B", "A"}, []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, "B", got)
}

func TestResolveEvenTie(t *testing.T) {
	neighbors := []string{"A", "A", "B", "B"}
	alphabet := []string{"A", "B"}

	src := constant(t, 0.5)
	got, err := Resolve(src, neighbors, alphabet)
	require.NoError(t, err)
	assert.Equal(t, "A", got, "a draw of exactly 0.5 keeps the current holder")
	assert.Equal(t, 1, src.pos, "one tie means one draw")

	got, err = Resolve(script(t, 0.4999), neighbors, alphabet)
	require.NoError(t, err)
	assert.Equal(t, "B", got)
}

func TestResolveCountsWholeAlphabet(t *testing.T) {
	// B and C never occur; they stay below A so nothing is drawn.
	got, err := Resolve(script(t), []string{"A", "A"}, []string{"A", "B", "C"})
	require.NoError(t, err)
	assert.Equal(t, "A", got)

	// With no neighbours every value ties at zero and each one flips.
	src := script(t, 0.9, 0.9)
	got, err = Resolve(src, nil, []string{"A", "B", "C"})
	require.NoError(t, err)
	assert.Equal(t, "A", got)
	assert.Equal(t, 2, src.pos)
}

func TestResolveThreeWayTieScan(t *testing.T) {
	neighbors := []string{"A", "B", "C"}
	alphabet := []string{"A", "B", "C"}
	cases := []struct {
		draws []float64
		want  string
	}{
		{[]float64{0.9, 0.9}, "A"},
		{[]float64{0.2, 0.7}, "B"},
		{[]float64{0.9, 0.1}, "C"},
		{[]float64{0.2, 0.1}, "C"},
	}
	for _, tc := range cases {
		src := script(t, tc.draws...)
		got, err := Resolve(src, neighbors, alphabet)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "draws %v", tc.draws)
		assert.Equal(t, 2, src.pos)
	}
}

func TestResolveThreeWayTieIsNotUniform(t *testing.T) {
	src := rand.New(rand.NewPCG(5, 6))
	neighbors := []string{"A", "B", "C"}
	alphabet := []string{"A", "B", "C"}
	const n = 20000
	counts := map[string]int{}
	for i := 0; i < n; i++ {
		v, err := Resolve(src, neighbors, alphabet)
		require.NoError(t, err)
		counts[v]++
	}
	// The last value in scan order wins its own flip outright.
	assert.InDelta(t, 0.25, float64(counts["A"])/n, 0.02)
	assert.InDelta(t, 0.25, float64(counts["B"])/n, 0.02)
	assert.InDelta(t, 0.50, float64(counts["C"])/n, 0.02)
}

func TestResolveUnknownNeighbor(t *testing.T) {
	_, err := Resolve(script(t), []string{"A", "Z"}, []string{"A", "B"})
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestResolveEmptyAlphabet(t *testing.T) {
	_, err := Resolve(script(t), []string{"A"}, nil)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestResolveSingleValueAlphabet(t *testing.T) {
	got, err := Resolve(script(t), []string{"X", "X", "X"}, []string{"X"})
	require.NoError(t, err)
	assert.Equal(t, "X", got)
}
