package core

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(100, 0)
	fs := NewFixedStep(4)
	fs.now = func() time.Time { return clock }

	// The accumulator starts primed so the first call steps immediately.
	require.True(t, fs.ShouldStep())
	require.False(t, fs.ShouldStep())

	clock = clock.Add(200 * time.Millisecond)
	require.False(t, fs.ShouldStep())
	clock = clock.Add(60 * time.Millisecond)
	require.True(t, fs.ShouldStep())
	require.False(t, fs.ShouldStep())
}

func TestFixedStepDefaultRate(t *testing.T) {
	fs := NewFixedStep(0)
	assert.Equal(t, 100*time.Millisecond, fs.step)
}

func TestByteGridAddressing(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Set(2, 1, 7)
	assert.Equal(t, uint8(7), g.At(2, 1))
	assert.Equal(t, uint8(7), g.Cells()[9])
	g.Clear()
	assert.Equal(t, uint8(0), g.At(2, 1))

	tiny := NewByteGrid(0, -2)
	assert.Equal(t, 1, tiny.W)
	assert.Len(t, tiny.Cells(), 1)
}

type stubSim struct{ size Size }

func (s *stubSim) Name() string          { return "stub" }
func (s *stubSim) Size() Size            { return s.size }
func (s *stubSim) Reset(int64)           {}
func (s *stubSim) Step() bool            { return false }
func (s *stubSim) Cells() []uint8        { return nil }
func (s *stubSim) Palette() []color.RGBA { return nil }

func TestRegistry(t *testing.T) {
	Register("", func(map[string]string) (Sim, error) { return &stubSim{}, nil })
	Register("nil-factory", nil)
	Register("stub", func(map[string]string) (Sim, error) { return &stubSim{size: Size{W: 3, H: 3}}, nil })

	assert.Contains(t, Names(), "stub")
	assert.NotContains(t, Names(), "")
	assert.NotContains(t, Names(), "nil-factory")

	sim, err := Lookup("stub", nil)
	require.NoError(t, err)
	assert.Equal(t, Size{W: 3, H: 3}, sim.Size())

	_, err = Lookup("missing", nil)
	require.Error(t, err)
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "World", Params: []Parameter{{Key: "w", Type: ParamTypeInt, Value: "80"}}},
		{Name: "Smoothing", Params: []Parameter{{Key: "smoothness", Type: ParamTypeInt, Value: "12"}}},
	}}
	p, ok := snap.Lookup("smoothness")
	require.True(t, ok)
	assert.Equal(t, "12", p.Value)
	_, ok = snap.Lookup("h")
	assert.False(t, ok)
}
