package terrain

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSeparator(t *testing.T) {
	g := mustRows(t, splitRows(
		"X#.",
		" X#",
		"..X",
	))
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, g, " "))
	assert.Equal(t, "X # .\n  X #\n. . X\n", buf.String())
	assert.Equal(t, "X  #  .\n   X  #\n.  .  X\n", g.String())
}

type tile uint8

func (t tile) String() string { return [...]string{"~", "^"}[t] }

func TestRenderStringer(t *testing.T) {
	g := mustRows(t, [][]tile{{0, 1, 0}, {1, 1, 1}, {0, 0, 0}})
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, g, ""))
	assert.Equal(t, "~^~\n^^^\n~~~\n", buf.String())
}
