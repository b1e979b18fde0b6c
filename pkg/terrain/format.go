package terrain

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DefaultSeparator spaces symbols so square tiles read as a square map.
const DefaultSeparator = "  "

// Render writes one line per row, symbols joined by sep.
func Render[V comparable](w io.Writer, g *Grid[V], sep string) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < g.h; r++ {
		for c := 0; c < g.w; c++ {
			if c > 0 {
				bw.WriteString(sep)
			}
			bw.WriteString(symbol(g.At(r, c)))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// String renders the grid with DefaultSeparator.
func (g *Grid[V]) String() string {
	var sb strings.Builder
	_ = Render(&sb, g, DefaultSeparator)
	return sb.String()
}

func symbol[V comparable](v V) string {
	switch s := any(v).(type) {
	case string:
		return s
	case rune:
		return string(s)
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}
