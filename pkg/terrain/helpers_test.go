package terrain

import "testing"

// scriptedSource replays fixed draws. When repeat is set the last draw is
// reused once the script runs out; otherwise an extra draw fails the test.
// Shuffle leaves the order untouched and only counts calls.
type scriptedSource struct {
	t        *testing.T
	draws    []float64
	repeat   bool
	pos      int
	shuffles int
}

func script(t *testing.T, draws ...float64) *scriptedSource {
	return &scriptedSource{t: t, draws: draws}
}

func constant(t *testing.T, draw float64) *scriptedSource {
	return &scriptedSource{t: t, draws: []float64{draw}, repeat: true}
}

func (s *scriptedSource) Float64() float64 {
	if s.pos >= len(s.draws) {
		if s.repeat && len(s.draws) > 0 {
			s.pos++
			return s.draws[len(s.draws)-1]
		}
		s.t.Fatalf("unexpected draw #%d (script has %d)", s.pos+1, len(s.draws))
	}
	v := s.draws[s.pos]
	s.pos++
	return v
}

func (s *scriptedSource) Shuffle(n int, swap func(i, j int)) { s.shuffles++ }

func mustRows[V comparable](t *testing.T, rows [][]V) *Grid[V] {
	t.Helper()
	g, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return g
}

func splitRows(rows ...string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		for _, r := range row {
			out[i] = append(out[i], string(r))
		}
	}
	return out
}
