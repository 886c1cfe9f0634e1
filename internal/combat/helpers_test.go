package combat

import (
	"fmt"
	"testing"
)

// scriptSrc replays fixed draws in order and fails the test when a draw
// is out of range or the script runs dry.
type scriptSrc struct {
	t    *testing.T
	vals []int
	pos  int
}

func script(t *testing.T, vals ...int) *scriptSrc {
	t.Helper()
	return &scriptSrc{t: t, vals: vals}
}

func (s *scriptSrc) Intn(n int) int {
	s.t.Helper()
	if s.pos >= len(s.vals) {
		s.t.Fatalf("script exhausted after %d draws", s.pos)
	}
	v := s.vals[s.pos]
	s.pos++
	if v < 0 || v >= n {
		s.t.Fatalf("draw %d: %d out of range [0,%d)", s.pos, v, n)
	}
	return v
}

func (s *scriptSrc) done() bool { return s.pos == len(s.vals) }

func recorder(events *[]Event) func(Event) {
	return func(ev Event) { *events = append(*events, ev) }
}

func eventTypes(events []Event) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.Type
	}
	return out
}

func seedName(seed int64) string { return fmt.Sprintf("seed=%d", seed) }
