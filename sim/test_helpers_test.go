package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pulse-sim/pulse-sim/sim/internal/testutil"
)

// definitionsFromLines converts text-format fixture lines into definitions.
func definitionsFromLines(t *testing.T, lines []string) []Definition {
	t.Helper()
	defs := make([]Definition, 0, len(lines))
	for _, line := range lines {
		marker, name, dests := testutil.SplitLine(line)
		kind, err := KindFromMarker(marker)
		require.NoError(t, err, "line %q", line)
		defs = append(defs, Definition{Name: name, Kind: kind, Destinations: dests})
	}
	return defs
}

// mustBuild builds a graph from fixture lines, failing the test on error.
func mustBuild(t *testing.T, lines []string) *Graph {
	t.Helper()
	g, err := BuildGraph(definitionsFromLines(t, lines))
	require.NoError(t, err)
	return g
}

// pulseStack delivers pulses last-in first-out.
type pulseStack struct {
	stack []Pulse
}

func (ps *pulseStack) Enqueue(p Pulse) { ps.stack = append(ps.stack, p) }

func (ps *pulseStack) Dequeue() (Pulse, bool) {
	if len(ps.stack) == 0 {
		return Pulse{}, false
	}
	p := ps.stack[len(ps.stack)-1]
	ps.stack = ps.stack[:len(ps.stack)-1]
	return p, true
}

func (ps *pulseStack) Len() int { return len(ps.stack) }

// recorder collects every dispatched pulse and per-press deltas.
type recorder struct {
	pulses []Pulse
	deltas []PulseCounts
	press  []int64
}

func (r *recorder) ObservePulse(press int64, p Pulse) {
	r.pulses = append(r.pulses, p)
	r.press = append(r.press, press)
}

func (r *recorder) ObservePress(_ int64, delta PulseCounts) {
	r.deltas = append(r.deltas, delta)
}
