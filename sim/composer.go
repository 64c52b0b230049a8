package sim

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/sirupsen/logrus"
)

// CycleComposer answers "after how many presses does the target first get a
// low pulse" when the target is fed by a single conjunction (the gate).
// The gate emits low only when all its inputs are high, so the composer
// watches the gate's inputs and records the first press in which each one
// sends it a high pulse. The answer is the least common multiple of those
// presses.
//
// The composition is only right when every watched input fires with a
// fixed period and no phase offset, i.e. each sub-circuit returns to its
// starting state at the recorded press. That is a property of the circuit,
// not of module semantics, and it is not verified here.
type CycleComposer struct {
	Target string
	Gate   string

	watched []string
	first   map[string]int64
}

// NewCycleComposer derives the gate and watched set from g. It returns an
// *UnsupportedTopologyError when the shortcut does not apply.
func NewCycleComposer(g *Graph, target string, want Polarity) (*CycleComposer, error) {
	tm, ok := g.Module(target)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModule, target)
	}
	if want != Low {
		return nil, &UnsupportedTopologyError{Target: target, Reason: "only the first low pulse can be composed from gate inputs"}
	}
	if len(tm.Sources) != 1 {
		return nil, &UnsupportedTopologyError{
			Target: target,
			Reason: fmt.Sprintf("target has %d sources, need exactly one conjunction", len(tm.Sources)),
		}
	}
	gate, _ := g.Module(tm.Sources[0])
	if gate.Kind != KindConjunction {
		return nil, &UnsupportedTopologyError{
			Target: target,
			Reason: fmt.Sprintf("source %q is a %s, need a conjunction", gate.Name, gate.Kind),
		}
	}
	watched := uniqueSorted(gate.Sources)
	if len(watched) == 0 {
		return nil, &UnsupportedTopologyError{Target: target, Reason: fmt.Sprintf("gate %q has no inputs", gate.Name)}
	}
	return &CycleComposer{
		Target:  target,
		Gate:    gate.Name,
		watched: watched,
		first:   make(map[string]int64, len(watched)),
	}, nil
}

// Watched returns the gate inputs being tracked, sorted by name.
func (c *CycleComposer) Watched() []string {
	return append([]string(nil), c.watched...)
}

// ObservePulse records the first press in which each watched input sends the gate a high pulse.
func (c *CycleComposer) ObservePulse(press int64, p Pulse) {
	if p.To != c.Gate || p.Polarity != High {
		return
	}
	if _, seen := c.first[p.From]; seen {
		return
	}
	c.first[p.From] = press
	logrus.Infof("[press %d] %s first sent high to gate %s", press, p.From, c.Gate)
}

// Done reports whether every watched input has a recorded press.
func (c *CycleComposer) Done() bool {
	return len(c.first) == len(c.watched)
}

// Periods returns a copy of the recorded presses keyed by watched input.
func (c *CycleComposer) Periods() map[string]int64 {
	out := make(map[string]int64, len(c.first))
	for k, v := range c.first {
		out[k] = v
	}
	return out
}

// Result returns the least common multiple of all recorded presses.
// ok is false until Done.
func (c *CycleComposer) Result() (presses int64, ok bool, err error) {
	if !c.Done() {
		return 0, false, nil
	}
	acc := big.NewInt(1)
	for _, name := range c.watched {
		n := big.NewInt(c.first[name])
		gcd := new(big.Int).GCD(nil, nil, acc, n)
		acc.Mul(acc, n.Div(n, gcd))
	}
	if !acc.IsInt64() {
		return 0, true, fmt.Errorf("%w: lcm of %v", ErrOverflow, c.first)
	}
	return acc.Int64(), true, nil
}

func uniqueSorted(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}
