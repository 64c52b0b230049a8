// Package testutil provides shared test circuits for the pulse simulator.
// It consolidates the reference circuits and their expected pulse counts
// used across sim/, sim/circuit/ and cmd/ test packages.
package testutil

import (
	"fmt"
	"strings"
)

// CircuitFixture is a circuit in the text format with its expected totals.
type CircuitFixture struct {
	Name     string
	Lines    []string
	Presses  int64
	WantLow  int64
	WantHigh int64
}

// ScenarioA is three chained flip-flops with an inverter feeding back into the first.
func ScenarioA() CircuitFixture {
	return CircuitFixture{
		Name: "flip-flop-chain",
		Lines: []string{
			"broadcaster -> a, b, c",
			"%a -> b",
			"%b -> c",
			"%c -> inv",
			"&inv -> a",
		},
		Presses:  1000,
		WantLow:  8000,
		WantHigh: 4000,
	}
}

// ScenarioB mixes flip-flops and conjunctions and ends in an undeclared output sink.
func ScenarioB() CircuitFixture {
	return CircuitFixture{
		Name: "output-sink",
		Lines: []string{
			"broadcaster -> a",
			"%a -> inv, con",
			"&inv -> b",
			"%b -> con",
			"&con -> output",
		},
		Presses:  1000,
		WantLow:  4250,
		WantHigh: 2750,
	}
}

// OrderSensitive is a circuit whose conjunction sees a transient all-high
// memory only under FIFO delivery. Totals are for FIFO.
func OrderSensitive() CircuitFixture {
	return CircuitFixture{
		Name: "order-sensitive",
		Lines: []string{
			"broadcaster -> a",
			"%a -> con, inv",
			"&inv -> con",
			"&con -> out",
		},
		Presses:  4,
		WantLow:  15,
		WantHigh: 13,
	}
}

// OrderSensitiveLIFO holds the totals OrderSensitive produces when pulses are
// delivered last-in first-out.
const (
	OrderSensitiveLIFOLow  = 16
	OrderSensitiveLIFOHigh = 12
)

// ScenarioAFirstPress is the FIFO delivery order of the first press of ScenarioA.
var ScenarioAFirstPress = []string{
	"button -low-> broadcaster",
	"broadcaster -low-> a",
	"broadcaster -low-> b",
	"broadcaster -low-> c",
	"a -high-> b",
	"b -high-> c",
	"c -high-> inv",
	"inv -low-> a",
	"a -low-> b",
	"b -low-> c",
	"c -low-> inv",
	"inv -high-> a",
}

// Counter describes one sub-circuit of CounterCircuit: a binary counter of
// Width flip-flops that resets itself after Period presses. Period must be
// odd and have bit Width-1 set.
type Counter struct {
	Period int
	Width  int
}

// CounterCircuit builds a circuit in which each counter drives an inverter
// into a shared conjunction "gate" that feeds "rx". The inverter of counter i
// sends the gate a high pulse once every Period presses, so rx first gets a
// low pulse at the least common multiple of the periods.
func CounterCircuit(counters ...Counter) []string {
	heads := make([]string, 0, len(counters))
	var body []string
	for i, c := range counters {
		prefix := string(rune('a' + i))
		heads = append(heads, prefix+"0")
		body = append(body, counterLines(prefix, c)...)
	}
	lines := []string{"broadcaster -> " + strings.Join(heads, ", ")}
	lines = append(lines, body...)
	return append(lines, "&gate -> rx")
}

func counterLines(prefix string, c Counter) []string {
	bit := func(i int) string { return fmt.Sprintf("%s%d", prefix, i) }
	conj, inv := prefix+"c", prefix+"x"

	var lines, feedback []string
	for i := 0; i < c.Width; i++ {
		var dests []string
		if i+1 < c.Width {
			dests = append(dests, bit(i+1))
		}
		if c.Period>>i&1 == 1 {
			dests = append(dests, conj)
		} else {
			feedback = append(feedback, bit(i))
		}
		lines = append(lines, "%"+bit(i)+" -> "+strings.Join(dests, ", "))
	}
	feedback = append(feedback, bit(0), inv)
	lines = append(lines, "&"+conj+" -> "+strings.Join(feedback, ", "))
	return append(lines, "&"+inv+" -> gate")
}

// SplitLine breaks a text-format line into its kind marker, name and
// destinations. It does no validation and exists so packages that cannot
// import the circuit loader can still use the fixtures.
func SplitLine(line string) (marker, name string, dests []string) {
	lhs, rhs, _ := strings.Cut(line, "->")
	name = strings.TrimSpace(lhs)
	if name != "" && strings.ContainsRune("%&", rune(name[0])) {
		marker, name = name[:1], name[1:]
	}
	for _, d := range strings.Split(rhs, ",") {
		if d = strings.TrimSpace(d); d != "" {
			dests = append(dests, d)
		}
	}
	return marker, name, dests
}
