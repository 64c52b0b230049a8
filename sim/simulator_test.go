package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulse-sim/pulse-sim/sim/internal/testutil"
	"github.com/pulse-sim/pulse-sim/sim/trace"
)

func TestRunFixed_ReferenceCircuits(t *testing.T) {
	for _, fx := range []testutil.CircuitFixture{
		testutil.ScenarioA(),
		testutil.ScenarioB(),
		testutil.OrderSensitive(),
	} {
		t.Run(fx.Name, func(t *testing.T) {
			// GIVEN a freshly built circuit
			g := mustBuild(t, fx.Lines)

			// WHEN the button is pressed a fixed number of times
			got := RunFixed(g, fx.Presses)

			// THEN the pulse totals match the reference values
			assert.Equal(t, fx.WantLow, got.Low, "low pulses")
			assert.Equal(t, fx.WantHigh, got.High, "high pulses")
		})
	}
}

func TestSimulator_PressButton_ReturnsCumulativeTotals(t *testing.T) {
	sim := NewSimulator(mustBuild(t, testutil.ScenarioA().Lines))

	first := sim.PressButton()
	second := sim.PressButton()

	assert.Equal(t, PulseCounts{High: 4, Low: 8}, first)
	assert.Equal(t, PulseCounts{High: 8, Low: 16}, second)
	assert.Equal(t, int64(2), sim.Presses())
}

func TestSimulator_FIFOIsLoadBearing(t *testing.T) {
	// GIVEN two simulators over the same circuit, one draining LIFO
	fx := testutil.OrderSensitive()
	fifo := NewSimulator(mustBuild(t, fx.Lines))
	lifo := NewSimulator(mustBuild(t, fx.Lines))
	lifo.newBuffer = func() pulseBuffer { return &pulseStack{} }

	// WHEN both run the same presses
	gotFIFO := fifo.RunFixed(fx.Presses)
	gotLIFO := lifo.RunFixed(fx.Presses)

	// THEN the totals differ: delivery order changes conjunction outcomes
	assert.Equal(t, PulseCounts{High: fx.WantHigh, Low: fx.WantLow}, gotFIFO)
	assert.Equal(t, PulseCounts{High: testutil.OrderSensitiveLIFOHigh, Low: testutil.OrderSensitiveLIFOLow}, gotLIFO)
	assert.NotEqual(t, gotFIFO, gotLIFO)
}

func TestSimulator_DeliveryOrderIsBreadthFirst(t *testing.T) {
	// GIVEN a simulator recording a pulse trace
	sim := NewSimulator(mustBuild(t, testutil.ScenarioA().Lines))
	sim.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelPulses})

	// WHEN one press is made
	sim.PressButton()

	// THEN pulses were delivered in queue order
	records := sim.Trace.Press(1)
	got := make([]string, len(records))
	for i, r := range records {
		got[i] = r.String()
		assert.Equal(t, i, r.Seq)
	}
	assert.Equal(t, testutil.ScenarioAFirstPress, got)
}

func TestSimulator_Observers_SeeEveryPulseWithPressIndex(t *testing.T) {
	sim := NewSimulator(mustBuild(t, testutil.ScenarioB().Lines))
	rec := &recorder{}
	sim.AddObserver(rec)

	sim.PressButton()
	sim.PressButton()

	// ScenarioB delivers 8 pulses on the first press and 6 on the second.
	require.Len(t, rec.pulses, 14)
	assert.Equal(t, int64(1), rec.press[0])
	assert.Equal(t, int64(2), rec.press[13])
	assert.Equal(t, Pulse{From: ButtonName, To: BroadcasterName, Polarity: Low}, rec.pulses[8])
	assert.Equal(t, []PulseCounts{{High: 4, Low: 4}, {High: 2, Low: 4}}, rec.deltas)
}

func TestSimulator_FlipFlopTogglesMatchLowPulsesReceived(t *testing.T) {
	// GIVEN a circuit with several flip-flops and an observer tracking them
	g := mustBuild(t, testutil.CounterCircuit(testutil.Counter{Period: 5, Width: 3}, testutil.Counter{Period: 7, Width: 3}))
	sim := NewSimulator(g)
	lows := make(map[string]int)
	sim.AddObserver(observerFunc(func(_ int64, p Pulse) {
		if p.Polarity == Low {
			lows[p.To]++
		}
	}))

	// WHEN the button is pressed repeatedly
	sim.RunFixed(100)

	// THEN every flip-flop toggled once per low pulse it received,
	// so its state is the parity of that count
	states := flipFlopStates(g)
	require.NotEmpty(t, states)
	for name, active := range states {
		assert.Equal(t, lows[name]%2 == 1, active, "flip-flop %s after %d low pulses", name, lows[name])
	}
}

func flipFlopStates(g *Graph) map[string]bool {
	out := make(map[string]bool)
	for _, name := range g.Names() {
		if m, _ := g.Module(name); m.Kind == KindFlipFlop {
			out[name] = m.Active()
		}
	}
	return out
}

type observerFunc func(press int64, p Pulse)

func (f observerFunc) ObservePulse(press int64, p Pulse) { f(press, p) }

func TestSimulator_ResetCounts_KeepsStateAndPressIndex(t *testing.T) {
	sim := NewSimulator(mustBuild(t, testutil.ScenarioB().Lines))
	sim.PressButton()

	sim.ResetCounts()

	assert.Equal(t, PulseCounts{}, sim.Counts())
	assert.Equal(t, int64(1), sim.Presses())
	// The flip-flop b is on after one press, so the second press differs from the first.
	assert.Equal(t, PulseCounts{High: 2, Low: 4}, sim.PressButton())
}

func TestRunFixed_ZeroPresses(t *testing.T) {
	assert.Equal(t, PulseCounts{}, RunFixed(mustBuild(t, testutil.ScenarioA().Lines), 0))
}
