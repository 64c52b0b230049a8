// sim/simulator.go
package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/pulse-sim/pulse-sim/sim/trace"
)

// PulseObserver is notified of every pulse the simulator dispatches.
// press is the 1-based index of the button press in progress.
type PulseObserver interface {
	ObservePulse(press int64, p Pulse)
}

// PressObserver is an optional extension of PulseObserver notified once a
// press has fully drained. delta holds the pulses counted during that press.
type PressObserver interface {
	ObservePress(press int64, delta PulseCounts)
}

// Simulator is the core object that owns the module graph, the pulse
// counters and the press loop. It is not safe for concurrent use; run
// independent simulations on independently built graphs.
type Simulator struct {
	Graph   *Graph
	Metrics *Metrics
	// Trace records every dispatched pulse when non-nil.
	Trace *trace.SimulationTrace

	observers []PulseObserver
	newBuffer func() pulseBuffer
}

// NewSimulator returns a simulator that takes ownership of g.
func NewSimulator(g *Graph) *Simulator {
	return &Simulator{
		Graph:     g,
		Metrics:   NewMetrics(),
		newBuffer: func() pulseBuffer { return &PulseQueue{} },
	}
}

// AddObserver registers o for every pulse dispatched from now on.
func (sim *Simulator) AddObserver(o PulseObserver) {
	sim.observers = append(sim.observers, o)
}

// Presses returns the number of completed button presses.
func (sim *Simulator) Presses() int64 {
	return sim.Metrics.Presses
}

// Counts returns the cumulative pulse totals.
func (sim *Simulator) Counts() PulseCounts {
	return sim.Metrics.Counts()
}

// ResetCounts zeroes the pulse counters. Module state and the press index are kept.
func (sim *Simulator) ResetCounts() {
	sim.Metrics.HighPulses = 0
	sim.Metrics.LowPulses = 0
}

// PressButton sends one low pulse from the button to the broadcaster and
// delivers pulses in FIFO order until none are left. A module's outgoing
// pulses are queued behind everything already in flight, so propagation is
// breadth-first. Returns the cumulative totals.
func (sim *Simulator) PressButton() PulseCounts {
	press := sim.Metrics.Presses + 1
	before := sim.Metrics.Counts()

	queue := sim.newBuffer()
	queue.Enqueue(Pulse{From: ButtonName, To: BroadcasterName, Polarity: Low})
	seq := 0
	for queue.Len() > 0 {
		p, _ := queue.Dequeue()
		sim.dispatch(press, seq, p, queue)
		seq++
	}

	sim.Metrics.Presses = press
	after := sim.Metrics.Counts()
	delta := PulseCounts{High: after.High - before.High, Low: after.Low - before.Low}
	for _, o := range sim.observers {
		if po, ok := o.(PressObserver); ok {
			po.ObservePress(press, delta)
		}
	}
	logrus.Debugf("[press %d] drained %d pulses (high=%d, low=%d)", press, seq, delta.High, delta.Low)
	return after
}

// dispatch counts p, notifies observers and queues the receiver's reaction.
func (sim *Simulator) dispatch(press int64, seq int, p Pulse, queue pulseBuffer) {
	if p.Polarity == High {
		sim.Metrics.HighPulses++
	} else {
		sim.Metrics.LowPulses++
	}
	logrus.Tracef("[press %d] %s", press, p)
	if sim.Trace != nil {
		sim.Trace.RecordPulse(trace.PulseRecord{
			Press: press,
			Seq:   seq,
			From:  p.From,
			To:    p.To,
			High:  bool(p.Polarity),
		})
	}
	for _, o := range sim.observers {
		o.ObservePulse(press, p)
	}

	m, ok := sim.Graph.Module(p.To)
	if !ok {
		// BuildGraph materializes every destination.
		panic("dispatch: pulse addressed to unknown module " + p.To)
	}
	out, emit := m.Receive(p.From, p.Polarity)
	if !emit {
		return
	}
	for _, dest := range m.Destinations {
		queue.Enqueue(Pulse{From: m.Name, To: dest, Polarity: out})
	}
}

// RunFixed presses the button n times and returns the cumulative totals.
func (sim *Simulator) RunFixed(n int64) PulseCounts {
	for i := int64(0); i < n; i++ {
		sim.PressButton()
	}
	logrus.Infof("completed %d presses: high=%d low=%d", n, sim.Metrics.HighPulses, sim.Metrics.LowPulses)
	return sim.Counts()
}

// RunFixed builds a simulator over g, presses the button n times and
// returns the pulse totals.
func RunFixed(g *Graph, n int64) PulseCounts {
	return NewSimulator(g).RunFixed(n)
}
