// Tracks simulation-wide pulse totals and the number of button presses.

package sim

import (
	"fmt"
	"io"
)

// PulseCounts holds a pair of high and low pulse totals.
type PulseCounts struct {
	High int64
	Low  int64
}

// Total returns High + Low.
func (c PulseCounts) Total() int64 {
	return c.High + c.Low
}

// Product returns High * Low.
func (c PulseCounts) Product() int64 {
	return c.High * c.Low
}

// Metrics aggregates statistics about the simulation for final reporting.
type Metrics struct {
	Presses    int64 // Number of completed button presses
	HighPulses int64 // Total high pulses delivered
	LowPulses  int64 // Total low pulses delivered
}

// NewMetrics returns zeroed metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Counts returns the pulse totals as a PulseCounts.
func (m *Metrics) Counts() PulseCounts {
	return PulseCounts{High: m.HighPulses, Low: m.LowPulses}
}

// Print writes the aggregated metrics to w.
func (m *Metrics) Print(w io.Writer) {
	c := m.Counts()
	fmt.Fprintln(w, "=== Pulse Metrics ===")
	fmt.Fprintf(w, "Button Presses       : %d\n", m.Presses)
	fmt.Fprintf(w, "High Pulses          : %d\n", c.High)
	fmt.Fprintf(w, "Low Pulses           : %d\n", c.Low)
	fmt.Fprintf(w, "Total Pulses         : %d\n", c.Total())
	fmt.Fprintf(w, "High x Low           : %d\n", c.Product())
}
