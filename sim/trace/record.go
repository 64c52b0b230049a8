// Package trace provides pulse-trace recording for inspecting propagation order.
// This package has no dependencies on sim/; it stores pure data types.
package trace

import "fmt"

// PulseRecord captures a single delivered pulse.
type PulseRecord struct {
	Press int64 // 1-based button press the pulse belongs to
	Seq   int   // delivery position within the press, starting at 0
	From  string
	To    string
	High  bool
}

func (r PulseRecord) String() string {
	level := "low"
	if r.High {
		level = "high"
	}
	return fmt.Sprintf("%s -%s-> %s", r.From, level, r.To)
}
