package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalPulses     int
	HighCount       int
	LowCount        int
	Presses         int            // distinct presses with at least one record
	MaxPerPress     int            // longest cascade seen in a single press
	ReceivedBy      map[string]int // module name → pulses delivered to it
	UniqueReceivers int
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		ReceivedBy: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	perPress := make(map[int64]int)
	summary.TotalPulses = len(st.Pulses)
	for _, r := range st.Pulses {
		if r.High {
			summary.HighCount++
		} else {
			summary.LowCount++
		}
		summary.ReceivedBy[r.To]++
		perPress[r.Press]++
	}
	for _, n := range perPress {
		if n > summary.MaxPerPress {
			summary.MaxPerPress = n
		}
	}

	summary.Presses = len(perPress)
	summary.UniqueReceivers = len(summary.ReceivedBy)

	return summary
}
