package trace

// TraceLevel controls the verbosity of pulse tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelPulses captures every delivered pulse.
	TraceLevelPulses TraceLevel = "pulses"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:   true,
	TraceLevelPulses: true,
	"":               true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level     TraceLevel
	MaxPulses int // records kept before further pulses are only counted (0 = unlimited)
}

// SimulationTrace collects pulse records during a simulation.
type SimulationTrace struct {
	Config  TraceConfig
	Pulses  []PulseRecord
	Dropped int // pulses seen after MaxPulses was reached
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config: config,
		Pulses: make([]PulseRecord, 0),
	}
}

// RecordPulse appends a pulse record. It is a no-op unless the level is TraceLevelPulses.
func (st *SimulationTrace) RecordPulse(record PulseRecord) {
	if st.Config.Level != TraceLevelPulses {
		return
	}
	if st.Config.MaxPulses > 0 && len(st.Pulses) >= st.Config.MaxPulses {
		st.Dropped++
		return
	}
	st.Pulses = append(st.Pulses, record)
}

// Press returns the records of one press in delivery order.
func (st *SimulationTrace) Press(press int64) []PulseRecord {
	var out []PulseRecord
	for _, r := range st.Pulses {
		if r.Press == press {
			out = append(out, r)
		}
	}
	return out
}
