package trace

import (
	"testing"
)

func TestSimulationTrace_RecordPulse_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for pulses
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelPulses})

	// WHEN a pulse record is recorded
	st.RecordPulse(PulseRecord{Press: 1, Seq: 0, From: "button", To: "broadcaster", High: false})

	// THEN the trace contains one record with correct data
	if len(st.Pulses) != 1 {
		t.Fatalf("expected 1 pulse, got %d", len(st.Pulses))
	}
	if st.Pulses[0].To != "broadcaster" {
		t.Errorf("expected destination broadcaster, got %s", st.Pulses[0].To)
	}
	if st.Pulses[0].High {
		t.Error("expected high=false")
	}
}

func TestSimulationTrace_LevelNone_RecordsNothing(t *testing.T) {
	// GIVEN a trace with tracing disabled
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelNone})

	// WHEN a pulse is recorded
	st.RecordPulse(PulseRecord{Press: 1, From: "a", To: "b"})

	// THEN nothing is kept
	if len(st.Pulses) != 0 {
		t.Errorf("expected 0 pulses, got %d", len(st.Pulses))
	}
}

func TestSimulationTrace_MaxPulses_CountsDropped(t *testing.T) {
	// GIVEN a trace capped at two records
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelPulses, MaxPulses: 2})

	// WHEN three pulses are recorded
	for i := 0; i < 3; i++ {
		st.RecordPulse(PulseRecord{Press: 1, Seq: i, From: "a", To: "b"})
	}

	// THEN two are kept and one is counted as dropped
	if len(st.Pulses) != 2 {
		t.Fatalf("expected 2 pulses, got %d", len(st.Pulses))
	}
	if st.Dropped != 1 {
		t.Errorf("expected 1 dropped, got %d", st.Dropped)
	}
}

func TestSimulationTrace_Press_FiltersAndPreservesOrder(t *testing.T) {
	// GIVEN records from two presses
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelPulses})
	st.RecordPulse(PulseRecord{Press: 1, Seq: 0, From: "button", To: "broadcaster"})
	st.RecordPulse(PulseRecord{Press: 2, Seq: 0, From: "button", To: "broadcaster"})
	st.RecordPulse(PulseRecord{Press: 2, Seq: 1, From: "broadcaster", To: "a"})

	// WHEN the second press is requested
	got := st.Press(2)

	// THEN only its records are returned in delivery order
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Seq != 0 || got[1].Seq != 1 {
		t.Error("press order not preserved")
	}
}

func TestPulseRecord_String(t *testing.T) {
	r := PulseRecord{From: "a", To: "inv", High: true}
	if got := r.String(); got != "a -high-> inv" {
		t.Errorf("String() = %q, want %q", got, "a -high-> inv")
	}
}

func TestIsValidTraceLevel_ValidLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"pulses", true},
		{"", true}, // empty defaults to none
		{"decisions", false},
		{"foobar", false},
		{"NONE", false}, // case-sensitive
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := IsValidTraceLevel(tt.level); got != tt.valid {
				t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tt.level, got, tt.valid)
			}
		})
	}
}
