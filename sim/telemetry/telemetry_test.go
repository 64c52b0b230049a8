package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulse-sim/pulse-sim/sim"
	fixtures "github.com/pulse-sim/pulse-sim/sim/internal/testutil"
)

func buildScenarioA(t *testing.T) *sim.Graph {
	t.Helper()
	var defs []sim.Definition
	for _, line := range fixtures.ScenarioA().Lines {
		marker, name, dests := fixtures.SplitLine(line)
		kind, err := sim.KindFromMarker(marker)
		require.NoError(t, err)
		defs = append(defs, sim.Definition{Name: name, Kind: kind, Destinations: dests})
	}
	g, err := sim.BuildGraph(defs)
	require.NoError(t, err)
	return g
}

func TestCollector_MatchesSimulatorCounts(t *testing.T) {
	// GIVEN a collector observing a simulator
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)
	s := sim.NewSimulator(buildScenarioA(t))
	s.AddObserver(c)

	// WHEN the button is pressed
	got := s.RunFixed(10)

	// THEN the exported counters agree with the simulator totals
	assert.Equal(t, float64(got.High), testutil.ToFloat64(c.pulses.WithLabelValues("high")))
	assert.Equal(t, float64(got.Low), testutil.ToFloat64(c.pulses.WithLabelValues("low")))
	assert.Equal(t, float64(10), testutil.ToFloat64(c.presses))
	series, err := testutil.GatherAndCount(reg, "pulsesim_pulses_total")
	require.NoError(t, err)
	assert.Equal(t, 2, series)
	assert.Equal(t, 1, testutil.CollectAndCount(c.perPress))
}

func TestNewCollector_DuplicateRegistration_Fails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollector(reg)
	require.NoError(t, err)

	_, err = NewCollector(reg)

	assert.Error(t, err)
}
