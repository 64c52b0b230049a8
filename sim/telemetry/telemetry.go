// Package telemetry exports simulator activity as Prometheus metrics.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pulse-sim/pulse-sim/sim"
)

// Collector is a sim.PulseObserver and sim.PressObserver that counts pulses
// by polarity, button presses, and pulses delivered per press.
type Collector struct {
	pulses   *prometheus.CounterVec
	presses  prometheus.Counter
	perPress prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		pulses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pulsesim_pulses_total",
				Help: "Total number of pulses delivered, by polarity",
			},
			[]string{"polarity"},
		),
		presses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pulsesim_presses_total",
			Help: "Total number of button presses",
		}),
		perPress: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pulsesim_pulses_per_press",
			Help:    "Pulses delivered by a single button press",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
	for _, m := range []prometheus.Collector{c.pulses, c.presses, c.perPress} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ObservePulse counts one delivered pulse.
func (c *Collector) ObservePulse(_ int64, p sim.Pulse) {
	c.pulses.WithLabelValues(p.Polarity.String()).Inc()
}

// ObservePress counts one completed press.
func (c *Collector) ObservePress(_ int64, delta sim.PulseCounts) {
	c.presses.Inc()
	c.perPress.Observe(float64(delta.Total()))
}
