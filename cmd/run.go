package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pulse-sim/pulse-sim/sim"
	"github.com/pulse-sim/pulse-sim/sim/telemetry"
	"github.com/pulse-sim/pulse-sim/sim/trace"
)

var (
	numPresses  int64  // Number of button presses
	traceLevel  string // Pulse trace verbosity
	traceMax    int    // Cap on recorded pulses
	metricsFile string // Prometheus text file to write after the run
)

// runOptions collects the run command's settings.
type runOptions struct {
	Presses     int64
	TraceLevel  string
	TraceMax    int
	MetricsFile string
}

// runCmd presses the button a fixed number of times and reports pulse totals
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Press the button a fixed number of times and count pulses",
	Run: func(cmd *cobra.Command, args []string) {
		spec, g, err := loadCircuit(circuitPath)
		if err != nil {
			logrus.Fatalf("Unable to load circuit: %v", err)
		}
		opts := runOptions{Presses: numPresses, TraceLevel: traceLevel, TraceMax: traceMax, MetricsFile: metricsFile}
		if !cmd.Flags().Changed("presses") && spec.Presses > 0 {
			opts.Presses = spec.Presses
		}
		if err := runCircuit(os.Stdout, g, opts); err != nil {
			logrus.Fatalf("Run failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// runCircuit simulates g per opts and writes the metrics report to w.
func runCircuit(w io.Writer, g *sim.Graph, opts runOptions) error {
	if opts.Presses < 0 {
		return fmt.Errorf("presses must be non-negative, got %d", opts.Presses)
	}
	if !trace.IsValidTraceLevel(opts.TraceLevel) {
		return fmt.Errorf("unknown trace level %q; valid: none, pulses", opts.TraceLevel)
	}

	s := sim.NewSimulator(g)
	if trace.TraceLevel(opts.TraceLevel) == trace.TraceLevelPulses {
		s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevel(opts.TraceLevel), MaxPulses: opts.TraceMax})
	}

	var reg *prometheus.Registry
	if opts.MetricsFile != "" {
		reg = prometheus.NewRegistry()
		collector, err := telemetry.NewCollector(reg)
		if err != nil {
			return fmt.Errorf("registering metrics: %w", err)
		}
		s.AddObserver(collector)
	}

	s.RunFixed(opts.Presses)
	s.Metrics.Print(w)

	if s.Trace != nil {
		printTraceSummary(w, s.Trace)
	}
	if reg != nil {
		if err := prometheus.WriteToTextfile(opts.MetricsFile, reg); err != nil {
			return fmt.Errorf("writing metrics file: %w", err)
		}
		logrus.Infof("Wrote metrics to %s", opts.MetricsFile)
	}
	return nil
}

func printTraceSummary(w io.Writer, st *trace.SimulationTrace) {
	summary := trace.Summarize(st)
	fmt.Fprintln(w, "=== Trace Summary ===")
	fmt.Fprintf(w, "Recorded Pulses      : %d\n", summary.TotalPulses)
	fmt.Fprintf(w, "Dropped Pulses       : %d\n", st.Dropped)
	fmt.Fprintf(w, "Presses Recorded     : %d\n", summary.Presses)
	fmt.Fprintf(w, "Longest Cascade      : %d\n", summary.MaxPerPress)
	fmt.Fprintf(w, "Unique Receivers     : %d\n", summary.UniqueReceivers)
}

func init() {
	runCmd.Flags().Int64Var(&numPresses, "presses", 1000, "Number of button presses (defaults to the circuit file's presses when set)")
	runCmd.Flags().StringVar(&traceLevel, "trace", string(trace.TraceLevelNone), "Pulse trace level (none, pulses)")
	runCmd.Flags().IntVar(&traceMax, "trace-max", 100000, "Maximum pulses to record when tracing (0 = unlimited)")
	runCmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics to this file after the run")

	rootCmd.AddCommand(runCmd)
}
