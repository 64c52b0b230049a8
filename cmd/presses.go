package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pulse-sim/pulse-sim/sim"
	"github.com/pulse-sim/pulse-sim/sim/circuit"
)

var (
	target     string // Module whose first pulse is searched for
	polarity   string // Polarity the target must receive
	strategy   string // Search strategy
	maxPresses int64  // Upper bound on simulated presses (0 = unbounded)
)

// searchOptions is the resolved configuration of one presses query.
type searchOptions struct {
	Target   string
	Polarity sim.Polarity
	Config   sim.SearchConfig
}

// pressesCmd reports how many presses it takes for a target module to first
// receive a pulse of the requested polarity
var pressesCmd = &cobra.Command{
	Use:   "presses",
	Short: "Count presses until a target module receives a pulse",
	Run: func(cmd *cobra.Command, args []string) {
		spec, g, err := loadCircuit(circuitPath)
		if err != nil {
			logrus.Fatalf("Unable to load circuit: %v", err)
		}
		opts, err := resolveSearch(spec.Search, searchFlags{
			Target:     flagValue(cmd, "target", target),
			Polarity:   flagValue(cmd, "polarity", polarity),
			Strategy:   flagValue(cmd, "strategy", strategy),
			MaxPresses: maxPresses,
			MaxSet:     cmd.Flags().Changed("max-presses"),
		})
		if err != nil {
			logrus.Fatalf("Invalid search: %v", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		n, err := sim.PressesUntilTarget(ctx, g, opts.Target, opts.Polarity, opts.Config)
		if err != nil {
			logrus.Fatalf("Search failed: %v", err)
		}
		fmt.Println(n)
	},
}

// searchFlags holds the flag values that were set explicitly; empty strings
// and an unset MaxSet defer to the circuit file.
type searchFlags struct {
	Target     string
	Polarity   string
	Strategy   string
	MaxPresses int64
	MaxSet     bool
}

func flagValue(cmd *cobra.Command, name, value string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	return ""
}

// resolveSearch merges explicit flags over the circuit file's search defaults.
func resolveSearch(defaults *circuit.SearchSpec, flags searchFlags) (searchOptions, error) {
	merged := circuit.SearchSpec{}
	if defaults != nil {
		merged = *defaults
	}
	if flags.Target != "" {
		merged.Target = flags.Target
	}
	if flags.Polarity != "" {
		merged.Polarity = flags.Polarity
	}
	if flags.Strategy != "" {
		merged.Strategy = flags.Strategy
	}
	if flags.MaxSet {
		merged.MaxPresses = flags.MaxPresses
	}

	if merged.Target == "" {
		return searchOptions{}, fmt.Errorf("target module not provided")
	}
	p := sim.Low
	if merged.Polarity != "" {
		var err error
		if p, err = sim.ParsePolarity(merged.Polarity); err != nil {
			return searchOptions{}, err
		}
	}
	cfg := merged.Config()
	if err := cfg.Validate(); err != nil {
		return searchOptions{}, err
	}
	logrus.Infof("Searching for %s pulse to %s (strategy=%q, max-presses=%d)", p, merged.Target, cfg.Strategy, cfg.MaxPresses)
	return searchOptions{Target: merged.Target, Polarity: p, Config: cfg}, nil
}

func init() {
	pressesCmd.Flags().StringVar(&target, "target", "", "Target module (defaults to the circuit file's search.target)")
	pressesCmd.Flags().StringVar(&polarity, "polarity", "low", "Polarity the target must receive (high, low)")
	pressesCmd.Flags().StringVar(&strategy, "strategy", string(sim.StrategyCycle), "Search strategy (cycle, auto, exhaustive)")
	pressesCmd.Flags().Int64Var(&maxPresses, "max-presses", 0, "Upper bound on simulated presses (0 = unbounded)")

	rootCmd.AddCommand(pressesCmd)
}
