package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pulse-sim/pulse-sim/sim"
	"github.com/pulse-sim/pulse-sim/sim/circuit"
)

var (
	logLevel    string // Log verbosity level
	circuitPath string // Circuit file (text format, or YAML with a .yaml/.yml extension)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "pulse-sim",
	Short: "Discrete-event simulator for pulse propagation networks",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadCircuit reads the circuit at path and builds a fresh graph from it.
func loadCircuit(path string) (*circuit.CircuitSpec, *sim.Graph, error) {
	if path == "" {
		return nil, nil, fmt.Errorf("circuit file not provided")
	}
	spec, err := circuit.Load(path)
	if err != nil {
		return nil, nil, err
	}
	g, err := spec.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	logrus.Infof("Loaded circuit %s with %d modules", path, g.Len())
	return spec, g, nil
}

// init sets up flags shared by every subcommand
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&circuitPath, "circuit", "", "Path to the circuit file (text format, or YAML with .yaml/.yml)")
}
