package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pulse-sim/pulse-sim/sim"
	"github.com/pulse-sim/pulse-sim/sim/circuit"
)

var stateAfter int64 // Presses to simulate before rendering module state

// graphCmd prints the circuit as a Mermaid flowchart
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Render the circuit as a Mermaid flowchart",
	Run: func(cmd *cobra.Command, args []string) {
		_, g, err := loadCircuit(circuitPath)
		if err != nil {
			logrus.Fatalf("Unable to load circuit: %v", err)
		}
		if err := renderGraph(os.Stdout, g, cmd.Flags().Changed("state-after"), stateAfter); err != nil {
			logrus.Fatalf("Graph rendering failed: %v", err)
		}
	},
}

// renderGraph writes g as Mermaid. With withState set, the button is first
// pressed presses times and modules that are on are highlighted.
func renderGraph(w io.Writer, g *sim.Graph, withState bool, presses int64) error {
	if presses < 0 {
		return fmt.Errorf("state-after must be non-negative, got %d", presses)
	}
	if withState {
		sim.RunFixed(g, presses)
	}
	_, err := io.WriteString(w, circuit.Mermaid(g, withState))
	return err
}

func init() {
	graphCmd.Flags().Int64Var(&stateAfter, "state-after", 0, "Highlight module state after this many presses")

	rootCmd.AddCommand(graphCmd)
}
