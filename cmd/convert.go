package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pulse-sim/pulse-sim/sim/circuit"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a circuit to the YAML spec format",
	Long:  "Convert a text-format circuit (or re-emit a YAML one) as a CircuitSpec YAML document. Output is written to stdout for piping.",
	Run: func(cmd *cobra.Command, args []string) {
		spec, _, err := loadCircuit(circuitPath)
		if err != nil {
			logrus.Fatalf("Unable to load circuit: %v", err)
		}
		if err := writeSpec(os.Stdout, spec); err != nil {
			logrus.Fatalf("YAML marshal failed: %v", err)
		}
	},
}

// writeSpec marshals a CircuitSpec to YAML and writes it to w.
func writeSpec(w io.Writer, spec *circuit.CircuitSpec) error {
	data, err := circuit.MarshalSpec(spec)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
