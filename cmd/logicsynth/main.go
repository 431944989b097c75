// Command logicsynth synthesizes a layered Boolean circuit from a CSV
// truth table and prints the first satisfying circuit found, or reports
// that none exists.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DM-3/sequential-logic-solver/circuitfmt"
	"github.com/DM-3/sequential-logic-solver/logic"
	"github.com/DM-3/sequential-logic-solver/truthtable"
)

var modeNames = map[string]logic.Mode{
	"and":  logic.ModeAnd,
	"or":   logic.ModeOr,
	"xor":  logic.ModeXor,
	"nand": logic.ModeNand,
	"nor":  logic.ModeNor,
	"xnor": logic.ModeXnor,
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := newRootCmd(logger.Sugar()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(log *zap.SugaredLogger) *cobra.Command {
	var (
		inputPath  string
		layersCSV  string
		modesCSV   string
		unbalanced bool
	)

	cmd := &cobra.Command{
		Use:   "logicsynth",
		Short: "Synthesize a layered Boolean circuit from a CSV truth table",
		RunE: func(cmd *cobra.Command, args []string) error {
			layerSizes, err := parseLayerSizes(layersCSV)
			if err != nil {
				return fmt.Errorf("--layers: %w", err)
			}
			modes, err := parseModes(modesCSV)
			if err != nil {
				return fmt.Errorf("--modes: %w", err)
			}

			table, err := truthtable.ReadCSV(inputPath)
			if err != nil {
				log.Warnw("proceeding with a possibly incomplete truth table", "error", err)
			}
			log.Infow("loaded truth table", "rows", len(table.Entries), "path", inputPath)

			circuit, ok, err := logic.Solve(context.Background(), layerSizes, table, modes, !unbalanced)
			if err != nil {
				return fmt.Errorf("solve: %w", err)
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no circuit solution found")
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), circuitfmt.Format(circuit))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "CSV truth table path (required)")
	cmd.Flags().StringVar(&layersCSV, "layers", "", "comma-separated layer widths, e.g. 4,3,1,3 (required)")
	cmd.Flags().StringVar(&modesCSV, "modes", "and,xor", "comma-separated gate modes from {and,or,xor,nand,nor,xnor}")
	cmd.Flags().BoolVar(&unbalanced, "unbalanced", false, "let hidden layers read every prior layer instead of only their immediate predecessor")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("layers")

	return cmd
}

func parseLayerSizes(csv string) ([]uint8, error) {
	parts := strings.Split(csv, ",")
	sizes := make([]uint8, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid layer width: %w", p, err)
		}
		sizes[i] = uint8(n)
	}
	return sizes, nil
}

func parseModes(csv string) ([]logic.Mode, error) {
	parts := strings.Split(csv, ",")
	modes := make([]logic.Mode, 0, len(parts))
	for _, p := range parts {
		name := strings.ToLower(strings.TrimSpace(p))
		mode, ok := modeNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown gate mode %q", p)
		}
		modes = append(modes, mode)
	}
	return modes, nil
}
