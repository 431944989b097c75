// Package circuitfmt renders logic.Circuit values as human-readable text.
package circuitfmt

import (
	"fmt"
	"strings"

	"github.com/DM-3/sequential-logic-solver/logic"
)

// Gate renders one gate as its input mask right-aligned to width 5, an
// underscore, and its 4-character mode name — e.g. "    3_AND ".
func Gate(gate logic.Gate) string {
	return fmt.Sprintf("%5d_%s", gate.InputMask, gate.Mode)
}

// Layer renders a layer as its gates, tab-separated, inside "[ … ]".
func Layer(layer logic.Layer) string {
	var b strings.Builder
	b.WriteString("[ ")
	for _, gate := range layer.Gates {
		b.WriteString(Gate(gate))
		b.WriteByte('\t')
	}
	b.WriteString("]")
	return b.String()
}

// Format renders a full circuit: one "layer i: " line per layer, in
// circuit order, followed by a trailing blank line.
func Format(circuit logic.Circuit) string {
	var b strings.Builder
	b.WriteString("circuit:\n")
	for i, layer := range circuit.Layers {
		fmt.Fprintf(&b, " layer %d: \t%s\n", i, Layer(layer))
	}
	b.WriteString("\n")
	return b.String()
}
