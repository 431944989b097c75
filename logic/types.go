// Package logic implements the layered Boolean circuit synthesizer: given
// per-layer widths, a truth table, and a palette of allowed gate kinds, it
// enumerates candidate circuits under a fixed topology and returns the
// first one that realizes the truth table (don't-care bits honored).
//
// The package is a reference model in the same spirit as a hardware
// reference model: every bit position is explicit, nothing is hidden
// behind interfaces, and the packed 64-bit row representation is the
// central data structure every other piece operates on.
package logic

// ═══════════════════════════════════════════════════════════════════════════
// GATE / LAYER / CIRCUIT
// ═══════════════════════════════════════════════════════════════════════════

// Gate is one computed bit position: it reads the feeders selected by
// InputMask out of the row's activation bits and folds them through Mode.
//
// Invariant: every bit set in InputMask refers to a position earlier than
// the gate's own output position (no gate reads its own or a later layer's
// output).
type Gate struct {
	InputMask uint64
	Mode      Mode
}

// Layer is an ordered sequence of gates sharing one InputOffset and one
// GateOffset.
//
// InputOffset is the lowest feeder bit position this layer's gates may
// read from; GateOffset is the row position at which the layer's first
// gate writes its output (gate g of the layer occupies bit GateOffset+g).
//
// Invariant: InputOffset <= GateOffset, and every gate's InputMask lies
// entirely within [InputOffset, GateOffset).
type Layer struct {
	Gates       []Gate
	InputOffset uint8
	GateOffset  uint8
}

// Circuit is a complete layered topology: exactly one input layer, zero or
// more hidden layers, and exactly one output layer, in that order.
//
// The input layer has InputOffset = GateOffset = 0 and holds ModeIn
// placeholder gates. The output layer's GateOffset equals the sum of all
// prior layer widths.
type Circuit struct {
	Layers []Layer
}

// Width returns the bit width a fully-populated activation row for this
// circuit requires: the sum of every layer's gate count.
func (c Circuit) Width() uint8 {
	var w uint8
	for _, l := range c.Layers {
		w += uint8(len(l.Gates))
	}
	return w
}

// InputLayer, HiddenLayers and OutputLayer are small accessors used
// throughout the package so callers never have to reason about slice
// indices directly.
func (c Circuit) InputLayer() Layer  { return c.Layers[0] }
func (c Circuit) OutputLayer() Layer { return c.Layers[len(c.Layers)-1] }
func (c Circuit) HiddenLayers() []Layer {
	if len(c.Layers) <= 2 {
		return nil
	}
	return c.Layers[1 : len(c.Layers)-1]
}

// ═══════════════════════════════════════════════════════════════════════════
// TRUTH TABLE
// ═══════════════════════════════════════════════════════════════════════════

// TruthTableEntry is one row of the desired input->output mapping.
//
// Bit b of InputBits is the value presented at input position b; bit b of
// OutputBits is the required value at output position b; bit b of
// DontCareBits marks output positions that may take any value.
type TruthTableEntry struct {
	InputBits    uint64
	OutputBits   uint64
	DontCareBits uint64
}

// TruthTable is the caller-supplied specification the synthesized circuit
// must satisfy. It is read-only during synthesis.
type TruthTable struct {
	Entries []TruthTableEntry
}
