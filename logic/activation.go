package logic

// ═══════════════════════════════════════════════════════════════════════════
// ACTIVATION CACHE
// ═══════════════════════════════════════════════════════════════════════════
//
// One packed uint64 per truth-table row, laid out from bit 0 upward: the
// input layer's bits, then each hidden layer's gate outputs at its
// GateOffset, then the truth table's output bits at the output layer's
// GateOffset. A parallel don't-care mask marks output positions that need
// not be matched.
//
// ActivationCache is the one piece of state the search driver mutates in
// place across iterations: Compute seeds it from scratch, Update refreshes
// only the layers that changed since the previous candidate circuit.
type ActivationCache struct {
	Rows     []uint64
	DontCare []uint64
}

// Activation evaluates this gate's 0/1 output against a row's current
// activation bits.
func (g Gate) Activation(row uint64) uint64 {
	masked := row & g.InputMask
	return g.Mode.activation(masked, g.InputMask)
}

// computeActivationCache builds a fresh ActivationCache for circuit against
// truthTable: seed each row with its input bits, fold in every hidden
// layer's gate outputs in order, then OR in the truth table's output bits
// and record its don't-care mask at the output layer's offset.
func computeActivationCache(circuit Circuit, table TruthTable) ActivationCache {
	cache := ActivationCache{
		Rows:     make([]uint64, len(table.Entries)),
		DontCare: make([]uint64, len(table.Entries)),
	}

	output := circuit.OutputLayer()
	hidden := circuit.HiddenLayers()

	for i, entry := range table.Entries {
		row := entry.InputBits

		for _, layer := range hidden {
			for g, gate := range layer.Gates {
				row |= gate.Activation(row) << (layer.GateOffset + uint8(g))
			}
		}

		row |= entry.OutputBits << output.GateOffset

		cache.Rows[i] = row
		cache.DontCare[i] = entry.DontCareBits << output.GateOffset
	}

	return cache
}

// updateActivationCache recomputes activation bits starting at
// fromLayerIndex (an index into circuit.HiddenLayers()) through the last
// hidden layer, in place. Earlier bits and the stored don't-care masks are
// left untouched. After this call the cache is bitwise-identical to what
// computeActivationCache would produce against the current hidden layers.
func updateActivationCache(circuit Circuit, cache ActivationCache, fromLayerIndex int) {
	hidden := circuit.HiddenLayers()
	if fromLayerIndex >= len(hidden) {
		return
	}

	for _, layer := range hidden[fromLayerIndex:] {
		for g, gate := range layer.Gates {
			bit := uint64(1) << (layer.GateOffset + uint8(g))
			for i, row := range cache.Rows {
				row &^= bit
				row |= gate.Activation(row) << (layer.GateOffset + uint8(g))
				cache.Rows[i] = row
			}
		}
	}
}
