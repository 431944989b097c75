package logic

import (
	"context"
	"math/bits"
	"slices"
	"sort"
)

// ═══════════════════════════════════════════════════════════════════════════
// SEARCH DRIVER
// ═══════════════════════════════════════════════════════════════════════════
//
// STATE MACHINE:
// ──────────────
//
//	Start → Decoding → Evaluating → Constructing → (Solved | NextCandidate)
//
// Terminal: Solved (return the circuit) or Exhausted (every candidate
// failed; return ok=false). Transitions are deterministic and sequential —
// Solve is synchronous and single-threaded throughout.
//
// Solve enumerates the mixed-radix product of per-hidden-layer admissible
// layer lists, decoding the last hidden layer as the fastest-changing
// digit so the activation cache only needs a full hidden-layer refresh
// when a higher digit advances (see chooseUpdateFrom below).
func Solve(ctx context.Context, layerSizes []uint8, table TruthTable, modes []Mode, balanced bool) (Circuit, bool, error) {
	if len(layerSizes) < 2 {
		return Circuit{}, false, ErrTooFewLayers
	}
	for _, size := range layerSizes {
		if size == 0 {
			return Circuit{}, false, ErrEmptyLayer
		}
	}

	sortedModes := append([]Mode(nil), modes...)
	sort.Slice(sortedModes, func(i, j int) bool { return sortedModes[i] < sortedModes[j] })
	sortedModes = slices.Compact(sortedModes)

	layerBuilders := buildHiddenLayerBuilders(layerSizes, sortedModes, balanced)

	var nCircuitCombos uint64 = 1
	for _, b := range layerBuilders {
		nCircuitCombos *= uint64(len(b.combinations))
	}

	inputLayer := Layer{
		Gates:       make([]Gate, layerSizes[0]),
		InputOffset: 0,
		GateOffset:  0,
	}
	for i := range inputLayer.Gates {
		inputLayer.Gates[i] = Gate{InputMask: 0, Mode: ModeIn}
	}

	var totalWidth uint8
	for _, s := range layerSizes {
		totalWidth += s
	}
	outputGateOffset := totalWidth - layerSizes[len(layerSizes)-1]
	outputInputOffset := uint8(0)
	if balanced {
		outputInputOffset = outputGateOffset - layerSizes[len(layerSizes)-2]
	}

	var cache ActivationCache

	for circuitCombo := uint64(0); circuitCombo < nCircuitCombos; circuitCombo++ {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return Circuit{}, false, err
			}
		}

		circuit := decodeCandidate(circuitCombo, inputLayer, layerBuilders, outputInputOffset, outputGateOffset, layerSizes[len(layerSizes)-1])

		if circuitCombo == 0 {
			cache = computeActivationCache(circuit, table)
		} else {
			updateActivationCache(circuit, cache, chooseUpdateFrom(circuitCombo, layerBuilders))
		}

		if tryConstructOutputLayer(circuit, cache, sortedModes) {
			return circuit, true, nil
		}
	}

	return Circuit{}, false, nil
}

// buildHiddenLayerBuilders constructs one layerBuilder per hidden layer
// position, in topological order (index 0 adjacent to the input layer,
// index len-1 adjacent to the output layer).
func buildHiddenLayerBuilders(layerSizes []uint8, modes []Mode, balanced bool) []layerBuilder {
	builders := make([]layerBuilder, len(layerSizes)-2)

	var g uint8
	for i := 1; i < len(layerSizes)-1; i++ {
		inputOffset := g
		if !balanced {
			inputOffset = 0
		}
		g += layerSizes[i-1]
		gateOffset := g

		builders[i-1] = newLayerBuilder(layerSizes[i], inputOffset, gateOffset, modes, balanced)
	}
	return builders
}

// decodeCandidate decodes circuitCombo into one concrete Circuit.
//
// Digits are extracted in order j = k-1, k-2, …, 0 (last hidden layer
// first) by repeated quotient/remainder, which is exactly what makes the
// last hidden layer the fastest-changing digit. The decoded layers are
// assembled directly into topological order (input, then hidden layers
// low-index first, then output).
func decodeCandidate(circuitCombo uint64, inputLayer Layer, layerBuilders []layerBuilder, outputInputOffset, outputGateOffset, outputSize uint8) Circuit {
	chosen := make([]Layer, len(layerBuilders))

	layerIdx := circuitCombo
	for b := len(layerBuilders) - 1; b >= 0; b-- {
		n := uint64(len(layerBuilders[b].combinations))
		chosen[b] = layerBuilders[b].combinations[layerIdx%n]
		layerIdx /= n
	}

	layers := make([]Layer, 0, len(chosen)+2)
	layers = append(layers, inputLayer)
	layers = append(layers, chosen...)
	layers = append(layers, Layer{
		Gates:       make([]Gate, outputSize),
		InputOffset: outputInputOffset,
		GateOffset:  outputGateOffset,
	})

	return Circuit{Layers: layers}
}

// chooseUpdateFrom decides how far back into the hidden layers the
// activation cache must be refreshed for this iteration: a full refresh
// when the last hidden layer's digit has just wrapped around (a higher
// digit advanced), otherwise a refresh of only the last hidden layer. This
// mirrors the wrap point of the fastest-changing digit rather than the
// precise lowest digit that actually changed, so an update can occasionally
// do more work than strictly necessary — never less.
func chooseUpdateFrom(circuitCombo uint64, layerBuilders []layerBuilder) int {
	last := layerBuilders[len(layerBuilders)-1]
	if circuitCombo%uint64(len(last.combinations)) == 0 {
		return 0
	}
	return len(layerBuilders) - 1
}

// ═══════════════════════════════════════════════════════════════════════════
// OUTPUT-LAYER CONSTRUCTOR
// ═══════════════════════════════════════════════════════════════════════════

// tryConstructOutputLayer decides, for the circuit's already-finalized
// hidden activations, whether an output layer exists that matches the
// truth table. It mutates circuit's output layer gates in place and
// reports whether it succeeded.
//
// For each output position in increasing order, candidate input masks are
// tried in ascending integer order; for each mask, all six compute modes
// are evaluated against every truth-table row in a single bit-parallel pass
// (modeActivationBits), and the lowest surviving mode code is kept. The
// first input mask with any surviving mode wins — lowest mask, then lowest
// mode code, is the tie-break contract.
func tryConstructOutputLayer(circuit Circuit, cache ActivationCache, modes []Mode) bool {
	var allModes uint8
	for _, m := range modes {
		allModes |= 1 << uint8(m)
	}

	output := circuit.OutputLayer()

	maskInc := uint64(1) << output.InputOffset
	maskTop := uint64(1) << output.GateOffset
	pos := uint64(1) << output.GateOffset

	for g := range output.Gates {
		gate := &output.Gates[g]

		found := false
		for inputMask := maskInc; inputMask < maskTop; inputMask += maskInc {
			modeOptions := allModes

			for i, row := range cache.Rows {
				if cache.DontCare[i]&pos != 0 {
					continue
				}

				masked := row & inputMask
				modeActivations := modeActivationBits(masked, inputMask)

				if row&pos != 0 {
					modeOptions &= modeActivations
				} else {
					modeOptions &= ^modeActivations
				}

				if modeOptions == 0 {
					break
				}
			}

			if modeOptions != 0 {
				gate.InputMask = inputMask
				gate.Mode = Mode(bits.TrailingZeros8(modeOptions))
				found = true
				break
			}
		}

		if !found {
			return false
		}
		pos <<= 1
	}

	return true
}

// modeActivationBits evaluates all six compute modes against one masked
// activation simultaneously: bits {AND,OR,XOR} are set according to the
// positive family, and bits {NAND,NOR,XNOR} mirror their complements.
func modeActivationBits(masked, inputMask uint64) uint8 {
	and := masked == inputMask
	or := masked != 0
	xor := bits.OnesCount64(masked)&1 == 1

	var a uint8
	if and {
		a |= 1 << uint8(ModeAnd)
	}
	if or {
		a |= 1 << uint8(ModeOr)
	}
	if xor {
		a |= 1 << uint8(ModeXor)
	}
	if !and {
		a |= 1 << uint8(ModeNand)
	}
	if !or {
		a |= 1 << uint8(ModeNor)
	}
	if !xor {
		a |= 1 << uint8(ModeXnor)
	}
	return a
}
