package logic

// ═══════════════════════════════════════════════════════════════════════════
// LAYER BUILDER
// ═══════════════════════════════════════════════════════════════════════════
//
// For one hidden (or output) layer of width `size`, reading feeders from
// [inputOffset, gateOffset), a layerBuilder materializes every admissible
// (gate-mode assignment, input-connection mask assignment) pair: one
// candidate Layer per surviving pair.
//
// Two symmetry reductions keep this enumeration tractable:
//
//  1. Mode assignments are generated as non-decreasing index sequences
//     (UniqueCombinationsOI with duplicates allowed), so two layers that
//     differ only by a permutation of same-mode gates are never both
//     produced.
//  2. Within each maximal run of equal-mode gates, connection masks are
//     generated as a strict subset (UniqueCombinationsOI without
//     duplicates) rather than independently per gate, which breaks the
//     permutation symmetry among same-mode siblings.
//
// Single-input pruning then drops mask assignments that waste a gate on a
// degenerate pass-through or inverter (see pruneSingleInput below).
type layerBuilder struct {
	size         uint8
	inputOffset  uint8
	gateOffset   uint8
	combinations []Layer
}

// newLayerBuilder materializes the full admissible-layer list for one
// hidden (or output) layer position.
func newLayerBuilder(size, inputOffset, gateOffset uint8, modes []Mode, balanced bool) layerBuilder {
	return layerBuilder{
		size:         size,
		inputOffset:  inputOffset,
		gateOffset:   gateOffset,
		combinations: buildLayer(size, modes, inputOffset, gateOffset, balanced),
	}
}

// buildLayer enumerates every admissible layer for a single layer position.
func buildLayer(size uint8, modes []Mode, inputOffset, gateOffset uint8, balanced bool) []Layer {
	modeAssignments := UniqueCombinationsOI(size, uint64(len(modes)), true)

	feederCount := gateOffset - inputOffset
	feederSpace := (uint64(1) << feederCount) - 1 // number of non-empty feeder masks

	var layers []Layer
	for _, modeAssignment := range modeAssignments {
		masks := maskAssignmentsForModes(modeAssignment, feederSpace)
		masks = pruneSingleInput(masks, modeAssignment, modes, balanced)

		for _, maskAssignment := range masks {
			gates := make([]Gate, size)
			for i := range gates {
				gates[i] = Gate{
					InputMask: (maskAssignment[i] + 1) << inputOffset,
					Mode:      modes[modeAssignment[i]],
				}
			}
			layers = append(layers, Layer{
				Gates:       gates,
				InputOffset: inputOffset,
				GateOffset:  gateOffset,
			})
		}
	}
	return layers
}

// maskAssignmentsForModes generates the connection-mask assignments for one
// mode assignment: for each maximal run of equal consecutive mode indices
// of length r, a strict (no-duplicates) combination of r masks out of
// feederSpace, Cartesian-producted across runs.
func maskAssignmentsForModes(modeAssignment []uint64, feederSpace uint64) [][]uint64 {
	masks := [][]uint64{{}}

	runStart := 0
	for i := 0; i < len(modeAssignment); i++ {
		if i == len(modeAssignment)-1 || modeAssignment[i] != modeAssignment[i+1] {
			runLen := uint8(i - runStart + 1)
			runMasks := UniqueCombinationsOI(runLen, feederSpace, false)
			masks = CartesianProduct(masks, runMasks)
			runStart = i + 1
		}
	}
	return masks
}

// pruneSingleInput drops mask assignments where some gate's mask selects
// exactly one feeder and that gate's mode degenerates into a redundant
// pass-through (positive family) or inverter (negated family) of its sole
// feeder: AND(x)=OR(x)=XOR(x)=x and NAND(x)=NOR(x)=XNOR(x)=not(x).
//
// Which single-input modes survive depends on the palette and addressing:
//
//   - When balanced addressing is in effect and the palette contains more
//     than one mode with a second-smallest mode from the positive family,
//     only the cheapest (list-smallest) positive single-input gate survives
//     per position; every other positive single-input gate at that
//     position is redundant with it and is dropped. Negated single-input
//     gates are not pruned in this case.
//   - Otherwise, every positive single-input gate is dropped (the positive
//     family pass-through has no cheaper representative to prefer), and
//     every negated single-input gate except the list's largest-coded one
//     is dropped (the dearest negated gate is kept as the canonical
//     inverter) — unless the palette carries no negated mode at all, in
//     which case there is no inverter to fall back on and the cheapest
//     positive mode is kept instead, the same as the first case.
//
// The rules apply per mask assignment, so a layer whose gates can only be
// single-input (more gates than a lone feeder can distinguish) may be left
// with no admissible candidate at all.
func pruneSingleInput(masks [][]uint64, modeAssignment []uint64, modes []Mode, balanced bool) [][]uint64 {
	if len(masks) == 0 {
		return masks
	}

	positiveBeyondFirst := balanced && len(modes) > 1 && uint8(modes[1]) < 4
	hasNegated := uint8(modes[len(modes)-1]) > 4

	kept := make([][]uint64, 0, len(masks))
combo:
	for _, maskCombo := range masks {
		for i, modeIdx := range modeAssignment {
			mode := modes[modeIdx]
			maskVal := maskCombo[i] + 1
			singleInput := maskVal&(maskVal-1) == 0
			if !singleInput {
				continue
			}

			if positiveBeyondFirst || !hasNegated {
				if uint8(mode) < 4 && mode != modes[0] {
					continue combo
				}
			} else {
				if uint8(mode) < 4 || (uint8(mode) > 4 && mode != modes[len(modes)-1]) {
					continue combo
				}
			}
		}
		kept = append(kept, maskCombo)
	}
	return kept
}
