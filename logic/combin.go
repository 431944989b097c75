package logic

// ═══════════════════════════════════════════════════════════════════════════
// COMBINATORICS UTILITY
// ═══════════════════════════════════════════════════════════════════════════
//
// DESIGN PHILOSOPHY:
// ─────────────────
// 1. Order-independent generation: never visit the same multiset twice
// 2. Deterministic ordering: same inputs always produce the same sequence
//    of outputs, in the same order (required for reproducible synthesis)
// 3. Grouped suffixes: lists sharing a common suffix are contiguous, so a
//    caller can scan for "runs of equal leading elements" in one pass
//
// Both properties are load-bearing: the layer builder (layerbuilder.go)
// relies on non-decreasing mode assignments being grouped by run, and the
// driver (solve.go) relies on solve() being byte-identical across runs
// with the same inputs.

// UniqueCombinationsOI produces all order-independent selections of
// `positions` elements drawn from the type alphabet {0, …, types-1}.
//
// With allowDuplicates=true, it returns multisets (combinations with
// replacement): exactly C(types+positions-1, positions) of them.
// With allowDuplicates=false, it returns strict subsets of distinct
// elements: exactly C(types, positions) of them, or none at all when
// types < positions.
//
// Every inner slice is non-decreasing. The outer slice is ordered so that
// entries sharing a common suffix are grouped contiguously: this function
// partitions the space by whether the maximum type (types-1) appears at
// all, recursing on the "absent" case first and the "present" case
// second, and concatenating absent-before-present.
func UniqueCombinationsOI(positions uint8, types uint64, allowDuplicates bool) [][]uint64 {
	if !allowDuplicates && types < uint64(positions) {
		return nil
	}

	if positions == 0 {
		return [][]uint64{{}}
	}

	if types == 0 {
		return nil
	}

	if types <= 1 {
		row := make([]uint64, positions)
		return [][]uint64{row}
	}

	if positions == 1 {
		combos := make([][]uint64, 0, types)
		for i := uint64(0); i < types; i++ {
			combos = append(combos, []uint64{i})
		}
		return combos
	}

	// Absent: the max type (types-1) is never used at any position.
	absent := UniqueCombinationsOI(positions, types-1, allowDuplicates)

	// Present: one position is pinned to the max type, the rest draw from
	// a type alphabet that is one smaller when duplicates are disallowed
	// (the max type is now taken) and unchanged when duplicates are
	// allowed (the max type may recur).
	presentTypes := types
	if !allowDuplicates {
		presentTypes = types - 1
	}
	present := UniqueCombinationsOI(positions-1, presentTypes, allowDuplicates)

	combinations := make([][]uint64, 0, len(absent)+len(present))
	combinations = append(combinations, absent...)
	for _, c := range present {
		row := make([]uint64, 0, positions)
		row = append(row, c...)
		row = append(row, types-1)
		combinations = append(combinations, row)
	}

	return combinations
}

// CartesianProduct concatenates every sequence in a with every sequence in
// b, preserving the order "a-major then b-minor": all of a[0]'s
// concatenations before any of a[1]'s.
func CartesianProduct[T any](a, b [][]T) [][]T {
	product := make([][]T, 0, len(a)*len(b))
	for _, ea := range a {
		for _, eb := range b {
			row := make([]T, 0, len(ea)+len(eb))
			row = append(row, ea...)
			row = append(row, eb...)
			product = append(product, row)
		}
	}
	return product
}
