package logic

import "testing"

// ═══════════════════════════════════════════════════════════════════════════
// COMBINATORICS UTILITY - Test Suite
// ═══════════════════════════════════════════════════════════════════════════
//
// WHAT WE'RE TESTING:
// ──────────────────
// UniqueCombinationsOI must produce exactly the counting-theory cardinality
// for both modes (with and without duplicates), every inner slice must be
// non-decreasing, and the ordering must group shared suffixes contiguously
// — the layer builder depends on that grouping to scan runs of equal modes.

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}

func isNonDecreasing(row []uint64) bool {
	for i := 1; i < len(row); i++ {
		if row[i] < row[i-1] {
			return false
		}
	}
	return true
}

func TestUniqueCombinationsOI_WithDuplicates_Cardinality(t *testing.T) {
	// C(types+positions-1, positions) multisets
	cases := []struct {
		positions uint8
		types     uint64
	}{
		{1, 1}, {1, 3}, {2, 1}, {2, 3}, {3, 2}, {4, 3},
	}

	for _, c := range cases {
		got := UniqueCombinationsOI(c.positions, c.types, true)
		want := binomial(int(c.types)+int(c.positions)-1, int(c.positions))
		if len(got) != want {
			t.Errorf("positions=%d types=%d: got %d combinations, want %d", c.positions, c.types, len(got), want)
		}
		for _, row := range got {
			if len(row) != int(c.positions) {
				t.Fatalf("row length = %d, want %d", len(row), c.positions)
			}
			if !isNonDecreasing(row) {
				t.Errorf("row %v is not non-decreasing", row)
			}
		}
	}
}

func TestUniqueCombinationsOI_WithoutDuplicates_Cardinality(t *testing.T) {
	cases := []struct {
		positions uint8
		types     uint64
	}{
		{1, 1}, {2, 3}, {3, 3}, {2, 5}, {0, 3},
	}

	for _, c := range cases {
		got := UniqueCombinationsOI(c.positions, c.types, false)
		want := binomial(int(c.types), int(c.positions))
		if len(got) != want {
			t.Errorf("positions=%d types=%d: got %d combinations, want %d", c.positions, c.types, len(got), want)
		}
	}
}

func TestUniqueCombinationsOI_WithoutDuplicates_TooFewTypes(t *testing.T) {
	// types < positions with no duplicates allowed: no strict subset exists
	got := UniqueCombinationsOI(4, 2, false)
	if len(got) != 0 {
		t.Errorf("expected zero combinations, got %d", len(got))
	}
}

func TestUniqueCombinationsOI_SuffixGrouping(t *testing.T) {
	// The construction rule partitions the output by whether the max type
	// (types-1) appears at all: every "absent" row (max element < types-1)
	// comes before every "present" row (max element == types-1), and that
	// partition applies recursively to the absent block too. Since each
	// row is non-decreasing, a row's max element is its last element, so
	// this must mean the rows' last elements are non-decreasing overall —
	// equivalently, once a last-element value's run ends, it never
	// reappears later.
	for _, c := range []struct {
		positions uint8
		types     uint64
		allowDup  bool
	}{
		{3, 3, true}, {3, 4, false}, {4, 3, true}, {2, 5, false},
	} {
		rows := UniqueCombinationsOI(c.positions, c.types, c.allowDup)
		if len(rows) == 0 {
			t.Fatalf("positions=%d types=%d allowDup=%v: expected non-empty output", c.positions, c.types, c.allowDup)
		}

		ended := map[uint64]bool{}
		for i, row := range rows {
			last := row[len(row)-1]
			if i > 0 {
				prevLast := rows[i-1][len(rows[i-1])-1]
				if prevLast != last {
					ended[prevLast] = true
				}
			}
			if ended[last] {
				t.Errorf("positions=%d types=%d allowDup=%v: trailing value %d reappears at row %d after its run ended", c.positions, c.types, c.allowDup, last, i)
			}
		}
	}
}

func TestCartesianProduct_LengthAndOrder(t *testing.T) {
	a := [][]uint64{{1}, {2}}
	b := [][]uint64{{10}, {20}, {30}}

	got := CartesianProduct(a, b)
	if len(got) != len(a)*len(b) {
		t.Fatalf("length = %d, want %d", len(got), len(a)*len(b))
	}

	want := [][]uint64{{1, 10}, {1, 20}, {1, 30}, {2, 10}, {2, 20}, {2, 30}}
	for i, row := range got {
		if len(row) != 2 || row[0] != want[i][0] || row[1] != want[i][1] {
			t.Errorf("row %d = %v, want %v", i, row, want[i])
		}
	}
}

func TestCartesianProduct_EmptySide(t *testing.T) {
	a := [][]uint64{{1}, {2}}
	var b [][]uint64

	got := CartesianProduct(a, b)
	if len(got) != 0 {
		t.Errorf("expected empty product when one side is empty, got %d", len(got))
	}
}
