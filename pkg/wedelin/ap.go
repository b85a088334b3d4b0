package wedelin

import "sort"

// AP is the paired sparse matrix of component C1: it stores the
// integer coefficient A[k,j] and the real preference P[k,j] over a
// single fixed sparsity pattern, with both a row-major and a
// column-major index into the same underlying (A, P) slot storage.
//
// Every non-zero cell has a stable "slot id" — its position in the A
// and P slices — which both the row view and the column view resolve
// to, so a row update can mutate P(k,j) while accumulating over
// column j's other rows without any back-pointers (design notes §9).
//
// The sparsity pattern is fixed at construction (invariant 1 of the
// specification's testable properties) and the row/col index arrays
// are arena-allocated once, as the design notes prescribe for the
// production path.
type AP struct {
	m, n int

	A []int     // coefficient, indexed by slot id
	P []float64 // preference, indexed by slot id

	rowOf []int // slot id -> row
	colOf []int // slot id -> column

	rowStart []int // length m+1, CSR-style offsets into rowSlot
	rowSlot  []int // slot ids grouped by row, column-ascending within a row

	colStart []int // length n+1, CSC-style offsets into colSlot
	colSlot  []int // slot ids grouped by column, row-ascending within a column
}

// NewAP builds an AP matrix for an m-row, n-column problem with
// non-zero cells at the given (row, col) positions. Positions may
// arrive in any order; NewAP sorts each row's and column's entries
// internally so iteration is always in ascending index order.
func NewAP(m, n int, positions [][2]int) *AP {
	numSlots := len(positions)

	ap := &AP{
		m: m, n: n,
		A:     make([]int, numSlots),
		P:     make([]float64, numSlots),
		rowOf: make([]int, numSlots),
		colOf: make([]int, numSlots),
	}

	rowStart := make([]int, m+1)
	colStart := make([]int, n+1)
	for _, pos := range positions {
		rowStart[pos[0]+1]++
		colStart[pos[1]+1]++
	}
	for i := 0; i < m; i++ {
		rowStart[i+1] += rowStart[i]
	}
	for j := 0; j < n; j++ {
		colStart[j+1] += colStart[j]
	}

	rowSlot := make([]int, numSlots)
	colSlot := make([]int, numSlots)
	rowCursor := append([]int(nil), rowStart[:m]...)
	colCursor := append([]int(nil), colStart[:n]...)

	for slot, pos := range positions {
		k, j := pos[0], pos[1]
		ap.rowOf[slot] = k
		ap.colOf[slot] = j

		rowSlot[rowCursor[k]] = slot
		rowCursor[k]++

		colSlot[colCursor[j]] = slot
		colCursor[j]++
	}

	ap.rowStart = rowStart
	ap.rowSlot = rowSlot
	ap.colStart = colStart
	ap.colSlot = colSlot

	ap.Sort()

	return ap
}

// Sort brings each row's and each column's entries into ascending
// index order. NewAP calls this already; it is exported because the
// specification requires it be callable before any row update runs,
// and because a caller assembling an AP incrementally (outside this
// package) would need to call it explicitly.
func (ap *AP) Sort() {
	for k := 0; k < ap.m; k++ {
		seg := ap.rowSlot[ap.rowStart[k]:ap.rowStart[k+1]]
		sort.Slice(seg, func(i, j int) bool { return ap.colOf[seg[i]] < ap.colOf[seg[j]] })
	}
	for j := 0; j < ap.n; j++ {
		seg := ap.colSlot[ap.colStart[j]:ap.colStart[j+1]]
		sort.Slice(seg, func(i, j2 int) bool { return ap.rowOf[seg[i]] < ap.rowOf[seg[j2]] })
	}
}

// RowSlots returns the slot ids of row k's non-zeros, in ascending
// column order.
func (ap *AP) RowSlots(k int) []int {
	return ap.rowSlot[ap.rowStart[k]:ap.rowStart[k+1]]
}

// ColSlots returns the slot ids of column j's non-zeros, in ascending
// row order.
func (ap *AP) ColSlots(j int) []int {
	return ap.colSlot[ap.colStart[j]:ap.colStart[j+1]]
}

// RowOf returns the row of the cell stored at the given slot id.
func (ap *AP) RowOf(slot int) int { return ap.rowOf[slot] }

// ColOf returns the column of the cell stored at the given slot id.
func (ap *AP) ColOf(slot int) int { return ap.colOf[slot] }

// At looks up the slot id of cell (k, j), if it is part of the
// sparsity pattern. Accessing a cell outside the pattern is a
// precondition violation (specification §4.1): callers that expect
// the cell to exist should not check the boolean, the same way the
// original treats out-of-range access as undefined rather than a
// recoverable error.
func (ap *AP) At(k, j int) (slot int, ok bool) {
	seg := ap.rowSlot[ap.rowStart[k]:ap.rowStart[k+1]]
	lo, hi := 0, len(seg)
	for lo < hi {
		mid := (lo + hi) / 2
		if ap.colOf[seg[mid]] < j {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(seg) && ap.colOf[seg[lo]] == j {
		return seg[lo], true
	}
	return 0, false
}

// InvertP flips the sign of both A and P at the given slot ("negate
// and restore" trick used to fold a negative coefficient into the
// pure-{0,1} row-update path).
func (ap *AP) InvertP(slot int) {
	ap.A[slot] = -ap.A[slot]
	ap.P[slot] = -ap.P[slot]
}

// AddP adds delta to P at the given slot.
func (ap *AP) AddP(slot int, delta float64) {
	ap.P[slot] += delta
}

// RowValue computes Σ A[k,j] x[j] over row k's non-zeros.
func (ap *AP) RowValue(k int, x []int) int {
	v := 0
	for _, slot := range ap.RowSlots(k) {
		v += ap.A[slot] * x[ap.colOf[slot]]
	}
	return v
}
