package sparse

import (
	"github.com/katalvlaran/lvlopt/frac"
)

// Mat is an unordered sparse matrix with entries stored by columns
// (column-compressed / CSC). Assembly is sequential: push the entries of one
// column, then SealColumn to finalize its boundary before the next column
// begins.
//
// Invariant: indptr is non-decreasing and its last element equals NNZ.
// Within a sealed column, entries are NOT required to be sorted by row.
type Mat struct {
	nRows  int
	indptr []int
	rows   []int
	vals   []frac.Frac
}

// NewMat returns an empty matrix with nRows rows and no columns yet.
func NewMat(nRows int) *Mat {
	return &Mat{
		nRows:  nRows,
		indptr: []int{0},
	}
}

// Rows returns the number of rows.
func (m *Mat) Rows() int { return m.nRows }

// Cols returns the number of sealed columns.
func (m *Mat) Cols() int { return len(m.indptr) - 1 }

// NNZ returns the total number of stored entries.
func (m *Mat) NNZ() int { return len(m.vals) }

// ClearAndResize drops all entries and columns and resets the row count.
func (m *Mat) ClearAndResize(nRows int) {
	m.vals = m.vals[:0]
	m.rows = m.rows[:0]
	m.indptr = m.indptr[:0]
	m.indptr = append(m.indptr, 0)
	m.nRows = nRows
}

// Push appends one entry (row, val) to the column currently under assembly.
func (m *Mat) Push(row int, val frac.Frac) {
	m.rows = append(m.rows, row)
	m.vals = append(m.vals, val)
}

// SealColumn finalizes the column under assembly, fixing its boundary.
func (m *Mat) SealColumn() {
	m.indptr = append(m.indptr, len(m.rows))
}

// sealed reports whether the previous column was sealed (no pending entries).
func (m *Mat) sealed() bool {
	return m.indptr[len(m.indptr)-1] == len(m.rows)
}

// AppendCol pushes every entry of col as one new column and seals it.
// Calling AppendCol while a previous column is still unsealed is a contract
// violation in assembly sequencing and panics.
func (m *Mat) AppendCol(col *Vec) {
	if !m.sealed() {
		panic("sparse: AppendCol before sealing the previous column")
	}
	col.Iter(func(i int, val frac.Frac) {
		m.Push(i, val)
	})
	m.SealColumn()
}

// ColRows returns the row indices of sealed column j.
// The slice aliases internal storage; callers must not modify it.
func (m *Mat) ColRows(j int) []int {
	return m.rows[m.indptr[j]:m.indptr[j+1]]
}

// ColVals returns the values of sealed column j.
// The slice aliases internal storage; callers must not modify it.
func (m *Mat) ColVals(j int) []frac.Frac {
	return m.vals[m.indptr[j]:m.indptr[j+1]]
}

// ColIter calls fn for every entry of sealed column j in storage order.
func (m *Mat) ColIter(j int, fn func(row int, val frac.Frac)) {
	lo, hi := m.indptr[j], m.indptr[j+1]
	for k := lo; k < hi; k++ {
		fn(m.rows[k], m.vals[k])
	}
}

// Transpose returns the transposed matrix in compressed form, built by
// counting sort in O(nnz + rows) time:
//
//  1. count entries per destination row across all columns;
//  2. prefix-sum the counts so each pointer addresses the END of its row;
//  3. scatter every entry into its row's next free slot, walking pointers
//     backwards; the final pointer is then restored to NNZ.
//
// Transposing twice restores the logical matrix; physical entry order within
// a row may differ from the original column order.
func (m *Mat) Transpose() *Mat {
	out := &Mat{
		nRows:  m.Cols(),
		indptr: make([]int, m.nRows+1),
		rows:   make([]int, m.NNZ()),
		vals:   make([]frac.Frac, m.NNZ()),
	}

	// 1) Row occupancy counts, accumulated directly into indptr.
	for _, r := range m.rows {
		out.indptr[r]++
	}

	// 2) Cumulative sums: indptr[r] now points one past the end of row r.
	for r := 1; r < len(out.indptr); r++ {
		out.indptr[r] += out.indptr[r-1]
	}

	// 3) Scatter, filling each destination row from its end backwards.
	for c := 0; c < m.Cols(); c++ {
		m.ColIter(c, func(r int, val frac.Frac) {
			out.indptr[r]--
			out.rows[out.indptr[r]] = c
			out.vals[out.indptr[r]] = val
		})
	}

	// Pin the terminator: the last pointer must equal the entry count.
	out.indptr[len(out.indptr)-1] = m.NNZ()

	return out
}

// ToDense renders the matrix as dense rows (test/debug use).
func (m *Mat) ToDense() [][]frac.Frac {
	dense := make([][]frac.Frac, m.nRows)
	for r := range dense {
		dense[r] = make([]frac.Frac, m.Cols())
	}
	for c := 0; c < m.Cols(); c++ {
		m.ColIter(c, func(r int, val frac.Frac) {
			dense[r][c] = val
		})
	}

	return dense
}
