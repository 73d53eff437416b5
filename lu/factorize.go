package lu

import (
	"github.com/katalvlaran/lvlopt/frac"
	"github.com/katalvlaran/lvlopt/sparse"
)

// workspace holds the active submatrix during elimination: scattered columns
// of the not-yet-eliminated part, plus activity flags and occupancy counts
// feeding the Markowitz criterion.
type workspace struct {
	n         int
	cols      []*sparse.ScatteredVec
	rowActive []bool
	colActive []bool
	rowCount  []int
	colCount  []int
}

// entry is one (index, value) pair accumulated for a factor column/row while
// its permuted position is not yet known.
type entry struct {
	idx int
	val frac.Frac
}

// Factorize computes the sparse LU factorization P·B·Q = L·U of the square
// basis matrix, choosing pivots by the Markowitz fill-reduction criterion.
//
// Steps:
//  1. Load the matrix into scattered working columns (O(nnz)).
//  2. For each elimination step k = 0..n−1:
//     a. refresh active row/column occupancy counts (O(active nnz));
//     b. choose the pivot minimizing (rowCount−1)·(colCount−1), ties by
//     lowest row then lowest column — no candidate ⇒ ErrSingularMatrix;
//     c. harvest the pivot row into U and the scaled pivot column into L
//     (multipliers a/p), both keyed by original indices;
//     d. rank-1 update of the remaining active submatrix;
//     e. retire the pivot row and column.
//  3. Remap the harvested entries through the final permutations and pack
//     L (unit diagonal) and U (explicit pivot diagonal) in compressed form,
//     together with their transposes for Btran.
//
// A fresh factorization carries an empty eta file.
func Factorize(basis *sparse.Mat) (*Factors, error) {
	n := basis.Rows()
	if basis.Cols() != n {
		return nil, ErrNotSquare
	}

	// 1) Scatter the input columns into the working submatrix.
	ws := &workspace{
		n:         n,
		cols:      make([]*sparse.ScatteredVec, n),
		rowActive: make([]bool, n),
		colActive: make([]bool, n),
		rowCount:  make([]int, n),
		colCount:  make([]int, n),
	}
	for j := 0; j < n; j++ {
		ws.cols[j] = sparse.NewScattered(n)
		basis.ColIter(j, func(r int, val frac.Frac) {
			ws.cols[j].Add(r, val)
		})
		ws.rowActive[j] = true
		ws.colActive[j] = true
	}

	// Factor entries in original coordinates, one bucket per step.
	lcols := make([][]entry, n)
	urows := make([][]entry, n)
	diag := make([]frac.Frac, n)
	rowOfStep := make([]int, n)
	colOfStep := make([]int, n)

	// 2) Elimination loop.
	for k := 0; k < n; k++ {
		// 2a + 2b) Occupancy refresh and Markowitz pivot choice.
		pi, pj, ok := ws.chooseMarkowitzPivot()
		if !ok {
			return nil, ErrSingularMatrix
		}
		rowOfStep[k] = pi
		colOfStep[k] = pj
		pivot := ws.cols[pj].At(pi)
		diag[k] = pivot

		// 2c) Harvest the pivot row (→ U) and pivot column (→ L).
		for j := 0; j < ws.n; j++ {
			if j == pj || !ws.colActive[j] {
				continue
			}
			if v := ws.cols[j].At(pi); !v.IsZero() {
				urows[k] = append(urows[k], entry{idx: j, val: v})
			}
		}
		for _, i := range ws.cols[pj].Indices() {
			if i == pi || !ws.rowActive[i] {
				continue
			}
			if v := ws.cols[pj].At(i); !v.IsZero() {
				lcols[k] = append(lcols[k], entry{idx: i, val: v.Div(pivot)})
			}
		}

		// 2d) Rank-1 update: active(i,j) −= multiplier(i) · pivotRow(j).
		for _, ue := range urows[k] {
			col := ws.cols[ue.idx]
			for _, le := range lcols[k] {
				col.Sub(le.idx, le.val.Mul(ue.val))
			}
		}

		// 2e) Retire the pivot row and column.
		ws.rowActive[pi] = false
		ws.colActive[pj] = false
	}

	// 3) Remap to elimination coordinates and pack the factors.
	rowPerm := sparse.FromNew2Orig(rowOfStep)
	colPerm := sparse.FromNew2Orig(colOfStep)

	lmat := sparse.NewMat(n)
	for k := 0; k < n; k++ {
		for _, e := range lcols[k] {
			lmat.Push(rowPerm.Orig2New[e.idx], e.val)
		}
		lmat.SealColumn()
	}

	// U is packed via its transpose: column k of Uᵀ is pivot row k.
	utmat := sparse.NewMat(n)
	for k := 0; k < n; k++ {
		for _, e := range urows[k] {
			utmat.Push(colPerm.Orig2New[e.idx], e.val)
		}
		utmat.SealColumn()
	}

	lower := sparse.NewUnitTriangle(lmat)
	upperT := sparse.NewTriangle(utmat, diag)

	return &Factors{
		n:       n,
		lower:   lower,
		lowerT:  lower.Transpose(),
		upper:   upperT.Transpose(),
		upperT:  upperT,
		rowPerm: rowPerm,
		colPerm: colPerm,
	}, nil
}
