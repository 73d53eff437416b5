package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/frac"
	"github.com/katalvlaran/lvlopt/sparse"
)

// buildMat assembles the 2×3 reference matrix
//
//	| 11/10    0   44/10 |
//	| 22/10  33/10   0   |
func buildMat() *sparse.Mat {
	m := sparse.NewMat(2)
	m.Push(0, q(11, 10))
	m.Push(1, q(22, 10))
	m.SealColumn()
	m.Push(1, q(33, 10))
	m.SealColumn()
	m.Push(0, q(44, 10))
	m.SealColumn()

	return m
}

// assertDenseEq compares a dense rendering cell by cell.
func assertDenseEq(t *testing.T, got, want [][]frac.Frac) {
	t.Helper()
	require.Equal(t, len(want), len(got), "row count")
	for r := range want {
		require.Equal(t, len(want[r]), len(got[r]), "col count in row %d", r)
		for c := range want[r] {
			require.True(t, got[r][c].Equal(want[r][c]), "cell (%d,%d): got %s want %s", r, c, got[r][c], want[r][c])
		}
	}
}

// TestMatTranspose pins the exact compressed layout produced by the
// counting-sort transpose (fill-from-the-end scatter order included).
func TestMatTranspose(t *testing.T) {
	m := buildMat()
	mt := m.Transpose()

	require.Equal(t, 3, mt.Rows())
	require.Equal(t, 2, mt.Cols())
	require.Equal(t, 4, mt.NNZ())

	require.Equal(t, []int{2, 0}, mt.ColRows(0))
	require.True(t, mt.ColVals(0)[0].Equal(q(44, 10)))
	require.True(t, mt.ColVals(0)[1].Equal(q(11, 10)))

	require.Equal(t, []int{1, 0}, mt.ColRows(1))
	require.True(t, mt.ColVals(1)[0].Equal(q(33, 10)))
	require.True(t, mt.ColVals(1)[1].Equal(q(22, 10)))
}

// TestMatTransposeInvolutive checks that transposing twice restores the
// logical matrix, irrespective of physical entry order.
func TestMatTransposeInvolutive(t *testing.T) {
	m := buildMat()
	back := m.Transpose().Transpose()

	assertDenseEq(t, back.ToDense(), m.ToDense())
}

// TestMatAppendCol covers the column-append path and its sealing contract.
func TestMatAppendCol(t *testing.T) {
	m := sparse.NewMat(3)
	col := sparse.NewVec()
	col.Push(2, frac.One())
	col.Push(0, q(1, 2))
	m.AppendCol(col)

	require.Equal(t, 1, m.Cols())
	require.Equal(t, []int{2, 0}, m.ColRows(0))

	// Appending while a column is mid-assembly must panic.
	m.Push(1, frac.One()) // unsealed entry
	require.Panics(t, func() { m.AppendCol(col) })
}

// TestMatClearAndResize verifies the wholesale reset.
func TestMatClearAndResize(t *testing.T) {
	m := buildMat()
	m.ClearAndResize(4)

	require.Equal(t, 4, m.Rows())
	require.Equal(t, 0, m.Cols())
	require.Equal(t, 0, m.NNZ())
}

// TestTriangleTranspose checks that the diagonal is carried over unchanged in
// both the unit and explicit variants.
func TestTriangleTranspose(t *testing.T) {
	// Strictly lower 3×3: entry (2,0) = 5, (1,0) = 7.
	nd := sparse.NewMat(3)
	nd.Push(2, q(5, 1))
	nd.Push(1, q(7, 1))
	nd.SealColumn()
	nd.SealColumn()
	nd.SealColumn()

	unit := sparse.NewUnitTriangle(nd)
	require.Equal(t, sparse.UnitDiag, unit.DiagKind())
	require.True(t, unit.DiagAt(1).IsOne())

	ut := unit.Transpose()
	require.Equal(t, sparse.UnitDiag, ut.DiagKind())
	require.True(t, ut.ToDense()[0][2].Equal(q(5, 1)))

	expl := sparse.NewTriangle(nd, []frac.Frac{q(1, 1), q(2, 1), q(3, 1)})
	et := expl.Transpose()
	require.Equal(t, sparse.ExplicitDiag, et.DiagKind())
	for i := int64(0); i < 3; i++ {
		require.True(t, et.DiagAt(int(i)).Equal(q(i+1, 1)), "diagonal %d unchanged", i)
	}
}

// TestPerm validates mutual inversion of the two mappings.
func TestPerm(t *testing.T) {
	p := sparse.FromNew2Orig([]int{2, 0, 1})
	require.Equal(t, 3, p.Len())
	for i := 0; i < p.Len(); i++ {
		require.Equal(t, i, p.New2Orig[p.Orig2New[i]])
		require.Equal(t, i, p.Orig2New[p.New2Orig[i]])
	}

	id := sparse.Identity(4)
	require.Equal(t, []int{0, 1, 2, 3}, id.Orig2New)
}
