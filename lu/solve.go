package lu

import (
	"github.com/katalvlaran/lvlopt/frac"
	"github.com/katalvlaran/lvlopt/sparse"
)

// solveLowerForm solves T·x = y in place on the dense vector y, where T is a
// triangle in LOWER form: every off-diagonal entry of column k sits below the
// diagonal. Columns are processed ascending; a zero right-hand entry
// propagates nothing, so cost is proportional to the factor entries actually
// touched.
func solveLowerForm(t *sparse.TriangleMat, y []frac.Frac) {
	n := t.Cols()
	explicit := t.DiagKind() == sparse.ExplicitDiag
	for k := 0; k < n; k++ {
		if y[k].IsZero() {
			continue
		}
		if explicit {
			y[k] = y[k].Div(t.DiagAt(k))
		}
		xk := y[k]
		t.Nondiag.ColIter(k, func(r int, v frac.Frac) {
			y[r] = y[r].Sub(v.Mul(xk))
		})
	}
}

// solveUpperForm solves T·x = y in place on the dense vector y, where T is a
// triangle in UPPER form: every off-diagonal entry of column k sits above the
// diagonal. Columns are processed descending.
func solveUpperForm(t *sparse.TriangleMat, y []frac.Frac) {
	explicit := t.DiagKind() == sparse.ExplicitDiag
	for k := t.Cols() - 1; k >= 0; k-- {
		if y[k].IsZero() {
			continue
		}
		if explicit {
			y[k] = y[k].Div(t.DiagAt(k))
		}
		xk := y[k]
		t.Nondiag.ColIter(k, func(r int, v frac.Frac) {
			y[r] = y[r].Sub(v.Mul(xk))
		})
	}
}

// Ftran solves B·x = b against the current factorization, eta file included.
// b is indexed by basis position and is not modified; the result is a fresh
// dense vector in the same coordinates.
//
// Steps:
//  1. apply the row permutation:  y = P·b;
//  2. forward-substitute L (implicit unit diagonal);
//  3. back-substitute U (explicit pivot diagonal);
//  4. undo the column permutation: x = Q·y;
//  5. apply the eta file in creation order.
func (f *Factors) Ftran(b []frac.Frac) []frac.Frac {
	y := make([]frac.Frac, f.n)
	for k := 0; k < f.n; k++ {
		y[k] = b[f.rowPerm.New2Orig[k]]
	}

	solveLowerForm(f.lower, y)
	solveUpperForm(f.upper, y)

	x := make([]frac.Frac, f.n)
	for k := 0; k < f.n; k++ {
		x[f.colPerm.New2Orig[k]] = y[k]
	}

	for i := range f.etas {
		f.etas[i].applyFtran(x)
	}

	return x
}

// Btran solves Bᵀ·x = c against the current factorization, eta file included.
// c is indexed by basis position and is not modified; the result is a fresh
// dense vector in the same coordinates.
//
// Steps:
//  1. apply the eta file transposed, newest first;
//  2. apply the column permutation: z = Qᵀ·c;
//  3. forward-substitute Uᵀ (lower form, explicit diagonal);
//  4. back-substitute Lᵀ (upper form, implicit unit diagonal);
//  5. undo the row permutation: x = Pᵀ·z.
func (f *Factors) Btran(c []frac.Frac) []frac.Frac {
	cc := append([]frac.Frac(nil), c...)
	for i := len(f.etas) - 1; i >= 0; i-- {
		f.etas[i].applyBtran(cc)
	}

	z := make([]frac.Frac, f.n)
	for k := 0; k < f.n; k++ {
		z[k] = cc[f.colPerm.New2Orig[k]]
	}

	solveLowerForm(f.upperT, z)
	solveUpperForm(f.lowerT, z)

	x := make([]frac.Frac, f.n)
	for k := 0; k < f.n; k++ {
		x[f.rowPerm.New2Orig[k]] = z[k]
	}

	return x
}
