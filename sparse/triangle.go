package sparse

import (
	"github.com/katalvlaran/lvlopt/frac"
)

// DiagKind tags how a TriangleMat stores its diagonal.
type DiagKind uint8

const (
	// UnitDiag means the diagonal is implicitly all ones and nothing is
	// stored for it — the usual space optimization for the L factor of an
	// LU decomposition.
	UnitDiag DiagKind = iota

	// ExplicitDiag means the diagonal values are stored in a dense slice.
	ExplicitDiag
)

// TriangleMat is a strictly-triangular sparse matrix plus a tagged diagonal.
// The strictly-triangular part (everything off the diagonal) lives in Nondiag;
// the diagonal is either implicit all-ones (UnitDiag) or stored explicitly
// (ExplicitDiag). Produced by LU factorization, consumed by forward/backward
// substitution.
type TriangleMat struct {
	// Nondiag holds the strictly-triangular entries, column-compressed.
	Nondiag *Mat

	kind DiagKind
	diag []frac.Frac // non-nil iff kind == ExplicitDiag
}

// NewUnitTriangle wraps nondiag with an implicit all-ones diagonal.
func NewUnitTriangle(nondiag *Mat) *TriangleMat {
	return &TriangleMat{Nondiag: nondiag, kind: UnitDiag}
}

// NewTriangle wraps nondiag with the explicitly stored diagonal diag.
// len(diag) must equal nondiag.Rows().
func NewTriangle(nondiag *Mat, diag []frac.Frac) *TriangleMat {
	return &TriangleMat{Nondiag: nondiag, kind: ExplicitDiag, diag: diag}
}

// Rows returns the number of rows.
func (t *TriangleMat) Rows() int { return t.Nondiag.Rows() }

// Cols returns the number of columns.
func (t *TriangleMat) Cols() int { return t.Nondiag.Cols() }

// DiagKind reports whether the diagonal is implicit (UnitDiag) or stored.
func (t *TriangleMat) DiagKind() DiagKind { return t.kind }

// DiagAt returns the diagonal value at position i: the stored value for
// ExplicitDiag, exact one for UnitDiag.
func (t *TriangleMat) DiagAt(i int) frac.Frac {
	if t.kind == UnitDiag {
		return frac.One()
	}

	return t.diag[i]
}

// Transpose returns the transposed triangle: the strictly-triangular part is
// transposed and the diagonal is carried over unchanged (transposition of a
// triangular structure does not move diagonal values).
func (t *TriangleMat) Transpose() *TriangleMat {
	out := &TriangleMat{
		Nondiag: t.Nondiag.Transpose(),
		kind:    t.kind,
	}
	if t.kind == ExplicitDiag {
		out.diag = append([]frac.Frac(nil), t.diag...)
	}

	return out
}

// ToDense renders the full triangle, diagonal included (test/debug use).
func (t *TriangleMat) ToDense() [][]frac.Frac {
	dense := t.Nondiag.ToDense()
	n := t.Rows()
	if t.Cols() < n {
		n = t.Cols()
	}
	for i := 0; i < n; i++ {
		dense[i][i] = t.DiagAt(i)
	}

	return dense
}
