// Package lu: sentinel errors and the exported factorization handle.
// Elimination lives in factorize.go, pivot choice in ordering.go, substitution
// in solve.go and eta-file updates in update.go per the global conventions.

package lu

import (
	"errors"

	"github.com/katalvlaran/lvlopt/frac"
	"github.com/katalvlaran/lvlopt/sparse"
)

// Sentinel errors returned by the lu package.
var (
	// ErrSingularMatrix indicates that the basis cannot be factorized:
	// structurally or numerically non-invertible. Recoverable by the caller
	// choosing a different basis column (after a fresh refactorization), or
	// fatal if it recurs.
	ErrSingularMatrix = errors.New("lu: singular matrix")

	// ErrNotSquare indicates that Factorize was given a non-square matrix.
	ErrNotSquare = errors.New("lu: basis matrix must be square")
)

// Factors is the maintained factorization P·B·Q = L·U of a basis matrix,
// plus the eta file of incremental basis updates applied since the last full
// factorization.
type Factors struct {
	n int

	lower  *sparse.TriangleMat // L,  unit diagonal, strictly lower CSC
	lowerT *sparse.TriangleMat // Lᵀ, unit diagonal, strictly upper CSC
	upper  *sparse.TriangleMat // U,  explicit diagonal, strictly upper CSC
	upperT *sparse.TriangleMat // Uᵀ, explicit diagonal, strictly lower CSC

	rowPerm *sparse.Perm // elimination position ↔ original row
	colPerm *sparse.Perm // elimination position ↔ original column

	etas []eta
}

// eta is one product-form update: after an exchange at basis position r with
// transformed entering column w = B⁻¹·a, solving against the new basis
// applies x_r = y_r / wr and x_i = y_i − w_i·x_r for the stored off-pivot
// entries.
type eta struct {
	r       int
	wr      frac.Frac
	indices []int       // off-pivot nonzero positions of w
	values  []frac.Frac // matching w values
}

// Size returns the dimension of the factorized basis.
func (f *Factors) Size() int { return f.n }

// Updates returns the number of eta updates applied since full factorization.
// Callers use this to trigger periodic refactorization.
func (f *Factors) Updates() int { return len(f.etas) }

// RowPerm returns the row permutation chosen during elimination.
func (f *Factors) RowPerm() *sparse.Perm { return f.rowPerm }

// ColPerm returns the column permutation chosen during elimination.
func (f *Factors) ColPerm() *sparse.Perm { return f.colPerm }
