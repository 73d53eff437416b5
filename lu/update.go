package lu

import (
	"github.com/katalvlaran/lvlopt/frac"
)

// Update records a single-column basis exchange at basis position r without
// refactorizing: w must be the Ftran of the entering column against the
// CURRENT factorization (w = B⁻¹·a, dense, indexed by basis position).
//
// The exchange is valid only when w[r] is nonzero; an exact zero means the
// entering column is linearly dependent on the remaining basis columns and
// the update reports ErrSingularMatrix — the caller refactorizes fully and
// retries the exchange once before surfacing the error as fatal.
//
// Each accepted update appends one product-form eta; solves grow by
// O(nnz(w)) per eta until the caller refactorizes.
func (f *Factors) Update(r int, w []frac.Frac) error {
	wr := w[r]
	if wr.IsZero() {
		return ErrSingularMatrix
	}

	e := eta{r: r, wr: wr}
	for i, wi := range w {
		if i != r && !wi.IsZero() {
			e.indices = append(e.indices, i)
			e.values = append(e.values, wi)
		}
	}
	f.etas = append(f.etas, e)

	return nil
}

// applyFtran applies E⁻¹ to x in place:
// x_r ← x_r / w_r, then x_i ← x_i − w_i·x_r for the stored off-pivot entries.
func (e *eta) applyFtran(x []frac.Frac) {
	if x[e.r].IsZero() {
		return
	}
	xr := x[e.r].Div(e.wr)
	x[e.r] = xr
	for k, i := range e.indices {
		x[i] = x[i].Sub(e.values[k].Mul(xr))
	}
}

// applyBtran applies (Eᵀ)⁻¹ to c in place; only the pivot component moves:
// c_r ← (c_r − Σ_{i≠r} c_i·w_i) / w_r.
func (e *eta) applyBtran(c []frac.Frac) {
	acc := c[e.r]
	for k, i := range e.indices {
		acc = acc.Sub(c[i].Mul(e.values[k]))
	}
	c[e.r] = acc.Div(e.wr)
}
