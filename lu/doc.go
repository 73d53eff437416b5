// Package lu maintains an invertible factorization of a simplex basis matrix:
// a full sparse LU decomposition with a fill-reducing pivot order, forward and
// backward substitution, and cheap incremental updates after single-column
// basis changes.
//
// Factorize computes P·B·Q = L·U for a square basis matrix B, where
//
//	L – unit lower triangular (implicit all-ones diagonal, no storage)
//	U – upper triangular with an explicitly stored diagonal of pivots
//	P,Q – row and column permutations chosen during elimination
//
// Pivots are selected by the Markowitz criterion: among nonzero candidates of
// the active submatrix, minimize (rowCount−1)·(colCount−1), breaking ties by
// lowest row then lowest column index for determinism. The ordering is
// advisory for sparsity, not for correctness — any nonzero pivot factors
// correctly, but a poor order grows factor density and solve cost. A step with
// no nonzero candidate means the basis is not invertible: ErrSingularMatrix.
//
// Solves run in time proportional to factor nonzero count:
//
//	Ftran – solve B·x = b   (forward through L, backward through U)
//	Btran – solve Bᵀ·x = c  (forward through Uᵀ, backward through Lᵀ)
//
// After a basis exchange (one column leaves, one enters), Update appends a
// product-form eta vector derived from the already-computed Ftran of the
// entering column, amortizing the cost across iterations instead of
// refactorizing. Updates accumulate density, so callers refactorize
// periodically (the simplex solver does this on an iteration-count period).
// A zero eta pivot reports ErrSingularMatrix; the caller refactorizes and
// retries the exchange once before treating it as fatal.
//
// All arithmetic is exact (frac.Frac): a zero pivot is a structural fact, not
// a tolerance call, and solve residuals are exactly zero.
//
// Complexity:
//
//	– Factorize: O(n · nnz) candidate scans + elimination fill work
//	– Ftran/Btran: O(nnz(L) + nnz(U) + Σ nnz(eta) + n)
//	– Update: O(nnz(eta))
//
// Example usage:
//
//	f, err := lu.Factorize(basis)        // basis: square sparse.Mat
//	if err != nil { ... }                // lu.ErrSingularMatrix
//	x := f.Ftran(b)                      // exact solution of B·x = b
//	y := f.Btran(c)                      // exact solution of Bᵀ·y = c
package lu
