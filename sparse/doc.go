// Package sparse provides the sparse vector and matrix containers shared by
// the lvlopt solvers: a builder-form vector, a scatter/gather working vector,
// a column-compressed matrix with a seal-per-column assembly contract, a
// triangular matrix with an implicit-or-explicit diagonal, and a bidirectional
// index permutation.
//
// The containers hold frac.Frac entries and are tuned for the access patterns
// of the revised simplex method:
//
//   - Vec            – append-only (index, value) pairs; owned by an assembler
//     while it builds one matrix column.
//   - ScatteredVec   – dense-length sparse vector with O(1) random read/write
//     and O(touched) clear; rebuilt every solver iteration.
//   - Mat            – column-compressed storage (CSC); columns are pushed
//     entry by entry and finalized with SealColumn. Within a
//     sealed column entries need not be sorted by row.
//   - TriangleMat    – strictly-triangular Mat plus a tagged diagonal:
//     UnitDiag (implicit all-ones, no storage) or
//     ExplicitDiag (stored values).
//   - Perm           – mutually inverse orig↔new index arrays.
//
// Invariants:
//
//   - ScatteredVec: the nonzero list contains exactly the indices whose
//     present flag is set; Clear revisits only those, never the full length.
//   - Mat: column pointers are non-decreasing and the final pointer equals
//     the total entry count. AppendCol on an unsealed column panics —
//     a programmer error in assembly sequencing, not a data condition.
//   - Transpose runs in O(nnz + rows) via counting sort and is involutive on
//     the logical matrix (physical entry order within a row may differ).
//
// Complexity:
//
//	– Vec.Push, ScatteredVec.Set/Add/At: O(1)
//	– ScatteredVec.Clear:               O(|touched|)
//	– Mat.Transpose:                    O(nnz + rows)
//	– ToDense renderers:                O(rows·cols) — test/debug only.
//
// Example usage:
//
//	m := sparse.NewMat(2)
//	m.Push(0, frac.New(1))
//	m.Push(1, frac.New(3))
//	m.SealColumn()              // column 0 = (1, 3)ᵀ
//	m.Push(1, frac.New(2))
//	m.SealColumn()              // column 1 = (0, 2)ᵀ
//	mt := m.Transpose()
package sparse
