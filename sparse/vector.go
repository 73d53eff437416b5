package sparse

import (
	"sort"

	"github.com/katalvlaran/lvlopt/frac"
)

// Vec is a builder-form sparse vector: parallel index/value lists, append
// only, indices not necessarily sorted. A Vec is owned exclusively by the
// assembler filling it (typically while building one matrix column).
type Vec struct {
	indices []int
	values  []frac.Frac
}

// NewVec returns an empty builder vector.
func NewVec() *Vec {
	return &Vec{}
}

// Len returns the number of stored (index, value) pairs.
func (v *Vec) Len() int { return len(v.indices) }

// Clear removes all stored pairs, retaining capacity.
func (v *Vec) Clear() {
	v.indices = v.indices[:0]
	v.values = v.values[:0]
}

// Push appends the pair (i, val). No dedup or sorting is performed.
func (v *Vec) Push(i int, val frac.Frac) {
	v.indices = append(v.indices, i)
	v.values = append(v.values, val)
}

// Iter calls fn for every stored pair in insertion order.
func (v *Vec) Iter(fn func(i int, val frac.Frac)) {
	for k, idx := range v.indices {
		fn(idx, v.values[k])
	}
}

// SqNorm returns the sum of squares of the stored values.
func (v *Vec) SqNorm() frac.Frac {
	sum := frac.Zero()
	for _, val := range v.values {
		sum = sum.Add(val.Mul(val))
	}

	return sum
}

// Truncate drops every stored pair whose index is ≥ bound and returns v.
// When the indices are sorted ascending the cut point is found by binary
// search and the drop is a single re-slice; otherwise the pairs are filtered
// in place. Either way the operation is fully bounds-checked.
func (v *Vec) Truncate(bound int) *Vec {
	if sort.IntsAreSorted(v.indices) {
		cut := sort.SearchInts(v.indices, bound)
		v.indices = v.indices[:cut]
		v.values = v.values[:cut]

		return v
	}

	keep := 0
	for k, idx := range v.indices {
		if idx < bound {
			v.indices[keep] = idx
			v.values[keep] = v.values[k]
			keep++
		}
	}
	v.indices = v.indices[:keep]
	v.values = v.values[:keep]

	return v
}

// ToDense renders the vector as a dense slice of length n (test/debug use).
func (v *Vec) ToDense(n int) []frac.Frac {
	dense := make([]frac.Frac, n)
	for k, idx := range v.indices {
		dense[idx] = v.values[k]
	}

	return dense
}

// ScatteredVec is a dense-length sparse vector supporting O(1) random
// read/write and O(touched) clear. It is backed by a values array, a per-index
// presence flag, and the list of currently registered indices.
//
// Invariant: nonzero contains exactly the indices whose isNonzero flag is set.
type ScatteredVec struct {
	values    []frac.Frac
	isNonzero []bool
	nonzero   []int
}

// NewScattered returns an all-zero scattered vector of length n.
func NewScattered(n int) *ScatteredVec {
	return &ScatteredVec{
		values:    make([]frac.Frac, n),
		isNonzero: make([]bool, n),
	}
}

// Len returns the dense length of the vector.
func (s *ScatteredVec) Len() int { return len(s.values) }

// At returns the value at index i (exact zero if untouched).
func (s *ScatteredVec) At(i int) frac.Frac { return s.values[i] }

// touch registers index i into the nonzero list exactly once.
func (s *ScatteredVec) touch(i int) {
	if !s.isNonzero[i] {
		s.isNonzero[i] = true
		s.nonzero = append(s.nonzero, i)
	}
}

// Set writes val at index i, registering i on first write. Repeated writes to
// the same index do not duplicate the registration.
func (s *ScatteredVec) Set(i int, val frac.Frac) {
	s.touch(i)
	s.values[i] = val
}

// Add accumulates delta into index i, registering i on first touch.
func (s *ScatteredVec) Add(i int, delta frac.Frac) {
	s.touch(i)
	s.values[i] = s.values[i].Add(delta)
}

// Sub subtracts delta from index i, registering i on first touch.
func (s *ScatteredVec) Sub(i int, delta frac.Frac) {
	s.touch(i)
	s.values[i] = s.values[i].Sub(delta)
}

// Indices returns the registered indices in registration order.
// The slice is owned by the vector; callers must not modify it.
func (s *ScatteredVec) Indices() []int { return s.nonzero }

// Iter calls fn for every registered index in registration order.
func (s *ScatteredVec) Iter(fn func(i int, val frac.Frac)) {
	for _, i := range s.nonzero {
		fn(i, s.values[i])
	}
}

// SqNorm returns the sum of squares over the registered entries only.
func (s *ScatteredVec) SqNorm() frac.Frac {
	sum := frac.Zero()
	for _, i := range s.nonzero {
		sum = sum.Add(s.values[i].Mul(s.values[i]))
	}

	return sum
}

// Clear resets only the touched positions to zero and un-marks them.
// Cost is O(|touched|), never a scan of the full length.
func (s *ScatteredVec) Clear() {
	for _, i := range s.nonzero {
		s.values[i] = frac.Zero()
		s.isNonzero[i] = false
	}
	s.nonzero = s.nonzero[:0]
}

// ClearAndResize clears the vector and grows (or shrinks) it to length n.
func (s *ScatteredVec) ClearAndResize(n int) {
	s.Clear()
	if n <= cap(s.values) {
		s.values = s.values[:n]
		s.isNonzero = s.isNonzero[:n]

		return
	}
	s.values = make([]frac.Frac, n)
	s.isNonzero = make([]bool, n)
}

// Assign replaces the contents wholesale from parallel (index, value) lists
// after clearing. Indices must be in range and duplicate-free.
func (s *ScatteredVec) Assign(indices []int, values []frac.Frac) {
	s.Clear()
	for k, i := range indices {
		s.isNonzero[i] = true
		s.nonzero = append(s.nonzero, i)
		s.values[i] = values[k]
	}
}

// AssignVec replaces the contents wholesale from a builder vector.
func (s *ScatteredVec) AssignVec(src *Vec) {
	s.Assign(src.indices, src.values)
}

// ToVec copies the registered entries into dst in registration order —
// not sorted by index.
func (s *ScatteredVec) ToVec(dst *Vec) {
	dst.Clear()
	for _, i := range s.nonzero {
		dst.Push(i, s.values[i])
	}
}

// ToDense renders the vector as a dense slice (test/debug use).
func (s *ScatteredVec) ToDense() []frac.Frac {
	dense := make([]frac.Frac, len(s.values))
	for _, i := range s.nonzero {
		dense[i] = s.values[i]
	}

	return dense
}
