// Package sparse_test validates the sparse containers: scatter/clear
// semantics, registration-order iteration, squared norms and builder-vector
// truncation.
package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/frac"
	"github.com/katalvlaran/lvlopt/sparse"
)

func q(num, den int64) frac.Frac { return frac.NewRatio(num, den) }

// TestScatteredSetClear checks that after Assign then Clear the index list is
// empty and every previously-set position reads as exact zero.
func TestScatteredSetClear(t *testing.T) {
	s := sparse.NewScattered(6)
	s.Assign([]int{4, 1, 3}, []frac.Frac{q(1, 2), q(-2, 1), q(7, 3)})

	require.Equal(t, []int{4, 1, 3}, s.Indices(), "registration order must be preserved")
	require.True(t, s.At(1).Equal(q(-2, 1)))

	s.Clear()
	require.Empty(t, s.Indices())
	for i := 0; i < s.Len(); i++ {
		require.True(t, s.At(i).IsZero(), "position %d must read as zero after Clear", i)
	}
}

// TestScatteredIdempotentRegistration verifies that repeated writes to the
// same index do not duplicate its registration.
func TestScatteredIdempotentRegistration(t *testing.T) {
	s := sparse.NewScattered(3)
	s.Set(2, frac.One())
	s.Set(2, q(5, 4))
	s.Add(2, q(3, 4))

	require.Equal(t, []int{2}, s.Indices())
	require.True(t, s.At(2).Equal(q(2, 1)))
}

// TestScatteredSqNorm checks the sum of squares over nonzero entries only.
func TestScatteredSqNorm(t *testing.T) {
	s := sparse.NewScattered(5)
	s.Assign([]int{0, 2}, []frac.Frac{q(1, 2), q(3, 1)})

	// (1/2)² + 3² = 1/4 + 9 = 37/4
	require.True(t, s.SqNorm().Equal(q(37, 4)))

	s.Clear()
	require.True(t, s.SqNorm().IsZero())
}

// TestScatteredToVec checks conversion to builder form in registration order.
func TestScatteredToVec(t *testing.T) {
	s := sparse.NewScattered(4)
	s.Set(3, frac.One())
	s.Set(0, q(1, 2))

	v := sparse.NewVec()
	s.ToVec(v)

	var idx []int
	var vals []frac.Frac
	v.Iter(func(i int, val frac.Frac) {
		idx = append(idx, i)
		vals = append(vals, val)
	})
	require.Equal(t, []int{3, 0}, idx, "natural (registration) order, not index order")
	require.True(t, vals[0].IsOne())
	require.True(t, vals[1].Equal(q(1, 2)))
}

// TestScatteredClearAndResize checks growth with full reset.
func TestScatteredClearAndResize(t *testing.T) {
	s := sparse.NewScattered(2)
	s.Set(1, frac.One())
	s.ClearAndResize(5)

	require.Equal(t, 5, s.Len())
	require.Empty(t, s.Indices())
	require.True(t, s.At(1).IsZero())
}

// TestVecSqNormAndTruncate covers the builder vector's norm and the
// bounds-checked truncation (sorted fast path and unsorted filter).
func TestVecSqNormAndTruncate(t *testing.T) {
	v := sparse.NewVec()
	v.Push(0, q(1, 2))
	v.Push(2, q(3, 1))
	require.True(t, v.SqNorm().Equal(q(37, 4)))

	// Sorted path: indices 0,2,5 with bound 5 drops only the tail entry.
	v.Push(5, q(9, 1))
	require.Equal(t, 2, v.Truncate(5).Len())

	// Unsorted path.
	u := sparse.NewVec()
	u.Push(4, frac.One())
	u.Push(1, frac.One())
	u.Push(6, frac.One())
	require.Equal(t, 2, u.Truncate(5).Len())
	dense := u.ToDense(5)
	require.True(t, dense[4].IsOne())
	require.True(t, dense[1].IsOne())
}
