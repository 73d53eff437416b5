// Package simplex_test exercises the exact-arithmetic solver end to end: each
// scenario pins the terminal status and, where optimal, the exact solution
// vector and objective value.
package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/frac"
	"github.com/katalvlaran/lvlopt/simplex"
	"github.com/katalvlaran/lvlopt/sparse"
)

func q(num, den int64) frac.Frac { return frac.NewRatio(num, den) }

// vec builds a sparse row from index/value pairs.
func vec(t *testing.T, pairs ...any) *sparse.Vec {
	t.Helper()
	require.Zero(t, len(pairs)%2)
	v := sparse.NewVec()
	for k := 0; k < len(pairs); k += 2 {
		v.Push(pairs[k].(int), pairs[k+1].(frac.Frac))
	}

	return v
}

// requireOptimal asserts an Optimal outcome with the exact objective and point.
func requireOptimal(t *testing.T, sol *simplex.Solution, obj frac.Frac, x []frac.Frac) {
	t.Helper()
	require.Equal(t, simplex.StatusOptimal, sol.Status)
	require.True(t, sol.Objective.Equal(obj), "objective: got %s want %s", sol.Objective, obj)
	require.Equal(t, len(x), len(sol.X))
	for i := range x {
		require.True(t, sol.X[i].Equal(x[i]), "x[%d]: got %s want %s", i, sol.X[i], x[i])
	}
}

// TestMaximizeTwoVariables solves max x+y s.t. x+2y ≤ 4, 3x+y ≤ 6 and expects
// the exact vertex (8/5, 6/5) with objective 14/5.
func TestMaximizeTwoVariables(t *testing.T) {
	p := simplex.NewProblem(simplex.Maximize)
	x, err := p.AddVariable(frac.One())
	require.NoError(t, err)
	y, err := p.AddVariable(frac.One())
	require.NoError(t, err)

	require.NoError(t, p.AddConstraint(vec(t, x, frac.New(1), y, frac.New(2)), simplex.LE, frac.New(4)))
	require.NoError(t, p.AddConstraint(vec(t, x, frac.New(3), y, frac.New(1)), simplex.LE, frac.New(6)))

	sol, err := p.Solve()
	require.NoError(t, err)
	requireOptimal(t, sol, q(14, 5), []frac.Frac{q(8, 5), q(6, 5)})
	require.Positive(t, sol.Iterations)
}

// TestMinimizeMirrorsMaximize checks that negating the objective flips the
// optimum sign but lands on the same vertex.
func TestMinimizeMirrorsMaximize(t *testing.T) {
	p := simplex.NewProblem(simplex.Minimize)
	x, err := p.AddVariable(frac.New(-1))
	require.NoError(t, err)
	y, err := p.AddVariable(frac.New(-1))
	require.NoError(t, err)

	require.NoError(t, p.AddConstraint(vec(t, x, frac.New(1), y, frac.New(2)), simplex.LE, frac.New(4)))
	require.NoError(t, p.AddConstraint(vec(t, x, frac.New(3), y, frac.New(1)), simplex.LE, frac.New(6)))

	sol, err := p.Solve()
	require.NoError(t, err)
	requireOptimal(t, sol, q(-14, 5), []frac.Frac{q(8, 5), q(6, 5)})
}

// TestUnboundedMaximize has no constraint limiting growth, so the objective
// diverges to +∞.
func TestUnboundedMaximize(t *testing.T) {
	p := simplex.NewProblem(simplex.Maximize)
	_, err := p.AddVariable(frac.One())
	require.NoError(t, err)

	sol, err := p.Solve()
	require.NoError(t, err)
	require.Equal(t, simplex.StatusUnbounded, sol.Status)
	require.True(t, sol.Objective.Equal(frac.Inf()))
	require.Nil(t, sol.X)
}

// TestUnboundedMinimizeReportsNegInf mirrors the unbounded case for a
// minimization: x ≥ 5 with objective −x runs to −∞.
func TestUnboundedMinimizeReportsNegInf(t *testing.T) {
	p := simplex.NewProblem(simplex.Minimize)
	x, err := p.AddVariable(frac.New(-1))
	require.NoError(t, err)
	require.NoError(t, p.AddConstraint(vec(t, x, frac.New(1)), simplex.GE, frac.New(5)))

	sol, err := p.Solve()
	require.NoError(t, err)
	require.Equal(t, simplex.StatusUnbounded, sol.Status)
	require.True(t, sol.Objective.Equal(frac.NegInf()))
}

// TestInfeasible pins the contradictory system x ≥ 5 ∧ x ≤ 2.
func TestInfeasible(t *testing.T) {
	p := simplex.NewProblem(simplex.Maximize)
	x, err := p.AddVariable(frac.One())
	require.NoError(t, err)
	require.NoError(t, p.AddConstraint(vec(t, x, frac.New(1)), simplex.GE, frac.New(5)))
	require.NoError(t, p.AddConstraint(vec(t, x, frac.New(1)), simplex.LE, frac.New(2)))

	sol, err := p.Solve()
	require.NoError(t, err)
	require.Equal(t, simplex.StatusInfeasible, sol.Status)
	require.True(t, sol.Objective.IsNaN())
	require.Nil(t, sol.X)
}

// TestEqualityConstraints drives artificials out in phase 1 and solves the
// 2×2 system x+y = 3, x−y = 1 exactly.
func TestEqualityConstraints(t *testing.T) {
	p := simplex.NewProblem(simplex.Minimize)
	x, err := p.AddVariable(frac.One())
	require.NoError(t, err)
	y, err := p.AddVariable(frac.One())
	require.NoError(t, err)

	require.NoError(t, p.AddConstraint(vec(t, x, frac.New(1), y, frac.New(1)), simplex.EQ, frac.New(3)))
	require.NoError(t, p.AddConstraint(vec(t, x, frac.New(1), y, frac.New(-1)), simplex.EQ, frac.New(1)))

	sol, err := p.Solve()
	require.NoError(t, err)
	requireOptimal(t, sol, frac.New(3), []frac.Frac{frac.New(2), frac.New(1)})
}

// TestTwoPhaseWithBound mixes ≥ and ≤ rows: min 2x+3y s.t. x+y ≥ 4, x ≤ 3
// lands on x=3, y=1 with objective 9.
func TestTwoPhaseWithBound(t *testing.T) {
	p := simplex.NewProblem(simplex.Minimize)
	x, err := p.AddVariable(frac.New(2))
	require.NoError(t, err)
	y, err := p.AddVariable(frac.New(3))
	require.NoError(t, err)

	require.NoError(t, p.AddConstraint(vec(t, x, frac.New(1), y, frac.New(1)), simplex.GE, frac.New(4)))
	require.NoError(t, p.AddConstraint(vec(t, x, frac.New(1)), simplex.LE, frac.New(3)))

	sol, err := p.Solve()
	require.NoError(t, err)
	requireOptimal(t, sol, frac.New(9), []frac.Frac{frac.New(3), frac.New(1)})
}

// TestNegativeRHSNormalization feeds −x ≤ −2, which the solver must read as
// x ≥ 2 after sign normalization.
func TestNegativeRHSNormalization(t *testing.T) {
	p := simplex.NewProblem(simplex.Minimize)
	x, err := p.AddVariable(frac.One())
	require.NoError(t, err)
	require.NoError(t, p.AddConstraint(vec(t, x, frac.New(-1)), simplex.LE, frac.New(-2)))

	sol, err := p.Solve()
	require.NoError(t, err)
	requireOptimal(t, sol, frac.New(2), []frac.Frac{frac.New(2)})
}

// TestDuplicateIndicesSummed pushes the same variable twice into one row;
// the coefficients must collapse to their sum (2x ≤ 4 ⇒ x ≤ 2).
func TestDuplicateIndicesSummed(t *testing.T) {
	p := simplex.NewProblem(simplex.Maximize)
	x, err := p.AddVariable(frac.One())
	require.NoError(t, err)
	require.NoError(t, p.AddConstraint(vec(t, x, frac.New(1), x, frac.New(1)), simplex.LE, frac.New(4)))

	sol, err := p.Solve()
	require.NoError(t, err)
	requireOptimal(t, sol, frac.New(2), []frac.Frac{frac.New(2)})
}

// TestNoConstraintsMinimize is the m=0 edge with a positive cost: the origin
// is optimal.
func TestNoConstraintsMinimize(t *testing.T) {
	p := simplex.NewProblem(simplex.Minimize)
	_, err := p.AddVariable(frac.One())
	require.NoError(t, err)

	sol, err := p.Solve()
	require.NoError(t, err)
	requireOptimal(t, sol, frac.Zero(), []frac.Frac{frac.Zero()})
	require.Zero(t, sol.Iterations)
}

// TestIterationLimit caps the pivot budget below what the problem needs and
// expects the dedicated status rather than a wrong answer.
func TestIterationLimit(t *testing.T) {
	p := simplex.NewProblem(simplex.Maximize)
	x, err := p.AddVariable(frac.One())
	require.NoError(t, err)
	y, err := p.AddVariable(frac.One())
	require.NoError(t, err)

	require.NoError(t, p.AddConstraint(vec(t, x, frac.New(1), y, frac.New(2)), simplex.LE, frac.New(4)))
	require.NoError(t, p.AddConstraint(vec(t, x, frac.New(3), y, frac.New(1)), simplex.LE, frac.New(6)))

	sol, err := p.Solve(simplex.WithIterationLimit(1))
	require.NoError(t, err)
	require.Equal(t, simplex.StatusIterationLimit, sol.Status)
	require.True(t, sol.Objective.IsNaN())
	require.Equal(t, 1, sol.Iterations)
}

// TestBlandRuleReachesSameOptimum forces Bland's rule from the first pivot
// and a refactorization every pivot; the exact optimum must not change.
func TestBlandRuleReachesSameOptimum(t *testing.T) {
	p := simplex.NewProblem(simplex.Maximize)
	x, err := p.AddVariable(frac.One())
	require.NoError(t, err)
	y, err := p.AddVariable(frac.One())
	require.NoError(t, err)

	require.NoError(t, p.AddConstraint(vec(t, x, frac.New(1), y, frac.New(2)), simplex.LE, frac.New(4)))
	require.NoError(t, p.AddConstraint(vec(t, x, frac.New(3), y, frac.New(1)), simplex.LE, frac.New(6)))

	sol, err := p.Solve(simplex.WithBlandThreshold(0), simplex.WithRefactorPeriod(1))
	require.NoError(t, err)
	requireOptimal(t, sol, q(14, 5), []frac.Frac{q(8, 5), q(6, 5)})
}

// TestDegenerateVertexTerminates stacks redundant constraints through one
// vertex; the solver must still terminate at the exact optimum.
func TestDegenerateVertexTerminates(t *testing.T) {
	p := simplex.NewProblem(simplex.Maximize)
	x, err := p.AddVariable(frac.New(2))
	require.NoError(t, err)
	y, err := p.AddVariable(frac.One())
	require.NoError(t, err)

	// Three constraints all binding at (1, 0).
	require.NoError(t, p.AddConstraint(vec(t, x, frac.New(1)), simplex.LE, frac.New(1)))
	require.NoError(t, p.AddConstraint(vec(t, x, frac.New(1), y, frac.New(1)), simplex.LE, frac.New(1)))
	require.NoError(t, p.AddConstraint(vec(t, x, frac.New(2), y, frac.New(1)), simplex.LE, frac.New(2)))

	sol, err := p.Solve(simplex.WithBlandThreshold(1))
	require.NoError(t, err)
	require.Equal(t, simplex.StatusOptimal, sol.Status)
	require.True(t, sol.Objective.Equal(frac.New(2)), "objective: got %s", sol.Objective)
}

// TestFractionalData keeps every coefficient a non-integer rational to verify
// nothing rounds: max (1/3)x + (1/4)y s.t. (1/2)x + (1/3)y ≤ 5/6, x ≤ 1.
func TestFractionalData(t *testing.T) {
	p := simplex.NewProblem(simplex.Maximize)
	x, err := p.AddVariable(q(1, 3))
	require.NoError(t, err)
	y, err := p.AddVariable(q(1, 4))
	require.NoError(t, err)

	require.NoError(t, p.AddConstraint(vec(t, x, q(1, 2), y, q(1, 3)), simplex.LE, q(5, 6)))
	require.NoError(t, p.AddConstraint(vec(t, x, frac.New(1)), simplex.LE, frac.New(1)))

	// Vertices: (1,1) scores 7/12, (0,5/2) scores 5/8; the latter wins.
	sol, err := p.Solve()
	require.NoError(t, err)
	requireOptimal(t, sol, q(5, 8), []frac.Frac{frac.Zero(), q(5, 2)})
}

// TestValidationErrors covers the builder sentinels.
func TestValidationErrors(t *testing.T) {
	p := simplex.NewProblem(simplex.Maximize)

	_, err := p.AddVariable(frac.Inf())
	require.ErrorIs(t, err, simplex.ErrNonFiniteInput)
	_, err = p.AddVariable(frac.NaN())
	require.ErrorIs(t, err, simplex.ErrNonFiniteInput)

	x, err := p.AddVariable(frac.One())
	require.NoError(t, err)

	require.ErrorIs(t,
		p.AddConstraint(vec(t, x+1, frac.New(1)), simplex.LE, frac.New(1)),
		simplex.ErrVarOutOfRange)
	require.ErrorIs(t,
		p.AddConstraint(vec(t, x, frac.NegInf()), simplex.LE, frac.New(1)),
		simplex.ErrNonFiniteInput)
	require.ErrorIs(t,
		p.AddConstraint(vec(t, x, frac.New(1)), simplex.LE, frac.NaN()),
		simplex.ErrNonFiniteInput)

	// A rejected row must not be recorded.
	require.Zero(t, p.NumConstraints())
}

// TestOptionPanics pins programmer-error panics in option constructors.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() {
		o := simplex.DefaultOptions()
		simplex.WithIterationLimit(0)(&o)
	})
	require.Panics(t, func() {
		o := simplex.DefaultOptions()
		simplex.WithRefactorPeriod(-1)(&o)
	})
}

// TestStatusString covers the status formatter.
func TestStatusString(t *testing.T) {
	require.Equal(t, "Optimal", simplex.StatusOptimal.String())
	require.Equal(t, "Unbounded", simplex.StatusUnbounded.String())
	require.Equal(t, "Infeasible", simplex.StatusInfeasible.String())
	require.Equal(t, "IterationLimitExceeded", simplex.StatusIterationLimit.String())
	require.Equal(t, "Unknown", simplex.Status(42).String())
}
