package simplex

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/frac"
	"github.com/katalvlaran/lvlopt/lu"
	"github.com/katalvlaran/lvlopt/sparse"
)

// runner is the per-solve working state: standard-form columns, internal
// minimization costs, the current basis and its factorization. A runner is
// owned exclusively by one Solve call and dies with it.
type runner struct {
	m       int // constraint rows
	nStruct int // structural (caller) variables
	nTotal  int // structural + slack/surplus + artificial columns

	cols         *sparse.Mat // all standard-form columns
	cost         []frac.Frac // phase-2 internal costs (minimization)
	b            []frac.Frac // normalized non-negative right-hand side
	isArtificial []bool

	basis   []int // basic column per row position
	inBasis []bool

	direction Direction
	objOrig   []frac.Frac

	f           *lu.Factors
	sinceFactor int // pivots since the last full factorization

	opts       Options
	iterations int
	bland      bool // Bland's rule active (anti-cycling fallback)
	stall      int  // consecutive degenerate pivots
}

// Solve runs the two-phase revised simplex method and returns the terminal
// outcome. Terminal statuses (Optimal, Unbounded, Infeasible,
// IterationLimitExceeded) are reported in the Solution, not as errors; an
// error means the solve itself failed (a basis that cannot be factorized
// even after a fresh refactorization).
func (p *Problem) Solve(opts ...Option) (*Solution, error) {
	// 1) Normalize options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Lower to standard form with an identity starting basis.
	run := p.build()
	run.opts = cfg

	return run.solve()
}

// solve drives phase 1 (artificial elimination) when needed, then phase 2.
func (r *runner) solve() (*Solution, error) {
	// 1) Phase 1: minimize the sum of artificial variables.
	hasArt := false
	for _, a := range r.isArtificial {
		if a {
			hasArt = true

			break
		}
	}
	if hasArt {
		cost1 := make([]frac.Frac, r.nTotal)
		for j, a := range r.isArtificial {
			if a {
				cost1[j] = frac.One()
			}
		}

		st, err := r.iterate(1, cost1, true)
		if err != nil {
			return nil, err
		}
		if st != StatusOptimal {
			return &Solution{Status: st, Objective: frac.NaN(), Iterations: r.iterations}, nil
		}

		// A positive artificial residue proves the constraints contradictory.
		xB := r.f.Ftran(r.b)
		residue := frac.Zero()
		for i, j := range r.basis {
			if r.isArtificial[j] {
				residue = residue.Add(xB[i])
			}
		}
		if !residue.IsZero() {
			return &Solution{Status: StatusInfeasible, Objective: frac.NaN(), Iterations: r.iterations}, nil
		}
	}

	// 2) Phase 2: optimize the real objective; artificials may linger in the
	//    basis at value zero but can never re-enter.
	st, err := r.iterate(2, r.cost, false)
	if err != nil {
		return nil, err
	}

	// 3) Map the terminal state to a Solution.
	switch st {
	case StatusOptimal:
		return r.extract(), nil
	case StatusUnbounded:
		obj := frac.Inf()
		if r.direction == Minimize {
			obj = frac.NegInf()
		}

		return &Solution{Status: StatusUnbounded, Objective: obj, Iterations: r.iterations}, nil
	default:
		return &Solution{Status: st, Objective: frac.NaN(), Iterations: r.iterations}, nil
	}
}

// iterate runs the pivot loop under the given cost vector until a terminal
// status. allowArt admits artificial columns as entering candidates (phase 1
// only).
func (r *runner) iterate(phase int, cost []frac.Frac, allowArt bool) (Status, error) {
	for {
		// 1) Iteration ceiling: convert a non-terminating pivot sequence
		//    into a reported status instead of an infinite loop.
		if r.iterations >= r.opts.IterationLimit {
			return StatusIterationLimit, nil
		}

		// 2) Factorize on first entry and periodically thereafter.
		if r.f == nil || r.sinceFactor >= r.opts.RefactorPeriod {
			if err := r.refactorize(); err != nil {
				return StatusOptimal, err
			}
		}

		// 3) Current basic values and duals.
		xB := r.f.Ftran(r.b)
		cB := make([]frac.Frac, r.m)
		for i, j := range r.basis {
			cB[i] = cost[j]
		}
		y := r.f.Btran(cB)

		// 4) Pricing: entering variable by most negative reduced cost, or by
		//    strict lowest index once Bland's rule is active.
		entering := -1
		var bestD frac.Frac
		for j := 0; j < r.nTotal; j++ {
			if r.inBasis[j] || (!allowArt && r.isArtificial[j]) {
				continue
			}
			d := cost[j].Sub(r.colDot(j, y))
			if !d.IsNegative() {
				continue
			}
			if r.bland {
				entering = j

				break
			}
			if entering == -1 || d.Less(bestD) {
				entering, bestD = j, d
			}
		}
		if entering == -1 {
			return StatusOptimal, nil
		}

		// 5) Entering direction w = B⁻¹·A[entering].
		aCol := make([]frac.Frac, r.m)
		r.cols.ColIter(entering, func(i int, v frac.Frac) {
			aCol[i] = aCol[i].Add(v)
		})
		w := r.f.Ftran(aCol)

		// 6) Ratio test: most binding decreasing basic, ties by lowest
		//    basic-variable index (Bland tie-break, always on). In phase 2 a
		//    basic artificial sits at zero and must not drift positive, so any
		//    nonzero component in its row forces it out at ratio zero.
		leaveRow := -1
		var bestRatio frac.Frac
		for i := 0; i < r.m; i++ {
			forced := !allowArt && r.isArtificial[r.basis[i]] && !w[i].IsZero()
			if !w[i].IsPositive() && !forced {
				continue
			}
			ratio := xB[i].Div(w[i])
			switch {
			case leaveRow == -1 || ratio.Less(bestRatio):
				leaveRow, bestRatio = i, ratio
			case ratio.Equal(bestRatio) && r.basis[i] < r.basis[leaveRow]:
				leaveRow = i
			}
		}
		if leaveRow == -1 {
			return StatusUnbounded, nil
		}

		// 7) Degeneracy bookkeeping: a run of zero-step pivots switches the
		//    entering rule to Bland's, guaranteeing finite termination; a
		//    strictly positive step proves the cycle broken and restores the
		//    steepest rule.
		if bestRatio.IsZero() {
			r.stall++
			if r.stall >= r.opts.BlandThreshold {
				r.bland = true
			}
		} else {
			r.stall = 0
			r.bland = false
		}

		// 8) Pivot: update the factorization incrementally; on a singular
		//    update, refactorize fully and retry the exchange once.
		if err := r.f.Update(leaveRow, w); err != nil {
			if err2 := r.refactorize(); err2 != nil {
				return StatusOptimal, err2
			}
			w = r.f.Ftran(aCol)
			if err2 := r.f.Update(leaveRow, w); err2 != nil {
				return StatusOptimal, fmt.Errorf("simplex: pivot rejected after refactorization: %w", err2)
			}
		}
		leaving := r.basis[leaveRow]
		r.inBasis[leaving] = false
		r.basis[leaveRow] = entering
		r.inBasis[entering] = true
		r.sinceFactor++
		r.iterations++

		if r.opts.Verbose {
			fmt.Printf("simplex: phase %d pivot %d: enter %d, leave %d, step %s\n",
				phase, r.iterations, entering, leaving, bestRatio)
		}
	}
}

// refactorize rebuilds the basis matrix from the current basic columns and
// factorizes it from scratch, resetting the eta file.
func (r *runner) refactorize() error {
	bm := sparse.NewMat(r.m)
	for _, j := range r.basis {
		r.cols.ColIter(j, func(i int, v frac.Frac) {
			bm.Push(i, v)
		})
		bm.SealColumn()
	}

	f, err := lu.Factorize(bm)
	if err != nil {
		return fmt.Errorf("simplex: basis refactorization: %w", err)
	}
	r.f = f
	r.sinceFactor = 0

	return nil
}

// colDot returns A[j]·y over the column's nonzero entries.
func (r *runner) colDot(j int, y []frac.Frac) frac.Frac {
	dot := frac.Zero()
	r.cols.ColIter(j, func(i int, v frac.Frac) {
		dot = dot.Add(v.Mul(y[i]))
	})

	return dot
}

// extract assembles the optimal Solution from the final basis.
func (r *runner) extract() *Solution {
	xB := r.f.Ftran(r.b)
	x := make([]frac.Frac, r.nStruct)
	for i, j := range r.basis {
		if j < r.nStruct {
			x[j] = xB[i]
		}
	}

	obj := frac.Zero()
	for j, c := range r.objOrig {
		obj = obj.Add(c.Mul(x[j]))
	}

	return &Solution{
		Status:     StatusOptimal,
		Objective:  obj,
		X:          x,
		Iterations: r.iterations,
	}
}
