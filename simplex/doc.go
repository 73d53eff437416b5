// Package simplex implements an exact-arithmetic revised simplex solver for
// linear programs over the extended-rational domain frac.
//
// A problem is built incrementally — variables with objective coefficients,
// then constraints relating them — and solved in place:
//
//	p := simplex.NewProblem(simplex.Maximize)
//	x, _ := p.AddVariable(frac.New(1))
//	y, _ := p.AddVariable(frac.New(1))
//
//	row := sparse.NewVec()
//	row.Push(x, frac.New(1))
//	row.Push(y, frac.New(2))
//	_ = p.AddConstraint(row, simplex.LE, frac.New(4))   // x + 2y ≤ 4
//
//	sol, err := p.Solve()
//
// All variables are non-negative. Constraints may be ≤, ≥ or =; right-hand
// sides of any sign are normalized internally.
//
// # Algorithm
//
// The solver is the classical two-phase revised simplex method:
//
//	Initializing → Iterating{reduced costs → entering variable →
//	ratio test → pivot / basis update} → Terminal
//
//   - The basis is held as an LU factorization (package lu) updated
//     incrementally per pivot, with a periodic full refactorization to bound
//     eta-file growth.
//   - Entering rule: most negative reduced cost (Dantzig); after a run of
//     degenerate pivots the solver switches to Bland's strict-index rule,
//     which guarantees finite termination under degeneracy.
//   - Ratio test: smallest ratio among basic variables that decrease along
//     the entering direction; ties break by lowest basic-variable index.
//     No limiting row means the objective is unbounded.
//   - Phase 1 minimizes the sum of artificial variables; a positive optimum
//     proves infeasibility.
//
// Because every value is an exact rational, termination decisions (negative
// reduced cost, zero pivot, binding ratio) are structural facts — there are
// no tolerances, and no big-M float sentinels: where an unbounded objective
// must be reported, it is reported as the frac infinity value itself.
//
// # Outcomes
//
// A solve ends in exactly one of the terminal statuses:
//
//	StatusOptimal              – solution vector and exact objective value
//	StatusUnbounded            – objective improves without limit (±∞)
//	StatusInfeasible           – no feasible point exists
//	StatusIterationLimit       – pivot bound hit before convergence
//
// or fails with an error: input validation sentinels at build time, or a
// wrapped lu.ErrSingularMatrix when a basis cannot be factorized even after
// a fresh refactorization — never a silently wrong answer.
//
// A solve runs entirely on the caller's goroutine and owns its working state
// exclusively; independent solves may run concurrently with no coordination.
//
// Complexity per iteration: O(nnz(A) + nnz(factors)) — one Btran for the
// duals, one pricing sweep, one Ftran for the entering column.
package simplex
