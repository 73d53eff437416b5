// Package netsimplex implements the network simplex method for min-cost-flow
// problems, generic over a closed set of scalar domains.
//
// A problem is a directed graph with capacitated, costed arcs and a supply
// per node (positive injects flow, negative demands it):
//
//	d := netsimplex.Int64Domain{}
//	nw := netsimplex.NewNetwork[int64](d, 4)
//	_ = nw.SetSupply(0, 20)
//	_ = nw.SetSupply(3, -20)
//	a, _ := nw.AddArc(0, 3, 25, 2) // capacity 25, unit cost 2
//
//	flow, _ := nw.Solve()
//	_ = flow.ArcFlows[a]
//
// # Scalar domains
//
// The solver runs the identical pivoting logic over four scalar types,
// selected by a Domain implementation:
//
//	Float64Domain – float64, fast, subject to rounding
//	Int64Domain   – int64, exact within machine range
//	BigIntDomain  – *big.Int, exact, unbounded
//	RatDomain     – *big.Rat, exact rationals
//
// The set is closed: no fallback implementations exist, and the two extra
// capabilities (FloatScaler, BigIntConverter) are implemented only by the
// domains where the operation is meaningful, so an unsupported combination
// fails to compile instead of aborting at runtime.
//
// # Algorithm
//
// The basis is a spanning tree over the nodes plus an artificial root,
// represented by parent links; non-tree arcs sit at their lower or upper
// flow bound.
//
//	BuildInitialTree → Iterating{node potentials → entering arc by most
//	violated reduced cost → cycle trace through parent links → leaving arc
//	by minimum residual → push flow, reattach subtree} → Terminal
//
//   - Entering: most negative reduced cost at the lower bound, most positive
//     at the upper; ties go to the earliest-added arc.
//   - Leaving: smallest residual capacity on the induced cycle, the entering
//     arc itself included; ties go to the earliest-added arc.
//   - Artificial arcs carry a cost exceeding the total absolute arc cost, so
//     any feasible flow prices them out; one still carrying flow at
//     optimality proves infeasibility.
//
// A solve ends StatusOptimal with per-arc flows and total cost,
// StatusInfeasible (unbalanced supplies or insufficient capacity), or
// StatusIterationLimit. It runs entirely on the caller's goroutine;
// independent solves may run concurrently.
package netsimplex
