// Package lvlopt is your in-memory toolbox for exact linear optimization —
// from extended-rational arithmetic and sparse factorizations up to full
// revised-simplex and network-simplex solves.
//
// 🚀 What is lvlopt?
//
//	A modern, deterministic, zero-dependency library that brings together:
//		• Exact scalars: rational fractions extended with ±∞ and NaN as first-class values
//		• Sparse primitives: builder vectors, scattered vectors, column-compressed matrices
//		• Factorization: Markowitz-ordered sparse LU with eta-file basis updates
//		• Linear programming: two-phase revised simplex with anti-cycling (Bland) fallback
//		• Min-cost flow: spanning-tree network simplex, generic over four numeric domains
//
// ✨ Why choose lvlopt?
//
//   - Exact by default – no big-M sentinels, no tolerance tuning; infinities are values
//   - Deterministic – every tie-break is by lowest index, every run reproducible
//   - Pure Go – no cgo, no hidden deps
//   - Honest outcomes – Optimal / Unbounded / Infeasible / IterationLimitExceeded,
//     never a silently wrong number
//
// Under the hood, everything is organized under five subpackages:
//
//	frac/       — extended exact-rational scalar type (Normal | +∞ | −∞ | NaN)
//	sparse/     — sparse vector & column-compressed matrix containers
//	lu/         — sparse LU factorization, fill-reducing ordering, basis updates
//	simplex/    — revised simplex LP solver over frac
//	netsimplex/ — network simplex min-cost-flow solver, generic numeric domains
//
// Quick ASCII example:
//
//	maximize  x + y
//	s.t.      x + 2y ≤ 4
//	         3x +  y ≤ 6        ⇒  Optimal at (8/5, 6/5), objective 14/5
//	          x, y   ≥ 0
//
// Each solve owns its working state exclusively: independent solves may run on
// separate goroutines with no coordination, while a single solve is inherently
// sequential (each pivot depends on the previous factorization update).
//
// Dive into the per-package docs for API details, complexity notes and the
// exact arithmetic conventions.
//
//	go get github.com/katalvlaran/lvlopt
package lvlopt
