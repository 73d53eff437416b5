// Package frac defines the extended exact-rational scalar type used by every
// solver in lvlopt.
//
// A Frac is a tagged, immutable value with four variants:
//
//	Normal  – an exact rational number (arbitrary precision, math/big backed)
//	+∞      – positive infinity
//	−∞      – negative infinity
//	NaN     – not-a-number
//
// Arithmetic between any two variants is total: the operations Add, Sub, Mul,
// Div, Neg, Abs, Floor and Ceil are closed over the four variants and follow
// IEEE-754-style extended-real conventions:
//
//	finite ⊕ finite   = exact field result
//	finite + (+∞)     = +∞            (+∞) + (−∞)  = NaN
//	finite × ∞        = ∞ signed by the finite operand; 0 × ∞ = NaN
//	finite / 0        = NaN           finite / ∞   = exact 0
//	∞ / ∞             = NaN           NaN ⊕ x      = NaN   (NaN absorbs)
//
// Ordering is partial: Cmp reports (ordering, ok). NaN is incomparable with
// everything including itself; +∞ is greater than every normal value and than
// −∞. Two infinities of the same sign are also reported as incomparable — not
// equal — which diverges from the usual extended-real convention where
// +∞ == +∞. This mirrors historical solver behavior and is deliberate; the
// solvers never compare two like-signed infinities. See Cmp.
//
// Exactness introspection: Rat and Float64 extract the underlying value; both
// fail with ErrNotExtractable on ±∞ and NaN, which have neither an exact nor
// an approximate form.
//
// Complexity:
//
//	– All operations: O(M(b)) where b is the bit length of the operands
//	  (cost of the underlying big.Rat arithmetic); variant dispatch is O(1).
//	– Frac values are immutable; operations allocate only their result.
//
// Example usage:
//
//	a := frac.NewRatio(8, 5)           // 8/5
//	b := frac.Inf()
//	sum := a.Add(b)                    // +∞
//	_, err := sum.Rat()                // ErrNotExtractable
package frac
