package frac

import (
	"math/big"
)

// Frac is an immutable extended exact-rational scalar: either a normal
// arbitrary-precision rational, +∞, −∞, or NaN.
//
// The zero value of Frac is the exact rational 0 and is ready to use.
// All methods are pure: they never mutate the receiver or their arguments.
type Frac struct {
	kind kind
	rat  *big.Rat // backing rational; nil means exact zero (only for kindNormal)
}

// New returns the Frac representing the integer value v.
func New(v int64) Frac {
	return Frac{kind: kindNormal, rat: new(big.Rat).SetInt64(v)}
}

// NewRatio returns the Frac representing the exact ratio num/den.
// den must be nonzero; a zero denominator panics (programmer error, matching
// the construction-time panic convention for invalid configuration).
func NewRatio(num, den int64) Frac {
	return Frac{kind: kindNormal, rat: new(big.Rat).SetFrac64(num, den)}
}

// FromRat returns the Frac representing the rational r. The value is copied,
// so later mutation of r does not affect the returned Frac.
func FromRat(r *big.Rat) Frac {
	return Frac{kind: kindNormal, rat: new(big.Rat).Set(r)}
}

// Zero returns the exact rational 0.
func Zero() Frac { return Frac{} }

// One returns the exact rational 1.
func One() Frac { return New(1) }

// Inf returns positive infinity.
func Inf() Frac { return Frac{kind: kindInf} }

// NegInf returns negative infinity.
func NegInf() Frac { return Frac{kind: kindNegInf} }

// NaN returns the not-a-number value.
func NaN() Frac { return Frac{kind: kindNaN} }

// ratVal returns the backing rational, substituting the shared zero for
// zero-initialized values. Callers must not mutate the result.
func (f Frac) ratVal() *big.Rat {
	if f.rat == nil {
		return ratZero
	}

	return f.rat
}

// IsFinite reports whether f is neither infinite nor NaN.
func (f Frac) IsFinite() bool { return f.kind == kindNormal }

// IsInfinite reports whether f is +∞ or −∞.
func (f Frac) IsInfinite() bool { return f.kind == kindInf || f.kind == kindNegInf }

// IsNegInfinite reports whether f is −∞.
func (f Frac) IsNegInfinite() bool { return f.kind == kindNegInf }

// IsNaN reports whether f is NaN.
func (f Frac) IsNaN() bool { return f.kind == kindNaN }

// IsZero reports whether f is the exact rational 0. Infinities and NaN are
// never zero.
func (f Frac) IsZero() bool {
	return f.kind == kindNormal && f.ratVal().Sign() == 0
}

// IsOne reports whether f is the exact rational 1.
func (f Frac) IsOne() bool {
	return f.kind == kindNormal && f.ratVal().Cmp(oneRat) == 0
}

// IsPositive reports whether f is strictly positive. +∞ is positive;
// −∞ and NaN are not.
func (f Frac) IsPositive() bool {
	switch f.kind {
	case kindNormal:
		return f.ratVal().Sign() > 0
	case kindInf:
		return true
	default: // kindNegInf, kindNaN
		return false
	}
}

// IsNegative reports whether f is strictly negative. −∞ is negative;
// +∞ and NaN are not.
func (f Frac) IsNegative() bool {
	switch f.kind {
	case kindNormal:
		return f.ratVal().Sign() < 0
	case kindNegInf:
		return true
	default: // kindInf, kindNaN
		return false
	}
}

// IsNotNegative reports whether f is ≥ 0 in the extended sense:
// true for non-negative normals, +∞ and NaN; false for negatives and −∞.
func (f Frac) IsNotNegative() bool {
	switch f.kind {
	case kindNormal:
		return f.ratVal().Sign() >= 0
	case kindInf, kindNaN:
		return true
	default: // kindNegInf
		return false
	}
}

// IsNotPositive reports whether f is ≤ 0 in the extended sense:
// true for non-positive normals, −∞ and NaN; false for positives and +∞.
func (f Frac) IsNotPositive() bool {
	switch f.kind {
	case kindNormal:
		return f.ratVal().Sign() <= 0
	case kindNegInf, kindNaN:
		return true
	default: // kindInf
		return false
	}
}

// Neg returns −f. Negation flips the sign of infinities and preserves NaN.
func (f Frac) Neg() Frac {
	switch f.kind {
	case kindNormal:
		return Frac{kind: kindNormal, rat: new(big.Rat).Neg(f.ratVal())}
	case kindInf:
		return Frac{kind: kindNegInf}
	case kindNegInf:
		return Frac{kind: kindInf}
	default:
		return Frac{kind: kindNaN}
	}
}

// Abs returns |f|: the magnitude of a normal value, +∞ for either infinity,
// and NaN for NaN.
func (f Frac) Abs() Frac {
	switch f.kind {
	case kindNormal:
		return Frac{kind: kindNormal, rat: new(big.Rat).Abs(f.ratVal())}
	case kindInf, kindNegInf:
		return Frac{kind: kindInf}
	default:
		return Frac{kind: kindNaN}
	}
}

// Add returns f + g under the extended-real addition table:
//
//	finite + finite  = exact sum        finite + ±∞ = ±∞
//	(+∞) + (+∞)      = +∞               (−∞) + (−∞) = −∞
//	(+∞) + (−∞)      = NaN              NaN + x     = NaN
func (f Frac) Add(g Frac) Frac {
	switch {
	case f.kind == kindNaN || g.kind == kindNaN:
		return Frac{kind: kindNaN}
	case f.kind == kindNormal && g.kind == kindNormal:
		return Frac{kind: kindNormal, rat: new(big.Rat).Add(f.ratVal(), g.ratVal())}
	case f.kind == kindNormal:
		return Frac{kind: g.kind} // finite + ±∞ = ±∞
	case g.kind == kindNormal:
		return Frac{kind: f.kind} // ±∞ + finite = ±∞
	case f.kind == g.kind:
		return Frac{kind: f.kind} // like-signed infinities
	default:
		return Frac{kind: kindNaN} // (+∞) + (−∞)
	}
}

// Sub returns f − g. It mirrors Add with the sign of g's infinities flipped:
// (+∞) − (+∞) = NaN and (−∞) − (−∞) = NaN.
func (f Frac) Sub(g Frac) Frac {
	switch {
	case f.kind == kindNaN || g.kind == kindNaN:
		return Frac{kind: kindNaN}
	case f.kind == kindNormal && g.kind == kindNormal:
		return Frac{kind: kindNormal, rat: new(big.Rat).Sub(f.ratVal(), g.ratVal())}
	case f.kind == kindNormal:
		// finite − (+∞) = −∞; finite − (−∞) = +∞
		if g.kind == kindInf {
			return Frac{kind: kindNegInf}
		}

		return Frac{kind: kindInf}
	case g.kind == kindNormal:
		return Frac{kind: f.kind} // ±∞ − finite = ±∞
	case f.kind == g.kind:
		return Frac{kind: kindNaN} // (+∞) − (+∞), (−∞) − (−∞)
	default:
		return Frac{kind: f.kind} // (+∞) − (−∞) = +∞; (−∞) − (+∞) = −∞
	}
}

// Mul returns f × g:
//
//	finite × finite = exact product
//	finite × ∞      = ∞ signed by the finite operand; 0 × ∞ = NaN
//	∞ × ∞           = ∞ under the standard sign rules
//	NaN × x         = NaN
func (f Frac) Mul(g Frac) Frac {
	switch {
	case f.kind == kindNaN || g.kind == kindNaN:
		return Frac{kind: kindNaN}
	case f.kind == kindNormal && g.kind == kindNormal:
		return Frac{kind: kindNormal, rat: new(big.Rat).Mul(f.ratVal(), g.ratVal())}
	case f.kind == kindNormal:
		return mulFiniteInf(f.ratVal().Sign(), g.kind)
	case g.kind == kindNormal:
		return mulFiniteInf(g.ratVal().Sign(), f.kind)
	case f.kind == g.kind:
		return Frac{kind: kindInf} // (+∞)(+∞) or (−∞)(−∞)
	default:
		return Frac{kind: kindNegInf} // mixed-sign infinities
	}
}

// mulFiniteInf applies the sign-of-finite rule for finite × ∞:
// a positive finite keeps the infinity's sign, a negative finite flips it,
// and a zero finite yields NaN.
func mulFiniteInf(sign int, inf kind) Frac {
	switch {
	case sign > 0:
		return Frac{kind: inf}
	case sign < 0:
		if inf == kindInf {
			return Frac{kind: kindNegInf}
		}

		return Frac{kind: kindInf}
	default:
		return Frac{kind: kindNaN}
	}
}

// Div returns f / g:
//
//	finite / nonzero finite = exact quotient    finite / 0 = NaN
//	finite / ±∞             = exact 0
//	±∞ / finite             = ∞ signed by the finite; ±∞ / 0 = NaN
//	∞ / ∞                   = NaN               NaN / x    = NaN
func (f Frac) Div(g Frac) Frac {
	switch {
	case f.kind == kindNaN || g.kind == kindNaN:
		return Frac{kind: kindNaN}
	case f.kind == kindNormal && g.kind == kindNormal:
		if g.ratVal().Sign() == 0 {
			return Frac{kind: kindNaN}
		}

		return Frac{kind: kindNormal, rat: new(big.Rat).Quo(f.ratVal(), g.ratVal())}
	case f.kind == kindNormal:
		return Frac{} // finite / ±∞ = exact 0
	case g.kind == kindNormal:
		return mulFiniteInf(g.ratVal().Sign(), f.kind) // ±∞ / finite
	default:
		return Frac{kind: kindNaN} // ∞ / ∞, any sign combination
	}
}

// Floor returns the largest integer ≤ f for normal values; infinities and NaN
// pass through unchanged.
func (f Frac) Floor() Frac {
	if f.kind != kindNormal {
		return f
	}

	r := f.ratVal()
	// big.Int.Div rounds toward −∞ for a positive divisor, and big.Rat keeps
	// its denominator positive, so Div(num, den) is exactly the floor.
	q := new(big.Int).Div(r.Num(), r.Denom())

	return Frac{kind: kindNormal, rat: new(big.Rat).SetInt(q)}
}

// Ceil returns the smallest integer ≥ f for normal values; infinities and NaN
// pass through unchanged.
func (f Frac) Ceil() Frac {
	if f.kind != kindNormal {
		return f
	}

	// ⌈x⌉ = −⌊−x⌋
	return f.Neg().Floor().Neg()
}

// Cmp compares f with g under the partial ordering of the extended domain.
// It returns (−1|0|+1, true) when the pair is comparable and (0, false)
// otherwise.
//
// Incomparable pairs: any pair involving NaN, and — deliberately — two
// infinities of the same sign. The latter diverges from the usual
// extended-real convention (+∞ == +∞); it is preserved from historical solver
// behavior, and no solver path compares like-signed infinities. Use Equal for
// structural equality.
func (f Frac) Cmp(g Frac) (int, bool) {
	switch {
	case f.kind == kindNaN || g.kind == kindNaN:
		return 0, false
	case f.kind == kindNormal && g.kind == kindNormal:
		return f.ratVal().Cmp(g.ratVal()), true
	case f.kind == kindNormal:
		if g.kind == kindInf {
			return -1, true
		}

		return 1, true // g is −∞
	case g.kind == kindNormal:
		if f.kind == kindInf {
			return 1, true
		}

		return -1, true // f is −∞
	case f.kind == g.kind:
		return 0, false // like-signed infinities: incomparable
	case f.kind == kindInf:
		return 1, true // (+∞) vs (−∞)
	default:
		return -1, true // (−∞) vs (+∞)
	}
}

// Less reports whether f < g; incomparable pairs are never less.
func (f Frac) Less(g Frac) bool {
	c, ok := f.Cmp(g)

	return ok && c < 0
}

// Equal reports structural equality of the two values: identical variants,
// and for normal values identical rationals. Unlike Cmp, Equal(NaN, NaN) and
// Equal(+∞, +∞) are true. Intended for tests and deduplication, not ordering.
func (f Frac) Equal(g Frac) bool {
	if f.kind != g.kind {
		return false
	}
	if f.kind != kindNormal {
		return true
	}

	return f.ratVal().Cmp(g.ratVal()) == 0
}

// Rat extracts the exact rational value of f as a fresh copy.
// It fails with ErrNotExtractable for ±∞ and NaN.
func (f Frac) Rat() (*big.Rat, error) {
	if f.kind != kindNormal {
		return nil, ErrNotExtractable
	}

	return new(big.Rat).Set(f.ratVal()), nil
}

// Float64 extracts the nearest floating approximation of f.
// It fails with ErrNotExtractable for ±∞ and NaN.
func (f Frac) Float64() (float64, error) {
	if f.kind != kindNormal {
		return 0, ErrNotExtractable
	}

	v, _ := f.ratVal().Float64()

	return v, nil
}

// String renders the value: normal values in lowest-terms a/b (or integer)
// form, infinities as ∞ / -∞, and NaN as NaN.
func (f Frac) String() string {
	switch f.kind {
	case kindNormal:
		return f.ratVal().RatString()
	case kindInf:
		return "∞"
	case kindNegInf:
		return "-∞"
	default:
		return "NaN"
	}
}

// oneRat is the shared constant 1, never mutated.
var oneRat = big.NewRat(1, 1)
