package netsimplex

import "math/big"

// Domain is the closed arithmetic contract the solver is generic over.
//
// Exactly four implementations exist: Float64Domain, Int64Domain,
// BigIntDomain and RatDomain. The set is deliberately closed — there are no
// default or fallback implementations, so instantiating the solver over an
// unsupported scalar type is a compile-time error rather than a runtime
// abort.
//
// Values of T are treated as immutable: every operation returns a fresh
// value and never writes through an input (relevant for the pointer-backed
// big.Int / big.Rat domains).
type Domain[T any] interface {
	Zero() T
	One() T
	Add(a, b T) T
	Sub(a, b T) T
	Neg(a T) T
	Mul(a, b T) T

	// Cmp returns −1, 0 or +1 as a is less than, equal to or greater than b.
	Cmp(a, b T) int
}

// FloatScaler is the capability to scale a value by a float64 multiplier.
// Only the domains where that is meaningful implement it: Float64Domain
// (native) and RatDomain (the multiplier converts exactly to a rational).
// The integer domains do not, so scaling an integer network is rejected at
// compile time.
type FloatScaler[T any] interface {
	Domain[T]

	// ScaleFloat returns v·mult. The multiplier must be finite; a NaN or
	// infinite multiplier panics (programmer error).
	ScaleFloat(v T, mult float64) T
}

// BigIntConverter is the capability to convert a value to an
// arbitrary-precision integer. Only the integer domains implement it:
// Int64Domain and BigIntDomain. Converting a float or rational network is
// rejected at compile time.
type BigIntConverter[T any] interface {
	Domain[T]

	// BigInt returns v as a freshly allocated big.Int.
	BigInt(v T) *big.Int
}

// ScaleCosts returns a copy of costs with every entry scaled by mult.
// Requiring a FloatScaler makes the unsupported domains unrepresentable here.
func ScaleCosts[T any](d FloatScaler[T], costs []T, mult float64) []T {
	out := make([]T, len(costs))
	for i, c := range costs {
		out[i] = d.ScaleFloat(c, mult)
	}

	return out
}

// TotalCostBig accumulates Σ flows[i]·costs[i] as an arbitrary-precision
// integer, immune to int64 overflow on large networks.
func TotalCostBig[T any](d BigIntConverter[T], flows, costs []T) *big.Int {
	total := new(big.Int)
	for i := range flows {
		total.Add(total, new(big.Int).Mul(d.BigInt(flows[i]), d.BigInt(costs[i])))
	}

	return total
}

// Float64Domain runs the solver on float64 scalars. Fast, but subject to
// rounding; prefer RatDomain when exactness matters.
type Float64Domain struct{}

func (Float64Domain) Zero() float64 { return 0 }
func (Float64Domain) One() float64 { return 1 }
func (Float64Domain) Add(a, b float64) float64 { return a + b }
func (Float64Domain) Sub(a, b float64) float64 { return a - b }
func (Float64Domain) Neg(a float64) float64 { return -a }
func (Float64Domain) Mul(a, b float64) float64 { return a * b }
func (Float64Domain) Cmp(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ScaleFloat is native multiplication for the float domain.
func (Float64Domain) ScaleFloat(v, mult float64) float64 { return v * mult }

// Int64Domain runs the solver on machine integers. Exact as long as no
// intermediate value overflows int64.
type Int64Domain struct{}

func (Int64Domain) Zero() int64 { return 0 }
func (Int64Domain) One() int64 { return 1 }
func (Int64Domain) Add(a, b int64) int64 { return a + b }
func (Int64Domain) Sub(a, b int64) int64 { return a - b }
func (Int64Domain) Neg(a int64) int64 { return -a }
func (Int64Domain) Mul(a, b int64) int64 { return a * b }
func (Int64Domain) Cmp(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// BigInt widens the machine integer.
func (Int64Domain) BigInt(v int64) *big.Int { return big.NewInt(v) }

// BigIntDomain runs the solver on arbitrary-precision integers. Inputs are
// never mutated; every operation allocates its result.
type BigIntDomain struct{}

func (BigIntDomain) Zero() *big.Int { return new(big.Int) }
func (BigIntDomain) One() *big.Int { return big.NewInt(1) }
func (BigIntDomain) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }
func (BigIntDomain) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }
func (BigIntDomain) Neg(a *big.Int) *big.Int { return new(big.Int).Neg(a) }
func (BigIntDomain) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }
func (BigIntDomain) Cmp(a, b *big.Int) int { return a.Cmp(b) }

// BigInt returns a defensive copy so callers cannot alias solver state.
func (BigIntDomain) BigInt(v *big.Int) *big.Int { return new(big.Int).Set(v) }

// RatDomain runs the solver on exact rationals. Inputs are never mutated;
// every operation allocates its result.
type RatDomain struct{}

func (RatDomain) Zero() *big.Rat { return new(big.Rat) }
func (RatDomain) One() *big.Rat { return big.NewRat(1, 1) }
func (RatDomain) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (RatDomain) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (RatDomain) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }
func (RatDomain) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (RatDomain) Cmp(a, b *big.Rat) int { return a.Cmp(b) }

// ScaleFloat multiplies by the exact rational value of mult.
func (RatDomain) ScaleFloat(v *big.Rat, mult float64) *big.Rat {
	m := new(big.Rat).SetFloat64(mult)
	if m == nil {
		panic("netsimplex: multiplier must be finite")
	}

	return new(big.Rat).Mul(v, m)
}
