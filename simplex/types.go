// Package simplex: enumerations, sentinel errors, options and result types.
// The problem builder lives in problem.go and the pivot loop in solver.go per
// the global conventions.

package simplex

import (
	"errors"

	"github.com/katalvlaran/lvlopt/frac"
)

// Sentinel errors returned by the simplex package.
var (
	// ErrVarOutOfRange indicates a constraint coefficient referencing a
	// variable index that was never added to the problem.
	ErrVarOutOfRange = errors.New("simplex: variable index out of range")

	// ErrNonFiniteInput indicates an objective coefficient, constraint
	// coefficient or right-hand side that is ±∞ or NaN. Problem data must
	// be finite; infinities arise only in reported outcomes.
	ErrNonFiniteInput = errors.New("simplex: problem data must be finite")

	// ErrBadIterationLimit indicates a non-positive iteration limit.
	ErrBadIterationLimit = errors.New("simplex: IterationLimit must be positive")

	// ErrBadRefactorPeriod indicates a non-positive refactorization period.
	ErrBadRefactorPeriod = errors.New("simplex: RefactorPeriod must be positive")
)

// Direction selects the optimization sense of a Problem.
type Direction uint8

const (
	// Maximize seeks the largest objective value.
	Maximize Direction = iota

	// Minimize seeks the smallest objective value.
	Minimize
)

// Relation is the comparison operator of one constraint row.
type Relation uint8

const (
	// LE constrains the row to ≤ rhs.
	LE Relation = iota

	// GE constrains the row to ≥ rhs.
	GE

	// EQ constrains the row to = rhs.
	EQ
)

// Status is the terminal outcome of a solve.
type Status uint8

const (
	// StatusOptimal: an optimal basic feasible solution was found.
	StatusOptimal Status = iota

	// StatusUnbounded: the objective improves without limit along a feasible
	// direction; the reported objective is the corresponding frac infinity.
	StatusUnbounded

	// StatusInfeasible: no feasible point satisfies the constraints.
	StatusInfeasible

	// StatusIterationLimit: the pivot sequence did not converge within the
	// configured iteration bound. Distinct from Unbounded/Infeasible so
	// callers can retry with a higher limit or different options.
	StatusIterationLimit
)

// String renders the status for logs and test failure messages.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "Optimal"
	case StatusUnbounded:
		return "Unbounded"
	case StatusInfeasible:
		return "Infeasible"
	case StatusIterationLimit:
		return "IterationLimitExceeded"
	default:
		return "Unknown"
	}
}

// Solution is the result of a solve.
//
// X holds one exact value per added variable and is populated only for
// StatusOptimal. Objective is the exact optimal value for StatusOptimal, the
// signed frac infinity for StatusUnbounded, and NaN otherwise. Iterations
// counts pivots across both phases.
type Solution struct {
	Status     Status
	Objective  frac.Frac
	X          []frac.Frac
	Iterations int
}

// Options configures a solve.
//
// IterationLimit  – pivot ceiling across both phases; exceeding it yields
//
//	StatusIterationLimit rather than an infinite loop.
//
// RefactorPeriod  – pivots between full basis refactorizations; bounds
//
//	eta-file growth and factor density.
//
// BlandThreshold  – consecutive degenerate (zero-step) pivots tolerated
//
//	before switching to Bland's anti-cycling rule.
//
// Verbose         – log each pivot (entering, leaving, ratio).
type Options struct {
	IterationLimit int
	RefactorPeriod int
	BlandThreshold int
	Verbose        bool
}

// Option is a functional option for configuring a solve.
type Option func(*Options)

// WithIterationLimit caps the number of pivots. Must be positive; a
// non-positive value panics (invalid configuration, programmer error).
func WithIterationLimit(limit int) Option {
	return func(o *Options) {
		if limit <= 0 {
			panic(ErrBadIterationLimit.Error())
		}
		o.IterationLimit = limit
	}
}

// WithRefactorPeriod sets the pivots between full refactorizations.
// Must be positive; a non-positive value panics.
func WithRefactorPeriod(period int) Option {
	return func(o *Options) {
		if period <= 0 {
			panic(ErrBadRefactorPeriod.Error())
		}
		o.RefactorPeriod = period
	}
}

// WithBlandThreshold sets how many consecutive degenerate pivots are
// tolerated before the entering rule switches to Bland's strict-index rule.
// Zero switches immediately.
func WithBlandThreshold(n int) Option {
	return func(o *Options) {
		o.BlandThreshold = n
	}
}

// WithVerbose enables pivot-level logging.
func WithVerbose() Option {
	return func(o *Options) {
		o.Verbose = true
	}
}

// DefaultOptions returns production-safe defaults:
//
//   - IterationLimit: 10000
//   - RefactorPeriod: 100
//   - BlandThreshold: 20
//   - Verbose:        false
func DefaultOptions() Options {
	return Options{
		IterationLimit: 10000,
		RefactorPeriod: 100,
		BlandThreshold: 20,
	}
}
