package netsimplex

import "errors"

// Sentinel errors returned by the netsimplex package.
var (
	// ErrNodeOutOfRange indicates an arc endpoint or supply node outside
	// [0, nodes).
	ErrNodeOutOfRange = errors.New("netsimplex: node index out of range")

	// ErrNegativeCapacity indicates an arc with capacity below zero.
	ErrNegativeCapacity = errors.New("netsimplex: arc capacity must be non-negative")

	// ErrBadIterationLimit indicates a non-positive iteration limit.
	ErrBadIterationLimit = errors.New("netsimplex: IterationLimit must be positive")
)

// Status is the terminal outcome of a solve.
type Status uint8

const (
	// StatusOptimal: a minimum-cost feasible flow was found.
	StatusOptimal Status = iota

	// StatusInfeasible: supplies and demands cannot be routed within the arc
	// capacities (or do not balance).
	StatusInfeasible

	// StatusIterationLimit: the pivot sequence did not converge within the
	// configured iteration bound.
	StatusIterationLimit
)

// String renders the status for logs and test failure messages.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "Optimal"
	case StatusInfeasible:
		return "Infeasible"
	case StatusIterationLimit:
		return "IterationLimitExceeded"
	default:
		return "Unknown"
	}
}

// Flow is the result of a solve.
//
// ArcFlows holds one value per added arc, in insertion order, and is
// populated only for StatusOptimal; TotalCost is Σ flow·cost over all arcs.
type Flow[T any] struct {
	Status     Status
	ArcFlows   []T
	TotalCost  T
	Iterations int
}

// Options configures a solve.
//
// IterationLimit – pivot ceiling; exceeding it yields StatusIterationLimit
//
//	rather than an infinite loop.
//
// Verbose        – log each pivot (entering arc, leaving arc).
type Options struct {
	IterationLimit int
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

// WithVerbose enables pivot-level logging.
func WithVerbose() Option {
	return func(o *Options) {
		o.Verbose = true
	}
}

// DefaultOptions returns production-safe defaults:
//
//   - IterationLimit: 10000
//   - Verbose:        false
func DefaultOptions() Options {
	return Options{IterationLimit: 10000}
}
