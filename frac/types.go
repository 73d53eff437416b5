// Package frac: scalar variant tags and sentinel errors.
// This file defines ONLY the variant enumeration and package-level sentinel
// errors. The Frac type, constructors and arithmetic live in frac.go per the
// global conventions (types/errors separated from algorithm files).

package frac

import (
	"errors"
	"math/big"
)

// kind discriminates the four variants of a Frac. The zero kind is kindNormal
// so that the zero Frac value behaves as the exact rational 0.
type kind uint8

const (
	// kindNormal tags an exact rational value.
	kindNormal kind = iota

	// kindInf tags positive infinity.
	kindInf

	// kindNegInf tags negative infinity.
	kindNegInf

	// kindNaN tags not-a-number.
	kindNaN
)

// Sentinel errors returned by the frac package.
var (
	// ErrNotExtractable indicates that a value extraction (Rat or Float64)
	// was attempted on ±∞ or NaN, which have neither an exact rational nor
	// an approximate floating form.
	ErrNotExtractable = errors.New("frac: value has no extractable form")
)

// ratZero is the shared backing rational for zero-valued and zero-initialized
// Frac values. It is never mutated: all arithmetic writes into fresh big.Rat
// targets and accessors hand out copies.
var ratZero = new(big.Rat)
