// SPDX-License-Identifier: MIT
// Package bignum: sentinel error set.
// Every message is prefixed with "bignum: ..." for consistency. Callers match
// with errors.Is; operations attach context via bignumErrorf.

package bignum

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned by every dividing operation when the
	// divisor (or a denominator) is zero.
	ErrDivisionByZero = errors.New("bignum: division by zero")

	// ErrSyntax indicates that a textual number could not be parsed.
	ErrSyntax = errors.New("bignum: invalid syntax")

	// ErrNegativeWhole indicates a negative value where a Whole is required.
	ErrNegativeWhole = errors.New("bignum: negative value for whole number")
)

// Operation tags used in error wrapping.
const (
	opQuoRem      = "QuoRem"
	opNewRational = "NewRational"
	opQuo         = "Quo"
	opInv         = "Inv"
	opPow         = "Pow"
	opParseWhole  = "ParseWhole"
	opParseInt    = "ParseInteger"
	opParseNumber = "ParseNumber"
	opNewFraction = "NewFraction"
)

// bignumErrorf wraps err with an operation tag, preserving it for errors.Is.
// Callers must pass a non-nil err.
func bignumErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
