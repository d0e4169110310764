// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (possibly wrapped with an operation tag
// and coordinates) and tests match them via errors.Is. No exported function
// panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." so wrapped chains stay
// greppable. Context is added with fmt.Errorf("<Op>: %w", ErrX) at the
// nearest detection site.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned by Inverse when no non-zero pivot exists in a
	// column, which for exact arithmetic means det(A) == 0.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrAsymmetry signals that a matrix expected to be symmetric is not.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")
)

// mismatchErrorf reports a dimension mismatch naming the expected and the
// actual dimension, e.g. "expected (2, 2), got (3, 2): matrix: dimension mismatch".
func mismatchErrorf(want, got Dimension) error {
	return fmt.Errorf("expected %s, got %s: %w", want, got, ErrDimensionMismatch)
}
