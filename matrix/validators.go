// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape, nil and symmetry checks.
//  - Return sentinel errors carrying the offending dimensions and no operation
//    tag, so call sites wrap uniformly ("Add: expected (2, 2), got (3, 2): ...").
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).
//  - Single-purpose validators assume non-nil input unless stated.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/exact/bignum"
)

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense stored in the interface.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// The error names a's dimension as expected and b's as actual.
// Assumes a and b are not nil.
func ValidateSameShape(a, b Matrix) error {
	if !a.Dim().Equal(b.Dim()) {
		return mismatchErrorf(a.Dim(), b.Dim())
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrNonSquare wrapped with the dimension. Assumes m is not nil.
func ValidateSquare(m Matrix) error {
	if !m.Dim().Square() {
		return fmt.Errorf("%s: %w", m.Dim(), ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
func ValidateVecLen(x []bignum.Number, n int) error {
	if len(x) != n {
		return fmt.Errorf("vector length: expected %d, got %d: %w", n, len(x), ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateSquareNonNil is the composite NotNil → Square.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateSquare(m)
}

// ValidateMulCompatible ensures both inputs are non-nil and a.Cols == b.Rows.
// On mismatch the expected dimension is (a.Cols, b.Cols): the shape b would
// need for the product to exist.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return mismatchErrorf(Dimension{Rows: a.Cols(), Cols: b.Cols()}, b.Dim())
	}

	return nil
}

// ValidateSymmetric checks A[i,j] == A[j,i] exactly for all i<j.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrAsymmetry (wrapped with the first
// offending coordinates in i→j order).
// Complexity: O(n^2) comparisons on the strict upper triangle.
func ValidateSymmetric(m Matrix) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return err
	}
	n := m.Rows()
	var (
		i, j     int
		aij, aji bignum.Number
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return err
			}
			if aji, err = m.At(j, i); err != nil {
				return err
			}
			if !aij.Equal(aji) {
				return fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}
