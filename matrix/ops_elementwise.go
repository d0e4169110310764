// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide private element-wise kernels (ew*) shared by Add, Sub, Hadamard,
//     Scale, Shift and Neg, plus the in-place operators on *Dense.
//   - Keep all loops deterministic with a *Dense fast path over the flat buffer.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 on *Dense, i→j otherwise).
//   - One output allocation per out-of-place call; in-place calls allocate
//     only the fresh numbers produced by bignum arithmetic.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/exact/bignum"
)

// ewZip computes out[i,j] = f(a[i,j], b[i,j]) for same-shaped a and b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (naming expected vs actual), tagged with op.
//
// Complexity:
//   - Time O(r*c) calls of f, Space O(r*c).
func ewZip(a, b Matrix, op string, f func(x, y bignum.Number) bignum.Number) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	out, err := NewDenseDim(a.Dim())
	if err != nil {
		return nil, matrixErrorf(op, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range out.data {
				out.data[idx] = f(da.data[idx], db.data[idx])
			}

			return out, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var (
		i, j   int
		av, bv bignum.Number
	)
	for i = 0; i < out.dim.Rows; i++ {
		for j = 0; j < out.dim.Cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(op, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(op, err)
			}
			out.data[i*out.dim.Cols+j] = f(av, bv)
		}
	}

	return out, nil
}

// ewMap computes out[i,j] = f(m[i,j]).
//
// Errors:
//   - ErrNilMatrix tagged with op.
//
// Complexity:
//   - Time O(r*c) calls of f, Space O(r*c).
func ewMap(m Matrix, op string, f func(x bignum.Number) bignum.Number) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(op, err)
	}
	out, err := NewDenseDim(m.Dim())
	if err != nil {
		return nil, matrixErrorf(op, err)
	}

	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			out.data[idx] = f(v)
		}

		return out, nil
	}

	var (
		i, j int
		v    bignum.Number
	)
	for i = 0; i < out.dim.Rows; i++ {
		for j = 0; j < out.dim.Cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(op, err)
			}
			out.data[i*out.dim.Cols+j] = f(v)
		}
	}

	return out, nil
}

// AddInPlace performs m += b element-wise.
// Implementation:
//   - Stage 1: validate b non-nil and shape equal to m (nothing is written on error).
//   - Stage 2: flat loop when b is *Dense, i→j via At otherwise.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch ("AddInPlace: expected (r, c), got (r', c'): ...").
//
// Notes:
//   - b may be m itself; every element is read before it is written.
//   - Requires exclusive access to m.
func (m *Dense) AddInPlace(b Matrix) error {
	return m.zipInPlace(b, opAddInPlace, bignum.Number.Add)
}

// SubInPlace performs m -= b element-wise. Same contract as AddInPlace.
func (m *Dense) SubInPlace(b Matrix) error {
	return m.zipInPlace(b, opSubInPlace, bignum.Number.Sub)
}

func (m *Dense) zipInPlace(b Matrix, op string, f func(x, y bignum.Number) bignum.Number) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return matrixErrorf(op, err)
	}
	if db, ok := b.(*Dense); ok {
		for idx := range m.data {
			m.data[idx] = f(m.data[idx], db.data[idx])
		}

		return nil
	}

	// Read b fully before writing so a failing custom At leaves m untouched.
	src, err := toDense(b)
	if err != nil {
		return matrixErrorf(op, err)
	}
	for idx := range m.data {
		m.data[idx] = f(m.data[idx], src.data[idx])
	}

	return nil
}

// ScaleInPlace performs m *= alpha on every element.
// Complexity: O(r*c) multiplications.
func (m *Dense) ScaleInPlace(alpha bignum.Number) {
	for idx := range m.data {
		m.data[idx] = m.data[idx].Mul(alpha)
	}
}

// ShiftInPlace performs m += beta on every element (scalar broadcast).
// Complexity: O(r*c) additions.
func (m *Dense) ShiftInPlace(beta bignum.Number) {
	for idx := range m.data {
		m.data[idx] = m.data[idx].Add(beta)
	}
}

// toDense returns m itself when it is a *Dense, otherwise a *Dense copy read
// through At. Callers must treat the result as read-only.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDenseDim(m.Dim())
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < out.dim.Rows; i++ {
		for j = 0; j < out.dim.Cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*out.dim.Cols+j] = v
		}
	}

	return out, nil
}
