// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of exact numbers with the index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep loop orders fixed so every result is reproducible.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c) element copies.
//     Each element is an immutable bignum.Number, so copying the slice is a deep copy.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/exact/bignum"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxFrom = "NewDenseFrom"
)

// denseErrorf wraps err with a uniform Dense context and the callsite indices,
// e.g. "Dense.At(3,0): matrix: index out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of exact numbers.
//   - dim is fixed for the lifetime of the value; there is no resize.
//   - data has length dim.Rows*dim.Cols, offset of (i,j) is i*dim.Cols + j.
//
// The zero-filled state is produced by the constructors; the Go zero value of
// Dense is an unusable 0×0 matrix.
type Dense struct {
	dim  Dimension
	data []bignum.Number
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c matrix filled with exact zeros.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate the flat buffer; the zero bignum.Number is 0.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	return NewDenseDim(Dimension{Rows: rows, Cols: cols})
}

// NewDenseDim is NewDense taking a Dimension.
func NewDenseDim(d Dimension) (*Dense, error) {
	if !d.valid() {
		return nil, fmt.Errorf("%s: %w", d, ErrInvalidDimensions)
	}

	return &Dense{dim: d, data: make([]bignum.Number, d.Size())}, nil
}

// NewDenseFrom builds a matrix from a slice of rows.
// Implementation:
//   - Stage 1: require at least one non-empty row.
//   - Stage 2: require every row to have len(rows[0]) entries.
//   - Stage 3: copy values row by row into the flat buffer.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or rows[0] is empty.
//   - ErrDimensionMismatch (wrapped with the row index) for ragged input.
//
// Complexity:
//   - Time O(r*c), Space O(r*c). The input slices are not retained.
func NewDenseFrom(rows [][]bignum.Number) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFrom, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFrom, err)
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w",
				ctxFrom, i, len(row), cols, ErrDimensionMismatch)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.dim.Rows }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.dim.Cols }

// Dim returns the fixed dimension.
func (m *Dense) Dim() Dimension { return m.dim }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// It returns the bare sentinel; At/Set add method and coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.dim.Rows {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.dim.Cols {
		return 0, ErrOutOfRange
	}

	return row*m.dim.Cols + col, nil
}

// At returns the value at (row, col).
// Out-of-bounds access yields ErrOutOfRange wrapped as "Dense.At(r,c): ...".
func (m *Dense) At(row, col int) (bignum.Number, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return bignum.Number{}, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange wrapped as
// "Dense.Set(r,c): ...". Set requires exclusive access to the receiver.
func (m *Dense) Set(row, col int, v bignum.Number) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns an independent copy. The dynamic type is *Dense.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

func (m *Dense) clone() *Dense {
	cp := make([]bignum.Number, len(m.data))
	copy(cp, m.data)

	return &Dense{dim: m.dim, data: cp}
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]bignum.Number, error) {
	if i < 0 || i >= m.dim.Rows {
		return nil, denseErrorf(ctxAt, i, 0, ErrOutOfRange)
	}
	out := make([]bignum.Number, m.dim.Cols)
	copy(out, m.data[i*m.dim.Cols:(i+1)*m.dim.Cols])

	return out, nil
}

// String renders rows as "[a, b]\n[c, d]\n" with exact values ("1/2", "3").
// Use Format for decimal or fraction-only rendering.
func (m *Dense) String() string {
	return format(m, gatherOptions())
}

// Do visits each element in row-major order and calls f(i,j,v).
// Iteration stops early when f returns false.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v bignum.Number) bool) {
	var i, j, base int
	for i = 0; i < m.dim.Rows; i++ {
		base = i * m.dim.Cols
		for j = 0; j < m.dim.Cols; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, in row-major order.
// Apply requires exclusive access to the receiver.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Apply(f func(i, j int, v bignum.Number) bignum.Number) {
	var i, j, base int
	for i = 0; i < m.dim.Rows; i++ {
		base = i * m.dim.Cols
		for j = 0; j < m.dim.Cols; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}
