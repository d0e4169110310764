// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/exact/bignum"
)

// Dimension is the fixed (rows, cols) extent of a matrix.
type Dimension struct {
	Rows int
	Cols int
}

// String renders the dimension as "(rows, cols)".
func (d Dimension) String() string {
	return fmt.Sprintf("(%d, %d)", d.Rows, d.Cols)
}

// Equal reports whether both extents match.
func (d Dimension) Equal(o Dimension) bool { return d.Rows == o.Rows && d.Cols == o.Cols }

// Size returns Rows*Cols, the number of stored elements.
func (d Dimension) Size() int { return d.Rows * d.Cols }

// Square reports whether Rows == Cols.
func (d Dimension) Square() bool { return d.Rows == d.Cols }

// Transposed returns (Cols, Rows).
func (d Dimension) Transposed() Dimension { return Dimension{Rows: d.Cols, Cols: d.Rows} }

// valid reports whether both extents are positive.
func (d Dimension) valid() bool { return d.Rows > 0 && d.Cols > 0 }

// Matrix is the minimal surface every kernel in this package accepts.
// Implementations must bounds-check At and Set and return ErrOutOfRange
// (wrapped) instead of panicking. Kernels detect *Dense and walk its flat
// storage directly; any other implementation goes through At/Set.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// Dim returns (Rows, Cols) as a Dimension.
	Dim() Dimension
	// At returns the element at (i, j).
	At(i, j int) (bignum.Number, error)
	// Set stores v at (i, j).
	Set(i, j int, v bignum.Number) error
	// Clone returns an independent deep copy.
	Clone() Matrix
}
