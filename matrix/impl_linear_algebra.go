// SPDX-License-Identifier: MIT
// Package matrix provides exact linear-algebra kernels on any Matrix
// implementation: element-wise sum and difference, scalar scale and shift,
// matrix product, transpose, LU, inverse and determinant. All functions
// validate first, never mutate their inputs and return fresh *Dense results.
//
// Notes:
//   - Arithmetic is exact (bignum.Number); there is no tolerance anywhere and
//     a pivot is singular only when it is exactly zero.
//   - Errors are sentinels wrapped via matrixErrorf with the op* tag.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/exact/bignum"
)

// Operation name constants for unified error wrapping.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opScale      = "Scale"
	opShift      = "Shift"
	opNeg        = "Neg"
	opHadamard   = "Hadamard"
	opMatVec     = "MatVec"
	opTrace      = "Trace"
	opLU         = "LU"
	opInverse    = "Inverse"
	opDet        = "Det"
	opFormat     = "Format"
	opAddInPlace = "AddInPlace"
	opSubInPlace = "SubInPlace"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes C = A + B element-wise and returns a fresh *Dense.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch ("Add: expected (2, 2), got (3, 2): ...").
//
// Complexity:
//   - Time O(r*c), Space O(r*c). Passing *Dense operands takes the flat fast path.
func Add(a, b Matrix) (Matrix, error) { return ewZip(a, b, opAdd, bignum.Number.Add) }

// Sub computes C = A - B element-wise. Same contract as Add.
func Sub(a, b Matrix) (Matrix, error) { return ewZip(a, b, opSub, bignum.Number.Sub) }

// Hadamard computes the element-wise product C[i,j] = A[i,j]*B[i,j].
func Hadamard(a, b Matrix) (Matrix, error) { return ewZip(a, b, opHadamard, bignum.Number.Mul) }

// Scale returns alpha*m.
func Scale(m Matrix, alpha bignum.Number) (Matrix, error) {
	return ewMap(m, opScale, func(x bignum.Number) bignum.Number { return x.Mul(alpha) })
}

// Shift returns m + beta with beta broadcast to every element.
func Shift(m Matrix, beta bignum.Number) (Matrix, error) {
	return ewMap(m, opShift, func(x bignum.Number) bignum.Number { return x.Add(beta) })
}

// Neg returns -m.
func Neg(m Matrix) (Matrix, error) { return ewMap(m, opNeg, bignum.Number.Neg) }

// Transpose returns a new cols×rows matrix with T[j,i] = m[i,j].
// The source is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return transposeDense(src), nil
}

// transposeDense copies src into a fresh transposed *Dense.
func transposeDense(src *Dense) *Dense {
	rows, cols := src.dim.Rows, src.dim.Cols
	out := &Dense{dim: src.dim.Transposed(), data: make([]bignum.Number, len(src.data))}
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			out.data[j*rows+i] = src.data[base+j]
		}
	}

	return out
}

// Mul performs the matrix product C = A × B.
// Implementation:
//   - Stage 1: validate A,B non-nil and A.Cols == B.Rows.
//   - Stage 2: transpose B once so both operands are walked row-major.
//   - Stage 3: C[i,j] = Σ_k A[i,k] * Bᵀ[j,k], skipping exact zeros in A.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch naming (A.Cols, B.Cols) as expected
//     and B's dimension as actual.
//
// Determinism:
//   - Fixed i→j→k order; the sum is exact so order never changes the value.
//
// Complexity:
//   - Time O(r*n*c) exact multiply-adds, Space O(r*c + n*c) for C and Bᵀ.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bt := transposeDense(db)

	rows, inner, cols := da.dim.Rows, da.dim.Cols, db.dim.Cols
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k    int
		rowA, rowB int
		av         bignum.Number
		sum        bignum.Number
	)
	for i = 0; i < rows; i++ {
		rowA = i * inner
		for j = 0; j < cols; j++ {
			rowB = j * inner
			sum = bignum.Zero()
			for k = 0; k < inner; k++ {
				av = da.data[rowA+k]
				if av.IsZero() {
					continue
				}
				sum = sum.Add(av.Mul(bt.data[rowB+k]))
			}
			out.data[i*cols+j] = sum
		}
	}

	return out, nil
}

// MatVec computes y = m·x for a vector x of length Cols(m).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (vector length).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []bignum.Number) ([]bignum.Number, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := d.dim.Rows, d.dim.Cols
	y := make([]bignum.Number, rows)
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		sum := bignum.Zero()
		for j = 0; j < cols; j++ {
			sum = sum.Add(d.data[base+j].Mul(x[j]))
		}
		y[i] = sum
	}

	return y, nil
}

// Trace returns Σ m[i,i] of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
func Trace(m Matrix) (bignum.Number, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return bignum.Number{}, matrixErrorf(opTrace, err)
	}
	sum := bignum.Zero()
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return bignum.Number{}, matrixErrorf(opTrace, err)
		}
		sum = sum.Add(v)
	}

	return sum, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L
// and no pivoting.
// Implementation:
//   - Stage 1: validate m (not nil, square); allocate L,U; set diag(L)=1.
//   - Stage 2: for i=0..n-1 build row i of U (j ≥ i), then column i of L (j > i).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular when a leading pivot U[i,i] is exactly zero. A non-singular
//     matrix can still fail here (e.g. [[0,1],[1,0]]); Inverse and Det pivot
//     and are not affected.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix) (Matrix, Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	a, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	n := a.dim.Rows
	l, _ := NewDense(n, n)
	u, _ := NewDense(n, n)
	one := bignum.One()
	for i := 0; i < n; i++ {
		l.data[i*n+i] = one
	}

	var (
		i, j, k int
		sum     bignum.Number
		pivot   bignum.Number
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sum = bignum.Zero()
			for k = 0; k < i; k++ {
				sum = sum.Add(l.data[i*n+k].Mul(u.data[k*n+j]))
			}
			u.data[i*n+j] = a.data[i*n+j].Sub(sum)
		}

		pivot = u.data[i*n+i]
		if pivot.IsZero() {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("zero pivot at %d: %w", i, ErrSingular))
		}

		for j = i + 1; j < n; j++ {
			sum = bignum.Zero()
			for k = 0; k < i; k++ {
				sum = sum.Add(l.data[j*n+k].Mul(u.data[k*n+i]))
			}
			l.data[j*n+i] = a.data[j*n+i].Sub(sum).MustQuo(pivot)
		}
	}

	return l, u, nil
}

// Inverse returns A⁻¹ by exact Gauss–Jordan elimination on [A | I].
// Implementation:
//   - Stage 1: validate m (not nil, square); copy A; start the right half at I.
//   - Stage 2: for each column pick the first row at or below the diagonal
//     with a non-zero entry, swap it up and normalize it.
//   - Stage 3: eliminate the column from every other row.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular when a column has no non-zero pivot, i.e. det(A) == 0.
//
// Determinism:
//   - First-non-zero pivot choice; the result is exact, so A*Inverse(A) == I.
//
// Complexity:
//   - Time O(n^3) exact operations, Space O(n^2).
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := src.dim.Rows
	a := src.clone()
	inv, _ := NewIdentity(n)

	var (
		col, row, p int
		pivInv      bignum.Number
		factor      bignum.Number
	)
	for col = 0; col < n; col++ {
		p = pivotRow(a, col, col)
		if p < 0 {
			return nil, matrixErrorf(opInverse, fmt.Errorf("column %d: %w", col, ErrSingular))
		}
		swapRows(a, p, col)
		swapRows(inv, p, col)

		pivInv, err = a.data[col*n+col].Inv()
		if err != nil {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		scaleRow(a, col, pivInv)
		scaleRow(inv, col, pivInv)

		for row = 0; row < n; row++ {
			if row == col {
				continue
			}
			factor = a.data[row*n+col]
			if factor.IsZero() {
				continue
			}
			subRowMultiple(a, row, col, factor)
			subRowMultiple(inv, row, col, factor)
		}
	}

	return inv, nil
}

// Det returns the exact determinant of a square matrix by Gaussian
// elimination with row swaps. A singular matrix yields 0 and no error.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Det(m Matrix) (bignum.Number, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return bignum.Number{}, matrixErrorf(opDet, err)
	}
	src, err := toDense(m)
	if err != nil {
		return bignum.Number{}, matrixErrorf(opDet, err)
	}
	n := src.dim.Rows
	a := src.clone()
	det := bignum.One()

	var col, row, p int
	for col = 0; col < n; col++ {
		p = pivotRow(a, col, col)
		if p < 0 {
			return bignum.Zero(), nil
		}
		if p != col {
			swapRows(a, p, col)
			det = det.Neg()
		}
		pivot := a.data[col*n+col]
		det = det.Mul(pivot)
		for row = col + 1; row < n; row++ {
			if a.data[row*n+col].IsZero() {
				continue
			}
			subRowMultiple(a, row, col, a.data[row*n+col].MustQuo(pivot))
		}
	}

	return det, nil
}

// pivotRow returns the first row r ≥ from with a[r,col] != 0, or -1.
func pivotRow(a *Dense, col, from int) int {
	for r := from; r < a.dim.Rows; r++ {
		if !a.data[r*a.dim.Cols+col].IsZero() {
			return r
		}
	}

	return -1
}

// swapRows exchanges rows r1 and r2 in place.
func swapRows(a *Dense, r1, r2 int) {
	if r1 == r2 {
		return
	}
	c := a.dim.Cols
	x, y := a.data[r1*c:(r1+1)*c], a.data[r2*c:(r2+1)*c]
	for j := range x {
		x[j], y[j] = y[j], x[j]
	}
}

// scaleRow multiplies row r by s in place.
func scaleRow(a *Dense, r int, s bignum.Number) {
	c := a.dim.Cols
	row := a.data[r*c : (r+1)*c]
	for j := range row {
		row[j] = row[j].Mul(s)
	}
}

// subRowMultiple performs row[dst] -= factor * row[src] in place.
func subRowMultiple(a *Dense, dst, src int, factor bignum.Number) {
	c := a.dim.Cols
	d, s := a.data[dst*c:(dst+1)*c], a.data[src*c:(src+1)*c]
	for j := range d {
		if s[j].IsZero() {
			continue
		}
		d[j] = d[j].Sub(factor.Mul(s[j]))
	}
}
