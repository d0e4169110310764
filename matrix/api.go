// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Each facade delegates to the canonical kernel; no loop duplication.
//
// Hints:
//   - Prefer passing *Dense to unlock fast paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.

package matrix

import "github.com/katalvlaran/exact/bignum"

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	one := bignum.One()
	for i := 0; i < n; i++ {
		id.data[i*n+i] = one
	}

	return id, nil
}

// CloneMatrix returns m.Clone(); nil in, nil out.
func CloneMatrix(m Matrix) Matrix {
	if ValidateNotNil(m) != nil {
		return nil
	}

	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDenseDim(m.Dim())
}

// IdentityLike returns I with dimension Rows(m); m must be square.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// ---------- Aliases (facades map 1:1 to kernels) ----------

// Sum is an alias for Add.
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub.
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is an alias for Transpose.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// InverseOf is an alias for Inverse.
func InverseOf(m Matrix) (Matrix, error) { return Inverse(m) }

// LUDecompose is an alias for LU.
func LUDecompose(m Matrix) (Matrix, Matrix, error) { return LU(m) }

// ---------- Convenience facades (compositions only) ----------

// Equal reports whether a and b have the same dimension and exactly equal
// elements. Two nil matrices are equal; nil and non-nil are not.
//
// Complexity: O(r*c) comparisons, stopping at the first difference.
func Equal(a, b Matrix) bool {
	aNil, bNil := ValidateNotNil(a) != nil, ValidateNotNil(b) != nil
	if aNil || bNil {
		return aNil && bNil
	}
	if !a.Dim().Equal(b.Dim()) {
		return false
	}
	da, err := toDense(a)
	if err != nil {
		return false
	}
	db, err := toDense(b)
	if err != nil {
		return false
	}
	for idx := range da.data {
		if !da.data[idx].Equal(db.data[idx]) {
			return false
		}
	}

	return true
}

// Symmetrize returns (m + mᵀ)/2. Composition: Transpose → Add → Scale.
// m must be square; the result passes ValidateSymmetric.
func Symmetrize(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	sum, err := Add(m, mt)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}

	return Scale(sum, bignum.MustFraction(1, 2))
}

// RowSums returns r where r[i] = Σ_j m[i,j], computed as MatVec(m, ones).
func RowSums(m Matrix) ([]bignum.Number, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}

	return MatVec(m, ones(m.Cols()))
}

// ColSums returns c where c[j] = Σ_i m[i,j], computed as MatVec(mᵀ, ones).
func ColSums(m Matrix) ([]bignum.Number, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("ColSums", err)
	}

	return MatVec(mt, ones(mt.Cols()))
}

// ones returns a length-n vector of exact ones.
func ones(n int) []bignum.Number {
	v := make([]bignum.Number, n)
	one := bignum.One()
	for i := range v {
		v[i] = one
	}

	return v
}
