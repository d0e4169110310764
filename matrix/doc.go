// SPDX-License-Identifier: MIT

// Package matrix provides a dense, row-major matrix of exact rational numbers
// (bignum.Number) and the linear-algebra kernels that operate on it.
//
// What it offers:
//
//   - Dense: a fixed-Dimension container, zero-filled on construction, with
//     bounds-checked At/Set that return ErrOutOfRange instead of panicking.
//   - In-place operators AddInPlace, SubInPlace, ScaleInPlace and ShiftInPlace.
//   - Kernels returning fresh matrices: Add, Sub, Hadamard, Scale, Shift, Neg,
//     Transpose, Mul, MatVec, Trace, LU, Inverse and Det.
//   - Facades: NewZeros, NewIdentity, ZerosLike, IdentityLike, Equal,
//     Symmetrize, RowSums, ColSums, and Format with rendering options.
//
// Because every element is exact, identities hold with no tolerance:
// A*I == A, Transpose(Transpose(A)) == A and A*Inverse(A) == I compare equal
// element by element via Equal.
//
// Errors are package sentinels matched with errors.Is. Shape errors name the
// expected and actual Dimension:
//
//	Add: expected (2, 2), got (3, 2): matrix: dimension mismatch
//
// Quick start:
//
//	a, _ := matrix.NewDenseFrom([][]bignum.Number{
//		{bignum.NewNumber(2), bignum.NewNumber(1)},
//		{bignum.NewNumber(1), bignum.NewNumber(1)},
//	})
//	inv, _ := matrix.Inverse(a)
//	fmt.Print(inv) // [1, -1]\n[-1, 2]\n
package matrix
