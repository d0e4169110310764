// SPDX-License-Identifier: MIT

// Package fixed provides a compact ratio type over native 64-bit integers,
// with overflow-safe arithmetic and iterative approximations of irrational
// results (square roots and rational powers).
//
// What & Why:
//   - Number stores numerator/denominator as int64, reduced by GCD after
//     every operation. It is the fast, bounded sibling of bignum.Number:
//     no allocation, but a finite range.
//   - Overflow is detected before it happens (AddIsSafe, SubIsSafe,
//     MulIsSafe) and routes to the Undefined sentinel instead of wrapping.
//   - A zero denominator encodes the non-finite sentinels:
//     +1/0 is Inf(), -1/0 is -Inf(), 0/0 is Undefined().
//
// Sentinel algebra:
//   - x / 0 is ±Inf for x != 0 and Undefined for 0 / 0.
//   - Any arithmetic with a non-finite operand yields Undefined, except
//     Neg which mirrors ±Inf.
//   - Ordering is total: Undefined < -Inf < every finite value < +Inf.
//
// Irrationals:
//   - Sqrt and PowRatio run Newton iterations to a caller-given rational
//     precision. Iterates are integer numerators over the grid
//     1/ceil(1/prec) so denominators stay bounded; iteration stops once two
//     successive iterates differ by at most prec (or MaxIterations is
//     reached). Root degrees above MaxRootDegree yield Undefined.
//   - Pow with an integer exponent is exact (repeated squaring).
//
// The zero value of Number is 0 and ready to use.
//
// Quick start:
//
//	x := fixed.NewRatio(1, 10)          // 1/10
//	y := fixed.FromFloat64(0.1)         // 1/10 (1e-6 resolution)
//	fmt.Println(x.Equal(y), x)          // true 1/10
//	r := fixed.Sqrt(fixed.New(2), fixed.NewRatio(1, 10000))
//	fmt.Println(r.Float64())            // ≈1.4142
//
// The exact and fixed families are deliberately separate value types; there
// is no implicit conversion between them.
package fixed
