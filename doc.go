// Package exact is a toolkit for computing with numbers that never round.
//
// What is in the box?
//
//	bignum/   : arbitrary-precision Whole, Integer and Rational values and
//	            the Number facade; parsing from "3", "-1/2" and "0.125"
//	fixed/    : a compact int64 ratio with Inf/Undefined sentinels and
//	            Newton-based Sqrt and PowRatio on a precision grid
//	matrix/   : a dense matrix of bignum.Number with exact Mul, LU,
//	            Inverse and Det
//	cmd/exact : a CLI with an RPN calculator, a REPL and matrix commands
//	            over YAML/TOML documents
//
// Why exact?
//
//   - 0.1 + 0.2 == 3/10, always
//   - A * Inverse(A) == I, compared element by element with no tolerance
//   - division by zero is an error value, never a panic or NaN
//
// Quick example:
//
//	a := bignum.MustParseNumber("1/2")
//	b := bignum.MustParseNumber("1/3")
//	fmt.Println(a.Add(b)) // 5/6
//
// Import:
//
//	import "github.com/katalvlaran/exact/bignum"
//	import "github.com/katalvlaran/exact/matrix"
package exact
