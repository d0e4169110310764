// Package bignum provides exact arbitrary-precision arithmetic built from
// decimal digit sequences.
//
// The package layers four value types, leaves first:
//
//   - Whole:    unsigned integer stored as little-endian base-10 digits.
//   - Integer:  signed integer: a sign flag over a Whole magnitude.
//   - Rational: exact fraction Integer/Whole kept in lowest terms.
//   - Number:   the public value type most callers want; it forwards every
//     operation to an owned Rational.
//
// None of the types depend on hardware integer limits: digit sequences grow
// as needed. All arithmetic returns fresh values and never mutates operands,
// so values can be copied and shared freely between goroutines for reading.
// The only in-place mutator is (*Whole).SetDigit; Clone a Whole before
// mutating it if copies must stay independent.
//
// Division by zero is never an infinite loop or undefined behavior: every
// dividing operation (QuoRem, Div, Mod, Quo, Inv, NewRational with a zero
// denominator) returns ErrDivisionByZero, matched with errors.Is.
//
// Rendering:
//
//	Whole, Integer    "1234", "-56"
//	Rational, Number  "3/4", "-1/10", and "7" when the denominator is 1
//
// FracString always renders "<num>/<den>", including "7/1".
//
// Quick start:
//
//	a := bignum.MustParseNumber("1/2")
//	b := bignum.MustParseNumber("1/3")
//	fmt.Println(a.Add(b)) // 5/6
package bignum
