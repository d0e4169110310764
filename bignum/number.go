// SPDX-License-Identifier: MIT

package bignum

import (
	"encoding"
	"fmt"
	"strings"
)

// Number is the public exact value type: a plain owned Rational with value
// semantics. Every operation returns a fresh Number; copies never alias.
// The zero value is 0.
type Number struct {
	r Rational
}

// Compile-time assertions for the text and Stringer interfaces.
var (
	_ fmt.Stringer             = Number{}
	_ encoding.TextMarshaler   = Number{}
	_ encoding.TextUnmarshaler = (*Number)(nil)
)

// Zero returns 0.
func Zero() Number { return Number{} }

// One returns 1.
func One() Number { return NewNumber(1) }

// NewNumber returns the integral Number n.
func NewNumber(n int64) Number { return Number{r: Rational{num: NewInteger(n), den: one}} }

// NewFraction returns num/den in lowest terms.
// ErrDivisionByZero if den == 0.
func NewFraction(num int64, den uint64) (Number, error) {
	r, err := NewRationalInt64(num, den)
	if err != nil {
		return Number{}, bignumErrorf(opNewFraction, err)
	}

	return Number{r: r}, nil
}

// NumberFromRational wraps r.
func NumberFromRational(r Rational) Number { return Number{r: r} }

// NumberFromInteger returns n/1.
func NumberFromInteger(n Integer) Number { return Number{r: RationalFromInteger(n)} }

// Rational returns the underlying exact fraction.
func (n Number) Rational() Rational { return n.r }

// Numerator returns the reduced numerator.
func (n Number) Numerator() Integer { return n.r.Numerator() }

// Denominator returns the reduced, strictly positive denominator.
func (n Number) Denominator() Whole { return n.r.Denominator() }

// IsZero reports whether n == 0.
func (n Number) IsZero() bool { return n.r.IsZero() }

// IsInteger reports whether n has no fractional part.
func (n Number) IsInteger() bool { return n.r.IsInteger() }

// Sign returns -1, 0 or +1.
func (n Number) Sign() int { return n.r.Sign() }

// Add returns n + m.
func (n Number) Add(m Number) Number { return Number{r: n.r.Add(m.r)} }

// Sub returns n - m.
func (n Number) Sub(m Number) Number { return Number{r: n.r.Sub(m.r)} }

// Mul returns n * m.
func (n Number) Mul(m Number) Number { return Number{r: n.r.Mul(m.r)} }

// Quo returns n / m. ErrDivisionByZero if m == 0.
func (n Number) Quo(m Number) (Number, error) {
	q, err := n.r.Quo(m.r)
	if err != nil {
		return Number{}, err
	}

	return Number{r: q}, nil
}

// Inv returns 1/n. ErrDivisionByZero if n == 0.
func (n Number) Inv() (Number, error) {
	q, err := n.r.Inv()
	if err != nil {
		return Number{}, err
	}

	return Number{r: q}, nil
}

// Pow returns n^e for an integer exponent e.
// ErrDivisionByZero for a negative exponent of zero.
func (n Number) Pow(e int64) (Number, error) {
	p, err := n.r.Pow(e)
	if err != nil {
		return Number{}, err
	}

	return Number{r: p}, nil
}

// Neg returns -n.
func (n Number) Neg() Number { return Number{r: n.r.Neg()} }

// Abs returns |n|.
func (n Number) Abs() Number { return Number{r: n.r.Abs()} }

// Cmp compares n and m and returns -1, 0 or +1.
func (n Number) Cmp(m Number) int { return n.r.Cmp(m.r) }

// Equal reports whether n == m.
func (n Number) Equal(m Number) bool { return n.r.Equal(m.r) }

// Less reports whether n < m.
func (n Number) Less(m Number) bool { return n.r.Less(m.r) }

// LessOrEqual reports whether n <= m.
func (n Number) LessOrEqual(m Number) bool { return n.r.LessOrEqual(m.r) }

// Greater reports whether n > m.
func (n Number) Greater(m Number) bool { return n.r.Greater(m.r) }

// GreaterOrEqual reports whether n >= m.
func (n Number) GreaterOrEqual(m Number) bool { return n.r.GreaterOrEqual(m.r) }

// Float64 returns the nearest float64 approximation of n.
func (n Number) Float64() float64 { return n.r.Float64() }

// DecimalString renders n truncated to the given number of fractional digits.
func (n Number) DecimalString(digits int) string { return n.r.DecimalString(digits) }

// String renders the rational's canonical form: "1/10", or "1" when the
// denominator reduces to 1.
func (n Number) String() string { return n.r.String() }

// MarshalText implements encoding.TextMarshaler using String.
func (n Number) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler using ParseNumber.
func (n *Number) UnmarshalText(text []byte) error {
	v, err := ParseNumber(string(text))
	if err != nil {
		return err
	}
	*n = v

	return nil
}

// ParseNumber parses an exact number in one of three forms:
//
//	"-12"        integer
//	"3/4"        fraction (sign on the numerator only, denominator > 0)
//	"-0.125"     finite decimal, converted exactly (-1/8)
//
// Surrounding whitespace is ignored.
//
// Errors:
//   - ErrSyntax for malformed input.
//   - ErrDivisionByZero for a zero denominator.
func ParseNumber(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '/'); i >= 0 {
		num, err := ParseInteger(strings.TrimSpace(s[:i]))
		if err != nil {
			return Number{}, bignumErrorf(opParseNumber, err)
		}
		denText := strings.TrimSpace(s[i+1:])
		if denText != "" && (denText[0] == '+' || denText[0] == '-') {
			return Number{}, bignumErrorf(opParseNumber, ErrSyntax)
		}
		den, err := ParseWhole(denText)
		if err != nil {
			return Number{}, bignumErrorf(opParseNumber, err)
		}
		r, err := NewRational(num, den)
		if err != nil {
			return Number{}, bignumErrorf(opParseNumber, err)
		}
		return Number{r: r}, nil
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return parseDecimal(s[:i], s[i+1:])
	}
	num, err := ParseInteger(s)
	if err != nil {
		return Number{}, bignumErrorf(opParseNumber, err)
	}

	return NumberFromInteger(num), nil
}

// parseDecimal converts "<intPart>.<fracPart>" exactly into a fraction over
// a power of ten.
func parseDecimal(intPart, fracPart string) (Number, error) {
	neg := false
	switch {
	case strings.HasPrefix(intPart, "-"):
		neg = true
		intPart = intPart[1:]
	case strings.HasPrefix(intPart, "+"):
		intPart = intPart[1:]
	}
	if intPart == "" && fracPart == "" {
		return Number{}, bignumErrorf(opParseNumber, ErrSyntax)
	}
	if intPart == "" {
		intPart = "0"
	}
	if fracPart == "" {
		fracPart = "0"
	}
	if fracPart[0] == '+' || fracPart[0] == '-' {
		return Number{}, bignumErrorf(opParseNumber, ErrSyntax)
	}
	mag, err := ParseWhole(intPart + fracPart)
	if err != nil {
		return Number{}, bignumErrorf(opParseNumber, ErrSyntax)
	}
	den := make([]uint8, len(fracPart)+1)
	den[len(fracPart)] = 1 // 10^len(fracPart)

	return Number{r: reduce(neg, mag, wholeOf(den))}, nil
}
