// SPDX-License-Identifier: MIT

// Package bignum - Rational: exact fraction in lowest terms.
//
// Invariants (re-established after every operation):
//   - den > 0 (a zero denominator is rejected with ErrDivisionByZero).
//   - GCD(|num|, den) == 1.
//   - The sign lives on the numerator only.
//
// The zero value is 0/1.

package bignum

import (
	"strconv"
	"strings"
)

// Rational is an exact fraction num/den kept in lowest terms.
type Rational struct {
	num Integer
	den Whole // nil digits in the zero value mean 1
}

// one is the Whole 1. It is never written to.
var one = NewWhole(1)

// d returns the denominator, reading the zero value as 1.
func (r Rational) d() Whole {
	if len(r.den.digits) == 0 {
		return one
	}

	return r.den
}

// reduce builds the canonical fraction (neg ? -1 : 1) * num / den.
// den must be non-zero.
func reduce(neg bool, num, den Whole) Rational {
	g := GCD(num, den)
	if g.IsOne() {
		return Rational{num: mkInteger(neg, num), den: den.normalized()}
	}
	n, _, _ := QuoRem(num, g) // g != 0 because den != 0
	d, _, _ := QuoRem(den, g)

	return Rational{num: mkInteger(neg, n), den: d}
}

// fromParts builds the canonical fraction num/den; den must be non-zero.
func fromParts(num Integer, den Whole) Rational { return reduce(num.neg, num.mag, den) }

// NewRational returns num/den reduced by GCD(|num|, den) with the sign
// reapplied to the reduced numerator.
//
// Errors:
//   - ErrDivisionByZero if den == 0.
func NewRational(num Integer, den Whole) (Rational, error) {
	if den.IsZero() {
		return Rational{}, bignumErrorf(opNewRational, ErrDivisionByZero)
	}

	return fromParts(num, den.Clone()), nil
}

// NewRationalInt64 returns n/d from native integers.
// ErrDivisionByZero if d == 0.
func NewRationalInt64(n int64, d uint64) (Rational, error) {
	return NewRational(NewInteger(n), NewWhole(d))
}

// RationalFromInteger returns n/1.
func RationalFromInteger(n Integer) Rational {
	return Rational{num: mkInteger(n.neg, n.mag.Clone()), den: one}
}

// RationalFromWhole returns w/1.
func RationalFromWhole(w Whole) Rational {
	return Rational{num: mkInteger(false, w.Clone()), den: one}
}

// Numerator returns the reduced numerator (independent copy).
func (r Rational) Numerator() Integer { return mkInteger(r.num.neg, r.num.mag.Clone()) }

// Denominator returns the reduced, strictly positive denominator (independent copy).
func (r Rational) Denominator() Whole { return r.d().Clone() }

// IsInteger reports whether the denominator is 1.
func (r Rational) IsInteger() bool { return r.d().IsOne() }

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool { return r.num.IsZero() }

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int { return r.num.Sign() }

// Neg returns -r.
func (r Rational) Neg() Rational { return Rational{num: r.num.Neg(), den: r.d()} }

// Abs returns |r|.
func (r Rational) Abs() Rational { return Rational{num: mkInteger(false, r.num.mag), den: r.d()} }

// Add returns r + s, cross-multiplied over r.den*s.den then reduced.
func (r Rational) Add(s Rational) Rational {
	rd, sd := r.d(), s.d()
	num := r.num.Mul(Integer{mag: sd}).Add(Integer{mag: rd}.Mul(s.num))

	return fromParts(num, rd.Mul(sd))
}

// Sub returns r - s, cross-multiplied over r.den*s.den then reduced.
func (r Rational) Sub(s Rational) Rational {
	rd, sd := r.d(), s.d()
	num := r.num.Mul(Integer{mag: sd}).Sub(Integer{mag: rd}.Mul(s.num))

	return fromParts(num, rd.Mul(sd))
}

// Mul returns r * s: numerator × numerator over denominator × denominator.
func (r Rational) Mul(s Rational) Rational {
	return fromParts(r.num.Mul(s.num), r.d().Mul(s.d()))
}

// Inv returns 1/r. ErrDivisionByZero if r == 0.
func (r Rational) Inv() (Rational, error) {
	if r.IsZero() {
		return Rational{}, bignumErrorf(opInv, ErrDivisionByZero)
	}

	// Already coprime: swapping keeps lowest terms.
	return Rational{num: mkInteger(r.num.neg, r.d()), den: r.num.mag}, nil
}

// Quo returns r / s as r multiplied by the reciprocal of s.
// ErrDivisionByZero if s == 0.
func (r Rational) Quo(s Rational) (Rational, error) {
	if s.IsZero() {
		return Rational{}, bignumErrorf(opQuo, ErrDivisionByZero)
	}
	inv, _ := s.Inv()

	return r.Mul(inv), nil
}

// Pow returns r raised to the integer power e by repeated squaring.
// r^0 == 1 for every r, including 0.
// ErrDivisionByZero for a negative exponent of zero.
func (r Rational) Pow(e int64) (Rational, error) {
	base := r
	if e < 0 {
		inv, err := r.Inv()
		if err != nil {
			return Rational{}, bignumErrorf(opPow, ErrDivisionByZero)
		}
		base = inv
	}
	// Work on the magnitude of e without overflowing at math.MinInt64.
	n := uint64(e)
	if e < 0 {
		n = uint64(-(e + 1)) + 1
	}
	acc := Rational{num: Integer{mag: one}, den: one}
	for n > 0 {
		if n&1 == 1 {
			acc = acc.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}

	return acc, nil
}

// Cmp compares r and s by cross multiplication, with no floating point:
// r > s ⇔ r.num*s.den > s.num*r.den (denominators are positive).
func (r Rational) Cmp(s Rational) int {
	return r.num.Mul(Integer{mag: s.d()}).Cmp(s.num.Mul(Integer{mag: r.d()}))
}

// Equal reports whether r == s.
func (r Rational) Equal(s Rational) bool {
	// Canonical form makes structural comparison exact.
	return r.num.Equal(s.num) && r.d().Equal(s.d())
}

// Less reports whether r < s.
func (r Rational) Less(s Rational) bool { return r.Cmp(s) < 0 }

// LessOrEqual reports whether r <= s.
func (r Rational) LessOrEqual(s Rational) bool { return r.Cmp(s) <= 0 }

// Greater reports whether r > s.
func (r Rational) Greater(s Rational) bool { return r.Cmp(s) > 0 }

// GreaterOrEqual reports whether r >= s.
func (r Rational) GreaterOrEqual(s Rational) bool { return r.Cmp(s) >= 0 }

// String renders "<num>/<den>", or just "<num>" when the denominator is 1.
func (r Rational) String() string {
	if r.IsInteger() {
		return r.num.String()
	}

	return r.FracString()
}

// FracString always renders "<num>/<den>", including "<num>/1".
func (r Rational) FracString() string {
	return r.num.String() + "/" + r.d().String()
}

// DecimalString renders r in positional notation truncated (toward zero)
// to the given number of fractional digits. digits <= 0 renders the
// truncated integer part only.
func (r Rational) DecimalString(digits int) string {
	den := r.d()
	q, rem, _ := QuoRem(r.num.mag, den) // den > 0
	var sb strings.Builder
	if r.num.neg {
		sb.WriteByte('-')
	}
	sb.WriteString(q.String())
	if digits <= 0 {
		return sb.String()
	}
	sb.WriteByte('.')
	ten := NewWhole(Base)
	var d Whole
	for i := 0; i < digits; i++ {
		d, rem, _ = QuoRem(rem.Mul(ten), den)
		sb.WriteString(d.String())
	}

	return sb.String()
}

// float64Digits is the count of significant decimal digits Float64 feeds
// to strconv.ParseFloat; three more than float64 needs to round correctly.
const float64Digits = 20

// Float64 returns the float64 nearest to r. The quotient is taken to
// float64Digits significant digits at any magnitude, with a trailing sticky
// digit when the division is inexact so ParseFloat rounds in the right
// direction. Magnitudes beyond float64 saturate to ±Inf or flush to ±0.
func (r Rational) Float64() float64 {
	num, den := r.num.mag, r.d()
	if num.IsZero() {
		return 0
	}
	s := den.Len() - num.Len() + float64Digits
	if s > 0 {
		num = num.Mul(pow10(s))
	} else if s < 0 {
		den = den.Mul(pow10(-s))
	}
	q, rem, _ := QuoRem(num, den) // den > 0

	var sb strings.Builder
	if r.num.neg {
		sb.WriteByte('-')
	}
	sb.WriteString(q.String())
	if !rem.IsZero() {
		sb.WriteByte('1')
		s++
	}
	sb.WriteByte('e')
	sb.WriteString(strconv.Itoa(-s))
	f, _ := strconv.ParseFloat(sb.String(), 64)

	return f
}

// pow10 returns 10^k for k >= 0.
func pow10(k int) Whole {
	d := make([]uint8, k+1)
	d[k] = 1

	return Whole{digits: d}
}
