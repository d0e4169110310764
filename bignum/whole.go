// SPDX-License-Identifier: MIT

// Package bignum - Whole: unsigned arbitrary-precision integer.
//
// Purpose:
//   - Store a non-negative integer as a little-endian sequence of base-10 digits.
//   - Provide schoolbook add/sub/mul and digit-wise long division.
//   - Serve as the magnitude of Integer and the denominator of Rational.
//
// Representation:
//   - digits[0] is the least-significant digit; every digit is < Base.
//   - The zero value (nil digits) is the number 0 and reads as [0].
//   - Results of arithmetic are trimmed: no zero digits above the most
//     significant non-zero digit, and zero is exactly one digit.
//
// Complexity quicksheet (n, m = digit counts):
//   - Add/Sub: O(max(n,m)); Mul: O(n*m); QuoRem: O(n*m*Base); Cmp: O(n).

package bignum

import (
	"fmt"
	"math"
	"strings"
)

// Base is the radix of the digit sequence backing Whole.
const Base = 10

// maxUint64Digits bounds the digit count of any uint64 value.
const maxUint64Digits = 20

// zeroDigits is the canonical digit view of zero. It is never written to.
var zeroDigits = []uint8{0}

// Whole is an unsigned arbitrary-precision integer.
// The zero value is 0 and ready to use.
type Whole struct {
	digits []uint8 // little-endian base-10 digits; nil means 0
}

// NewWhole decomposes n into base-10 digits, least-significant first.
// At least one digit is always present: NewWhole(0) is [0].
// Complexity: O(log10 n).
func NewWhole(n uint64) Whole {
	digits := make([]uint8, 0, maxUint64Digits)
	for {
		digits = append(digits, uint8(n%Base))
		n /= Base
		if n == 0 {
			break
		}
	}

	return Whole{digits: digits}
}

// wholeOf wraps a freshly built digit slice, trimming high zero digits.
// The slice must not be shared with any other Whole.
func wholeOf(digits []uint8) Whole {
	return Whole{digits: trimDigits(digits)}
}

// trimDigits drops zero digits above the most significant non-zero digit.
// An empty or all-zero input collapses to a single zero digit.
func trimDigits(d []uint8) []uint8 {
	n := len(d)
	for n > 1 && d[n-1] == 0 {
		n--
	}
	if n == 0 {
		return []uint8{0}
	}

	return d[:n]
}

// view returns the stored digits, substituting [0] for the zero value.
func (w Whole) view() []uint8 {
	if len(w.digits) == 0 {
		return zeroDigits
	}

	return w.digits
}

// sig returns the significant digits: view() without high zero padding
// that SetDigit may have introduced. No allocation.
func (w Whole) sig() []uint8 {
	d := w.view()
	n := len(d)
	for n > 1 && d[n-1] == 0 {
		n--
	}

	return d[:n]
}

// Len returns the number of stored digits (at least 1).
// Complexity: O(1).
func (w Whole) Len() int { return len(w.view()) }

// Base returns the radix of the digit sequence (always 10).
func (w Whole) Base() uint8 { return Base }

// Digit returns the digit at position i (0 = least significant).
// Positions beyond the stored length read as 0 (implicit zero padding).
func (w Whole) Digit(i int) uint8 {
	if i < 0 || i >= len(w.digits) {
		return 0
	}

	return w.digits[i]
}

// SetDigit writes digit d at position pos in place.
//
// Behavior highlights:
//   - pos inside the stored length: the digit is overwritten.
//   - pos beyond the stored length and d != 0: storage grows with zero
//     digits up to pos.
//   - pos beyond the stored length and d == 0: no-op (implicit padding
//     already reads as zero).
//
// SetDigit writes through to storage shared with copies of w; Clone first
// when a copy must stay independent. Writing zero into the current top digit
// leaves high zero padding behind, which comparisons and rendering ignore.
//
// Panics if d >= Base or pos < 0 (programmer error).
func (w *Whole) SetDigit(pos int, d uint8) {
	if d >= Base {
		panic(fmt.Sprintf("bignum: SetDigit: digit %d out of range [0,%d)", d, Base))
	}
	if pos < 0 {
		panic(fmt.Sprintf("bignum: SetDigit: negative position %d", pos))
	}
	if pos < len(w.digits) {
		w.digits[pos] = d
		return
	}
	if d == 0 {
		return
	}
	grown := make([]uint8, pos+1)
	copy(grown, w.view())
	grown[pos] = d
	w.digits = grown
}

// Clone returns a deep copy of w that shares no storage with it.
func (w Whole) Clone() Whole {
	src := w.sig()
	out := make([]uint8, len(src))
	copy(out, src)

	return Whole{digits: out}
}

// normalized returns w without high zero padding in fresh storage, so the
// result never aliases an operand or zeroDigits.
func (w Whole) normalized() Whole { return w.Clone() }

// IsZero reports whether w == 0.
func (w Whole) IsZero() bool {
	d := w.sig()
	return len(d) == 1 && d[0] == 0
}

// IsOne reports whether w == 1.
func (w Whole) IsOne() bool {
	d := w.sig()
	return len(d) == 1 && d[0] == 1
}

// Add returns w + v using schoolbook addition with carry.
// The result has at most one more digit than the longer operand.
// Complexity: O(max(n, m)).
func (w Whole) Add(v Whole) Whole {
	a, b := w.sig(), v.sig()
	if len(a) < len(b) {
		a, b = b, a // a is the longer operand
	}
	out := make([]uint8, len(a)+1)
	var carry, s uint8
	for i := range a {
		s = a[i] + carry
		if i < len(b) {
			s += b[i]
		}
		out[i] = s % Base
		carry = s / Base
	}
	out[len(a)] = carry

	return wholeOf(out)
}

// Inc returns w + 1.
func (w Whole) Inc() Whole { return w.Add(NewWhole(1)) }

// Mul returns w * v using schoolbook long multiplication.
// The shorter operand drives the outer loop; each partial product is
// accumulated into the result shifted by its position.
// Complexity: O(n*m).
func (w Whole) Mul(v Whole) Whole {
	a, b := w.sig(), v.sig()
	if len(a) < len(b) {
		a, b = b, a // b is the shorter operand (outer loop)
	}
	out := make([]uint8, len(a)+len(b))
	var i, j int
	var carry, t uint8
	for i = 0; i < len(b); i++ {
		if b[i] == 0 {
			continue
		}
		carry = 0
		for j = 0; j < len(a); j++ {
			// out <= 9, product <= 81, carry <= 9: fits in uint8.
			t = out[i+j] + b[i]*a[j] + carry
			out[i+j] = t % Base
			carry = t / Base
		}
		out[i+len(a)] = carry
	}

	return wholeOf(out)
}

// Sub returns w - v as an Integer, since the result may be negative.
// When w < v the result is computed as -(v - w).
// Complexity: O(max(n, m)).
func (w Whole) Sub(v Whole) Integer {
	if w.Less(v) {
		return v.Sub(w).Neg()
	}

	return Integer{mag: subMag(w, v)}
}

// subMag returns a - b for a >= b, propagating borrows digit by digit.
func subMag(a, b Whole) Whole {
	x, y := a.sig(), b.sig()
	out := make([]uint8, len(x))
	var borrow, d uint8
	for i := range x {
		d = borrow
		if i < len(y) {
			d += y[i]
		}
		if x[i] < d {
			out[i] = x[i] + Base - d
			borrow = 1
		} else {
			out[i] = x[i] - d
			borrow = 0
		}
	}

	return wholeOf(out)
}

// shiftIn returns w*Base + d.
func (w Whole) shiftIn(d uint8) Whole {
	src := w.sig()
	if len(src) == 1 && src[0] == 0 {
		return Whole{digits: []uint8{d}}
	}
	out := make([]uint8, len(src)+1)
	out[0] = d
	copy(out[1:], src)

	return Whole{digits: out}
}

// Cmp compares w and v and returns -1, 0 or +1.
// A longer significant digit sequence wins outright; equal lengths compare
// digit by digit from the most significant end, first mismatch decides.
// Complexity: O(n).
func (w Whole) Cmp(v Whole) int {
	a, b := w.sig(), v.sig()
	if len(a) != len(b) {
		if len(a) > len(b) {
			return 1
		}
		return -1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			return -1
		}
	}

	return 0
}

// Equal reports whether w == v.
func (w Whole) Equal(v Whole) bool { return w.Cmp(v) == 0 }

// Less reports whether w < v.
func (w Whole) Less(v Whole) bool { return w.Cmp(v) < 0 }

// LessOrEqual reports whether w <= v.
func (w Whole) LessOrEqual(v Whole) bool { return w.Cmp(v) <= 0 }

// Greater reports whether w > v.
func (w Whole) Greater(v Whole) bool { return w.Cmp(v) > 0 }

// GreaterOrEqual reports whether w >= v.
func (w Whole) GreaterOrEqual(v Whole) bool { return w.Cmp(v) >= 0 }

// QuoRem returns the quotient and remainder of a / b using long division on
// the digit sequence: digits of a are shifted into a running remainder from
// the most significant end, and each quotient digit counts how many times b
// still fits (at most Base-1 subtractions per digit).
//
// Errors:
//   - ErrDivisionByZero if b == 0.
//
// Complexity: O(n*m*Base).
func QuoRem(a, b Whole) (q, r Whole, err error) {
	if b.IsZero() {
		return Whole{}, Whole{}, bignumErrorf(opQuoRem, ErrDivisionByZero)
	}
	x := a.sig()
	qd := make([]uint8, len(x))
	var d uint8
	for i := len(x) - 1; i >= 0; i-- {
		r = r.shiftIn(x[i])
		d = 0
		for r.Cmp(b) >= 0 {
			r = subMag(r, b)
			d++
		}
		qd[i] = d
	}

	return wholeOf(qd), r.normalized(), nil
}

// Div returns the quotient a / b (truncated). ErrDivisionByZero if b == 0.
func Div(a, b Whole) (Whole, error) {
	q, _, err := QuoRem(a, b)
	return q, err
}

// Mod returns the remainder a % b. ErrDivisionByZero if b == 0.
func Mod(a, b Whole) (Whole, error) {
	_, r, err := QuoRem(a, b)
	return r, err
}

// GCD returns the greatest common divisor of a and b using Euclid's
// remainder algorithm.
//
// Contract:
//   - GCD(a, 0) == a, GCD(a, a) == a, GCD(a, b) == GCD(b, a).
//   - GCD(0, 0) == 0.
func GCD(a, b Whole) Whole {
	var r Whole
	for !b.IsZero() {
		_, r, _ = QuoRem(a, b) // b != 0 here
		a, b = b, r
	}

	return a.normalized()
}

// Uint64 returns w as a uint64 and reports whether it fits.
func (w Whole) Uint64() (uint64, bool) {
	d := w.sig()
	if len(d) > maxUint64Digits {
		return 0, false
	}
	var v uint64
	for i := len(d) - 1; i >= 0; i-- {
		if v > (math.MaxUint64-uint64(d[i]))/Base {
			return 0, false
		}
		v = v*Base + uint64(d[i])
	}

	return v, true
}

// String renders w most-significant digit first.
func (w Whole) String() string {
	d := w.sig()
	var sb strings.Builder
	sb.Grow(len(d))
	for i := len(d) - 1; i >= 0; i-- {
		sb.WriteByte('0' + d[i])
	}

	return sb.String()
}

// ParseWhole parses an unsigned decimal string (optional leading '+').
// Leading zeros are accepted and dropped.
//
// Errors:
//   - ErrNegativeWhole for a leading '-'.
//   - ErrSyntax for empty input or non-digit characters.
func ParseWhole(s string) (Whole, error) {
	if s == "" {
		return Whole{}, bignumErrorf(opParseWhole, ErrSyntax)
	}
	switch s[0] {
	case '-':
		return Whole{}, bignumErrorf(opParseWhole, ErrNegativeWhole)
	case '+':
		s = s[1:]
		if s == "" {
			return Whole{}, bignumErrorf(opParseWhole, ErrSyntax)
		}
	}
	digits := make([]uint8, len(s))
	var c byte
	for i := 0; i < len(s); i++ {
		c = s[len(s)-1-i]
		if c < '0' || c > '9' {
			return Whole{}, bignumErrorf(opParseWhole, fmt.Errorf("%q: %w", s, ErrSyntax))
		}
		digits[i] = c - '0'
	}

	return wholeOf(digits), nil
}
