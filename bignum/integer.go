// SPDX-License-Identifier: MIT

package bignum

import "math"

// Integer is a signed arbitrary-precision integer: a sign flag over a Whole
// magnitude. Zero is canonical (never negative), so -0 == 0 and renders "0".
// The zero value is 0.
type Integer struct {
	neg bool  // true for values < 0
	mag Whole // magnitude
}

// mkInteger builds an Integer, dropping the sign of zero.
func mkInteger(neg bool, mag Whole) Integer {
	if mag.IsZero() {
		neg = false
	}

	return Integer{neg: neg, mag: mag.normalized()}
}

// NewInteger converts a native signed integer, including math.MinInt64.
func NewInteger(n int64) Integer {
	if n == math.MinInt64 {
		return Integer{neg: true, mag: NewWhole(uint64(math.MaxInt64) + 1)}
	}
	if n < 0 {
		return Integer{neg: true, mag: NewWhole(uint64(-n))}
	}

	return Integer{mag: NewWhole(uint64(n))}
}

// IntegerFromWhole returns the non-negative Integer with magnitude w.
func IntegerFromWhole(w Whole) Integer { return mkInteger(false, w) }

// NewSignedInteger returns the Integer with the given sign and magnitude.
// The sign is ignored when mag is zero.
func NewSignedInteger(neg bool, mag Whole) Integer { return mkInteger(neg, mag.Clone()) }

// IsNeg reports whether x < 0.
func (x Integer) IsNeg() bool { return x.neg }

// IsZero reports whether x == 0.
func (x Integer) IsZero() bool { return x.mag.IsZero() }

// Sign returns -1, 0 or +1.
func (x Integer) Sign() int {
	switch {
	case x.mag.IsZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// Abs returns |x| as a Whole (independent copy).
func (x Integer) Abs() Whole { return x.mag.Clone() }

// Neg returns -x. Zero stays sign-less.
func (x Integer) Neg() Integer { return mkInteger(!x.neg, x.mag) }

// Add returns x + y.
// Same signs add magnitudes and keep the sign; mixed signs delegate to
// Whole subtraction of magnitudes, whose result carries the sign of the
// larger magnitude.
func (x Integer) Add(y Integer) Integer {
	if x.neg == y.neg {
		return mkInteger(x.neg, x.mag.Add(y.mag))
	}
	if x.neg {
		// -|x| + |y| = |y| - |x|
		return y.mag.Sub(x.mag)
	}

	// |x| + -|y| = |x| - |y|
	return x.mag.Sub(y.mag)
}

// Sub returns x - y, dispatching on all four sign combinations so that each
// case reduces to one Whole addition or subtraction.
func (x Integer) Sub(y Integer) Integer {
	switch {
	case !x.neg && !y.neg: // a - b
		return x.mag.Sub(y.mag)
	case x.neg && y.neg: // -a - -b = b - a
		return y.mag.Sub(x.mag)
	case x.neg: // -a - b = -(a + b)
		return mkInteger(true, x.mag.Add(y.mag))
	default: // a - -b = a + b
		return mkInteger(false, x.mag.Add(y.mag))
	}
}

// Mul returns x * y: magnitude product, sign is the XOR of operand signs.
func (x Integer) Mul(y Integer) Integer {
	return mkInteger(x.neg != y.neg, x.mag.Mul(y.mag))
}

// QuoRem returns the truncated quotient and remainder of x / y, such that
// x == q*y + r and r has the sign of x.
// ErrDivisionByZero if y == 0.
func (x Integer) QuoRem(y Integer) (q, r Integer, err error) {
	qm, rm, err := QuoRem(x.mag, y.mag)
	if err != nil {
		return Integer{}, Integer{}, err
	}

	return mkInteger(x.neg != y.neg, qm), mkInteger(x.neg, rm), nil
}

// Cmp compares x and y and returns -1, 0 or +1.
// Negative values are below all non-negative ones; among same-sign values
// magnitudes decide, reversed for negatives.
func (x Integer) Cmp(y Integer) int {
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	case x.neg:
		return y.mag.Cmp(x.mag)
	default:
		return x.mag.Cmp(y.mag)
	}
}

// Equal reports whether x == y.
func (x Integer) Equal(y Integer) bool { return x.Cmp(y) == 0 }

// Less reports whether x < y.
func (x Integer) Less(y Integer) bool { return x.Cmp(y) < 0 }

// LessOrEqual reports whether x <= y.
func (x Integer) LessOrEqual(y Integer) bool { return x.Cmp(y) <= 0 }

// Greater reports whether x > y.
func (x Integer) Greater(y Integer) bool { return x.Cmp(y) > 0 }

// GreaterOrEqual reports whether x >= y.
func (x Integer) GreaterOrEqual(y Integer) bool { return x.Cmp(y) >= 0 }

// Int64 returns x as an int64 and reports whether it fits.
func (x Integer) Int64() (int64, bool) {
	u, ok := x.mag.Uint64()
	if !ok {
		return 0, false
	}
	if x.neg {
		switch {
		case u == uint64(math.MaxInt64)+1:
			return math.MinInt64, true
		case u > math.MaxInt64:
			return 0, false
		}
		return -int64(u), true
	}
	if u > math.MaxInt64 {
		return 0, false
	}

	return int64(u), true
}

// String renders x in decimal with a leading '-' for negatives.
func (x Integer) String() string {
	if x.neg && !x.mag.IsZero() {
		return "-" + x.mag.String()
	}

	return x.mag.String()
}

// ParseInteger parses a signed decimal string (optional '+' or '-').
func ParseInteger(s string) (Integer, error) {
	neg := false
	if s != "" && s[0] == '-' {
		neg = true
		s = s[1:]
		if s != "" && (s[0] == '-' || s[0] == '+') {
			return Integer{}, bignumErrorf(opParseInt, ErrSyntax)
		}
	}
	w, err := ParseWhole(s)
	if err != nil {
		return Integer{}, bignumErrorf(opParseInt, err)
	}

	return mkInteger(neg, w), nil
}
