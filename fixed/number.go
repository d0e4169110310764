// SPDX-License-Identifier: MIT

package fixed

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
)

// floatScale is the resolution of FromFloat64: values are truncated to
// multiples of 1e-6.
const floatScale = 1_000_000

// Number is a reduced ratio of two int64 values.
//
// Invariants:
//   - finite: 0 < den <= math.MaxInt64, |num| <= math.MaxInt64,
//     GCD(|num|, den) == 1 (so Neg never overflows);
//   - den == 0 marks a sentinel: num is +1 (Inf), -1 (-Inf) or 0 (Undefined).
type Number struct {
	num int64
	dm1 int64 // denominator minus one, so the zero value is 0/1
}

var _ fmt.Stringer = Number{}

// den returns the stored denominator.
func (n Number) den() int64 { return n.dm1 + 1 }

// raw builds a Number from an already canonical pair.
func raw(num, den int64) Number { return Number{num: num, dm1: den - 1} }

// New returns the integral Number i.
// math.MinInt64 has no negation and yields Undefined().
func New(i int64) Number {
	if i == math.MinInt64 {
		return Undefined()
	}

	return raw(i, 1)
}

// FromInt returns the integral Number i.
func FromInt(i int) Number { return New(int64(i)) }

// FromFloat64 quantizes f to 1e-6 resolution: f is scaled by 1,000,000,
// truncated toward zero and reduced. NaN, ±Inf and values whose scaled form
// does not fit an int64 yield Undefined().
func FromFloat64(f float64) Number {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Undefined()
	}
	scaled := math.Trunc(f * floatScale)
	// 2^63 is exactly representable; anything at or beyond it overflows.
	if scaled >= 1<<63 || scaled <= -(1<<63) {
		return Undefined()
	}

	return NewRatio(int64(scaled), floatScale)
}

// FromFloat32 widens f to float64 and applies FromFloat64.
func FromFloat32(f float32) Number { return FromFloat64(float64(f)) }

// NewRatio returns num/den in lowest terms with the sign on the numerator.
//
// Behavior highlights:
//   - den == 0: +Inf for num > 0, -Inf for num < 0, Undefined for 0/0.
//   - A reduced result whose parts do not fit the invariants (for example
//     math.MinInt64/1) yields Undefined().
func NewRatio(num, den int64) Number {
	if den == 0 {
		return sentinel(num)
	}

	return reduceMag((num < 0) != (den < 0), abs64(num), abs64(den))
}

// reduceMag divides out GCD(un, ud) and applies the sign; ud must be > 0.
func reduceMag(neg bool, un, ud uint64) Number {
	if un == 0 {
		return Number{}
	}
	g := gcd64(un, ud)

	return fromMag(neg, un/g, ud/g)
}

// fromMag builds a Number from reduced magnitudes, routing out-of-range
// parts to Undefined.
func fromMag(neg bool, un, ud uint64) Number {
	if un > math.MaxInt64 || ud > math.MaxInt64 || ud == 0 {
		return Undefined()
	}
	num := int64(un)
	if neg {
		num = -num
	}

	return raw(num, int64(ud))
}

// sentinel maps the sign of num onto Inf, -Inf or Undefined.
func sentinel(num int64) Number {
	switch {
	case num > 0:
		return Inf()
	case num < 0:
		return raw(-1, 0)
	default:
		return Undefined()
	}
}

// ---------- Named constants ----------

// Inf returns +infinity (1/0). Use Inf().Neg() for -infinity.
func Inf() Number { return raw(1, 0) }

// Undefined returns the error sentinel 0/0.
func Undefined() Number { return raw(0, 0) }

// Max returns the largest finite Number, math.MaxInt64.
func Max() Number { return raw(math.MaxInt64, 1) }

// Min returns the smallest finite Number, -math.MaxInt64.
func Min() Number { return raw(-math.MaxInt64, 1) }

// Eps returns the smallest positive Number, 1/math.MaxInt64.
func Eps() Number { return raw(1, math.MaxInt64) }

// ---------- Accessors & predicates ----------

// Numerator returns the reduced numerator (sign carrier).
func (n Number) Numerator() int64 { return n.num }

// Denominator returns the reduced denominator; 0 for sentinels.
func (n Number) Denominator() int64 { return n.den() }

// IsFinite reports whether n is neither infinite nor undefined.
func (n Number) IsFinite() bool { return n.den() != 0 }

// IsInf reports whether n is +Inf or -Inf.
func (n Number) IsInf() bool { return n.den() == 0 && n.num != 0 }

// IsUndefined reports whether n is the 0/0 sentinel.
func (n Number) IsUndefined() bool { return n.den() == 0 && n.num == 0 }

// IsInt reports whether n is finite and integral.
func (n Number) IsInt() bool { return n.den() == 1 }

// IsDec reports whether n is finite with a fractional part.
func (n Number) IsDec() bool { return n.den() > 1 }

// Sign returns -1, 0 or +1 (0 for Undefined).
func (n Number) Sign() int {
	switch {
	case n.num < 0:
		return -1
	case n.num > 0:
		return 1
	default:
		return 0
	}
}

// ---------- Arithmetic ----------

// Neg returns -n. ±Inf mirror; Undefined stays Undefined.
func (n Number) Neg() Number { return Number{num: -n.num, dm1: n.dm1} }

// Abs returns |n|.
func (n Number) Abs() Number {
	if n.num < 0 {
		return n.Neg()
	}

	return n
}

// Add returns n + m over the least common denominator.
// Undefined on overflow or when either operand is not finite.
func (n Number) Add(m Number) Number {
	if !n.IsFinite() || !m.IsFinite() {
		return Undefined()
	}
	b, d := n.den(), m.den()
	g := int64(gcd64(uint64(b), uint64(d)))
	bg, dg := b/g, d/g
	if !MulIsSafe(n.num, dg) || !MulIsSafe(m.num, bg) || !MulIsSafe(b, dg) {
		return Undefined()
	}
	x, y := n.num*dg, m.num*bg
	if !AddIsSafe(x, y) {
		return Undefined()
	}

	return NewRatio(x+y, b*dg)
}

// Sub returns n - m.
func (n Number) Sub(m Number) Number { return n.Add(m.Neg()) }

// Mul returns n * m, cross-reducing before multiplying.
// Undefined on overflow or when either operand is not finite.
func (n Number) Mul(m Number) Number {
	if !n.IsFinite() || !m.IsFinite() {
		return Undefined()
	}
	if n.num == 0 || m.num == 0 {
		return Number{}
	}
	g1 := int64(gcd64(abs64(n.num), uint64(m.den())))
	g2 := int64(gcd64(abs64(m.num), uint64(n.den())))
	a, c := n.num/g1, m.num/g2
	b, d := n.den()/g2, m.den()/g1
	if !MulIsSafe(a, c) || !MulIsSafe(b, d) {
		return Undefined()
	}

	return NewRatio(a*c, b*d)
}

// Quo returns n / m.
//
// Behavior highlights:
//   - m == 0: ±Inf by the sign of n, Undefined for 0 / 0.
//   - Non-finite operands yield Undefined.
func (n Number) Quo(m Number) Number {
	if !n.IsFinite() || !m.IsFinite() {
		return Undefined()
	}
	if m.num == 0 {
		return sentinel(n.num)
	}

	return n.Mul(m.inv())
}

// inv returns 1/n for finite non-zero n; the invariants make it exact.
func (n Number) inv() Number {
	if n.num < 0 {
		return raw(-n.den(), -n.num)
	}

	return raw(n.den(), n.num)
}

// Inc returns n + 1.
func (n Number) Inc() Number { return n.Add(raw(1, 1)) }

// Dec returns n - 1.
func (n Number) Dec() Number { return n.Add(raw(-1, 1)) }

// Split returns the integer part of n (truncated toward zero) and the
// fractional remainder, so that n == int + frac. Sentinels split as (0, n).
func (n Number) Split() (int64, Number) {
	if !n.IsFinite() {
		return 0, n
	}
	d := n.den()

	return n.num / d, raw(n.num%d, d).normalizeZero()
}

// normalizeZero canonicalizes 0/d to 0/1.
func (n Number) normalizeZero() Number {
	if n.num == 0 {
		return Number{}
	}

	return n
}

// ---------- Comparisons ----------

// rank orders the sentinel classes: Undefined < -Inf < finite < +Inf.
func (n Number) rank() int {
	switch {
	case n.IsUndefined():
		return 0
	case n.IsInf() && n.num < 0:
		return 1
	case n.IsInf():
		return 3
	default:
		return 2
	}
}

// Cmp compares n and m and returns -1, 0 or +1.
// Finite values are compared exactly through 128-bit cross products
// |a|*d vs |c|*b; sentinels follow Undefined < -Inf < finite < +Inf.
func (n Number) Cmp(m Number) int {
	rn, rm := n.rank(), m.rank()
	switch {
	case rn < rm:
		return -1
	case rn > rm:
		return 1
	case rn != 2:
		return 0
	}
	sn, sm := n.Sign(), m.Sign()
	if sn != sm {
		if sn < sm {
			return -1
		}
		return 1
	}
	if sn == 0 {
		return 0
	}
	h1, l1 := bits.Mul64(abs64(n.num), uint64(m.den()))
	h2, l2 := bits.Mul64(abs64(m.num), uint64(n.den()))
	if h1 != h2 {
		return cmpU64(h1, h2) * sn
	}

	return cmpU64(l1, l2) * sn
}

func cmpU64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal reports whether n == m. Reduced form makes this structural.
func (n Number) Equal(m Number) bool { return n.num == m.num && n.dm1 == m.dm1 }

// Less reports whether n < m.
func (n Number) Less(m Number) bool { return n.Cmp(m) < 0 }

// LessOrEqual reports whether n <= m.
func (n Number) LessOrEqual(m Number) bool { return n.Cmp(m) <= 0 }

// Greater reports whether n > m.
func (n Number) Greater(m Number) bool { return n.Cmp(m) > 0 }

// GreaterOrEqual reports whether n >= m.
func (n Number) GreaterOrEqual(m Number) bool { return n.Cmp(m) >= 0 }

// ---------- Conversions ----------

// Float64 returns num/den as a float64; ±Inf map to math.Inf and
// Undefined to NaN.
func (n Number) Float64() float64 {
	switch {
	case n.IsUndefined():
		return math.NaN()
	case n.IsInf():
		return math.Inf(n.Sign())
	}

	return float64(n.num) / float64(n.den())
}

// Float32 returns Float64 narrowed to float32.
func (n Number) Float32() float32 { return float32(n.Float64()) }

// Int returns n truncated toward zero. ±Inf saturate to ±math.MaxInt64;
// Undefined yields 0.
func (n Number) Int() int64 {
	switch {
	case n.IsUndefined():
		return 0
	case n.IsInf():
		return int64(n.Sign()) * math.MaxInt64
	}

	return n.num / n.den()
}

// String renders the integer when n is integral, "num/den" otherwise,
// and "inf", "-inf" or "undefined" for the sentinels.
func (n Number) String() string {
	switch {
	case n.IsUndefined():
		return "undefined"
	case n.IsInf() && n.num < 0:
		return "-inf"
	case n.IsInf():
		return "inf"
	case n.IsInt():
		return strconv.FormatInt(n.num, 10)
	}

	return strconv.FormatInt(n.num, 10) + "/" + strconv.FormatInt(n.den(), 10)
}
