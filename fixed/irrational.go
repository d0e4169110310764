// SPDX-License-Identifier: MIT

// Package fixed - irrational approximations.
//
// Purpose:
//   - Approximate square roots and rational powers to a caller-given
//     precision, using Newton's method on the fixed-point ratio.
//
// Precision grid:
//   - A precision p (0 < p) defines the grid step 1/q with q = ceil(1/p).
//   - Newton runs on integer grid numerators, so every iterate is a
//     multiple of 1/q and the result is the root truncated onto the grid.
//   - Iteration stops when two successive iterates differ by at most p.
//
// Complexity:
//   - Newton starts from a float64 estimate just above the root and
//     converges quadratically, usually in two or three steps.
//     Options bound the loop (DefaultMaxIterations).
package fixed

import (
	"math"
	"math/big"
	"math/bits"
)

// MaxRootDegree is the largest exponent denominator PowRatio accepts.
const MaxRootDegree = 1024

// sqrtDefaultPrecision is the precision used by SqrtDefault (four decimals).
var sqrtDefaultPrecision = raw(1, 10000)

// Sqr returns n * n.
func Sqr(n Number) Number { return n.Mul(n) }

// Pow returns b^p exactly by repeated squaring; b^0 == 1 for finite b.
// Undefined on overflow or for a non-finite base.
func Pow(b Number, p uint16) Number { return powUint(b, uint64(p)) }

func powUint(b Number, p uint64) Number {
	if !b.IsFinite() {
		return Undefined()
	}
	acc := raw(1, 1)
	for p > 0 {
		if p&1 == 1 {
			acc = acc.Mul(b)
		}
		p >>= 1
		if p > 0 {
			b = b.Mul(b)
		}
	}

	return acc
}

// Sqrt approximates the square root of v to within prec.
//
// Behavior highlights:
//   - v < 0, a non-finite v, or prec that is not a finite positive value
//     yields Undefined().
//   - Sqrt(0, prec) == 0 exactly; perfect squares on the grid converge to
//     their exact root.
//   - With WithStrict, running out of iterations yields Undefined().
func Sqrt(v, prec Number, opts ...Option) Number {
	o := gatherOptions(opts...)
	q, ok := grid(prec)
	if !ok || !v.IsFinite() || v.num < 0 {
		return Undefined()
	}
	if v.num == 0 {
		return Number{}
	}

	return newtonRoot(v, 2, q, prec, o)
}

// SqrtDefault is Sqrt with precision 1/10000.
func SqrtDefault(v Number) Number { return Sqrt(v, sqrtDefaultPrecision) }

// PowRatio approximates b^p for a rational exponent p = m/n: the n-th root
// of b is found by Newton iteration, then raised to the integer power |m|
// and inverted when m < 0. An integral p is computed exactly.
//
// Behavior highlights:
//   - Negative b with an even root degree yields Undefined(); with an odd
//     degree the real root is negative.
//   - 0 raised to a negative power is +Inf.
//   - Non-finite inputs, a non-positive prec or an exponent denominator
//     above MaxRootDegree yield Undefined().
func PowRatio(b, p, prec Number, opts ...Option) Number {
	o := gatherOptions(opts...)
	q, ok := grid(prec)
	if !ok || !b.IsFinite() || !p.IsFinite() {
		return Undefined()
	}
	m, n := p.num, uint64(p.den())
	if n > MaxRootDegree {
		return Undefined()
	}

	base := b
	if n > 1 {
		switch {
		case b.num == 0:
			base = Number{}
		case b.num < 0 && n%2 == 0:
			return Undefined()
		case b.num < 0:
			base = newtonRoot(b.Neg(), n, q, prec, o).Neg()
		default:
			base = newtonRoot(b, n, q, prec, o)
		}
		if base.IsUndefined() {
			return base
		}
	}

	r := powUint(base, abs64(m))
	if m < 0 {
		r = raw(1, 1).Quo(r)
	}
	if n > 1 {
		r = truncate(r, q)
	}

	return r
}

// PowDefault is PowRatio with precision 1.
func PowDefault(b, p Number) Number { return PowRatio(b, p, raw(1, 1)) }

// grid returns q = ceil(1/prec) for a finite positive prec.
func grid(prec Number) (int64, bool) {
	if !prec.IsFinite() || prec.num <= 0 {
		return 0, false
	}
	d := prec.den()
	q := d / prec.num
	if d%prec.num != 0 {
		q++
	}

	return q, true
}

// truncate moves x toward zero onto the grid of multiples of 1/q.
// Undefined when the scaled numerator no longer fits.
func truncate(x Number, q int64) Number {
	if !x.IsFinite() {
		return x
	}
	d := uint64(x.den())
	hi, lo := bits.Mul64(abs64(x.num), uint64(q))
	if hi >= d {
		return Undefined()
	}
	quo, _ := bits.Div64(hi, lo, d)

	return reduceMag(x.num < 0, quo, uint64(q))
}

// newtonRoot approximates the positive n-th root of v > 0 on the grid 1/q.
//
// The iteration runs on grid numerators: with M = floor(v * q^n) it computes
// the integer Newton step
//
//	X' = ((n-1)*X + M / X^(n-1)) / n      (floor divisions)
//
// from a float64 estimate padded to sit above the root, so the sequence
// decreases to floor(root(M)). Intermediates live in math/big because M
// outgrows 128 bits for fine grids or higher degrees.
func newtonRoot(v Number, n uint64, q int64, prec Number, o Options) Number {
	bn := new(big.Int).SetUint64(n)
	nm1 := new(big.Int).SetUint64(n - 1)

	m := new(big.Int).Exp(big.NewInt(q), bn, nil)
	m.Mul(m, big.NewInt(v.num))
	m.Quo(m, big.NewInt(v.den()))
	if m.Sign() == 0 {
		// The root is below the grid resolution.
		return Number{}
	}

	x, ok := rootAbove(m, n)
	if !ok {
		return Undefined()
	}

	// tol = floor(prec * q): the largest step, in grid units, that counts as converged.
	tol := new(big.Int).Mul(big.NewInt(prec.num), big.NewInt(q))
	tol.Quo(tol, big.NewInt(prec.den()))

	var next, t, diff big.Int
	for i := 0; i < o.maxIterations; i++ {
		t.Exp(x, nm1, nil)
		t.Quo(m, &t)
		next.Mul(x, nm1)
		next.Add(&next, &t)
		next.Quo(&next, bn)
		if next.Cmp(x) >= 0 {
			return gridValue(x, q)
		}
		if diff.Sub(x, &next).Cmp(tol) <= 0 {
			return gridValue(&next, q)
		}
		x.Set(&next)
	}
	if o.strict {
		return Undefined()
	}

	return gridValue(x, q)
}

// rootAbove returns a starting point at or above the n-th root of m > 0,
// or false when the root cannot fit in a uint64.
func rootAbove(m *big.Int, n uint64) (*big.Int, bool) {
	// log2(m) from its leading 64 bits.
	shift := m.BitLen() - 64
	if shift < 0 {
		shift = 0
	}
	top := new(big.Int).Rsh(m, uint(shift)).Uint64()
	e := (math.Log2(float64(top)) + float64(shift)) / float64(n)
	if e >= 64 {
		return nil, false
	}
	est, _ := new(big.Float).SetFloat64(math.Exp2(e) * (1 + 1e-9)).Int(nil)

	return est.Add(est, big.NewInt(2)), true
}

// gridValue returns x/q reduced, or Undefined when it does not fit.
func gridValue(x *big.Int, q int64) Number {
	if !x.IsUint64() {
		return Undefined()
	}

	return reduceMag(false, x.Uint64(), uint64(q))
}
