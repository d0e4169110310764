// SPDX-License-Identifier: MIT

package fixed

import (
	"math"
	"math/bits"
)

// AddIsSafe reports whether a + b fits in an int64.
func AddIsSafe(a, b int64) bool {
	if b > 0 {
		return a <= math.MaxInt64-b
	}

	return a >= math.MinInt64-b
}

// SubIsSafe reports whether a - b fits in an int64.
func SubIsSafe(a, b int64) bool {
	if b < 0 {
		return a <= math.MaxInt64+b
	}

	return a >= math.MinInt64+b
}

// MulIsSafe reports whether a * b fits in an int64.
// The check uses the full 128-bit product of the magnitudes.
func MulIsSafe(a, b int64) bool {
	hi, lo := bits.Mul64(abs64(a), abs64(b))
	if hi != 0 {
		return false
	}
	if (a < 0) != (b < 0) {
		return lo <= 1<<63
	}

	return lo <= math.MaxInt64
}

// GCD returns the greatest common divisor of |a| and |b| (Euclid).
// GCD(0, 0) == 0. The result is unsigned because GCD(math.MinInt64, 0)
// is 2^63.
func GCD(a, b int64) uint64 { return gcd64(abs64(a), abs64(b)) }

func gcd64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// abs64 returns |x| as uint64; well-defined for math.MinInt64.
func abs64(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}

	return uint64(x)
}
