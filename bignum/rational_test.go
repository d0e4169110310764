package bignum_test

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/exact/bignum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rat is a test shorthand for NewRationalInt64 that fails the test on error.
func rat(t *testing.T, n int64, d uint64) bignum.Rational {
	t.Helper()
	r, err := bignum.NewRationalInt64(n, d)
	require.NoError(t, err)
	return r
}

func TestNewRational_Reduces(t *testing.T) {
	tests := []struct {
		n         int64
		d         uint64
		num, den  string
		str, frac string
	}{
		{6, 8, "3", "4", "3/4", "3/4"},
		{-6, 8, "-3", "4", "-3/4", "-3/4"},
		{0, 5, "0", "1", "0", "0/1"},
		{10, 5, "2", "1", "2", "2/1"},
		{-7, 1, "-7", "1", "-7", "-7/1"},
		{1, 10, "1", "10", "1/10", "1/10"},
		{5, 5, "1", "1", "1", "1/1"},
	}
	for _, tt := range tests {
		r := rat(t, tt.n, tt.d)
		assert.Equal(t, tt.num, r.Numerator().String(), "%d/%d", tt.n, tt.d)
		assert.Equal(t, tt.den, r.Denominator().String(), "%d/%d", tt.n, tt.d)
		assert.Equal(t, tt.str, r.String())
		assert.Equal(t, tt.frac, r.FracString())
	}
}

func TestNewRational_ZeroDenominator(t *testing.T) {
	_, err := bignum.NewRational(bignum.NewInteger(1), bignum.Whole{})
	require.ErrorIs(t, err, bignum.ErrDivisionByZero)

	_, err = bignum.NewRationalInt64(0, 0)
	require.ErrorIs(t, err, bignum.ErrDivisionByZero)
}

func TestRational_ZeroValue(t *testing.T) {
	var r bignum.Rational
	require.True(t, r.IsZero())
	require.True(t, r.IsInteger())
	require.Equal(t, "0", r.String())
	require.Equal(t, "0/1", r.FracString())
	require.Equal(t, "1", r.Denominator().String())
	require.True(t, r.Equal(rat(t, 0, 7)))

	sum := r.Add(rat(t, 1, 2))
	require.Equal(t, "1/2", sum.String())
}

// TestRational_ReductionIdempotent checks k*n/k*d reduces to the same value as n/d.
func TestRational_ReductionIdempotent(t *testing.T) {
	pairs := []struct {
		n int64
		d uint64
	}{
		{1, 2}, {-3, 4}, {5, 7}, {0, 1}, {12, 1}, {-22, 7},
	}
	for _, p := range pairs {
		base := rat(t, p.n, p.d)
		for k := int64(1); k <= 12; k++ {
			scaled := rat(t, k*p.n, uint64(k)*p.d)
			require.True(t, base.Equal(scaled), "%d/%d vs %d/%d", p.n, p.d, k*p.n, uint64(k)*p.d)
			require.Equal(t, base.FracString(), scaled.FracString())
		}
	}
}

func TestRational_RoundTrip(t *testing.T) {
	for _, r := range []bignum.Rational{rat(t, 3, 4), rat(t, -22, 7), rat(t, 0, 1), rat(t, 9, 1)} {
		back, err := bignum.NewRational(r.Numerator(), r.Denominator())
		require.NoError(t, err)
		require.True(t, r.Equal(back), r.String())
		require.True(t, r.Neg().Neg().Equal(r), "-(-r) == r")
	}
}

func TestRational_Arithmetic(t *testing.T) {
	half, third := rat(t, 1, 2), rat(t, 1, 3)

	assert.Equal(t, "5/6", half.Add(third).String())
	assert.Equal(t, "1/6", half.Sub(third).String())
	assert.Equal(t, "-1/6", third.Sub(half).String())
	assert.Equal(t, "1/6", half.Mul(third).String())

	q, err := half.Quo(third)
	require.NoError(t, err)
	assert.Equal(t, "3/2", q.String())

	// Results come back reduced.
	assert.Equal(t, "1", half.Add(half).String())
	assert.Equal(t, "0", third.Sub(third).String())
	assert.Equal(t, "1", rat(t, 2, 3).Mul(rat(t, 3, 2)).String())

	_, err = half.Quo(bignum.Rational{})
	require.ErrorIs(t, err, bignum.ErrDivisionByZero)
}

func TestRational_Inv(t *testing.T) {
	inv, err := rat(t, -2, 3).Inv()
	require.NoError(t, err)
	require.Equal(t, "-3/2", inv.String())

	inv, err = rat(t, 5, 1).Inv()
	require.NoError(t, err)
	require.Equal(t, "1/5", inv.String())

	_, err = bignum.Rational{}.Inv()
	require.ErrorIs(t, err, bignum.ErrDivisionByZero)
}

func TestRational_Pow(t *testing.T) {
	tests := []struct {
		n    int64
		d    uint64
		e    int64
		want string
	}{
		{2, 3, 3, "8/27"},
		{2, 3, -2, "9/4"},
		{-1, 2, 3, "-1/8"},
		{-1, 2, 2, "1/4"},
		{7, 1, 0, "1"},
		{0, 1, 0, "1"},
		{0, 1, 5, "0"},
		{10, 1, 20, "100000000000000000000"},
	}
	for _, tt := range tests {
		p, err := rat(t, tt.n, tt.d).Pow(tt.e)
		require.NoError(t, err)
		assert.Equal(t, tt.want, p.String(), "(%d/%d)^%d", tt.n, tt.d, tt.e)
	}

	_, err := bignum.Rational{}.Pow(-1)
	require.ErrorIs(t, err, bignum.ErrDivisionByZero)
}

// TestRational_OrderingMatchesSubtraction checks a < b exactly when b - a > 0.
func TestRational_OrderingMatchesSubtraction(t *testing.T) {
	values := []bignum.Rational{
		rat(t, -7, 2), rat(t, -1, 3), rat(t, 0, 1), rat(t, 1, 3), rat(t, 1, 2),
		rat(t, 2, 3), rat(t, 22, 7), rat(t, 355, 113), rat(t, 4, 1),
	}
	for _, a := range values {
		for _, b := range values {
			diff := b.Sub(a).Sign()
			assert.Equal(t, diff > 0, a.Less(b), "%s < %s", a, b)
			assert.Equal(t, diff < 0, a.Greater(b), "%s > %s", a, b)
			assert.Equal(t, diff == 0, a.Equal(b), "%s == %s", a, b)
			assert.Equal(t, -diff, a.Cmp(b), "Cmp(%s, %s)", a, b)
		}
	}
}

func TestRational_DecimalString(t *testing.T) {
	tests := []struct {
		n      int64
		d      uint64
		digits int
		want   string
	}{
		{1, 3, 5, "0.33333"},
		{2, 3, 4, "0.6666"},
		{-7, 2, 2, "-3.50"},
		{22, 7, 0, "3"},
		{1, 8, 3, "0.125"},
		{-1, 8, 6, "-0.125000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rat(t, tt.n, tt.d).DecimalString(tt.digits))
	}
}

func TestRational_Float64(t *testing.T) {
	require.Equal(t, 0.25, rat(t, 1, 4).Float64())
	require.Equal(t, -0.125, rat(t, -1, 8).Float64())
	require.InDelta(t, 1.0/3.0, rat(t, 1, 3).Float64(), 1e-15)
	require.Equal(t, 0.0, bignum.Rational{}.Float64())
	require.Equal(t, 1.0/3.0, rat(t, 1, 3).Float64())
	require.Equal(t, -2.0/3.0, rat(t, -2, 3).Float64())
}

func TestRational_Float64_Magnitudes(t *testing.T) {
	pow10 := func(k int) bignum.Whole { return bignum.MustParseWhole("1" + strings.Repeat("0", k)) }
	frac := func(num int64, den bignum.Whole) bignum.Rational {
		r, err := bignum.NewRational(bignum.NewInteger(num), den)
		require.NoError(t, err)
		return r
	}

	require.InEpsilon(t, 1e-30, frac(1, pow10(30)).Float64(), 1e-15)
	require.InEpsilon(t, -7e-100, frac(-7, pow10(100)).Float64(), 1e-15)
	require.InEpsilon(t, 1.0/3.0*1e-300, frac(1, bignum.NewWhole(3).Mul(pow10(300))).Float64(), 1e-15)
	require.Equal(t, 0.0, frac(1, pow10(400)).Float64())

	large := bignum.RationalFromInteger(bignum.IntegerFromWhole(pow10(30)))
	require.Equal(t, 1e30, large.Float64())
	require.True(t, math.IsInf(bignum.RationalFromInteger(bignum.IntegerFromWhole(pow10(400))).Float64(), 1))

	const text = "123456789012345678901234.567"
	want, err := strconv.ParseFloat(text, 64)
	require.NoError(t, err)
	require.Equal(t, want, bignum.MustParseNumber(text).Float64())
}
