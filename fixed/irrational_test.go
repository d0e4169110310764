package fixed_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/exact/fixed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqrt_PerfectSquares(t *testing.T) {
	tests := []struct {
		v, prec, want fixed.Number
	}{
		{fixed.New(4), fixed.NewRatio(1, 10000), fixed.New(2)},
		{fixed.New(9), fixed.NewRatio(1, 1000), fixed.New(3)},
		{fixed.NewRatio(1, 4), fixed.NewRatio(1, 10000), fixed.NewRatio(1, 2)},
		{fixed.New(1), fixed.NewRatio(1, 100), fixed.New(1)},
		{fixed.New(0), fixed.NewRatio(1, 100), fixed.New(0)},
	}
	for _, tt := range tests {
		got := fixed.Sqrt(tt.v, tt.prec)
		require.True(t, got.Equal(tt.want), "Sqrt(%s) = %s, want %s", tt.v, got, tt.want)
	}
}

func TestSqrt_Irrational(t *testing.T) {
	got := fixed.Sqrt(fixed.New(2), fixed.NewRatio(1, 10000))
	require.True(t, got.IsFinite())
	require.InDelta(t, math.Sqrt2, got.Float64(), 2e-4)
	require.LessOrEqual(t, got.Denominator(), int64(10000), "iterates stay on the precision grid")

	require.True(t, fixed.SqrtDefault(fixed.New(2)).Equal(got))

	coarse := fixed.Sqrt(fixed.New(10), fixed.NewRatio(1, 10))
	require.InDelta(t, math.Sqrt(10), coarse.Float64(), 0.2)
}

func TestSqrt_Invalid(t *testing.T) {
	prec := fixed.NewRatio(1, 100)
	require.True(t, fixed.Sqrt(fixed.New(-1), prec).IsUndefined())
	require.True(t, fixed.Sqrt(fixed.Inf(), prec).IsUndefined())
	require.True(t, fixed.Sqrt(fixed.New(2), fixed.New(0)).IsUndefined())
	require.True(t, fixed.Sqrt(fixed.New(2), fixed.New(-1)).IsUndefined())
	require.True(t, fixed.Sqrt(fixed.New(2), fixed.Undefined()).IsUndefined())
}

func TestSqrt_IterationBudget(t *testing.T) {
	v, prec := fixed.New(10000), fixed.NewRatio(1, 100)

	strict := fixed.Sqrt(v, prec, fixed.WithMaxIterations(1), fixed.WithStrict())
	require.True(t, strict.IsUndefined())

	lenient := fixed.Sqrt(v, prec, fixed.WithMaxIterations(1))
	require.True(t, lenient.IsFinite())
	require.False(t, lenient.Less(fixed.New(100)), "iterates approach the root from above")

	full := fixed.Sqrt(v, prec)
	require.True(t, full.Equal(fixed.New(100)), "got %s", full)
}

func TestSqrt_FinePrecision(t *testing.T) {
	for _, den := range []int64{1e6, 1e8, 1e10, 1e12} {
		got := fixed.Sqrt(fixed.New(2), fixed.NewRatio(1, den))
		require.True(t, got.IsFinite(), "sqrt(2) at 1/%d", den)
		require.InDelta(t, math.Sqrt2, got.Float64(), 2/float64(den), "sqrt(2) at 1/%d", den)
		require.LessOrEqual(t, got.Denominator(), den)
	}
}

func TestSqrt_LargeBase(t *testing.T) {
	got := fixed.Sqrt(fixed.New(1e12), fixed.NewRatio(1, 1e6))
	require.True(t, got.Equal(fixed.New(1e6)), "got %s", got)

	got = fixed.Sqrt(fixed.New(math.MaxInt64), fixed.NewRatio(1, 1000))
	require.True(t, got.IsFinite())
	require.InEpsilon(t, math.Sqrt(math.MaxInt64), got.Float64(), 1e-9)
}

func TestSqr(t *testing.T) {
	require.True(t, fixed.Sqr(fixed.NewRatio(-2, 3)).Equal(fixed.NewRatio(4, 9)))
	require.True(t, fixed.Sqr(fixed.Max()).IsUndefined())
}

func TestPow_Integer(t *testing.T) {
	tests := []struct {
		b    fixed.Number
		p    uint16
		want fixed.Number
	}{
		{fixed.NewRatio(2, 3), 3, fixed.NewRatio(8, 27)},
		{fixed.New(5), 0, fixed.New(1)},
		{fixed.New(0), 0, fixed.New(1)},
		{fixed.New(-2), 5, fixed.New(-32)},
		{fixed.New(2), 62, fixed.New(1 << 62)},
	}
	for _, tt := range tests {
		got := fixed.Pow(tt.b, tt.p)
		assert.True(t, got.Equal(tt.want), "Pow(%s, %d) = %s", tt.b, tt.p, got)
	}
	require.True(t, fixed.Pow(fixed.New(2), 63).IsUndefined())
	require.True(t, fixed.Pow(fixed.Inf(), 0).IsUndefined())
}

func TestPowRatio(t *testing.T) {
	prec := fixed.NewRatio(1, 1000)
	tests := []struct {
		name string
		b, p fixed.Number
		want fixed.Number
	}{
		{"cube root", fixed.New(8), fixed.NewRatio(1, 3), fixed.New(2)},
		{"two thirds", fixed.New(8), fixed.NewRatio(2, 3), fixed.New(4)},
		{"negative exponent", fixed.New(8), fixed.NewRatio(-1, 3), fixed.NewRatio(1, 2)},
		{"odd root of negative", fixed.New(-8), fixed.NewRatio(1, 3), fixed.New(-2)},
		{"integral exponent", fixed.New(2), fixed.New(10), fixed.New(1024)},
		{"integral negative exponent", fixed.New(2), fixed.New(-2), fixed.NewRatio(1, 4)},
		{"zero base", fixed.New(0), fixed.NewRatio(1, 2), fixed.New(0)},
		{"zero to negative", fixed.New(0), fixed.New(-1), fixed.Inf()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fixed.PowRatio(tt.b, tt.p, prec)
			require.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}

	require.True(t, fixed.PowRatio(fixed.New(-4), fixed.NewRatio(1, 2), prec).IsUndefined())
	require.True(t, fixed.PowRatio(fixed.New(2), fixed.Inf(), prec).IsUndefined())
	require.True(t, fixed.PowRatio(fixed.New(2), fixed.NewRatio(1, 2), fixed.New(0)).IsUndefined())

	root2 := fixed.PowRatio(fixed.New(2), fixed.NewRatio(1, 2), fixed.NewRatio(1, 10000))
	require.InDelta(t, math.Sqrt2, root2.Float64(), 2e-4)
}

func TestPowRatio_LargeBase(t *testing.T) {
	third, prec := fixed.NewRatio(1, 3), fixed.NewRatio(1, 100)
	tests := []struct {
		base int64
		want float64
	}{
		{1e6, 100},
		{1e7, 215.443469},
		{1e8, 464.158883},
		{1e9, 1000},
		{1e18, 1e6},
	}
	for _, tt := range tests {
		got := fixed.PowRatio(fixed.New(tt.base), third, prec)
		require.True(t, got.IsFinite(), "%d^(1/3)", tt.base)
		require.InDelta(t, tt.want, got.Float64(), 0.01, "%d^(1/3)", tt.base)
	}
	require.True(t, fixed.PowRatio(fixed.New(1e6), third, prec).Equal(fixed.New(100)))
	require.True(t, fixed.PowRatio(fixed.New(1e9), third, prec).Equal(fixed.New(1000)))

	got := fixed.PowRatio(fixed.New(1e6), fixed.NewRatio(1, 2), fixed.NewRatio(1, 1e12))
	require.True(t, got.Equal(fixed.New(1000)), "got %s", got)
}

func TestPowRatio_RootDegree(t *testing.T) {
	prec := fixed.NewRatio(1, 10000)

	got := fixed.PowRatio(fixed.New(2), fixed.NewRatio(1, fixed.MaxRootDegree), prec)
	require.True(t, got.IsFinite())
	require.InDelta(t, math.Pow(2, 1.0/fixed.MaxRootDegree), got.Float64(), 2e-4)

	require.True(t, fixed.PowRatio(fixed.New(2), fixed.NewRatio(1, fixed.MaxRootDegree+1), prec).IsUndefined())
}

func TestPowDefault(t *testing.T) {
	require.True(t, fixed.PowDefault(fixed.New(9), fixed.NewRatio(1, 2)).Equal(fixed.New(3)))
	require.True(t, fixed.PowDefault(fixed.New(3), fixed.New(4)).Equal(fixed.New(81)))
}
