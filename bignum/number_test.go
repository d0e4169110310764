package bignum_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/exact/bignum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_ValueSemantics(t *testing.T) {
	a := bignum.MustFraction(1, 2)
	b := a
	b = b.Add(bignum.One())

	require.Equal(t, "1/2", a.String())
	require.Equal(t, "3/2", b.String())

	// Mutating an accessor result never reaches back into the Number.
	den := a.Denominator()
	den.SetDigit(0, 9)
	require.Equal(t, "1/2", a.String())
}

func TestNumber_Constructors(t *testing.T) {
	require.Equal(t, "0", bignum.Zero().String())
	require.Equal(t, "0", bignum.Number{}.String())
	require.Equal(t, "1", bignum.One().String())
	require.Equal(t, "-12", bignum.NewNumber(-12).String())
	require.Equal(t, "1/10", bignum.MustFraction(1, 10).String())
	require.Equal(t, "1", bignum.MustFraction(5, 5).String())

	_, err := bignum.NewFraction(1, 0)
	require.ErrorIs(t, err, bignum.ErrDivisionByZero)

	require.Panics(t, func() { bignum.MustFraction(1, 0) })
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		s, want string
	}{
		{"0", "0"},
		{"-12", "-12"},
		{"3/4", "3/4"},
		{"-6/8", "-3/4"},
		{" 5 ", "5"},
		{"1 / 3", "1/3"},
		{"-0.125", "-1/8"},
		{"1.50", "3/2"},
		{".5", "1/2"},
		{"5.", "5"},
		{"+2.25", "9/4"},
		{"0.1", "1/10"},
		{"-0.0", "0"},
	}
	for _, tt := range tests {
		n, err := bignum.ParseNumber(tt.s)
		require.NoError(t, err, "ParseNumber(%q)", tt.s)
		assert.Equal(t, tt.want, n.String(), "ParseNumber(%q)", tt.s)
	}
}

func TestParseNumber_Errors(t *testing.T) {
	for _, s := range []string{"", ".", "-", "abc", "1/", "/2", "1/-2", "1/+2", "1.-2", "1.2.3", "1e5"} {
		_, err := bignum.ParseNumber(s)
		assert.ErrorIs(t, err, bignum.ErrSyntax, "ParseNumber(%q)", s)
	}

	_, err := bignum.ParseNumber("1/0")
	require.ErrorIs(t, err, bignum.ErrDivisionByZero)
}

func TestNumber_Quo(t *testing.T) {
	q, err := bignum.NewNumber(1).Quo(bignum.NewNumber(3))
	require.NoError(t, err)
	require.Equal(t, "1/3", q.String())

	_, err = bignum.NewNumber(1).Quo(bignum.Zero())
	require.ErrorIs(t, err, bignum.ErrDivisionByZero)

	require.Equal(t, "2/3", bignum.NewNumber(2).MustQuo(bignum.NewNumber(3)).String())
	require.Panics(t, func() { bignum.One().MustQuo(bignum.Zero()) })
}

func TestNumber_Comparisons(t *testing.T) {
	a, b := bignum.MustParseNumber("1/3"), bignum.MustParseNumber("0.34")
	require.True(t, a.Less(b))
	require.True(t, a.LessOrEqual(b))
	require.True(t, b.Greater(a))
	require.True(t, b.GreaterOrEqual(a))
	require.False(t, a.Equal(b))
	require.Equal(t, -1, a.Cmp(b))
	require.True(t, a.Equal(bignum.MustParseNumber("2/6")))
}

func TestNumber_Text(t *testing.T) {
	n := bignum.MustParseNumber("-0.75")
	text, err := n.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "-3/4", string(text))

	var back bignum.Number
	require.NoError(t, back.UnmarshalText(text))
	require.True(t, n.Equal(back))

	require.ErrorIs(t, back.UnmarshalText([]byte("x")), bignum.ErrSyntax)
}

func TestNumber_JSON(t *testing.T) {
	type row struct {
		Value bignum.Number `json:"value"`
	}
	data, err := json.Marshal(row{Value: bignum.MustFraction(22, 7)})
	require.NoError(t, err)
	require.JSONEq(t, `{"value":"22/7"}`, string(data))

	var got row
	require.NoError(t, json.Unmarshal([]byte(`{"value":"1.5"}`), &got))
	require.Equal(t, "3/2", got.Value.String())
}

func TestNumber_PowAndInv(t *testing.T) {
	p, err := bignum.MustFraction(-2, 3).Pow(3)
	require.NoError(t, err)
	require.Equal(t, "-8/27", p.String())

	inv, err := bignum.MustFraction(-2, 3).Inv()
	require.NoError(t, err)
	require.Equal(t, "-3/2", inv.String())

	_, err = bignum.Zero().Inv()
	require.ErrorIs(t, err, bignum.ErrDivisionByZero)
	_, err = bignum.Zero().Pow(-2)
	require.ErrorIs(t, err, bignum.ErrDivisionByZero)
}

func TestNumber_Accessors(t *testing.T) {
	n := bignum.MustParseNumber("-14/4")
	require.Equal(t, "-7", n.Numerator().String())
	require.Equal(t, "2", n.Denominator().String())
	require.Equal(t, -1, n.Sign())
	require.False(t, n.IsInteger())
	require.Equal(t, "7/2", n.Abs().String())
	require.Equal(t, "7/2", n.Neg().String())
	require.Equal(t, "-3.50", n.DecimalString(2))
	require.Equal(t, -3.5, n.Float64())
	require.Equal(t, "-7/2", n.Rational().FracString())
	require.True(t, bignum.NumberFromInteger(bignum.NewInteger(4)).IsInteger())
}
