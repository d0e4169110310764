// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures built from exact decimal/fraction literals.
//   • Offer a wrapper that hides *Dense so kernels take their interface fallback path.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/exact/bignum"
	"github.com/katalvlaran/exact/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to mask its concrete type from type assertions,
// forcing kernels onto the At/Set fallback path.
type hide struct{ matrix.Matrix }

// num parses an exact literal such as "3", "-1/2" or "0.25".
func num(s string) bignum.Number { return bignum.MustParseNumber(s) }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustFrom builds a *Dense from rows of exact literals.
func MustFrom(t testing.TB, rows ...[]string) *matrix.Dense {
	t.Helper()
	vals := make([][]bignum.Number, len(rows))
	for i, row := range rows {
		vals[i] = make([]bignum.Number, len(row))
		for j, s := range row {
			vals[i][j] = num(s)
		}
	}
	m, err := matrix.NewDenseFrom(vals)
	require.NoError(t, err)

	return m
}

// IdentityDense returns I_n or fails the test.
func IdentityDense(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) bignum.Number {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireMatEqual asserts exact element-wise equality and prints both
// matrices on failure.
func RequireMatEqual(t testing.TB, want, got matrix.Matrix) {
	t.Helper()
	if !matrix.Equal(want, got) {
		ws, _ := matrix.Format(want)
		gs, _ := matrix.Format(got)
		t.Fatalf("matrices differ\nwant:\n%sgot:\n%s", ws, gs)
	}
}

// RandFilledDense fills an r×c *Dense with small fractions p/q,
// p in [-9, 9] and q in [1, 4], from a fixed seed.
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := bignum.MustFraction(int64(rng.Intn(19)-9), uint64(rng.Intn(4)+1))
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}
