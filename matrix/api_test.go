// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/exact/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity(t *testing.T) {
	id := IdentityDense(t, 3)
	require.Equal(t, "[1, 0, 0]\n[0, 1, 0]\n[0, 0, 1]\n", id.String())

	_, err := matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestLikeConstructors(t *testing.T) {
	a := RandFilledDense(t, 2, 3, 3)

	z, err := matrix.ZerosLike(hide{a})
	require.NoError(t, err)
	require.Equal(t, a.Dim(), z.Dim())
	RequireMatEqual(t, MustDense(t, 2, 3), z)

	_, err = matrix.IdentityLike(a)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	id, err := matrix.IdentityLike(MustDense(t, 4, 4))
	require.NoError(t, err)
	RequireMatEqual(t, IdentityDense(t, 4), id)

	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.Nil(t, matrix.CloneMatrix(nil))
}

func TestEqual(t *testing.T) {
	a := MustFrom(t, []string{"1/2", "1"})
	assert.True(t, matrix.Equal(a, MustFrom(t, []string{"2/4", "1.0"})))
	assert.True(t, matrix.Equal(a, hide{a.Clone()}))
	assert.False(t, matrix.Equal(a, MustFrom(t, []string{"1/2", "2"})))
	assert.False(t, matrix.Equal(a, MustFrom(t, []string{"1/2"}, []string{"1"})))
	assert.False(t, matrix.Equal(a, nil))
	assert.True(t, matrix.Equal(nil, nil))
}

func TestSymmetrize(t *testing.T) {
	a := MustFrom(t, []string{"1", "2"}, []string{"0", "3"})
	s, err := matrix.Symmetrize(a)
	require.NoError(t, err)
	RequireMatEqual(t, MustFrom(t, []string{"1", "1"}, []string{"1", "3"}), s)
	require.NoError(t, matrix.ValidateSymmetric(s))

	_, err = matrix.Symmetrize(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestRowColSums(t *testing.T) {
	a := MustFrom(t, []string{"1", "2", "1/2"}, []string{"3", "4", "-1/2"})

	rs, err := matrix.RowSums(a)
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, "7/2", rs[0].String())
	assert.Equal(t, "13/2", rs[1].String())

	cs, err := matrix.ColSums(hide{a})
	require.NoError(t, err)
	require.Len(t, cs, 3)
	assert.Equal(t, "4", cs[0].String())
	assert.Equal(t, "6", cs[1].String())
	assert.Equal(t, "0", cs[2].String())

	_, err = matrix.RowSums(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAliases(t *testing.T) {
	a := RandFilledDense(t, 3, 3, 42)
	b := RandFilledDense(t, 3, 3, 43)

	s1, err := matrix.Sum(a, b)
	require.NoError(t, err)
	s2, err := matrix.Add(a, b)
	require.NoError(t, err)
	RequireMatEqual(t, s1, s2)

	d, err := matrix.Diff(s1, b)
	require.NoError(t, err)
	RequireMatEqual(t, a, d)

	p1, err := matrix.Product(a, b)
	require.NoError(t, err)
	p2, err := matrix.Mul(a, b)
	require.NoError(t, err)
	RequireMatEqual(t, p1, p2)
}
