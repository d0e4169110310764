// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/exact/matrix"
	"github.com/stretchr/testify/require"
)

func TestAddInPlace(t *testing.T) {
	m := MustFrom(t, []string{"1", "1/2"}, []string{"0", "-3"})
	b := MustFrom(t, []string{"1/2", "1/2"}, []string{"1/3", "3"})

	require.NoError(t, m.AddInPlace(b))
	RequireMatEqual(t, MustFrom(t, []string{"3/2", "1"}, []string{"1/3", "0"}), m)

	// Interface operand takes the fallback path and yields the same result.
	require.NoError(t, m.SubInPlace(hide{b}))
	RequireMatEqual(t, MustFrom(t, []string{"1", "1/2"}, []string{"0", "-3"}), m)
}

func TestAddInPlace_SelfAlias(t *testing.T) {
	m := MustFrom(t, []string{"1", "2"}, []string{"3", "4"})
	require.NoError(t, m.AddInPlace(m))
	require.Equal(t, "[2, 4]\n[6, 8]\n", m.String())
}

func TestAddInPlace_Errors(t *testing.T) {
	m := MustFrom(t, []string{"1", "2"}, []string{"3", "4"})
	before := m.String()

	err := m.AddInPlace(MustDense(t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.EqualError(t, err, "AddInPlace: expected (2, 2), got (3, 2): matrix: dimension mismatch")
	require.Equal(t, before, m.String(), "failed call must not write")

	require.ErrorIs(t, m.AddInPlace(nil), matrix.ErrNilMatrix)
	var typedNil *matrix.Dense
	require.ErrorIs(t, m.AddInPlace(typedNil), matrix.ErrNilMatrix)
}

func TestScaleShiftInPlace(t *testing.T) {
	m := MustFrom(t, []string{"1", "-2"}, []string{"1/3", "0"})

	m.ScaleInPlace(num("3/2"))
	require.Equal(t, "[3/2, -3]\n[1/2, 0]\n", m.String())

	m.ShiftInPlace(num("1/2"))
	require.Equal(t, "[2, -5/2]\n[1, 1/2]\n", m.String())

	m.ScaleInPlace(num("0"))
	RequireMatEqual(t, MustDense(t, 2, 2), m)
}

// TestElementwise_FastAndFallback_Match compares *Dense and wrapped operands
// for every element-wise kernel.
func TestElementwise_FastAndFallback_Match(t *testing.T) {
	a := RandFilledDense(t, 4, 5, 11)
	b := RandFilledDense(t, 4, 5, 22)
	alpha := num("-3/4")

	kernels := []struct {
		name string
		run  func(x, y matrix.Matrix) (matrix.Matrix, error)
	}{
		{"Add", matrix.Add},
		{"Sub", matrix.Sub},
		{"Hadamard", matrix.Hadamard},
		{"Scale", func(x, _ matrix.Matrix) (matrix.Matrix, error) { return matrix.Scale(x, alpha) }},
		{"Shift", func(x, _ matrix.Matrix) (matrix.Matrix, error) { return matrix.Shift(x, alpha) }},
		{"Neg", func(x, _ matrix.Matrix) (matrix.Matrix, error) { return matrix.Neg(x) }},
	}
	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			fast, err := k.run(a, b)
			require.NoError(t, err)
			slow, err := k.run(hide{a}, hide{b})
			require.NoError(t, err)
			RequireMatEqual(t, fast, slow)
		})
	}
}

func TestElementwise_Values(t *testing.T) {
	a := MustFrom(t, []string{"1", "1/2"}, []string{"2/3", "-1"})
	b := MustFrom(t, []string{"1/2", "1/2"}, []string{"1/3", "4"})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, "[3/2, 1]\n[1, 3]\n", sum.(*matrix.Dense).String())

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	require.Equal(t, "[1/2, 0]\n[1/3, -5]\n", diff.(*matrix.Dense).String())

	had, err := matrix.Hadamard(a, b)
	require.NoError(t, err)
	require.Equal(t, "[1/2, 1/4]\n[2/9, -4]\n", had.(*matrix.Dense).String())

	sh, err := matrix.Shift(a, num("1"))
	require.NoError(t, err)
	require.Equal(t, "[2, 3/2]\n[5/3, 0]\n", sh.(*matrix.Dense).String())

	// Operands are never mutated.
	require.Equal(t, "[1, 1/2]\n[2/3, -1]\n", a.String())
}
