// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tropix/matrix"
	"github.com/katalvlaran/tropix/semiring"
)

var (
	opsA = [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	opsB = [][]int64{{2, 1, 4}, {3, 6, 5}, {8, 7, 10}}
)

func TestNeutralMatrices(t *testing.T) {
	t.Parallel()

	z, err := matrix.Zero(semiring.MinTimes, 2)
	require.NoError(t, err)
	requireMatrixEqual(t, mustNew(t, [][]semiring.Scalar{{inf, inf}, {inf, inf}}), z)

	id, err := matrix.Identity(semiring.MaxTimes, 2)
	require.NoError(t, err)
	requireMatrixEqual(t, mustFromInts(t, [][]int64{{1, 0}, {0, 1}}), id)

	id, err = matrix.Identity(semiring.MinTimes, 2)
	require.NoError(t, err)
	requireMatrixEqual(t, mustNew(t, [][]semiring.Scalar{{sc(1), inf}, {inf, sc(1)}}), id)

	_, err = matrix.Zero(semiring.MaxTimes, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.Identity(semiring.MaxTimes, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestAddMul_KnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sr      semiring.Semiring
		sum     [][]int64
		product [][]int64
	}{
		{
			name:    "max-times",
			sr:      semiring.MaxTimes,
			sum:     [][]int64{{2, 2, 4}, {4, 6, 6}, {8, 8, 10}},
			product: [][]int64{{24, 21, 30}, {48, 42, 60}, {72, 63, 90}},
		},
		{
			name:    "min-times",
			sr:      semiring.MinTimes,
			sum:     [][]int64{{1, 1, 3}, {3, 5, 5}, {7, 7, 9}},
			product: [][]int64{{2, 1, 4}, {8, 4, 16}, {14, 7, 28}},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a, b := mustFromInts(t, opsA), mustFromInts(t, opsB)

			sum, err := matrix.Add(tc.sr, a, b)
			require.NoError(t, err)
			requireMatrixEqual(t, mustFromInts(t, tc.sum), sum)

			prod, err := matrix.Mul(tc.sr, a, b)
			require.NoError(t, err)
			requireMatrixEqual(t, mustFromInts(t, tc.product), prod)
		})
	}
}

func TestPow_KnownValues(t *testing.T) {
	t.Parallel()

	a := mustFromInts(t, opsA)

	p3, err := matrix.Pow(semiring.MaxTimes, a, 3)
	require.NoError(t, err)
	requireMatrixEqual(t, mustFromInts(t, [][]int64{{189, 216, 243}, {378, 432, 486}, {567, 648, 729}}), p3)

	p4, err := matrix.Pow(semiring.MaxTimes, a, 4)
	require.NoError(t, err)
	requireMatrixEqual(t, mustFromInts(t, [][]int64{{1701, 1944, 2187}, {3402, 3888, 4374}, {5103, 5832, 6561}}), p4)

	p2, err := matrix.Pow(semiring.MinTimes, a, 2)
	require.NoError(t, err)
	requireMatrixEqual(t, mustFromInts(t, [][]int64{{1, 2, 3}, {4, 8, 12}, {7, 14, 21}}), p2)

	c := mustFromInts(t, [][]int64{{3, 25, 37}, {44, 52, 64}, {71, 83, 95}})
	c4, err := matrix.Pow(semiring.MinTimes, c, 4)
	require.NoError(t, err)
	requireMatrixEqual(t, mustFromInts(t, [][]int64{{81, 675, 999}, {1188, 9900, 14652}, {1917, 15975, 23643}}), c4)
}

func TestPow_SmallExponents(t *testing.T) {
	t.Parallel()

	for _, sr := range []semiring.Semiring{semiring.MaxTimes, semiring.MinTimes} {
		a := mustFromInts(t, [][]int64{{1, 2}, {3, 4}})

		p0, err := matrix.Pow(sr, a, 0)
		require.NoError(t, err)
		id, _ := matrix.Identity(sr, 2)
		requireMatrixEqual(t, id, p0)

		p1, err := matrix.Pow(sr, a, 1)
		require.NoError(t, err)
		requireMatrixEqual(t, a, p1)

		p2, err := matrix.Pow(sr, a, 2)
		require.NoError(t, err)
		sq, _ := matrix.Mul(sr, a, a)
		requireMatrixEqual(t, sq, p2)
	}
}

func TestPow_MatchesRepeatedMul(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for _, sr := range []semiring.Semiring{semiring.MaxTimes, semiring.MinTimes} {
		a := randDense(t, rng, 4, 50)
		acc, _ := matrix.Identity(sr, 4)
		for k := 0; k <= 9; k++ {
			got, err := matrix.Pow(sr, a, k)
			require.NoError(t, err)
			requireMatrixEqual(t, acc, got)
			acc, _ = matrix.Mul(sr, acc, a)
		}
	}
}

func TestMul_AssociativeAndDistributive(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	for _, sr := range []semiring.Semiring{semiring.MaxTimes, semiring.MinTimes} {
		for trial := 0; trial < 20; trial++ {
			a := randDense(t, rng, 3, 30)
			b := randDense(t, rng, 3, 30)
			c := randDense(t, rng, 3, 30)

			ab, _ := matrix.Mul(sr, a, b)
			left, _ := matrix.Mul(sr, ab, c)
			bc, _ := matrix.Mul(sr, b, c)
			right, _ := matrix.Mul(sr, a, bc)
			requireMatrixEqual(t, left, right)

			bPlusC, _ := matrix.Add(sr, b, c)
			lhs, _ := matrix.Mul(sr, a, bPlusC)
			ac, _ := matrix.Mul(sr, a, c)
			rhs, _ := matrix.Add(sr, ab, ac)
			requireMatrixEqual(t, lhs, rhs)
		}
	}
}

func TestScale(t *testing.T) {
	t.Parallel()

	a := mustNew(t, [][]semiring.Scalar{{sc(1), sc(0)}, {inf, sc(4)}})

	got, err := matrix.Scale(semiring.MinTimes, a, sc(3))
	require.NoError(t, err)
	requireMatrixEqual(t, mustNew(t, [][]semiring.Scalar{{sc(3), sc(0)}, {inf, sc(12)}}), got)

	// Scaling by the min-times zero annihilates everything.
	got, err = matrix.Scale(semiring.MinTimes, a, inf)
	require.NoError(t, err)
	requireMatrixEqual(t, mustNew(t, [][]semiring.Scalar{{inf, inf}, {inf, inf}}), got)

	got, err = matrix.Scale(semiring.MaxTimes, a, sc(0))
	require.NoError(t, err)
	requireMatrixEqual(t, mustFromInts(t, [][]int64{{0, 0}, {0, 0}}), got)
}

func TestOps_Errors(t *testing.T) {
	t.Parallel()

	a := mustFromInts(t, [][]int64{{1, 2}, {3, 4}})
	b := mustFromInts(t, [][]int64{{1}})

	_, err := matrix.Add(semiring.MaxTimes, a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(semiring.MinTimes, a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(semiring.MinTimes, nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Scale(semiring.MaxTimes, nil, sc(1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Pow(semiring.MaxTimes, a, -1)
	require.ErrorIs(t, err, matrix.ErrNegativeExponent)
	_, err = matrix.Pow(semiring.MaxTimes, nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestPow_NoOverflow(t *testing.T) {
	t.Parallel()

	a := mustFromInts(t, [][]int64{{1000, 1}, {1, 1000}})
	p, err := matrix.Pow(semiring.MaxTimes, a, 10)
	require.NoError(t, err)
	v, err := p.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, "1000000000000000000000000000000", v.String())
}
