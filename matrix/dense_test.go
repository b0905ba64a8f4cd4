// SPDX-License-Identifier: MIT

package matrix_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tropix/matrix"
	"github.com/katalvlaran/tropix/semiring"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := matrix.New(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.New([][]semiring.Scalar{{sc(1), sc(2)}, {sc(3)}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.FromInts([][]int64{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.FromInts([][]int64{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNew_CopiesInput(t *testing.T) {
	t.Parallel()

	rows := [][]semiring.Scalar{{sc(1), sc(2)}, {sc(3), inf}}
	m := mustNew(t, rows)
	rows[0][0] = sc(99)

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "1", v.String())

	out := m.ToRows()
	out[1][1] = sc(7)
	v, err = m.At(1, 1)
	require.NoError(t, err)
	assert.True(t, v.IsInf())
}

func TestAt_OutOfRange(t *testing.T) {
	t.Parallel()

	m := mustFromInts(t, [][]int64{{1, 2}, {3, 4}})
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(rc[0], rc[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
	}
	assert.Equal(t, 2, m.Size())
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := mustFromInts(t, [][]int64{{1, 2}, {3, 4}})
	b := mustFromInts(t, [][]int64{{1, 2}, {3, 4}})
	c := mustNew(t, [][]semiring.Scalar{{sc(1), sc(2)}, {sc(3), inf}})
	d := mustFromInts(t, [][]int64{{1}})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(nil))
}

func TestStringAndJSON(t *testing.T) {
	t.Parallel()

	m := mustNew(t, [][]semiring.Scalar{{sc(1), sc(20)}, {inf, sc(0)}})
	assert.Equal(t, "[1, 20]\n[inf, 0]\n", m.String())

	raw, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,20],["inf",0]]`, string(raw))
}
