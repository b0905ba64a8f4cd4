// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Small deterministic fixtures shared by the matrix tests and benchmarks.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tropix/matrix"
	"github.com/katalvlaran/tropix/semiring"
)

var inf = semiring.Inf()

// mustFromInts builds a matrix from integer rows or fails the test.
func mustFromInts(tb testing.TB, rows [][]int64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.FromInts(rows)
	require.NoError(tb, err)
	return m
}

// mustNew builds a matrix from scalar rows or fails the test.
func mustNew(tb testing.TB, rows [][]semiring.Scalar) *matrix.Dense {
	tb.Helper()
	m, err := matrix.New(rows)
	require.NoError(tb, err)
	return m
}

// requireMatrixEqual compares entrywise and prints both matrices on failure.
func requireMatrixEqual(tb testing.TB, want, got *matrix.Dense) {
	tb.Helper()
	require.NotNil(tb, got)
	require.Truef(tb, want.Equal(got), "want:\n%vgot:\n%v", want, got)
}

// randDense fills an n×n matrix with entries in [1, bound] from a seeded source.
func randDense(tb testing.TB, rng *rand.Rand, n int, bound int64) *matrix.Dense {
	tb.Helper()
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = make([]int64, n)
		for j := range rows[i] {
			rows[i][j] = 1 + rng.Int63n(bound)
		}
	}
	return mustFromInts(tb, rows)
}

// sc is shorthand for a finite scalar.
func sc(v int64) semiring.Scalar { return semiring.Int(v) }
