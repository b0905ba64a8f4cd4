// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tropix/matrix"
	"github.com/katalvlaran/tropix/semiring"
)

func TestMinMax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rows     [][]semiring.Scalar
		min, max semiring.Scalar
	}{
		{"finite", [][]semiring.Scalar{{sc(4), sc(9)}, {sc(3), sc(7)}}, sc(3), sc(9)},
		{"zero present", [][]semiring.Scalar{{sc(3), sc(5)}, {sc(0), sc(8)}}, sc(0), sc(8)},
		{"inf ignored by min", [][]semiring.Scalar{{inf, sc(4)}, {sc(2), sc(9)}}, sc(2), inf},
		{"all inf", [][]semiring.Scalar{{inf, inf}, {inf, inf}}, inf, inf},
		{"single", [][]semiring.Scalar{{sc(6)}}, sc(6), sc(6)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := mustNew(t, tc.rows)
			assert.Truef(t, tc.min.Equal(m.Min()), "min: want %v, got %v", tc.min, m.Min())
			assert.Truef(t, tc.max.Equal(m.Max()), "max: want %v, got %v", tc.max, m.Max())
		})
	}
}

func TestMinMax_NilAndZeroValue(t *testing.T) {
	t.Parallel()

	for name, m := range map[string]*matrix.Dense{"nil": nil, "zero value": {}} {
		m := m
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.NotPanics(t, func() {
				assert.True(t, m.Min().IsInf())
				assert.True(t, m.Max().IsZero())
			})
		})
	}
}
