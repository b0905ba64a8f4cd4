// SPDX-License-Identifier: MIT

package protocol

import (
	"fmt"

	"github.com/katalvlaran/tropix/matrix"
	"github.com/katalvlaran/tropix/poly"
	"github.com/katalvlaran/tropix/semiring"
)

// TripleProduct returns (p(M) ⊗ Y) ⊛ t(N), with p evaluated in max-times and
// t in min-times.
//
// Errors: matrix shape errors for nil or mismatched operands, poly.ErrEmpty.
// Complexity: O((deg p + deg t + 2)·n³).
func TripleProduct(m, n, y *matrix.Dense, p, t poly.Poly) (*matrix.Dense, error) {
	pm, err := poly.Eval(semiring.MaxTimes, m, p)
	if err != nil {
		return nil, fmt.Errorf("TripleProduct: p(M): %w", err)
	}
	tn, err := poly.Eval(semiring.MinTimes, n, t)
	if err != nil {
		return nil, fmt.Errorf("TripleProduct: t(N): %w", err)
	}
	left, err := matrix.Mul(semiring.MaxTimes, pm, y)
	if err != nil {
		return nil, fmt.Errorf("TripleProduct: %w", err)
	}
	out, err := matrix.Mul(semiring.MinTimes, left, tn)
	if err != nil {
		return nil, fmt.Errorf("TripleProduct: %w", err)
	}
	return out, nil
}
