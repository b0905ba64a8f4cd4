// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Semiring-generic algebra over Dense: neutral matrices, elementwise sum,
//     product, scalar product and integer power.
//   - Exported facades validate once; unexported kernels (add/mul/scale)
//     assume validated shapes and are reused by Pow.
//
// Determinism:
//   - Fixed i → j → k loop order, so accumulation order never varies.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/tropix/semiring"
)

// Operation name constants for unified error wrapping.
const (
	opZero     = "Zero"
	opIdentity = "Identity"
	opAdd      = "Add"
	opMul      = "Mul"
	opScale    = "Scale"
	opPow      = "Pow"
)

// Zero returns the n×n matrix filled with sr.Zero(), the additive identity
// of the matrix semiring.
// Complexity: O(n²).
func Zero(sr semiring.Semiring, n int) (*Dense, error) {
	if n <= 0 {
		return nil, matrixErrorf(opZero, ErrInvalidDimensions)
	}
	return newDense(n, sr.Zero()), nil
}

// Identity returns the n×n matrix with sr.One() on the diagonal and
// sr.Zero() elsewhere.
// Complexity: O(n²).
func Identity(sr semiring.Semiring, n int) (*Dense, error) {
	if n <= 0 {
		return nil, matrixErrorf(opIdentity, ErrInvalidDimensions)
	}
	return identity(sr, n), nil
}

func identity(sr semiring.Semiring, n int) *Dense {
	out := newDense(n, sr.Zero())
	one := sr.One()
	for i := 0; i < n; i++ {
		out.data[i*n+i] = one
	}
	return out
}

// Add returns the elementwise semiring sum a ⊕ b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n²).
func Add(sr semiring.Semiring, a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	return add(sr, a, b), nil
}

func add(sr semiring.Semiring, a, b *Dense) *Dense {
	out := &Dense{n: a.n, data: make([]semiring.Scalar, len(a.data))}
	for k := range a.data {
		out.data[k] = sr.Add(a.data[k], b.data[k])
	}
	return out
}

// Mul returns the semiring product a ⊗ b:
//
//	C[i][j] = ⊕_k a[i][k] ⊗ b[k][j], starting from sr.Zero().
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n³) semiring operations.
func Mul(sr semiring.Semiring, a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	return mul(sr, a, b), nil
}

func mul(sr semiring.Semiring, a, b *Dense) *Dense {
	n := a.n
	out := &Dense{n: n, data: make([]semiring.Scalar, n*n)}
	var (
		i, j, k      int
		baseI        int
		acc          semiring.Scalar
		adata, bdata = a.data, b.data
	)
	for i = 0; i < n; i++ {
		baseI = i * n // row offset of a[i][*] and out[i][*]
		for j = 0; j < n; j++ {
			// out[i][j] = ⊕_k a[i][k] ⊗ b[k][j], seeded with the additive identity
			acc = sr.Zero()
			for k = 0; k < n; k++ {
				acc = sr.Add(acc, sr.Mul(adata[baseI+k], bdata[k*n+j]))
			}
			out.data[baseI+j] = acc
		}
	}
	return out
}

// Scale returns the matrix with every entry multiplied by c: out[i][j] = a[i][j] ⊗ c.
// Errors: ErrNilMatrix.
// Complexity: O(n²).
func Scale(sr semiring.Semiring, a *Dense, c semiring.Scalar) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	return scale(sr, a, c), nil
}

func scale(sr semiring.Semiring, a *Dense, c semiring.Scalar) *Dense {
	out := &Dense{n: a.n, data: make([]semiring.Scalar, len(a.data))}
	for k, v := range a.data {
		out.data[k] = sr.Mul(v, c)
	}
	return out
}

// Pow returns a^k in the given semiring using exponentiation by squaring.
//
// Implementation:
//   - Stage 1: validate a and k ≥ 0; k == 0 yields the identity.
//   - Stage 2: iterate over the bits of k, multiplying the accumulator by the
//     current square on set bits and squaring the base between bits.
//
// The loop is iterative, so call depth stays constant for any k. Powers of
// one matrix commute, which makes the accumulation order irrelevant.
//
// Errors: ErrNilMatrix, ErrNegativeExponent.
// Complexity: O(n³·log k).
func Pow(sr semiring.Semiring, a *Dense, k int) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if k < 0 {
		return nil, fmt.Errorf("%s(k=%d): %w", opPow, k, ErrNegativeExponent)
	}

	result := identity(sr, a.n)
	base := a
	for k > 0 {
		if k&1 == 1 {
			result = mul(sr, result, base)
		}
		k >>= 1
		if k > 0 {
			base = mul(sr, base, base)
		}
	}
	return result, nil
}
