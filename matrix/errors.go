// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and operations return these sentinels (possibly wrapped with
// fmt.Errorf("Op: %w", ErrX)); tests check them via errors.Is. No function in
// this package panics on user-supplied input.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates a requested size that is not positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNonSquare signals ragged or rectangular input rows.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates operands of different sizes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil or zero-value *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNegativeEntry signals a finite entry below zero; the carrier set of
	// both semirings is the non-negative integers plus Inf.
	ErrNegativeEntry = errors.New("matrix: negative entry")

	// ErrInfiniteEntry signals an Inf entry where only integers are allowed.
	ErrInfiniteEntry = errors.New("matrix: infinite entry")

	// ErrNegativeExponent is returned by Pow for k < 0.
	ErrNegativeExponent = errors.New("matrix: negative exponent")
)
