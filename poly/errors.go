// SPDX-License-Identifier: MIT

package poly

import "errors"

var (
	// ErrEmpty indicates a polynomial without coefficients.
	ErrEmpty = errors.New("poly: no coefficients")

	// ErrAllZero indicates that every coefficient equals the semiring zero.
	ErrAllZero = errors.New("poly: all coefficients are the semiring zero")

	// ErrNegativeCoeff indicates a finite coefficient below zero.
	ErrNegativeCoeff = errors.New("poly: negative coefficient")

	// ErrNegativeDegree indicates a negative monomial degree.
	ErrNegativeDegree = errors.New("poly: negative degree")
)
