// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape and carrier-set checks.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil and was built by a
// constructor. A zero-value Dense{} has order 0 and is treated as nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil || m.n == 0 {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	return nil
}

// ValidateSameShape ensures a and b are non-nil and of the same order.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.n != b.n {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}
	return nil
}

// ValidateNonNegative ensures every finite entry of m is ≥ 0.
// The returned error names the first offending coordinate (row-major).
// Complexity: O(n²).
func ValidateNonNegative(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateNonNegative", err)
	}
	for k, v := range m.data {
		if v.IsNegative() {
			return fmt.Errorf("ValidateNonNegative: entry (%d,%d)=%v: %w", k/m.n, k%m.n, v, ErrNegativeEntry)
		}
	}
	return nil
}

// ValidateFinite ensures m holds no Inf entry, i.e. it is a plain integer
// matrix. The returned error names the first offending coordinate (row-major).
//
// Note: Inf is a legal semiring value and may appear in computed matrices
// (keys, polynomial values). Public protocol inputs must be finite.
// Complexity: O(n²).
func ValidateFinite(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	for k, v := range m.data {
		if v.IsInf() {
			return fmt.Errorf("ValidateFinite: entry (%d,%d): %w", k/m.n, k%m.n, ErrInfiniteEntry)
		}
	}
	return nil
}
