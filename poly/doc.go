// SPDX-License-Identifier: MIT

// Package poly holds semiring polynomials with scalar coefficients and
// evaluates them on square matrices.
//
// Coefficients are stored most significant first: the list
//
//	[c_d, …, c_1, c_0]
//
// stands for c_d·A^d ⊕ … ⊕ c_1·A ⊕ c_0·I, where ⊕ and the scalar product are
// those of the chosen semiring. A coefficient equal to the semiring zero drops
// its term (0 in max-times, Inf in min-times).
//
// Example:
//
//	p, _ := poly.FromInts(1, 5, 10, 0) // M³ ⊕ 5M² ⊕ 10M in max-times
//	pm, _ := poly.Eval(semiring.MaxTimes, m, p)
package poly
