// SPDX-License-Identifier: MIT

// Package attack recovers the shared key of the max-times/min-times key
// exchange from public data only.
//
// Given public M, N, X and a party's message A = (p(M)⊗X)⊛t(N), FindPolys
// searches for polynomials (p′, t′) with (p′(M)⊗X)⊛t′(N) == A. The search
// restricts p′ to monomials M^i and builds t′ greedily: for each power N^j
// the coefficient is the least integer c with (M^i⊗X)⊛N^j·c ≥ A entrywise,
// or the min-times zero when no such integer exists.
//
// Attack runs the search against both messages and cross-checks the keys
//
//	k1 = (p′(M)⊗B)⊛t′(N),  k2 = (q′(M)⊗A)⊛r′(N)
//
// returning k1 only when the two agree.
//
// Pruning:
//   - The M-power loop stops when min(M^i⊗X) exceeds min(A). This assumes
//     min(M^i⊗X) is non-decreasing in i, which holds for matrices with entries
//     ≥ 1 (the generator's range).
//   - The N-power loop stops once min((M^i⊗X)⊛N^j) exceeds max(A).
//   - Both loops stop when the newest power is a constant multiple of an
//     earlier one, since the power sequence has become periodic.
//
// Options:
//
//	PBound, TBound  – largest degree tried for p′ and t′ (0 is allowed).
//	Ctx             – checked once per M power; nil means Background.
//
// Errors:
//   - ErrInvalidInput for malformed matrices (nil, mismatched, negative or
//     Inf entries), ErrBadBound for negative bounds,
//     the context error on cancellation. Search failure is an Outcome.
package attack
