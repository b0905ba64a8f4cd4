// SPDX-License-Identifier: MIT

// Package protocol models the two-party key exchange over the max-times and
// min-times semirings and generates random instances of it.
//
// Public data are three n×n matrices M, N, X. Alice keeps a max-times
// polynomial p and a min-times polynomial t; Bob keeps q and r. They publish
//
//	A = (p(M) ⊗ X) ⊛ t(N)
//	B = (q(M) ⊗ X) ⊛ r(N)
//
// and derive KA = (p(M) ⊗ B) ⊛ t(N) and KB = (q(M) ⊗ A) ⊛ r(N). Here ⊗ is the
// max-times and ⊛ the min-times matrix product. The two products do not
// associate with each other in general, so KA == KB is a property of a
// concrete instance; the Generator keeps drawing until it holds.
//
// Randomness is deterministic per seed: a Generator draws from a lattigo
// keyed PRNG, and DeriveSeed splits a master seed into independent per-trial
// seeds with domain-separated SHAKE256.
package protocol
