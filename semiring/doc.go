// SPDX-License-Identifier: MIT

// Package semiring provides the scalar layer of the tropical engine: a
// closed finite/infinite Scalar type and the two idempotent semirings the
// key exchange is built on.
//
// What & Why:
//
//	The max-times and min-times semirings share one carrier set, the
//	non-negative integers extended by a single "infinite" element, but give
//	it different algebraic roles:
//
//	  | operation | MaxTimes                    | MinTimes                 |
//	  |-----------|-----------------------------|--------------------------|
//	  | Add       | max, Inf absorbs            | min, Inf is neutral      |
//	  | Mul       | a·b, 0·Inf = 0, else Inf    | a·b, Inf absorbs         |
//	  | Zero      | 0                           | Inf                      |
//	  | One       | 1                           | 1                        |
//
//	Scalars are backed by math/big so repeated matrix powers never overflow.
//	A Scalar is a value: operations always return fresh results and never
//	touch their operands.
//
// Complexity:
//
//	Add is O(1) apart from big.Int comparison; Mul is O(w²) in the word
//	length w of the operands.
package semiring
