// SPDX-License-Identifier: MIT

// Package matrix provides immutable square matrices over a tropical semiring
// together with the comparison and divisibility utilities the cryptanalysis
// needs.
//
// What & Why:
//
//	Dense is a row-major n×n array of semiring.Scalar values. Every operation
//	is parameterized by the semiring.Semiring it is evaluated in, so the same
//	Dense value can be multiplied in max-times and then in min-times, which
//	is exactly how the triple product of the key exchange is formed.
//
//	Matrices are values: constructors copy their input, operations return
//	fresh results and nothing in this package mutates a Dense after it has
//	been built. They can be shared between goroutines without locking.
//
// Surface:
//
//	Construction  New, FromInts, Zero, Identity
//	Algebra       Add, Mul, Scale, Pow
//	Comparison    (*Dense).Min, (*Dense).Max, (*Dense).Equal
//	Divisibility  ExactRatio, ExactIntegerRatio, IsRepeated
//	Validation    ValidateNotNil, ValidateSameShape, ValidateNonNegative, ValidateFinite
//
// Complexity:
//
//	Add/Scale O(n²), Mul O(n³), Pow O(n³·log k) semiring operations; all
//	ratio routines are O(n²) big-integer multiplications and never divide
//	except for the final exact quotient of ExactIntegerRatio.
package matrix
