// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/tropix/matrix"
	"github.com/katalvlaran/tropix/semiring"
)

// ExampleMul multiplies the same pair of matrices in both semirings.
func ExampleMul() {
	a, _ := matrix.FromInts([][]int64{{1, 2}, {3, 4}})
	b, _ := matrix.FromInts([][]int64{{2, 1}, {1, 2}})

	maxProd, _ := matrix.Mul(semiring.MaxTimes, a, b)
	minProd, _ := matrix.Mul(semiring.MinTimes, a, b)
	fmt.Print(maxProd)
	fmt.Print(minProd)

	// Output:
	// [2, 4]
	// [6, 8]
	// [2, 1]
	// [4, 3]
}

// ExampleExactIntegerRatio finds the least integer c with c·b ≥ a.
func ExampleExactIntegerRatio() {
	a, _ := matrix.FromInts([][]int64{{6, 8}, {9, 12}})
	b, _ := matrix.FromInts([][]int64{{2, 4}, {3, 4}})
	fmt.Println(matrix.ExactIntegerRatio(a, b))

	// Output:
	// 3
}
