// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Exact proportionality tests between matrices without floating point.
//   - Every comparison a/b ? c/d is performed as a·d ? c·b on big integers.
//
// Contract:
//   - Routines never fault on zero or infinite entries; undefined ratios are
//     reported as "no ratio" (false / Inf) instead.

package matrix

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/tropix/semiring"
)

// Ratio is the constant c = Num/Den with A = c·B, kept unreduced as the
// reference entry pair it was read from.
type Ratio struct {
	Num *big.Int
	Den *big.Int
}

// String renders the ratio as "Num/Den".
func (r Ratio) String() string { return fmt.Sprintf("%v/%v", r.Num, r.Den) }

// ExactRatio reports whether a = c·b entrywise for one rational constant c.
//
// Implementation:
//   - Stage 1: the reference pair (ra, rb) is the first entry, in row-major
//     order, where both a and b are finite and non-zero. Without one there is
//     no ratio.
//   - Stage 2: every entry pair must satisfy: both 0 or both Inf (skipped),
//     otherwise neither side Inf and a·rb == b·ra. A 0 facing a non-zero
//     finite value fails the cross-product test.
//
// The test is deliberately conservative: a single mismatched zero/Inf pair
// rejects proportionality.
//
// Returns (ratio, true) on full consistency; (Ratio{}, false) otherwise,
// including nil or differently sized operands.
// Complexity: O(n²) big-integer multiplications.
func ExactRatio(a, b *Dense) (Ratio, bool) {
	if ValidateSameShape(a, b) != nil {
		return Ratio{}, false
	}

	var ra, rb semiring.Scalar
	found := false
	for k := range a.data {
		x, y := a.data[k], b.data[k]
		if x.IsInf() || y.IsInf() || x.IsZero() || y.IsZero() {
			continue
		}
		ra, rb = x, y
		found = true
		break
	}
	if !found {
		return Ratio{}, false
	}

	for k := range a.data {
		x, y := a.data[k], b.data[k]
		if x.IsZero() && y.IsZero() {
			continue
		}
		if x.IsInf() && y.IsInf() {
			continue
		}
		if x.IsInf() || y.IsInf() {
			return Ratio{}, false
		}
		if !x.Times(rb).Equal(y.Times(ra)) {
			return Ratio{}, false
		}
	}
	return Ratio{Num: ra.Value(), Den: rb.Value()}, true
}

// fraction is one entry ratio x/y; unbounded stands for x/0 (x > 0) and Inf/y.
type fraction struct {
	num, den  semiring.Scalar
	unbounded bool
}

// entryFraction classifies x/y. ok is false for 0/0 and Inf/Inf, which carry
// no information about the constant.
func entryFraction(x, y semiring.Scalar) (f fraction, ok bool) {
	switch {
	case x.IsInf() && y.IsInf():
		return fraction{}, false
	case y.IsInf():
		return fraction{num: semiring.Int(0), den: semiring.Int(1)}, true
	case x.IsInf():
		return fraction{unbounded: true}, true
	case y.IsZero():
		if x.IsZero() {
			return fraction{}, false
		}
		return fraction{unbounded: true}, true
	}
	return fraction{num: x, den: y}, true
}

// cmp orders bounded fractions by cross-multiplication.
func (f fraction) cmp(g fraction) int {
	return f.num.Times(g.den).Cmp(g.num.Times(f.den))
}

// ExactIntegerRatio returns max_{i,j} a[i][j]/b[i][j] when that maximum is an
// exact integer, and Inf otherwise.
//
// This is the smallest integer coefficient c with c·b ≥ a entrywise, i.e. the
// forced min-times coefficient of a polynomial term. The maximum is tracked
// with cross-multiplication; the only division is the final exact quotient.
//
// Degenerate entries: x/Inf counts as 0; Inf/y and x/0 with x > 0 are
// unbounded and make the result Inf; 0/0 and Inf/Inf are skipped. No
// informative entry, nil operands or mismatched sizes also give Inf.
//
// Note:
//   - Inf is the min-times zero, so an Inf result drops the term from t′.
//   - A ratio that is not an integer also gives Inf: no integer c makes
//     c·b meet a exactly at the maximising entry.
//
// Complexity: O(n²) big-integer multiplications.
func ExactIntegerRatio(a, b *Dense) semiring.Scalar {
	if ValidateSameShape(a, b) != nil {
		return semiring.Inf()
	}

	var best fraction
	has := false // whether best holds an informative entry yet
	for k := range a.data {
		f, ok := entryFraction(a.data[k], b.data[k])
		if !ok {
			continue // 0/0 or Inf/Inf constrain nothing
		}
		if f.unbounded {
			return semiring.Inf()
		}
		// Compare num/den by cross-multiplication; ties keep the later entry.
		if !has || f.cmp(best) >= 0 {
			best, has = f, true
		}
	}
	if !has {
		return semiring.Inf()
	}

	// The maximum must divide exactly to be a usable coefficient.
	q, r := new(big.Int).QuoRem(best.num.Value(), best.den.Value(), new(big.Int))
	if r.Sign() != 0 {
		return semiring.Inf()
	}
	return semiring.Big(q)
}

// IsRepeated reports whether the last matrix of seq is a constant multiple
// (ExactRatio) of some strictly earlier element.
//
// Repeated multiplication by a fixed integer matrix in either semiring is
// ultimately periodic up to a scalar factor, so this detects the cycle of a
// growing power sequence. Sequences shorter than two never repeat.
// Complexity: O(len(seq)·n²).
func IsRepeated(seq []*Dense) bool {
	if len(seq) < 2 {
		return false
	}
	last := seq[len(seq)-1]
	for _, earlier := range seq[:len(seq)-1] {
		if _, ok := ExactRatio(last, earlier); ok {
			return true
		}
	}
	return false
}
