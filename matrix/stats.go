// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/tropix/semiring"

// Min returns the smallest entry of m.
//
// Inf entries are ignored unless every entry is Inf, in which case the
// result is Inf. The scan stops at the first 0, which no entry can undercut.
// A nil or zero-value m has no entries and yields Inf, the identity of min.
// Complexity: O(n²).
func (m *Dense) Min() semiring.Scalar {
	best := semiring.Inf()
	if ValidateNotNil(m) != nil {
		return best
	}
	for _, v := range m.data {
		// 0 is the floor of the carrier set.
		if v.IsZero() {
			return v
		}
		if v.IsInf() {
			continue
		}
		if best.IsInf() || v.Cmp(best) < 0 {
			best = v
		}
	}
	return best
}

// Max returns the largest entry of m, or Inf as soon as an Inf entry is seen.
// A nil or zero-value m yields 0, the identity of max on ℕ ∪ {∞}.
// Complexity: O(n²).
func (m *Dense) Max() semiring.Scalar {
	if ValidateNotNil(m) != nil {
		return semiring.Int(0)
	}
	best := m.data[0]
	for _, v := range m.data {
		// Inf absorbs every other candidate.
		if v.IsInf() {
			return v
		}
		if v.Cmp(best) > 0 {
			best = v
		}
	}
	return best
}
