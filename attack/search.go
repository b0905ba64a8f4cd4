// SPDX-License-Identifier: MIT
// Package: attack
//
// Purpose:
//   - Reconstruct (p′, t′) with (p′(M)⊗X)⊛t′(N) == A by bounded search.
//
// Implementation:
//   - Stage 1: for i = 0..PBound take MiX = M^i⊗X; stop on a periodic M power
//     or when min(MiX) > min(A).
//   - Stage 2: for j = 0..TBound take the term MiX⊛N^j, stop on the N period
//     or when min(term) > max(A); choose t_j = ExactIntegerRatio(A, term) and
//     fold N^j·t_j into the running t′(N).
//   - Stage 3: report success as soon as MiX⊛t′(N) == A.
//
// Caches:
//   - Powers of M and N are computed once per search and extended lazily;
//     the N period is detected once and reused for every later M power.

package attack

import (
	"fmt"

	"github.com/katalvlaran/tropix/matrix"
	"github.com/katalvlaran/tropix/poly"
	"github.com/katalvlaran/tropix/protocol"
	"github.com/katalvlaran/tropix/semiring"
)

var (
	maxTimes = semiring.MaxTimes
	minTimes = semiring.MinTimes
)

// Reconstruction is the outcome of one polynomial search.
// P and T are set only when Found is true.
type Reconstruction struct {
	P     poly.Poly // max-times monomial M^i
	T     poly.Poly // min-times coefficients, leading first
	Found bool
}

// searcher owns the power caches of one FindPolys call.
type searcher struct {
	m, n, x, target *matrix.Dense
	opts            Options
	minA, maxA      semiring.Scalar

	mPowers []*matrix.Dense // M^0..M^i (max-times)
	nPowers []*matrix.Dense // N^0..N^j (min-times)

	nPeriod  int // index of the first repeated N power; -1 until found
	nChecked int // len(nPowers) at the last repetition test
}

// FindPolys searches for p′ (a monomial of degree ≤ PBound) and t′ (degree
// ≤ TBound) such that (p′(M)⊗X)⊛t′(N) == target.
//
// Errors:
//   - ErrInvalidInput wrapping the matrix error for nil, mismatched,
//     negative or Inf inputs.
//   - ErrBadBound for negative bounds.
//   - the context error when opts.Ctx is cancelled.
//
// Complexity: O(PBound·TBound·n³) semiring operations plus the repetition
// tests, O(len²·n²) per power sequence.
func FindPolys(m, n, x, target *matrix.Dense, opts Options) (Reconstruction, error) {
	if _, err := protocol.ValidatePublic(m, n, x, target); err != nil {
		return Reconstruction{}, fmt.Errorf("FindPolys: %w: %w", ErrInvalidInput, err)
	}
	if err := opts.Validate(); err != nil {
		return Reconstruction{}, fmt.Errorf("FindPolys: %w", err)
	}
	s, err := newSearcher(m, n, x, target, opts)
	if err != nil {
		return Reconstruction{}, fmt.Errorf("FindPolys: %w", err)
	}
	rec, err := s.run()
	if err != nil {
		return Reconstruction{}, fmt.Errorf("FindPolys: %w", err)
	}
	return rec, nil
}

func newSearcher(m, n, x, target *matrix.Dense, opts Options) (*searcher, error) {
	size := m.Size()
	mi, err := matrix.Identity(maxTimes, size)
	if err != nil {
		return nil, err
	}
	nj, err := matrix.Identity(minTimes, size)
	if err != nil {
		return nil, err
	}
	return &searcher{
		m: m, n: n, x: x, target: target,
		opts:    opts,
		minA:    target.Min(),
		maxA:    target.Max(),
		mPowers: []*matrix.Dense{mi},
		nPowers: []*matrix.Dense{nj},
		nPeriod: -1,
	}, nil
}

func (s *searcher) run() (Reconstruction, error) {
	ctx := s.opts.ctx()
	for i := 0; i <= s.opts.PBound; i++ {
		if err := ctx.Err(); err != nil {
			return Reconstruction{}, err
		}
		// M^i is a multiple of an earlier power: later i add nothing new.
		if matrix.IsRepeated(s.mPowers) {
			return Reconstruction{}, nil
		}

		// MiX = M^i ⊗ X, the fixed left factor for this p′ = M^i.
		mix, err := matrix.Mul(maxTimes, s.mPowers[len(s.mPowers)-1], s.x)
		if err != nil {
			return Reconstruction{}, err
		}
		// Assumes min(M^i ⊗ X) is non-decreasing in i (entries ≥ 1).
		if mix.Min().Cmp(s.minA) > 0 {
			return Reconstruction{}, nil
		}

		t, ok, err := s.searchT(mix)
		if err != nil {
			return Reconstruction{}, err
		}
		if ok {
			p, err := poly.Monomial(maxTimes, i)
			if err != nil {
				return Reconstruction{}, err
			}
			return Reconstruction{P: p, T: t, Found: true}, nil
		}

		// Extend the cache lazily; the last iteration never needs M^(i+1).
		if i < s.opts.PBound {
			next, err := matrix.Mul(maxTimes, s.mPowers[len(s.mPowers)-1], s.m)
			if err != nil {
				return Reconstruction{}, err
			}
			s.mPowers = append(s.mPowers, next)
		}
	}
	return Reconstruction{}, nil
}

// searchT builds t′ greedily for a fixed MiX. ok reports MiX⊛t′(N) == A.
func (s *searcher) searchT(mix *matrix.Dense) (poly.Poly, bool, error) {
	// acc = t′(N) built so far; starts at the min-times zero (all Inf).
	acc, err := matrix.Zero(minTimes, mix.Size())
	if err != nil {
		return poly.Poly{}, false, err
	}
	var coeffs []semiring.Scalar // t_0, t_1, … in discovery order

	for j := 0; j <= s.opts.TBound; j++ {
		if s.nPeriodReached(j) {
			break
		}

		nj := s.nPowers[j]
		term, err := matrix.Mul(minTimes, mix, nj)
		if err != nil {
			return poly.Poly{}, false, err
		}
		// Every coefficient ≥ 1 would push this term above A everywhere.
		if term.Min().Cmp(s.maxA) > 0 {
			break
		}

		// Forced coefficient: least integer c with c·term ≥ A, or Inf.
		c := matrix.ExactIntegerRatio(s.target, term)
		coeffs = append(coeffs, c)
		scaled, err := matrix.Scale(minTimes, nj, c)
		if err != nil {
			return poly.Poly{}, false, err
		}
		if acc, err = matrix.Add(minTimes, acc, scaled); err != nil {
			return poly.Poly{}, false, err
		}

		// Check the partial t′ against the target.
		got, err := matrix.Mul(minTimes, mix, acc)
		if err != nil {
			return poly.Poly{}, false, err
		}
		if got.Equal(s.target) {
			t, err := poly.New(reversed(coeffs)...)
			if err != nil {
				return poly.Poly{}, false, err
			}
			return t, true, nil
		}

		// N powers are shared across all i; grow only past the cached end.
		if len(s.nPowers) == j+1 && j < s.opts.TBound {
			next, err := matrix.Mul(minTimes, s.nPowers[j], s.n)
			if err != nil {
				return poly.Poly{}, false, err
			}
			s.nPowers = append(s.nPowers, next)
		}
	}
	return poly.Poly{}, false, nil
}

// nPeriodReached reports whether the inner loop must stop at index j.
// The newest cached N power is tested for repetition once; on a hit the
// period is j and every later search stops there.
func (s *searcher) nPeriodReached(j int) bool {
	if s.nPeriod >= 0 {
		return j == s.nPeriod
	}
	if len(s.nPowers) == s.nChecked {
		return false
	}
	s.nChecked = len(s.nPowers)
	if matrix.IsRepeated(s.nPowers) {
		s.nPeriod = j
		return true
	}
	return false
}

// reversed returns coeffs in leading-first order.
func reversed(coeffs []semiring.Scalar) []semiring.Scalar {
	out := make([]semiring.Scalar, len(coeffs))
	for i, c := range coeffs {
		out[len(coeffs)-1-i] = c
	}
	return out
}
