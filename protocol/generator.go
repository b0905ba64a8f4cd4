// SPDX-License-Identifier: MIT

package protocol

import (
	"fmt"

	"github.com/katalvlaran/tropix/matrix"
	"github.com/katalvlaran/tropix/poly"
	"github.com/katalvlaran/tropix/semiring"
)

// Generator draws random protocol instances from a seeded stream.
// A Generator must not be shared between goroutines.
type Generator struct {
	cfg generatorConfig
	rnd *sampler
}

// NewGenerator returns a Generator keyed by seed (any non-empty byte string;
// DeriveSeed output is the intended input).
//
// Errors: ErrEmptySeed, or the PRNG construction error.
func NewGenerator(seed []byte, opts ...GeneratorOption) (*Generator, error) {
	if len(seed) == 0 {
		return nil, fmt.Errorf("NewGenerator: %w", ErrEmptySeed)
	}
	rnd, err := newSampler(seed)
	if err != nil {
		return nil, fmt.Errorf("NewGenerator: %w", err)
	}
	return &Generator{cfg: newGeneratorConfig(opts...), rnd: rnd}, nil
}

// Size returns the configured matrix order.
func (g *Generator) Size() int { return g.cfg.size }

// Next draws instances until one has KA == KB and returns it.
//
// Errors: ErrNoAgreement after the configured number of attempts.
// Complexity: O(attempts·d·n³) big-integer semiring operations.
func (g *Generator) Next() (*Instance, error) {
	for attempt := 0; attempt < g.cfg.maxAttempts; attempt++ {
		in, err := g.draw()
		if err != nil {
			return nil, fmt.Errorf("Generator.Next: %w", err)
		}
		if in.Agreed() {
			return in, nil
		}
	}
	return nil, fmt.Errorf("Generator.Next: %d attempts: %w", g.cfg.maxAttempts, ErrNoAgreement)
}

// draw samples one instance without checking agreement.
func (g *Generator) draw() (*Instance, error) {
	var (
		ms  [3]*matrix.Dense
		err error
	)
	for i := range ms {
		if ms[i], err = g.matrix(); err != nil {
			return nil, err
		}
	}
	var ps [4]poly.Poly
	for i, sr := range []semiring.Semiring{semiring.MaxTimes, semiring.MinTimes, semiring.MaxTimes, semiring.MinTimes} {
		if ps[i], err = g.poly(sr); err != nil {
			return nil, err
		}
	}
	return NewInstance(ms[0], ms[1], ms[2], ps[0], ps[1], ps[2], ps[3])
}

// matrix samples an n×n matrix with entries in [1, coeffBound].
func (g *Generator) matrix() (*matrix.Dense, error) {
	n := g.cfg.size
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = make([]int64, n)
		for j := range rows[i] {
			v, err := g.rnd.intn(1, g.cfg.coeffBound)
			if err != nil {
				return nil, err
			}
			rows[i][j] = v
		}
	}
	return matrix.FromInts(rows)
}

// poly samples a polynomial over sr.
//
// Implementation:
//   - Stage 1: degree d in [1, degreeBound]; d+1 coefficients in [1, coeffBound].
//   - Stage 2: ⌊d·sparseRate⌋ distinct non-leading positions become sr.Zero().
//
// The leading coefficient is never replaced, so the result always passes
// Poly.Validate.
func (g *Generator) poly(sr semiring.Semiring) (poly.Poly, error) {
	d, err := g.rnd.intn(1, int64(g.cfg.degreeBound))
	if err != nil {
		return poly.Poly{}, err
	}
	coeffs := make([]semiring.Scalar, d+1)
	for i := range coeffs {
		v, err := g.rnd.intn(1, g.cfg.coeffBound)
		if err != nil {
			return poly.Poly{}, err
		}
		coeffs[i] = semiring.Int(v)
	}

	k := int(float64(d) * g.cfg.sparseRate)
	zeros, err := g.rnd.choose(1, d, k)
	if err != nil {
		return poly.Poly{}, err
	}
	for _, pos := range zeros {
		coeffs[pos] = sr.Zero()
	}
	return poly.New(coeffs...)
}
