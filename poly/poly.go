// SPDX-License-Identifier: MIT

package poly

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/katalvlaran/tropix/matrix"
	"github.com/katalvlaran/tropix/semiring"
)

// Poly is an immutable polynomial; coeffs[0] is the leading coefficient.
type Poly struct {
	coeffs []semiring.Scalar
}

var (
	_ fmt.Stringer     = Poly{}
	_ json.Marshaler   = Poly{}
	_ json.Unmarshaler = (*Poly)(nil)
)

// New returns the polynomial with the given coefficients, leading first.
func New(coeffs ...semiring.Scalar) (Poly, error) {
	if len(coeffs) == 0 {
		return Poly{}, fmt.Errorf("New: %w", ErrEmpty)
	}
	for i, c := range coeffs {
		if c.IsNegative() {
			return Poly{}, fmt.Errorf("New: coefficient %d=%v: %w", i, c, ErrNegativeCoeff)
		}
	}
	return Poly{coeffs: append([]semiring.Scalar(nil), coeffs...)}, nil
}

// FromInts is New for finite integer coefficients.
func FromInts(coeffs ...int64) (Poly, error) {
	sc := make([]semiring.Scalar, len(coeffs))
	for i, c := range coeffs {
		sc[i] = semiring.Int(c)
	}
	return New(sc...)
}

// Monomial returns x^deg over sr: the unit followed by deg semiring zeros.
func Monomial(sr semiring.Semiring, deg int) (Poly, error) {
	if deg < 0 {
		return Poly{}, fmt.Errorf("Monomial(%d): %w", deg, ErrNegativeDegree)
	}
	coeffs := make([]semiring.Scalar, deg+1)
	coeffs[0] = sr.One()
	for i := 1; i <= deg; i++ {
		coeffs[i] = sr.Zero()
	}
	return Poly{coeffs: coeffs}, nil
}

// Degree is the number of coefficients minus one; -1 for the zero value.
func (p Poly) Degree() int { return len(p.coeffs) - 1 }

// Len returns the number of coefficients.
func (p Poly) Len() int { return len(p.coeffs) }

// Coeffs returns a copy of the coefficients, leading first.
func (p Poly) Coeffs() []semiring.Scalar {
	return append([]semiring.Scalar(nil), p.coeffs...)
}

// Coeff returns the coefficient at storage index i (0 is the leading one).
func (p Poly) Coeff(i int) semiring.Scalar { return p.coeffs[i] }

// Validate reports ErrEmpty or ErrAllZero for polynomials unusable as a
// protocol secret over sr.
func (p Poly) Validate(sr semiring.Semiring) error {
	if len(p.coeffs) == 0 {
		return fmt.Errorf("Validate: %w", ErrEmpty)
	}
	zero := sr.Zero()
	for _, c := range p.coeffs {
		if !c.Equal(zero) {
			return nil
		}
	}
	return fmt.Errorf("Validate(%s): %w", sr.Name(), ErrAllZero)
}

// Equal reports coefficient-wise equality.
func (p Poly) Equal(q Poly) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if !p.coeffs[i].Equal(q.coeffs[i]) {
			return false
		}
	}
	return true
}

// String renders the coefficient list, e.g. "[3, 1, inf]".
func (p Poly) String() string {
	parts := make([]string, len(p.coeffs))
	for i, c := range p.coeffs {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// MarshalJSON encodes the coefficient list, leading first.
func (p Poly) MarshalJSON() ([]byte, error) {
	if p.coeffs == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p.coeffs)
}

// UnmarshalJSON decodes a coefficient list produced by MarshalJSON.
func (p *Poly) UnmarshalJSON(b []byte) error {
	var coeffs []semiring.Scalar
	if err := json.Unmarshal(b, &coeffs); err != nil {
		return err
	}
	q, err := New(coeffs...)
	if err != nil {
		return err
	}
	*p = q
	return nil
}

// Eval returns p(a) over sr.
//
// Implementation:
//   - Walk the coefficients from the constant term up, keeping D = a^i.
//   - C = C ⊕ D·c_i at every step; D = D⊗a after every step but the last.
//
// Errors: ErrEmpty, or the matrix errors for a nil a.
// Complexity: O(d·n³).
func Eval(sr semiring.Semiring, a *matrix.Dense, p Poly) (*matrix.Dense, error) {
	if len(p.coeffs) == 0 {
		return nil, fmt.Errorf("Eval: %w", ErrEmpty)
	}
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("Eval: %w", err)
	}

	n := a.Size()
	acc, err := matrix.Zero(sr, n)
	if err != nil {
		return nil, fmt.Errorf("Eval: %w", err)
	}
	power, err := matrix.Identity(sr, n)
	if err != nil {
		return nil, fmt.Errorf("Eval: %w", err)
	}

	d := p.Degree()
	for i := 0; i <= d; i++ {
		term, err := matrix.Scale(sr, power, p.coeffs[d-i])
		if err != nil {
			return nil, fmt.Errorf("Eval: %w", err)
		}
		if acc, err = matrix.Add(sr, acc, term); err != nil {
			return nil, fmt.Errorf("Eval: %w", err)
		}
		if i != d {
			if power, err = matrix.Mul(sr, power, a); err != nil {
				return nil, fmt.Errorf("Eval: %w", err)
			}
		}
	}
	return acc, nil
}
