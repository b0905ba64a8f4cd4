// SPDX-License-Identifier: MIT

package semiring

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"
)

// infText is the canonical textual form of the infinite scalar.
const infText = "inf"

// bigZero is a shared read-only zero used for finite scalars with v == nil.
var bigZero = new(big.Int)

// Scalar is either a finite integer or the distinguished infinite value.
//
// The zero value is the finite integer 0. The big.Int behind a finite
// Scalar is never mutated after construction, so Scalars may be copied and
// shared freely across goroutines.
type Scalar struct {
	inf bool     // true for the infinite element; v is ignored then
	v   *big.Int // finite value; nil means 0
}

// Int returns the finite scalar v. Negative values are representable so that
// validators can report them; no semiring operation produces one.
func Int(v int64) Scalar {
	if v == 0 {
		return Scalar{}
	}
	return Scalar{v: big.NewInt(v)}
}

// Big returns the finite scalar holding a copy of v. A nil v yields 0.
func Big(v *big.Int) Scalar {
	if v == nil || v.Sign() == 0 {
		return Scalar{}
	}
	return Scalar{v: new(big.Int).Set(v)}
}

// Inf returns the infinite scalar.
func Inf() Scalar { return Scalar{inf: true} }

// Parse decodes "inf" (also "∞", "infty") or a non-negative base-10 integer.
func Parse(s string) (Scalar, error) {
	t := strings.TrimSpace(s)
	switch strings.ToLower(t) {
	case infText, "infty", "∞":
		return Inf(), nil
	}
	v, ok := new(big.Int).SetString(t, 10)
	if !ok {
		return Scalar{}, fmt.Errorf("Parse(%q): %w", s, ErrParse)
	}
	if v.Sign() < 0 {
		return Scalar{}, fmt.Errorf("Parse(%q): %w", s, ErrNegative)
	}
	return Big(v), nil
}

// IsInf reports whether s is the infinite element.
func (s Scalar) IsInf() bool { return s.inf }

// IsZero reports whether s is the finite integer 0.
func (s Scalar) IsZero() bool { return !s.inf && (s.v == nil || s.v.Sign() == 0) }

// IsNegative reports whether s is a finite integer below zero.
func (s Scalar) IsNegative() bool { return !s.inf && s.v != nil && s.v.Sign() < 0 }

// Value returns a copy of the finite value, or nil for Inf.
func (s Scalar) Value() *big.Int {
	if s.inf {
		return nil
	}
	return new(big.Int).Set(s.val())
}

// Int64 returns the finite value when it fits into an int64.
func (s Scalar) Int64() (int64, bool) {
	if s.inf || !s.val().IsInt64() {
		return 0, false
	}
	return s.val().Int64(), true
}

// val exposes the backing integer read-only.
func (s Scalar) val() *big.Int {
	if s.v == nil {
		return bigZero
	}
	return s.v
}

// Cmp orders scalars: finite values by integer order, Inf above all of them.
// Two Inf values compare equal.
func (s Scalar) Cmp(t Scalar) int {
	switch {
	case s.inf && t.inf:
		return 0
	case s.inf:
		return 1
	case t.inf:
		return -1
	}
	return s.val().Cmp(t.val())
}

// Equal reports whether s and t are the same element.
func (s Scalar) Equal(t Scalar) bool { return s.Cmp(t) == 0 }

// Times returns the ordinary integer product of two finite scalars.
// The result for an Inf operand is Inf; use a Semiring for algebraic products.
func (s Scalar) Times(t Scalar) Scalar {
	if s.inf || t.inf {
		return Inf()
	}
	if s.IsZero() || t.IsZero() {
		return Scalar{}
	}
	return Scalar{v: new(big.Int).Mul(s.val(), t.val())}
}

// String renders Inf as "inf" and finite values in base 10.
func (s Scalar) String() string {
	if s.inf {
		return infText
	}
	return s.val().String()
}

// MarshalJSON encodes finite values as JSON numbers and Inf as "inf".
func (s Scalar) MarshalJSON() ([]byte, error) {
	if s.inf {
		return []byte(`"` + infText + `"`), nil
	}
	return []byte(s.val().String()), nil
}

// UnmarshalJSON accepts a JSON number or one of the Inf spellings as a string.
func (s *Scalar) UnmarshalJSON(b []byte) error {
	raw := string(bytes.Trim(bytes.TrimSpace(b), `"`))
	v, err := Parse(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
