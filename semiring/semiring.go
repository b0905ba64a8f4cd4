// SPDX-License-Identifier: MIT

package semiring

import "math/big"

// Semiring is the algebra a matrix operation is evaluated in.
//
// Implementations must make Add associative and commutative with identity
// Zero(), Mul associative with identity One(), and Mul distributive over Add.
// Both implementations in this package are stateless and safe for
// concurrent use.
type Semiring interface {
	// Name is a short identifier used in error messages and reports.
	Name() string
	// Zero is the additive identity.
	Zero() Scalar
	// One is the multiplicative identity.
	One() Scalar
	// Add is the semiring sum.
	Add(a, b Scalar) Scalar
	// Mul is the semiring product.
	Mul(a, b Scalar) Scalar
}

var (
	// MaxTimes is (ℕ ∪ {∞}, max, ·) with 0 as additive identity.
	MaxTimes Semiring = maxTimes{}

	// MinTimes is (ℕ ∪ {∞}, min, ·) with ∞ as additive identity.
	MinTimes Semiring = minTimes{}
)

type maxTimes struct{}

func (maxTimes) Name() string { return "max-times" }
func (maxTimes) Zero() Scalar { return Scalar{} }
func (maxTimes) One() Scalar  { return Scalar{v: big.NewInt(1)} }

func (maxTimes) Add(a, b Scalar) Scalar {
	if a.inf || b.inf {
		return Inf()
	}
	if a.val().Cmp(b.val()) >= 0 {
		return a
	}
	return b
}

// Mul keeps 0 absorbing even against Inf, so 0 stays the annihilator.
func (maxTimes) Mul(a, b Scalar) Scalar {
	if a.inf {
		if b.IsZero() {
			return Scalar{}
		}
		return Inf()
	}
	if b.inf {
		if a.IsZero() {
			return Scalar{}
		}
		return Inf()
	}
	return a.Times(b)
}

type minTimes struct{}

func (minTimes) Name() string { return "min-times" }
func (minTimes) Zero() Scalar { return Inf() }
func (minTimes) One() Scalar  { return Scalar{v: big.NewInt(1)} }

func (minTimes) Add(a, b Scalar) Scalar {
	if a.inf {
		return b
	}
	if b.inf {
		return a
	}
	if a.val().Cmp(b.val()) <= 0 {
		return a
	}
	return b
}

func (minTimes) Mul(a, b Scalar) Scalar {
	if a.inf || b.inf {
		return Inf()
	}
	return a.Times(b)
}
