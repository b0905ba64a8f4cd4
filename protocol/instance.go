// SPDX-License-Identifier: MIT

package protocol

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/katalvlaran/tropix/matrix"
	"github.com/katalvlaran/tropix/poly"
	"github.com/katalvlaran/tropix/semiring"
)

// fingerprintDomain separates instance fingerprints from other SHA3 uses.
const fingerprintDomain = "tropix/instance/v1"

// Instance is one run of the key exchange with both parties' secrets.
type Instance struct {
	M, N, X *matrix.Dense // public matrices

	P, T poly.Poly // Alice: max-times p, min-times t
	Q, R poly.Poly // Bob: max-times q, min-times r

	A, B   *matrix.Dense // public messages
	KA, KB *matrix.Dense // keys derived by Alice and Bob
}

// NewInstance validates the inputs and derives A, B, KA and KB.
//
// Errors:
//   - matrix errors from ValidatePublic for the public matrices.
//   - ErrInvalidSecret wrapping the poly error for an unusable secret.
func NewInstance(m, n, x *matrix.Dense, p, t, q, r poly.Poly) (*Instance, error) {
	if _, err := ValidatePublic(m, n, x); err != nil {
		return nil, fmt.Errorf("NewInstance: %w", err)
	}
	secrets := []struct {
		name string
		sr   semiring.Semiring
		p    poly.Poly
	}{
		{"p", semiring.MaxTimes, p},
		{"t", semiring.MinTimes, t},
		{"q", semiring.MaxTimes, q},
		{"r", semiring.MinTimes, r},
	}
	for _, s := range secrets {
		if err := s.p.Validate(s.sr); err != nil {
			return nil, fmt.Errorf("NewInstance: secret %s: %w: %w", s.name, ErrInvalidSecret, err)
		}
	}

	in := &Instance{M: m, N: n, X: x, P: p, T: t, Q: q, R: r}
	var err error
	if in.A, err = TripleProduct(m, n, x, p, t); err != nil {
		return nil, fmt.Errorf("NewInstance: A: %w", err)
	}
	if in.B, err = TripleProduct(m, n, x, q, r); err != nil {
		return nil, fmt.Errorf("NewInstance: B: %w", err)
	}
	if in.KA, err = TripleProduct(m, n, in.B, p, t); err != nil {
		return nil, fmt.Errorf("NewInstance: KA: %w", err)
	}
	if in.KB, err = TripleProduct(m, n, in.A, q, r); err != nil {
		return nil, fmt.Errorf("NewInstance: KB: %w", err)
	}
	return in, nil
}

// Agreed reports whether both parties derived the same key.
func (in *Instance) Agreed() bool { return in.KA.Equal(in.KB) }

// Fingerprint returns the hex SHA3-256 digest of the public matrices
// M, N, X, A and B. Secrets do not enter the digest.
func (in *Instance) Fingerprint() string {
	h := sha3.New256()
	h.Write([]byte{byte(len(fingerprintDomain))})
	h.Write([]byte(fingerprintDomain))
	for _, m := range []*matrix.Dense{in.M, in.N, in.X, in.A, in.B} {
		h.Write([]byte(m.String()))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ValidatePublic checks that all matrices are non-nil, share one order and
// hold only non-negative integers. It returns the common order.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch,
// matrix.ErrNegativeEntry, matrix.ErrInfiniteEntry, each wrapped with the
// matrix position.
func ValidatePublic(ms ...*matrix.Dense) (int, error) {
	if len(ms) == 0 {
		return 0, fmt.Errorf("ValidatePublic: %w", matrix.ErrNilMatrix)
	}
	for i, m := range ms {
		if err := matrix.ValidateSameShape(ms[0], m); err != nil {
			return 0, fmt.Errorf("ValidatePublic: matrix %d: %w", i, err)
		}
		if err := matrix.ValidateNonNegative(m); err != nil {
			return 0, fmt.Errorf("ValidatePublic: matrix %d: %w", i, err)
		}
		// Inf is a semiring value, not a protocol input.
		if err := matrix.ValidateFinite(m); err != nil {
			return 0, fmt.Errorf("ValidatePublic: matrix %d: %w", i, err)
		}
	}
	return ms[0].Size(), nil
}
