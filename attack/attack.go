// SPDX-License-Identifier: MIT

package attack

import (
	"fmt"

	"github.com/katalvlaran/tropix/matrix"
	"github.com/katalvlaran/tropix/protocol"
)

// Outcome classifies an Attack run.
type Outcome int

const (
	// NotFound means a reconstruction search exhausted its bounds.
	NotFound Outcome = iota
	// Recovered means both reconstructions produced the same key.
	Recovered
	// Disagreement means both searches succeeded but the keys differ.
	Disagreement
)

// String returns the lowercase outcome name.
func (o Outcome) String() string {
	switch o {
	case NotFound:
		return "not-found"
	case Recovered:
		return "recovered"
	case Disagreement:
		return "disagreement"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Result carries the recovered key and the reconstructions behind it.
type Result struct {
	Key     *matrix.Dense  // k1; nil unless Outcome == Recovered
	Outcome Outcome
	Alice   Reconstruction // (p′, t′) found from A
	Bob     Reconstruction // (q′, r′) found from B
}

// Attack recovers the shared key from the public data M, N, X, A, B.
//
// Implementation:
//   - Stage 1: validate every matrix once (ErrInvalidInput) and the bounds.
//   - Stage 2: FindPolys on A, then on B; the first miss ends with NotFound.
//   - Stage 3: k1 = (p′(M)⊗B)⊛t′(N), k2 = (q′(M)⊗A)⊛r′(N); Recovered with
//     Key = k1 when they are equal, Disagreement otherwise.
//
// Errors: ErrInvalidInput, ErrBadBound, context errors. A failed search is
// never an error.
func Attack(m, n, x, a, b *matrix.Dense, opts Options) (Result, error) {
	if _, err := protocol.ValidatePublic(m, n, x, a, b); err != nil {
		return Result{}, fmt.Errorf("Attack: %w: %w", ErrInvalidInput, err)
	}
	if err := opts.Validate(); err != nil {
		return Result{}, fmt.Errorf("Attack: %w", err)
	}

	var (
		res Result
		err error
	)
	if res.Alice, err = FindPolys(m, n, x, a, opts); err != nil {
		return Result{}, fmt.Errorf("Attack: %w", err)
	}
	if !res.Alice.Found {
		return res, nil
	}
	if res.Bob, err = FindPolys(m, n, x, b, opts); err != nil {
		return Result{}, fmt.Errorf("Attack: %w", err)
	}
	if !res.Bob.Found {
		return res, nil
	}

	k1, err := protocol.TripleProduct(m, n, b, res.Alice.P, res.Alice.T)
	if err != nil {
		return Result{}, fmt.Errorf("Attack: k1: %w", err)
	}
	k2, err := protocol.TripleProduct(m, n, a, res.Bob.P, res.Bob.T)
	if err != nil {
		return Result{}, fmt.Errorf("Attack: k2: %w", err)
	}
	if !k1.Equal(k2) {
		res.Outcome = Disagreement
		return res, nil
	}
	res.Outcome = Recovered
	res.Key = k1
	return res, nil
}

// AttackInstance runs Attack on the public part of in.
func AttackInstance(in *protocol.Instance, opts Options) (Result, error) {
	if in == nil {
		return Result{}, fmt.Errorf("AttackInstance: %w: nil instance", ErrInvalidInput)
	}
	return Attack(in.M, in.N, in.X, in.A, in.B, opts)
}
