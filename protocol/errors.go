// SPDX-License-Identifier: MIT

package protocol

import "errors"

var (
	// ErrNoAgreement indicates the generator ran out of attempts before
	// drawing an instance whose two derived keys coincide.
	ErrNoAgreement = errors.New("protocol: no agreeing instance within attempt limit")

	// ErrEmptySeed indicates a generator seed of zero length.
	ErrEmptySeed = errors.New("protocol: empty seed")

	// ErrInvalidSecret indicates a secret polynomial that is empty or all zero.
	ErrInvalidSecret = errors.New("protocol: invalid secret polynomial")
)
