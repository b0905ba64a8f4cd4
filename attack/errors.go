// SPDX-License-Identifier: MIT

package attack

import "errors"

var (
	// ErrInvalidInput indicates nil, mismatched or negative input matrices.
	ErrInvalidInput = errors.New("attack: invalid input")

	// ErrBadBound indicates a negative search bound.
	ErrBadBound = errors.New("attack: negative search bound")
)
