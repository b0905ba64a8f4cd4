// SPDX-License-Identifier: MIT
// Package semiring: sentinel errors.
// Callers match them with errors.Is; context is attached with %w.

package semiring

import "errors"

var (
	// ErrParse is returned when a textual or JSON scalar cannot be decoded.
	ErrParse = errors.New("semiring: cannot parse scalar")

	// ErrNegative marks a finite scalar below zero where the carrier set
	// (non-negative integers plus Inf) is required.
	ErrNegative = errors.New("semiring: negative scalar")
)
