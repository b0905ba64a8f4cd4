// SPDX-License-Identifier: MIT

package attack

import (
	"context"
	"fmt"
)

// Default search bounds, matching the reference experiments.
const (
	DefaultPBound = 100
	DefaultTBound = 100
)

// Options bounds the reconstruction search.
type Options struct {
	PBound int             // largest power of M tried for p′
	TBound int             // largest power of N tried for t′
	Ctx    context.Context // optional; nil means context.Background()
}

// DefaultOptions returns bounds of 100 for both polynomials.
func DefaultOptions() Options {
	return Options{PBound: DefaultPBound, TBound: DefaultTBound}
}

// Validate rejects negative bounds.
func (o Options) Validate() error {
	if o.PBound < 0 {
		return fmt.Errorf("PBound=%d: %w", o.PBound, ErrBadBound)
	}
	if o.TBound < 0 {
		return fmt.Errorf("TBound=%d: %w", o.TBound, ErrBadBound)
	}
	return nil
}

// ctx returns Ctx or Background.
func (o Options) ctx() context.Context {
	if o.Ctx == nil {
		return context.Background()
	}
	return o.Ctx
}
