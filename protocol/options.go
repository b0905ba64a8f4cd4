// SPDX-License-Identifier: MIT
// Package: protocol
//
// options.go - functional options for the instance Generator.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generation itself never panics.
//   • Unset options fall back to the defaults below.

package protocol

import "math"

// Generator defaults, matching the reference experiment parameters.
const (
	DefaultSize        = 5
	DefaultCoeffBound  = 1000
	DefaultDegreeBound = 5
	DefaultSparseRate  = 0.5
	DefaultMaxAttempts = 100
)

// generatorConfig collects the generation parameters.
type generatorConfig struct {
	size        int     // n, order of M, N, X
	coeffBound  int64   // entries and coefficients in [1, coeffBound]
	degreeBound int     // degrees in [1, degreeBound]
	sparseRate  float64 // fraction of non-leading coefficients set to the semiring zero
	maxAttempts int     // draws before ErrNoAgreement
}

func newGeneratorConfig(opts ...GeneratorOption) generatorConfig {
	cfg := generatorConfig{
		size:        DefaultSize,
		coeffBound:  DefaultCoeffBound,
		degreeBound: DefaultDegreeBound,
		sparseRate:  DefaultSparseRate,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// GeneratorOption customizes a Generator.
type GeneratorOption func(*generatorConfig)

// WithSize sets the matrix order n (>0). Panics otherwise.
func WithSize(n int) GeneratorOption {
	if n <= 0 {
		panic("protocol: WithSize(n<=0)")
	}
	return func(c *generatorConfig) { c.size = n }
}

// WithCoeffBound sets the upper bound u (>0) of matrix entries and
// polynomial coefficients, drawn from [1, u]. Panics otherwise.
func WithCoeffBound(u int64) GeneratorOption {
	if u <= 0 {
		panic("protocol: WithCoeffBound(u<=0)")
	}
	return func(c *generatorConfig) { c.coeffBound = u }
}

// WithDegreeBound sets the upper bound d (>0) of secret degrees. Panics otherwise.
func WithDegreeBound(d int) GeneratorOption {
	if d <= 0 {
		panic("protocol: WithDegreeBound(d<=0)")
	}
	return func(c *generatorConfig) { c.degreeBound = d }
}

// WithSparseRate sets the fraction in [0, 1] of non-leading coefficients
// replaced by the semiring zero. Panics outside that range.
func WithSparseRate(rate float64) GeneratorOption {
	if math.IsNaN(rate) || rate < 0 || rate > 1 {
		panic("protocol: WithSparseRate(rate outside [0,1])")
	}
	return func(c *generatorConfig) { c.sparseRate = rate }
}

// WithMaxAttempts bounds the number of draws per Next call (>0). Panics otherwise.
func WithMaxAttempts(k int) GeneratorOption {
	if k <= 0 {
		panic("protocol: WithMaxAttempts(k<=0)")
	}
	return func(c *generatorConfig) { c.maxAttempts = k }
}
