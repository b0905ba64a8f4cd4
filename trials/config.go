// SPDX-License-Identifier: MIT

package trials

import (
	"fmt"
	"runtime"

	"github.com/katalvlaran/tropix/attack"
	"github.com/katalvlaran/tropix/protocol"
)

// Config describes one experiment.
type Config struct {
	Count      int     // number of trials
	Size       int     // matrix order n
	CBound     int64   // entries and coefficients in [1, CBound]
	DBound     int     // secret degrees in [1, DBound]
	PBound     int     // search bound for p′ and q′
	TBound     int     // search bound for t′ and r′
	SparseRate float64 // fraction of zeroed non-leading coefficients
	Seed       []byte  // master seed; trial i uses protocol.DeriveSeed(Seed, i)
	Workers    int     // concurrent trials; ≤ 0 means runtime.NumCPU()

	// OnRecord, if set, receives every finished record in index order.
	OnRecord func(Record)
}

// DefaultConfig mirrors the reference experiment: 5×5 matrices,
// coefficients up to 1000, degrees up to 5, search bounds of 100.
func DefaultConfig() Config {
	return Config{
		Count:      100,
		Size:       protocol.DefaultSize,
		CBound:     protocol.DefaultCoeffBound,
		DBound:     protocol.DefaultDegreeBound,
		PBound:     attack.DefaultPBound,
		TBound:     attack.DefaultTBound,
		SparseRate: protocol.DefaultSparseRate,
		Seed:       []byte("tropix"),
	}
}

// Validate reports the first meaningless field.
func (c Config) Validate() error {
	switch {
	case c.Count <= 0:
		return fmt.Errorf("Count=%d: %w", c.Count, ErrBadConfig)
	case c.Size <= 0:
		return fmt.Errorf("Size=%d: %w", c.Size, ErrBadConfig)
	case c.CBound <= 0:
		return fmt.Errorf("CBound=%d: %w", c.CBound, ErrBadConfig)
	case c.DBound <= 0:
		return fmt.Errorf("DBound=%d: %w", c.DBound, ErrBadConfig)
	case c.PBound < 0:
		return fmt.Errorf("PBound=%d: %w", c.PBound, ErrBadConfig)
	case c.TBound < 0:
		return fmt.Errorf("TBound=%d: %w", c.TBound, ErrBadConfig)
	case !(c.SparseRate >= 0 && c.SparseRate <= 1):
		return fmt.Errorf("SparseRate=%g: %w", c.SparseRate, ErrBadConfig)
	case len(c.Seed) == 0:
		return fmt.Errorf("empty Seed: %w", ErrBadConfig)
	}
	return nil
}

// workers resolves the effective worker count.
func (c Config) workers() int {
	w := c.Workers
	if w <= 0 {
		w = runtime.NumCPU()
	}
	if w > c.Count {
		w = c.Count
	}
	return w
}

// generatorOptions translates the config into protocol options.
func (c Config) generatorOptions() []protocol.GeneratorOption {
	return []protocol.GeneratorOption{
		protocol.WithSize(c.Size),
		protocol.WithCoeffBound(c.CBound),
		protocol.WithDegreeBound(c.DBound),
		protocol.WithSparseRate(c.SparseRate),
	}
}
