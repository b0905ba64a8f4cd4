// SPDX-License-Identifier: MIT
// Package: protocol
//
// Purpose:
//   - Deterministic randomness for instance generation.
//   - Seeds are split with domain-separated SHAKE256; draws come from a
//     lattigo keyed PRNG read as a byte stream.
//
// Concurrency:
//   - A sampler is NOT goroutine-safe. Derive one seed per worker instead of
//     sharing a Generator.

package protocol

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v4/utils"
	"golang.org/x/crypto/sha3"
)

// SeedSize is the length in bytes of seeds produced by DeriveSeed.
const SeedSize = 32

// seedDomain separates per-trial seed derivation from other SHAKE256 uses.
const seedDomain = "tropix/trial-seed/v1"

// DeriveSeed returns the SeedSize-byte seed of stream index under master.
// Distinct indices give independent seeds; the same inputs always give the
// same output.
// Complexity: O(len(master)).
func DeriveSeed(master []byte, index uint64) []byte {
	h := sha3.NewShake256()
	h.Write([]byte{byte(len(seedDomain))})
	h.Write([]byte(seedDomain))
	var idx [8]byte
	binary.LittleEndian.PutUint64(idx[:], index)
	h.Write(idx[:])
	h.Write(master)

	out := make([]byte, SeedSize)
	_, _ = h.Read(out)
	return out
}

// sampler turns a PRNG byte stream into uniform integers.
type sampler struct {
	prng utils.PRNG
	buf  [8]byte
}

func newSampler(seed []byte) (*sampler, error) {
	prng, err := utils.NewKeyedPRNG(seed)
	if err != nil {
		return nil, fmt.Errorf("keyed prng: %w", err)
	}
	return &sampler{prng: prng}, nil
}

// uint64 reads the next little-endian word from the stream.
func (s *sampler) uint64() (uint64, error) {
	if _, err := io.ReadFull(s.prng, s.buf[:]); err != nil {
		return 0, fmt.Errorf("prng read: %w", err)
	}
	return binary.LittleEndian.Uint64(s.buf[:]), nil
}

// intn returns a uniform integer in [lo, hi] (lo ≤ hi) by rejecting words
// above the largest multiple of the span.
func (s *sampler) intn(lo, hi int64) (int64, error) {
	span := uint64(hi-lo) + 1
	if span == 0 {
		// Full 64-bit range.
		w, err := s.uint64()
		return int64(w), err
	}
	threshold := (^uint64(0) / span) * span
	for {
		w, err := s.uint64()
		if err != nil {
			return 0, err
		}
		if w < threshold {
			return lo + int64(w%span), nil
		}
	}
}

// choose returns k distinct values from [lo, hi] in draw order using a
// partial Fisher–Yates shuffle.
func (s *sampler) choose(lo, hi int64, k int) ([]int64, error) {
	pool := make([]int64, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		pool = append(pool, v)
	}
	if k > len(pool) {
		k = len(pool)
	}
	for i := 0; i < k; i++ {
		j, err := s.intn(int64(i), int64(len(pool)-1))
		if err != nil {
			return nil, err
		}
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k], nil
}
