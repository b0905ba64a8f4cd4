// SPDX-License-Identifier: MIT

package trials

import (
	"fmt"
	"time"

	"github.com/katalvlaran/tropix/attack"
	"github.com/katalvlaran/tropix/matrix"
	"github.com/katalvlaran/tropix/protocol"
)

// Verdict classifies one trial.
type Verdict int

const (
	OK Verdict = iota
	Failed
	Incorrect
)

// String returns the status word printed per trial.
func (v Verdict) String() string {
	switch v {
	case OK:
		return "OK"
	case Failed:
		return "FAILED"
	case Incorrect:
		return "INCORRECT"
	}
	return fmt.Sprintf("Verdict(%d)", int(v))
}

// MarshalText encodes the verdict by name.
func (v Verdict) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// Classify grades an attack result against the parties' key.
// Disagreement and NotFound both count as Failed.
func Classify(res attack.Result, key *matrix.Dense) Verdict {
	switch {
	case res.Outcome != attack.Recovered:
		return Failed
	case !res.Key.Equal(key):
		return Incorrect
	}
	return OK
}

// Record is the result of one trial.
type Record struct {
	Index       int                `json:"index"`
	Verdict     Verdict            `json:"verdict"`
	Outcome     string             `json:"outcome"`
	Fingerprint string             `json:"fingerprint"`
	Elapsed     time.Duration      `json:"elapsed_ns"`
	Instance    *protocol.Instance `json:"-"`
	Key         *matrix.Dense      `json:"key,omitempty"`
}

// Summary aggregates a finished run.
type Summary struct {
	Count     int           `json:"count"`
	OK        int           `json:"ok"`
	Failed    int           `json:"failed"`
	Incorrect int           `json:"incorrect"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	Records   []Record      `json:"records"`
}

// SuccessRate is OK/Count, or 0 for an empty summary.
func (s Summary) SuccessRate() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.OK) / float64(s.Count)
}

// add tallies one record.
func (s *Summary) add(r Record) {
	switch r.Verdict {
	case OK:
		s.OK++
	case Failed:
		s.Failed++
	case Incorrect:
		s.Incorrect++
	}
}
