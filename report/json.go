// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/tropix/trials"
)

// jsonSummary adds the derived success rate to the serialized summary.
type jsonSummary struct {
	trials.Summary
	SuccessRate float64 `json:"success_rate"`
}

// WriteJSON writes sum as indented JSON, one object per trial under "records".
func WriteJSON(w io.Writer, sum trials.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonSummary{Summary: sum, SuccessRate: sum.SuccessRate()}); err != nil {
		return fmt.Errorf("WriteJSON: %w", err)
	}
	return nil
}
