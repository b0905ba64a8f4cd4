// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Keep values immutable; there is intentionally no Set.
//
// Complexity quicksheet:
//   - New/FromInts: O(n²) copy; At: O(1); Equal: O(n²); String: O(n²).

package matrix

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/katalvlaran/tropix/semiring"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxFromInts = "FromInts"
	ctxAt       = "At"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps a sentinel with Dense method context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// matrixErrorf wraps a sentinel with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Dense is an immutable n×n matrix of semiring scalars.
//   - n is the order (rows == cols == n, n ≥ 1).
//   - data holds n*n scalars in row-major order (offset = i*n + j).
type Dense struct {
	n    int
	data []semiring.Scalar
}

var (
	_ fmt.Stringer   = (*Dense)(nil)
	_ json.Marshaler = (*Dense)(nil)
)

// newDense allocates an n×n matrix filled with fill. Callers validate n.
func newDense(n int, fill semiring.Scalar) *Dense {
	data := make([]semiring.Scalar, n*n)
	for k := range data {
		data[k] = fill
	}
	return &Dense{n: n, data: data}
}

// New builds a matrix from rows, copying them.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty.
//   - ErrNonSquare when any row length differs from len(rows).
//
// Complexity: O(n²).
func New(rows [][]semiring.Scalar) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, matrixErrorf(ctxNew, ErrInvalidDimensions)
	}
	m := &Dense{n: n, data: make([]semiring.Scalar, 0, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w", ctxNew, i, len(row), n, ErrNonSquare)
		}
		m.data = append(m.data, row...)
	}
	return m, nil
}

// FromInts builds a matrix of finite scalars from integer rows.
// Negative values are accepted here and rejected by ValidateNonNegative.
//
// Complexity: O(n²).
func FromInts(rows [][]int64) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, matrixErrorf(ctxFromInts, ErrInvalidDimensions)
	}
	m := &Dense{n: n, data: make([]semiring.Scalar, 0, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w", ctxFromInts, i, len(row), n, ErrNonSquare)
		}
		for _, v := range row {
			m.data = append(m.data, semiring.Int(v))
		}
	}
	return m, nil
}

// Size returns the order n.
func (m *Dense) Size() int { return m.n }

// Rows returns the row count (== Size).
func (m *Dense) Rows() int { return m.n }

// Cols returns the column count (== Size).
func (m *Dense) Cols() int { return m.n }

// At returns the entry at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (semiring.Scalar, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return semiring.Scalar{}, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}
	return m.data[row*m.n+col], nil
}

// ToRows returns a fresh [][]Scalar copy of the matrix.
func (m *Dense) ToRows() [][]semiring.Scalar {
	out := make([][]semiring.Scalar, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = append([]semiring.Scalar(nil), m.data[i*m.n:(i+1)*m.n]...)
	}
	return out
}

// Equal reports entrywise equality. Matrices of different order, or a nil
// operand, are never equal.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil || m.n != o.n {
		return false
	}
	for k := range m.data {
		if !m.data[k].Equal(o.data[k]) {
			return false
		}
	}
	return true
}

// String renders one bracketed row per line, e.g. "[1, 2]\n[3, inf]\n".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.n; j++ {
			sb.WriteString(m.data[i*m.n+j].String())
			if j < m.n-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}
	return sb.String()
}

// MarshalJSON encodes the matrix as an array of rows.
func (m *Dense) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ToRows())
}
