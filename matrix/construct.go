// SPDX-License-Identifier: MIT

// Package matrix - construction boundary.
//
// Purpose:
//   - Turn raw dimension counts and a cell source into a rectangular Dense.
//   - Be permissive on cells (missing or non-numeric => 0) and strict on
//     dimensions (non-positive or non-numeric => ErrInvalidDimensions).
//
// The permissive cell policy lives only here; Add/Mul/Inverse and friends never
// coerce values.

package matrix

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const opConstruct = "Construct"

// Construct builds a rows×cols Dense, asking valueAt for every cell in
// row-major order.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions, no matrix.
//   - Stage 2: fill cells; a missing (ok=false) or NaN value becomes 0.
//
// Behavior highlights:
//   - Never fails on cells. A nil valueAt yields the zero matrix.
//
// Complexity:
//   - Time O(r*c) plus the cost of valueAt, Space O(r*c).
func Construct(rows, cols int, valueAt CellFunc) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opConstruct, fmt.Errorf("%dx%d: %w", rows, cols, err))
	}
	if valueAt == nil {
		return m, nil
	}

	var i, j int
	var v float64
	var ok bool
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, ok = valueAt(i, j)
			if !ok || math.IsNaN(v) {
				continue // buffer is already zero
			}
			m.data[i*cols+j] = v
		}
	}

	return m, nil
}

// FromRows exposes a nested slice as a CellFunc. Cells outside the slice
// (short rows, missing rows) are reported missing.
func FromRows(rows [][]float64) CellFunc {
	return func(i, j int) (float64, bool) {
		if i < 0 || i >= len(rows) || j < 0 || j >= len(rows[i]) {
			return 0, false
		}
		return rows[i][j], true
	}
}

// FromFlat exposes a row-major flat slice with the given column count as a
// CellFunc. Cells past the end of vals are missing.
func FromFlat(vals []float64, cols int) CellFunc {
	return func(i, j int) (float64, bool) {
		if cols <= 0 || j < 0 || j >= cols {
			return 0, false
		}
		idx := i*cols + j
		if idx < 0 || idx >= len(vals) {
			return 0, false
		}
		return vals[idx], true
	}
}

// FromStrings exposes nested cell text as a CellFunc using ParseCell.
func FromStrings(cells [][]string) CellFunc {
	return func(i, j int) (float64, bool) {
		if i < 0 || i >= len(cells) || j < 0 || j >= len(cells[i]) {
			return 0, false
		}
		return ParseCell(cells[i][j])
	}
}

// ParseDimension reads a row or column count from user text.
// Leading whitespace and a leading integer prefix are accepted ("3", " 3",
// "3 rows", "3.9" all give 3). Empty, non-numeric, zero or negative input
// fails with ErrInvalidDimensions.
func ParseDimension(s string) (int, error) {
	t := strings.TrimLeft(s, " \t\r\n")
	end := 0
	if end < len(t) && (t[end] == '+' || t[end] == '-') {
		end++
	}
	digits := end
	for end < len(t) && t[end] >= '0' && t[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, fmt.Errorf("dimension %q: %w", s, ErrInvalidDimensions)
	}

	n, err := strconv.Atoi(t[:end])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("dimension %q: %w", s, ErrInvalidDimensions)
	}

	return n, nil
}

// ParseCell reads a cell value from user text using the longest numeric
// prefix ("2.5kg" gives 2.5, "1e3" gives 1000, "-Infinity" gives -Inf).
// ok is false for empty or non-numeric text. Negative zero is reported as 0.
func ParseCell(s string) (v float64, ok bool) {
	prefix := numericPrefix(strings.TrimLeft(s, " \t\r\n"))
	if prefix == "" {
		return 0, false
	}

	switch strings.TrimLeft(prefix, "+-") {
	case "Infinity":
		if prefix[0] == '-' {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}

	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		// Out-of-range literals still come back as ±Inf or 0.
		if !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
	}
	if v == 0 {
		return 0, true
	}

	return v, true
}

// numericPrefix returns the longest prefix of s that forms a decimal float
// literal: [sign] (digits [. digits] | . digits) [e [sign] digits], or
// [sign] "Infinity". It returns "" when no such prefix exists.
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		return s[:i+len("Infinity")]
	}

	intStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intDigits := i - intStart

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		fracDigits = j - i - 1
		if intDigits > 0 || fracDigits > 0 {
			i = j
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return ""
	}

	// Exponent only counts when at least one digit follows.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}

	return s[:i]
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
