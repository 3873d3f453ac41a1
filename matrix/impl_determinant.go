// SPDX-License-Identifier: MIT

// Package matrix - determinant by recursive cofactor (Laplace) expansion.
//
// Purpose:
//   - Exact-order expansion along row 0, matching hand calculation term by term.
//
// Complexity quicksheet:
//   - Determinant: O(n!) time, O(n^2) live memory per recursion level.
//     Interactive sizes only; no memoization of repeated minors.

package matrix

import "fmt"

// Determinant returns det(m) by cofactor expansion along the first row.
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); read into a flat row-major buffer.
//   - Stage 2: n==1 → m[0][0]; n==2 → ad − bc.
//   - Stage 3: n>2 → acc = 0; for c = 0..n−1:
//     acc = acc + m[0][c]·det(minor(0,c))·(−1)^c.
//
// Behavior highlights:
//   - Summation order is fixed (column 0 first) and every product is rounded
//     before it is added, so results are identical on every platform.
//   - The input is never mutated; each minor is a fresh buffer.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with opDeterminant).
//
// Complexity:
//   - Time O(n!), Space O(n^2) per recursion level.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return cofactorDet(d.data, d.r), nil
}

// cofactorDet expands the n×n row-major buffer a along its first row.
func cofactorDet(a []float64, n int) float64 {
	switch n {
	case 1:
		return a[0]
	case 2:
		return float64(a[0]*a[3]) - float64(a[1]*a[2])
	}

	acc := ZeroSum
	sign := 1.0
	sub := n - 1
	for c := 0; c < n; c++ {
		acc += float64(float64(a[c]*cofactorDet(minorOfFirstRow(a, n, c), sub)) * sign)
		sign = -sign
	}

	return acc
}

// minorOfFirstRow drops row 0 and column col from the n×n buffer a.
func minorOfFirstRow(a []float64, n, col int) []float64 {
	out := make([]float64, 0, (n-1)*(n-1))
	for i := 1; i < n; i++ {
		row := a[i*n : (i+1)*n]
		out = append(out, row[:col]...)
		out = append(out, row[col+1:]...)
	}

	return out
}

// Minor returns the (n−1)×(n−1) submatrix of a square m with row and col
// removed.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange (bad row/col),
//     ErrInvalidDimensions (m is 1×1, so the minor would be empty).
func Minor(m Matrix, row, col int) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	n := m.Rows()
	if row < 0 || row >= n || col < 0 || col >= n {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	keepRows := make([]int, 0, n-1)
	keepCols := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != row {
			keepRows = append(keepRows, i)
		}
		if i != col {
			keepCols = append(keepCols, i)
		}
	}

	res, err := d.Induced(keepRows, keepCols)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return res, nil
}
