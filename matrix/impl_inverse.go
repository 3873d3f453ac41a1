// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Inverse computes A⁻¹ by Gauss-Jordan elimination on the augmented matrix [A | I].
// The input must be non-nil and square. No rows are ever swapped.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m). Build a private n×2n buffer [A | I].
//   - Stage 2: For each pivot row i = 0..n−1:
//   - pivot = aug[i][i]; exactly 0 → ErrSingular.
//   - divide all 2n entries of row i by pivot.
//   - for every k ≠ i: factor = aug[k][i]; row k −= factor × row i.
//   - Stage 3: Copy columns n..2n−1 into a fresh n×n Dense.
//
// Behavior highlights:
//   - No partial pivoting: a zero reached on the diagonal is reported as
//     ErrSingular even when a row swap would succeed ([[0,1],[1,0]] fails).
//   - NaN pivots are not zero and flow through under IEEE-754.
//   - The input is read-only; the augmented buffer never escapes.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (wrapped with opInverse and the pivot index).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := src.r
	w := 2 * n
	aug := make([]float64, n*w)
	var i, j, k int
	for i = 0; i < n; i++ {
		copy(aug[i*w:i*w+n], src.data[i*n:(i+1)*n])
		aug[i*w+n+i] = 1
	}

	var pivot, factor float64
	var pivotRow, row []float64
	for i = 0; i < n; i++ {
		pivotRow = aug[i*w : (i+1)*w]
		pivot = pivotRow[i]
		if pivot == ZeroPivot {
			return nil, matrixErrorf(opInverse, fmt.Errorf("zero pivot at (%d,%d): %w", i, i, ErrSingular))
		}

		for j = 0; j < w; j++ {
			pivotRow[j] /= pivot
		}

		for k = 0; k < n; k++ {
			if k == i {
				continue
			}
			row = aug[k*w : (k+1)*w]
			factor = row[i]
			for j = 0; j < w; j++ {
				row[j] -= float64(factor * pivotRow[j])
			}
		}
	}

	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i = 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], aug[i*w+n:(i+1)*w])
	}

	return inv, nil
}
