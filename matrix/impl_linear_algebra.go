// SPDX-License-Identifier: MIT

// Package matrix - elementwise sum/difference, product and transpose.
//
// Every kernel here has two paths: a flat-buffer loop when all operands are
// *Dense, and an At-based loop for any other Matrix. Both visit cells in the
// same order, so the two paths agree bit for bit.
//
// Determinant and Inverse live in impl_determinant.go and impl_inverse.go.

package matrix

import "fmt"

// ZeroSum is the initial accumulator for products and cofactor sums.
const ZeroSum = 0.0

// ZeroPivot is the pivot value Inverse refuses to divide by.
const ZeroPivot = 0.0

// Tags prefixed to every wrapped error ("Mul: ...").
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opDeterminant = "Determinant"
	opMinor       = "Minor"
	opInverse     = "Inverse"
)

// matrixErrorf prefixes err with tag; errors.Is still sees the sentinel.
// Call it only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// atErrorf reports a failed At read at (i,j) under tag.
func atErrorf(tag string, i, j int, err error) error {
	return matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy read
// through At in i→j order. The result must be treated as read-only.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// addSub returns a + sign*b for sign = ±1 in a fresh Dense.
// Multiplying by ±1 is exact, so sign = -1 yields a - b bit for bit.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, wrapped with opTag.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + float64(sign*db.data[idx])
			}

			return res, nil
		}
	}

	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, atErrorf(opTag, i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, atErrorf(opTag, i, j, err)
			}
			res.data[i*cols+j] = av + float64(sign*bv)
		}
	}

	return res, nil
}

// Add returns the elementwise sum A + B.
// A and B must have identical shapes, else ErrDimensionMismatch.
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub returns the elementwise difference A - B.
// A and B must have identical shapes, else ErrDimensionMismatch.
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul returns the matrix product A × B, an A.Rows × B.Cols Dense.
// Implementation:
//   - Stage 1: reject nil operands and A.Cols != B.Rows.
//   - Stage 2: *Dense operands run i→k→j over the flat buffers; anything
//     else runs i→j→k through At.
//
// Behavior highlights:
//   - C[i,j] starts at 0 and adds A[i,k]*B[k,j] for k = 0, 1, ... in both
//     paths, so they produce identical bits.
//   - Zero entries are not skipped; 0*Inf yields NaN.
//   - Each product is rounded before it is added (float64(x*y)), so no
//     platform fuses the pair into one FMA.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opMul).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	n, inner, p := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(n, p)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		av, bv  float64
	)

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var aRow, bRow, cRow []float64
			for i = 0; i < n; i++ {
				aRow = da.data[i*inner : (i+1)*inner]
				cRow = res.data[i*p : (i+1)*p]
				for k = 0; k < inner; k++ {
					av = aRow[k]
					bRow = db.data[k*p : (k+1)*p]
					for j = 0; j < p; j++ {
						cRow[j] += float64(av * bRow[j])
					}
				}
			}

			return res, nil
		}
	}

	var sum float64
	for i = 0; i < n; i++ {
		for j = 0; j < p; j++ {
			sum = ZeroSum
			for k = 0; k < inner; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, atErrorf(opMul, i, k, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, atErrorf(opMul, k, j, err)
				}
				sum += float64(av * bv)
			}
			res.data[i*p+j] = sum
		}
	}

	return res, nil
}

// Transpose returns mᵀ, a Cols × Rows Dense with result[j][i] = m[i][j].
// Errors: ErrNilMatrix.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		var src []float64
		for i = 0; i < rows; i++ {
			src = dm.data[i*cols : (i+1)*cols]
			for j, v := range src {
				res.data[j*rows+i] = v
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErrorf(opTranspose, i, j, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}
