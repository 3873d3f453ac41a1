// SPDX-License-Identifier: MIT

// Package matrix - sentinel errors.
//
// Operations return one of these, wrapped with the operation name
// ("Mul: ValidateMulCompatible: 2x3 × 2x3: matrix: dimension mismatch").
// Match with errors.Is. Nothing in the package panics on bad user input.
//
// Check order: nil operands, then shapes, then numeric failures (singular).

package matrix

import "errors"

var (
	// ErrInvalidDimensions: a row or column count is missing, non-numeric or
	// not positive. No matrix is built.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape: nested rows passed to NewDenseFromRows are ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange: a row or column index falls outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch: operand shapes do not fit the operation
	// (Add/Sub need equal shapes, Mul needs A.Cols == B.Rows).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare: Determinant, Minor or Inverse got a non-square matrix.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular: Gauss-Jordan reached a pivot of exactly zero. Rows are
	// never swapped, so some invertible matrices also land here.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix: an operand was nil, including a typed nil *Dense.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
