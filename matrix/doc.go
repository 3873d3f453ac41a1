// SPDX-License-Identifier: MIT

// Package matrix is a small dense-matrix algebra engine.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe At/Set accessors.
//   - Construct, the permissive construction boundary: missing or
//     non-numeric cells become 0, bad dimensions fail with ErrInvalidDimensions.
//   - Add, Sub, Mul and Transpose over any Matrix implementation.
//   - Determinant by recursive cofactor expansion along the first row.
//   - Inverse by Gauss-Jordan elimination on [A | I] without row swaps.
//
// Every operation is a pure function: inputs are never mutated and results are
// freshly allocated. Failures are sentinel errors (ErrDimensionMismatch,
// ErrNonSquare, ErrSingular, ...) wrapped with the operation name; match them
// with errors.Is.
//
// Determinant is O(n!) and Inverse does no partial pivoting, so a zero on the
// diagonal reached during elimination is reported as ErrSingular even when a
// row swap would succeed. Both are meant for small, interactive-scale inputs.
package matrix
