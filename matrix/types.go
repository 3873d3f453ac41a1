// SPDX-License-Identifier: MIT

package matrix

// Matrix is a non-empty rectangular grid of float64.
//
// Operations accept any implementation and always return a fresh *Dense, so
// callers may pass their own storage. Rows, Cols, At and Set should be O(1).
type Matrix interface {
	// Rows is the number of rows (> 0).
	Rows() int

	// Cols is the number of columns (> 0).
	Cols() int

	// At reads cell (i, j); ErrOutOfRange outside [0,Rows)×[0,Cols).
	At(i, j int) (float64, error)

	// Set writes cell (i, j); ErrOutOfRange outside the matrix.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}

// CellFunc reports the value of cell (i, j) for Construct.
// ok == false marks the cell as missing; Construct stores 0 for it.
type CellFunc func(i, j int) (v float64, ok bool)
