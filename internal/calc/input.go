package calc

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/matcalc/matrix"
)

// Input is a matrix as typed by a user: dimension text plus cell text.
type Input struct {
	Rows  string
	Cols  string
	Cells [][]string
}

// NewInput returns an Input of the given size with every cell empty.
func NewInput(rows, cols int) Input {
	cells := make([][]string, rows)
	for i := range cells {
		cells[i] = make([]string, cols)
	}
	return Input{Rows: fmt.Sprint(rows), Cols: fmt.Sprint(cols), Cells: cells}
}

// Dims parses the dimension text.
func (in Input) Dims() (rows, cols int, err error) {
	if rows, err = matrix.ParseDimension(in.Rows); err != nil {
		return 0, 0, fmt.Errorf("rows: %w", err)
	}
	if cols, err = matrix.ParseDimension(in.Cols); err != nil {
		return 0, 0, fmt.Errorf("cols: %w", err)
	}
	return rows, cols, nil
}

// Resize keeps the existing cell text that still fits and pads with empty cells.
func (in Input) Resize(rows, cols int) Input {
	out := NewInput(rows, cols)
	for i := 0; i < rows && i < len(in.Cells); i++ {
		for j := 0; j < cols && j < len(in.Cells[i]); j++ {
			out.Cells[i][j] = in.Cells[i][j]
		}
	}
	return out
}

// Matrix builds the matrix: strict on dimensions, permissive on cells.
func (in Input) Matrix() (*matrix.Dense, error) {
	rows, cols, err := in.Dims()
	if err != nil {
		return nil, err
	}
	return matrix.Construct(rows, cols, matrix.FromStrings(in.Cells))
}

// ParseLiteral reads a compact matrix literal such as "1,2;3,4" or "1 2; 3 4".
// Rows are separated by ';' or newlines, cells by ',' or whitespace. The
// column count is the widest row; shorter rows are padded with 0 and
// unparseable cells become 0.
func ParseLiteral(s string) (*matrix.Dense, error) {
	lines := strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '\n' })

	var cells [][]string
	cols := 0
	for _, line := range lines {
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r'
		})
		if len(fields) == 0 {
			continue
		}
		cells = append(cells, fields)
		if len(fields) > cols {
			cols = len(fields)
		}
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("literal %q: %w", s, matrix.ErrInvalidDimensions)
	}

	return matrix.Construct(len(cells), cols, matrix.FromStrings(cells))
}
