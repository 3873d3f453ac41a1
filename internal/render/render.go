// Package render turns engine results and errors into terminal text.
package render

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/matcalc/internal/calc"
	"github.com/katalvlaran/matcalc/internal/config"
	"github.com/katalvlaran/matcalc/matrix"
)

// Renderer formats matrices, scalars and errors.
type Renderer struct {
	Precision int
	Color     bool

	cell   lipgloss.Style
	frame  lipgloss.Style
	title  lipgloss.Style
	errMsg lipgloss.Style
}

// New builds a Renderer from display settings.
func New(cfg config.DisplayConfig) Renderer {
	r := Renderer{
		Precision: cfg.Precision,
		Color:     cfg.Color,
		cell:      lipgloss.NewStyle().Align(lipgloss.Right),
		frame:     lipgloss.NewStyle(),
		title:     lipgloss.NewStyle(),
		errMsg:    lipgloss.NewStyle(),
	}
	if cfg.Color {
		r.frame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(cfg.Accent)).
			Padding(0, 1)
		r.title = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Accent)).Bold(true)
		r.errMsg = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Error)).Bold(true)
	}
	return r
}

// Number formats v with at most Precision decimals, trimming trailing zeros.
// Infinities print as Infinity / -Infinity.
func (r Renderer) Number(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	s := strconv.FormatFloat(v, 'f', r.Precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// Matrix renders m as right-aligned columns separated by two spaces.
func (r Renderer) Matrix(m *matrix.Dense) string {
	rows, cols := m.Shape()
	text := make([][]string, rows)
	widths := make([]int, cols)
	m.Do(func(i, j int, v float64) bool {
		if text[i] == nil {
			text[i] = make([]string, cols)
		}
		text[i][j] = r.Number(v)
		if w := lipgloss.Width(text[i][j]); w > widths[j] {
			widths[j] = w
		}
		return true
	})

	lines := make([]string, rows)
	for i, row := range text {
		parts := make([]string, cols)
		for j, s := range row {
			parts[j] = r.cell.Width(widths[j]).Render(s)
		}
		lines[i] = strings.Join(parts, "  ")
	}
	return r.frame.Render(strings.Join(lines, "\n"))
}

// Scalar renders a single value.
func (r Renderer) Scalar(v float64) string {
	return r.frame.Render(r.Number(v))
}

// Result renders a calc.Result under a title line.
func (r Renderer) Result(title string, res calc.Result) string {
	body := ""
	if res.IsScalar {
		body = r.Scalar(res.Scalar)
	} else {
		body = r.Matrix(res.Matrix)
	}
	if title == "" {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, r.title.Render(title), body)
}

// Error renders the user-facing message for err.
func (r Renderer) Error(op calc.Op, err error) string {
	return r.errMsg.Render(Message(op, err))
}

// Message maps engine and calc errors to the messages users see.
func Message(op calc.Op, err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, matrix.ErrInvalidDimensions):
		return "Please enter valid dimensions."
	case errors.Is(err, matrix.ErrDimensionMismatch):
		switch op {
		case calc.OpAdd:
			return "Matrices must have the same dimensions for addition."
		case calc.OpSub:
			return "Matrices must have the same dimensions for subtraction."
		case calc.OpMul:
			return "Number of columns in Matrix A must equal number of rows in Matrix B."
		}
		return "Matrix dimensions are incompatible."
	case errors.Is(err, matrix.ErrNonSquare):
		if op == calc.OpInverse {
			return "Matrix must be square to calculate the inverse."
		}
		return "Matrix must be square to calculate the determinant."
	case errors.Is(err, matrix.ErrSingular):
		return "Matrix is not invertible."
	case errors.Is(err, calc.ErrMissingOperand):
		return "This operation needs both Matrix A and Matrix B."
	case errors.Is(err, calc.ErrUnknownOp):
		return "Unknown operation."
	}
	return err.Error()
}
