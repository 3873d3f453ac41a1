package render

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/internal/calc"
	"github.com/katalvlaran/matcalc/internal/config"
	"github.com/katalvlaran/matcalc/matrix"
)

func plain(precision int) Renderer {
	return New(config.DisplayConfig{Precision: precision})
}

func TestNumber(t *testing.T) {
	r := plain(4)
	for v, want := range map[float64]string{
		1:            "1",
		-2:           "-2",
		0.25:         "0.25",
		1.0 / 3:      "0.3333",
		-0.00001:     "0",
		math.Inf(1):  "Infinity",
		math.Inf(-1): "-Infinity",
		1e6:          "1000000",
	} {
		assert.Equal(t, want, r.Number(v), "%v", v)
	}
	assert.Equal(t, "NaN", r.Number(math.NaN()))
	assert.Equal(t, "3", plain(0).Number(2.6))
}

func TestMatrixPlain(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, -22}, {333, 4.5}})
	require.NoError(t, err)

	got := plain(6).Matrix(m)
	assert.Equal(t, "  1  -22\n333  4.5", got)
}

func TestResultTitles(t *testing.T) {
	r := plain(6)

	out := r.Result("Determinant", calc.Result{Scalar: -2, IsScalar: true})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Determinant", strings.TrimSpace(lines[0]))
	assert.Equal(t, "-2", strings.TrimSpace(lines[1]))

	m, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	assert.Equal(t, "1  0\n0  1", r.Result("", calc.Result{Matrix: m}))
}

func TestColorFrameKeepsValues(t *testing.T) {
	r := New(config.DisplayConfig{Precision: 2, Color: true, Accent: "#89b4fa", Error: "#f38ba8"})
	m, err := matrix.NewDenseFromRows([][]float64{{19, 22}, {43, 50}})
	require.NoError(t, err)

	out := r.Matrix(m)
	for _, want := range []string{"19", "22", "43", "50"} {
		assert.Contains(t, out, want)
	}
	assert.Greater(t, len(strings.Split(out, "\n")), 2, "framed output adds border lines")
}

func TestMessage(t *testing.T) {
	tests := []struct {
		op   calc.Op
		err  error
		want string
	}{
		{calc.OpAdd, matrix.ErrInvalidDimensions, "Please enter valid dimensions."},
		{calc.OpAdd, fmt.Errorf("Add: %w", matrix.ErrDimensionMismatch), "Matrices must have the same dimensions for addition."},
		{calc.OpSub, matrix.ErrDimensionMismatch, "Matrices must have the same dimensions for subtraction."},
		{calc.OpMul, matrix.ErrDimensionMismatch, "Number of columns in Matrix A must equal number of rows in Matrix B."},
		{calc.OpDet, matrix.ErrNonSquare, "Matrix must be square to calculate the determinant."},
		{calc.OpInverse, matrix.ErrNonSquare, "Matrix must be square to calculate the inverse."},
		{calc.OpInverse, matrix.ErrSingular, "Matrix is not invertible."},
		{calc.OpMul, calc.ErrMissingOperand, "This operation needs both Matrix A and Matrix B."},
		{calc.OpDet, errors.New("boom"), "boom"},
		{calc.OpDet, nil, ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Message(tc.op, tc.err))
	}
}

func TestErrorPlain(t *testing.T) {
	assert.Equal(t, "Matrix is not invertible.", plain(2).Error(calc.OpInverse, matrix.ErrSingular))
}
