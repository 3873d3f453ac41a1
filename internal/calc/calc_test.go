package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/matrix"
)

func mustLiteral(t *testing.T, s string) *matrix.Dense {
	t.Helper()
	m, err := ParseLiteral(s)
	require.NoError(t, err)
	return m
}

func TestParseOp(t *testing.T) {
	for in, want := range map[string]Op{
		"add": OpAdd, " ADD ": OpAdd, "+": OpAdd,
		"subtract": OpSub, "*": OpMul, "T": OpTranspose,
		"determinant": OpDet, "inv": OpInverse,
	} {
		got, err := ParseOp(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseOp("divide")
	require.ErrorIs(t, err, ErrUnknownOp)
}

func TestOpBinary(t *testing.T) {
	assert.True(t, OpAdd.Binary())
	assert.True(t, OpMul.Binary())
	assert.False(t, OpDet.Binary())
	assert.False(t, OpTranspose.Binary())
}

func TestRun(t *testing.T) {
	a := mustLiteral(t, "1,2;3,4")
	b := mustLiteral(t, "5,6;7,8")

	tests := []struct {
		op   Op
		want [][]float64
	}{
		{OpAdd, [][]float64{{6, 8}, {10, 12}}},
		{OpSub, [][]float64{{-4, -4}, {-4, -4}}},
		{OpMul, [][]float64{{19, 22}, {43, 50}}},
		{OpTranspose, [][]float64{{1, 3}, {2, 4}}},
	}
	for _, tc := range tests {
		res, err := Run(tc.op, a, b)
		require.NoError(t, err, tc.op)
		assert.False(t, res.IsScalar)
		assert.Equal(t, tc.want, res.Matrix.ToRows(), tc.op)
	}

	res, err := Run(OpDet, a, nil)
	require.NoError(t, err)
	require.True(t, res.IsScalar)
	assert.Equal(t, -2.0, res.Scalar)
	assert.Equal(t, [][]float64{{-2}}, res.AsMatrix().ToRows())

	res, err = Run(OpInverse, mustLiteral(t, "2 0; 0 4"), nil)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.5, 0}, {0, 0.25}}, res.Matrix.ToRows())
}

func TestRunErrors(t *testing.T) {
	a := mustLiteral(t, "1,2;3,4")

	_, err := Run(OpAdd, a, nil)
	require.ErrorIs(t, err, ErrMissingOperand)

	_, err = Run(OpSub, a, mustLiteral(t, "1,2"))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = Run(OpDet, mustLiteral(t, "1,2"), nil)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = Run(OpInverse, mustLiteral(t, "0,1;1,0"), nil)
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = Run(Op("pow"), a, nil)
	require.ErrorIs(t, err, ErrUnknownOp)
}

func TestVerify(t *testing.T) {
	a := mustLiteral(t, "4,7;2,6")
	res, err := Run(OpInverse, a, nil)
	require.NoError(t, err)

	ok, err := Verify(a, res.Matrix, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Verify(a, a, 1e-9)
	require.NoError(t, err)
	assert.False(t, ok)

	for _, eps := range []float64{math.NaN(), math.Inf(1), -1} {
		ok, err = Verify(a, res.Matrix, eps)
		require.ErrorIs(t, err, ErrBadTolerance, "eps %v", eps)
		assert.False(t, ok)
	}
}
