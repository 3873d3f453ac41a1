// Package calc is the presentation-side glue between user text and the
// matrix engine: it parses dimensions and cells, and dispatches named
// operations.
package calc

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/matcalc/matrix"
)

var (
	// ErrUnknownOp is returned for an operation name ParseOp does not know.
	ErrUnknownOp = errors.New("calc: unknown operation")

	// ErrMissingOperand is returned when a binary operation has no B matrix.
	ErrMissingOperand = errors.New("calc: missing operand")

	// ErrBadTolerance is returned by Verify for a NaN, infinite or negative eps.
	ErrBadTolerance = errors.New("calc: tolerance must be finite and >= 0")
)

// Op names an engine operation.
type Op string

const (
	OpAdd       Op = "add"
	OpSub       Op = "sub"
	OpMul       Op = "mul"
	OpTranspose Op = "transpose"
	OpDet       Op = "det"
	OpInverse   Op = "inverse"
)

// Ops lists every operation in menu order.
var Ops = []Op{OpAdd, OpSub, OpMul, OpTranspose, OpDet, OpInverse}

var opAliases = map[string]Op{
	"add": OpAdd, "+": OpAdd, "plus": OpAdd,
	"sub": OpSub, "-": OpSub, "subtract": OpSub, "minus": OpSub,
	"mul": OpMul, "*": OpMul, "x": OpMul, "multiply": OpMul,
	"transpose": OpTranspose, "t": OpTranspose,
	"det": OpDet, "determinant": OpDet,
	"inverse": OpInverse, "inv": OpInverse, "invert": OpInverse,
}

// ParseOp resolves an operation name or alias, case-insensitively.
func ParseOp(s string) (Op, error) {
	op, ok := opAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%q: %w", s, ErrUnknownOp)
	}
	return op, nil
}

// Binary reports whether op needs a second operand.
func (op Op) Binary() bool {
	return op == OpAdd || op == OpSub || op == OpMul
}

// Result is either a matrix or a scalar.
type Result struct {
	Matrix   *matrix.Dense
	Scalar   float64
	IsScalar bool
}

// AsMatrix returns the result as a matrix; a scalar becomes a 1×1 matrix.
func (r Result) AsMatrix() *matrix.Dense {
	if !r.IsScalar {
		return r.Matrix
	}
	m, _ := matrix.NewDenseFromRows([][]float64{{r.Scalar}})
	return m
}

// Run applies op to a (and b for binary operations).
func Run(op Op, a, b matrix.Matrix) (Result, error) {
	if op.Binary() && b == nil {
		return Result{}, fmt.Errorf("%s: %w", op, ErrMissingOperand)
	}

	var (
		out matrix.Matrix
		err error
	)
	switch op {
	case OpAdd:
		out, err = matrix.Add(a, b)
	case OpSub:
		out, err = matrix.Sub(a, b)
	case OpMul:
		out, err = matrix.Mul(a, b)
	case OpTranspose:
		out, err = matrix.Transpose(a)
	case OpInverse:
		out, err = matrix.Inverse(a)
	case OpDet:
		d, err := matrix.Determinant(a)
		if err != nil {
			return Result{}, err
		}
		return Result{Scalar: d, IsScalar: true}, nil
	default:
		return Result{}, fmt.Errorf("%q: %w", op, ErrUnknownOp)
	}
	if err != nil {
		return Result{}, err
	}

	// Engine operations always allocate *Dense results.
	return Result{Matrix: out.(*matrix.Dense)}, nil
}

// Verify checks that inv is an inverse of a: A·inv ≈ I within eps.
func Verify(a, inv matrix.Matrix, eps float64) (bool, error) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return false, fmt.Errorf("verify: eps %g: %w", eps, ErrBadTolerance)
	}
	prod, err := matrix.Mul(a, inv)
	if err != nil {
		return false, err
	}
	id, err := matrix.NewIdentity(prod.Rows())
	if err != nil {
		return false, err
	}
	return matrix.AllClose(prod, id, matrix.WithEpsilon(eps)), nil
}
