// SPDX-License-Identifier: MIT

package matrix

import "math"

// Equal reports whether a and b have the same shape and identical cells.
// Nil operands are never equal. WithNaNEqual is honored; the tolerance is not.
func Equal(a, b Matrix, opts ...Option) bool {
	o := gatherOptions(opts...)
	o.eps = 0

	return sameCells(a, b, o)
}

// AllClose reports whether a and b have the same shape and every pair of
// cells satisfies |a−b| <= eps (DefaultEpsilon unless WithEpsilon is given).
// Equal infinities of the same sign match.
func AllClose(a, b Matrix, opts ...Option) bool {
	return sameCells(a, b, gatherOptions(opts...))
}

func sameCells(a, b Matrix, o Options) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	da, err := asDense(a)
	if err != nil {
		return false
	}
	db, err := asDense(b)
	if err != nil {
		return false
	}
	for idx, av := range da.data {
		if !closeEnough(av, db.data[idx], o) {
			return false
		}
	}

	return true
}

func closeEnough(a, b float64, o Options) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return o.nanEqual && math.IsNaN(a) && math.IsNaN(b)
	}
	if a == b {
		return true // covers equal infinities
	}

	return math.Abs(a-b) <= o.eps
}
