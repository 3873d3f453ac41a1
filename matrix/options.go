// SPDX-License-Identifier: MIT

// Package matrix - tolerance options for Equal and AllClose.
//
// Options are plain functions applied over the defaults in order, last one
// wins. A setter given a nonsensical value panics when it is built.

package matrix

import "math"

const (
	// DefaultEpsilon is the absolute tolerance used by AllClose.
	// Matches the 1e-9 bound used when checking A·A⁻¹ against I.
	DefaultEpsilon = 1e-9

	// DefaultNaNEqual controls whether two NaN cells compare equal.
	DefaultNaNEqual = false
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option adjusts comparison settings.
type Option func(*Options)

// Options is the resolved comparison configuration.
type Options struct {
	eps      float64 // >= 0; DefaultEpsilon
	nanEqual bool    // DefaultNaNEqual
}

// WithEpsilon sets the absolute tolerance eps used by AllClose.
// Panics with a stable message when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithNaNEqual makes Equal and AllClose treat NaN == NaN as a match.
// Useful when asserting IEEE-754 propagation (e.g. 0*Inf in Mul).
func WithNaNEqual() Option {
	return func(o *Options) { o.nanEqual = true }
}

// gatherOptions resolves user setters over the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:      DefaultEpsilon,
		nanEqual: DefaultNaNEqual,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
