// SPDX-License-Identifier: MIT

package spline

import "errors"

var (
	// ErrTooFewKnots indicates fewer than MinKnots interpolation points.
	ErrTooFewKnots = errors.New("spline: not-a-knot spline needs at least 4 knots")

	// ErrLengthMismatch indicates len(xs) != len(ys).
	ErrLengthMismatch = errors.New("spline: xs and ys lengths differ")

	// ErrUnsortedKnots indicates knots that are not strictly increasing or not finite.
	ErrUnsortedKnots = errors.New("spline: knots must be finite and strictly increasing")

	// ErrOutOfDomain indicates an evaluation point outside the knot range.
	ErrOutOfDomain = errors.New("spline: x outside interpolation domain")
)
