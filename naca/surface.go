// SPDX-License-Identifier: MIT

package naca

import (
	"fmt"
	"math"
)

// Surface offsets the thickness envelope perpendicular to the camber line.
// With θ = atan(dyc/dx) at each station:
//
//	upper = (x − yt·sinθ, yc + yt·cosθ)
//	lower = (x + yt·sinθ, yc − yt·cosθ)
//
// Both curves run from the leading edge to the trailing edge, index-aligned
// with x.
//
// Errors:
//   - ErrLengthMismatch when the four inputs differ in length.
func Surface(x, yc, dyc, yt []float64) (upper, lower Curve, err error) {
	n := len(x)
	if len(yc) != n || len(dyc) != n || len(yt) != n {
		return nil, nil, fmt.Errorf("naca.Surface: len x=%d yc=%d dyc=%d yt=%d: %w",
			n, len(yc), len(dyc), len(yt), ErrLengthMismatch)
	}
	upper = make(Curve, n)
	lower = make(Curve, n)
	for i := 0; i < n; i++ {
		sin, cos := math.Sincos(math.Atan(dyc[i]))
		dx, dy := yt[i]*sin, yt[i]*cos
		upper[i] = Point{X: x[i] - dx, Y: yc[i] + dy}
		lower[i] = Point{X: x[i] + dx, Y: yc[i] - dy}
	}

	return upper, lower, nil
}

// Boundary joins the two surfaces into one closed-polygon ordering: the
// upper surface reversed (trailing edge → leading edge) followed by the
// lower surface without its first point, so the shared leading-edge point
// appears once and the trailing edge appears at both ends.
// For n+1 points per surface the result has 2n+1 points.
func Boundary(upper, lower Curve) Curve {
	if len(upper) == 0 {
		return nil
	}
	out := make(Curve, 0, len(upper)+len(lower)-1)
	for i := len(upper) - 1; i >= 0; i-- {
		out = append(out, upper[i])
	}
	if len(lower) > 1 {
		out = append(out, lower[1:]...)
	}

	return out
}
