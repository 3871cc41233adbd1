// SPDX-License-Identifier: MIT

package naca

import "math"

// Thickness polynomial coefficients (NACA Report 460).
const (
	a0 = 0.2969
	a1 = -0.1260
	a2 = -0.3516
	a3 = 0.2843

	// a4Closed closes the trailing edge: the polynomial sums to zero at x=1.
	a4Closed = -0.1036
	// a4Finite is the published coefficient, leaving a small trailing-edge gap.
	a4Finite = -0.1015
)

// Thickness returns the half-thickness yt(x) for a profile of maximum
// thickness t:
//
//	yt = 5t·(a0·√x + a1·x + a2·x² + a3·x³ + a4·x⁴)
//
// finiteTE selects a4 = −0.1015 (open trailing edge) instead of −0.1036.
// x values are expected in [0, 1]; the result has len(x) entries.
func Thickness(x []float64, t float64, finiteTE bool) []float64 {
	a4 := a4Closed
	if finiteTE {
		a4 = a4Finite
	}
	yt := make([]float64, len(x))
	for i, xi := range x {
		yt[i] = 5 * t * (a0*math.Sqrt(xi) + xi*(a1+xi*(a2+xi*(a3+xi*a4))))
	}

	return yt
}

// TrailingEdgeGap returns the half-thickness at x=1 for maximum thickness t:
// 0 for a closed trailing edge and 5t·0.0021 = 0.0105·t for a finite one.
// The closed value is exact; Thickness at x=1 carries rounding noise.
func TrailingEdgeGap(t float64, finiteTE bool) float64 {
	if !finiteTE {
		return 0
	}

	return 5 * t * (a4Finite - a4Closed)
}
