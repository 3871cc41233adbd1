// SPDX-License-Identifier: MIT

package naca

import (
	"fmt"
	"math"
)

// Spacing returns the n+1 chordwise stations x[0]=0 … x[n]=1.
//
// With halfCosine false the stations are uniform (x_i = i/n). With
// halfCosine true they follow x_i = (1 − cos(π·i/n))/2, clustering points
// at both the leading and the trailing edge where curvature is highest.
//
// Errors:
//   - ErrInvalidSampleCount when n < 1.
func Spacing(n int, halfCosine bool) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("naca.Spacing(%d): %w", n, ErrInvalidSampleCount)
	}
	x := make([]float64, n+1)
	fn := float64(n)
	for i := 0; i <= n; i++ {
		if halfCosine {
			x[i] = 0.5 * (1 - math.Cos(math.Pi*float64(i)/fn))
		} else {
			x[i] = float64(i) / fn
		}
	}
	// Pin the ends so the chord is exactly [0, 1].
	x[0], x[n] = 0, 1

	return x, nil
}
