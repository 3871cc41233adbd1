// SPDX-License-Identifier: MIT

package naca

import (
	"fmt"
	"math"
)

// Options configures Generate.
//
// Fields:
//   - FiniteTrailingEdge: use the published a4 = −0.1015 thickness
//     coefficient, leaving a trailing-edge gap of 0.021·t.
//     false closes the trailing edge (a4 = −0.1036).
//   - HalfCosineSpacing: cluster stations at both edges instead of
//     spacing them uniformly along the chord.
type Options struct {
	FiniteTrailingEdge bool
	HalfCosineSpacing  bool
}

// DefaultOptions returns a closed trailing edge with uniform spacing.
func DefaultOptions() Options {
	return Options{}
}

// Airfoil is the geometry produced by Generate. All curves are freshly
// allocated and owned by the caller.
type Airfoil struct {
	Designator string
	Params     Params

	// Upper and Lower run leading edge → trailing edge, n+1 points each.
	Upper Curve
	Lower Curve

	// Camber is the mean line, n+1 points with x from 0 to 1.
	Camber Curve

	// Boundary is the closed polygon ordering, 2n+1 points:
	// trailing edge → upper → leading edge → lower → trailing edge.
	Boundary Curve
}

// Generate builds the geometry of designator sampled at n+1 chordwise stations.
//
// Implementation:
//   - Stage 1: Parse the designator and build the stations (Spacing).
//   - Stage 2: Thickness and CamberLine, independently.
//   - Stage 3: Surface offset and Boundary assembly.
//   - Stage 4: reject non-finite coordinates (ErrDomain).
//
// A nil opts means DefaultOptions().
//
// Errors:
//   - ErrInvalidFormat, ErrUnsupportedDigitCount from Parse.
//   - ErrInvalidSampleCount when n < 1.
//   - ErrDomain from CamberLine or the finiteness check.
//
// Complexity: O(n) time and memory.
func Generate(designator string, n int, opts *Options) (*Airfoil, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	params, err := Parse(designator)
	if err != nil {
		return nil, err
	}
	x, err := Spacing(n, o.HalfCosineSpacing)
	if err != nil {
		return nil, fmt.Errorf("naca.Generate(%q): %w", designator, err)
	}

	yt := Thickness(x, params.MaxThickness(), o.FiniteTrailingEdge)
	yc, dyc, err := CamberLine(params, x)
	if err != nil {
		return nil, fmt.Errorf("naca.Generate(%q): %w", designator, err)
	}

	upper, lower, err := Surface(x, yc, dyc, yt)
	if err != nil {
		return nil, fmt.Errorf("naca.Generate(%q): %w", designator, err)
	}
	foil := &Airfoil{
		Designator: designator,
		Params:     params,
		Upper:      upper,
		Lower:      lower,
		Camber:     zip(x, yc),
		Boundary:   Boundary(upper, lower),
	}
	if i, ok := firstNonFinite(foil.Boundary); ok {
		return nil, fmt.Errorf("naca.Generate(%q): boundary point %d is not finite: %w", designator, i, ErrDomain)
	}

	return foil, nil
}

// BoundRadius returns the largest absolute coordinate of the boundary,
// i.e. the half-size of the smallest origin-centred square holding it.
func (a *Airfoil) BoundRadius() float64 {
	var r float64
	for _, p := range a.Boundary {
		r = math.Max(r, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}

	return r
}

// MaxCamber returns the sampled camber-line point with the largest y.
// Ties keep the station nearest the leading edge; symmetric profiles
// return the leading edge.
func (a *Airfoil) MaxCamber() Point {
	if len(a.Camber) == 0 {
		return Point{}
	}
	best := a.Camber[0]
	for _, p := range a.Camber[1:] {
		if p.Y > best.Y {
			best = p
		}
	}

	return best
}

// firstNonFinite returns the index of the first NaN/Inf coordinate in c.
func firstNonFinite(c Curve) (int, bool) {
	for i, p := range c {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return i, true
		}
	}

	return 0, false
}
