// SPDX-License-Identifier: MIT

package naca

// Point is a chord-normalized (x, y) coordinate.
type Point struct {
	X float64
	Y float64
}

// Curve is an ordered sequence of points. Order is significant: position
// is the only identity a point carries.
type Curve []Point

// Xs returns the x coordinates of c as a new slice.
func (c Curve) Xs() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.X
	}

	return out
}

// Ys returns the y coordinates of c as a new slice.
func (c Curve) Ys() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.Y
	}

	return out
}

// zip pairs two equal-length coordinate slices into a Curve.
func zip(xs, ys []float64) Curve {
	c := make(Curve, len(xs))
	for i := range xs {
		c[i] = Point{X: xs[i], Y: ys[i]}
	}

	return c
}
