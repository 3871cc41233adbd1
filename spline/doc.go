// Package spline implements not-a-knot cubic spline interpolation over a
// strictly increasing set of knots.
//
// A not-a-knot spline has continuous value, slope and curvature everywhere
// and, in addition, a continuous third derivative at the second and the
// second-to-last knot. With four knots it degenerates to the single cubic
// through all of them; with any number of knots it reproduces cubic
// polynomials exactly and passes through every knot value.
//
// Usage:
//
//	s, err := spline.NewNotAKnot(xs, ys)
//	if err != nil {
//	  // ErrTooFewKnots, ErrLengthMismatch, ErrUnsortedKnots
//	}
//	y, err := s.Eval(0.17) // ErrOutOfDomain outside [xs[0], xs[len-1]]
//
// The second derivatives at the knots are obtained from one dense linear
// solve (package matrix); systems are as small as the knot tables they
// interpolate.
package spline
