// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/naca/matrix"
)

// MinKnots is the smallest knot count a not-a-knot spline accepts.
const MinKnots = 4

// domainTol absorbs rounding when callers compute a knot-valued x
// (e.g. 0.05*5) that lands one ulp past the end of the table.
const domainTol = 1e-12

// NotAKnot is an immutable cubic spline. It is safe for concurrent use.
type NotAKnot struct {
	xs, ys []float64
	m      []float64 // second derivative at each knot
}

// NewNotAKnot fits a not-a-knot cubic spline through (xs[i], ys[i]).
//
// Implementation:
//   - Stage 1: validate lengths, ordering and finiteness.
//   - Stage 2: assemble the n×n system for the knot curvatures M:
//     row 0 and row n-1 impose a continuous third derivative at knots 1
//     and n-2, rows 1..n-2 are the usual C² continuity equations.
//   - Stage 3: solve with matrix.Solve.
//
// The inputs are copied.
// Complexity: O(n³) for the dense solve.
func NewNotAKnot(xs, ys []float64) (*NotAKnot, error) {
	n := len(xs)
	if n != len(ys) {
		return nil, fmt.Errorf("NewNotAKnot: len(xs)=%d len(ys)=%d: %w", n, len(ys), ErrLengthMismatch)
	}
	if n < MinKnots {
		return nil, fmt.Errorf("NewNotAKnot: %d knots: %w", n, ErrTooFewKnots)
	}
	for i := 0; i < n; i++ {
		if !finite(xs[i]) || !finite(ys[i]) || (i > 0 && xs[i] <= xs[i-1]) {
			return nil, fmt.Errorf("NewNotAKnot: knot %d: %w", i, ErrUnsortedKnots)
		}
	}

	h := make([]float64, n-1)
	for i := range h {
		h[i] = xs[i+1] - xs[i]
	}

	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	rhs := make([]float64, n)
	set := func(i, j int, v float64) {
		if err == nil {
			err = a.Set(i, j, v)
		}
	}

	// Third-derivative continuity at knot 1: (M1-M0)/h0 = (M2-M1)/h1.
	set(0, 0, h[1])
	set(0, 1, -(h[0] + h[1]))
	set(0, 2, h[0])
	for i := 1; i < n-1; i++ {
		set(i, i-1, h[i-1])
		set(i, i, 2*(h[i-1]+h[i]))
		set(i, i+1, h[i])
		rhs[i] = 6 * ((ys[i+1]-ys[i])/h[i] - (ys[i]-ys[i-1])/h[i-1])
	}
	// Third-derivative continuity at knot n-2.
	set(n-1, n-3, h[n-2])
	set(n-1, n-2, -(h[n-3] + h[n-2]))
	set(n-1, n-1, h[n-3])
	if err != nil {
		return nil, fmt.Errorf("NewNotAKnot: %w", err)
	}

	m, err := matrix.Solve(a, rhs)
	if err != nil {
		return nil, fmt.Errorf("NewNotAKnot: %w", err)
	}

	s := &NotAKnot{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
		m:  m,
	}

	return s, nil
}

// Domain returns the closed interval the spline is defined on.
func (s *NotAKnot) Domain() (lo, hi float64) {
	return s.xs[0], s.xs[len(s.xs)-1]
}

// Eval returns the spline value at x.
// Returns ErrOutOfDomain when x lies outside Domain(); there is no extrapolation.
func (s *NotAKnot) Eval(x float64) (float64, error) {
	i, err := s.segment(x)
	if err != nil {
		return 0, err
	}
	x0, x1 := s.xs[i], s.xs[i+1]
	h := x1 - x0
	a, b := x1-x, x-x0

	return s.m[i]*a*a*a/(6*h) + s.m[i+1]*b*b*b/(6*h) +
		(s.ys[i]/h-s.m[i]*h/6)*a + (s.ys[i+1]/h-s.m[i+1]*h/6)*b, nil
}

// Deriv returns the first derivative of the spline at x.
func (s *NotAKnot) Deriv(x float64) (float64, error) {
	i, err := s.segment(x)
	if err != nil {
		return 0, err
	}
	x0, x1 := s.xs[i], s.xs[i+1]
	h := x1 - x0
	a, b := x1-x, x-x0

	return -s.m[i]*a*a/(2*h) + s.m[i+1]*b*b/(2*h) +
		(s.ys[i+1]-s.ys[i])/h - (s.m[i+1]-s.m[i])*h/6, nil
}

// segment locates the knot interval [xs[i], xs[i+1]] containing x.
func (s *NotAKnot) segment(x float64) (int, error) {
	lo, hi := s.Domain()
	if math.IsNaN(x) || x < lo-domainTol || x > hi+domainTol {
		return 0, fmt.Errorf("NotAKnot: x=%g not in [%g, %g]: %w", x, lo, hi, ErrOutOfDomain)
	}
	i := sort.SearchFloat64s(s.xs, x) - 1
	if i < 0 {
		i = 0
	}
	if last := len(s.xs) - 2; i > last {
		i = last
	}

	return i, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
