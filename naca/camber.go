// SPDX-License-Identifier: MIT

package naca

import (
	"fmt"

	"github.com/katalvlaran/naca/spline"
)

// Published 5-digit mean-line constants (NASA TM X-3284), tabulated for a
// design lift coefficient of 0.3. Never mutated; splines copy them.
var (
	// Simple (non-reflex) mean lines 210, 220, 230, 240, 250.
	simplePos = [...]float64{0.05, 0.10, 0.15, 0.20, 0.25}
	simpleR   = [...]float64{0.0580, 0.1260, 0.2025, 0.2900, 0.3910}
	simpleK1  = [...]float64{361.400, 51.640, 15.957, 6.643, 3.230}

	// Reflex mean lines 221, 231, 241, 251.
	reflexPos  = [...]float64{0.10, 0.15, 0.20, 0.25}
	reflexR    = [...]float64{0.1300, 0.2170, 0.3180, 0.4410}
	reflexK1   = [...]float64{51.990, 15.793, 6.520, 3.191}
	reflexK2K1 = [...]float64{0.000764, 0.00677, 0.0303, 0.1355}
)

// tableLift is the design lift coefficient the k1 tables are given for.
const tableLift = 0.3

// CamberLine returns the mean camber line yc(x) and its slope dyc/dx at
// every station of x, index-aligned with x.
//
// Symmetric profiles (camber position 0) yield all-zero slices. Otherwise
// the stations are split by index into fore (x ≤ split) and aft (x > split)
// groups, each group is evaluated with its own formula and written back at
// its original indices:
//
//	4-digit, split = p:
//	  fore  yc = m/p²·(2px − x²)                 dyc = m/p²·(2p − 2x)
//	  aft   yc = m/(1−p)²·(1 − 2p + 2px − x²)     dyc = m/(1−p)²·(2p − 2x)
//
//	5-digit simple, split = r:
//	  fore  yc = k1/6·(x³ − 3rx² + r²(3−r)x)     dyc = k1/6·(3x² − 6rx + r²(3−r))
//	  aft   yc = k1·r³/6·(1 − x)                  dyc = −k1·r³/6
//
//	5-digit reflex, split = r, q = k2/k1:
//	  fore  yc = k1/6·((x−r)³ − q(1−r)³x − r³x + r³)
//	  aft   yc = k1/6·(q(x−r)³ − q(1−r)³x − r³x + r³)
//
// r, k1 (and k2/k1) come from the published tables by not-a-knot cubic
// spline interpolation; k1 is scaled by DesignLift/0.3.
//
// Errors:
//   - ErrDomain for camber positions outside the formulas' domain, or a
//     5-digit S digit other than 0 or 1.
//   - ErrUnsupportedDigitCount for a Params value of neither family.
func CamberLine(p Params, x []float64) (yc, dyc []float64, err error) {
	yc = make([]float64, len(x))
	dyc = make([]float64, len(x))

	switch q := p.(type) {
	case FourDigit:
		if q.Position == 0 {
			return yc, dyc, nil
		}
		if q.Position < 0 || q.Position >= 1 {
			return nil, nil, fmt.Errorf("naca.CamberLine: position %g not in (0,1): %w", q.Position, ErrDomain)
		}
		fourDigitCamber(q.Camber, q.Position, x, yc, dyc)

		return yc, dyc, nil

	case FiveDigit:
		if q.Position == 0 {
			return yc, dyc, nil
		}
		ml, err := newMeanLine5(q)
		if err != nil {
			return nil, nil, err
		}
		ml.eval(x, yc, dyc)

		return yc, dyc, nil

	default:
		return nil, nil, fmt.Errorf("naca.CamberLine(%T): %w", p, ErrUnsupportedDigitCount)
	}
}

// partition splits the indices of x into those with x ≤ split and those
// with x > split, each in original order.
func partition(x []float64, split float64) (fore, aft []int) {
	fore = make([]int, 0, len(x))
	aft = make([]int, 0, len(x))
	for i, xi := range x {
		if xi <= split {
			fore = append(fore, i)
		} else {
			aft = append(aft, i)
		}
	}

	return fore, aft
}

// fourDigitCamber fills yc and dyc for a cambered 4-digit mean line.
func fourDigitCamber(m, p float64, x, yc, dyc []float64) {
	fore, aft := partition(x, p)

	kf := m / (p * p)
	for _, i := range fore {
		xi := x[i]
		yc[i] = kf * (2*p*xi - xi*xi)
		dyc[i] = kf * (2*p - 2*xi)
	}

	ka := m / ((1 - p) * (1 - p))
	for _, i := range aft {
		xi := x[i]
		yc[i] = ka * ((1 - 2*p) + 2*p*xi - xi*xi)
		dyc[i] = ka * (2*p - 2*xi)
	}
}

// meanLine5 holds the resolved constants of one 5-digit mean line.
type meanLine5 struct {
	r      float64 // transition point between the cubic and the linear/reflex part
	k1     float64 // scaled to the design lift coefficient
	k2k1   float64 // reflex only
	reflex bool
}

// newMeanLine5 resolves r, k1 and k2/k1 for q.
// The camber position used for the table lookup is P/20, where P is the
// first of the two position digits; the second one is the reflex flag S.
func newMeanLine5(q FiveDigit) (meanLine5, error) {
	s := q.PositionCode % 10
	if s > 1 {
		return meanLine5{}, fmt.Errorf("naca.CamberLine: reflex digit %d not in {0,1}: %w", s, ErrDomain)
	}
	pos := float64(q.PositionCode/10) / 20

	var (
		ml  = meanLine5{reflex: s == 1}
		err error
	)
	if ml.reflex {
		ml.r, err = lookup(reflexPos[:], reflexR[:], pos)
		if err == nil {
			ml.k1, err = lookup(reflexPos[:], reflexK1[:], pos)
		}
		if err == nil {
			ml.k2k1, err = lookup(reflexPos[:], reflexK2K1[:], pos)
		}
	} else {
		ml.r, err = lookup(simplePos[:], simpleR[:], pos)
		if err == nil {
			ml.k1, err = lookup(simplePos[:], simpleK1[:], pos)
		}
	}
	if err != nil {
		return meanLine5{}, fmt.Errorf("naca.CamberLine: mean line %d%02d: %w", int(q.DesignLift/0.15+0.5), q.PositionCode, err)
	}
	ml.k1 *= q.DesignLift / tableLift

	return ml, nil
}

// lookup interpolates one published table at pos. Positions outside the
// table are reported as ErrDomain rather than extrapolated.
func lookup(pos, val []float64, at float64) (float64, error) {
	s, err := spline.NewNotAKnot(pos, val)
	if err != nil {
		return 0, err
	}
	v, err := s.Eval(at)
	if err != nil {
		lo, hi := s.Domain()
		return 0, fmt.Errorf("camber position %g outside tabulated [%g, %g]: %w", at, lo, hi, ErrDomain)
	}

	return v, nil
}

// eval fills yc and dyc for the stations in x.
func (ml meanLine5) eval(x, yc, dyc []float64) {
	r, k1 := ml.r, ml.k1
	r3 := r * r * r
	fore, aft := partition(x, r)

	if !ml.reflex {
		c := r * r * (3 - r)
		for _, i := range fore {
			xi := x[i]
			yc[i] = k1 / 6 * (xi*xi*xi - 3*r*xi*xi + c*xi)
			dyc[i] = k1 / 6 * (3*xi*xi - 6*r*xi + c)
		}
		for _, i := range aft {
			yc[i] = k1 * r3 / 6 * (1 - x[i])
			dyc[i] = -k1 * r3 / 6
		}

		return
	}

	q := ml.k2k1
	oneR3 := (1 - r) * (1 - r) * (1 - r)
	for _, i := range fore {
		d := x[i] - r
		yc[i] = k1 / 6 * (d*d*d - q*oneR3*x[i] - r3*x[i] + r3)
		dyc[i] = k1 / 6 * (3*d*d - q*oneR3 - r3)
	}
	for _, i := range aft {
		d := x[i] - r
		yc[i] = k1 / 6 * (q*d*d*d - q*oneR3*x[i] - r3*x[i] + r3)
		dyc[i] = k1 / 6 * (3*q*d*d - q*oneR3 - r3)
	}
}
