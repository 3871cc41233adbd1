// SPDX-License-Identifier: MIT

package naca

import (
	"fmt"
	"math"
)

// Family identifies the NACA series a Params value belongs to.
type Family int

const (
	// FourDigitFamily is the "MPTT" series.
	FourDigitFamily Family = 4

	// FiveDigitFamily is the "LPSTT" series.
	FiveDigitFamily Family = 5
)

// String returns "4-digit" or "5-digit".
func (f Family) String() string {
	switch f {
	case FourDigitFamily:
		return "4-digit"
	case FiveDigitFamily:
		return "5-digit"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// Params is the decoded form of a designator: exactly one of FourDigit or
// FiveDigit. The set of implementations is closed.
type Params interface {
	// Family reports which series the parameters describe.
	Family() Family

	// CamberPosition is the chordwise position of maximum camber, as a
	// fraction of chord (5-digit: 0.005 × the two position digits).
	CamberPosition() float64

	// MaxThickness is the maximum thickness as a fraction of chord.
	MaxThickness() float64

	sealed()
}

// FourDigit holds the parameters of an "MPTT" profile.
type FourDigit struct {
	Camber    float64 // m: maximum camber, fraction of chord (M/100)
	Position  float64 // p: position of maximum camber, fraction of chord (P/10)
	Thickness float64 // t: maximum thickness, fraction of chord (TT/100)
}

// FiveDigit holds the parameters of an "LPSTT" profile.
type FiveDigit struct {
	DesignLift   float64 // design lift coefficient, 0.15 × L
	PositionCode int     // the two digits "PS" as an integer
	Position     float64 // 0.005 × PositionCode
	Reflex       bool    // S == 1
	Thickness    float64 // maximum thickness, fraction of chord (TT/100)
}

var (
	_ Params = FourDigit{}
	_ Params = FiveDigit{}
)

func (FourDigit) Family() Family            { return FourDigitFamily }
func (p FourDigit) CamberPosition() float64 { return p.Position }
func (p FourDigit) MaxThickness() float64   { return p.Thickness }
func (FourDigit) sealed()                   {}

func (FiveDigit) Family() Family            { return FiveDigitFamily }
func (p FiveDigit) CamberPosition() float64 { return p.Position }
func (p FiveDigit) MaxThickness() float64   { return p.Thickness }
func (FiveDigit) sealed()                   {}

// Symmetric reports whether the profile has no camber line.
func (p FourDigit) Symmetric() bool { return p.Camber == 0 || p.Position == 0 }

// Symmetric reports whether the profile has no camber line.
func (p FiveDigit) Symmetric() bool { return p.DesignLift == 0 || p.Position == 0 }

// Parse validates a designator and decodes it into Params.
//
// Implementation:
//   - Stage 1: reject empty input and any non-digit byte (ErrInvalidFormat).
//   - Stage 2: branch on length 4 / 5; anything else is ErrUnsupportedDigitCount.
//
// 4 digits "MPTT": Camber = M/100, Position = P/10, Thickness = TT/100.
// 5 digits "LPSTT": DesignLift = 0.15·L, Position = 0.005·PS, Thickness = TT/100.
func Parse(designator string) (Params, error) {
	if designator == "" {
		return nil, fmt.Errorf("naca.Parse(%q): %w", designator, ErrInvalidFormat)
	}
	for i := 0; i < len(designator); i++ {
		if c := designator[i]; c < '0' || c > '9' {
			return nil, fmt.Errorf("naca.Parse(%q): byte %d: %w", designator, i, ErrInvalidFormat)
		}
	}

	d := func(i int) int { return int(designator[i] - '0') }
	switch len(designator) {
	case 4:
		return FourDigit{
			Camber:    0.01 * float64(d(0)),
			Position:  0.10 * float64(d(1)),
			Thickness: 0.01 * float64(d(2)*10+d(3)),
		}, nil
	case 5:
		code := d(1)*10 + d(2)
		return FiveDigit{
			DesignLift:   0.150 * float64(d(0)),
			PositionCode: code,
			Position:     0.005 * float64(code),
			Reflex:       d(2) == 1,
			Thickness:    0.010 * float64(d(3)*10+d(4)),
		}, nil
	default:
		return nil, fmt.Errorf("naca.Parse(%q): %d digits: %w", designator, len(designator), ErrUnsupportedDigitCount)
	}
}

// Format is the inverse of Parse: it renders Params back into a designator.
// Returns ErrDomain if a field does not map onto a single digit group.
func Format(p Params) (string, error) {
	switch q := p.(type) {
	case FourDigit:
		m, okM := digits(q.Camber*100, 9)
		pos, okP := digits(q.Position*10, 9)
		t, okT := digits(q.Thickness*100, 99)
		if !okM || !okP || !okT {
			return "", fmt.Errorf("naca.Format(%+v): %w", q, ErrDomain)
		}

		return fmt.Sprintf("%d%d%02d", m, pos, t), nil
	case FiveDigit:
		l, okL := digits(q.DesignLift/0.15, 9)
		t, okT := digits(q.Thickness*100, 99)
		if !okL || !okT || q.PositionCode < 0 || q.PositionCode > 99 {
			return "", fmt.Errorf("naca.Format(%+v): %w", q, ErrDomain)
		}

		return fmt.Sprintf("%d%02d%02d", l, q.PositionCode, t), nil
	default:
		return "", fmt.Errorf("naca.Format(%T): %w", p, ErrUnsupportedDigitCount)
	}
}

// digits rounds v to the nearest integer and checks it lies in [0, max]
// and that v was integral to within rounding noise.
func digits(v float64, max int) (int, bool) {
	r := math.Round(v)
	if math.Abs(v-r) > 1e-9 || r < 0 || r > float64(max) {
		return 0, false
	}

	return int(r), true
}
