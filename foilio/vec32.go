// SPDX-License-Identifier: MIT

package foilio

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/katalvlaran/naca/naca"
	"github.com/soypat/glgl/math/ms2"
)

// Vecs32 converts c to single precision, one ms2.Vec per point.
func Vecs32(c naca.Curve) []ms2.Vec {
	out := make([]ms2.Vec, len(c))
	for i, p := range c {
		out[i] = ms2.Vec{X: float32(p.X), Y: float32(p.Y)}
	}

	return out
}

// Polygon32 returns the vertices of c as an implicitly closed polygon:
// a final vertex equal to the first is dropped, as are vertices that
// collapse onto their predecessor after rounding to float32.
//
// Errors:
//   - ErrNonFinite for a NaN or ±Inf vertex.
//   - ErrDegeneratePolygon when fewer than 3 distinct vertices remain.
func Polygon32(c naca.Curve) ([]ms2.Vec, error) {
	out := make([]ms2.Vec, 0, len(c))
	for i, v := range Vecs32(c) {
		if math32.IsNaN(v.X) || math32.IsNaN(v.Y) || math32.IsInf(v.X, 0) || math32.IsInf(v.Y, 0) {
			return nil, fmt.Errorf("foilio.Polygon32: vertex %d: %w", i, ErrNonFinite)
		}
		if len(out) > 0 && out[len(out)-1] == v {
			continue
		}
		out = append(out, v)
	}
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	if len(out) < 3 {
		return nil, fmt.Errorf("foilio.Polygon32: %d vertices: %w", len(out), ErrDegeneratePolygon)
	}

	return out, nil
}

// Bounds32 returns the axis-aligned bounding box of c in single precision.
// An empty curve yields the zero box.
func Bounds32(c naca.Curve) ms2.Box {
	if len(c) == 0 {
		return ms2.Box{}
	}
	min := ms2.Vec{X: math32.Inf(1), Y: math32.Inf(1)}
	max := ms2.Vec{X: math32.Inf(-1), Y: math32.Inf(-1)}
	for _, v := range Vecs32(c) {
		min = ms2.MinElem(min, v)
		max = ms2.MaxElem(max, v)
	}

	return ms2.NewBox(min.X, min.Y, max.X, max.Y)
}
