package foilio_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/naca/foilio"
	"github.com/katalvlaran/naca/naca"
	"github.com/soypat/glgl/math/ms2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVecs32(t *testing.T) {
	got := foilio.Vecs32(diamond)
	require.Len(t, got, len(diamond))
	assert.Equal(t, ms2.Vec{X: 0.5, Y: 0.05}, got[1])
	assert.Empty(t, foilio.Vecs32(nil))
}

func TestPolygon32_DropsClosingAndRepeatedVertices(t *testing.T) {
	c := naca.Curve{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}}
	got, err := foilio.Polygon32(c)
	require.NoError(t, err)
	assert.Equal(t, []ms2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, got)
}

func TestPolygon32_Airfoil(t *testing.T) {
	foil, err := naca.Generate("0012", 10, &naca.Options{FiniteTrailingEdge: true})
	require.NoError(t, err)

	got, err := foilio.Polygon32(foil.Boundary)
	require.NoError(t, err)
	// Open trailing edge: the two end points differ, nothing is dropped.
	assert.Len(t, got, 21)
}

func TestPolygon32_Errors(t *testing.T) {
	_, err := foilio.Polygon32(naca.Curve{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}})
	assert.ErrorIs(t, err, foilio.ErrDegeneratePolygon)

	_, err = foilio.Polygon32(naca.Curve{{X: 0}, {X: 1}, {X: math.NaN()}})
	assert.ErrorIs(t, err, foilio.ErrNonFinite)
}

func TestBounds32(t *testing.T) {
	foil, err := naca.Generate("0012", 50, &naca.Options{FiniteTrailingEdge: true})
	require.NoError(t, err)

	bb := foilio.Bounds32(foil.Boundary)
	assert.Equal(t, float32(0), bb.Min.X)
	assert.Equal(t, float32(1), bb.Max.X)
	assert.InDelta(t, 0.06, bb.Max.Y, 1e-3)
	assert.Equal(t, -bb.Max.Y, bb.Min.Y)

	assert.Equal(t, ms2.Box{}, foilio.Bounds32(nil))
}
