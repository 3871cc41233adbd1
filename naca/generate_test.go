package naca_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/naca/naca"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allModes enumerates the four Options combinations.
func allModes() []naca.Options {
	return []naca.Options{
		{},
		{FiniteTrailingEdge: true},
		{HalfCosineSpacing: true},
		{FiniteTrailingEdge: true, HalfCosineSpacing: true},
	}
}

// TestGenerate_0012Scenario is the n=4 uniform, closed-TE symmetric case.
func TestGenerate_0012Scenario(t *testing.T) {
	foil, err := naca.Generate("0012", 4, nil)
	require.NoError(t, err)

	require.Len(t, foil.Camber, 5)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, foil.Camber.Xs())
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, foil.Camber.Ys())

	require.Len(t, foil.Boundary, 9)
	assert.Equal(t, []float64{1, 0.75, 0.5, 0.25, 0, 0.25, 0.5, 0.75, 1}, foil.Boundary.Xs())

	// Leading edge exactly once, in the middle.
	assert.Equal(t, naca.Point{X: 0, Y: 0}, foil.Boundary[4])
	assert.InDelta(t, 0.0594075, foil.Boundary[3].Y, 1e-12)
	assert.InDelta(t, -0.0594075, foil.Boundary[5].Y, 1e-12)
}

// TestGenerate_PointCounts checks 2n+1 boundary and n+1 camber points.
func TestGenerate_PointCounts(t *testing.T) {
	for _, n := range []int{1, 2, 7, 100} {
		for _, opts := range allModes() {
			opts := opts
			foil, err := naca.Generate("4415", n, &opts)
			require.NoError(t, err)
			assert.Len(t, foil.Boundary, 2*n+1, "n=%d %+v", n, opts)
			assert.Len(t, foil.Camber, n+1, "n=%d %+v", n, opts)
			assert.Len(t, foil.Upper, n+1)
			assert.Len(t, foil.Lower, n+1)
		}
	}
}

// TestGenerate_SymmetricMirror checks (x, y) ↔ (x, −y) at mirrored indices
// for every symmetric 4-digit designator (camber digit or position digit zero).
func TestGenerate_SymmetricMirror(t *testing.T) {
	const n = 24
	var designators []string
	for d := 0; d <= 9; d++ {
		designators = append(designators, fmt.Sprintf("0%d12", d), fmt.Sprintf("%d015", d))
	}
	for _, d := range designators {
		for _, opts := range allModes() {
			opts := opts
			foil, err := naca.Generate(d, n, &opts)
			require.NoError(t, err, d)
			b := foil.Boundary
			for i := 0; i <= n; i++ {
				j := 2*n - i
				assert.InDelta(t, b[i].X, b[j].X, 1e-15, "%s x at %d/%d", d, i, j)
				assert.InDelta(t, b[i].Y, -b[j].Y, 1e-15, "%s y at %d/%d", d, i, j)
			}
		}
	}
}

// TestGenerate_UpperAboveLower checks the surfaces never cross along the
// thickness axis, for every canonical profile that has published constants.
func TestGenerate_UpperAboveLower(t *testing.T) {
	designators := append(naca.Canonical4(), "22012", "23012", "24012", "25012", "22112", "23112", "24112", "25112", "21012")
	for _, d := range designators {
		for _, opts := range allModes() {
			opts := opts
			foil, err := naca.Generate(d, 60, &opts)
			require.NoError(t, err, d)
			for i := range foil.Upper {
				assert.GreaterOrEqual(t, foil.Upper[i].Y-foil.Lower[i].Y, -1e-12, "%s station %d", d, i)
			}
		}
	}
}

// TestGenerate_TrailingEdge checks the closed and finite trailing edges.
func TestGenerate_TrailingEdge(t *testing.T) {
	closed, err := naca.Generate("2412", 50, &naca.Options{})
	require.NoError(t, err)
	first, last := closed.Boundary[0], closed.Boundary[len(closed.Boundary)-1]
	assert.InDelta(t, first.X, last.X, 1e-10)
	assert.InDelta(t, first.Y, last.Y, 1e-10)

	open, err := naca.Generate("2412", 50, &naca.Options{FiniteTrailingEdge: true})
	require.NoError(t, err)
	first, last = open.Boundary[0], open.Boundary[len(open.Boundary)-1]
	gap := math.Hypot(first.X-last.X, first.Y-last.Y)
	assert.InDelta(t, 2*0.0105*0.12, gap, 1e-12)
}

// TestGenerate_2412Camber checks the maximum camber point on a grid that
// contains x=0.4.
func TestGenerate_2412Camber(t *testing.T) {
	foil, err := naca.Generate("2412", 10, nil)
	require.NoError(t, err)

	mc := foil.MaxCamber()
	assert.InDelta(t, 0.4, mc.X, 1e-12)
	assert.InDelta(t, 0.02, mc.Y, 1e-12)
	assert.Equal(t, naca.FourDigit{Camber: 0.02, Position: 0.4, Thickness: 0.12}, foil.Params)
}

// TestGenerate_BoundRadius is driven by the trailing edge at x=1.
func TestGenerate_BoundRadius(t *testing.T) {
	foil, err := naca.Generate("0012", 20, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, foil.BoundRadius(), 1e-12)

	sym := foil.MaxCamber()
	assert.Equal(t, naca.Point{}, sym)
}

// TestGenerate_Errors propagates every sentinel.
func TestGenerate_Errors(t *testing.T) {
	cases := []struct {
		d    string
		n    int
		want error
	}{
		{"12AB", 10, naca.ErrInvalidFormat},
		{"123", 10, naca.ErrUnsupportedDigitCount},
		{"2412", 0, naca.ErrInvalidSampleCount},
		{"27012", 10, naca.ErrDomain},
		{"21112", 10, naca.ErrDomain},
	}
	for _, tc := range cases {
		foil, err := naca.Generate(tc.d, tc.n, nil)
		assert.ErrorIs(t, err, tc.want, tc.d)
		assert.Nil(t, foil)
	}
}

// TestGenerate_Deterministic returns identical, independent results.
func TestGenerate_Deterministic(t *testing.T) {
	opts := naca.Options{HalfCosineSpacing: true}
	a, err := naca.Generate("23012", 40, &opts)
	require.NoError(t, err)
	b, err := naca.Generate("23012", 40, &opts)
	require.NoError(t, err)

	assert.Equal(t, a.Boundary, b.Boundary)
	a.Boundary[0].X = 42
	assert.NotEqual(t, a.Boundary[0], b.Boundary[0], "results must not share storage")
}
