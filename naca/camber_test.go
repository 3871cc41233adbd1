package naca_test

import (
	"testing"

	"github.com/katalvlaran/naca/naca"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, d string) naca.Params {
	t.Helper()
	p, err := naca.Parse(d)
	require.NoError(t, err, d)

	return p
}

// TestCamberLine_Symmetric yields zero camber and slope for 00xx.
func TestCamberLine_Symmetric(t *testing.T) {
	x, _ := naca.Spacing(4, false)
	yc, dyc, err := naca.CamberLine(mustParse(t, "0012"), x)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, yc)
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, dyc)
}

// TestCamberLine_2412 checks values either side of p=0.4 and the maximum.
func TestCamberLine_2412(t *testing.T) {
	x := []float64{0, 0.2, 0.4, 0.7, 1}
	yc, dyc, err := naca.CamberLine(mustParse(t, "2412"), x)
	require.NoError(t, err)

	want := []float64{0, 0.015, 0.02, 0.015, 0}
	for i := range want {
		assert.InDelta(t, want[i], yc[i], 1e-12, "yc at x=%g", x[i])
	}
	assert.InDelta(t, 0, dyc[2], 1e-12, "slope vanishes at max camber")
	assert.Greater(t, dyc[0], 0.0)
	assert.Less(t, dyc[4], 0.0)
}

// TestCamberLine_2412_ContinuousAtBreakpoint confirms the fore and aft
// formulas agree at x=p in value and slope.
func TestCamberLine_2412_ContinuousAtBreakpoint(t *testing.T) {
	const eps = 1e-12
	x := []float64{0.4 - eps, 0.4, 0.4 + eps}
	yc, dyc, err := naca.CamberLine(mustParse(t, "2412"), x)
	require.NoError(t, err)

	assert.InDelta(t, dyc[1], dyc[0], 1e-9)
	assert.InDelta(t, dyc[1], dyc[2], 1e-9)
	assert.InDelta(t, yc[1], yc[2], 1e-9)

	// Same check on the n=10 grid, where x[4] is the breakpoint itself.
	grid, _ := naca.Spacing(10, false)
	_, dg, err := naca.CamberLine(mustParse(t, "2412"), grid)
	require.NoError(t, err)
	assert.InDelta(t, 0, dg[4], 1e-9)
}

// TestCamberLine_PreservesOrder feeds unsorted stations and expects
// index-aligned output.
func TestCamberLine_PreservesOrder(t *testing.T) {
	p := mustParse(t, "4415")
	x := []float64{0.9, 0.1, 0.4, 0.6, 0}
	yc, dyc, err := naca.CamberLine(p, x)
	require.NoError(t, err)

	for i, xi := range x {
		y1, d1, err := naca.CamberLine(p, []float64{xi})
		require.NoError(t, err)
		assert.Equal(t, y1[0], yc[i], "yc at index %d", i)
		assert.Equal(t, d1[0], dyc[i], "dyc at index %d", i)
	}
}

// TestCamberLine_23012 compares against the published mean line 230.
func TestCamberLine_23012(t *testing.T) {
	x := []float64{0, 0.15, 0.5, 1}
	yc, dyc, err := naca.CamberLine(mustParse(t, "23012"), x)
	require.NoError(t, err)

	assert.InDelta(t, 0, yc[0], 1e-12)
	assert.InDelta(t, 0.018386447016796884, yc[1], 1e-9)
	assert.InDelta(t, 0.011041932339843753, yc[2], 1e-9)
	assert.InDelta(t, 0, yc[3], 1e-12)

	// Aft of r the mean line is straight.
	r3k1 := 0.2025 * 0.2025 * 0.2025 * 15.957 / 6
	assert.InDelta(t, -r3k1, dyc[2], 1e-9)
	assert.InDelta(t, -r3k1, dyc[3], 1e-9)
}

// TestCamberLine_FiveDigitContinuousAtR checks the simple and reflex mean
// lines are C¹ at their transition point r.
func TestCamberLine_FiveDigitContinuousAtR(t *testing.T) {
	const eps = 1e-10
	for d, r := range map[string]float64{"23012": 0.2025, "24012": 0.2900, "23112": 0.2170, "25112": 0.4410} {
		yc, dyc, err := naca.CamberLine(mustParse(t, d), []float64{r - eps, r + eps})
		require.NoError(t, err, d)
		assert.InDelta(t, yc[0], yc[1], 1e-8, "%s yc", d)
		assert.InDelta(t, dyc[0], dyc[1], 1e-7, "%s dyc", d)
	}
}

// TestCamberLine_Reflex checks 23112 closes at both ends and matches the
// published reflex formula inside.
func TestCamberLine_Reflex(t *testing.T) {
	yc, _, err := naca.CamberLine(mustParse(t, "23112"), []float64{0, 0.1, 0.6, 1})
	require.NoError(t, err)

	assert.InDelta(t, 0, yc[0], 1e-12)
	assert.InDelta(t, 0.019135524590743913, yc[1], 1e-9)
	assert.InDelta(t, 0.0066270555234996704, yc[2], 1e-9)
	assert.InDelta(t, 0, yc[3], 1e-12)
}

// TestCamberLine_DesignLiftScales verifies camber is linear in L.
func TestCamberLine_DesignLiftScales(t *testing.T) {
	x := []float64{0.1, 0.15, 0.7}
	y2, _, err := naca.CamberLine(mustParse(t, "23012"), x)
	require.NoError(t, err)
	y4, _, err := naca.CamberLine(mustParse(t, "43012"), x)
	require.NoError(t, err)
	y0, _, err := naca.CamberLine(mustParse(t, "03012"), x)
	require.NoError(t, err)

	for i := range x {
		assert.InDelta(t, 2*y2[i], y4[i], 1e-12)
		assert.Equal(t, 0.0, y0[i])
	}
}

// TestCamberLine_Domain covers positions outside the published tables.
func TestCamberLine_Domain(t *testing.T) {
	x := []float64{0, 0.5, 1}
	for _, d := range []string{
		"26012", // P=6 beyond the simple table
		"21112", // no published reflex constants for P=1
		"23212", // S must be 0 or 1
		"20112", // P=0 with reflex flag set
	} {
		_, _, err := naca.CamberLine(mustParse(t, d), x)
		assert.ErrorIs(t, err, naca.ErrDomain, d)
	}

	_, _, err := naca.CamberLine(naca.FourDigit{Camber: 0.02, Position: 1.2, Thickness: 0.1}, x)
	assert.ErrorIs(t, err, naca.ErrDomain)
}

// TestCamberLine_UnknownVariant rejects a nil Params.
func TestCamberLine_UnknownVariant(t *testing.T) {
	_, _, err := naca.CamberLine(nil, []float64{0, 1})
	assert.ErrorIs(t, err, naca.ErrUnsupportedDigitCount)
}
