package naca_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/naca/naca"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSpacing_Uniform checks the n=4 uniform stations exactly.
func TestSpacing_Uniform(t *testing.T) {
	x, err := naca.Spacing(4, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, x)
}

// TestSpacing_HalfCosine checks the n=4 cosine stations.
func TestSpacing_HalfCosine(t *testing.T) {
	x, err := naca.Spacing(4, true)
	require.NoError(t, err)

	// (1 - cos(k·π/4)) / 2
	want := []float64{0, 0.14644660940672624, 0.5, 0.8535533905932737, 1}
	if diff := cmp.Diff(want, x, cmpopts.EquateApprox(0, 1e-15)); diff != "" {
		t.Errorf("half-cosine stations mismatch (-want +got):\n%s", diff)
	}
}

// TestSpacing_Monotonic verifies strictly increasing stations in both modes.
func TestSpacing_Monotonic(t *testing.T) {
	for _, cosine := range []bool{false, true} {
		x, err := naca.Spacing(57, cosine)
		require.NoError(t, err)
		require.Len(t, x, 58)
		assert.Equal(t, 0.0, x[0])
		assert.Equal(t, 1.0, x[57])
		for i := 1; i < len(x); i++ {
			assert.Greater(t, x[i], x[i-1], "cosine=%v station %d", cosine, i)
		}
	}
}

// TestSpacing_InvalidCount rejects n < 1.
func TestSpacing_InvalidCount(t *testing.T) {
	_, err := naca.Spacing(0, false)
	assert.ErrorIs(t, err, naca.ErrInvalidSampleCount)
	_, err = naca.Spacing(-3, true)
	assert.ErrorIs(t, err, naca.ErrInvalidSampleCount)
}
