package foilio_test

import (
	"bytes"
	"encoding/csv"
	"math"
	"testing"

	"github.com/katalvlaran/naca/foilio"
	"github.com/katalvlaran/naca/naca"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV_Layout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, foilio.WriteCSV(&buf, diamond))

	want := "1.000000,0.000000,0\n" +
		"0.500000,0.050000,0\n" +
		"0.000000,0.000000,0\n" +
		"0.500000,-0.050000,0\n" +
		"1.000000,0.000000,0\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_ReadableByEncodingCSV(t *testing.T) {
	foil, err := naca.Generate("4415", 25, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, foilio.WriteCSV(&buf, foil.Boundary))

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, recs, len(foil.Boundary))
	for _, r := range recs {
		assert.Len(t, r, 3)
		assert.Equal(t, "0", r[2])
	}
}

func TestWriteCSV_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, foilio.WriteCSV(&buf, naca.Curve{}), foilio.ErrEmptyCurve)
	assert.ErrorIs(t, foilio.WriteCSV(&buf, naca.Curve{{X: math.Inf(1)}}), foilio.ErrNonFinite)
}
