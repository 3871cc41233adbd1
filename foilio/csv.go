// SPDX-License-Identifier: MIT

package foilio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/naca/naca"
)

// WriteCSV writes one "x,y,z" record per point with z fixed at 0, the
// layout CAD tools expect for planar point clouds. No header row.
func WriteCSV(w io.Writer, c naca.Curve) error {
	if len(c) == 0 {
		return fmt.Errorf("foilio.WriteCSV: %w", ErrEmptyCurve)
	}
	cw := csv.NewWriter(w)
	rec := make([]string, 3)
	rec[2] = "0"
	for i, p := range c {
		if !finite(p.X) || !finite(p.Y) {
			return fmt.Errorf("foilio.WriteCSV: point %d: %w", i, ErrNonFinite)
		}
		rec[0] = strconv.FormatFloat(p.X, 'f', seligPrec, 64)
		rec[1] = strconv.FormatFloat(p.Y, 'f', seligPrec, 64)
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("foilio.WriteCSV: point %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
