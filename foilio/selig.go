// SPDX-License-Identifier: MIT

package foilio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/naca/naca"
)

// seligPrec is the number of decimals written per coordinate.
const seligPrec = 6

// WriteSelig writes name on the first line and one "x y" row per point.
// c is written in its own order; pass Airfoil.Boundary for a standard file.
func WriteSelig(w io.Writer, name string, c naca.Curve) error {
	if len(c) == 0 {
		return fmt.Errorf("foilio.WriteSelig(%q): %w", name, ErrEmptyCurve)
	}
	bw := bufio.NewWriter(w)
	bw.WriteString(strings.TrimSpace(name))
	bw.WriteByte('\n')

	buf := make([]byte, 0, 32)
	for i, p := range c {
		if !finite(p.X) || !finite(p.Y) {
			return fmt.Errorf("foilio.WriteSelig(%q): point %d: %w", name, i, ErrNonFinite)
		}
		buf = appendCoord(buf[:0], p.X)
		buf = append(buf, ' ')
		buf = appendCoord(buf, p.Y)
		buf = append(buf, '\n')
		bw.Write(buf)
	}

	return bw.Flush()
}

// appendCoord right-aligns v in a 9 column field.
func appendCoord(b []byte, v float64) []byte {
	s := strconv.FormatFloat(v, 'f', seligPrec, 64)
	for pad := 9 - len(s); pad > 0; pad-- {
		b = append(b, ' ')
	}

	return append(b, s...)
}

// ReadSelig parses a Selig file. Blank lines are skipped. The first
// non-blank line is the name unless it already is a coordinate row, and
// every following line must hold exactly two numbers.
func ReadSelig(r io.Reader) (name string, c naca.Curve, err error) {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		x, y, ok := parseRow(text)
		if !ok {
			if name == "" && len(c) == 0 {
				name = text
				continue
			}
			return "", nil, fmt.Errorf("foilio.ReadSelig: line %d: %q: %w", line, text, ErrMalformedRow)
		}
		if !finite(x) || !finite(y) {
			return "", nil, fmt.Errorf("foilio.ReadSelig: line %d: %w", line, ErrNonFinite)
		}
		c = append(c, naca.Point{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return "", nil, fmt.Errorf("foilio.ReadSelig: %w", err)
	}
	if len(c) == 0 {
		return "", nil, fmt.Errorf("foilio.ReadSelig: %w", ErrEmptyCurve)
	}

	return name, c, nil
}

// parseRow splits "x y" into two floats.
func parseRow(text string) (x, y float64, ok bool) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, 0, false
	}
	x, errX := strconv.ParseFloat(fields[0], 64)
	y, errY := strconv.ParseFloat(fields[1], 64)

	return x, y, errX == nil && errY == nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
