// SPDX-License-Identifier: MIT

package foilio

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/naca/naca"
)

// Format names an output encoding.
type Format string

const (
	Selig Format = "selig"
	CSV   Format = "csv"
	JSON  Format = "json"
)

// Formats lists the supported formats in display order.
func Formats() []Format { return []Format{Selig, CSV, JSON} }

// ParseFormat maps a case-insensitive name onto a Format.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	switch f {
	case Selig, CSV, JSON:
		return f, nil
	default:
		return "", fmt.Errorf("foilio.ParseFormat(%q): %w", name, ErrUnknownFormat)
	}
}

// Ext returns the conventional file extension, including the dot.
func (f Format) Ext() string {
	if f == Selig {
		return ".dat"
	}

	return "." + string(f)
}

// Write encodes foil in format f. Selig and CSV carry the closed boundary;
// JSON carries the full document.
func Write(w io.Writer, f Format, foil *naca.Airfoil) error {
	switch f {
	case Selig:
		return WriteSelig(w, "NACA "+foil.Designator, foil.Boundary)
	case CSV:
		return WriteCSV(w, foil.Boundary)
	case JSON:
		return WriteJSON(w, foil)
	default:
		return fmt.Errorf("foilio.Write(%q): %w", string(f), ErrUnknownFormat)
	}
}
