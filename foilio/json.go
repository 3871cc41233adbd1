// SPDX-License-Identifier: MIT

package foilio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/naca/naca"
)

// Document is the JSON form of an airfoil. Points are [x, y] pairs.
type Document struct {
	Designator     string       `json:"designator"`
	Family         string       `json:"family"`
	Class          string       `json:"class"`
	CamberPosition float64      `json:"camber_position"`
	MaxThickness   float64      `json:"max_thickness"`
	Boundary       [][2]float64 `json:"boundary"`
	Camber         [][2]float64 `json:"camber"`
}

// NewDocument flattens foil into a Document.
func NewDocument(foil *naca.Airfoil) Document {
	return Document{
		Designator:     foil.Designator,
		Family:         foil.Params.Family().String(),
		Class:          naca.Classify(foil.Designator).String(),
		CamberPosition: foil.Params.CamberPosition(),
		MaxThickness:   foil.Params.MaxThickness(),
		Boundary:       pairs(foil.Boundary),
		Camber:         pairs(foil.Camber),
	}
}

// WriteJSON encodes foil as an indented Document followed by a newline.
func WriteJSON(w io.Writer, foil *naca.Airfoil) error {
	if len(foil.Boundary) == 0 {
		return fmt.Errorf("foilio.WriteJSON(%q): %w", foil.Designator, ErrEmptyCurve)
	}
	for i, p := range foil.Boundary {
		if !finite(p.X) || !finite(p.Y) {
			return fmt.Errorf("foilio.WriteJSON(%q): point %d: %w", foil.Designator, i, ErrNonFinite)
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(foil)); err != nil {
		return fmt.Errorf("foilio.WriteJSON(%q): %w", foil.Designator, err)
	}

	return nil
}

func pairs(c naca.Curve) [][2]float64 {
	out := make([][2]float64, len(c))
	for i, p := range c {
		out[i] = [2]float64{p.X, p.Y}
	}

	return out
}
