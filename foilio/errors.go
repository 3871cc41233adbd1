// SPDX-License-Identifier: MIT
// Package foilio: sentinel error set.

package foilio

import "errors"

var (
	// ErrUnknownFormat indicates an output format name other than selig, csv or json.
	ErrUnknownFormat = errors.New("foilio: unknown output format")

	// ErrEmptyCurve indicates a curve (or file) without any coordinate rows.
	ErrEmptyCurve = errors.New("foilio: curve has no points")

	// ErrMalformedRow indicates a coordinate row that is not two numbers.
	ErrMalformedRow = errors.New("foilio: malformed coordinate row")

	// ErrNonFinite indicates a NaN or ±Inf coordinate.
	ErrNonFinite = errors.New("foilio: non-finite coordinate")

	// ErrDegeneratePolygon indicates fewer than three distinct polygon vertices.
	ErrDegeneratePolygon = errors.New("foilio: polygon needs at least 3 distinct vertices")
)
