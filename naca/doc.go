// Package naca generates NACA 4-digit and 5-digit airfoil geometry.
//
// 🚀 What does it produce?
//
//	Given a profile designator ("2412", "23012") and a half-chord sample
//	count n, Generate returns:
//	  • the closed boundary polygon (2n+1 points): trailing edge → upper
//	    surface → leading edge → lower surface → trailing edge
//	  • the mean camber line (n+1 points, x increasing from 0 to 1)
//	  • the upper and lower surfaces separately (n+1 points each)
//
//	Coordinates are normalized to unit chord with the leading edge at the
//	origin and the trailing edge at (1, 0).
//
// ✨ Key features:
//   - 4-digit "MPTT" and 5-digit "LPSTT" families, including reflex 5-digit mean lines
//   - classic closed trailing edge or the finite (open) trailing-edge variant
//   - uniform or half-cosine chordwise spacing
//   - canonical / reasonable designator classification for display colouring
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/naca/naca"
//
//	opts := naca.DefaultOptions()
//	opts.HalfCosineSpacing = true
//
//	foil, err := naca.Generate("2412", 100, &opts)
//	if err != nil {
//	  // ErrInvalidFormat, ErrUnsupportedDigitCount, ErrDomain, ErrInvalidSampleCount
//	}
//	xs, ys := foil.Boundary.Xs(), foil.Boundary.Ys()
//
// The pipeline stages are exported on their own: Parse, Spacing, Thickness,
// CamberLine, Surface and Boundary.
//
// Every function is pure: no shared mutable state, no I/O, no logging.
// Concurrent callers need no coordination.
//
// References:
//
//	Jacobs, Ward, Pinkerton: NACA Report 460 (1933).
//	Jacobs, Pinkerton: NACA Report 537 (1935).
//	Ladson, Brooks: NASA TM X-3284 (1975).
package naca
