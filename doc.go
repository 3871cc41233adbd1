// Package naca is a small toolkit for generating NACA airfoil geometry:
// from a four- or five-digit designator to coordinate files ready for
// XFOIL, CAD point clouds or SDF/GPU pipelines.
//
// 🚀 What is in the module?
//
//   - naca/    — designator parsing, thickness & camber laws, surface offset,
//     closed boundary assembly, canonical-profile classification
//   - spline/  — not-a-knot cubic spline used to interpolate the published
//     5-digit mean-line tables
//   - matrix/  — dense storage + LU with partial pivoting behind the spline
//   - foilio/  — Selig .dat, CSV and JSON writers, Selig reader, float32
//     polygon export (ms2.Vec) for SDF builders
//   - cmd/nacagen — CLI: gen, batch, classify, list, info
//
// ✨ Why?
//
//   - Pure functions – no global state in the geometry code, safe for any
//     number of concurrent callers
//   - Typed failures – every error is a sentinel matched with errors.Is
//   - Both trailing-edge variants and both chordwise spacings
//
// ⚙️ Quick start:
//
//	foil, err := naca.Generate("2412", 100, nil)
//	if err != nil {
//	  log.Fatal(err)
//	}
//	_ = foilio.WriteSelig(os.Stdout, "NACA 2412", foil.Boundary)
//
// Or from the shell:
//
//	nacagen gen 23012 -n 120 --cosine -o naca23012.dat
package naca
