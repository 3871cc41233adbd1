// Package foilio reads and writes airfoil coordinates produced by package naca.
//
// 🚀 Formats:
//   - Selig ".dat": a name line followed by "x y" rows, trailing edge over the
//     upper surface to the leading edge and back along the lower surface.
//     This is what XFOIL, XFLR5 and most airfoil databases accept.
//   - CSV: "x,y,z" rows with z = 0, ready for CAD point-cloud import.
//   - JSON: designator, family, boundary and camber line in one document.
//
// ✨ float32 export:
//
//	Vecs32, Polygon32 and Bounds32 convert a Curve into ms2.Vec slices and
//	boxes from github.com/soypat/glgl/math/ms2, the types SDF builders and
//	GPU evaluators consume.
//
// ⚙️ Usage:
//
//	foil, _ := naca.Generate("2412", 100, nil)
//	f, _ := foilio.ParseFormat("selig")
//	err := foilio.Write(os.Stdout, f, foil)
//
// Writers never close the io.Writer they are given.
package foilio
