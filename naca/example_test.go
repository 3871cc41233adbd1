package naca_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/naca/naca"
)

// ExampleGenerate builds a symmetric 12 % section with four chordwise
// intervals and an open trailing edge, and prints the closed boundary.
func ExampleGenerate() {
	foil, err := naca.Generate("0012", 4, &naca.Options{FiniteTrailingEdge: true})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, p := range foil.Boundary {
		fmt.Printf("%.4f %+.5f\n", p.X, p.Y)
	}
	// Output:
	// 1.0000 +0.00126
	// 0.7500 +0.03160
	// 0.5000 +0.05294
	// 0.2500 +0.05941
	// 0.0000 +0.00000
	// 0.2500 -0.05941
	// 0.5000 -0.05294
	// 0.7500 -0.03160
	// 1.0000 -0.00126
}

// ExampleParse shows the decoded parameters of both families.
func ExampleParse() {
	for _, d := range []string{"2412", "23012"} {
		p, err := naca.Parse(d)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("%s %s position=%.2f thickness=%.2f\n", d, p.Family(), p.CamberPosition(), p.MaxThickness())
	}
	// Output:
	// 2412 4-digit position=0.40 thickness=0.12
	// 23012 5-digit position=0.15 thickness=0.12
}

// ExampleParse_errors matches the sentinel errors.
func ExampleParse_errors() {
	_, err := naca.Parse("12AB")
	fmt.Println(errors.Is(err, naca.ErrInvalidFormat))
	_, err = naca.Parse("123")
	fmt.Println(errors.Is(err, naca.ErrUnsupportedDigitCount))
	// Output:
	// true
	// true
}

// ExampleClassify picks a display class per designator.
func ExampleClassify() {
	for _, d := range []string{"2412", "2410", "2012"} {
		fmt.Println(d, naca.Classify(d))
	}
	// Output:
	// 2412 canonical
	// 2410 reasonable
	// 2012 unusual
}
