// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/naca/naca"
	"github.com/spf13/cobra"
)

var infoFiniteTE bool

// infoCmd prints the decoded parameters and a few derived quantities
var infoCmd = &cobra.Command{
	Use:   "info DESIGNATOR",
	Short: "Describe one profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().BoolVar(&infoFiniteTE, "finite-te", false, "Use the open (finite) trailing edge")
}

// infoSamples is the half-chord sample count used for derived quantities.
const infoSamples = 200

func runInfo(cmd *cobra.Command, args []string) error {
	opts := naca.Options{FiniteTrailingEdge: infoFiniteTE, HalfCosineSpacing: true}
	foil, err := naca.Generate(args[0], infoSamples, &opts)
	if err != nil {
		return err
	}
	p := foil.Params
	mc := foil.MaxCamber()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "designator      %s\n", foil.Designator)
	fmt.Fprintf(out, "family          %s\n", p.Family())
	fmt.Fprintf(out, "class           %s\n", naca.Classify(foil.Designator))
	fmt.Fprintf(out, "thickness       %.4f\n", p.MaxThickness())
	fmt.Fprintf(out, "camber position %.4f\n", p.CamberPosition())
	switch q := p.(type) {
	case naca.FourDigit:
		fmt.Fprintf(out, "max camber      %.4f\n", q.Camber)
	case naca.FiveDigit:
		fmt.Fprintf(out, "design lift     %.2f\n", q.DesignLift)
		fmt.Fprintf(out, "reflex          %t\n", q.Reflex)
	}
	fmt.Fprintf(out, "camber peak     (%.4f, %.5f)\n", mc.X, mc.Y)
	fmt.Fprintf(out, "te half gap     %.5f\n", naca.TrailingEdgeGap(p.MaxThickness(), infoFiniteTE))
	fmt.Fprintf(out, "bound radius    %.4f\n", foil.BoundRadius())
	return nil
}
