// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/naca/foilio"
	"github.com/katalvlaran/naca/naca"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	genPoints   int
	genFiniteTE bool
	genCosine   bool
	genFormat   string
	genOutput   string
)

// genCmd writes one profile
var genCmd = &cobra.Command{
	Use:   "gen DESIGNATOR",
	Short: "Generate the coordinates of one profile",
	Long: `Generates the closed boundary of a NACA profile and writes it to stdout
or to the file given with -o.

Example:
  nacagen gen 2412 -n 120 --cosine -o naca2412.dat`,
	Args: cobra.ExactArgs(1),
	RunE: runGen,
}

func init() {
	genCmd.Flags().IntVarP(&genPoints, "points", "n", 100, "Half-chord sample count (boundary has 2n+1 points)")
	genCmd.Flags().BoolVar(&genFiniteTE, "finite-te", false, "Use the open (finite) trailing edge")
	genCmd.Flags().BoolVar(&genCosine, "cosine", false, "Use half-cosine spacing")
	genCmd.Flags().StringVarP(&genFormat, "format", "f", string(foilio.Selig), "Output format: selig, csv or json")
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Output file (default: stdout)")
}

func runGen(cmd *cobra.Command, args []string) error {
	format, err := foilio.ParseFormat(genFormat)
	if err != nil {
		return err
	}
	opts := naca.Options{FiniteTrailingEdge: genFiniteTE, HalfCosineSpacing: genCosine}

	foil, err := naca.Generate(args[0], genPoints, &opts)
	if err != nil {
		return err
	}
	logger.Debug("Generated airfoil",
		zap.String("designator", foil.Designator),
		zap.Stringer("family", foil.Params.Family()),
		zap.Int("points", len(foil.Boundary)),
		zap.Float64("bound_radius", foil.BoundRadius()))

	if genOutput == "" || genOutput == "-" {
		return foilio.Write(cmd.OutOrStdout(), format, foil)
	}
	if err := writeFile(genOutput, func(w io.Writer) error { return foilio.Write(w, format, foil) }); err != nil {
		return err
	}
	logger.Info("Wrote airfoil", zap.String("designator", foil.Designator), zap.String("path", genOutput))

	return nil
}

// writeFile creates path and hands it to write, reporting close errors.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	return write(f)
}
