// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/naca/naca"
	"github.com/spf13/cobra"
)

var classifyPlain bool

// Display colours per class: green, orange, red.
var classStyles = map[naca.Class]lipgloss.Style{
	naca.Canonical:  lipgloss.NewStyle().Foreground(lipgloss.Color("#2ecc71")),
	naca.Reasonable: lipgloss.NewStyle().Foreground(lipgloss.Color("#e67e22")),
	naca.Unusual:    lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c")),
}

// classifyCmd labels designators
var classifyCmd = &cobra.Command{
	Use:   "classify DESIGNATOR...",
	Short: "Label designators as canonical, reasonable or unusual",
	Long: `Prints one line per designator with its display class:

  canonical   listed in NACA Report 460 (4-digit) or 537 (5-digit)
  reasonable  a sensible 4-digit profile outside the canonical list
  unusual     everything else that parses

Designators that do not parse are reported as errors.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().BoolVar(&classifyPlain, "plain", false, "Disable colour")
}

func runClassify(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, d := range args {
		if _, err := naca.Parse(d); err != nil {
			return err
		}
		class := naca.Classify(d)
		label := class.String()
		if !classifyPlain {
			label = classStyles[class].Render(label)
		}
		fmt.Fprintf(out, "%-6s %s\n", d, label)
	}
	return nil
}
