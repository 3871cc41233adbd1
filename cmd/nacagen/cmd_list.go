// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/naca/naca"
	"github.com/spf13/cobra"
)

var listFamily int

// listCmd prints the canonical designators
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the canonical designators",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVar(&listFamily, "family", 0, "Only list one family (4 or 5)")
}

func runList(cmd *cobra.Command, args []string) error {
	var ds []string
	switch naca.Family(listFamily) {
	case 0:
		ds = append(naca.Canonical4(), naca.Canonical5()...)
	case naca.FourDigitFamily:
		ds = naca.Canonical4()
	case naca.FiveDigitFamily:
		ds = naca.Canonical5()
	default:
		return fmt.Errorf("--family=%d: %w", listFamily, naca.ErrUnsupportedDigitCount)
	}
	for _, d := range ds {
		fmt.Fprintln(cmd.OutOrStdout(), d)
	}
	return nil
}
