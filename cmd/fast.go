// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"
)

// FastCmd returns the cbviz-fast command, which simulates protan,
// deuteran, and tritan deficiencies next to the original image, or
// next to a monochrome version with the monochrome flag.
func (a *App) FastCmd() *cobra.Command {
	var mono bool
	cmd := &cobra.Command{
		Use:              "cbviz-fast [flags] infile outfile",
		Short:            "Quickly simulate the three dichromacies on an image",
		Args:             exactArgs(2),
		SilenceUsage:     true,
		SilenceErrors:    true,
		PersistentPreRun: a.setLevel,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.Types = []string{"protan", "deuteran", "tritan"}
			a.All = false
			a.IndividualPlots = false
			a.NoOriginal = mono
			if mono {
				a.Types = append(a.Types, "monochrome")
			}
			set, err := a.Transforms()
			if err != nil {
				return err
			}
			return a.Simulate(cmd.Context(), set, args[0], args[1])
		},
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}
	a.addVerbosityFlags(cmd)
	cmd.SetOut(a.out)
	cmd.SetFlagErrorFunc(flagError)
	fs := cmd.Flags()
	fs.IntVarP(&a.Severity, "severity", "s", a.Severity, "[0-100]: severity of the deficiency, 0 being none and 100 being complete")
	fs.BoolVarP(&mono, "monochrome", "m", false, "show a monochrome version instead of the original")
	fs.IntVar(&a.DPI, "dpi", a.DPI, "resolution of the saved figure")
	return cmd
}
