// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"cogentcore.org/cbviz/colorspace"
	"cogentcore.org/cbviz/plot"
)

// SimulateCmd returns the command that renders the input image as seen
// with the selected deficiencies.
func (a *App) SimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [flags] infile outfile",
		Short: "Simulate color vision deficiencies on the image and plot the results",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.resolveSelection(cmd)
			set, err := a.Transforms()
			if err != nil {
				return err
			}
			in, out := args[0], args[1]
			if a.Watch {
				return watch(cmd.Context(), in, func(ctx context.Context) error {
					return a.Simulate(ctx, set, in, out)
				})
			}
			return a.Simulate(cmd.Context(), set, in, out)
		},
	}
	a.addSelectionFlags(cmd)
	fs := cmd.Flags()
	fs.BoolVar(&a.IndividualPlots, "individual-plots", a.IndividualPlots, "save each simulation as a separate file")
	fs.BoolVar(&a.NoOriginal, "no-original", a.NoOriginal, "leave out the original image")
	fs.IntVar(&a.DPI, "dpi", a.DPI, "resolution of the saved figures")
	fs.BoolVar(&a.Watch, "watch", a.Watch, "simulate again whenever the input file changes")
	return cmd
}

// Simulate loads the input image and saves the figure(s) of its
// simulations under the set to outpath.
func (a *App) Simulate(ctx context.Context, set []*colorspace.Transform, inpath, outpath string) error {
	img, err := colorspace.Load(inpath)
	if err != nil {
		return err
	}
	opts := plot.Options{DPI: a.DPI, ShowOriginal: !a.NoOriginal}
	if a.IndividualPlots {
		_, err := plot.Individually(ctx, img, set, outpath, opts)
		return err
	}
	return plot.Together(ctx, img, set, outpath, opts)
}
