// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"cogentcore.org/cbviz/colorspace"
	"cogentcore.org/cbviz/plot"
)

// TestCmd returns the command that tests whether the input image stays
// readable with the selected deficiencies.
func (a *App) TestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test [flags] infile",
		Short: "Test whether the image is colorblind friendly",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.resolveSelection(cmd)
			set, err := a.Transforms()
			if err != nil {
				return err
			}
			metric := cmd.Flags().Changed("metric")
			_, err = a.Test(cmd.Context(), set, args[0], metric)
			return err
		},
	}
	a.addSelectionFlags(cmd)
	fs := cmd.Flags()
	fs.Float32VarP(&a.Epsilon, "epsilon", "e", a.Epsilon, "[0-1]: lightness difference threshold, as a fraction of the lightness range")
	fs.BoolVarP(&a.Quiet, "quiet", "q", a.Quiet, "print only the overall result")
	fs.StringVar(&a.Diagnostics, "diagnostics", a.Diagnostics, "directory to save difference heatmaps of failing simulations to")
	fs.IntVar(&a.DPI, "dpi", a.DPI, "resolution of the saved diagnostic heatmaps")
	fs.StringVar(&a.Metric, "metric", a.Metric, "also print color difference statistics with this metric: cam02-ucs, cie76, cie94, or ciede2000")
	return cmd
}

// Test evaluates the image at inpath against the set and prints the
// results, optionally with difference statistics under [config.Config.Metric].
// A failing image is a result, not an error.
func (a *App) Test(ctx context.Context, set []*colorspace.Transform, inpath string, metric bool) (*colorspace.Report, error) {
	img, err := colorspace.Load(inpath)
	if err != nil {
		return nil, err
	}
	rep, err := colorspace.Evaluate(ctx, img, set, a.Epsilon)
	if err != nil {
		return nil, err
	}
	var stats []deltaStats
	if metric {
		if stats, err = a.computeStats(ctx, img, set); err != nil {
			return nil, err
		}
	}
	if !a.Quiet {
		for i, r := range rep.Results {
			fmt.Fprintf(a.out, "\t%-20s: %s\n", r.Transform.Name, a.status(r.Pass))
			if stats != nil {
				fmt.Fprintf(a.out, "\t%-20s  %s mean %.2f, max %.2f\n", "", stats[i].metric, stats[i].mean, stats[i].max)
			}
		}
	}
	if rep.Friendly {
		fmt.Fprintf(a.out, "Image [%s] is colorblind friendly.\n", inpath)
	} else {
		fmt.Fprintf(a.out, "Image [%s] is not colorblind friendly.\n", inpath)
	}
	if a.Diagnostics != "" {
		if err := a.diagnose(ctx, img, rep); err != nil {
			return rep, err
		}
	}
	return rep, nil
}

// status returns the colored Pass or Fail label.
func (a *App) status(pass bool) string {
	if pass {
		return a.out.String("Pass").Foreground(termenv.ANSIGreen).String()
	}
	return a.out.String("Fail").Foreground(termenv.ANSIRed).Bold().String()
}

// deltaStats are summary statistics of a color difference image.
type deltaStats struct {
	metric    colorspace.Metric
	mean, max float32
}

// computeStats computes the difference statistics of every transform of
// the set concurrently.
func (a *App) computeStats(ctx context.Context, img *colorspace.Image, set []*colorspace.Transform) ([]deltaStats, error) {
	m, err := colorspace.ParseMetric(a.Metric)
	if err != nil {
		return nil, err
	}
	stats := make([]deltaStats, len(set))
	eg, ctx := errgroup.WithContext(ctx)
	for i, t := range set {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := colorspace.DeltaE(img, t, m)
			if err != nil {
				return err
			}
			var sum float32
			for _, v := range d.Pix {
				sum += v
			}
			stats[i] = deltaStats{metric: m, max: d.Max()}
			if len(d.Pix) > 0 {
				stats[i].mean = sum / float32(len(d.Pix))
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

// DiagnosticPaths returns the heatmap and simulated image files written
// for each transform of the set into dir.
func DiagnosticPaths(dir string, set []*colorspace.Transform) (heatmaps, simulated []string) {
	return plot.IndividualPaths(filepath.Join(dir, "delta-a.png"), set), plot.IndividualPaths(filepath.Join(dir, "simulated.png"), set)
}

// diagnose writes, for every failing transform, a heatmap of the
// red-green (a') difference and the simulated image into the
// diagnostics directory.
func (a *App) diagnose(ctx context.Context, img *colorspace.Image, rep *colorspace.Report) error {
	if err := os.MkdirAll(a.Diagnostics, 0755); err != nil {
		return &colorspace.IOError{Op: "mkdir", Path: a.Diagnostics, Err: err}
	}
	set := make([]*colorspace.Transform, len(rep.Results))
	for i, r := range rep.Results {
		set[i] = r.Transform
	}
	heatmaps, simulated := DiagnosticPaths(a.Diagnostics, set)
	for i, r := range rep.Results {
		if r.Pass {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		da, err := colorspace.DeltaE1D(img, r.Transform, 1)
		if err != nil {
			return err
		}
		title := fmt.Sprintf("%s |delta a'|", r.Transform.Name)
		if err := plot.SaveHeatmap(da, title, heatmaps[i], a.DPI); err != nil {
			return err
		}
		sim, err := r.Transform.Convert(img)
		if err != nil {
			return err
		}
		if err := sim.Save(simulated[i]); err != nil {
			return err
		}
	}
	return nil
}
