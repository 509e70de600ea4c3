// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// DefaultEpsilon is the default friendliness threshold.
const DefaultEpsilon = 0.1

// Result is the outcome of the friendliness test for one transform.
type Result struct {
	Transform *Transform

	// MaxDelta is the largest lightness difference (|delta J'|) of any pixel.
	MaxDelta float32

	// Pass is whether no pixel exceeds the threshold.
	Pass bool
}

// Report is the outcome of the friendliness test for a whole set.
type Report struct {
	// Results are in set order.
	Results []Result

	// Threshold is 100 * epsilon.
	Threshold float32

	// Friendly is whether every transform passed.
	Friendly bool
}

// Evaluate runs the friendliness test of the image against every
// transform of the set: a transform fails when any pixel of the
// CAM02-UCS lightness difference ([DeltaE1D] on channel 0) exceeds
// 100 * epsilon. Epsilon must be in [0,1]. A failing transform is a
// result, not an error, and all transforms are always evaluated.
func Evaluate(ctx context.Context, img *Image, set []*Transform, epsilon float32) (*Report, error) {
	if epsilon < 0 || epsilon > 1 {
		return nil, &InvalidArgumentError{Arg: "epsilon", Value: epsilon, Reason: "must be in [0, 1]"}
	}
	rep := &Report{Results: make([]Result, len(set)), Threshold: 100 * epsilon}
	eg, ctx := errgroup.WithContext(ctx)
	for i, t := range set {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := DeltaE1D(img, t, 0)
			if err != nil {
				return err
			}
			mx := d.Max()
			rep.Results[i] = Result{Transform: t, MaxDelta: mx, Pass: mx <= rep.Threshold}
			slog.Debug("evaluated", "transform", t.Name, "max", mx, "threshold", rep.Threshold)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	rep.Friendly = true
	for _, r := range rep.Results {
		rep.Friendly = rep.Friendly && r.Pass
	}
	return rep, nil
}
