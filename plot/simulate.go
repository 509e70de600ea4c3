// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/cbviz/base/fsx"
	"cogentcore.org/cbviz/base/iox/imagex"
	"cogentcore.org/cbviz/colorspace"
)

// Options are the options of [Together] and [Individually].
type Options struct {
	// DPI is the output resolution; 0 means [DefaultDPI].
	DPI int

	// ShowOriginal adds the unmodified image as the first panel of [Together].
	ShowOriginal bool
}

// save writes the figure to the given path, reporting failures as [colorspace.IOError].
func save(fg *Figure, path string) error {
	img, err := fg.Draw()
	if err != nil {
		return err
	}
	if err := imagex.Save(img, path); err != nil {
		return &colorspace.IOError{Op: "write", Path: path, Err: err}
	}
	slog.Info("wrote figure", "path", path)
	return nil
}

// Together renders the image under every transform of the set in one
// grid figure saved to outpath, optionally preceded by the original.
func Together(ctx context.Context, img *colorspace.Image, set []*colorspace.Transform, outpath string, opts Options) error {
	if opts.ShowOriginal {
		orig, err := colorspace.New(colorspace.Original, 100)
		if err != nil {
			return err
		}
		set = append([]*colorspace.Transform{orig}, set...)
	}
	outs, err := colorspace.ConvertAll(ctx, img, set)
	if err != nil {
		return err
	}
	panels := make([]Panel, len(set))
	for i, t := range set {
		panels[i] = Panel{Title: t.Name, Image: outs[i].NRGBA()}
	}
	return save(NewFigure(panels, img.Height, img.Width, opts.DPI), outpath)
}

// IndividualPaths returns the output file of each transform for
// [Individually]: <base>.<lowercased name>.<ext>, where base and ext come
// from outpath and ext defaults to png. Names shared by several
// transforms get -<severity> appended.
func IndividualPaths(outpath string, set []*colorspace.Transform) []string {
	base, ext := fsx.SplitExt(outpath)
	if ext == "" {
		ext = "png"
	}
	count := map[string]int{}
	for _, t := range set {
		count[strings.ToLower(t.Name)]++
	}
	paths := make([]string, len(set))
	for i, t := range set {
		name := strings.ToLower(t.Name)
		if count[name] > 1 {
			name = fmt.Sprintf("%s-%d", name, t.Severity)
		}
		paths[i] = base + "." + name + "." + ext
	}
	return paths
}

// Individually renders the image under every transform of the set,
// each in its own single panel figure, and returns the written paths.
func Individually(ctx context.Context, img *colorspace.Image, set []*colorspace.Transform, outpath string, opts Options) ([]string, error) {
	paths := IndividualPaths(outpath, set)
	outs, err := colorspace.ConvertAll(ctx, img, set)
	if err != nil {
		return nil, err
	}
	for i, t := range set {
		fg := NewFigure([]Panel{{Title: t.Name, Image: outs[i].NRGBA()}}, img.Height, img.Width, opts.DPI)
		if err := save(fg, paths[i]); err != nil {
			return nil, err
		}
	}
	return paths, nil
}
