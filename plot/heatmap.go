// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"
	"image/draw"
	"log/slog"
	"strconv"

	"cogentcore.org/cbviz/base/iox/imagex"
	"cogentcore.org/cbviz/colorspace"
)

// Heatmap renders channel 0 of the field with the color map, normalized
// to the range of its values, with a labelled colorbar on the right.
func Heatmap(field *colorspace.Image, title string, cm *ColorMap, dpi int) (*image.RGBA, error) {
	if cm == nil {
		cm = Viridis
	}
	lo, hi := field.Min(), field.Max()
	norm := func(v float32) float32 {
		if hi <= lo {
			return 0
		}
		return (v - lo) / (hi - lo)
	}
	src := image.NewRGBA(image.Rect(0, 0, field.Width, field.Height))
	for y := range field.Height {
		for x := range field.Width {
			src.SetRGBA(x, y, cm.Map(norm(field.At(y, x, 0))))
		}
	}

	fg := NewFigure([]Panel{{Title: title, Image: src}}, field.Height, field.Width, dpi)
	panel, err := fg.Draw()
	if err != nil {
		return nil, err
	}

	// colorbar: a gradient strip plus tick labels
	th := 0
	if fg.Rows > 0 {
		th = fg.px(fg.TitleHeight)
	}
	ph := fg.px(fg.PanelHeight)
	bw := max(2, fg.px(fg.PanelWidth)/12)
	gap := bw
	ticks := Ticks(lo, hi, 5)
	labels := make([]*Text, len(ticks))
	lw := 0
	size := TitleSizes[0]
	for i, tv := range ticks {
		labels[i] = &Text{Text: strconv.FormatFloat(float64(tv), 'g', 4, 32), Style: TextStyle{Size: size}}
		if err := labels[i].Config(fg.DPI); err != nil {
			return nil, err
		}
		lw = max(lw, labels[i].Size().X)
	}
	pb := panel.Bounds()
	full := image.NewRGBA(image.Rect(0, 0, pb.Dx()+gap+bw+gap+lw+gap, pb.Dy()))
	draw.Draw(full, full.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(full, pb, panel, image.Point{}, draw.Src)

	bx := pb.Dx() + gap
	for y := range ph {
		c := cm.Map(1 - float32(y)/float32(max(1, ph-1)))
		for x := bx; x < bx+bw; x++ {
			full.SetRGBA(x, th+y, c)
		}
	}
	for i, tv := range ticks {
		y := th + int(float32(ph-1)*(1-norm(tv)))
		sz := labels[i].Size()
		labels[i].Draw(full, image.Pt(bx+bw+gap, y-sz.Y/2))
	}
	return full, nil
}

// SaveHeatmap renders a [Heatmap] with the viridis color map and saves
// it to the given path.
func SaveHeatmap(field *colorspace.Image, title, path string, dpi int) error {
	img, err := Heatmap(field, title, Viridis, dpi)
	if err != nil {
		return err
	}
	if err := imagex.Save(img, path); err != nil {
		return &colorspace.IOError{Op: "write", Path: path, Err: err}
	}
	slog.Info("wrote heatmap", "path", path)
	return nil
}
