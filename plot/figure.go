// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot renders the cbviz comparison figures: a grid of titled
// image panels, one per simulated color vision, and heatmaps of
// perceptual differences with a colorbar.
package plot

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/transform"
	"github.com/chewxy/math32"
)

// DefaultDPI is the default output resolution in dots per inch.
const DefaultDPI = 300

// Panel is one titled image in a figure.
type Panel struct {
	Title string
	Image image.Image
}

// Figure is a grid of titled panels.
type Figure struct {
	Dimensions

	// DPI is the output resolution in dots per inch.
	DPI int

	// Panels fill the grid row by row; unused cells stay blank.
	Panels []Panel

	// Background is the figure background color, white if nil.
	Background color.Color
}

// NewFigure returns a new figure laid out for the given panels, all of
// which show images of the given pixel height and width.
func NewFigure(panels []Panel, height, width, dpi int) *Figure {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &Figure{Dimensions: ComputeDimensions(len(panels), height, width), DPI: dpi, Panels: panels}
}

// px returns the given length in inches in output pixels, at least 1.
func (fg *Figure) px(in float32) int {
	return max(1, int(math32.Round(in*float32(fg.DPI))))
}

// TitleSize returns the title font size in points.
func (fg *Figure) TitleSize() float32 {
	w, _ := fg.Size()
	return TitleSize(w)
}

// Draw renders the figure.
func (fg *Figure) Draw() (*image.RGBA, error) {
	pw, ph := fg.px(fg.PanelWidth), fg.px(fg.PanelHeight)
	th := 0
	if fg.Rows > 0 {
		th = fg.px(fg.TitleHeight / float32(fg.Rows))
	}
	cell := th + ph
	img := image.NewRGBA(image.Rect(0, 0, max(1, fg.Cols*pw), max(1, fg.Rows*cell)))
	bg := fg.Background
	if bg == nil {
		bg = color.White
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	size := fg.TitleSize()
	for i, p := range fg.Panels {
		if fg.Cols == 0 || i >= fg.Rows*fg.Cols {
			break
		}
		x0, y0 := (i%fg.Cols)*pw, (i/fg.Cols)*cell
		tx := &Text{Text: p.Title, Style: TextStyle{Size: size}}
		if err := tx.Config(fg.DPI); err != nil {
			return nil, err
		}
		tx.DrawCentered(img, image.Rect(x0, y0, x0+pw, y0+th))
		if p.Image == nil {
			continue
		}
		rs := transform.Resize(p.Image, pw, ph, transform.Linear)
		draw.Draw(img, image.Rect(x0, y0+th, x0+pw, y0+cell), rs, image.Point{}, draw.Over)
	}
	return img, nil
}
