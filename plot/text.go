// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/go-fonts/latin-modern/lmsans10regular"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// defaultFont is the Latin Modern Sans font used for all plot text.
var defaultFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(lmsans10regular.TTF)
})

// TitleSizes are the font sizes in points of the named matplotlib
// sizes, xx-small through xx-large, relative to a 10 point base.
var TitleSizes = []float32{5.79, 6.94, 8.33, 10, 12, 14.4, 17.28}

// TitleSize returns the title font size for a figure of the given
// width in inches: one named size step for every 4 inches of width.
func TitleSize(figWidth float32) float32 {
	i := min(max(int(figWidth/4), 0), len(TitleSizes)-1)
	return TitleSizes[i]
}

// TextStyle specifies styling parameters for Text elements
type TextStyle struct {
	// Size is the font size in points.
	Size float32

	// Color is the text color, black if nil.
	Color color.Color
}

// Text specifies a single text element in a plot
type Text struct {

	// Text is the string to render.
	Text string

	// Style is the styling for this text element.
	Style TextStyle

	face    font.Face
	advance fixed.Int26_6
	metrics font.Metrics
}

// Config prepares the text for rendering at the given resolution in dots per inch.
func (tx *Text) Config(dpi int) error {
	f, err := defaultFont()
	if err != nil {
		return err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(tx.Style.Size), DPI: float64(dpi), Hinting: font.HintingFull})
	if err != nil {
		return err
	}
	tx.face = face
	tx.advance = font.MeasureString(face, tx.Text)
	tx.metrics = face.Metrics()
	return nil
}

// Size returns the size of the configured text in pixels.
func (tx *Text) Size() image.Point {
	return image.Pt(tx.advance.Ceil(), tx.metrics.Height.Ceil())
}

// Draw renders the configured text with its upper left corner at the given position.
func (tx *Text) Draw(dst draw.Image, pos image.Point) {
	src := tx.Style.Color
	if src == nil {
		src = color.Black
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(src),
		Face: tx.face,
		Dot:  fixed.P(pos.X, pos.Y+tx.metrics.Ascent.Ceil()),
	}
	d.DrawString(tx.Text)
}

// DrawCentered renders the configured text horizontally centered in the
// given rectangle and aligned to its bottom.
func (tx *Text) DrawCentered(dst draw.Image, r image.Rectangle) {
	sz := tx.Size()
	x := r.Min.X + (r.Dx()-sz.X)/2
	y := max(r.Min.Y, r.Max.Y-sz.Y)
	tx.Draw(dst, image.Pt(x, y))
}
