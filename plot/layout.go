// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "github.com/chewxy/math32"

// layouts is the grid (rows, columns) for up to 9 panels.
var layouts = [...][2]int{
	1: {1, 1},
	2: {1, 2},
	3: {1, 3},
	4: {2, 2},
	5: {2, 3},
	6: {2, 3},
	7: {3, 3},
	8: {3, 3},
	9: {3, 3},
}

// Layout returns the grid of rows and columns used to show n panels.
// Beyond 9 panels the grid is the smallest near-square one that fits.
func Layout(n int) (rows, cols int) {
	if n <= 0 {
		return 0, 0
	}
	if n < len(layouts) {
		return layouts[n][0], layouts[n][1]
	}
	cols = int(math32.Ceil(math32.Sqrt(float32(n))))
	rows = (n + cols - 1) / cols
	return rows, cols
}

// Dimensions are the sizes in inches of a figure grid.
type Dimensions struct {
	Rows, Cols int

	// PanelWidth and PanelHeight are the size of one image panel.
	PanelWidth, PanelHeight float32

	// TitleHeight is the total height reserved for the panel titles.
	TitleHeight float32
}

// ComputeDimensions returns the figure dimensions for n panels of an
// image of the given pixel height and width. The panel width is the
// image height at a guessed resolution (80 dpi for images under 2000
// pixels tall, 300 otherwise), capped at 8 inches, and the panel keeps
// the image aspect ratio. One inch of height is reserved for titles.
func ComputeDimensions(n, height, width int) Dimensions {
	dpiGuess := float32(height) / 8
	if dpiGuess < 250 {
		dpiGuess = 80
	} else {
		dpiGuess = 300
	}
	pw := min(float32(height)/dpiGuess, 8)
	ph := float32(0)
	if width > 0 {
		ph = pw / float32(width) * float32(height)
	}
	rows, cols := Layout(n)
	return Dimensions{Rows: rows, Cols: cols, PanelWidth: pw, PanelHeight: ph, TitleHeight: 1}
}

// Size returns the total width and height of the figure in inches.
func (d Dimensions) Size() (width, height float32) {
	return float32(d.Cols) * d.PanelWidth, float32(d.Rows)*d.PanelHeight + d.TitleHeight
}
