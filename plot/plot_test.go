// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/cbviz/base/fsx"
	"cogentcore.org/cbviz/base/iox/imagex"
	"cogentcore.org/cbviz/base/tolassert"
	"cogentcore.org/cbviz/colorspace"
)

func TestLayout(t *testing.T) {
	want := map[int][2]int{1: {1, 1}, 2: {1, 2}, 3: {1, 3}, 4: {2, 2}, 5: {2, 3}, 6: {2, 3}, 7: {3, 3}, 8: {3, 3}, 9: {3, 3}, 10: {3, 4}, 16: {4, 4}, 17: {4, 5}}
	for n, w := range want {
		r, c := Layout(n)
		assert.Equal(t, w, [2]int{r, c}, "n=%d", n)
		assert.GreaterOrEqual(t, r*c, n)
	}
	r, c := Layout(0)
	assert.Equal(t, 0, r*c)
}

func TestComputeDimensions(t *testing.T) {
	d := ComputeDimensions(9, 400, 800)
	assert.Equal(t, 3, d.Rows)
	assert.Equal(t, 3, d.Cols)
	tolassert.Equal(t, 5, d.PanelWidth)
	tolassert.Equal(t, 2.5, d.PanelHeight)
	w, h := d.Size()
	tolassert.Equal(t, 15, w)
	tolassert.Equal(t, 8.5, h)

	// tall images switch to a 300 dpi guess and cap the width at 8 inches
	d = ComputeDimensions(1, 3000, 1000)
	tolassert.Equal(t, 8, d.PanelWidth)
	tolassert.Equal(t, 24, d.PanelHeight)
	d = ComputeDimensions(1, 2100, 2100)
	tolassert.Equal(t, 7, d.PanelWidth)
}

func TestTitleSize(t *testing.T) {
	assert.Equal(t, float32(5.79), TitleSize(3.9))
	assert.Equal(t, float32(10), TitleSize(12))
	assert.Equal(t, float32(17.28), TitleSize(100))
}

func TestTicks(t *testing.T) {
	ticks := Ticks(0, 17.5, 5)
	require.NotEmpty(t, ticks)
	for _, v := range ticks {
		assert.GreaterOrEqual(t, v, float32(-1e-4))
		assert.LessOrEqual(t, v, float32(17.5001))
	}
	assert.Equal(t, []float32{3}, Ticks(3, 3, 5))
	assert.NotEmpty(t, Ticks(10, 0, 4))
}

func TestColorMap(t *testing.T) {
	assert.Equal(t, color.RGBA{68, 1, 84, 255}, Viridis.Map(0))
	assert.Equal(t, color.RGBA{68, 1, 84, 255}, Viridis.Map(-3))
	assert.Equal(t, color.RGBA{253, 231, 37, 255}, Viridis.Map(1))
	assert.Equal(t, color.RGBA{33, 145, 140, 255}, Viridis.Map(0.5))
	mid := Viridis.Map(0.05)
	assert.Equal(t, uint8(70), mid.R)
}

func TestFigureDraw(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 20, 10))
	draw.Draw(src, src.Bounds(), image.Black, image.Point{}, draw.Src)
	fg := NewFigure([]Panel{{Title: "A", Image: src}, {Title: "B", Image: src}, {Title: "C"}}, 10, 20, 100)
	assert.Equal(t, 1, fg.Rows)
	assert.Equal(t, 3, fg.Cols)
	img, err := fg.Draw()
	require.NoError(t, err)
	// panel 0.125 x 0.0625 in, plus 1 inch of titles, at 100 dpi
	assert.Equal(t, 3*13, img.Bounds().Dx())
	assert.Equal(t, 100+6, img.Bounds().Dy())
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(1, 101))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(30, 104))
}

func testImage() *colorspace.Image {
	im := colorspace.NewImage(16, 24, 3)
	for y := range 16 {
		for x := range 24 {
			im.Set(y, x, 0, float32(x)/23)
			im.Set(y, x, 1, float32(y)/15)
			im.Set(y, x, 2, 0.5)
		}
	}
	return im
}

func TestTogether(t *testing.T) {
	set, err := colorspace.Generate(nil, 100, true)
	require.NoError(t, err)
	out := filepath.Join(t.TempDir(), "fig.png")
	require.NoError(t, Together(context.Background(), testImage(), set, out, Options{DPI: 80, ShowOriginal: true}))
	img, f, err := imagex.Open(out)
	require.NoError(t, err)
	assert.Equal(t, imagex.PNG, f)
	// 9 panels in a 3x3 grid of 0.2 x 0.1333 inch panels
	assert.Equal(t, 3*16, img.Bounds().Dx())
	assert.Equal(t, 3*(27+11), img.Bounds().Dy())

	err = Together(context.Background(), testImage(), set, filepath.Join(t.TempDir(), "fig.nope"), Options{})
	var ioErr *colorspace.IOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestIndividualPaths(t *testing.T) {
	set, err := colorspace.Generate([]colorspace.Kind{colorspace.Protan, colorspace.Monochrome}, 40, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"out/sim.protanomaly.png", "out/sim.monochrome (40%).png"}, IndividualPaths("out/sim", set))
	assert.Equal(t, []string{"out/sim.protanomaly.jpg", "out/sim.monochrome (40%).jpg"}, IndividualPaths("out/sim.jpg", set))

	set, err = colorspace.Generate(nil, 60, true)
	require.NoError(t, err)
	paths := IndividualPaths("x.png", set)
	assert.Equal(t, "x.protanopia-60.png", paths[0])
	assert.Equal(t, "x.protanopia-100.png", paths[1])
	assert.Equal(t, "x.monochrome (60%).png", paths[6])
}

func TestIndividually(t *testing.T) {
	set, err := colorspace.Generate([]colorspace.Kind{colorspace.Deuteran, colorspace.Tritan}, 100, false)
	require.NoError(t, err)
	dir := t.TempDir()
	paths, err := Individually(context.Background(), testImage(), set, filepath.Join(dir, "sim"), Options{DPI: 50})
	require.NoError(t, err)
	require.Len(t, paths, 2)
	for _, p := range paths {
		ok, err := fsx.FileExists(p)
		require.NoError(t, err)
		assert.True(t, ok, p)
	}
	assert.Equal(t, filepath.Join(dir, "sim.deuteranopia.png"), paths[0])
}

func TestHeatmap(t *testing.T) {
	field := colorspace.NewImage(16, 24, 1)
	for i := range field.Pix {
		field.Pix[i] = float32(i%24) * 0.75
	}
	img, err := Heatmap(field, "delta a'", nil, 80)
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), 16)

	out := filepath.Join(t.TempDir(), "heat.png")
	require.NoError(t, SaveHeatmap(field, "delta a'", out, 80))
	ok, err := fsx.FileExists(out)
	require.NoError(t, err)
	assert.True(t, ok)
}
