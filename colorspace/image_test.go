// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/cbviz/base/errors"
	"cogentcore.org/cbviz/base/iox/imagex"
	"cogentcore.org/cbviz/base/tolassert"
)

func TestFromImageDropsAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 128})
	src.SetNRGBA(1, 0, color.NRGBA{0, 51, 255, 0})
	im := FromImage(src)
	assert.Equal(t, 1, im.Height)
	assert.Equal(t, 2, im.Width)
	assert.Equal(t, 3, im.Channels)
	tolassert.EqualSlice(t, []float32{1, 0, 0, 0, 0.2, 1}, im.Pix, 1e-4)
}

func TestFromImageGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.SetGray(1, 1, color.Gray{Y: 102})
	im := FromImage(src)
	assert.Equal(t, 3, im.Channels)
	p := im.Pixel(1, 1)
	tolassert.EqualTol(t, 0.4, p[0], 1e-4)
	assert.Equal(t, p[0], p[1])
	assert.Equal(t, p[0], p[2])
	assert.Equal(t, float32(0), im.At(0, 0, 0))
}

func TestImageAccessors(t *testing.T) {
	im := NewFilled(2, 3, 0.1, 0.2, 0.3)
	assert.Equal(t, 6, im.Len())
	im.Set(1, 2, 1, 0.9)
	assert.Equal(t, float32(0.9), im.At(1, 2, 1))
	assert.Equal(t, float32(0.9), im.Max())
	assert.Equal(t, float32(0.1), im.Min())

	cp := im.Clone()
	cp.Set(0, 0, 0, 5)
	assert.Equal(t, float32(0.1), im.At(0, 0, 0))

	ch := im.Channel(2)
	assert.Equal(t, 1, ch.Channels)
	assert.Equal(t, float32(0.3), ch.At(1, 1, 0))

	cp.Clip()
	assert.Equal(t, float32(1), cp.At(0, 0, 0))
}

func TestImageCheck(t *testing.T) {
	assert.NoError(t, NewImage(2, 2, 3).Check())
	bad := &Image{Pix: make([]float32, 5), Height: 2, Width: 2, Channels: 3}
	assert.Error(t, bad.Check())
	var nilImage *Image
	assert.Error(t, nilImage.Check())
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "im.png")
	im := NewFilled(3, 4, 1, 0.5, 0)
	require.NoError(t, im.Save(path))

	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, back.Height)
	assert.Equal(t, 4, back.Width)
	tolassert.EqualTol(t, 0.5, back.At(2, 3, 1), 0.003)
	assert.Equal(t, float32(1), back.At(0, 0, 0))
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "missing.png"))
	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "read", ioErr.Op)

	txt := filepath.Join(dir, "notes.png")
	require.NoError(t, os.WriteFile(txt, []byte("not an image at all"), 0o644))
	_, err = Load(txt)
	assert.True(t, errors.Is(err, imagex.ErrNotImage))

	err = NewFilled(1, 1, 0, 0, 0).Save(filepath.Join(dir, "out.xyz"))
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "write", ioErr.Op)
}

func TestNRGBAGray(t *testing.T) {
	im := NewImage(1, 2, 1)
	im.Pix[0] = 1
	im.Pix[1] = -3
	out := im.NRGBA()
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, out.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, out.NRGBAAt(1, 0))
}
