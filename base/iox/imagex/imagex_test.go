// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.RGBA {
	im := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			im.Set(x, y, color.RGBA{uint8(60 * x), uint8(100 * y), 128, 255})
		}
	}
	return im
}

func TestExtToFormat(t *testing.T) {
	tests := map[string]Formats{"png": PNG, ".JPG": JPEG, "jpeg": JPEG, "gif": GIF, ".tif": TIFF, "bmp": BMP, "webp": WebP}
	for ext, want := range tests {
		f, err := ExtToFormat(ext)
		assert.NoError(t, err, ext)
		assert.Equal(t, want, f, ext)
	}
	_, err := ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat(".svg")
	assert.Error(t, err)
	assert.Equal(t, "png", PNG.String())
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	src := testImage()
	for _, ext := range []string{"png", "bmp", "tiff"} {
		fn := filepath.Join(dir, "test."+ext)
		require.NoError(t, Save(src, fn))
		im, f, err := Open(fn)
		require.NoError(t, err)
		assert.Equal(t, ext, f.String())
		assert.Equal(t, src.Bounds(), im.Bounds())
		r, g, b, _ := im.At(2, 1).RGBA()
		assert.Equal(t, uint32(120), r>>8)
		assert.Equal(t, uint32(100), g>>8)
		assert.Equal(t, uint32(128), b>>8)
	}
	assert.Error(t, Save(src, filepath.Join(dir, "test.svg")))
}

func TestNotImage(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "notes.png")
	require.NoError(t, os.WriteFile(fn, []byte("this is not an image at all"), 0666))
	_, _, err := Open(fn)
	assert.ErrorIs(t, err, ErrNotImage)

	_, _, err = Open(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestReadBytes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(testImage(), &buf, PNG))
	im, f, err := ReadBytes(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, PNG, f)
	assert.Equal(t, 4, im.Bounds().Dx())
}
