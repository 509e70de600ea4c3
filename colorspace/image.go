// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"fmt"
	"image"
	"image/color"

	"github.com/chewxy/math32"

	"cogentcore.org/cbviz/base/iox/imagex"
)

// Image is a Height x Width x Channels array of float32 values stored
// in row-major order, so that channel c of the pixel at (y, x) is at
// Pix[(y*Width+x)*Channels+c]. Color images have 3 channels; metric
// output uses 1.
type Image struct {
	Pix      []float32
	Height   int
	Width    int
	Channels int
}

// NewImage returns a new zero valued image of the given shape.
func NewImage(height, width, channels int) *Image {
	return &Image{Pix: make([]float32, height*width*channels), Height: height, Width: width, Channels: channels}
}

// NewFilled returns a new 3 channel image with every pixel set to the given color.
func NewFilled(height, width int, r, g, b float32) *Image {
	im := NewImage(height, width, 3)
	for i := 0; i < len(im.Pix); i += 3 {
		im.Pix[i], im.Pix[i+1], im.Pix[i+2] = r, g, b
	}
	return im
}

// FromImage converts the given image to a 3 channel [Image] with values
// in [0,1]. The alpha channel is discarded (non-premultiplied color is
// kept), and grayscale sources are expanded to 3 equal channels.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	im := NewImage(b.Dy(), b.Dx(), 3)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var c color.NRGBA64
			switch s := src.(type) {
			case *image.NRGBA:
				// read directly so that fully transparent pixels keep their color
				c8 := s.NRGBAAt(x, y)
				c = color.NRGBA64{R: uint16(c8.R) * 0x101, G: uint16(c8.G) * 0x101, B: uint16(c8.B) * 0x101}
			case *image.NRGBA64:
				c = s.NRGBA64At(x, y)
			default:
				c = color.NRGBA64Model.Convert(src.At(x, y)).(color.NRGBA64)
			}
			im.Pix[i] = float32(c.R) / 0xffff
			im.Pix[i+1] = float32(c.G) / 0xffff
			im.Pix[i+2] = float32(c.B) / 0xffff
			i += 3
		}
	}
	return im
}

// Load opens the image file at the given path and returns it as an [Image].
// Failures are reported as an [IOError].
func Load(path string) (*Image, error) {
	src, _, err := imagex.Open(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	return FromImage(src), nil
}

// Save writes the image to the given path, with the format
// inferred from the extension. Failures are reported as an [IOError].
func (im *Image) Save(path string) error {
	if err := imagex.Save(im.NRGBA(), path); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// Len returns the number of pixels.
func (im *Image) Len() int {
	return im.Height * im.Width
}

// Check returns an error if the buffer length does not match the shape.
func (im *Image) Check() error {
	if im == nil {
		return fmt.Errorf("image is nil")
	}
	if im.Height < 0 || im.Width < 0 || im.Channels <= 0 {
		return fmt.Errorf("invalid shape %dx%dx%d", im.Height, im.Width, im.Channels)
	}
	if len(im.Pix) != im.Height*im.Width*im.Channels {
		return fmt.Errorf("buffer of length %d does not match shape %dx%dx%d", len(im.Pix), im.Height, im.Width, im.Channels)
	}
	return nil
}

// At returns the value of channel c of the pixel at (y, x).
func (im *Image) At(y, x, c int) float32 {
	return im.Pix[(y*im.Width+x)*im.Channels+c]
}

// Set sets the value of channel c of the pixel at (y, x).
func (im *Image) Set(y, x, c int, v float32) {
	im.Pix[(y*im.Width+x)*im.Channels+c] = v
}

// Pixel returns the first 3 channels of the pixel at (y, x).
func (im *Image) Pixel(y, x int) [3]float32 {
	i := (y*im.Width + x) * im.Channels
	return [3]float32{im.Pix[i], im.Pix[i+1], im.Pix[i+2]}
}

// Max returns the largest value in the image, or 0 if it is empty.
func (im *Image) Max() float32 {
	if len(im.Pix) == 0 {
		return 0
	}
	mx := im.Pix[0]
	for _, v := range im.Pix[1:] {
		mx = max(mx, v)
	}
	return mx
}

// Min returns the smallest value in the image, or 0 if it is empty.
func (im *Image) Min() float32 {
	if len(im.Pix) == 0 {
		return 0
	}
	mn := im.Pix[0]
	for _, v := range im.Pix[1:] {
		mn = min(mn, v)
	}
	return mn
}

// Clone returns a deep copy of the image.
func (im *Image) Clone() *Image {
	cp := *im
	cp.Pix = append([]float32(nil), im.Pix...)
	return &cp
}

// Channel returns channel c as a new single channel image.
func (im *Image) Channel(c int) *Image {
	out := NewImage(im.Height, im.Width, 1)
	for i := range out.Pix {
		out.Pix[i] = im.Pix[i*im.Channels+c]
	}
	return out
}

// Clip clamps all values of the image to [0,1] in place, and returns it.
func (im *Image) Clip() *Image {
	for i, v := range im.Pix {
		im.Pix[i] = min(max(v, 0), 1)
	}
	return im
}

// NRGBA returns the image as an 8 bit opaque [image.NRGBA], clipping values
// to [0,1]. Single channel images are rendered as gray.
func (im *Image) NRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, im.Width, im.Height))
	to8 := func(v float32) uint8 {
		return uint8(math32.Round(min(max(v, 0), 1) * 255))
	}
	for y := range im.Height {
		for x := range im.Width {
			var c color.NRGBA
			if im.Channels >= 3 {
				p := im.Pixel(y, x)
				c = color.NRGBA{to8(p[0]), to8(p[1]), to8(p[2]), 255}
			} else {
				g := to8(im.At(y, x, 0))
				c = color.NRGBA{g, g, g, 255}
			}
			out.SetNRGBA(x, y, c)
		}
	}
	return out
}
