// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the CIE standard conversions between
// sRGB, linear sRGB, and XYZ, used as the hub for the
// perceptual color spaces in cbviz.
package cie

// WhiteD65 is the standard D65 white point in XYZ coordinates,
// on the 100-base scale.
var WhiteD65 = [3]float32{95.047, 100, 108.883}

// SRGBLinToXYZ converts sRGB linear into XYZ CIE standard color space
func SRGBLinToXYZ(rl, gl, bl float32) (x, y, z float32) {
	x = 0.41233895*rl + 0.35762064*gl + 0.18051042*bl
	y = 0.2126*rl + 0.7152*gl + 0.0722*bl
	z = 0.01932141*rl + 0.11916382*gl + 0.95034478*bl
	return
}

// XYZToSRGBLin converts XYZ CIE standard color space to sRGB linear
func XYZToSRGBLin(x, y, z float32) (rl, gl, bl float32) {
	rl = 3.2413774792*x - 1.5376652403*y - 0.4988536685*z
	gl = -0.9691452513*x + 1.8758853451*y + 0.0415658562*z
	bl = 0.0556209369*x - 0.2039552456*y + 1.0571799111*z
	return
}

// SRGBToXYZ converts sRGB into XYZ CIE standard color space
func SRGBToXYZ(r, g, b float32) (x, y, z float32) {
	rl, gl, bl := SRGBToLinear(r, g, b)
	x, y, z = SRGBLinToXYZ(rl, gl, bl)
	return
}

// XYZToSRGB converts XYZ CIE standard color space into sRGB
func XYZToSRGB(x, y, z float32) (r, g, b float32) {
	rl, gl, bl := XYZToSRGBLin(x, y, z)
	r, g, b = SRGBFromLinear(rl, gl, bl)
	return
}

// SRGBToXYZ100 converts sRGB into XYZ CIE standard color space
// with 100-base sRGB values -- used for CAM02 but not LAB!
func SRGBToXYZ100(r, g, b float32) (x, y, z float32) {
	x, y, z = SRGBToXYZ(r, g, b)
	x *= 100
	y *= 100
	z *= 100
	return
}

// XYZ100ToSRGB converts XYZ CIE standard color space, 100-base,
// into sRGB standard color space
func XYZ100ToSRGB(x, y, z float32) (r, g, b float32) {
	return XYZToSRGB(x/100, y/100, z/100)
}
