// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image/color"

	"github.com/chewxy/math32"
)

// ColorMap maps normalized values in [0,1] onto colors, linearly
// interpolating between evenly spaced color stops.
type ColorMap struct {
	Name string

	// Colors are the stops, the first at 0 and the last at 1.
	Colors []color.RGBA
}

// Viridis is the perceptually uniform viridis color map (van der Walt and Smith).
var Viridis = &ColorMap{
	Name: "viridis",
	Colors: []color.RGBA{
		{68, 1, 84, 255},
		{72, 36, 117, 255},
		{65, 68, 135, 255},
		{53, 95, 141, 255},
		{42, 120, 142, 255},
		{33, 145, 140, 255},
		{34, 168, 132, 255},
		{68, 191, 112, 255},
		{122, 209, 81, 255},
		{189, 223, 38, 255},
		{253, 231, 37, 255},
	},
}

// Map returns the color for the given value, which is clamped to [0,1].
// NaN maps to the first color.
func (cm *ColorMap) Map(v float32) color.RGBA {
	n := len(cm.Colors)
	if n == 1 || !(v > 0) {
		return cm.Colors[0]
	}
	if v >= 1 {
		return cm.Colors[n-1]
	}
	pos := v * float32(n-1)
	i := int(pos)
	f := pos - float32(i)
	lo, hi := cm.Colors[i], cm.Colors[i+1]
	lerp := func(a, b uint8) uint8 {
		return uint8(math32.Round(float32(a) + f*(float32(b)-float32(a))))
	}
	return color.RGBA{lerp(lo.R, hi.R), lerp(lo.G, hi.G), lerp(lo.B, hi.B), 255}
}
