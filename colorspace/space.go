// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"fmt"

	"cogentcore.org/cbviz/colors/cvd"
)

// Space is a colorspace descriptor naming the meaning of the
// 3 channels of an [Image].
type Space int32

const (
	// SRGB1 is gamma encoded sRGB with values in [0,1].
	SRGB1 Space = iota

	// SRGB255 is gamma encoded sRGB with values in [0,255].
	SRGB255

	// SRGB1Linear is linear (gamma removed) sRGB with values in [0,1].
	SRGB1Linear

	// XYZ100 is CIE XYZ with Y of the D65 white at 100.
	XYZ100

	// JCh is CIECAM02 lightness, chroma, and hue (degrees).
	JCh

	// CAM02UCS is the CAM02-UCS uniform space (J', a', b').
	CAM02UCS

	// SRGB1CVD is SRGB1 as perceived by an observer with the color
	// vision deficiency given by a [CVDSpec]. It is only valid as
	// a source space.
	SRGB1CVD
)

var spaceNames = [...]string{"sRGB1", "sRGB255", "sRGB1-linear", "XYZ100", "JCh", "CAM02-UCS", "sRGB1+CVD"}

func (s Space) String() string {
	if s < 0 || int(s) >= len(spaceNames) {
		return fmt.Sprintf("Space(%d)", int32(s))
	}
	return spaceNames[s]
}

// CVDSpec annotates [SRGB1CVD] with the deficiency being simulated.
type CVDSpec struct {
	Type cvd.Type

	// Severity is 0 (normal vision) to 100 (dichromacy).
	Severity int
}
