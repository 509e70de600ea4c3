// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cam02 implements the CIECAM02 color appearance model
// (MoroneyFairchildHuntEtAl02) and its CAM02-UCS uniform color space
// (LuoCuiLi06), which cbviz uses to manipulate chroma and to measure
// perceptual differences.
package cam02

import (
	"github.com/chewxy/math32"

	"cogentcore.org/cbviz/colors/cam/cie"
)

// CAM represents a point in the CIECAM02 color model along 6 dimensions
// representing the perceived hue, colorfulness, and brightness.
type CAM struct {

	// hue (h) is the spectral identity of the color (red, green, blue etc) in degrees (0-360)
	Hue float32

	// chroma (C) is the colorfulness of the color relative to the brightness of white
	Chroma float32

	// colorfulness (M) is the absolute chromatic intensity
	Colorfulness float32

	// saturation (s) is the colorfulness relative to brightness
	Saturation float32

	// brightness (Q) is the apparent amount of light from the color
	Brightness float32

	// lightness (J) is the brightness relative to a reference white
	Lightness float32
}

// UCS parameters of CAM02-UCS (K_L, c1, c2).
const (
	ucsKL = 1
	ucsC1 = 0.007
	ucsC2 = 0.0228
)

// FromSRGBView returns CAM values from given sRGB color coordinates
// (0-1 range, gamma encoded) under the given viewing conditions.
func FromSRGBView(r, g, b float32, vw *View) *CAM {
	x, y, z := cie.SRGBToXYZ100(r, g, b)
	return FromXYZView(x, y, z, vw)
}

// FromXYZView returns CAM values from given XYZ color coordinate,
// under given viewing conditions. Requires 100-base XYZ coordinates.
func FromXYZView(x, y, z float32, vw *View) *CAM {
	l, m, s := XYZToLMS(x, y, z)
	ra, ga, ba := LuminanceAdapt(vw.RGBD[0]*l, vw.RGBD[1]*m, vw.RGBD[2]*s, vw)

	redVgreen := ra - 12*ga/11 + ba/11
	yellowVblue := (ra + ga - 2*ba) / 9
	hue := SanitizeDegrees(math32.Atan2(yellowVblue, redVgreen) * 180 / math32.Pi)

	ac := (2*ra + ga + ba/20 - 0.305) * vw.NBB
	J := float32(0)
	if ac > 0 {
		J = 100 * math32.Pow(ac/vw.AW, vw.Surround.C*vw.Z)
	}
	Q := (4 / vw.Surround.C) * math32.Sqrt(J/100) * (vw.AW + 4) * vw.FLRoot

	huePrime := hue
	if hue < 20.14 {
		huePrime += 360
	}
	eHue := 0.25 * (math32.Cos(huePrime*math32.Pi/180+2) + 3.8)
	t := (50000 / 13 * vw.Surround.NC * vw.NCB * eHue *
		math32.Sqrt(redVgreen*redVgreen+yellowVblue*yellowVblue)) /
		(ra + ga + 21*ba/20)
	C := math32.Pow(t, 0.9) * math32.Sqrt(J/100) * math32.Pow(1.64-math32.Pow(0.29, vw.N), 0.73)
	M := C * vw.FLRoot
	sat := float32(0)
	if Q > 0 {
		sat = 100 * math32.Sqrt(M/Q)
	}
	return &CAM{Hue: hue, Chroma: C, Colorfulness: M, Saturation: sat, Brightness: Q, Lightness: J}
}

// FromJChView returns CAM values from the given lightness (j), chroma (c),
// and hue (h) values under the given viewing conditions
func FromJChView(j, c, h float32, vw *View) *CAM {
	cam := &CAM{Lightness: j, Chroma: c, Hue: h}
	cam.Brightness = (4 / vw.Surround.C) * math32.Sqrt(j/100) * (vw.AW + 4) * vw.FLRoot
	cam.Colorfulness = c * vw.FLRoot
	if cam.Brightness > 0 {
		cam.Saturation = 100 * math32.Sqrt(cam.Colorfulness/cam.Brightness)
	}
	return cam
}

// FromUCSView returns CAM values from the given CAM02-UCS coordinates
// (jstar, astar, and bstar), using the given viewing conditions
func FromUCSView(j, a, b float32, vw *View) *CAM {
	m := math32.Sqrt(a*a + b*b)
	M := (math32.Exp(m*ucsC2) - 1) / ucsC2
	c := M / vw.FLRoot
	h := SanitizeDegrees(math32.Atan2(b, a) * 180 / math32.Pi)
	j /= 1 - ucsC1*(j-100)
	return FromJChView(j, c, h, vw)
}

// UCS returns the CAM02-UCS components (J', a', b') of the CAM values.
func (cam *CAM) UCS() (j, a, b float32) {
	j = (1 + 100*ucsC1) * cam.Lightness / (1 + ucsC1*cam.Lightness) / ucsKL
	m := math32.Log(1+ucsC2*cam.Colorfulness) / ucsC2
	hr := cam.Hue * math32.Pi / 180
	a = m * math32.Cos(hr)
	b = m * math32.Sin(hr)
	return
}

// XYZView returns the CAM color as XYZ coordinates
// under the given viewing conditions.
// Returns 100-base XYZ coordinates.
func (cam *CAM) XYZView(vw *View) (x, y, z float32) {
	if cam.Lightness <= 0 {
		return 0, 0, 0
	}
	t := math32.Pow(cam.Chroma/(math32.Sqrt(cam.Lightness/100)*
		math32.Pow(1.64-math32.Pow(0.29, vw.N), 0.73)), 1/0.9)

	hRad := cam.Hue * math32.Pi / 180
	eHue := 0.25 * (math32.Cos(hRad+2) + 3.8)
	ac := vw.AW * math32.Pow(cam.Lightness/100, 1/(vw.Surround.C*vw.Z))

	p1 := math32.Inf(1)
	if t != 0 {
		p1 = (50000 / 13) * vw.Surround.NC * vw.NCB * eHue / t
	}
	p2 := ac/vw.NBB + 0.305
	const p3 = 21.0 / 20.0

	hSin := math32.Sin(hRad)
	hCos := math32.Cos(hRad)
	num := p2 * (2 + p3) * (460.0 / 1403)
	d2 := float32((2 + p3) * (220.0 / 1403))
	d3 := float32(-27.0/1403 + p3*(6300.0/1403))
	var a, b float32
	if math32.Abs(hSin) >= math32.Abs(hCos) {
		b = num / (p1/hSin + d2*hCos/hSin + d3)
		a = b * hCos / hSin
	} else {
		a = num / (p1/hCos + d2 + d3*hSin/hCos)
		b = a * hSin / hCos
	}

	rA := (460*p2 + 451*a + 288*b) / 1403
	gA := (460*p2 - 891*a - 261*b) / 1403
	bA := (460*p2 - 220*a - 6300*b) / 1403

	rC, gC, bC := HPEToLMS(InverseLuminanceAdaptComp(rA, vw),
		InverseLuminanceAdaptComp(gA, vw), InverseLuminanceAdaptComp(bA, vw))
	return LMSToXYZ(rC/vw.RGBD[0], gC/vw.RGBD[1], bC/vw.RGBD[2])
}

// SRGBView returns the CAM color as gamma encoded sRGB (nominally 0-1,
// not clipped) under the given viewing conditions.
func (cam *CAM) SRGBView(vw *View) (r, g, b float32) {
	return cie.XYZ100ToSRGB(cam.XYZView(vw))
}

// SanitizeDegrees ensures that degrees is in [0, 360) range
func SanitizeDegrees(deg float32) float32 {
	deg = math32.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
