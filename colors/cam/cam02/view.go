// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam02

import (
	"github.com/chewxy/math32"

	"cogentcore.org/cbviz/colors/cam/cie"
)

// Surround holds the surround-dependent parameters of CIECAM02.
type Surround struct {
	// F is the maximum degree of adaptation.
	F float32

	// C is the exponential nonlinearity (impact of surround).
	C float32

	// NC is the chromatic induction factor.
	NC float32
}

// Standard surrounds from the CIECAM02 definition.
var (
	SurroundAverage = Surround{F: 1, C: 0.69, NC: 1}
	SurroundDim     = Surround{F: 0.9, C: 0.59, NC: 0.9}
	SurroundDark    = Surround{F: 0.8, C: 0.525, NC: 0.8}
)

// View represents viewing conditions under which a color is being perceived,
// which greatly affects the subjective perception. A View is a plain value
// computed once by [NewView] and then only read, so it can be shared freely
// between goroutines.
type View struct {

	// WhitePoint is the reference white in 100-base XYZ; typically cie.WhiteD65.
	WhitePoint [3]float32

	// AdaptingLuminance (L_A) is the luminance of the adapting field in cd/m^2.
	AdaptingLuminance float32

	// BgLuminance (Y_b) is the relative luminance of the background.
	BgLuminance float32

	// Surround is the surround condition.
	Surround Surround

	// Adapted means the observer is fully adapted to the white point (D = 1),
	// which is the discounting-the-illuminant case.
	Adapted bool

	// D is the computed degree of adaptation.
	D float32

	// RGBD are the cone responses to the white point, adjusted for discounting.
	RGBD [3]float32

	// FL is the luminance-level adaptation factor.
	FL float32

	// FLRoot is FL to the 1/4 power.
	FLRoot float32

	// N is the ratio of background to white luminance.
	N float32

	// Z is the base exponential nonlinearity.
	Z float32

	// NBB is the brightness induction factor.
	NBB float32

	// NCB is the chromatic induction factor.
	NCB float32

	// AW is the achromatic response to the white point.
	AW float32
}

// NewView returns a new view with all parameters initialized based on given major params
func NewView(whitePoint [3]float32, adaptingLum, bgLum float32, surround Surround, adapted bool) *View {
	vw := &View{WhitePoint: whitePoint, AdaptingLuminance: adaptingLum, BgLuminance: bgLum, Surround: surround, Adapted: adapted}
	vw.Update()
	return vw
}

// NewStdView returns the standard viewing conditions used by cbviz:
// D65 white, an adapting luminance of (64/pi)/5 cd/m^2, a background
// luminance of 20, average surround, and a fully adapted observer.
// Full adaptation keeps grays achromatic, so absolute J', a', b' values
// differ slightly from a model that derives D from the adapting luminance.
func NewStdView() *View {
	return NewView(cie.WhiteD65, (64/math32.Pi)/5, 20, SurroundAverage, true)
}

// Update updates all the computed values based on main parameters
func (vw *View) Update() {
	// A background of pure black is non-physical and leads to infinities.
	vw.BgLuminance = max(0.1, vw.BgLuminance)
	wp := vw.WhitePoint
	rW, gW, bW := XYZToLMS(wp[0], wp[1], wp[2])

	d := float32(1)
	if !vw.Adapted {
		d = vw.Surround.F * (1 - (1/3.6)*math32.Exp((-vw.AdaptingLuminance-42)/92))
	}
	vw.D = min(max(d, 0), 1)
	vw.RGBD[0] = vw.D*wp[1]/rW + 1 - vw.D
	vw.RGBD[1] = vw.D*wp[1]/gW + 1 - vw.D
	vw.RGBD[2] = vw.D*wp[1]/bW + 1 - vw.D

	k := 1 / (5*vw.AdaptingLuminance + 1)
	k4 := k * k * k * k
	k4F := 1 - k4
	vw.FL = 0.2*k4*(5*vw.AdaptingLuminance) + 0.1*k4F*k4F*math32.Cbrt(5*vw.AdaptingLuminance)
	vw.FLRoot = math32.Pow(vw.FL, 0.25)

	vw.N = vw.BgLuminance / wp[1]
	vw.Z = 1.48 + math32.Sqrt(vw.N)
	vw.NBB = 0.725 * math32.Pow(vw.N, -0.2)
	vw.NCB = vw.NBB

	rc, gc, bc := vw.RGBD[0]*rW, vw.RGBD[1]*gW, vw.RGBD[2]*bW
	rA, gA, bA := LuminanceAdapt(rc, gc, bc, vw)
	vw.AW = (2*rA + gA + bA/20 - 0.305) * vw.NBB
}
