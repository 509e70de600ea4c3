// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam02

import "github.com/chewxy/math32"

// XYZToLMS converts XYZ to Long, Medium, Short cone-based responses,
// using the CAT02 transform from CIECAM02 color appearance model
// (MoroneyFairchildHuntEtAl02)
func XYZToLMS(x, y, z float32) (l, m, s float32) {
	l = 0.7328*x + 0.4296*y - 0.1624*z
	m = -0.7036*x + 1.6975*y + 0.0061*z
	s = 0.0030*x + 0.0136*y + 0.9834*z
	return
}

// LMSToXYZ is the inverse of [XYZToLMS].
func LMSToXYZ(l, m, s float32) (x, y, z float32) {
	x = 1.0961238208*l - 0.2788690002*m + 0.1827451794*s
	y = 0.4543690420*l + 0.4735331543*m + 0.0720978037*s
	z = -0.0096276087*l - 0.0056980312*m + 1.0153256400*s
	return
}

// LMSToHPE converts adapted CAT02 responses into the Hunt-Pointer-Estevez
// cone space, where the response compression is applied.
func LMSToHPE(l, m, s float32) (lh, mh, sh float32) {
	lh = 0.7409790970*l + 0.2180251557*m + 0.0410057473*s
	mh = 0.2853532917*l + 0.6242015741*m + 0.0904451342*s
	sh = -0.0096276087*l - 0.0056980312*m + 1.0153256400*s
	return
}

// HPEToLMS is the inverse of [LMSToHPE].
func HPEToLMS(lh, mh, sh float32) (l, m, s float32) {
	l = 1.5591523979*lh - 0.5447226797*mh - 0.0144453098*sh
	m = -0.7143267176*lh + 1.8503099729*mh - 0.1359761120*sh
	s = 0.0107755117*lh + 0.0052187662*mh + 0.9840056143*sh
	return
}

// LuminanceAdaptComp performs the post-adaptation nonlinear
// response compression of one cone response.
func LuminanceAdaptComp(v float32, vw *View) float32 {
	p := math32.Pow(vw.FL*math32.Abs(v)/100, 0.42)
	return sign(v)*400*p/(p+27.13) + 0.1
}

// LuminanceAdapt applies [LuminanceAdaptComp] to the discounted
// white-adjusted cone responses, first moving them into HPE space.
func LuminanceAdapt(rc, gc, bc float32, vw *View) (ra, ga, ba float32) {
	rp, gp, bp := LMSToHPE(rc, gc, bc)
	ra = LuminanceAdaptComp(rp, vw)
	ga = LuminanceAdaptComp(gp, vw)
	ba = LuminanceAdaptComp(bp, vw)
	return
}

// InverseLuminanceAdaptComp inverts [LuminanceAdaptComp].
func InverseLuminanceAdaptComp(v float32, vw *View) float32 {
	d := v - 0.1
	ad := math32.Abs(d)
	return sign(d) * (100 / vw.FL) * math32.Pow(27.13*ad/(400-ad), 1/0.42)
}

// sign returns -1 for negative values and 1 otherwise.
func sign(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}
