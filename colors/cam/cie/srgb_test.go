// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/cbviz/base/tolassert"
)

func TestSRGB(t *testing.T) {
	tolassert.EqualTol(t, float32(0.00015479876), SRGBToLinearComp(0.002), 1e-7)
	tolassert.Equal(t, float32(0.23302202), SRGBToLinearComp(0.52))

	tolassert.Equal(t, float32(0.012920001), SRGBFromLinearComp(0.001))
	tolassert.Equal(t, float32(0.84338915), SRGBFromLinearComp(0.68))
	tolassert.Equal(t, float32(-0.1292), SRGBFromLinearComp(-0.01))

	rl, gl, bl := SRGBToLinear(0.3, 0.2, 0.6)
	tolassert.Equal(t, float32(0.07323897), rl)
	tolassert.Equal(t, float32(0.033104762), gl)
	tolassert.Equal(t, float32(0.31854683), bl)

	r, g, b := SRGBFromLinear(0.12, 0.34, 0.78)
	tolassert.Equal(t, float32(0.38109186), r)
	tolassert.Equal(t, float32(0.61803144), g)
	tolassert.Equal(t, float32(0.8962438), b)
}
