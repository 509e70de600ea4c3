// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cvd simulates color vision deficiency (anomalous trichromacy
// and dichromacy) with the physiologically based model of
// Machado, Oliveira and Fernandes (2009).
package cvd

import (
	"fmt"

	"cogentcore.org/cbviz/colors/cam/cie"
)

// Type is a type of color vision deficiency, named by the affected cone.
type Type int32

const (
	// Protan affects the long-wavelength (L, red) cones.
	Protan Type = iota

	// Deuteran affects the medium-wavelength (M, green) cones.
	Deuteran

	// Tritan affects the short-wavelength (S, blue) cones.
	Tritan
)

func (tp Type) String() string {
	switch tp {
	case Protan:
		return "protanomaly"
	case Deuteran:
		return "deuteranomaly"
	case Tritan:
		return "tritanomaly"
	}
	return fmt.Sprintf("cvd.Type(%d)", int32(tp))
}

// Matrix is a 3x3 row-major matrix applied to linear sRGB column vectors.
type Matrix [3][3]float32

// Identity is the identity matrix, which is the severity 0 simulation.
var Identity = Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Mul returns the matrix applied to the given linear rgb values.
func (m *Matrix) Mul(r, g, b float32) (sr, sg, sb float32) {
	sr = m[0][0]*r + m[0][1]*g + m[0][2]*b
	sg = m[1][0]*r + m[1][1]*g + m[1][2]*b
	sb = m[2][0]*r + m[2][1]*g + m[2][2]*b
	return
}

// Lerp returns the elementwise linear interpolation between m and o
// at fraction t (0 = m, 1 = o).
func (m *Matrix) Lerp(o *Matrix, t float32) Matrix {
	var res Matrix
	for i := range 3 {
		for j := range 3 {
			res[i][j] = (1-t)*m[i][j] + t*o[i][j]
		}
	}
	return res
}

// table returns the tabulated matrix for the given multiple of 10.
func table(tp Type, sev10 int) Matrix {
	if sev10 == 0 {
		return Identity
	}
	return machado[tp][sev10/10-1]
}

// NewMatrix returns the simulation matrix for the given deficiency type
// at the given severity (0-100). Severities between the tabulated
// multiples of 10 are linearly interpolated between their neighbors.
func NewMatrix(tp Type, severity int) (Matrix, error) {
	if _, ok := machado[tp]; !ok {
		return Matrix{}, fmt.Errorf("cvd: unknown deficiency type %v", tp)
	}
	if severity < 0 || severity > 100 {
		return Matrix{}, fmt.Errorf("cvd: severity %d out of range [0, 100]", severity)
	}
	frac := severity % 10
	low := table(tp, severity-frac)
	if frac == 0 {
		return low, nil
	}
	high := table(tp, severity-frac+10)
	return low.Lerp(&high, float32(frac)/10), nil
}

// Simulator applies one deficiency simulation to sRGB values.
type Simulator struct {
	Type     Type
	Severity int
	Matrix   Matrix
}

// NewSimulator returns a new [Simulator] for the given type and severity.
func NewSimulator(tp Type, severity int) (*Simulator, error) {
	m, err := NewMatrix(tp, severity)
	if err != nil {
		return nil, err
	}
	return &Simulator{Type: tp, Severity: severity, Matrix: m}, nil
}

// SRGB returns the simulated appearance of the given gamma encoded sRGB
// color (0-1). The result is not clipped and may fall out of gamut.
func (sm *Simulator) SRGB(r, g, b float32) (sr, sg, sb float32) {
	rl, gl, bl := cie.SRGBToLinear(r, g, b)
	rl, gl, bl = sm.Matrix.Mul(rl, gl, bl)
	return cie.SRGBFromLinear(rl, gl, bl)
}
