// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cvd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/cbviz/base/tolassert"
)

func TestNewMatrixTabulated(t *testing.T) {
	for _, tp := range []Type{Protan, Deuteran, Tritan} {
		m, err := NewMatrix(tp, 0)
		require.NoError(t, err)
		assert.Equal(t, Identity, m)
		for i := 1; i <= 10; i++ {
			m, err := NewMatrix(tp, i*10)
			require.NoError(t, err)
			assert.Equal(t, machado[tp][i-1], m, "%v %d", tp, i*10)
		}
	}
}

func TestNewMatrixInterpolated(t *testing.T) {
	m, err := NewMatrix(Protan, 55)
	require.NoError(t, err)
	lo, hi := machado[Protan][4], machado[Protan][5]
	for i := range 3 {
		for j := range 3 {
			tolassert.EqualTol(t, (lo[i][j]+hi[i][j])/2, m[i][j], 1e-6)
		}
	}

	m, err = NewMatrix(Tritan, 3)
	require.NoError(t, err)
	tolassert.EqualTol(t, 0.7+0.3*float32(0.926670), m[0][0], 1e-6)
	tolassert.EqualTol(t, 0.3*float32(0.092514), m[0][1], 1e-6)
}

func TestNewMatrixErrors(t *testing.T) {
	_, err := NewMatrix(Protan, -1)
	assert.Error(t, err)
	_, err = NewMatrix(Deuteran, 101)
	assert.Error(t, err)
	_, err = NewMatrix(Type(7), 50)
	assert.Error(t, err)
}

func TestSimulatorNeutral(t *testing.T) {
	for _, tp := range []Type{Protan, Deuteran, Tritan} {
		sm, err := NewSimulator(tp, 100)
		require.NoError(t, err)
		for _, v := range []float32{0, 0.25, 0.5, 1} {
			r, g, b := sm.SRGB(v, v, v)
			tolassert.EqualTol(t, v, r, 0.002, tp)
			tolassert.EqualTol(t, v, g, 0.002, tp)
			tolassert.EqualTol(t, v, b, 0.002, tp)
		}
	}
}

func TestSimulatorRedGreen(t *testing.T) {
	sm, err := NewSimulator(Deuteran, 100)
	require.NoError(t, err)
	r1, g1, _ := sm.SRGB(1, 0, 0)
	r2, g2, _ := sm.SRGB(0, 0.5, 0)
	// red and green become much harder to distinguish
	assert.Less(t, r1-g1, float32(0.5))
	assert.Less(t, g2-r2, float32(0.5))

	sm0, err := NewSimulator(Deuteran, 0)
	require.NoError(t, err)
	r, g, b := sm0.SRGB(0.2, 0.4, 0.6)
	tolassert.EqualTol(t, 0.2, r, 1e-5)
	tolassert.EqualTol(t, 0.4, g, 1e-5)
	tolassert.EqualTol(t, 0.6, b, 1e-5)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "protanomaly", Protan.String())
	assert.Equal(t, "tritanomaly", Tritan.String())
	assert.Equal(t, "cvd.Type(9)", Type(9).String())
}
