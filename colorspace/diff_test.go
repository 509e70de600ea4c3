// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/cbviz/base/errors"
	"cogentcore.org/cbviz/base/tolassert"
)

func TestParseMetric(t *testing.T) {
	m, err := ParseMetric("CIEDE2000")
	require.NoError(t, err)
	assert.Equal(t, MetricCIEDE2000, m)
	assert.Equal(t, "cam02-ucs", MetricCAM02UCS.String())
	_, err = ParseMetric("euclid")
	var ia *InvalidArgumentError
	assert.True(t, errors.As(err, &ia))
}

func TestDeltaEOriginalIsZero(t *testing.T) {
	orig, err := New(Original, 100)
	require.NoError(t, err)
	for _, m := range []Metric{MetricCAM02UCS, MetricCIE76, MetricCIE94, MetricCIEDE2000} {
		d, err := DeltaE(testImage(), orig, m)
		require.NoError(t, err)
		assert.Equal(t, 1, d.Channels)
		assert.Equal(t, float32(0), d.Max(), m.String())
	}
}

func TestDeltaEProtanRed(t *testing.T) {
	tr, err := New(Protan, 100)
	require.NoError(t, err)
	im := NewFilled(1, 2, 1, 0, 0)
	for _, m := range []Metric{MetricCAM02UCS, MetricCIE76, MetricCIE94, MetricCIEDE2000} {
		d, err := DeltaE(im, tr, m)
		require.NoError(t, err)
		assert.Greater(t, d.Min(), float32(5), m.String())
	}
	d, err := DeltaE(im, tr, MetricCAM02UCS)
	require.NoError(t, err)
	// |(17.49, 41.26, 1.06)| in CAM02-UCS
	tolassert.EqualTol(t, 44.83, d.Pix[0], 0.2)

	_, err = DeltaE(im, tr, Metric(12))
	var ia *InvalidArgumentError
	assert.True(t, errors.As(err, &ia))
}

func TestDeltaE1D(t *testing.T) {
	tr, err := New(Protan, 100)
	require.NoError(t, err)
	im := NewFilled(2, 2, 1, 0, 0)
	d, err := DeltaE1D(im, tr, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 1}, []int{d.Height, d.Width, d.Channels})
	tolassert.EqualTol(t, 17.489, d.Pix[3], 0.05)

	da, err := DeltaE1D(im, tr, 1)
	require.NoError(t, err)
	tolassert.EqualTol(t, 41.264, da.Pix[0], 0.1)

	var ia *InvalidArgumentError
	_, err = DeltaE1D(im, tr, 3)
	require.True(t, errors.As(err, &ia))
	assert.Equal(t, "channel", ia.Arg)
	_, err = DeltaE1D(im, tr, -1)
	assert.True(t, errors.As(err, &ia))
}

func TestEvaluateMaxEpsilonFriendly(t *testing.T) {
	set, err := Generate(nil, 100, true)
	require.NoError(t, err)
	rep, err := Evaluate(context.Background(), testImage(), set, 1)
	require.NoError(t, err)
	assert.True(t, rep.Friendly)
	assert.Equal(t, float32(100), rep.Threshold)
	require.Len(t, rep.Results, 8)
	for i, r := range rep.Results {
		assert.True(t, r.Pass, r.Transform.Name)
		assert.Same(t, set[i], r.Transform)
	}
}

func TestEvaluateFailures(t *testing.T) {
	orig, err := New(Original, 100)
	require.NoError(t, err)
	protan, err := New(Protan, 100)
	require.NoError(t, err)
	mono, err := New(Monochrome, 100)
	require.NoError(t, err)
	set := []*Transform{orig, protan, mono}

	rep, err := Evaluate(context.Background(), NewFilled(2, 2, 1, 0, 0), set, 0)
	require.NoError(t, err)
	assert.False(t, rep.Friendly)
	assert.True(t, rep.Results[0].Pass)
	assert.False(t, rep.Results[1].Pass)
	tolassert.EqualTol(t, 17.489, rep.Results[1].MaxDelta, 0.05)

	// monochrome keeps lightness, so it passes the lightness based test
	rep, err = Evaluate(context.Background(), NewFilled(2, 2, 1, 0, 0), set, 0.1)
	require.NoError(t, err)
	assert.True(t, rep.Results[2].Pass)
	assert.False(t, rep.Results[1].Pass)

	var ia *InvalidArgumentError
	_, err = Evaluate(context.Background(), testImage(), set, 1.5)
	require.True(t, errors.As(err, &ia))
	assert.Equal(t, "epsilon", ia.Arg)
	_, err = Evaluate(context.Background(), testImage(), set, -0.1)
	assert.True(t, errors.As(err, &ia))
}
