// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"cogentcore.org/cbviz/base/errors"
)

func TestSuggestions(t *testing.T) {
	_, err := ParseKind("prottan")
	assert.ErrorContains(t, err, `did you mean "protan"?`)
	_, err = ParseKind("deutran")
	assert.ErrorContains(t, err, `did you mean "deuteran"?`)
	_, err = ParseKind("green")
	assert.NotContains(t, err.Error(), "did you mean")

	_, err = ParseMetric("ciede200")
	assert.ErrorContains(t, err, `did you mean "ciede2000"?`)
	_, err = ParseMetric("euclid")
	assert.NotContains(t, err.Error(), "did you mean")

	_, err = ParseMonochromeScaling("retian")
	assert.ErrorContains(t, err, `did you mean "retain"?`)
}

func TestErrorMessages(t *testing.T) {
	err := error(&InvalidArgumentError{Arg: "severity", Value: 120, Reason: "must be in [0, 100]"})
	assert.Equal(t, "invalid severity 120: must be in [0, 100]", err.Error())

	err = &ConversionError{From: CAM02UCS, To: SRGB1CVD, Reason: "unsupported"}
	assert.Equal(t, "cannot convert CAM02-UCS to sRGB1+CVD: unsupported", err.Error())

	inner := fmt.Errorf("disk full")
	err = &IOError{Op: "write", Path: "out.png", Err: inner}
	assert.Equal(t, "write out.png: disk full", err.Error())
	assert.True(t, errors.Is(err, inner))
}
