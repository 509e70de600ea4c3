// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// Metric is a per-pixel perceptual color difference (deltaE) formula.
type Metric int32

const (
	// MetricCAM02UCS is the Euclidean distance in CAM02-UCS.
	MetricCAM02UCS Metric = iota

	// MetricCIE76 is the Euclidean distance in CIELAB.
	MetricCIE76

	// MetricCIE94 is the CIE94 graphic arts difference.
	MetricCIE94

	// MetricCIEDE2000 is the CIEDE2000 difference.
	MetricCIEDE2000
)

var metricNames = [...]string{"cam02-ucs", "cie76", "cie94", "ciede2000"}

func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return fmt.Sprintf("Metric(%d)", int32(m))
	}
	return metricNames[m]
}

// ParseMetric returns the metric with the given name (case insensitive).
func ParseMetric(s string) (Metric, error) {
	ls := strings.ToLower(s)
	for i, nm := range metricNames {
		if ls == nm {
			return Metric(i), nil
		}
	}
	return MetricCAM02UCS, &InvalidArgumentError{Arg: "metric", Value: fmt.Sprintf("%q", s), Reason: withSuggestion("must be one of "+strings.Join(metricNames[:], ", "), s, metricNames[:])}
}

// colorfulAt returns the sRGB pixel at index i as a go-colorful color.
func colorfulAt(im *Image, i int) colorful.Color {
	return colorful.Color{R: float64(im.Pix[i]), G: float64(im.Pix[i+1]), B: float64(im.Pix[i+2])}
}

// DeltaE returns the per-pixel perceptual difference between the image
// and the image converted by the transform, as a single channel image.
func DeltaE(img *Image, t *Transform, metric Metric) (*Image, error) {
	orig, err := Validate(img)
	if err != nil {
		return nil, err
	}
	conv, err := t.Convert(orig)
	if err != nil {
		return nil, err
	}
	out := NewImage(orig.Height, orig.Width, 1)
	switch metric {
	case MetricCAM02UCS:
		u1, u2, err := t.uniform(orig, conv)
		if err != nil {
			return nil, err
		}
		for p := range out.Pix {
			i := p * 3
			dj, da, db := u1.Pix[i]-u2.Pix[i], u1.Pix[i+1]-u2.Pix[i+1], u1.Pix[i+2]-u2.Pix[i+2]
			out.Pix[p] = math32.Sqrt(dj*dj + da*da + db*db)
		}
	case MetricCIE76, MetricCIE94, MetricCIEDE2000:
		for p := range out.Pix {
			c1, c2 := colorfulAt(orig, p*3), colorfulAt(conv, p*3)
			var d float64
			switch metric {
			case MetricCIE76:
				d = c1.DistanceCIE76(c2)
			case MetricCIE94:
				d = c1.DistanceCIE94(c2)
			default:
				d = c1.DistanceCIEDE2000(c2)
			}
			// go-colorful works with L in [0,1]
			out.Pix[p] = float32(d * 100)
		}
	default:
		return nil, &InvalidArgumentError{Arg: "metric", Value: metric, Reason: "unknown metric"}
	}
	return out, nil
}

// DeltaE1D converts both the image and the image converted by the
// transform into CAM02-UCS and returns the absolute difference along
// the given channel (0 = J', 1 = a', 2 = b') as a single channel image.
func DeltaE1D(img *Image, t *Transform, channel int) (*Image, error) {
	if channel < 0 || channel > 2 {
		return nil, &InvalidArgumentError{Arg: "channel", Value: channel, Reason: "must be 0, 1, or 2"}
	}
	orig, err := Validate(img)
	if err != nil {
		return nil, err
	}
	conv, err := t.Convert(orig)
	if err != nil {
		return nil, err
	}
	u1, u2, err := t.uniform(orig, conv)
	if err != nil {
		return nil, err
	}
	out := NewImage(orig.Height, orig.Width, 1)
	for p := range out.Pix {
		i := p*3 + channel
		out.Pix[p] = math32.Abs(u1.Pix[i] - u2.Pix[i])
	}
	return out, nil
}

// uniform converts both sRGB1 images to CAM02-UCS under the viewing
// conditions of the transform.
func (t *Transform) uniform(a, b *Image) (ua, ub *Image, err error) {
	ucs, err := NewConverter(SRGB1, CAM02UCS, WithView(t.view), WithWorkers(t.workers))
	if err != nil {
		return nil, nil, err
	}
	if ua, err = ucs.Convert(a); err != nil {
		return nil, nil, err
	}
	if ub, err = ucs.Convert(b); err != nil {
		return nil, nil, err
	}
	return ua, ub, nil
}
