// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/cbviz/colors/cam/cam02"
)

// MonochromeScaling selects how a [Monochrome] transform scales chroma
// at severities below 100.
type MonochromeScaling int32

const (
	// ScaleLiteral multiplies chroma by severity/100, so that severity 0
	// removes all chroma as well.
	ScaleLiteral MonochromeScaling = iota

	// ScaleRetain multiplies chroma by 1 - severity/100, so that severity 0
	// is normal vision and chroma decreases as severity increases.
	ScaleRetain
)

func (ms MonochromeScaling) String() string {
	if ms == ScaleRetain {
		return "retain"
	}
	return "literal"
}

// ParseMonochromeScaling returns the scaling named "literal" or "retain".
func ParseMonochromeScaling(s string) (MonochromeScaling, error) {
	switch strings.ToLower(s) {
	case "", "literal":
		return ScaleLiteral, nil
	case "retain":
		return ScaleRetain, nil
	}
	return ScaleLiteral, &InvalidArgumentError{Arg: "monochrome scaling", Value: fmt.Sprintf("%q", s), Reason: withSuggestion("must be literal or retain", s, []string{"literal", "retain"})}
}

// Transform is a named color vision simulation of one [Kind] at one
// severity. Transforms are immutable after [New] and safe for
// concurrent use.
type Transform struct {
	Kind Kind

	// Severity is 0 (normal vision) to 100 (complete deficiency).
	Severity int

	// Name is the display label, such as "Protanopia" or "Monochrome (50%)".
	Name string

	// Scaling is the chroma scaling of a Monochrome transform.
	Scaling MonochromeScaling

	// Dest is the output space, SRGB1 unless set by [WithDest].
	Dest Space

	view    *cam02.View
	workers int

	// conv is the main converter: CVD simulation for dichromatic kinds,
	// sRGB to JCh for Monochrome, and the identity for Original.
	conv *Converter

	// fromJCh maps the desaturated JCh image to Dest for Monochrome.
	fromJCh *Converter
}

// Option configures a [Transform].
type Option func(t *Transform)

// WithDest sets the output space of the transform: SRGB1 or SRGB1Linear.
func WithDest(s Space) Option {
	return func(t *Transform) { t.Dest = s }
}

// WithScaling sets the chroma scaling of a Monochrome transform.
func WithScaling(ms MonochromeScaling) Option {
	return func(t *Transform) { t.Scaling = ms }
}

// WithTransformView sets the CIECAM02 viewing conditions.
func WithTransformView(vw *cam02.View) Option {
	return func(t *Transform) { t.view = vw }
}

// WithTransformWorkers sets the concurrency of the underlying converters.
func WithTransformWorkers(n int) Option {
	return func(t *Transform) { t.workers = n }
}

// Name returns the display label of a transform of the given kind and
// severity. Dichromatic kinds get the "anomaly" suffix below severity 51
// and the "opia" suffix from 51 up.
func Name(kind Kind, severity int) string {
	switch kind {
	case Monochrome:
		return fmt.Sprintf("Monochrome (%d%%)", severity)
	case Original:
		return "Original"
	}
	name := kind.String()
	base := strings.ToUpper(name[:1]) + name[1:]
	if severity < 51 {
		return base + "omaly"
	}
	return base + "opia"
}

// New returns a new [Transform] of the given kind at the given severity
// (0-100). The converters it needs are built here, so that an
// unsupported configuration fails at construction.
func New(kind Kind, severity int, opts ...Option) (*Transform, error) {
	if severity < 0 || severity > 100 {
		return nil, &InvalidArgumentError{Arg: "severity", Value: severity, Reason: "must be in [0, 100]"}
	}
	if kind < Protan || kind > Original {
		return nil, &InvalidArgumentError{Arg: "kind", Value: kind, Reason: "unknown kind"}
	}
	t := &Transform{Kind: kind, Severity: severity, Name: Name(kind, severity), Dest: SRGB1}
	for _, opt := range opts {
		opt(t)
	}
	if t.Dest != SRGB1 && t.Dest != SRGB1Linear {
		return nil, &InvalidArgumentError{Arg: "destination", Value: t.Dest, Reason: "must be sRGB1 or sRGB1-linear"}
	}
	if t.view == nil {
		t.view = cam02.NewStdView()
	}
	copts := []ConverterOption{WithView(t.view), WithWorkers(t.workers)}
	var err error
	switch kind {
	case Protan, Deuteran, Tritan:
		t.conv, err = NewConverter(SRGB1CVD, t.Dest, append(copts, WithCVD(CVDSpec{Type: kind.cvdType(), Severity: severity}))...)
	case Monochrome:
		t.conv, err = NewConverter(SRGB1, JCh, copts...)
		if err == nil {
			t.fromJCh, err = NewConverter(JCh, t.Dest, copts...)
		}
	case Original:
		t.conv, err = NewConverter(SRGB255, SRGB255, copts...)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Convert returns the image as seen with the color vision of the
// transform. The input is validated first (so it may be in [0,1] or
// [0,255]) and the output is clipped to [0,1]. The Original transform
// returns its input as is, without validation or clipping.
func (t *Transform) Convert(img *Image) (*Image, error) {
	if t.Kind == Original {
		return img, nil
	}
	srgb, err := Validate(img)
	if err != nil {
		return nil, err
	}
	slog.Debug("converting", "transform", t.Name, "pixels", srgb.Len())
	switch t.Kind {
	case Monochrome:
		jch, err := t.conv.Convert(srgb)
		if err != nil {
			return nil, err
		}
		t.desaturate(jch)
		out, err := t.fromJCh.Convert(jch)
		if err != nil {
			return nil, err
		}
		return out.Clip(), nil
	default:
		out, err := t.conv.Convert(srgb)
		if err != nil {
			return nil, err
		}
		return out.Clip(), nil
	}
}

// desaturate scales the chroma channel of the JCh image in place
// according to the severity and scaling of the transform.
func (t *Transform) desaturate(jch *Image) {
	if t.Severity == 100 {
		for i := 1; i < len(jch.Pix); i += 3 {
			jch.Pix[i] = 0
		}
		return
	}
	var scale float32
	switch t.Scaling {
	case ScaleRetain:
		scale = 1 - float32(t.Severity)/100
	default:
		scale = float32(t.Severity) / 100
	}
	for i := 1; i < len(jch.Pix); i += 3 {
		jch.Pix[i] *= scale
	}
}

func (t *Transform) String() string {
	return fmt.Sprintf("%s [%v %d]", t.Name, t.Kind, t.Severity)
}
