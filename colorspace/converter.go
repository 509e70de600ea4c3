// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"cogentcore.org/cbviz/colors/cam/cam02"
	"cogentcore.org/cbviz/colors/cam/cie"
	"cogentcore.org/cbviz/colors/cvd"
)

// pixelFunc maps one 3 channel pixel.
type pixelFunc func(p [3]float32) [3]float32

// Converter is one directional mapping between two spaces, applied
// to every pixel of an [Image]. Converters are immutable after
// construction and safe for concurrent use.
type Converter struct {
	From, To Space

	// CVD is the deficiency simulated when From is [SRGB1CVD].
	CVD CVDSpec

	// View is the viewing conditions for the CIECAM02 based spaces.
	View *cam02.View

	// Workers is the maximum number of goroutines used by Convert;
	// 0 means GOMAXPROCS.
	Workers int

	fn pixelFunc
}

// ConverterOption configures a [Converter].
type ConverterOption func(cv *Converter)

// WithCVD sets the deficiency simulated by a [SRGB1CVD] source.
func WithCVD(spec CVDSpec) ConverterOption {
	return func(cv *Converter) { cv.CVD = spec }
}

// WithView sets the CIECAM02 viewing conditions.
func WithView(vw *cam02.View) ConverterOption {
	return func(cv *Converter) { cv.View = vw }
}

// WithWorkers sets the maximum number of concurrent row bands.
func WithWorkers(n int) ConverterOption {
	return func(cv *Converter) { cv.Workers = n }
}

// NewConverter returns a new [Converter] from one space to another.
// Conversions are composed through a hub: sRGB spaces meet at [SRGB1],
// everything else at [XYZ100]. Unsupported pairs return a [ConversionError].
func NewConverter(from, to Space, opts ...ConverterOption) (*Converter, error) {
	cv := &Converter{From: from, To: to}
	for _, opt := range opts {
		opt(cv)
	}
	if cv.View == nil {
		cv.View = cam02.NewStdView()
	}
	if from == to && from != SRGB1CVD {
		cv.fn = func(p [3]float32) [3]float32 { return p }
		return cv, nil
	}
	toHub, fromHub, err := cv.stages()
	if err != nil {
		return nil, err
	}
	cv.fn = func(p [3]float32) [3]float32 { return fromHub(toHub(p)) }
	return cv, nil
}

// isSRGB returns whether the space meets at the [SRGB1] hub.
func isSRGB(s Space) bool {
	return s == SRGB1 || s == SRGB255 || s == SRGB1CVD
}

// stages returns the functions taking the source into the source hub,
// and from there (through the destination hub if it differs) into the
// destination.
func (cv *Converter) stages() (toHub, fromHub pixelFunc, err error) {
	vw := cv.View
	switch cv.From {
	case SRGB1:
		toHub = func(p [3]float32) [3]float32 { return p }
	case SRGB255:
		toHub = func(p [3]float32) [3]float32 { return [3]float32{p[0] / 255, p[1] / 255, p[2] / 255} }
	case SRGB1CVD:
		sim, serr := cvd.NewSimulator(cv.CVD.Type, cv.CVD.Severity)
		if serr != nil {
			return nil, nil, &ConversionError{From: cv.From, To: cv.To, Reason: serr.Error()}
		}
		toHub = func(p [3]float32) [3]float32 {
			r, g, b := sim.SRGB(p[0], p[1], p[2])
			return [3]float32{r, g, b}
		}
	case SRGB1Linear:
		toHub = func(p [3]float32) [3]float32 {
			x, y, z := cie.SRGBLinToXYZ(p[0], p[1], p[2])
			return [3]float32{x * 100, y * 100, z * 100}
		}
	case XYZ100:
		toHub = func(p [3]float32) [3]float32 { return p }
	case JCh:
		toHub = func(p [3]float32) [3]float32 {
			x, y, z := cam02.FromJChView(p[0], p[1], p[2], vw).XYZView(vw)
			return [3]float32{x, y, z}
		}
	case CAM02UCS:
		toHub = func(p [3]float32) [3]float32 {
			x, y, z := cam02.FromUCSView(p[0], p[1], p[2], vw).XYZView(vw)
			return [3]float32{x, y, z}
		}
	default:
		return nil, nil, &ConversionError{From: cv.From, To: cv.To, Reason: "unknown source space"}
	}

	var dest pixelFunc
	switch cv.To {
	case SRGB1:
		dest = func(p [3]float32) [3]float32 { return p }
	case SRGB255:
		dest = func(p [3]float32) [3]float32 { return [3]float32{p[0] * 255, p[1] * 255, p[2] * 255} }
	case SRGB1Linear:
		dest = func(p [3]float32) [3]float32 {
			r, g, b := cie.XYZToSRGBLin(p[0]/100, p[1]/100, p[2]/100)
			return [3]float32{r, g, b}
		}
	case XYZ100:
		dest = func(p [3]float32) [3]float32 { return p }
	case JCh:
		dest = func(p [3]float32) [3]float32 {
			cam := cam02.FromXYZView(p[0], p[1], p[2], vw)
			return [3]float32{cam.Lightness, cam.Chroma, cam.Hue}
		}
	case CAM02UCS:
		dest = func(p [3]float32) [3]float32 {
			j, a, b := cam02.FromXYZView(p[0], p[1], p[2], vw).UCS()
			return [3]float32{j, a, b}
		}
	default:
		return nil, nil, &ConversionError{From: cv.From, To: cv.To, Reason: "unsupported destination space"}
	}

	switch {
	case isSRGB(cv.From) && !isSRGB(cv.To):
		fromHub = func(p [3]float32) [3]float32 {
			x, y, z := cie.SRGBToXYZ100(p[0], p[1], p[2])
			return dest([3]float32{x, y, z})
		}
	case !isSRGB(cv.From) && isSRGB(cv.To):
		fromHub = func(p [3]float32) [3]float32 {
			r, g, b := cie.XYZ100ToSRGB(p[0], p[1], p[2])
			return dest([3]float32{r, g, b})
		}
	default:
		fromHub = dest
	}
	return toHub, fromHub, nil
}

// Convert returns a new image with every pixel of img mapped from
// the source to the destination space. Rows are processed in bands
// concurrently. Malformed buffers return a [ConversionError].
func (cv *Converter) Convert(img *Image) (*Image, error) {
	if err := img.Check(); err != nil {
		return nil, &ConversionError{From: cv.From, To: cv.To, Reason: err.Error()}
	}
	if img.Channels != 3 {
		return nil, &ConversionError{From: cv.From, To: cv.To, Reason: "image must have 3 channels"}
	}
	out := NewImage(img.Height, img.Width, 3)
	workers := cv.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	band := max(1, (img.Height+workers-1)/workers)
	var eg errgroup.Group
	eg.SetLimit(workers)
	for y0 := 0; y0 < img.Height; y0 += band {
		y1 := min(y0+band, img.Height)
		eg.Go(func() error {
			for i := y0 * img.Width * 3; i < y1*img.Width*3; i += 3 {
				p := cv.fn([3]float32{img.Pix[i], img.Pix[i+1], img.Pix[i+2]})
				out.Pix[i], out.Pix[i+1], out.Pix[i+2] = p[0], p[1], p[2]
			}
			return nil
		})
	}
	return out, eg.Wait()
}
