// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

// Validate returns the given putative sRGB image in canonical form:
// 3 channels with values in [0,1]. An image whose maximum value is
// greater than 1 is taken to be [SRGB255] and scaled down; otherwise
// it is taken to be [SRGB1] and copied unchanged. A buffer that is not
// a consistent 3 channel image returns a [ConversionError].
func Validate(img *Image) (*Image, error) {
	from := SRGB1
	if img != nil && img.Max() > 1 {
		from = SRGB255
	}
	if err := img.Check(); err != nil {
		return nil, &ConversionError{From: from, To: SRGB1, Reason: err.Error()}
	}
	if img.Channels != 3 {
		return nil, &ConversionError{From: from, To: SRGB1, Reason: "image must have 3 channels"}
	}
	if from == SRGB1 {
		return img.Clone(), nil
	}
	cv, err := NewConverter(from, SRGB1)
	if err != nil {
		return nil, err
	}
	return cv.Convert(img)
}
