// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorspace provides the color vision deficiency transforms of
// cbviz: protan, deuteran, and tritan simulation, monochrome
// desaturation, and the identity Original, together with the
// converters between colorspaces they are built on, the builder of
// transform sets from user selections, and the perceptual difference
// metrics behind the colorblind friendliness test.
package colorspace
