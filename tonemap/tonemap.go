// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package tonemap converts linear HDR radiance to 8-bit gamma-encoded
// channel values, grounded on original_source's linear_to_gamma/write_color.
package tonemap

import (
	"math"

	"github.com/lucent-labs/pathtrace/math/geom"
)

// intensity is the clamp range applied before quantizing to a byte: the
// top end is kept just under 1 so a fully-saturated channel maps to 255
// rather than overflowing to 256.
var intensity = geom.NewInterval(0.000, 0.999)

// linearToGamma applies a gamma-2.0 encode (sqrt), matching the original
// source's simplified HDR-to-display transform. Negative input (possible
// from a near-zero-then-rounding-error radiance) maps to 0.
func linearToGamma(c float64) float64 {
	if c > 0 {
		return math.Sqrt(c)
	}
	return 0
}

// Byte gamma-encodes and quantizes a single linear radiance value to a
// [0,255] channel byte.
func Byte(linear float64) byte {
	return byte(256 * intensity.Clamp(linearToGamma(linear)))
}

// Encode gamma-encodes and quantizes a full linear color to RGB bytes.
func Encode(c geom.Color) (r, g, b byte) {
	return Byte(c.X), Byte(c.Y), Byte(c.Z)
}
