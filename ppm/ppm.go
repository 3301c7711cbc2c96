// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package ppm writes a row-major linear-RGB pixel buffer out as a P3
// (ASCII) PPM image, the format original_source's camera.h writes
// directly to std::cout.
package ppm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lucent-labs/pathtrace/math/geom"
	"github.com/lucent-labs/pathtrace/tonemap"
)

// Write emits a P3 PPM image of width x height to w. pixels must be
// row-major, top-to-bottom, linear RGB; each is gamma-encoded and
// clamped to a byte via tonemap before being written.
func Write(w io.Writer, width, height int, pixels []geom.Color) error {
	if len(pixels) != width*height {
		return fmt.Errorf("ppm: got %d pixels, want %d for a %dx%d image", len(pixels), width*height, width, height)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("ppm: write header: %w", err)
	}
	for _, p := range pixels {
		r, g, b := tonemap.Encode(p)
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
			return fmt.Errorf("ppm: write pixel: %w", err)
		}
	}
	return bw.Flush()
}
