// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

package texture

import (
	"log"

	"github.com/lucent-labs/pathtrace/math/geom"
)

// Image samples a decoded RGB byte buffer. V is flipped when sampling (row
// 0 is v=1) so that image files with the usual top-down scanline order map
// correctly onto the [0,1] UV square. Out-of-range UV is clamped.
type Image struct {
	pix           []byte // tightly packed RGB, row-major, top-to-bottom
	width, height int
}

// NewImage wraps an already-decoded RGB byte buffer. width*height*3 must
// equal len(pix).
func NewImage(pix []byte, width, height int) *Image {
	return &Image{pix: pix, width: width, height: height}
}

// cyanFallback is returned in place of a texture whose backing file could
// not be read or decoded — a visible marker rather than a fatal error.
func cyanFallback() *Solid { return NewSolid(0, 1, 1) }

// NewImageOrFallback wraps pix, or logs once and returns solid cyan if
// decoding upstream failed (pix is nil).
func NewImageOrFallback(pix []byte, width, height int, sourceName string) Texture {
	if pix == nil || width <= 0 || height <= 0 {
		log.Printf("texture: %s unreadable, substituting cyan", sourceName)
		return cyanFallback()
	}
	return NewImage(pix, width, height)
}

// Value implements Texture.
func (img *Image) Value(u, v float64, p geom.Point3) geom.Color {
	if img.height <= 0 {
		return geom.New(0, 1, 1)
	}
	u = geom.NewInterval(0, 1).Clamp(u)
	v = 1 - geom.NewInterval(0, 1).Clamp(v) // flip V: image row 0 is v=1.

	i := int(u * float64(img.width))
	j := int(v * float64(img.height))
	if i >= img.width {
		i = img.width - 1
	}
	if j >= img.height {
		j = img.height - 1
	}

	const colorScale = 1.0 / 255.0
	off := (j*img.width + i) * 3
	r := float64(img.pix[off]) * colorScale
	g := float64(img.pix[off+1]) * colorScale
	b := float64(img.pix[off+2]) * colorScale
	return geom.New(r, g, b)
}
