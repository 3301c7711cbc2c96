// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package imgload decodes PNG/JPEG files into the flat RGB byte buffers
// texture.Image consumes, optionally resampling to a target resolution,
// grounded on load/png.go's thin io.Reader-to-image.Image decode and
// extended with golang.org/x/image/draw for resampling (the same x/image
// module ttf.go already pulls in for font rasterization).
package imgload

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/lucent-labs/pathtrace/texture"
)

// Decode reads a PNG or JPEG image from r (format names the encoding:
// "png", "jpg" or "jpeg", case-insensitive), returning
// a tightly packed top-down RGB byte buffer plus its dimensions.
func Decode(r io.Reader, format string) ([]byte, int, int, error) {
	var img image.Image
	var err error

	switch strings.ToLower(format) {
	case "png":
		img, err = png.Decode(r)
	case "jpg", "jpeg":
		img, err = jpeg.Decode(r)
	default:
		return nil, 0, 0, fmt.Errorf("imgload: unsupported format %q", format)
	}
	if err != nil {
		return nil, 0, 0, fmt.Errorf("imgload: decode: %w", err)
	}
	return toRGBBytes(img), img.Bounds().Dx(), img.Bounds().Dy(), nil
}

// toRGBBytes converts an arbitrary image.Image into a tightly packed,
// row-major, top-down RGB byte buffer.
func toRGBBytes(img image.Image) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	out := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			o := rgba.PixOffset(x, y)
			i := (y*w + x) * 3
			out[i], out[i+1], out[i+2] = rgba.Pix[o], rgba.Pix[o+1], rgba.Pix[o+2]
		}
	}
	return out
}

// Resample resizes a decoded RGB buffer to newW x newH using a
// high-quality (Catmull-Rom) filter, for texture files that don't match
// the resolution a scene wants to sample at.
func Resample(pix []byte, width, height, newW, newH int) ([]byte, error) {
	if newW <= 0 || newH <= 0 {
		return nil, fmt.Errorf("imgload: invalid resample target %dx%d", newW, newH)
	}
	src := &image.RGBA{
		Pix:    expandToRGBA(pix, width, height),
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)

	out := make([]byte, newW*newH*3)
	for y := 0; y < newH; y++ {
		for x := 0; x < newW; x++ {
			o := dst.PixOffset(x, y)
			i := (y*newW + x) * 3
			out[i], out[i+1], out[i+2] = dst.Pix[o], dst.Pix[o+1], dst.Pix[o+2]
		}
	}
	return out, nil
}

func expandToRGBA(pix []byte, width, height int) []byte {
	out := make([]byte, width*height*4)
	for i := 0; i < width*height; i++ {
		out[i*4] = pix[i*3]
		out[i*4+1] = pix[i*3+1]
		out[i*4+2] = pix[i*3+2]
		out[i*4+3] = 255
	}
	return out
}

// LoadFile opens name, decodes it (format sniffed from the extension),
// and returns a texture.Texture: the decoded image on success, or a
// cyan fallback (logged, not fatal) if the file is missing or
// unreadable — a file read failure must not abort a render.
func LoadFile(name string) texture.Texture {
	f, err := os.Open(name)
	if err != nil {
		return texture.NewImageOrFallback(nil, 0, 0, name)
	}
	defer f.Close()

	ext := strings.TrimPrefix(strings.ToLower(path.Ext(name)), ".")
	pix, w, h, err := Decode(f, ext)
	if err != nil {
		return texture.NewImageOrFallback(nil, 0, 0, name)
	}
	return texture.NewImageOrFallback(pix, w, h, name)
}
