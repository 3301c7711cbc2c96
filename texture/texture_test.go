// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

package texture

import (
	"testing"

	"github.com/lucent-labs/pathtrace/math/geom"
	"github.com/lucent-labs/pathtrace/rng"
)

func TestSolidIsConstant(t *testing.T) {
	s := NewSolid(0.1, 0.2, 0.3)
	c := s.Value(0.9, 0.1, geom.New(100, -5, 3))
	if c.X != 0.1 || c.Y != 0.2 || c.Z != 0.3 {
		t.Errorf("solid texture should ignore its inputs, got %+v", c)
	}
}

func TestCheckerAlternates(t *testing.T) {
	c := NewChecker(1, geom.New(1, 1, 1), geom.New(0, 0, 0))
	a := c.Value(0, 0, geom.New(0.5, 0.5, 0.5))
	b := c.Value(0, 0, geom.New(1.5, 0.5, 0.5))
	if a == b {
		t.Error("adjacent unit cells should alternate color")
	}
}

func TestNoiseValueInUnitRange(t *testing.T) {
	n := NewNoise(rng.New(1, 0), 4)
	for _, p := range []geom.Point3{
		geom.New(0, 0, 0),
		geom.New(1.5, -2.25, 7),
		geom.New(-100, 50, -3),
	} {
		c := n.Value(0, 0, p)
		if c.X < 0 || c.X > 1 {
			t.Errorf("noise value out of [0,1]: %v at %v", c.X, p)
		}
	}
}

func TestImageSamplesNearestTexel(t *testing.T) {
	// 2x1 image: left texel red, right texel green.
	pix := []byte{255, 0, 0, 0, 255, 0}
	img := NewImage(pix, 2, 1)
	left := img.Value(0.1, 0.5, geom.Point3{})
	right := img.Value(0.9, 0.5, geom.Point3{})
	if left.X < 0.9 || left.Y > 0.1 {
		t.Errorf("expected left texel to be red, got %+v", left)
	}
	if right.Y < 0.9 || right.X > 0.1 {
		t.Errorf("expected right texel to be green, got %+v", right)
	}
}

func TestImageClampsOutOfRangeUV(t *testing.T) {
	pix := []byte{10, 20, 30}
	img := NewImage(pix, 1, 1)
	c := img.Value(5, -3, geom.Point3{})
	if c.X*255 != 10 || c.Y*255 != 20 || c.Z*255 != 30 {
		t.Errorf("expected clamped UV to sample the only texel, got %+v", c)
	}
}

func TestNewImageOrFallbackOnNilPix(t *testing.T) {
	tx := NewImageOrFallback(nil, 0, 0, "missing.png")
	c := tx.Value(0, 0, geom.Point3{})
	if c.X != 0 || c.Y != 1 || c.Z != 1 {
		t.Errorf("expected cyan fallback, got %+v", c)
	}
}
