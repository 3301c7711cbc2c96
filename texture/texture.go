// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package texture provides the (u,v,p) -> Color sampling abstraction
// used by materials: solid color, a 3D checker, a decoded-image sampler,
// and a Perlin-noise marble pattern.
package texture

import (
	"math"

	"github.com/lucent-labs/pathtrace/math/geom"
)

// Texture maps a surface coordinate and world point to a color.
type Texture interface {
	Value(u, v float64, p geom.Point3) geom.Color
}

// Solid is a constant-color texture.
type Solid struct {
	Albedo geom.Color
}

// NewSolid builds a Solid texture from RGB components.
func NewSolid(r, g, b float64) *Solid { return &Solid{Albedo: geom.New(r, g, b)} }

// Value implements Texture.
func (s *Solid) Value(u, v float64, p geom.Point3) geom.Color { return s.Albedo }

// Checker alternates between two textures based on the parity of the
// floor of p scaled by 1/scale on each axis, producing a 3D checkerboard
// independent of the surface being sampled.
type Checker struct {
	InvScale  float64
	Even, Odd Texture
}

// NewChecker builds a Checker texture from two solid colors.
func NewChecker(scale float64, even, odd geom.Color) *Checker {
	return &Checker{InvScale: 1 / scale, Even: &Solid{Albedo: even}, Odd: &Solid{Albedo: odd}}
}

// NewCheckerTex builds a Checker texture from two arbitrary sub-textures.
func NewCheckerTex(scale float64, even, odd Texture) *Checker {
	return &Checker{InvScale: 1 / scale, Even: even, Odd: odd}
}

// Value implements Texture.
func (c *Checker) Value(u, v float64, p geom.Point3) geom.Color {
	x := int(math.Floor(p.X * c.InvScale))
	y := int(math.Floor(p.Y * c.InvScale))
	z := int(math.Floor(p.Z * c.InvScale))
	if (x+y+z)%2 == 0 {
		return c.Even.Value(u, v, p)
	}
	return c.Odd.Value(u, v, p)
}
