// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package medium adapts a convex boundary hit.Hittable into a
// constant-density participating medium (smoke, fog, clouds), grounded
// on original_source's constant_medium.
package medium

import (
	"math"

	"github.com/lucent-labs/pathtrace/hit"
	"github.com/lucent-labs/pathtrace/material"
	"github.com/lucent-labs/pathtrace/math/geom"
	"github.com/lucent-labs/pathtrace/texture"
)

// ConstantMedium wraps a convex boundary and probabilistically scatters
// rays that pass through it, proportional to boundary path length and
// density.
type ConstantMedium struct {
	Boundary      hit.Hittable
	NegInvDensity float64
	Phase         hit.Material
}

// New builds a ConstantMedium with a constant-albedo isotropic phase
// function.
func New(boundary hit.Hittable, density float64, albedo geom.Color) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1 / density,
		Phase:         material.NewIsotropic(albedo),
	}
}

// NewTex builds a ConstantMedium with an isotropic phase function backed
// by an arbitrary texture.
func NewTex(boundary hit.Hittable, density float64, tex texture.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1 / density,
		Phase:         material.NewIsotropicTex(tex),
	}
}

// Hit implements hit.Hittable: find the ray's entry and exit through the
// boundary, then stochastically decide whether the ray scatters inside
// before reaching the exit. rnd must not be nil.
func (c *ConstantMedium) Hit(r geom.Ray, rayT geom.Interval, rnd hit.Rand) (hit.Record, bool) {
	rec1, ok := c.Boundary.Hit(r, geom.Universe, rnd)
	if !ok {
		return hit.Record{}, false
	}
	rec2, ok := c.Boundary.Hit(r, geom.NewInterval(rec1.T+0.0001, math.Inf(1)), rnd)
	if !ok {
		return hit.Record{}, false
	}

	t1, t2 := rec1.T, rec2.T
	if t1 < rayT.Min {
		t1 = rayT.Min
	}
	if t2 > rayT.Max {
		t2 = rayT.Max
	}
	if t1 >= t2 {
		return hit.Record{}, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := r.Dir.Len()
	distanceInside := (t2 - t1) * rayLength
	hitDistance := c.NegInvDensity * math.Log(rnd.Float64())
	if hitDistance > distanceInside {
		return hit.Record{}, false
	}

	var rec hit.Record
	rec.T = t1 + hitDistance/rayLength
	rec.P = r.At(rec.T)
	rec.Normal = geom.New(1, 0, 0)
	rec.FrontFace = true
	rec.Mat = c.Phase
	return rec, true
}

// BoundingBox implements hit.Hittable.
func (c *ConstantMedium) BoundingBox() geom.AABB { return c.Boundary.BoundingBox() }
