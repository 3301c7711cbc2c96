// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package prim implements the concrete hit.Hittable primitives: spheres
// (stationary or moving, for motion blur), triangles (flat or
// smooth-shaded via Möller–Trumbore), and parallelogram quads.
package prim

import (
	"math"

	"github.com/lucent-labs/pathtrace/hit"
	"github.com/lucent-labs/pathtrace/math/geom"
)

// Sphere is a stationary or linearly-moving sphere. A moving sphere's
// center travels from Center0 at time 0 to Center1 at time 1.
type Sphere struct {
	Center0, Center1 geom.Point3
	Radius           float64
	Mat              hit.Material
	moving           bool
	box              geom.AABB
}

// NewSphere builds a stationary sphere. Radius is clamped to >= 0.
func NewSphere(center geom.Point3, radius float64, mat hit.Material) *Sphere {
	radius = math.Max(0, radius)
	rvec := geom.New(radius, radius, radius)
	return &Sphere{
		Center0: center,
		Center1: center,
		Radius:  radius,
		Mat:     mat,
		box:     geom.AABBFromPoints(center.Sub(rvec), center.Add(rvec)),
	}
}

// NewMovingSphere builds a sphere whose center travels linearly from
// center0 to center1 as ray time goes from 0 to 1, for motion blur.
func NewMovingSphere(center0, center1 geom.Point3, radius float64, mat hit.Material) *Sphere {
	radius = math.Max(0, radius)
	rvec := geom.New(radius, radius, radius)
	box0 := geom.AABBFromPoints(center0.Sub(rvec), center0.Add(rvec))
	box1 := geom.AABBFromPoints(center1.Sub(rvec), center1.Add(rvec))
	return &Sphere{
		Center0: center0,
		Center1: center1,
		Radius:  radius,
		Mat:     mat,
		moving:  true,
		box:     geom.Union(box0, box1),
	}
}

func (s *Sphere) centerAt(t float64) geom.Point3 {
	if !s.moving {
		return s.Center0
	}
	return s.Center0.Add(s.Center1.Sub(s.Center0).Mul(t))
}

// Hit implements hit.Hittable via the quadratic ray-sphere intersection.
func (s *Sphere) Hit(r geom.Ray, rayT geom.Interval, rnd hit.Rand) (hit.Record, bool) {
	center := s.centerAt(r.Time)
	oc := center.Sub(r.Origin)
	a := r.Dir.LenSqr()
	h := r.Dir.Dot(oc)
	c := oc.LenSqr() - s.Radius*s.Radius
	discriminant := h*h - a*c
	if discriminant < 0 {
		return hit.Record{}, false
	}
	sqrtd := math.Sqrt(discriminant)

	root := (h - sqrtd) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtd) / a
		if !rayT.Surrounds(root) {
			return hit.Record{}, false
		}
	}

	var rec hit.Record
	rec.T = root
	rec.P = r.At(rec.T)
	outward := rec.P.Sub(center).Div(s.Radius)
	rec.SetFaceNormal(r, outward)
	rec.U, rec.V = sphereUV(outward)
	rec.Mat = s.Mat
	return rec, true
}

// sphereUV maps a unit outward normal to spherical (u,v) texture
// coordinates.
func sphereUV(p geom.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

// BoundingBox implements hit.Hittable.
func (s *Sphere) BoundingBox() geom.AABB { return s.box }
