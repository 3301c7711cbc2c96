// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

package prim

import (
	"math"

	"github.com/lucent-labs/pathtrace/hit"
	"github.com/lucent-labs/pathtrace/math/geom"
)

const triangleEpsilon = 1e-8

// Triangle is a three-vertex flat or smooth-shaded triangle. Smooth
// shading interpolates per-vertex normals N0..N2 by barycentric weight
// instead of using the flat face normal.
type Triangle struct {
	V0, V1, V2 geom.Point3
	N0, N1, N2 geom.Vec3
	Smooth     bool
	Mat        hit.Material
	faceNormal geom.Vec3
	box        geom.AABB
}

// NewTriangle builds a flat-shaded triangle.
func NewTriangle(v0, v1, v2 geom.Point3, mat hit.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Mat: mat}
	t.faceNormal = v1.Sub(v0).Cross(v2.Sub(v0)).Unit()
	t.box = triangleBox(v0, v1, v2)
	return t
}

// NewSmoothTriangle builds a triangle that interpolates per-vertex
// normals n0, n1, n2 for shading instead of using the flat face normal.
func NewSmoothTriangle(v0, v1, v2 geom.Point3, n0, n1, n2 geom.Vec3, mat hit.Material) *Triangle {
	t := NewTriangle(v0, v1, v2, mat)
	t.N0, t.N1, t.N2 = n0, n1, n2
	t.Smooth = true
	return t
}

func triangleBox(v0, v1, v2 geom.Point3) geom.AABB {
	minP := geom.New(
		math.Min(math.Min(v0.X, v1.X), v2.X),
		math.Min(math.Min(v0.Y, v1.Y), v2.Y),
		math.Min(math.Min(v0.Z, v1.Z), v2.Z),
	)
	maxP := geom.New(
		math.Max(math.Max(v0.X, v1.X), v2.X),
		math.Max(math.Max(v0.Y, v1.Y), v2.Y),
		math.Max(math.Max(v0.Z, v1.Z), v2.Z),
	)
	return geom.AABBFromPoints(minP, maxP)
}

// Hit implements hit.Hittable via Möller–Trumbore.
func (t *Triangle) Hit(r geom.Ray, rayT geom.Interval, rnd hit.Rand) (hit.Record, bool) {
	edge1 := t.V1.Sub(t.V0)
	edge2 := t.V2.Sub(t.V0)
	h := r.Dir.Cross(edge2)
	a := edge1.Dot(h)
	if a > -triangleEpsilon && a < triangleEpsilon {
		return hit.Record{}, false
	}

	f := 1.0 / a
	s := r.Origin.Sub(t.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return hit.Record{}, false
	}

	q := s.Cross(edge1)
	v := f * r.Dir.Dot(q)
	if v < 0 || u+v > 1 {
		return hit.Record{}, false
	}

	tHit := f * edge2.Dot(q)
	if !rayT.Surrounds(tHit) {
		return hit.Record{}, false
	}

	var rec hit.Record
	rec.T = tHit
	rec.P = r.At(tHit)
	outward := t.faceNormal
	if t.Smooth {
		w := 1 - u - v
		outward = t.N0.Mul(w).Add(t.N1.Mul(u)).Add(t.N2.Mul(v)).Unit()
	}
	rec.SetFaceNormal(r, outward)
	rec.U, rec.V = u, v
	rec.Mat = t.Mat
	return rec, true
}

// BoundingBox implements hit.Hittable.
func (t *Triangle) BoundingBox() geom.AABB { return t.box }
