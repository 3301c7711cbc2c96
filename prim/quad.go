// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

package prim

import (
	"math"

	"github.com/lucent-labs/pathtrace/hit"
	"github.com/lucent-labs/pathtrace/math/geom"
)

// Quad is a parallelogram spanned by edge vectors U, V from corner Q.
// Normal, plane offset D, and the barycentric-recovery vector W are
// precomputed at construction.
type Quad struct {
	Q, U, V geom.Point3
	Mat     hit.Material
	normal  geom.Vec3
	d       float64
	w       geom.Vec3
	box     geom.AABB
}

// NewQuad builds a quad from a corner q and two edge vectors u, v.
func NewQuad(q, u, v geom.Point3, mat hit.Material) *Quad {
	n := u.Cross(v)
	normal := n.Unit()
	return &Quad{
		Q: q, U: u, V: v, Mat: mat,
		normal: normal,
		d:      normal.Dot(q),
		w:      n.Div(n.Dot(n)),
		box:    quadBox(q, u, v),
	}
}

func quadBox(q, u, v geom.Point3) geom.AABB {
	box1 := geom.AABBFromPoints(q, q.Add(u).Add(v))
	box2 := geom.AABBFromPoints(q.Add(u), q.Add(v))
	return geom.Union(box1, box2)
}

// Hit implements hit.Hittable: plane intersection followed by a
// barycentric in-bounds test in the quad's own (u,v) coordinate frame.
func (quad *Quad) Hit(r geom.Ray, rayT geom.Interval, rnd hit.Rand) (hit.Record, bool) {
	denom := quad.normal.Dot(r.Dir)
	if math.Abs(denom) < 1e-8 {
		return hit.Record{}, false
	}

	t := (quad.d - quad.normal.Dot(r.Origin)) / denom
	if !rayT.Surrounds(t) {
		return hit.Record{}, false
	}

	p := r.At(t)
	planar := p.Sub(quad.Q)
	alpha := quad.w.Dot(planar.Cross(quad.V))
	beta := quad.w.Dot(quad.U.Cross(planar))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return hit.Record{}, false
	}

	var rec hit.Record
	rec.T = t
	rec.P = p
	rec.U, rec.V = alpha, beta
	rec.Mat = quad.Mat
	rec.SetFaceNormal(r, quad.normal)
	return rec, true
}

// BoundingBox implements hit.Hittable.
func (quad *Quad) BoundingBox() geom.AABB { return quad.box }
