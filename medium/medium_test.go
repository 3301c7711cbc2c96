// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

package medium

import (
	"math"
	"testing"

	"github.com/lucent-labs/pathtrace/hit"
	"github.com/lucent-labs/pathtrace/math/geom"
	"github.com/lucent-labs/pathtrace/rng"
)

type sphereBoundary struct {
	center geom.Point3
	radius float64
}

func (s sphereBoundary) Hit(r geom.Ray, rayT geom.Interval, rnd hit.Rand) (hit.Record, bool) {
	oc := s.center.Sub(r.Origin)
	a := r.Dir.LenSqr()
	h := r.Dir.Dot(oc)
	c := oc.LenSqr() - s.radius*s.radius
	disc := h*h - a*c
	if disc < 0 {
		return hit.Record{}, false
	}
	sqrtd := math.Sqrt(disc)
	root := (h - sqrtd) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtd) / a
		if !rayT.Surrounds(root) {
			return hit.Record{}, false
		}
	}
	return hit.Record{T: root, P: r.At(root)}, true
}

func (s sphereBoundary) BoundingBox() geom.AABB {
	rvec := geom.New(s.radius, s.radius, s.radius)
	return geom.AABBFromPoints(s.center.Sub(rvec), s.center.Add(rvec))
}

func TestConstantMediumMissesOutsideBoundary(t *testing.T) {
	boundary := sphereBoundary{center: geom.New(0, 0, 0), radius: 1}
	m := New(boundary, 1, geom.New(1, 1, 1))
	r := geom.NewRay(geom.New(10, 10, 10), geom.New(1, 0, 0), 0)
	if _, ok := m.Hit(r, geom.NewInterval(0.001, geom.Universe.Max), rng.New(1, 0)); ok {
		t.Error("expected no hit when the ray never enters the boundary")
	}
}

func TestConstantMediumHighDensityAlwaysScatters(t *testing.T) {
	boundary := sphereBoundary{center: geom.New(0, 0, 0), radius: 1}
	m := New(boundary, 1e6, geom.New(1, 1, 1))
	r := geom.NewRay(geom.New(-5, 0, 0), geom.New(1, 0, 0), 0)
	rnd := rng.New(1, 0)
	for i := 0; i < 20; i++ {
		rec, ok := m.Hit(r, geom.NewInterval(0.001, geom.Universe.Max), rnd)
		if !ok {
			t.Fatal("expected a hit with very high density")
		}
		if !rec.FrontFace {
			t.Error("constant medium hits are always reported as front-face")
		}
	}
}

func TestConstantMediumBoundingBoxMatchesBoundary(t *testing.T) {
	boundary := sphereBoundary{center: geom.New(1, 2, 3), radius: 2}
	m := New(boundary, 1, geom.New(1, 1, 1))
	if m.BoundingBox() != boundary.BoundingBox() {
		t.Error("expected bounding box to match the wrapped boundary")
	}
}
