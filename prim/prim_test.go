// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

package prim

import (
	"testing"

	"github.com/lucent-labs/pathtrace/hit"
	"github.com/lucent-labs/pathtrace/math/geom"
)

type nilMaterial struct{}

func (nilMaterial) Scatter(geom.Ray, hit.Record, hit.Rand) (geom.Color, geom.Ray, bool) {
	return geom.Color{}, geom.Ray{}, false
}
func (nilMaterial) Emitted(u, v float64, p geom.Point3) geom.Color { return geom.Color{} }

func TestSphereHitFromOutside(t *testing.T) {
	s := NewSphere(geom.New(0, 0, -1), 0.5, nilMaterial{})
	r := geom.NewRay(geom.New(0, 0, 0), geom.New(0, 0, -1), 0)
	rec, ok := s.Hit(r, geom.NewInterval(0.001, geom.Universe.Max), nil)
	if !ok {
		t.Fatal("expected a hit")
	}
	if rec.T <= 0 || !rec.FrontFace {
		t.Errorf("expected a positive, front-facing hit, got %+v", rec)
	}
	if rec.Normal.Dot(r.Dir) >= 0 {
		t.Error("normal must oppose ray direction")
	}
}

func TestSphereMissesWhenRayPointsAway(t *testing.T) {
	s := NewSphere(geom.New(0, 0, -1), 0.5, nilMaterial{})
	r := geom.NewRay(geom.New(0, 0, 0), geom.New(0, 0, 1), 0)
	if _, ok := s.Hit(r, geom.NewInterval(0.001, geom.Universe.Max), nil); ok {
		t.Error("expected a miss")
	}
}

func TestMovingSphereCenterTracksTime(t *testing.T) {
	s := NewMovingSphere(geom.New(0, 0, -1), geom.New(0, 2, -1), 0.5, nilMaterial{})
	if c := s.centerAt(0); c != (geom.New(0, 0, -1)) {
		t.Errorf("expected center at t=0 to be Center0, got %+v", c)
	}
	if c := s.centerAt(1); c != (geom.New(0, 2, -1)) {
		t.Errorf("expected center at t=1 to be Center1, got %+v", c)
	}
}

func TestSphereBoundingBoxOfMovingSphereSpansBothEndpoints(t *testing.T) {
	s := NewMovingSphere(geom.New(0, 0, 0), geom.New(0, 10, 0), 1, nilMaterial{})
	box := s.BoundingBox()
	if !box.Y.Contains(0) || !box.Y.Contains(11) {
		t.Errorf("expected union box spanning both endpoints, got %+v", box.Y)
	}
}

func TestTriangleHitInsideBarycentricRange(t *testing.T) {
	tri := NewTriangle(geom.New(-1, -1, -1), geom.New(1, -1, -1), geom.New(0, 1, -1), nilMaterial{})
	r := geom.NewRay(geom.New(0, -0.5, 0), geom.New(0, 0, -1), 0)
	rec, ok := tri.Hit(r, geom.NewInterval(0.001, geom.Universe.Max), nil)
	if !ok {
		t.Fatal("expected a hit through the triangle interior")
	}
	if rec.U < 0 || rec.V < 0 || rec.U+rec.V > 1 {
		t.Errorf("barycentric coordinates out of range: u=%v v=%v", rec.U, rec.V)
	}
}

func TestTriangleMissesOutsideEdges(t *testing.T) {
	tri := NewTriangle(geom.New(-1, -1, -1), geom.New(1, -1, -1), geom.New(0, 1, -1), nilMaterial{})
	r := geom.NewRay(geom.New(5, 5, 0), geom.New(0, 0, -1), 0)
	if _, ok := tri.Hit(r, geom.NewInterval(0.001, geom.Universe.Max), nil); ok {
		t.Error("expected a miss outside the triangle")
	}
}

func TestSmoothTriangleInterpolatesNormal(t *testing.T) {
	tri := NewSmoothTriangle(
		geom.New(-1, -1, -1), geom.New(1, -1, -1), geom.New(0, 1, -1),
		geom.New(0, 0, 1), geom.New(0, 0, 1), geom.New(1, 0, 0),
		nilMaterial{},
	)
	r := geom.NewRay(geom.New(0, -0.9, 0), geom.New(0, 0, -1), 0)
	rec, ok := tri.Hit(r, geom.NewInterval(0.001, geom.Universe.Max), nil)
	if !ok {
		t.Fatal("expected a hit")
	}
	if fl := tri.faceNormal; rec.Normal == fl || rec.Normal == fl.Neg() {
		t.Error("smooth triangle should not report the flat face normal near a skewed vertex")
	}
}

func TestQuadHitWithinBounds(t *testing.T) {
	q := NewQuad(geom.New(-1, -1, -2), geom.New(2, 0, 0), geom.New(0, 2, 0), nilMaterial{})
	r := geom.NewRay(geom.New(0, 0, 0), geom.New(0, 0, -1), 0)
	rec, ok := q.Hit(r, geom.NewInterval(0.001, geom.Universe.Max), nil)
	if !ok {
		t.Fatal("expected a hit through the quad interior")
	}
	if rec.U < 0 || rec.U > 1 || rec.V < 0 || rec.V > 1 {
		t.Errorf("planar UV out of range: %v %v", rec.U, rec.V)
	}
}

func TestQuadMissesBeyondEdge(t *testing.T) {
	q := NewQuad(geom.New(-1, -1, -2), geom.New(2, 0, 0), geom.New(0, 2, 0), nilMaterial{})
	r := geom.NewRay(geom.New(10, 10, 0), geom.New(0, 0, -1), 0)
	if _, ok := q.Hit(r, geom.NewInterval(0.001, geom.Universe.Max), nil); ok {
		t.Error("expected a miss beyond the quad's edge")
	}
}
