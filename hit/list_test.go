// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

package hit

import (
	"testing"

	"github.com/lucent-labs/pathtrace/math/geom"
)

// fixedHittable is a trivial stand-in used to exercise List without
// depending on any real primitive package.
type fixedHittable struct {
	t   float64
	box geom.AABB
}

func (f fixedHittable) Hit(r geom.Ray, rayT geom.Interval, rnd Rand) (Record, bool) {
	if !rayT.Surrounds(f.t) {
		return Record{}, false
	}
	return Record{T: f.t, P: r.At(f.t)}, true
}

func (f fixedHittable) BoundingBox() geom.AABB { return f.box }

func TestListReturnsClosestHit(t *testing.T) {
	l := NewList()
	l.Add(fixedHittable{t: 5})
	l.Add(fixedHittable{t: 2})
	l.Add(fixedHittable{t: 8})

	r := geom.NewRay(geom.New(0, 0, 0), geom.New(0, 0, -1), 0)
	rec, ok := l.Hit(r, geom.NewInterval(0.001, geom.Universe.Max), nil)
	if !ok {
		t.Fatal("expected a hit")
	}
	if rec.T != 2 {
		t.Errorf("expected closest hit t=2, got %v", rec.T)
	}
}

func TestListMissesWhenIntervalExcludesAll(t *testing.T) {
	l := NewList()
	l.Add(fixedHittable{t: 5})
	r := geom.NewRay(geom.New(0, 0, 0), geom.New(0, 0, -1), 0)
	if _, ok := l.Hit(r, geom.NewInterval(0.001, 1), nil); ok {
		t.Error("expected no hit when interval excludes the only object")
	}
}
