// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

package hit

import "github.com/lucent-labs/pathtrace/math/geom"

// List is an owning, ordered collection of Hittables that itself
// satisfies Hittable, maintaining the union of its members' boxes. It is
// the flat aggregate bvh.Node is built from.
type List struct {
	Objects []Hittable
	box     geom.AABB
	boxSet  bool
}

// NewList builds an empty list.
func NewList() *List { return &List{} }

// Add appends h to the list, growing the cached union box.
func (l *List) Add(h Hittable) {
	l.Objects = append(l.Objects, h)
	if l.boxSet {
		l.box = geom.Union(l.box, h.BoundingBox())
	} else {
		l.box = h.BoundingBox()
		l.boxSet = true
	}
}

// Hit returns the closest hit among all members whose T lies in rayT.
func (l *List) Hit(r geom.Ray, rayT geom.Interval, rnd Rand) (Record, bool) {
	var closest Record
	hitAnything := false
	closestSoFar := rayT.Max
	for _, obj := range l.Objects {
		if rec, ok := obj.Hit(r, geom.NewInterval(rayT.Min, closestSoFar), rnd); ok {
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}
	return closest, hitAnything
}

// BoundingBox returns the union box of every member.
func (l *List) BoundingBox() geom.AABB { return l.box }
