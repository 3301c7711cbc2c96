// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import "testing"

// TestUnionContainsBoth checks invariant 2: union(a,b) contains every
// point in a ∪ b, componentwise, by checking both source boxes' corners.
func TestUnionContainsBoth(t *testing.T) {
	a := AABBFromPoints(New(0, 0, 0), New(1, 1, 1))
	b := AABBFromPoints(New(2, -1, 0.5), New(3, 2, 4))
	u := Union(a, b)

	if u.X.Min > minf(a.X.Min, b.X.Min) || u.X.Max < maxf(a.X.Max, b.X.Max) {
		t.Errorf("union X interval %v does not surround inputs", u.X)
	}
	if u.Y.Min > minf(a.Y.Min, b.Y.Min) || u.Y.Max < maxf(a.Y.Max, b.Y.Max) {
		t.Errorf("union Y interval %v does not surround inputs", u.Y)
	}
	if u.Z.Min > minf(a.Z.Min, b.Z.Min) || u.Z.Max < maxf(a.Z.Max, b.Z.Max) {
		t.Errorf("union Z interval %v does not surround inputs", u.Z)
	}
}

func TestPaddingOfFlatBox(t *testing.T) {
	flat := AABBFromPoints(New(0, 0, 0), New(1, 0, 1))
	if flat.Y.Size() <= 0 {
		t.Errorf("expected a flat box to be padded to a non-degenerate extent, got size %v", flat.Y.Size())
	}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
