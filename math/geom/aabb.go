// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

// aabbPad is the minimum half-width (delta) applied to any axis whose
// extent would otherwise be degenerate, so planar primitives (quads,
// axis-aligned triangles) still produce a bounding box the BVH slab test
// can use.
const aabbPad = 1e-4

// AABB is an axis-aligned bounding box: one Interval per axis.
type AABB struct {
	X, Y, Z Interval
}

// NewAABB builds an AABB from per-axis intervals, padding any axis whose
// extent is smaller than 2*aabbPad.
func NewAABB(x, y, z Interval) AABB {
	ab := AABB{X: x, Y: y, Z: z}
	return ab.padded()
}

// EmptyAABB returns the AABB that contains no points, the identity for Union.
func EmptyAABB() AABB { return AABB{X: Empty, Y: Empty, Z: Empty} }

// AABBFromPoints builds the AABB spanning two corner points.
func AABBFromPoints(a, b Point3) AABB {
	x := Interval{min(a.X, b.X), max(a.X, b.X)}
	y := Interval{min(a.Y, b.Y), max(a.Y, b.Y)}
	z := Interval{min(a.Z, b.Z), max(a.Z, b.Z)}
	return NewAABB(x, y, z)
}

func (ab AABB) padded() AABB {
	const minExtent = 2 * aabbPad
	if ab.X.Size() < minExtent {
		ab.X = ab.X.Expand(minExtent)
	}
	if ab.Y.Size() < minExtent {
		ab.Y = ab.Y.Expand(minExtent)
	}
	if ab.Z.Size() < minExtent {
		ab.Z = ab.Z.Expand(minExtent)
	}
	return ab
}

// Axis returns the interval for axis 0 (X), 1 (Y), or 2 (Z).
func (ab AABB) Axis(n int) Interval {
	switch n {
	case 0:
		return ab.X
	case 1:
		return ab.Y
	default:
		return ab.Z
	}
}

// Union returns the smallest AABB containing both a and b.
func Union(a, b AABB) AABB {
	return AABB{
		X: Interval{min(a.X.Min, b.X.Min), max(a.X.Max, b.X.Max)},
		Y: Interval{min(a.Y.Min, b.Y.Min), max(a.Y.Max, b.Y.Max)},
		Z: Interval{min(a.Z.Min, b.Z.Min), max(a.Z.Max, b.Z.Max)},
	}
}

// LongestAxis returns the index (0, 1 or 2) of the axis with the largest
// extent, used by BVH construction to choose a split axis.
func (ab AABB) LongestAxis() int {
	sx, sy, sz := ab.X.Size(), ab.Y.Size(), ab.Z.Size()
	switch {
	case sx > sy && sx > sz:
		return 0
	case sy > sz:
		return 1
	default:
		return 2
	}
}

// Hit tests the ray against the box over ray_t using the slab method,
// tightening ray_t as each axis is tested.
func (ab AABB) Hit(r Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		iv := ab.Axis(axis)
		var origin, dir float64
		switch axis {
		case 0:
			origin, dir = r.Origin.X, r.Dir.X
		case 1:
			origin, dir = r.Origin.Y, r.Dir.Y
		default:
			origin, dir = r.Origin.Z, r.Dir.Z
		}
		invD := 1 / dir
		t0 := (iv.Min - origin) * invD
		t1 := (iv.Max - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}
		if rayT.Max <= rayT.Min {
			return false
		}
	}
	return true
}
