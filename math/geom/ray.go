// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

// Ray is a half-line (origin, direction) carrying an emission time used for
// motion blur. Direction is not required to be unit length.
type Ray struct {
	Origin Point3
	Dir    Vec3
	Time   float64
}

// NewRay builds a ray at the given time.
func NewRay(origin Point3, dir Vec3, time float64) Ray {
	return Ray{Origin: origin, Dir: dir, Time: time}
}

// At returns the point origin + t*direction.
func (r Ray) At(t float64) Point3 {
	return r.Origin.Add(r.Dir.Mul(t))
}
