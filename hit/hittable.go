// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package hit defines the polymorphic intersection protocol shared by
// every primitive, aggregate, and volume in the scene: any object that
// can answer "does this ray hit me, and what's my bounding box".
package hit

import (
	"github.com/lucent-labs/pathtrace/math/geom"
)

// Material is the BSDF contract a surface hit is resolved against. It
// lives here, rather than in package material, so that Hittable
// implementations (prim, bvh, medium) can depend only on hit — package
// material depends on hit, not the other way around.
type Material interface {
	// Scatter samples an outgoing ray given an incoming ray and a hit
	// record. ok is false if the material absorbs instead of scattering
	// (e.g. a light).
	Scatter(rIn geom.Ray, rec Record, rnd Rand) (attenuation geom.Color, scattered geom.Ray, ok bool)
	// Emitted returns the radiance a surface emits at (u,v,p). Most
	// materials emit black.
	Emitted(u, v float64, p geom.Point3) geom.Color
}

// Rand is the minimal random-source contract materials need to sample a
// scatter direction, satisfied by *rng.Source. Declared here instead of
// depending on package rng directly, keeping hit a leaf package.
type Rand interface {
	Float64() float64
	UnitSphereDirection() geom.Vec3
	UnitSphere() geom.Vec3
}

// Record is filled in by a successful Hit. The stored normal always
// opposes the ray direction (dot(ray.Dir, Normal) <= 0); FrontFace records
// which side of the surface was actually struck.
type Record struct {
	P         geom.Point3
	Normal    geom.Vec3
	Mat       Material
	T         float64
	U, V      float64
	FrontFace bool
}

// SetFaceNormal orients Normal to oppose the ray and records which side of
// the surface the ray struck. outward must already be unit length.
func (rec *Record) SetFaceNormal(r geom.Ray, outward geom.Vec3) {
	rec.FrontFace = r.Dir.Dot(outward) < 0
	if rec.FrontFace {
		rec.Normal = outward
	} else {
		rec.Normal = outward.Neg()
	}
}

// Hittable is any scene element a ray can intersect: primitives,
// aggregates (lists, BVH nodes) and volumes alike. rnd is the calling
// goroutine's private random source; every primitive ignores it, but
// ConstantMedium needs a uniform draw to sample a scatter distance and
// threading it through Hit keeps that draw on the same deterministic
// per-worker stream as everything else, rather than reaching for a
// process-global generator.
type Hittable interface {
	// Hit returns the closest intersection whose T lies strictly inside
	// rayT, or ok=false if there is none.
	Hit(r geom.Ray, rayT geom.Interval, rnd Rand) (rec Record, ok bool)
	// BoundingBox returns the object's axis-aligned bounding box.
	BoundingBox() geom.AABB
}
