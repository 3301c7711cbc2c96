// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package geom provides the 3-component vector, ray, interval and AABB
// algebra shared by every piece of the rendering core. It plays the role
// math/lin plays for the rest of the pack, but favours value semantics:
// renderer hot loops build and discard millions of short-lived vectors, so
// returning new values (rather than mutating a receiver as math/lin.V3
// does) keeps call sites readable without giving up escape-analysis-backed
// stack allocation.
package geom

import "math"

// Epsilon is used to distinguish when a float is close enough to a number.
const Epsilon = 1e-8

// Vec3 is a 3 element vector of doubles. Point3 and Color are semantic
// aliases used where the domain, not the representation, differs.
type Vec3 struct {
	X, Y, Z float64
}

// Point3 is a Vec3 used as a position.
type Point3 = Vec3

// Color is a Vec3 used as a linear RGB triple.
type Color = Vec3

// New builds a Vec3 from components.
func New(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Add returns v+a.
func (v Vec3) Add(a Vec3) Vec3 { return Vec3{v.X + a.X, v.Y + a.Y, v.Z + a.Z} }

// Sub returns v-a.
func (v Vec3) Sub(a Vec3) Vec3 { return Vec3{v.X - a.X, v.Y - a.Y, v.Z - a.Z} }

// Mul returns v scaled by s.
func (v Vec3) Mul(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// MulVec returns the componentwise product of v and a.
func (v Vec3) MulVec(a Vec3) Vec3 { return Vec3{v.X * a.X, v.Y * a.Y, v.Z * a.Z} }

// Div returns v scaled by 1/s.
func (v Vec3) Div(s float64) Vec3 { return v.Mul(1 / s) }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns v . a.
func (v Vec3) Dot(a Vec3) float64 { return v.X*a.X + v.Y*a.Y + v.Z*a.Z }

// Cross returns v x a.
func (v Vec3) Cross(a Vec3) Vec3 {
	return Vec3{
		v.Y*a.Z - v.Z*a.Y,
		v.Z*a.X - v.X*a.Z,
		v.X*a.Y - v.Y*a.X,
	}
}

// LenSqr returns the squared length of v.
func (v Vec3) LenSqr() float64 { return v.Dot(v) }

// Len returns the length of v.
func (v Vec3) Len() float64 { return math.Sqrt(v.LenSqr()) }

// Unit returns v scaled to length 1. The zero vector is returned unchanged.
func (v Vec3) Unit() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Div(l)
}

// NearZero reports whether all components of v are close to zero, used to
// catch degenerate Lambertian scatter directions.
func (v Vec3) NearZero() bool {
	const s = 1e-8
	return math.Abs(v.X) < s && math.Abs(v.Y) < s && math.Abs(v.Z) < s
}

// Lerp linearly interpolates between v and a by t.
func (v Vec3) Lerp(a Vec3, t float64) Vec3 { return v.Mul(1 - t).Add(a.Mul(t)) }

// Reflect returns v reflected about unit normal n.
func Reflect(v, n Vec3) Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Refract returns the refraction of unit vector uv across unit normal n
// with relative index of refraction etaiOverEtat, following Snell's law.
func Refract(uv, n Vec3, etaiOverEtat float64) Vec3 {
	cosTheta := math.Min(uv.Neg().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Mul(cosTheta)).Mul(etaiOverEtat)
	rOutParallel := n.Mul(-math.Sqrt(math.Abs(1.0 - rOutPerp.LenSqr())))
	return rOutPerp.Add(rOutParallel)
}
