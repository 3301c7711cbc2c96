// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package material implements the BSDF variants the radiance estimator
// resolves a hit.Record against: Lambertian diffuse, Metal, Dielectric,
// DiffuseLight, and Isotropic, each satisfying hit.Material structurally.
package material

import (
	"math"

	"github.com/lucent-labs/pathtrace/hit"
	"github.com/lucent-labs/pathtrace/math/geom"
	"github.com/lucent-labs/pathtrace/texture"
)

// Lambertian is an ideal diffuse surface: the scatter direction is the
// surface normal perturbed by a random unit vector, approximating a
// cosine-weighted hemisphere distribution.
type Lambertian struct {
	Tex texture.Texture
}

// NewLambertian builds a Lambertian from a constant albedo.
func NewLambertian(albedo geom.Color) *Lambertian {
	return &Lambertian{Tex: texture.NewSolid(albedo.X, albedo.Y, albedo.Z)}
}

// NewLambertianTex builds a Lambertian backed by an arbitrary texture.
func NewLambertianTex(tex texture.Texture) *Lambertian { return &Lambertian{Tex: tex} }

// Scatter implements hit.Material.
func (l *Lambertian) Scatter(rIn geom.Ray, rec hit.Record, rnd hit.Rand) (geom.Color, geom.Ray, bool) {
	dir := rec.Normal.Add(rnd.UnitSphereDirection())
	if dir.NearZero() {
		dir = rec.Normal
	}
	return l.Tex.Value(rec.U, rec.V, rec.P), geom.NewRay(rec.P, dir, rIn.Time), true
}

// Emitted implements hit.Material.
func (l *Lambertian) Emitted(u, v float64, p geom.Point3) geom.Color { return geom.Color{} }

// Metal is a reflective surface perturbed by Fuzz (clamped to [0,1]) times
// a random point in the unit sphere, producing glossy reflection.
type Metal struct {
	Albedo geom.Color
	Fuzz   float64
}

// NewMetal builds a Metal material, clamping fuzz to [0,1].
func NewMetal(albedo geom.Color, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements hit.Material.
func (m *Metal) Scatter(rIn geom.Ray, rec hit.Record, rnd hit.Rand) (geom.Color, geom.Ray, bool) {
	reflected := geom.Reflect(rIn.Dir.Unit(), rec.Normal)
	reflected = reflected.Add(rnd.UnitSphere().Mul(m.Fuzz))
	scattered := geom.NewRay(rec.P, reflected, rIn.Time)
	ok := scattered.Dir.Dot(rec.Normal) > 0
	return m.Albedo, scattered, ok
}

// Emitted implements hit.Material.
func (m *Metal) Emitted(u, v float64, p geom.Point3) geom.Color { return geom.Color{} }

// Dielectric is a refractive surface (glass, water) that stochastically
// reflects or refracts each scatter event according to Schlick's
// approximation to the Fresnel reflectance. Tint is applied multiplicatively
// on every scatter rather than per unit path length — physically
// inexact, but matches the behavior being modeled.
type Dielectric struct {
	RefractionIndex float64
	Tint            geom.Color
}

// NewDielectric builds a Dielectric with the given index of refraction and
// a white tint.
func NewDielectric(ir float64) *Dielectric {
	return &Dielectric{RefractionIndex: ir, Tint: geom.New(1, 1, 1)}
}

// NewDielectricTinted builds a Dielectric with a non-white tint.
func NewDielectricTinted(ir float64, tint geom.Color) *Dielectric {
	return &Dielectric{RefractionIndex: ir, Tint: tint}
}

// Scatter implements hit.Material.
func (d *Dielectric) Scatter(rIn geom.Ray, rec hit.Record, rnd hit.Rand) (geom.Color, geom.Ray, bool) {
	ratio := d.RefractionIndex
	if rec.FrontFace {
		ratio = 1.0 / d.RefractionIndex
	}

	unitDir := rIn.Dir.Unit()
	cosTheta := math.Min(unitDir.Neg().Dot(rec.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	var dir geom.Vec3
	if ratio*sinTheta > 1.0 || reflectance(cosTheta, ratio) > rnd.Float64() {
		dir = geom.Reflect(unitDir, rec.Normal)
	} else {
		dir = geom.Refract(unitDir, rec.Normal, ratio)
	}
	return d.Tint, geom.NewRay(rec.P, dir, rIn.Time), true
}

// Emitted implements hit.Material.
func (d *Dielectric) Emitted(u, v float64, p geom.Point3) geom.Color { return geom.Color{} }

// reflectance approximates the Fresnel reflectance via Schlick's formula.
func reflectance(cosine, refIdx float64) float64 {
	r0 := (1 - refIdx) / (1 + refIdx)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

// DiffuseLight emits Tex's value uniformly in every direction but only
// from the side the surface normal points toward — back faces are dark,
// matching the diffuse_light convention rather than emissive's
// orientation-independent glow.
type DiffuseLight struct {
	Tex texture.Texture
}

// NewDiffuseLight builds a DiffuseLight from a constant emitted color.
func NewDiffuseLight(c geom.Color) *DiffuseLight {
	return &DiffuseLight{Tex: texture.NewSolid(c.X, c.Y, c.Z)}
}

// NewDiffuseLightTex builds a DiffuseLight backed by an arbitrary texture.
func NewDiffuseLightTex(tex texture.Texture) *DiffuseLight { return &DiffuseLight{Tex: tex} }

// Scatter implements hit.Material: a light never scatters.
func (d *DiffuseLight) Scatter(rIn geom.Ray, rec hit.Record, rnd hit.Rand) (geom.Color, geom.Ray, bool) {
	return geom.Color{}, geom.Ray{}, false
}

// Emitted implements hit.Material. The estimator only calls Emitted for
// front-face hits (the diffuse_light convention: back faces are dark), so
// this need not re-check orientation itself.
func (d *DiffuseLight) Emitted(u, v float64, p geom.Point3) geom.Color {
	return d.Tex.Value(u, v, p)
}

// Isotropic is the phase function of a homogeneous participating medium:
// it scatters uniformly over the unit sphere from the hit point,
// attenuating by Tex's value.
type Isotropic struct {
	Tex texture.Texture
}

// NewIsotropic builds an Isotropic phase function from a constant albedo.
func NewIsotropic(albedo geom.Color) *Isotropic {
	return &Isotropic{Tex: texture.NewSolid(albedo.X, albedo.Y, albedo.Z)}
}

// NewIsotropicTex builds an Isotropic phase function backed by an
// arbitrary texture.
func NewIsotropicTex(tex texture.Texture) *Isotropic { return &Isotropic{Tex: tex} }

// Scatter implements hit.Material.
func (i *Isotropic) Scatter(rIn geom.Ray, rec hit.Record, rnd hit.Rand) (geom.Color, geom.Ray, bool) {
	return i.Tex.Value(rec.U, rec.V, rec.P), geom.NewRay(rec.P, rnd.UnitSphereDirection(), rIn.Time), true
}

// Emitted implements hit.Material.
func (i *Isotropic) Emitted(u, v float64, p geom.Point3) geom.Color { return geom.Color{} }
