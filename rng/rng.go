// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package rng provides the renderer's random source: uniform reals and
// ints, plus the rejection samplers the material model needs for diffuse
// scatter and defocus-disk sampling.
//
// A process-wide *rand.Rand is not safe for concurrent use, and serializing
// access with a mutex would turn the row-stripe render driver's independent
// workers into a single bottleneck. Instead each worker goroutine owns its
// own Source, seeded distinctly from a global seed and the worker's index —
// the same shape eg/rt.go uses (`seed := rand.Uint32()` once per worker,
// then a private per-worker generator for every sample after that).
package rng

import (
	"math/rand"

	"github.com/lucent-labs/pathtrace/math/geom"
)

// Source is a single goroutine's private random generator. It must not be
// shared between goroutines.
type Source struct {
	r *rand.Rand
}

// New builds a Source seeded deterministically from seed and workerIndex,
// so that a fixed global seed and thread count reproduce identical output
// (invariant 8) while different thread counts may not.
func New(seed int64, workerIndex int) *Source {
	mixed := seed*6364136223846793005 + int64(workerIndex)*1442695040888963407 + 1
	return &Source{r: rand.New(rand.NewSource(mixed))}
}

// Float64 returns a uniform real in [0,1).
func (s *Source) Float64() float64 { return s.r.Float64() }

// Range returns a uniform real in [min,max).
func (s *Source) Range(min, max float64) float64 { return min + (max-min)*s.Float64() }

// IntN returns a uniform integer in [0,n).
func (s *Source) IntN(n int) int { return s.r.Intn(n) }

// UnitSphere returns a uniform random point strictly inside the unit
// sphere via rejection sampling, grounded on the original source's
// random_in_unit_sphere(): sample a cube until a point lands inside the
// sphere.
func (s *Source) UnitSphere() geom.Vec3 {
	for {
		p := geom.New(s.Range(-1, 1), s.Range(-1, 1), s.Range(-1, 1))
		if p.LenSqr() < 1 {
			return p
		}
	}
}

// UnitSphereDirection returns a uniform random unit vector, used by
// Lambertian scatter and isotropic phase-function scatter.
func (s *Source) UnitSphereDirection() geom.Vec3 {
	return s.UnitSphere().Unit()
}

// UnitDisk returns a uniform random point strictly inside the unit disk
// in the XY plane (Z=0), used for defocus-disk sampling.
func (s *Source) UnitDisk() geom.Vec3 {
	for {
		p := geom.New(s.Range(-1, 1), s.Range(-1, 1), 0)
		if p.LenSqr() < 1 {
			return p
		}
	}
}
