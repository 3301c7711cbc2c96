// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

package texture

import (
	"math"

	"github.com/lucent-labs/pathtrace/math/geom"
	"github.com/lucent-labs/pathtrace/rng"
)

const perlinPointCount = 256

// perlin generates smoothly-interpolated gradient noise over a lattice of
// random unit vectors, hashed into place by three independent permutation
// tables so the lattice need not be stored explicitly.
type perlin struct {
	ranvec              []geom.Vec3
	permX, permY, permZ []int
}

func newPerlin(rnd *rng.Source) *perlin {
	p := &perlin{ranvec: make([]geom.Vec3, perlinPointCount)}
	for i := range p.ranvec {
		v := geom.New(rnd.Range(-1, 1), rnd.Range(-1, 1), rnd.Range(-1, 1))
		p.ranvec[i] = v.Unit()
	}
	p.permX = perlinGeneratePerm(rnd)
	p.permY = perlinGeneratePerm(rnd)
	p.permZ = perlinGeneratePerm(rnd)
	return p
}

func perlinGeneratePerm(rnd *rng.Source) []int {
	p := make([]int, perlinPointCount)
	for i := range p {
		p[i] = i
	}
	for i := len(p) - 1; i > 0; i-- {
		target := rnd.IntN(i + 1)
		p[i], p[target] = p[target], p[i]
	}
	return p
}

// noise returns a smoothly varying value, typically in roughly [-1,1],
// sampled at p via trilinear Hermite interpolation over the lattice.
func (p *perlin) noise(pt geom.Point3) float64 {
	u := pt.X - math.Floor(pt.X)
	v := pt.Y - math.Floor(pt.Y)
	w := pt.Z - math.Floor(pt.Z)

	i := int(math.Floor(pt.X))
	j := int(math.Floor(pt.Y))
	k := int(math.Floor(pt.Z))

	var c [2][2][2]geom.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := p.permX[(i+di)&255] ^ p.permY[(j+dj)&255] ^ p.permZ[(k+dk)&255]
				c[di][dj][dk] = p.ranvec[idx]
			}
		}
	}
	return perlinInterp(c, u, v, w)
}

// turb sums noise across octaves of doubling frequency and halving weight,
// producing the turbulent texture marble/wood patterns are built from.
func (p *perlin) turb(pt geom.Point3, depth int) float64 {
	accum := 0.0
	temp := pt
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.noise(temp)
		weight *= 0.5
		temp = temp.Mul(2)
	}
	return math.Abs(accum)
}

func perlinInterp(c [2][2][2]geom.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)
	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				weightV := geom.New(u-float64(i), v-float64(j), w-float64(k))
				fi, fj, fk := float64(i), float64(j), float64(k)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weightV)
			}
		}
	}
	return accum
}

// Noise is a marble-like texture: a sinusoid of a turbulence-perturbed
// coordinate, scaled so higher Scale produces tighter bands.
type Noise struct {
	p     *perlin
	Scale float64
}

// NewNoise builds a Noise texture seeded from rnd; scale controls band
// frequency along the surface.
func NewNoise(rnd *rng.Source, scale float64) *Noise {
	return &Noise{p: newPerlin(rnd), Scale: scale}
}

// Value implements Texture.
func (n *Noise) Value(u, v float64, p geom.Point3) geom.Color {
	s := n.p.turb(p, 7)
	t := 1 + math.Sin(n.Scale*p.Z+10*s)
	return geom.New(1, 1, 1).Mul(0.5 * t)
}
