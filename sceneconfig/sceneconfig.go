// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package sceneconfig loads a scene and camera description from a YAML
// document, grounded on load/shd.go's pattern of unmarshaling into a
// string-keyed config struct and resolving names against lookup tables.
package sceneconfig

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/lucent-labs/pathtrace/bvh"
	"github.com/lucent-labs/pathtrace/camera"
	"github.com/lucent-labs/pathtrace/hit"
	"github.com/lucent-labs/pathtrace/imgload"
	"github.com/lucent-labs/pathtrace/material"
	"github.com/lucent-labs/pathtrace/math/geom"
	"github.com/lucent-labs/pathtrace/medium"
	"github.com/lucent-labs/pathtrace/prim"
	"github.com/lucent-labs/pathtrace/rng"
	"github.com/lucent-labs/pathtrace/texture"
)

// doc mirrors the on-disk YAML shape: a camera block and a flat list of
// named-type primitives, each referencing a material by name.
type doc struct {
	Camera struct {
		AspectRatio     float64    `yaml:"aspect_ratio"`
		ImageWidth      int        `yaml:"image_width"`
		SamplesPerPixel int        `yaml:"samples_per_pixel"`
		MaxDepth        int        `yaml:"max_depth"`
		Background      [3]float64 `yaml:"background"`
		VFov            float64    `yaml:"vfov"`
		LookFrom        [3]float64 `yaml:"look_from"`
		LookAt          [3]float64 `yaml:"look_at"`
		VUp             [3]float64 `yaml:"vup"`
		DefocusAngle    float64    `yaml:"defocus_angle"`
		FocusDist       float64    `yaml:"focus_dist"`
		Seed            int64      `yaml:"seed"`
	} `yaml:"camera"`

	Materials []struct {
		Name    string     `yaml:"name"`
		Kind    string     `yaml:"kind"` // lambertian | metal | dielectric | light | isotropic
		Color   [3]float64 `yaml:"color"`
		Fuzz    float64    `yaml:"fuzz"`
		IOR     float64    `yaml:"ior"`
		Texture string     `yaml:"texture"` // name of a texture entry, optional
	} `yaml:"materials"`

	Textures []struct {
		Name  string     `yaml:"name"`
		Kind  string     `yaml:"kind"` // solid | checker | noise | image
		Color [3]float64 `yaml:"color"`
		Odd   [3]float64 `yaml:"odd"`
		Scale float64    `yaml:"scale"`
		File  string     `yaml:"file"`
	} `yaml:"textures"`

	Primitives []struct {
		Kind     string     `yaml:"kind"` // sphere | moving_sphere | triangle | quad | medium
		Material string     `yaml:"material"`
		Center   [3]float64 `yaml:"center"`
		Center2  [3]float64 `yaml:"center2"`
		Radius   float64    `yaml:"radius"`
		V0       [3]float64 `yaml:"v0"`
		V1       [3]float64 `yaml:"v1"`
		V2       [3]float64 `yaml:"v2"`
		Q        [3]float64 `yaml:"q"`
		U        [3]float64 `yaml:"u"`
		V        [3]float64 `yaml:"v"`
		Density  float64    `yaml:"density"`
		Boundary int        `yaml:"boundary"` // index into Primitives of the medium's boundary
		Albedo   [3]float64 `yaml:"albedo"`   // medium only: isotropic phase-function color
	} `yaml:"primitives"`
}

// Scene is a fully-resolved scene loaded from YAML: a camera
// configuration and a BVH world ready to render.
type Scene struct {
	CameraConfig camera.Config
	World        hit.Hittable
}

// Load parses a YAML scene description and resolves it into a Scene.
func Load(data []byte) (*Scene, error) {
	var d doc
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("sceneconfig: yaml: %w", err)
	}

	cfg := camera.DefaultConfig()
	cfg.AspectRatio = orDefault(d.Camera.AspectRatio, cfg.AspectRatio)
	cfg.ImageWidth = intOrDefault(d.Camera.ImageWidth, cfg.ImageWidth)
	cfg.SamplesPerPixel = intOrDefault(d.Camera.SamplesPerPixel, cfg.SamplesPerPixel)
	cfg.MaxDepth = intOrDefault(d.Camera.MaxDepth, cfg.MaxDepth)
	cfg.Background = vec3(d.Camera.Background)
	cfg.VFov = orDefault(d.Camera.VFov, cfg.VFov)
	cfg.LookFrom = vec3(d.Camera.LookFrom)
	cfg.LookAt = vec3(d.Camera.LookAt)
	cfg.VUp = orDefault3(d.Camera.VUp, geom.New(0, 1, 0))
	cfg.DefocusAngle = d.Camera.DefocusAngle
	cfg.FocusDist = orDefault(d.Camera.FocusDist, cfg.FocusDist)
	cfg.Seed = d.Camera.Seed

	// Noise textures need a PRNG to build their Perlin lattice; seed it from
	// the same camera seed so a given scene file renders identical marble
	// veining across runs.
	noiseRnd := rng.New(cfg.Seed, 0)

	textures := map[string]texture.Texture{}
	for _, t := range d.Textures {
		tex, err := buildTexture(t.Kind, t.Color, t.Odd, t.Scale, t.File, noiseRnd)
		if err != nil {
			return nil, fmt.Errorf("sceneconfig: texture %q: %w", t.Name, err)
		}
		textures[t.Name] = tex
	}

	materials := map[string]hit.Material{}
	for _, m := range d.Materials {
		mat, err := buildMaterial(m.Kind, vec3(m.Color), m.Fuzz, m.IOR, textures[m.Texture])
		if err != nil {
			return nil, fmt.Errorf("sceneconfig: material %q: %w", m.Name, err)
		}
		materials[m.Name] = mat
	}

	list := hit.NewList()
	built := make([]hit.Hittable, len(d.Primitives))
	for i, p := range d.Primitives {
		mat := materials[p.Material]
		switch p.Kind {
		case "sphere":
			built[i] = prim.NewSphere(vec3(p.Center), p.Radius, mat)
		case "moving_sphere":
			built[i] = prim.NewMovingSphere(vec3(p.Center), vec3(p.Center2), p.Radius, mat)
		case "triangle":
			built[i] = prim.NewTriangle(vec3(p.V0), vec3(p.V1), vec3(p.V2), mat)
		case "quad":
			built[i] = prim.NewQuad(vec3(p.Q), vec3(p.U), vec3(p.V), mat)
		case "medium":
			if p.Boundary < 0 || p.Boundary >= len(built) || built[p.Boundary] == nil {
				return nil, fmt.Errorf("sceneconfig: medium references unbuilt boundary index %d", p.Boundary)
			}
			built[i] = medium.New(built[p.Boundary], p.Density, vec3(p.Albedo))
		default:
			return nil, fmt.Errorf("sceneconfig: unsupported primitive kind %q", p.Kind)
		}
	}
	isBoundary := make([]bool, len(d.Primitives))
	for _, p := range d.Primitives {
		if p.Kind == "medium" {
			isBoundary[p.Boundary] = true
		}
	}
	for i, p := range d.Primitives {
		if isBoundary[i] {
			continue // a boundary wrapped by a medium is not separately visible; the medium stands in for it.
		}
		list.Add(built[i])
	}

	return &Scene{CameraConfig: cfg, World: bvh.Build(list)}, nil
}

func buildTexture(kind string, color, odd [3]float64, scale float64, file string, noiseRnd *rng.Source) (texture.Texture, error) {
	switch kind {
	case "solid":
		c := vec3(color)
		return texture.NewSolid(c.X, c.Y, c.Z), nil
	case "checker":
		return texture.NewChecker(orDefault(scale, 1), vec3(color), vec3(odd)), nil
	case "image":
		return imgload.LoadFile(file), nil
	case "noise":
		return texture.NewNoise(noiseRnd, orDefault(scale, 1)), nil
	default:
		return nil, fmt.Errorf("unsupported texture kind %q", kind)
	}
}

func buildMaterial(kind string, color geom.Color, fuzz, ior float64, tex texture.Texture) (hit.Material, error) {
	switch kind {
	case "lambertian":
		if tex != nil {
			return material.NewLambertianTex(tex), nil
		}
		return material.NewLambertian(color), nil
	case "metal":
		return material.NewMetal(color, fuzz), nil
	case "dielectric":
		return material.NewDielectric(orDefault(ior, 1.5)), nil
	case "light":
		if tex != nil {
			return material.NewDiffuseLightTex(tex), nil
		}
		return material.NewDiffuseLight(color), nil
	case "isotropic":
		if tex != nil {
			return material.NewIsotropicTex(tex), nil
		}
		return material.NewIsotropic(color), nil
	default:
		return nil, fmt.Errorf("unsupported material kind %q", kind)
	}
}

func vec3(a [3]float64) geom.Vec3 { return geom.New(a[0], a[1], a[2]) }

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func orDefault3(a [3]float64, def geom.Vec3) geom.Vec3 {
	if a == ([3]float64{}) {
		return def
	}
	return vec3(a)
}

func intOrDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
