// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

package sceneconfig

import (
	"testing"

	"github.com/lucent-labs/pathtrace/math/geom"
	"github.com/lucent-labs/pathtrace/rng"
)

const minimalYAML = `
camera:
  aspect_ratio: 1.777
  image_width: 200
  samples_per_pixel: 4
  max_depth: 5
  vfov: 40
  look_from: [0, 0, 9]
  look_at: [0, 0, 0]

materials:
  - name: ground
    kind: lambertian
    color: [0.5, 0.5, 0.5]
  - name: glass
    kind: dielectric
    ior: 1.5

primitives:
  - kind: sphere
    material: ground
    center: [0, -100.5, -1]
    radius: 100
  - kind: sphere
    material: glass
    center: [0, 0, -1]
    radius: 0.5
`

func TestLoadResolvesCameraAndPrimitives(t *testing.T) {
	scene, err := Load([]byte(minimalYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scene.CameraConfig.ImageWidth != 200 {
		t.Errorf("expected image width 200, got %d", scene.CameraConfig.ImageWidth)
	}
	if scene.World == nil {
		t.Fatal("expected a non-nil world")
	}
	box := scene.World.BoundingBox()
	if !box.X.Contains(0) {
		t.Errorf("expected the built world's box to span the origin, got %+v", box.X)
	}
}

func TestLoadResolvesNoiseTexture(t *testing.T) {
	doc := `
textures:
  - name: marble
    kind: noise
    scale: 2

materials:
  - name: m
    kind: lambertian
    texture: marble

primitives:
  - kind: sphere
    material: m
    center: [0, 0, -1]
    radius: 1
`
	scene, err := Load([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scene.World == nil {
		t.Fatal("expected a non-nil world")
	}
}

func TestLoadResolvesMediumWithAlbedoNotCenter(t *testing.T) {
	doc := `
primitives:
  - kind: sphere
    center: [5, 5, 5]
    radius: 1
  - kind: medium
    boundary: 0
    density: 1000000
    albedo: [0.2, 0.4, 0.6]
`
	scene, err := Load([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := geom.NewRay(geom.New(5, 5, 2), geom.New(0, 0, 1), 0)
	rnd := rng.New(1, 0)
	rec, ok := scene.World.Hit(r, geom.NewInterval(0.001, geom.Universe.Max), rnd)
	if !ok {
		t.Fatal("expected the dense medium to report a hit")
	}
	att, _, ok := rec.Mat.Scatter(r, rec, rnd)
	if !ok {
		t.Fatal("expected the isotropic phase function to scatter")
	}
	if att.X != 0.2 || att.Y != 0.4 || att.Z != 0.6 {
		t.Errorf("expected medium attenuation to come from albedo, got %+v (boundary center was [5,5,5])", att)
	}
}

func TestLoadRejectsUnknownMaterialKind(t *testing.T) {
	bad := `
materials:
  - name: m
    kind: bogus
primitives:
  - kind: sphere
    material: m
    radius: 1
`
	if _, err := Load([]byte(bad)); err == nil {
		t.Error("expected an error for an unsupported material kind")
	}
}

func TestLoadRejectsUnknownPrimitiveKind(t *testing.T) {
	bad := `
primitives:
  - kind: bogus
`
	if _, err := Load([]byte(bad)); err == nil {
		t.Error("expected an error for an unsupported primitive kind")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	if _, err := Load([]byte("camera: [this is not a map")); err == nil {
		t.Error("expected a yaml parse error")
	}
}
