// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package scene owns the primitives, materials, and textures that make
// up a render target, and builds the BVH the camera traces against.
package scene

import (
	"github.com/lucent-labs/pathtrace/bvh"
	"github.com/lucent-labs/pathtrace/hit"
)

// Builder accumulates hittables before the scene is finalized into a
// BVH. Once Build is called the scene is immutable for the rest of the
// render.
type Builder struct {
	list *hit.List
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{list: hit.NewList()} }

// Add appends a hittable (primitive, nested list, or medium) to the
// scene under construction.
func (b *Builder) Add(h hit.Hittable) { b.list.Add(h) }

// Build reorders the accumulated hittables into a BVH and returns it as
// the world root the camera traces against. The Builder must not be
// reused afterward.
func (b *Builder) Build() hit.Hittable { return bvh.Build(b.list) }
