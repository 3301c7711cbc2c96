// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package bvh implements a recursive spatial-subdivision acceleration
// structure over a flat list of hit.Hittable, grounded on the
// longest-axis median split of original_source's bvh_node.
package bvh

import (
	"sort"

	"github.com/lucent-labs/pathtrace/hit"
	"github.com/lucent-labs/pathtrace/math/geom"
)

// Node is an internal or leaf node of the tree: two children (possibly
// the same leaf object twice) and the AABB spanning both.
type Node struct {
	left, right hit.Hittable
	box         geom.AABB
}

// Build constructs a BVH over all objects currently in list. Construction
// reorders list.Objects in place and is O(n log n).
func Build(list *hit.List) *Node {
	return build(list.Objects, 0, len(list.Objects))
}

func build(objects []hit.Hittable, start, end int) *Node {
	box := geom.EmptyAABB()
	for i := start; i < end; i++ {
		box = geom.Union(box, objects[i].BoundingBox())
	}
	axis := box.LongestAxis()

	span := end - start
	n := &Node{box: box}
	switch span {
	case 1:
		n.left = objects[start]
		n.right = objects[start]
	case 2:
		n.left = objects[start]
		n.right = objects[start+1]
	default:
		slice := objects[start:end]
		sort.Slice(slice, func(i, j int) bool {
			return slice[i].BoundingBox().Axis(axis).Min < slice[j].BoundingBox().Axis(axis).Min
		})
		mid := start + span/2
		n.left = build(objects, start, mid)
		n.right = build(objects, mid, end)
	}
	return n
}

// Hit implements hit.Hittable. It tests the node's box first, then
// recurses left with the full interval and right with t_max tightened to
// the left hit's t if one occurred, so the closer hit always wins.
func (n *Node) Hit(r geom.Ray, rayT geom.Interval, rnd hit.Rand) (hit.Record, bool) {
	if !n.box.Hit(r, rayT) {
		return hit.Record{}, false
	}

	leftRec, hitLeft := n.left.Hit(r, rayT, rnd)
	rightMax := rayT.Max
	if hitLeft {
		rightMax = leftRec.T
	}
	rightRec, hitRight := n.right.Hit(r, geom.NewInterval(rayT.Min, rightMax), rnd)

	if hitRight {
		return rightRec, true
	}
	return leftRec, hitLeft
}

// BoundingBox implements hit.Hittable.
func (n *Node) BoundingBox() geom.AABB { return n.box }
