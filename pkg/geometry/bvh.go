package geometry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

var (
	// ErrNoBoundingBox is returned when an object handed to the BVH builder has no bounding box
	ErrNoBoundingBox = errors.New("no bounding box in BVH construction")
	// ErrEmptyBVH is returned when the BVH builder is given no objects
	ErrEmptyBVH = errors.New("cannot build BVH from zero objects")
)

// BVHNode is a binary node of a bounding volume hierarchy.
// A node holding a single object stores it as both Left and Right.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	Box   core.AABB
	leaf  bool // Left and Right are the same object
}

// bvhEntry pairs an object with its precomputed box
type bvhEntry struct {
	object Hittable
	box    core.AABB
}

// NewBVH builds a hierarchy over objects for the shutter interval [time0, time1].
// The split axis at each node is drawn from sampler. The input slice is not reordered.
func NewBVH(objects []Hittable, time0, time1 float64, sampler core.Sampler) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyBVH
	}

	entries := make([]bvhEntry, len(objects))
	for i, object := range objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			return nil, fmt.Errorf("object %d (%T): %w", i, object, ErrNoBoundingBox)
		}
		entries[i] = bvhEntry{object: object, box: box}
	}

	return buildBVH(entries, sampler), nil
}

// NewBVHFromList builds a hierarchy over the objects of a list
func NewBVHFromList(list *HittableList, time0, time1 float64, sampler core.Sampler) (*BVHNode, error) {
	return NewBVH(list.Objects, time0, time1, sampler)
}

// MustBVH is like NewBVH but panics on error. For callers that treat a missing bounding box as a programming error.
func MustBVH(objects []Hittable, time0, time1 float64, sampler core.Sampler) *BVHNode {
	node, err := NewBVH(objects, time0, time1, sampler)
	if err != nil {
		panic(fmt.Sprintf("build BVH: %v", err))
	}
	return node
}

// buildBVH recursively splits entries at the midpoint of a random axis
func buildBVH(entries []bvhEntry, sampler core.Sampler) *BVHNode {
	axis := core.RandomInt(sampler, 0, 2)
	less := func(a, b bvhEntry) bool {
		return a.box.Min.Axis(axis) < b.box.Min.Axis(axis)
	}

	switch len(entries) {
	case 1:
		return &BVHNode{
			Left:  entries[0].object,
			Right: entries[0].object,
			Box:   entries[0].box,
			leaf:  true,
		}
	case 2:
		first, second := entries[0], entries[1]
		if !less(first, second) {
			first, second = second, first
		}
		return &BVHNode{
			Left:  first.object,
			Right: second.object,
			Box:   first.box.Union(second.box),
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})

	mid := len(entries) / 2
	left := buildBVH(entries[:mid], sampler)
	right := buildBVH(entries[mid:], sampler)

	return &BVHNode{
		Left:  left,
		Right: right,
		Box:   left.Box.Union(right.Box),
	}
}

// Hit tests the node box, then both children; the right child is searched only up to the left hit
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax, sampler)
	if n.leaf {
		return leftHit, hitLeft
	}
	if hitLeft {
		tMax = leftHit.T
	}

	if rightHit, hitRight := n.Right.Hit(ray, tMin, tMax, sampler); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the node's box
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}
