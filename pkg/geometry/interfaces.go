package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Hittable interface for objects that can be hit by rays
type Hittable interface {
	// Hit returns the nearest intersection with t in [tMin, tMax].
	// The sampler is the caller's random source; only participating media draw from it.
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool)

	// BoundingBox returns a box enclosing the object over the shutter interval [time0, time1].
	// Objects without a finite extent report false.
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}
