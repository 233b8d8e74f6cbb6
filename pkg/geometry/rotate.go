package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// RotateY rotates a child object about the world Y axis
type RotateY struct {
	Object Hittable
	Angle  float64 // degrees

	toWorld  mgl64.Mat3 // object space to world space
	toObject mgl64.Mat3 // inverse (transpose) of toWorld
	box      core.AABB
	hasBox   bool
}

// NewRotateY wraps object rotated by angle degrees about Y. The world box is computed once,
// from the child's box over the shutter interval [0, 1].
func NewRotateY(object Hittable, angle float64) *RotateY {
	toWorld := mgl64.Rotate3DY(mgl64.DegToRad(angle))
	r := &RotateY{
		Object:   object,
		Angle:    angle,
		toWorld:  toWorld,
		toObject: toWorld.Transpose(),
	}

	childBox, ok := object.BoundingBox(0, 1)
	if !ok {
		return r
	}

	lo := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	hi := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for _, corner := range childBox.Corners() {
		rotated := r.rotate(r.toWorld, corner)
		lo = lo.Min(rotated)
		hi = hi.Max(rotated)
	}
	r.box = core.NewAABB(lo, hi)
	r.hasBox = true

	return r
}

// Hit rotates the ray into object space, intersects, then rotates the hit back
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	rotated := core.NewRayAtTime(
		r.rotate(r.toObject, ray.Origin),
		r.rotate(r.toObject, ray.Direction),
		ray.Time,
	)

	hit, isHit := r.Object.Hit(rotated, tMin, tMax, sampler)
	if !isHit {
		return nil, false
	}

	hit.Point = r.rotate(r.toWorld, hit.Point)
	hit.SetFaceNormal(ray, r.rotate(r.toWorld, hit.OutwardNormal()))

	return hit, true
}

// BoundingBox returns the precomputed world box; a child without a box leaves the rotation unbounded
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.box, r.hasBox
}

func (r *RotateY) rotate(m mgl64.Mat3, v core.Vec3) core.Vec3 {
	out := m.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return core.NewVec3(out[0], out[1], out[2])
}
