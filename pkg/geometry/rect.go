package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// rectThickness is the extent given to a rectangle's bounding box along its flat axis
const rectThickness = 0.0002

// XYRect is an axis-aligned rectangle in the plane z = K
type XYRect struct {
	X0, X1, Y0, Y1, K float64
	Material          material.Material
}

// NewXYRect creates a rectangle spanning [x0,x1]×[y0,y1] at z = k
func NewXYRect(x0, x1, y0, y1, k float64, material material.Material) *XYRect {
	return &XYRect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: material}
}

// Hit tests the ray against the rectangle; the outward normal is +Z
func (r *XYRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return hitRect(ray, tMin, tMax, rectAxes{k: 2, a: 0, b: 1},
		r.X0, r.X1, r.Y0, r.Y1, r.K, core.NewVec3(0, 0, 1), r.Material)
}

// BoundingBox returns the rectangle's box padded along Z
func (r *XYRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.Y0, r.K),
		core.NewVec3(r.X1, r.Y1, r.K),
	).Pad(rectThickness), true
}

// XZRect is an axis-aligned rectangle in the plane y = K
type XZRect struct {
	X0, X1, Z0, Z1, K float64
	Material          material.Material
}

// NewXZRect creates a rectangle spanning [x0,x1]×[z0,z1] at y = k
func NewXZRect(x0, x1, z0, z1, k float64, material material.Material) *XZRect {
	return &XZRect{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: material}
}

// Hit tests the ray against the rectangle; the outward normal is +Y
func (r *XZRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return hitRect(ray, tMin, tMax, rectAxes{k: 1, a: 0, b: 2},
		r.X0, r.X1, r.Z0, r.Z1, r.K, core.NewVec3(0, 1, 0), r.Material)
}

// BoundingBox returns the rectangle's box padded along Y
func (r *XZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.K, r.Z0),
		core.NewVec3(r.X1, r.K, r.Z1),
	).Pad(rectThickness), true
}

// YZRect is an axis-aligned rectangle in the plane x = K
type YZRect struct {
	Y0, Y1, Z0, Z1, K float64
	Material          material.Material
}

// NewYZRect creates a rectangle spanning [y0,y1]×[z0,z1] at x = k
func NewYZRect(y0, y1, z0, z1, k float64, material material.Material) *YZRect {
	return &YZRect{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: material}
}

// Hit tests the ray against the rectangle; the outward normal is +X
func (r *YZRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return hitRect(ray, tMin, tMax, rectAxes{k: 0, a: 1, b: 2},
		r.Y0, r.Y1, r.Z0, r.Z1, r.K, core.NewVec3(1, 0, 0), r.Material)
}

// BoundingBox returns the rectangle's box padded along X
func (r *YZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.K, r.Y0, r.Z0),
		core.NewVec3(r.K, r.Y1, r.Z1),
	).Pad(rectThickness), true
}

// rectAxes names the plane axis k and the two in-plane axes a and b
type rectAxes struct {
	k, a, b int
}

func hitRect(ray core.Ray, tMin, tMax float64, axes rectAxes, a0, a1, b0, b1, k float64,
	outwardNormal core.Vec3, mat material.Material) (*material.HitRecord, bool) {
	denominator := ray.Direction.Axis(axes.k)
	// A ray parallel to the plane never crosses it
	if denominator == 0 {
		return nil, false
	}

	t := (k - ray.Origin.Axis(axes.k)) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	a := ray.Origin.Axis(axes.a) + t*ray.Direction.Axis(axes.a)
	b := ray.Origin.Axis(axes.b) + t*ray.Direction.Axis(axes.b)
	if a < a0 || a > a1 || b < b0 || b > b1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: mat,
		U:        (a - a0) / (a1 - a0),
		V:        (b - b0) / (b1 - b0),
	}
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}
