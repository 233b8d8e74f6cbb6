package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter decides whether an incoming ray is re-emitted from the hit, and with what attenuation
	Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// Emitter interface for materials that emit light. Materials that do not implement it emit nothing.
type Emitter interface {
	Emitted(u, v float64, p core.Vec3) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection, always facing against the ray
	Material  Material  // Material of the hit object
	T         float64   // Parameter t along the ray
	U, V      float64   // Surface coordinates
	FrontFace bool      // Whether ray hit the front face
}

// SetFaceNormal sets the normal vector and determines front/back face
// outwardNormal must point out of the surface; the stored normal is flipped to oppose the ray
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// OutwardNormal recovers the geometric outward normal from the stored normal and face flag
func (h *HitRecord) OutwardNormal() core.Vec3 {
	if h.FrontFace {
		return h.Normal
	}
	return h.Normal.Negate()
}

// EmittedLight returns the light emitted by the hit's material, or black for non-emitters
func EmittedLight(hit *HitRecord) core.Vec3 {
	if emitter, isEmissive := hit.Material.(Emitter); isEmissive {
		return emitter.Emitted(hit.U, hit.V, hit.Point)
	}
	return core.Vec3{X: 0, Y: 0, Z: 0}
}
