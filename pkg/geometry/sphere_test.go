package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// unboundedHittable never reports a bounding box
type unboundedHittable struct{}

func (unboundedHittable) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return nil, false
}

func (unboundedHittable) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.AABB{}, false
}

func newTestSampler(seed int64) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(seed)))
}

func TestSphere_UnitScenario(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, mat)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1), nil)
	if !isHit {
		t.Fatal("Expected hit")
	}

	if math.Abs(hit.T-0.5) > 1e-9 {
		t.Errorf("Expected t=0.5, got %f", hit.T)
	}
	if !hit.Point.Equals(core.NewVec3(0, 0, -0.5), 1e-9) {
		t.Errorf("Expected point (0,0,-0.5), got %v", hit.Point)
	}
	if !hit.Normal.Equals(core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}
	if !hit.FrontFace {
		t.Error("Expected front face hit")
	}
	if hit.Material != mat {
		t.Error("Expected hit record to carry the sphere material")
	}
}

func TestSphere_HitDistance(t *testing.T) {
	tests := []struct {
		name     string
		center   core.Vec3
		radius   float64
		origin   core.Vec3
		target   core.Vec3
		expected float64
	}{
		{"Along -Z", core.NewVec3(0, 0, -5), 1, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -5), 4},
		{"Diagonal", core.NewVec3(3, 4, 0), 2, core.NewVec3(0, 0, 0), core.NewVec3(3, 4, 0), 3},
		{"Offset origin", core.NewVec3(10, 0, 0), 0.25, core.NewVec3(-2, 0, 0), core.NewVec3(10, 0, 0), 11.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(tt.center, tt.radius, nil)
			ray := core.NewRay(tt.origin, tt.target.Subtract(tt.origin).Normalize())
			hit, isHit := sphere.Hit(ray, 0, math.Inf(1), nil)
			if !isHit {
				t.Fatal("Expected hit")
			}
			if math.Abs(hit.T-tt.expected) > 1e-9 {
				t.Errorf("Expected t=%f (distance - radius), got %f", tt.expected, hit.T)
			}
		})
	}
}

func TestSphere_Intervals(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, nil)

	tests := []struct {
		name          string
		ray           core.Ray
		tMin, tMax    float64
		expectHit     bool
		expectedT     float64
		wantFrontFace bool
	}{
		{"Miss", core.NewRay(core.NewVec3(0, 5, 5), core.NewVec3(0, 0, -1)), 0, math.Inf(1), false, 0, false},
		{"Beyond tMax", core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), 0, 3, false, 0, false},
		{"Near root", core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), 0, math.Inf(1), true, 4, true},
		{"Far root when near excluded", core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), 4.5, math.Inf(1), true, 6, false},
		{"From inside", core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)), 0.001, math.Inf(1), true, 1, false},
		{"Behind origin", core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1)), 0.001, math.Inf(1), false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(tt.ray, tt.tMin, tt.tMax, nil)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.wantFrontFace {
				t.Errorf("Expected FrontFace=%v, got %v", tt.wantFrontFace, hit.FrontFace)
			}
			if hit.Normal.Dot(tt.ray.Direction) > 0 {
				t.Errorf("Stored normal %v should oppose the ray", hit.Normal)
			}
		})
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2, nil)
	box, ok := sphere.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Sphere should have a bounding box")
	}
	if !box.Min.Equals(core.NewVec3(-1, 0, 1), 1e-12) || !box.Max.Equals(core.NewVec3(3, 4, 5), 1e-12) {
		t.Errorf("Unexpected box %v", box)
	}
}

func TestSphereUV(t *testing.T) {
	tests := []struct {
		name  string
		point core.Vec3
		u, v  float64
	}{
		{"+X", core.NewVec3(1, 0, 0), 0.5, 0.5},
		{"+Y", core.NewVec3(0, 1, 0), 0.5, 1.0},
		{"-Y", core.NewVec3(0, -1, 0), 0.5, 0.0},
		{"-X", core.NewVec3(-1, 0, 0), 0.0, 0.5},
		{"+Z", core.NewVec3(0, 0, 1), 0.25, 0.5},
		{"-Z", core.NewVec3(0, 0, -1), 0.75, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := SphereUV(tt.point)
			if math.Abs(u-tt.u) > 1e-9 || math.Abs(v-tt.v) > 1e-9 {
				t.Errorf("Expected (%f, %f), got (%f, %f)", tt.u, tt.v, u, v)
			}
		})
	}
}

func TestMovingSphere_CenterAndHit(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, -5), core.NewVec3(0, 2, -5), 0, 1, 0.5, nil)

	if c := sphere.Center(0.5); !c.Equals(core.NewVec3(0, 1, -5), 1e-12) {
		t.Errorf("Expected center (0,1,-5) at t=0.5, got %v", c)
	}

	origin := core.NewVec3(0, 0, 0)
	dir := core.NewVec3(0, 0, -1)
	if _, isHit := sphere.Hit(core.NewRayAtTime(origin, dir, 0), 0, math.Inf(1), nil); !isHit {
		t.Error("Expected hit at time 0")
	}
	if _, isHit := sphere.Hit(core.NewRayAtTime(origin, dir, 1), 0, math.Inf(1), nil); isHit {
		t.Error("Expected miss at time 1, the sphere has moved away")
	}
}

func TestMovingSphere_BoundingBoxCoversMotion(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(4, 0, 0), 0, 1, 1, nil)
	box, ok := sphere.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Moving sphere should have a bounding box")
	}
	if !box.Min.Equals(core.NewVec3(-1, -1, -1), 1e-12) || !box.Max.Equals(core.NewVec3(5, 1, 1), 1e-12) {
		t.Errorf("Unexpected box %v", box)
	}
}
