package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestCamera_CenterRayPointsAtTarget(t *testing.T) {
	camera := NewCamera(CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0,
		FocusDistance: 10,
	})

	ray := camera.GetRay(0.5, 0.5, newTestSampler(1))
	if !ray.Origin.Equals(core.NewVec3(13, 2, 3), 1e-12) {
		t.Errorf("Pinhole ray should start at the eye, got %v", ray.Origin)
	}
	expected := core.NewVec3(-13, -2, -3).Normalize()
	if !ray.Direction.Normalize().Equals(expected, 1e-9) {
		t.Errorf("Expected direction %v, got %v", expected, ray.Direction.Normalize())
	}
}

func TestCamera_FieldOfView(t *testing.T) {
	camera := NewCamera(CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          90,
		AspectRatio:   1,
		FocusDistance: 1,
	})

	// Top edge of a 90 degree view is 45 degrees above the axis
	top := camera.GetRay(0.5, 1, newTestSampler(1)).Direction.Normalize()
	if math.Abs(top.Y-math.Sqrt2/2) > 1e-9 || math.Abs(top.Z+math.Sqrt2/2) > 1e-9 {
		t.Errorf("Unexpected top edge direction %v", top)
	}
}

func TestCamera_LensAndShutter(t *testing.T) {
	lookFrom := core.NewVec3(0, 0, 5)
	camera := NewCamera(CameraConfig{
		LookFrom:      lookFrom,
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   1,
		Aperture:      0.5,
		FocusDistance: 5,
		Time0:         0.25,
		Time1:         0.75,
	})
	sampler := newTestSampler(2)

	focusPoint := core.NewVec3(0, 0, 0)
	for i := 0; i < 200; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)
		if ray.Origin.Subtract(lookFrom).Length() > 0.25+1e-12 {
			t.Errorf("Origin %v outside the lens", ray.Origin)
		}
		if ray.Time < 0.25 || ray.Time >= 0.75 {
			t.Errorf("Time %f outside the shutter interval", ray.Time)
		}
		// Every lens sample passes through the focus point
		if !ray.At(1).Equals(focusPoint, 1e-9) {
			t.Errorf("Ray %v misses the focus point", ray)
		}
	}
}
