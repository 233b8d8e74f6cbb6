package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/texture"
)

// cornellSize is the edge length of the Cornell box
const cornellSize = 555.0

var black = core.NewVec3(0, 0, 0)

// indoorSampling is the default sampling for the square, light-lit scenes
var indoorSampling = SamplingConfig{
	Width:           600,
	SamplesPerPixel: 200,
	MaxDepth:        50,
}

func cornellCamera() geometry.CameraConfig {
	return newCameraConfig(core.NewVec3(278, 278, -800), core.NewVec3(278, 278, 0), 40, 1.0, 0)
}

// newSimpleLightScene lights two marble spheres with a single rectangular lamp
func newSimpleLightScene(opts Options, sampler core.Sampler) (*Scene, error) {
	marble := material.NewTexturedLambertian(texture.NewNoiseTexture(4, sampler))
	lamp := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		geometry.NewXYRect(3, 5, 1, 4, -2, lamp),
	)

	return &Scene{
		World:          world,
		Background:     black,
		CameraConfig:   newCameraConfig(core.NewVec3(26, 3, 6), core.NewVec3(0, 2, 0), 20, 16.0/9.0, 0),
		SamplingConfig: SamplingConfig{Width: 400, SamplesPerPixel: 400, MaxDepth: 50},
	}, nil
}

// cornellRoom returns the five walls of the Cornell box plus a ceiling lamp spanning [x0,x1]×[z0,z1]
func cornellRoom(lamp material.Material, x0, x1, z0, z1 float64) *geometry.HittableList {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	return geometry.NewHittableList(
		geometry.NewYZRect(0, cornellSize, 0, cornellSize, cornellSize, green), // left wall
		geometry.NewYZRect(0, cornellSize, 0, cornellSize, 0, red),             // right wall
		geometry.NewXZRect(x0, x1, z0, z1, cornellSize-1, lamp),
		geometry.NewXZRect(0, cornellSize, 0, cornellSize, 0, white),           // floor
		geometry.NewXZRect(0, cornellSize, 0, cornellSize, cornellSize, white), // ceiling
		geometry.NewXYRect(0, cornellSize, 0, cornellSize, cornellSize, white), // back wall
	)
}

// cornellBlocks returns the tall and short white blocks, rotated and placed in the room
func cornellBlocks() (tall, short geometry.Hittable) {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))

	tall = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tall = geometry.NewRotateY(tall, 15)
	tall = geometry.NewTranslate(tall, core.NewVec3(265, 0, 295))

	short = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	short = geometry.NewRotateY(short, -18)
	short = geometry.NewTranslate(short, core.NewVec3(130, 0, 65))

	return tall, short
}

// newCornellBoxScene creates the classic Cornell box with two rotated blocks
func newCornellBoxScene(opts Options, sampler core.Sampler) (*Scene, error) {
	world := cornellRoom(material.NewDiffuseLight(core.NewVec3(15, 15, 15)), 213, 343, 227, 332)

	tall, short := cornellBlocks()
	world.Add(tall)
	world.Add(short)

	return &Scene{
		World:          world,
		Background:     black,
		CameraConfig:   cornellCamera(),
		SamplingConfig: indoorSampling,
	}, nil
}

// newCornellSmokeScene fills the Cornell blocks with blue and white smoke under a wider, dimmer lamp.
// The block surfaces stay in the scene alongside the media they bound.
func newCornellSmokeScene(opts Options, sampler core.Sampler) (*Scene, error) {
	world := cornellRoom(material.NewDiffuseLight(core.NewVec3(7, 7, 7)), 113, 443, 127, 432)

	tall, short := cornellBlocks()
	world.Add(tall)
	world.Add(short)
	world.Add(geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 1)))
	world.Add(geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)))

	return &Scene{
		World:          world,
		Background:     black,
		CameraConfig:   cornellCamera(),
		SamplingConfig: indoorSampling,
	}, nil
}
