package scene

import (
	"fmt"
	"path/filepath"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/texture"
)

// earthTextureFile is the texture looked up in the asset directory for globe scenes
const earthTextureFile = "earthmap.jpg"

var (
	skyBlue     = core.NewVec3(0.70, 0.80, 1.00)
	checkerDark = core.NewVec3(0.2, 0.3, 0.1)
	checkerPale = core.NewVec3(0.9, 0.9, 0.9)
)

// outdoorSampling is the default sampling for the 16:9 sky-lit scenes
var outdoorSampling = SamplingConfig{
	Width:           400,
	SamplesPerPixel: 100,
	MaxDepth:        50,
}

func outdoorCamera(aperture float64) geometry.CameraConfig {
	return newCameraConfig(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 20, 16.0/9.0, aperture)
}

// newRandomSpheresScene scatters small diffuse (bouncing), metal and glass spheres around three large ones
func newRandomSpheresScene(opts Options, sampler core.Sampler) (*Scene, error) {
	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000,
			material.NewTexturedLambertian(texture.NewCheckerColors(checkerDark, checkerPale))),
	}

	clearance := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())
			if center.Subtract(clearance).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				// Diffuse, bouncing upwards during the shutter interval
				albedo := core.RandomVec3(sampler, 0, 1).MultiplyVec(core.RandomVec3(sampler, 0, 1))
				center2 := center.Add(core.NewVec3(0, core.RandomRange(sampler, 0, 0.5), 0))
				objects = append(objects, geometry.NewMovingSphere(center, center2, 0, 1, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.RandomVec3(sampler, 0.5, 1)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	objects = append(objects,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	world, err := geometry.NewBVH(objects, 0, 1, sampler)
	if err != nil {
		return nil, fmt.Errorf("failed to build BVH: %w", err)
	}

	return &Scene{
		World:          world,
		Background:     skyBlue,
		CameraConfig:   outdoorCamera(0.1),
		SamplingConfig: outdoorSampling,
	}, nil
}

// newTwoSpheresScene stacks two large checkered spheres
func newTwoSpheresScene(opts Options, sampler core.Sampler) (*Scene, error) {
	checker := material.NewTexturedLambertian(texture.NewCheckerColors(checkerDark, checkerPale))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)

	return &Scene{
		World:          world,
		Background:     skyBlue,
		CameraConfig:   outdoorCamera(0),
		SamplingConfig: outdoorSampling,
	}, nil
}

// newTwoPerlinSpheresScene puts a marble sphere on a marble ground
func newTwoPerlinSpheresScene(opts Options, sampler core.Sampler) (*Scene, error) {
	marble := material.NewTexturedLambertian(texture.NewNoiseTexture(4, sampler))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	return &Scene{
		World:          world,
		Background:     skyBlue,
		CameraConfig:   outdoorCamera(0),
		SamplingConfig: outdoorSampling,
	}, nil
}

// newEarthScene renders a textured globe
func newEarthScene(opts Options, sampler core.Sampler) (*Scene, error) {
	earth := material.NewTexturedLambertian(loadEarthTexture(opts))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 2, earth),
	)

	return &Scene{
		World:          world,
		Background:     skyBlue,
		CameraConfig:   outdoorCamera(0),
		SamplingConfig: outdoorSampling,
	}, nil
}

// loadEarthTexture loads the globe texture, falling back to the cyan debug texture when it cannot be read
func loadEarthTexture(opts Options) *texture.ImageTexture {
	path := filepath.Join(opts.AssetDir, earthTextureFile)
	tex, err := texture.LoadImageTexture(path, opts.MaxTextureSize)
	if err != nil {
		opts.logf("Warning: %v; rendering globe with debug texture\n", err)
	}
	return tex
}
