package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/texture"
)

// newFinalScene combines every feature: box terrain, motion blur, glass, metal,
// subsurface and global media, image and noise textures, and an instanced sphere cluster
func newFinalScene(opts Options, sampler core.Sampler) (*Scene, error) {
	// Ground of boxes with random heights
	groundMat := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	const boxesPerSide = 20
	const boxWidth = 100.0
	ground := make([]geometry.Hittable, 0, boxesPerSide*boxesPerSide)
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			x0 := -1000.0 + float64(i)*boxWidth
			z0 := -1000.0 + float64(j)*boxWidth
			y1 := core.RandomRange(sampler, 1, 101)
			ground = append(ground, geometry.NewBox(
				core.NewVec3(x0, 0, z0),
				core.NewVec3(x0+boxWidth, y1, z0+boxWidth),
				groundMat,
			))
		}
	}
	groundBVH, err := geometry.NewBVH(ground, 0, 1, sampler)
	if err != nil {
		return nil, fmt.Errorf("failed to build ground BVH: %w", err)
	}

	world := geometry.NewHittableList(groundBVH)

	world.Add(geometry.NewXZRect(123, 423, 147, 412, 554, material.NewDiffuseLight(core.NewVec3(7, 7, 7))))

	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	world.Add(geometry.NewMovingSphere(center1, center2, 0, 1, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	world.Add(geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)))

	// Glass shell filled with blue subsurface medium
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	world.Add(boundary)
	world.Add(geometry.NewConstantMedium(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	// Thin mist over everything
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	world.Add(geometry.NewConstantMedium(mist, 0.0001, core.NewVec3(1, 1, 1)))

	world.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(loadEarthTexture(opts))))
	world.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80,
		material.NewTexturedLambertian(texture.NewNoiseTexture(0.1, sampler))))

	// Cluster of small spheres, instanced with a rotation and a translation
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	const clusterSize = 1000
	cluster := make([]geometry.Hittable, clusterSize)
	for i := range cluster {
		cluster[i] = geometry.NewSphere(core.RandomVec3(sampler, 0, 165), 10, white)
	}
	clusterBVH, err := geometry.NewBVH(cluster, 0, 1, sampler)
	if err != nil {
		return nil, fmt.Errorf("failed to build cluster BVH: %w", err)
	}
	world.Add(geometry.NewTranslate(geometry.NewRotateY(clusterBVH, 15), core.NewVec3(-100, 270, 395)))

	return &Scene{
		World:          world,
		Background:     black,
		CameraConfig:   newCameraConfig(core.NewVec3(478, 278, -600), core.NewVec3(278, 278, 0), 40, 1.0, 0),
		SamplingConfig: SamplingConfig{Width: 800, SamplesPerPixel: 200, MaxDepth: 50},
	}, nil
}
