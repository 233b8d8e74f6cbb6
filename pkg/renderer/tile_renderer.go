package renderer

import (
	"image"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
}

// NewTileRenderer creates a new tile renderer with the given scene and integrator
func NewTileRenderer(scene *scene.Scene, integratorInst integrator.Integrator) *TileRenderer {
	return &TileRenderer{
		scene:      scene,
		integrator: integratorInst,
	}
}

// RenderTileBounds renders every pixel within bounds and writes its mean color into pixels.
// pixels is the whole image in row-major image order; only slots inside bounds are written.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, pixels []core.Vec3, sampler core.Sampler) RenderStats {
	config := tr.scene.SamplingConfig
	camera := tr.scene.Camera

	stats := RenderStats{
		TotalPixels: bounds.Dx() * bounds.Dy(),
		Tiles:       1,
	}

	// Camera coordinates run bottom-up, image rows top-down
	spanX := pixelSpan(config.Width)
	spanY := pixelSpan(config.Height)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		j := config.Height - 1 - y
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			var ps PixelStats
			for sample := 0; sample < config.SamplesPerPixel; sample++ {
				jitter := sampler.Get2D()
				s := (float64(i) + jitter.X) / spanX
				t := (float64(j) + jitter.Y) / spanY

				ray := camera.GetRay(s, t, sampler)
				ps.AddSample(tr.integrator.RayColor(ray, tr.scene, sampler))
			}
			pixels[y*config.Width+i] = ps.GetColor()
			stats.TotalSamples += ps.SampleCount
		}
	}

	return stats
}

// pixelSpan is the divisor mapping pixel indices to [0, 1]
func pixelSpan(n int) float64 {
	if n > 1 {
		return float64(n - 1)
	}
	return 1
}
